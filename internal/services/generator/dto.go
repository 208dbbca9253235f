package generator

type ritualDTO struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

type dailyDTO struct {
	Score        *int       `json:"score"`
	Title        string     `json:"title"`
	Desc         string     `json:"desc"`
	Color        string     `json:"color"`
	LuckyNumbers []int      `json:"luckyNumbers"`
	Ritual       *ritualDTO `json:"ritual"`
}

type yearlyDTO struct {
	Theme           string   `json:"theme"`
	Strengths       []string `json:"strengths"`
	Challenges      []string `json:"challenges"`
	Recommendations []string `json:"recommendations"`
}

type comparisonDTO struct {
	HarmonyScore *int     `json:"harmonyScore"`
	Summary      string   `json:"summary"`
	Strengths    []string `json:"strengths"`
	Challenges   []string `json:"challenges"`
}

type monthlyDayDTO struct {
	Day         *int    `json:"day"`
	DayType     string  `json:"dayType"`
	Message     string  `json:"message"`
	Stone       string  `json:"stone"`
	StoneEnergy string  `json:"stoneEnergy"`
	Activity    string  `json:"activity"`
	Drink       string  `json:"drink"`
	WearColor   string  `json:"wearColor"`
	Affirmation string  `json:"affirmation"`
	WeekendTip  *string `json:"weekendTip"`
}

type monthlyDTO struct {
	MonthTheme string          `json:"monthTheme"`
	Days       []monthlyDayDTO `json:"days"`
}
