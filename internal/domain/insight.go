package domain

import (
	"fmt"
	"strconv"
	"time"
)

// InsightKind вид кэшируемого контента
type InsightKind string

const (
	InsightDaily   InsightKind = "daily"
	InsightYearly  InsightKind = "yearly"
	InsightMonthly InsightKind = "monthly"
)

type Ritual struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

type DailyInsight struct {
	Date         CivilDate `json:"date"`
	Locale       Locale    `json:"locale"`
	EnergyScore  int       `json:"energyScore"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Color        string    `json:"color"`
	LuckyNumbers []int     `json:"luckyNumbers"`
	Ritual       Ritual    `json:"ritual"`
	GeneratedAt  time.Time `json:"generatedAt"`
	IsFallback   bool      `json:"isFallback"`
}

type YearlyInsight struct {
	Year            int       `json:"year"`
	Locale          Locale    `json:"locale"`
	Theme           string    `json:"theme"`
	Strengths       []string  `json:"strengths"`
	Challenges      []string  `json:"challenges"`
	Recommendations []string  `json:"recommendations"`
	GeneratedAt     time.Time `json:"generatedAt"`
	IsFallback      bool      `json:"isFallback"`
}

type DayType string

const (
	DayCleansing     DayType = "cleansing"
	DayManifestation DayType = "manifestation"
	DayRest          DayType = "rest"
	DayAction        DayType = "action"
	DayReflection    DayType = "reflection"
	DaySocial        DayType = "social"
	DayGratitude     DayType = "gratitude"
	DayCreativity    DayType = "creativity"
)

var DayTypes = []DayType{
	DayCleansing, DayManifestation, DayRest, DayAction,
	DayReflection, DaySocial, DayGratitude, DayCreativity,
}

func (t DayType) IsValid() bool {
	for _, v := range DayTypes {
		if v == t {
			return true
		}
	}
	return false
}

type MonthlyDayInsight struct {
	Day         int     `json:"day"`
	DayType     DayType `json:"dayType"`
	Message     string  `json:"message"`
	Stone       string  `json:"stone"`
	StoneEnergy string  `json:"stoneEnergy"`
	Activity    string  `json:"activity"`
	Drink       string  `json:"drink"`
	WearColor   string  `json:"wearColor"`
	Affirmation string  `json:"affirmation"`
	IsWeekend   bool    `json:"isWeekend"`
	WeekendTip  *string `json:"weekendTip,omitempty"`
}

type MonthlyInsight struct {
	Year        int                 `json:"year"`
	Month       time.Month          `json:"month"`
	Locale      Locale              `json:"locale"`
	MonthTheme  string              `json:"monthTheme"`
	Days        []MonthlyDayInsight `json:"days"`
	GeneratedAt time.Time           `json:"generatedAt"`
	IsFallback  bool                `json:"isFallback"`
}

// Day возвращает запись календаря на день месяца или nil
func (m *MonthlyInsight) Day(day int) *MonthlyDayInsight {
	if m == nil || day < 1 || day > len(m.Days) {
		return nil
	}
	// после нормализации дни идут подряд с 1
	if d := &m.Days[day-1]; d.Day == day {
		return d
	}
	for i := range m.Days {
		if m.Days[i].Day == day {
			return &m.Days[i]
		}
	}
	return nil
}

// ComparisonResult совместимость двух профилей, не кэшируется
type ComparisonResult struct {
	HarmonyScore int      `json:"harmonyScore"`
	Summary      string   `json:"summary"`
	Strengths    []string `json:"strengths"`
	Challenges   []string `json:"challenges"`
}

// Partner данные партнёра для сравнения
type Partner struct {
	Name      string
	BirthDate CivilDate
}

// PeriodKey идентификатор периода в ключе кэша
func PeriodKey(kind InsightKind, year int, month time.Month, date CivilDate) string {
	switch kind {
	case InsightDaily:
		return date.String()
	case InsightYearly:
		return strconv.Itoa(year)
	case InsightMonthly:
		return fmt.Sprintf("%d_%d", year, int(month))
	default:
		return ""
	}
}

// ValidMonth проверяет год и месяц для месячного календаря
func ValidMonth(year int, month time.Month) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d is out of range 1..12", ErrInvalidArgument, int(month))
	}
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d is out of range", ErrInvalidArgument, year)
	}
	return nil
}

// InsightKey идентификатор записи без пространства имён: {kind}_{userId}_{period}_{locale}
func InsightKey(kind InsightKind, userID, period string, locale Locale) string {
	return fmt.Sprintf("%s_%s_%s_%s", kind, userID, period, locale)
}
