package fallback

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
	"github.com/TolikMuradov/AstroCalendar/internal/ports/service"
)

// Generator детерминированный локальный контент: одинаковые входы дают одинаковый результат
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

var _ service.IFallbackGenerator = (*Generator)(nil)

func (g *Generator) Daily(profile *domain.UserProfile, date domain.CivilDate, locale domain.Locale) *domain.DailyInsight {
	texts := textsFor(daily, locale)
	seed := (date.Day + int(date.Month) - 1 + utf8.RuneCountInString(profile.Name) + len(profile.BirthDate.String())) % 10

	description, ok := texts.descriptions[profile.ComputedProfile.WesternZodiac.Element]
	if !ok {
		description = texts.descriptions[domain.ElementFire]
	}
	color := "Emerald Green"
	if seed%2 == 0 {
		color = "Royal Purple"
	}

	return &domain.DailyInsight{
		Date:         date,
		Locale:       locale,
		EnergyScore:  65 + seed*7/2,
		Title:        texts.titles[seed%len(texts.titles)],
		Description:  description,
		Color:        color,
		LuckyNumbers: LuckyNumbers(seed),
		Ritual: domain.Ritual{
			Title: texts.ritualTitle,
			Steps: append([]string(nil), texts.ritualSteps...),
		},
		GeneratedAt: date.Time(),
		IsFallback:  true,
	}
}

// LuckyNumbers три различных числа в [1,99]; совпадения сдвигаются на +1 по кругу
func LuckyNumbers(seed int) []int {
	out := make([]int, 0, domain.LuckyNumbersCount)
	used := make(map[int]bool, domain.LuckyNumbersCount)
	for _, factor := range []int{7, 13, 22} {
		n := (seed*factor)%domain.LuckyNumberMax + 1
		for used[n] {
			n = n%domain.LuckyNumberMax + 1
		}
		used[n] = true
		out = append(out, n)
	}
	return out
}

func (g *Generator) Yearly(profile *domain.UserProfile, year int, locale domain.Locale) *domain.YearlyInsight {
	texts := textsFor(yearly, locale)
	seed := mod(year+len(profile.BirthDate.String()), len(texts.themes))

	return &domain.YearlyInsight{
		Year:            year,
		Locale:          locale,
		Theme:           texts.themes[seed],
		Strengths:       append([]string(nil), texts.strengths...),
		Challenges:      append([]string(nil), texts.challenges...),
		Recommendations: append([]string(nil), texts.recommendations...),
		GeneratedAt:     time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		IsFallback:      true,
	}
}

func (g *Generator) Monthly(profile *domain.UserProfile, year int, month time.Month, locale domain.Locale) *domain.MonthlyInsight {
	texts := textsFor(monthly, locale)
	seed := year + int(month) + utf8.RuneCountInString(profile.Name)
	n := domain.DaysIn(year, month)

	days := make([]domain.MonthlyDayInsight, 0, n)
	weekendIdx := 0
	for day := 1; day <= n; day++ {
		i := seed + day - 1
		dayType := domain.DayTypes[mod(i, len(domain.DayTypes))]
		stone := stones[mod(i, len(stones))]

		entry := domain.MonthlyDayInsight{
			Day:         day,
			DayType:     dayType,
			Message:     texts.messages[dayType],
			Stone:       stone,
			StoneEnergy: fmt.Sprintf(texts.stoneEnergy, stone),
			Activity:    texts.activities[dayType],
			Drink:       drinks[mod(i, len(drinks))],
			WearColor:   colors[mod(i, len(colors))],
			Affirmation: texts.affirmation[mod(i, len(texts.affirmation))],
		}
		if domain.IsWeekend(year, month, day) {
			tip := texts.stayHomeTip
			if mod(seed+weekendIdx, 2) == 1 {
				tip = texts.goOutTip
			}
			entry.WeekendTip = &tip
			weekendIdx++
		}
		days = append(days, entry)
	}

	return &domain.MonthlyInsight{
		Year:        year,
		Month:       month,
		Locale:      locale,
		MonthTheme:  texts.themes[mod(seed, len(texts.themes))],
		Days:        domain.NormalizeMonthDays(year, month, days),
		GeneratedAt: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		IsFallback:  true,
	}
}

func textsFor[T any](table map[domain.Locale]T, locale domain.Locale) T {
	if t, ok := table[locale]; ok {
		return t
	}
	return table[domain.DefaultLocale]
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
