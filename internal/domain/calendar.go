package domain

import "time"

// Нейтральные значения для дней, которых нет в ответе генератора
const (
	DefaultDayType    = DayReflection
	DefaultStone      = "Clear Quartz"
	DefaultDrink      = "Warm water with lemon"
	DefaultWearColor  = "White"
	DefaultWeekendTip = "Rest and recharge"
)

// DaysIn количество дней в месяце
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func IsWeekend(year int, month time.Month, day int) bool {
	switch time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

// WeekendDays номера суббот и воскресений месяца по возрастанию
func WeekendDays(year int, month time.Month) []int {
	n := DaysIn(year, month)
	days := make([]int, 0, 10)
	for d := 1; d <= n; d++ {
		if IsWeekend(year, month, d) {
			days = append(days, d)
		}
	}
	return days
}

// NormalizeMonthDays приводит дни месяца к каноническому виду:
// ровно DaysIn(year, month) записей по возрастанию, выходные пересчитаны локально,
// weekendTip есть только у выходных. Отсутствующие дни заполняются нейтральными значениями.
func NormalizeMonthDays(year int, month time.Month, days []MonthlyDayInsight) []MonthlyDayInsight {
	n := DaysIn(year, month)

	byDay := make(map[int]MonthlyDayInsight, len(days))
	for _, d := range days {
		if d.Day < 1 || d.Day > n {
			continue
		}
		// при дублях побеждает первая запись
		if _, seen := byDay[d.Day]; !seen {
			byDay[d.Day] = d
		}
	}

	out := make([]MonthlyDayInsight, n)
	for day := 1; day <= n; day++ {
		d, ok := byDay[day]
		if !ok {
			d = MonthlyDayInsight{
				Day:       day,
				DayType:   DefaultDayType,
				Stone:     DefaultStone,
				Drink:     DefaultDrink,
				WearColor: DefaultWearColor,
			}
		}
		if !d.DayType.IsValid() {
			d.DayType = DefaultDayType
		}
		if d.Stone == "" {
			d.Stone = DefaultStone
		}
		if d.Drink == "" {
			d.Drink = DefaultDrink
		}
		if d.WearColor == "" {
			d.WearColor = DefaultWearColor
		}

		d.IsWeekend = IsWeekend(year, month, day)
		if d.IsWeekend {
			tip := DefaultWeekendTip
			if d.WeekendTip != nil && *d.WeekendTip != "" {
				tip = *d.WeekendTip
			}
			d.WeekendTip = &tip
		} else {
			d.WeekendTip = nil
		}
		out[day-1] = d
	}
	return out
}

// Normalize нормализует дни календаря на месте
func (m *MonthlyInsight) Normalize() {
	m.Days = NormalizeMonthDays(m.Year, m.Month, m.Days)
}
