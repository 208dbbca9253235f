package domain

import "strings"

const (
	LuckyNumbersCount = 3
	LuckyNumberMin    = 1
	LuckyNumberMax    = 99
)

// ValidateDaily проверяет форму дневного инсайта, нарушение - ValidationDefect
func ValidateDaily(d *DailyInsight) error {
	if d == nil {
		return NewValidationDefect("daily insight is empty")
	}
	if d.EnergyScore < 0 || d.EnergyScore > 100 {
		return NewValidationDefect("energy score %d is out of range 0..100", d.EnergyScore)
	}
	if blank(d.Title) || blank(d.Description) {
		return NewValidationDefect("daily insight title and description are required")
	}
	if blank(d.Color) {
		return NewValidationDefect("daily insight color is required")
	}
	if err := ValidateLuckyNumbers(d.LuckyNumbers); err != nil {
		return err
	}
	if blank(d.Ritual.Title) || len(d.Ritual.Steps) == 0 {
		return NewValidationDefect("ritual title and steps are required")
	}
	return nil
}

// ValidateLuckyNumbers ровно 3 различных числа в [1,99]
func ValidateLuckyNumbers(numbers []int) error {
	if len(numbers) != LuckyNumbersCount {
		return NewValidationDefect("expected %d lucky numbers, got %d", LuckyNumbersCount, len(numbers))
	}
	seen := make(map[int]struct{}, LuckyNumbersCount)
	for _, n := range numbers {
		if n < LuckyNumberMin || n > LuckyNumberMax {
			return NewValidationDefect("lucky number %d is out of range %d..%d", n, LuckyNumberMin, LuckyNumberMax)
		}
		if _, dup := seen[n]; dup {
			return NewValidationDefect("lucky number %d is repeated", n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

func ValidateYearly(y *YearlyInsight) error {
	if y == nil {
		return NewValidationDefect("yearly insight is empty")
	}
	if blank(y.Theme) {
		return NewValidationDefect("yearly theme is required")
	}
	if len(y.Strengths) == 0 || len(y.Challenges) == 0 || len(y.Recommendations) == 0 {
		return NewValidationDefect("yearly strengths, challenges and recommendations must be non-empty")
	}
	return nil
}

func ValidateComparison(c *ComparisonResult) error {
	if c == nil {
		return NewValidationDefect("comparison is empty")
	}
	if c.HarmonyScore < 0 || c.HarmonyScore > 100 {
		return NewValidationDefect("harmony score %d is out of range 0..100", c.HarmonyScore)
	}
	if blank(c.Summary) {
		return NewValidationDefect("comparison summary is required")
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
