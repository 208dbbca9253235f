package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
)

const systemPrompt = "You are a mystical astrologer. Always respond with valid JSON only. No markdown, no explanation, just pure JSON."

const dailyPrompt = `You are a mystical astrologer. Generate a daily insight JSON for %s, a %s (%s element) and %s.
Language: %s for all text fields (title, desc, ritual names and steps).
Date: %s.

Return ONLY valid JSON with this exact structure:
{
  "score": integer (0-100),
  "title": "A highly mystical, poetic title",
  "desc": "A LONG, detailed, and profound daily horoscope (approx. 80-120 words). It MUST speak directly to the user about their specific energy today, potential challenges, emotional state, and opportunities. Do not be generic. Make it feel magical and personal.",
  "color": "Lucky color name in ENGLISH ONLY (e.g., 'Red', 'Emerald Green', 'Sapphire Blue', 'Golden', 'Lavender')",
  "luckyNumbers": [3 unique integers between 1-99],
  "ritual": { "title": "Ritual name", "steps": ["Detailed Step 1", "Detailed Step 2", "Detailed Step 3"] }
}`

const yearlyPrompt = `Generate a yearly forecast for %d for a %s (%s) and %s.
Language: %s.

Return ONLY valid JSON with this exact structure:
{
  "theme": "Overarching theme for the year",
  "strengths": ["Strength 1", "Strength 2", "Strength 3"],
  "challenges": ["Challenge 1", "Challenge 2"],
  "recommendations": ["Advice 1", "Advice 2"]
}`

const comparePrompt = `Compare compatibility between %s (%s, %s) and %s (%s, %s).
Language: %s.

Return ONLY valid JSON with this exact structure:
{
  "harmonyScore": integer (0-100),
  "summary": "Short mystical relationship summary",
  "strengths": ["Strength 1", "Strength 2"],
  "challenges": ["Challenge 1", "Challenge 2"]
}`

const monthlyPrompt = `You are a mystical spiritual guide and astrologer. Generate a COMPLETE monthly spiritual calendar for %[1]s %[2]d.
Person: %[3]s, %[4]s (%[5]s element), Chinese zodiac: %[6]s.
Language: ALL text must be in %[7]s.

IMPORTANT GUIDELINES:
- Create meaningful, non-overwhelming daily rituals that feel achievable
- Use a gentle, psychological, supportive tone - like a caring spiritual friend
- Weekends (days: %[8]s) should have either "rest at home" or "go outside" suggestions
- For drinks: suggest herbal teas, water infusions, smoothies, warm milk with spices (NEVER suggest meat or heavy foods)
- Stones should be real crystals with genuine metaphysical properties
- Colors should vary throughout the month
- Day types should follow a balanced rhythm: not too many "action" days in a row, mix in "rest" and "reflection"
- Affirmations should be personal, empowering, and brief
- IMPORTANT: wearColor MUST ALWAYS be in ENGLISH regardless of language setting (e.g., "Green", "Royal Blue", "Coral", "Lavender")

Return ONLY valid JSON with this exact structure:
{
  "monthTheme": "An inspiring theme for %[1]s (15-25 words)",
  "days": [
    {
      "day": 1,
      "dayType": "cleansing|manifestation|rest|action|reflection|social|gratitude|creativity",
      "message": "A warm, personal spiritual message for this day (30-50 words). Speak directly to the person.",
      "stone": "Crystal/stone name in ENGLISH",
      "stoneEnergy": "Brief explanation of what this stone brings today (10-15 words)",
      "activity": "A simple, achievable activity suggestion",
      "drink": "A specific drink recommendation (herbal tea, water infusion, etc)",
      "wearColor": "Color name in ENGLISH ONLY (e.g., 'Green', 'Navy Blue', 'Coral Pink')",
      "affirmation": "A short, powerful I-statement affirmation",
      "isWeekend": false,
      "weekendTip": null
    }
    ... repeat for all %[9]d days
  ]
}

CRITICAL: Generate exactly %[9]d day objects (day 1 to %[9]d). Weekend days (%[8]s) must have isWeekend: true and weekendTip with either a "stay home and..." or "go out and..." suggestion.`

var monthNames = map[domain.Locale][12]string{
	domain.LocaleTR: {"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran", "Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"},
	domain.LocaleTH: {"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม"},
}

// MonthName локализованное название месяца, по умолчанию английское
func MonthName(month time.Month, locale domain.Locale) string {
	if names, ok := monthNames[locale]; ok && month >= time.January && month <= time.December {
		return names[month-1]
	}
	return month.String()
}

func formatDailyPrompt(p *domain.UserProfile, date domain.CivilDate, locale domain.Locale) string {
	cp := p.ComputedProfile
	return fmt.Sprintf(dailyPrompt,
		p.Name, cp.WesternZodiac.Sign, cp.WesternZodiac.Element, cp.ChineseZodiac.Animal,
		locale.LanguageName(), date)
}

func formatYearlyPrompt(p *domain.UserProfile, year int, locale domain.Locale) string {
	cp := p.ComputedProfile
	return fmt.Sprintf(yearlyPrompt,
		year, cp.WesternZodiac.Sign, cp.WesternZodiac.Element, cp.ChineseZodiac.Animal,
		locale.LanguageName())
}

func formatComparePrompt(p *domain.UserProfile, partner domain.Partner, partnerProfile domain.ComputedProfile, locale domain.Locale) string {
	cp := p.ComputedProfile
	return fmt.Sprintf(comparePrompt,
		p.Name, cp.WesternZodiac.Sign, cp.ChineseZodiac.Animal,
		partner.Name, partnerProfile.WesternZodiac.Sign, partnerProfile.ChineseZodiac.Animal,
		locale.LanguageName())
}

func formatMonthlyPrompt(p *domain.UserProfile, year int, month time.Month, daysInMonth int, weekendDays []int, locale domain.Locale) string {
	cp := p.ComputedProfile
	weekends := make([]string, len(weekendDays))
	for i, d := range weekendDays {
		weekends[i] = fmt.Sprint(d)
	}
	return fmt.Sprintf(monthlyPrompt,
		MonthName(month, locale), year,
		p.Name, cp.WesternZodiac.Sign, cp.WesternZodiac.Element, cp.ChineseZodiac.Animal,
		locale.LanguageName(),
		strings.Join(weekends, ", "),
		daysInMonth)
}
