package domain

import "strings"

// DefaultColorHex цвет, если название не распознано
const DefaultColorHex = "#8a2be2"

type colorEntry struct {
	name string
	hex  string
}

// порядок важен: при равной длине частичного совпадения побеждает более ранняя запись
var colorLexicon = []colorEntry{
	// красные и розовые
	{"red", "#ef4444"}, {"crimson", "#dc143c"}, {"scarlet", "#ff2400"}, {"ruby", "#e0115f"},
	{"rose", "#ff007f"}, {"pink", "#ec4899"}, {"coral", "#ff7f50"}, {"salmon", "#fa8072"},
	{"kırmızı", "#ef4444"}, {"pembe", "#ec4899"}, {"mercan", "#ff7f50"},
	// оранжевые
	{"orange", "#f97316"}, {"tangerine", "#ff9966"}, {"peach", "#ffcba4"}, {"amber", "#ffbf00"},
	{"turuncu", "#f97316"}, {"portakal", "#f97316"},
	// жёлтые
	{"yellow", "#eab308"}, {"gold", "#ffd700"}, {"golden", "#ffd700"}, {"lemon", "#fff44f"},
	{"sunshine", "#fffd37"}, {"honey", "#eb9605"},
	{"sarı", "#eab308"}, {"altın", "#ffd700"},
	// зелёные
	{"green", "#22c55e"}, {"emerald", "#50c878"}, {"emerald green", "#50c878"}, {"jade", "#00a86b"},
	{"mint", "#3eb489"}, {"lime", "#84cc16"}, {"olive", "#808000"}, {"forest", "#228b22"},
	{"sage", "#9dc183"}, {"teal", "#14b8a6"}, {"turquoise", "#40e0d0"},
	{"yeşil", "#22c55e"}, {"zümrüt", "#50c878"}, {"nane", "#3eb489"}, {"limon", "#84cc16"},
	// синие
	{"blue", "#3b82f6"}, {"navy", "#000080"}, {"royal blue", "#4169e1"}, {"sky", "#0ea5e9"},
	{"azure", "#007fff"}, {"cobalt", "#0047ab"}, {"sapphire", "#0f52ba"}, {"indigo", "#4b0082"},
	{"cyan", "#06b6d4"}, {"aqua", "#00ffff"}, {"ocean", "#006994"},
	{"mavi", "#3b82f6"}, {"lacivert", "#000080"}, {"gökyüzü", "#0ea5e9"},
	// фиолетовые
	{"purple", "#a855f7"}, {"royal purple", "#7851a9"}, {"violet", "#8b5cf6"}, {"lavender", "#e6e6fa"},
	{"lilac", "#c8a2c8"}, {"plum", "#dda0dd"}, {"magenta", "#ff00ff"}, {"orchid", "#da70d6"},
	{"amethyst", "#9966cc"},
	{"mor", "#a855f7"}, {"menekşe", "#8b5cf6"}, {"lavanta", "#e6e6fa"},
	// коричневые и нейтральные
	{"brown", "#92400e"}, {"chocolate", "#7b3f00"}, {"copper", "#b87333"}, {"bronze", "#cd7f32"},
	{"tan", "#d2b48c"}, {"beige", "#f5f5dc"}, {"cream", "#fffdd0"},
	{"kahverengi", "#92400e"}, {"bej", "#f5f5dc"},
	// чёрные, белые, серые
	{"black", "#1f2937"}, {"white", "#f9fafb"}, {"silver", "#c0c0c0"}, {"gray", "#6b7280"}, {"grey", "#6b7280"},
	{"siyah", "#1f2937"}, {"beyaz", "#f9fafb"}, {"gümüş", "#c0c0c0"}, {"gri", "#6b7280"},
	{"maroon", "#800000"}, {"burgundy", "#800020"}, {"wine", "#722f37"}, {"champagne", "#f7e7ce"},
}

// ColorToHex переводит название цвета в hex: точное совпадение, затем самое длинное вхождение, затем DefaultColorHex
func ColorToHex(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return DefaultColorHex
	}

	best := colorEntry{}
	for _, c := range colorLexicon {
		if c.name == lower {
			return c.hex
		}
		if len(c.name) > len(best.name) && strings.Contains(lower, c.name) {
			best = c
		}
	}
	if best.hex == "" {
		return DefaultColorHex
	}
	return best.hex
}
