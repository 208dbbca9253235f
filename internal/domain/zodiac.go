package domain

import (
	"fmt"
	"time"
)

type Element string

const (
	ElementFire  Element = "Fire"
	ElementEarth Element = "Earth"
	ElementAir   Element = "Air"
	ElementWater Element = "Water"
)

var Elements = []Element{ElementFire, ElementEarth, ElementAir, ElementWater}

type WesternSign string

const (
	Aries       WesternSign = "Aries"
	Taurus      WesternSign = "Taurus"
	Gemini      WesternSign = "Gemini"
	Cancer      WesternSign = "Cancer"
	Leo         WesternSign = "Leo"
	Virgo       WesternSign = "Virgo"
	Libra       WesternSign = "Libra"
	Scorpio     WesternSign = "Scorpio"
	Sagittarius WesternSign = "Sagittarius"
	Capricorn   WesternSign = "Capricorn"
	Aquarius    WesternSign = "Aquarius"
	Pisces      WesternSign = "Pisces"
)

var WesternSigns = []WesternSign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

type ChineseAnimal string

const (
	Rat     ChineseAnimal = "Rat"
	Ox      ChineseAnimal = "Ox"
	Tiger   ChineseAnimal = "Tiger"
	Rabbit  ChineseAnimal = "Rabbit"
	Dragon  ChineseAnimal = "Dragon"
	Snake   ChineseAnimal = "Snake"
	Horse   ChineseAnimal = "Horse"
	Goat    ChineseAnimal = "Goat"
	Monkey  ChineseAnimal = "Monkey"
	Rooster ChineseAnimal = "Rooster"
	Dog     ChineseAnimal = "Dog"
	Pig     ChineseAnimal = "Pig"
)

// ChineseAnimals порядок цикла: индекс 0 соответствует 4 году н.э. (Крыса)
var ChineseAnimals = []ChineseAnimal{
	Rat, Ox, Tiger, Rabbit, Dragon, Snake, Horse, Goat, Monkey, Rooster, Dog, Pig,
}

type ChineseElement string

const (
	ChineseMetal ChineseElement = "Metal"
	ChineseWater ChineseElement = "Water"
	ChineseWood  ChineseElement = "Wood"
	ChineseFire  ChineseElement = "Fire"
	ChineseEarth ChineseElement = "Earth"
)

// chineseElementsByYear индекс - год mod 10
var chineseElementsByYear = [10]ChineseElement{
	ChineseMetal, ChineseMetal, ChineseWater, ChineseWater, ChineseWood,
	ChineseWood, ChineseFire, ChineseFire, ChineseEarth, ChineseEarth,
}

type Polarity string

const (
	Yang Polarity = "Yang"
	Yin  Polarity = "Yin"
)

var signElements = map[WesternSign]Element{
	Aries: ElementFire, Taurus: ElementEarth, Gemini: ElementAir, Cancer: ElementWater,
	Leo: ElementFire, Virgo: ElementEarth, Libra: ElementAir, Scorpio: ElementWater,
	Sagittarius: ElementFire, Capricorn: ElementEarth, Aquarius: ElementAir, Pisces: ElementWater,
}

// signStarts даты начала знаков в порядке календарного года
// до 20 января действует Козерог, начавшийся в прошлом году
var signStarts = []struct {
	month time.Month
	day   int
	sign  WesternSign
}{
	{time.January, 20, Aquarius},
	{time.February, 19, Pisces},
	{time.March, 21, Aries},
	{time.April, 20, Taurus},
	{time.May, 21, Gemini},
	{time.June, 21, Cancer},
	{time.July, 23, Leo},
	{time.August, 23, Virgo},
	{time.September, 23, Libra},
	{time.October, 23, Scorpio},
	{time.November, 22, Sagittarius},
	{time.December, 22, Capricorn},
}

var signIcons = map[WesternSign]string{
	Aries: "♈", Taurus: "♉", Gemini: "♊", Cancer: "♋",
	Leo: "♌", Virgo: "♍", Libra: "♎", Scorpio: "♏",
	Sagittarius: "♐", Capricorn: "♑", Aquarius: "♒", Pisces: "♓",
}

var animalIcons = map[ChineseAnimal]string{
	Rat: "🐀", Ox: "🐂", Tiger: "🐅", Rabbit: "🐇", Dragon: "🐉", Snake: "🐍",
	Horse: "🐎", Goat: "🐐", Monkey: "🐒", Rooster: "🐓", Dog: "🐕", Pig: "🐖",
}

var elementTraits = map[Locale]map[Element]string{
	LocaleEN: {ElementFire: "Vitality", ElementEarth: "Stability", ElementAir: "Intellect", ElementWater: "Intuition"},
	LocaleTR: {ElementFire: "Canlılık", ElementEarth: "Denge", ElementAir: "Zihin", ElementWater: "Sezgi"},
	LocaleTH: {ElementFire: "ชีวิตชีวา", ElementEarth: "เสถียรภาพ", ElementAir: "ปัญญา", ElementWater: "สัญชาตญาณ"},
}

const (
	defaultSignIcon   = "✨"
	defaultAnimalIcon = "🏮"
)

type WesternZodiac struct {
	Sign    WesternSign `json:"sign"`
	Element Element     `json:"element"`
}

type ChineseZodiac struct {
	Animal   ChineseAnimal  `json:"animal"`
	Element  ChineseElement `json:"element"`
	Polarity Polarity       `json:"polarity"`
}

// ComputedProfile производный астрологический профиль, зависит только от даты рождения
type ComputedProfile struct {
	WesternZodiac WesternZodiac `json:"westernZodiac"`
	ChineseZodiac ChineseZodiac `json:"chineseZodiac"`
}

// ComputeProfile рассчитывает западный и китайский знаки по дате рождения
func ComputeProfile(birthDate CivilDate) ComputedProfile {
	sign := WesternSignOf(birthDate.Month, birthDate.Day)
	return ComputedProfile{
		WesternZodiac: WesternZodiac{Sign: sign, Element: signElements[sign]},
		ChineseZodiac: ChineseZodiacOf(birthDate.Year),
	}
}

// WesternSignOf тропический знак по месяцу и дню
func WesternSignOf(month time.Month, day int) WesternSign {
	for i := len(signStarts) - 1; i >= 0; i-- {
		s := signStarts[i]
		if month > s.month || (month == s.month && day >= s.day) {
			return s.sign
		}
	}
	return Capricorn
}

func ChineseZodiacOf(year int) ChineseZodiac {
	polarity := Yang
	if mod(year, 2) == 1 {
		polarity = Yin
	}
	return ChineseZodiac{
		Animal:   ChineseAnimals[mod(year-4, len(ChineseAnimals))],
		Element:  chineseElementsByYear[mod(year, 10)],
		Polarity: polarity,
	}
}

func (s WesternSign) Element() Element {
	return signElements[s]
}

func (s WesternSign) Icon() string {
	if icon, ok := signIcons[s]; ok {
		return icon
	}
	return defaultSignIcon
}

func (a ChineseAnimal) Icon() string {
	if icon, ok := animalIcons[a]; ok {
		return icon
	}
	return defaultAnimalIcon
}

// ElementTrait ключевое качество стихии; неизвестная локаль - английский, неизвестная стихия - пустая строка
func ElementTrait(e Element, locale Locale) string {
	if traits, ok := elementTraits[locale]; ok {
		if trait, ok := traits[e]; ok {
			return trait
		}
	}
	return elementTraits[DefaultLocale][e]
}

// mod неотрицательный остаток
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func mustCoverAll[K comparable, V any](table string, keys []K, m map[K]V) {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			panic(fmt.Sprintf("domain: table %q has no entry for %v", table, k))
		}
	}
}

func init() {
	mustCoverAll("sign elements", WesternSigns, signElements)
	mustCoverAll("sign icons", WesternSigns, signIcons)
	mustCoverAll("animal icons", ChineseAnimals, animalIcons)
	mustCoverAll("element traits", SupportedLocales, elementTraits)
	for _, l := range SupportedLocales {
		mustCoverAll("element traits "+string(l), Elements, elementTraits[l])
	}
	if len(signStarts) != len(WesternSigns) {
		panic("domain: sign start table must list every sign once")
	}
}
