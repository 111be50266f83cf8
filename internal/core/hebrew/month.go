package hebrew

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Month is one canonical month spelling; alternate spellings share an ordinal
type Month uint8

// Declaration order is the tie-break for equal length labels in FindMonth
const (
	MonthNone Month = iota
	AdarII
	AdarI
	MarCheshvan
	MenachemAv
	Tishrei
	Cheshvan
	Kislev
	Tevet
	Shvat
	Adar
	Nisan
	Iyyar
	Sivan
	Tammuz
	Av
	Elul
	monthCount
)

type monthInfo struct {
	label    string
	ordinal  int
	external string
	pointed  string
}

var monthTable = [monthCount]monthInfo{
	AdarII:      {"אדר ב", 13, "Adar II", "אַדָר ב׳"},
	AdarI:       {"אדר א", 12, "Adar I", "אַדָר א׳"},
	MarCheshvan: {"מרחשון", 8, "Cheshvan", "מַרְחֶשְׁוָן"},
	MenachemAv:  {"מנחם אב", 5, "Av", "מְנַחֵם אָב"},
	Tishrei:     {"תשרי", 7, "Tishrei", "תִּשְׁרֵי"},
	Cheshvan:    {"חשון", 8, "Cheshvan", "חֶשְׁוָן"},
	Kislev:      {"כסלו", 9, "Kislev", "כִּסְלֵו"},
	Tevet:       {"טבת", 10, "Tevet", "טֵבֵת"},
	Shvat:       {"שבט", 11, "Shvat", "שְׁבָט"},
	Adar:        {"אדר", 12, "Adar", "אַדָר"},
	Nisan:       {"ניסן", 1, "Nisan", "נִיסָן"},
	Iyyar:       {"אייר", 2, "Iyyar", "אִיָּר"},
	Sivan:       {"סיון", 3, "Sivan", "סִיוָן"},
	Tammuz:      {"תמוז", 4, "Tammuz", "תַּמּוּז"},
	Av:          {"אב", 5, "Av", "אָב"},
	Elul:        {"אלול", 6, "Elul", "אֱלוּל"},
}

var (
	byLabel  = make(map[string]Month, monthCount)
	inMonth  [monthCount]string
	byLength []Month
	// canonical entry per external label; the short spelling wins over מרחשון and מנחם אב
	byExternal = map[string]Month{
		"adar ii":     AdarII,
		"adar 2":      AdarII,
		"adar i":      AdarI,
		"adar 1":      AdarI,
		"cheshvan":    Cheshvan,
		"heshvan":     Cheshvan,
		"marcheshvan": MarCheshvan,
		"tishrei":     Tishrei,
		"tishri":      Tishrei,
		"kislev":      Kislev,
		"tevet":       Tevet,
		"teves":       Tevet,
		"shvat":       Shvat,
		"shevat":      Shvat,
		"adar":        Adar,
		"nisan":       Nisan,
		"nissan":      Nisan,
		"iyyar":       Iyyar,
		"iyar":        Iyyar,
		"sivan":       Sivan,
		"tammuz":      Tammuz,
		"tamuz":       Tammuz,
		"av":          Av,
		"elul":        Elul,
	}
	displayHead = []Month{AdarI, AdarII, Adar, MarCheshvan, MenachemAv}
	display     []Month
)

func init() {
	byLength = make([]Month, 0, monthCount-1)
	for m := AdarII; m < monthCount; m++ {
		byLabel[monthTable[m].label] = m
		inMonth[m] = withBet(monthTable[m].pointed)
		byLength = append(byLength, m)
	}
	// stable keeps declaration order among equal lengths
	slices.SortStableFunc(byLength, func(a, b Month) int {
		return runeLen(b.Label()) - runeLen(a.Label())
	})

	rest := make([]Month, 0, len(byLength))
	for m := AdarII; m < monthCount; m++ {
		if !slices.Contains(displayHead, m) {
			rest = append(rest, m)
		}
	}
	col := collate.New(language.Hebrew)
	slices.SortStableFunc(rest, func(a, b Month) int {
		return col.CompareString(a.Label(), b.Label())
	})
	display = append(slices.Clone(displayHead), rest...)
}

func runeLen(s string) int { return len([]rune(s)) }

// Valid reports whether m is one of the canonical entries
func (m Month) Valid() bool { return m > MonthNone && m < monthCount }

// Label is the canonical Hebrew spelling, also the override table key segment
func (m Month) Label() string {
	if !m.Valid() {
		return ""
	}
	return monthTable[m].label
}

// Ordinal is the month number 1..13 counted from Nisan
func (m Month) Ordinal() int {
	if !m.Valid() {
		return 0
	}
	return monthTable[m].ordinal
}

// External is the label the calendar capability understands
func (m Month) External() string {
	if !m.Valid() {
		return ""
	}
	return monthTable[m].external
}

// Pointed is the vocalized spelling used in formatted dates
func (m Month) Pointed() string {
	if !m.Valid() {
		return ""
	}
	return monthTable[m].pointed
}

// InMonth is the pointed spelling with the preposition ב attached, as in בְּתִשְׁרֵי or בִּשְׁבָט
func (m Month) InMonth() string {
	if !m.Valid() {
		return ""
	}
	return inMonth[m]
}

func (m Month) String() string { return m.Label() }

const (
	bet        = 'ב'
	sheva      = '\u05B0'
	hatafSegol = '\u05B1'
	hatafPatah = '\u05B2'
	hatafQamat = '\u05B3'
	hiriq      = '\u05B4'
	segol      = '\u05B6'
	patah      = '\u05B7'
	qamats     = '\u05B8'
	dagesh     = '\u05BC'
)

// withBet prefixes a pointed word with ב
// The first letter loses its dagesh lene; the ב takes hiriq before a sheva and the matching
// short vowel before a hataf, sheva otherwise
func withBet(pointed string) string {
	rs := []rune(pointed)
	if len(rs) == 0 {
		return ""
	}
	vowel := sheva
	word := make([]rune, 0, len(rs))
	word = append(word, rs[0])
	i := 1
	for ; i < len(rs) && isMark(rs[i]); i++ {
		switch rs[i] {
		case dagesh:
			continue
		case sheva:
			vowel = hiriq
		case hatafSegol:
			vowel = segol
		case hatafPatah:
			vowel = patah
		case hatafQamat:
			vowel = qamats
		}
		word = append(word, rs[i])
	}
	word = append(word, rs[i:]...)
	return string([]rune{bet, vowel, dagesh}) + string(word)
}

// ResolveMonth looks up a canonical month by exact label; niqqud and outer spaces are ignored
func ResolveMonth(token string) (Month, bool) {
	t := strings.TrimSpace(token)
	if m, ok := byLabel[t]; ok {
		return m, true
	}
	t = collapse(stripMarks(t))
	if canon, ok := spellings[t]; ok {
		t = canon
	}
	m, ok := byLabel[t]
	return m, ok
}

// FindMonth returns the longest canonical label contained in text and the byte index of its
// first occurrence; a label that is a substring of a longer match never wins
func FindMonth(text string) (Month, int, bool) {
	for _, m := range byLength {
		if i := strings.Index(text, m.Label()); i >= 0 {
			return m, i, true
		}
	}
	return MonthNone, -1, false
}

// MonthByExternal maps a capability label (Nisan, Sh'vat, Adar II) back to a canonical entry
func MonthByExternal(label string) (Month, bool) {
	k := strings.ToLower(strings.TrimSpace(label))
	k = strings.NewReplacer("'", "", "’", "", "-", " ").Replace(k)
	m, ok := byExternal[k]
	return m, ok
}

// Months lists the canonical entries in display order
func Months() []Month { return slices.Clone(display) }

// MonthLabels is Months rendered as labels
func MonthLabels() []string {
	out := make([]string, len(display))
	for i, m := range display {
		out[i] = m.Label()
	}
	return out
}
