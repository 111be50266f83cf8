package hebrew

import (
	"strings"
	"sync"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Clean pipeline
// 1 UTF-8 repair drop invalid bytes
// 2 NFD decomposition so presentation forms split into letter + mark
// 3 Remove cantillation and niqqud (U+0591..U+05C7) and the bidi marks LRM/RLM
// 4 Drop the preposition ב standing alone or glued to a month word; fold variant spellings
// 5 Strip numeral punctuation
// 6 Collapse whitespace to single spaces and trim

const prefixBet = "ב"

func isMark(r rune) bool {
	return (r >= 0x0591 && r <= 0x05C7) || r == 0x200E || r == 0x200F
}

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isMark)))
	},
}

// monthHeads are the first words of every label; a ב glued in front of one is a preposition
var monthHeads = func() []string {
	out := make([]string, 0, monthCount)
	for m := AdarII; m < monthCount; m++ {
		out = append(out, strings.Fields(m.Label())[0])
	}
	for v := range spellings {
		out = append(out, v)
	}
	return out
}()

// spellings maps common variant spellings onto canonical labels; pointed אִיָּר loses a yod
var spellings = map[string]string{
	"איר":     "אייר",
	"סיוון":   "סיון",
	"חשוון":   "חשון",
	"מרחשוון": "מרחשון",
}

// stripMarks runs steps 1-3
func stripMarks(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToValidUTF8(s, "")
	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return s
	}
	return out
}

func collapse(s string) string { return strings.Join(strings.Fields(s), " ") }

func gluedToMonth(tok string) (string, bool) {
	rest, ok := strings.CutPrefix(tok, prefixBet)
	if !ok || rest == "" {
		return tok, false
	}
	rest = stripNumeralPunct(rest)
	for _, h := range monthHeads {
		if strings.HasPrefix(rest, h) {
			return rest, true
		}
	}
	return tok, false
}

// Clean normalizes free text before month search; see the pipeline above
// A ב with a geresh (ב׳) is the numeral two and survives, as does the ב of "אדר ב"
func Clean(text string) string {
	fields := strings.Fields(stripMarks(text))
	out := make([]string, 0, len(fields))
	for _, tok := range fields {
		if tok == prefixBet {
			if n := len(out); n == 0 || out[n-1] != Adar.Label() {
				continue
			}
		}
		tok, _ = gluedToMonth(tok)
		if canon, ok := spellings[tok]; ok {
			tok = canon
		}
		// a signed number keeps its sign so it can be rejected later
		if _, num := plainNumber(tok); !num {
			tok = stripNumeralPunct(tok)
		}
		if tok != "" {
			out = append(out, tok)
		}
	}
	return strings.Join(out, " ")
}
