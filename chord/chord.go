package chord

import (
	"regexp"
	"strings"

	"github.com/jsphweid/chordsheet/note"
)

var rootPattern = regexp.MustCompile(`^[A-G][#b]?`)

// Token is a chord symbol split into the parts transposition cares about.
// Quality is opaque and only ever copied through.
type Token struct {
	Root    string
	Quality string
	Bass    string
}

// Parse splits s on its first "/" and peels a root off the front. It reports
// false when s does not start with a note letter.
func Parse(s string) (Token, bool) {
	var t Token
	main := s
	if i := strings.Index(s, "/"); i != -1 {
		main = s[:i]
		t.Bass = s[i+1:]
	}

	t.Root = rootPattern.FindString(main)
	if t.Root == "" {
		return Token{}, false
	}
	t.Quality = main[len(t.Root):]
	return t, true
}

func (t Token) HasBass() bool {
	return t.Bass != ""
}

func (t Token) String() string {
	if t.HasBass() {
		return t.Root + t.Quality + "/" + t.Bass
	}
	return t.Root + t.Quality
}

// Transpose moves a chord symbol by semitones and spells the result for
// destKey. Symbols whose root is not a known note come back unchanged, and
// an unknown bass note is carried over verbatim.
func Transpose(s string, semitones int, destKey string) string {
	t, ok := Parse(s)
	if !ok {
		return s
	}
	root, ok := note.Lookup(t.Root)
	if !ok {
		return s
	}
	t.Root = note.Spell(root.Shift(semitones), destKey)

	if bass, ok := note.Lookup(t.Bass); ok {
		t.Bass = note.Spell(bass.Shift(semitones), destKey)
	}
	return t.String()
}
