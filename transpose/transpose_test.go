package transpose

import (
	"fmt"
	"testing"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/note"
	"github.com/jsphweid/chordsheet/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	cases := []struct {
		raw       string
		semitones int
		destKey   string
		want      string
	}{
		{"[C]Test", 2, "D", "[D]Test"},
		{"[F]Test", 1, "Bb", "[Gb]Test"},
		{"[C/E]Test", 2, "D", "[D/F#]Test"},
		{"[N.C.]rest", 3, "D", "[N.C.]rest"},
		{"[C]Hello [G]world", 2, "D", "[D]Hello [A]world"},
		{"a [Am] b", 5, "D", "a [Dm] b"},
		{"[Em]Why then | [Am]why | [F]I?[C] |", 1, "F", "[Fm]Why then | [Bbm]why | [Gb]I?[Db] |"},
		{"no chords here", 4, "E", "no chords here"},
		{"[]empty", 4, "E", "[]empty"},
		{"[C", 4, "E", "[C"},
		{"[C]x", -2, "Bb", "[Bb]x"},
		{"[C]x", 26, "D", "[D]x"},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%s %+d %s", c.raw, c.semitones, c.destKey)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, Line(c.raw, c.semitones, c.destKey))
		})
	}
}

func TestZeroShiftLeavesLineAlone(t *testing.T) {
	names := []string{
		"C", "C#", "Db", "D", "D#", "Eb", "E", "F", "F#", "Gb",
		"G", "G#", "Ab", "A", "A#", "Bb", "B",
	}
	for _, n := range names {
		raw := fmt.Sprintf("[%sm7]la [%s/%s]di", n, n, n)
		for _, key := range note.Keys {
			assert.Equal(t, raw, Line(raw, 0, key))
			assert.Equal(t, raw, Line(raw, 12, key))
		}
	}
}

func rootsOf(t *testing.T, raw string) []note.PitchClass {
	var roots []note.PitchClass
	for _, s := range parser.ParseLine(raw).(model.Content).Segments {
		if s.Chord == "" {
			continue
		}
		token, ok := chord.Parse(s.Chord)
		require.True(t, ok, s.Chord)
		pc, ok := note.Lookup(token.Root)
		require.True(t, ok, s.Chord)
		roots = append(roots, pc)
	}
	return roots
}

func TestRoundTripKeepsPitchClasses(t *testing.T) {
	raw := "[C]Some[Am]where | [F#m7]over [Bb/D]the | [Ebmaj7]rain[G#]bow"
	want := rootsOf(t, raw)

	for k := 0; k < 12; k++ {
		up := Line(raw, k, "C")
		back := Line(up, (12-k)%12, "Eb")
		assert.Equal(t, want, rootsOf(t, back), "k=%d", k)
	}
}

func TestLeadingSpaceIsPreserved(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("word [D]x", Line("word [C]x", 2, "D"))
	assert.Equal("word  [D]x", Line("word  [C]x", 2, "D"))
	assert.Equal(" [D]", Line(" [C]", 2, "D"))
}

func TestDocument(t *testing.T) {
	in := "{title: I Feel Lucky}\n{key: C}\n{start_of_verse}\n[C]Somewhere | [Am]over the | rainbow |\n{end_of_verse}"
	out, err := Document(in, "C", "D")
	require.NoError(t, err)
	assert.Equal(t,
		"{title: I Feel Lucky}\n{key: D}\n{start_of_verse}\n[D]Somewhere | [Bm]over the | rainbow |\n{end_of_verse}",
		out,
	)
}

func TestDocumentKeepsCRLF(t *testing.T) {
	out, err := Document("{title: T}\r\n{key: C}\r\n[C]x\r\n", "C", "D")
	require.NoError(t, err)
	assert.Equal(t, "{title: T}\r\n{key: D}\r\n[D]x\r\n", out)
}

func TestDocumentKeyDirectiveIsCaseInsensitive(t *testing.T) {
	out, err := Document("{KEY:C}\n[F]x", "C", "F")
	require.NoError(t, err)
	assert.Equal(t, "{key: F}\n[Bb]x", out)
}

func TestDocumentUnknownKeyIsNoOp(t *testing.T) {
	in := "{key: C}\n[C]x"
	for _, keys := range [][2]string{{"C", "C#"}, {"H", "D"}, {"", ""}, {"Am", "Bm"}} {
		out, err := Document(in, keys[0], keys[1])
		assert.ErrorIs(t, err, ErrUnknownKey)
		assert.Equal(t, in, out)
	}
}

func TestDocumentSameKeyKeepsChords(t *testing.T) {
	out, err := Document("{key: Eb}\n[D#]x", "Eb", "Eb")
	require.NoError(t, err)
	assert.Equal(t, "{key: Eb}\n[D#]x", out)
}

func TestIsKeyDirective(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsKeyDirective("{key: C}"))
	assert.True(IsKeyDirective("{Key:C}"))
	assert.False(IsKeyDirective("{key C}"))
	assert.False(IsKeyDirective(" {key: C}"))
	assert.False(IsKeyDirective("{keyboard: Rhodes}"))
}
