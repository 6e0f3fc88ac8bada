package sheet

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/model"
)

type RenderOptions struct {
	// SpaceGlyph replaces every `~` in lyrics. Empty means
	// constants.DefaultSpaceGlyph.
	SpaceGlyph string
	// ChorusIndent prefixes every row of a chorus block.
	ChorusIndent string
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		SpaceGlyph:   constants.GetSpaceGlyph(),
		ChorusIndent: "  ",
	}
}

const barCell = " | "

// Render lays a sheet out as plain text, a chord row above each lyric row.
func Render(w io.Writer, s Sheet, opts RenderOptions) error {
	if opts.SpaceGlyph == "" {
		opts.SpaceGlyph = constants.DefaultSpaceGlyph
	}

	bw := bufio.NewWriter(w)
	if s.Title != "" {
		fmt.Fprintln(bw, s.Title)
	}
	if s.Key != "" {
		fmt.Fprintf(bw, "Key: %s\n", s.Key)
	}
	for _, m := range s.Preamble {
		if Displayable(m) {
			fmt.Fprintln(bw, m.Value)
		}
	}

	for _, b := range s.Blocks {
		indent := ""
		if b.Section == model.Chorus {
			indent = opts.ChorusIndent
		}
		// a continued block runs on from the rows above it
		if !b.Continued {
			fmt.Fprintln(bw)
		}
		if b.Section != "" && !b.Continued {
			fmt.Fprintf(bw, "%s%s:\n", indent, heading(b.Section))
		}
		for _, note := range b.Notes {
			fmt.Fprintln(bw, indent+note.Value)
		}
		for _, line := range b.Lines {
			chords, lyrics := Rows(line, opts.SpaceGlyph)
			if chords != "" {
				fmt.Fprintln(bw, strings.TrimRight(indent+chords, " "))
			}
			fmt.Fprintln(bw, strings.TrimRight(indent+lyrics, " "))
		}
	}
	return bw.Flush()
}

func heading(section model.Section) string {
	name := string(section)
	return strings.ToUpper(name[:1]) + name[1:]
}

// Rows lays out one content line as a chord row and a lyric row of equal
// width. Every segment reserves a cell in both rows, so an empty chord or an
// empty lyric still keeps the two rows aligned. The chord row is empty when
// the line has no chords at all.
func Rows(line model.Content, spaceGlyph string) (string, string) {
	var chords, lyrics strings.Builder
	hasChords := false

	for _, seg := range line.Segments {
		if seg.Barline {
			chords.WriteString(barCell)
			lyrics.WriteString(barCell)
			continue
		}

		text := strings.ReplaceAll(seg.Lyrics, constants.SpaceMarker, spaceGlyph)
		chordWidth := utf8.RuneCountInString(seg.Chord)
		if seg.Chord != "" {
			hasChords = true
			// keep neighbouring chords from running into each other
			chordWidth++
		}
		width := max(chordWidth, utf8.RuneCountInString(text))

		chords.WriteString(pad(seg.Chord, width))
		lyrics.WriteString(pad(text, width))
	}

	if !hasChords {
		return "", lyrics.String()
	}
	return chords.String(), lyrics.String()
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
