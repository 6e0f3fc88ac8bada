package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsphweid/chordsheet/model"
)

var sectionStarts = map[string]model.Section{
	"start_of_verse":  model.Verse,
	"sov":             model.Verse,
	"start_of_chorus": model.Chorus,
	"soc":             model.Chorus,
	"start_of_bridge": model.Bridge,
	"sob":             model.Bridge,
	"bridge":          model.Bridge,
	"b":               model.Bridge,
	"start_of_intro":  model.Intro,
	"soi":             model.Intro,
	"start_of_outro":  model.Outro,
	"soo":             model.Outro,
	"solo":            model.Solo,
	"s":               model.Solo,
}

var sectionEnds = map[string]bool{
	"end_of_verse":  true,
	"eov":           true,
	"end_of_chorus": true,
	"eoc":           true,
	"end_of_bridge": true,
	"eob":           true,
	"end_of_intro":  true,
	"eoi":           true,
	"end_of_outro":  true,
	"eoo":           true,
	"end":           true,
}

// ParseDocument parses every line of text in order.
func ParseDocument(text string) []model.Line {
	rawLines := strings.Split(text, "\n")
	lines := make([]model.Line, 0, len(rawLines))
	for _, raw := range rawLines {
		lines = append(lines, ParseLine(strings.TrimSuffix(raw, "\r")))
	}
	return lines
}

// ParseLine never fails. Anything that is not a directive is treated as a
// content line, however malformed.
func ParseLine(raw string) model.Line {
	if isDirective(raw) {
		return parseDirective(raw[1 : len(raw)-1])
	}
	return model.Content{Segments: scanSegments(raw)}
}

// Surrounding whitespace disqualifies a directive on purpose.
func isDirective(raw string) bool {
	return len(raw) >= 2 && strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}")
}

func parseDirective(content string) model.Line {
	lower := strings.ToLower(content)
	if section, ok := sectionStarts[lower]; ok {
		return model.SectionStart{Section: section}
	}
	if sectionEnds[lower] {
		return model.SectionEnd{}
	}

	key, value, found := strings.Cut(content, ":")
	if !found {
		return model.Metadata{Key: content}
	}
	return model.Metadata{
		Key:   strings.ToLower(strings.TrimSpace(key)),
		Value: strings.TrimSpace(value),
	}
}

type scanState uint8

const (
	inLyric scanState = iota
	inChord
)

type scanner struct {
	state    scanState
	chord    strings.Builder
	lyrics   strings.Builder
	segments []model.Segment
}

func (s *scanner) flush() {
	if s.chord.Len() > 0 || s.lyrics.Len() > 0 {
		s.segments = append(s.segments, model.Segment{
			Chord:  s.chord.String(),
			Lyrics: s.lyrics.String(),
		})
	}
	s.chord.Reset()
	s.lyrics.Reset()
}

// flushTrimmed is the end-of-line and bar-line flush: a lyric made only of
// whitespace does not produce a segment on its own.
func (s *scanner) flushTrimmed() {
	if s.chord.Len() == 0 && strings.TrimSpace(s.lyrics.String()) == "" {
		s.lyrics.Reset()
		return
	}
	s.flush()
}

func (s *scanner) trimLyricsRight() {
	trimmed := strings.TrimRightFunc(s.lyrics.String(), unicode.IsSpace)
	s.lyrics.Reset()
	s.lyrics.WriteString(trimmed)
}

func scanSegments(raw string) []model.Segment {
	var s scanner

	// bytes are copied through as-is so invalid UTF-8 survives untouched
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRuneInString(raw[i:])
		switch {
		case r == '|':
			// bar lines split a line even inside an unclosed chord
			s.trimLyricsRight()
			s.flushTrimmed()
			s.segments = append(s.segments, model.Bar())
			for i+size < len(raw) {
				next, n := utf8.DecodeRuneInString(raw[i+size:])
				if !unicode.IsSpace(next) {
					break
				}
				size += n
			}
		case r == '[':
			if s.state == inChord {
				s.chord.Reset()
			} else {
				s.flush()
			}
			s.state = inChord
		case r == ']':
			s.state = inLyric
		case s.state == inChord:
			s.chord.WriteString(raw[i : i+size])
		default:
			s.lyrics.WriteString(raw[i : i+size])
		}
		i += size
	}

	// An unclosed "[" keeps everything after it in the chord buffer.
	s.flushTrimmed()
	return s.segments
}
