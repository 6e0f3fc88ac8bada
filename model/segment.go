package model

import "encoding/json"

type SegmentKind uint8

const (
	SegmentLyric SegmentKind = iota
	SegmentChord
	SegmentPair
	SegmentBarline
)

// Segment is one display cell of a content line: a chord over a lyric, either
// side possibly empty, or a bar line carrying no text.
type Segment struct {
	Chord   string
	Lyrics  string
	Barline bool
}

func Bar() Segment {
	return Segment{Barline: true}
}

func (s Segment) Kind() SegmentKind {
	switch {
	case s.Barline:
		return SegmentBarline
	case s.Chord == "":
		return SegmentLyric
	case s.Lyrics == "":
		return SegmentChord
	default:
		return SegmentPair
	}
}

func (s Segment) MarshalJSON() ([]byte, error) {
	if s.Barline {
		return []byte(`{"isBarline":true}`), nil
	}
	return json.Marshal(struct {
		Chord  string `json:"chord"`
		Lyrics string `json:"lyrics"`
	}{s.Chord, s.Lyrics})
}
