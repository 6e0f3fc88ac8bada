package model

import "encoding/json"

type Section string

const (
	Verse  Section = "verse"
	Chorus Section = "chorus"
	Bridge Section = "bridge"
	Intro  Section = "intro"
	Outro  Section = "outro"
	Solo   Section = "solo"
)

// Line is one parsed line of a sheet. The set of implementations is closed:
// Metadata, SectionStart, SectionEnd and Content.
type Line interface {
	isLine()
}

type Metadata struct {
	Key   string
	Value string
}

type SectionStart struct {
	Section Section
}

// SectionEnd closes whichever section is open. It does not say which one.
type SectionEnd struct{}

type Content struct {
	Segments []Segment
}

func (Metadata) isLine()     {}
func (SectionStart) isLine() {}
func (SectionEnd) isLine()   {}
func (Content) isLine()      {}

func (m Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Key   string `json:"key"`
		Value string `json:"value"`
	}{"metadata", m.Key, m.Value})
}

func (s SectionStart) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string  `json:"type"`
		Section Section `json:"section"`
	}{"section_start", s.Section})
}

func (SectionEnd) MarshalJSON() ([]byte, error) {
	return []byte(`{"type":"section_end"}`), nil
}

func (c Content) MarshalJSON() ([]byte, error) {
	segments := c.Segments
	if segments == nil {
		segments = []Segment{}
	}
	return json.Marshal(struct {
		Type  string    `json:"type"`
		Pairs []Segment `json:"pairs"`
	}{"line", segments})
}
