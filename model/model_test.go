package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineJSON(t *testing.T) {
	lines := []Line{
		Metadata{Key: "title", Value: "Lucky"},
		SectionStart{Section: Chorus},
		Content{Segments: []Segment{{Chord: "C", Lyrics: "Hi "}, Bar(), {Lyrics: "there"}}},
		Content{},
		SectionEnd{},
	}
	data, err := json.Marshal(lines)
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"type":"metadata","key":"title","value":"Lucky"},
		{"type":"section_start","section":"chorus"},
		{"type":"line","pairs":[
			{"chord":"C","lyrics":"Hi "},
			{"isBarline":true},
			{"chord":"","lyrics":"there"}
		]},
		{"type":"line","pairs":[]},
		{"type":"section_end"}
	]`, string(data))
}

func TestNewSong(t *testing.T) {
	assert := assert.New(t)

	song, err := NewSong("  Lucky ", "Someone", "Bb", "{key: Bb}", []string{"folk", "Folk", "folk", " ", "live"})
	require.NoError(t, err)
	assert.Equal("Lucky", song.Title)
	assert.Equal("Bb", song.Key)
	assert.Equal([]Tag{{"Folk"}, {"folk"}, {"live"}}, song.Tags)
	assert.Equal(SongID("Lucky", "Someone"), song.ID)
	assert.NotEqual(SongID("Lucky", ""), song.ID)
}

func TestNewSongValidation(t *testing.T) {
	_, err := NewSong("", "", "C", "", nil)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = NewSong("x", "", "A#", "", nil)
	assert.ErrorIs(t, err, ErrInvalidKey)

	song, err := NewSong("x", "", "C", "", nil)
	require.NoError(t, err)
	assert.Equal(t, []Tag{}, song.Tags)
}

func TestSongMatches(t *testing.T) {
	song := Song{Title: "Over the Rainbow", Artist: "Judy", Tags: []Tag{{"Standards"}}}
	assert := assert.New(t)
	assert.True(song.Matches("rainbow"))
	assert.True(song.Matches("JUDY"))
	assert.True(song.Matches("standard"))
	assert.True(song.Matches(""))
	assert.False(song.Matches("polka"))
}
