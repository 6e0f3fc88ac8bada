package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/chordsheet/note"
	"github.com/jsphweid/chordsheet/util"
)

var (
	ErrEmptyTitle = errors.New("song title is empty")
	ErrInvalidKey = errors.New("song key is not one of the twelve keys")
)

// songNamespace scopes song ids so they never collide with other SHA-1 UUIDs.
var songNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("chordsheet:song"))

type Tag struct {
	Name string `json:"name"`
}

// Song is the document shape handed to a storage collaborator.
type Song struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Artist  string `json:"artist,omitempty"`
	Key     string `json:"key"`
	Content string `json:"content"`
	Tags    []Tag  `json:"tags"`
}

// SongID is stable for a given title and artist.
func SongID(title, artist string) string {
	return uuid.NewSHA1(songNamespace, []byte(title+"\x00"+artist)).String()
}

func NewSong(title, artist, key, content string, tags []string) (Song, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Song{}, ErrEmptyTitle
	}
	if _, ok := note.KeyIndex(key); !ok {
		return Song{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	artist = strings.TrimSpace(artist)
	return Song{
		ID:      SongID(title, artist),
		Title:   title,
		Artist:  artist,
		Key:     key,
		Content: content,
		Tags:    NormalizeTags(tags),
	}, nil
}

// NormalizeTags drops blanks and duplicates. Names are case sensitive, and
// the result is sorted since tag sets have no order of their own.
func NormalizeTags(names []string) []Tag {
	set := make(map[string]struct{})
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			set[name] = struct{}{}
		}
	}

	tags := make([]Tag, 0, len(set))
	for _, name := range util.GetKeys(set) {
		tags = append(tags, Tag{Name: name})
	}
	return tags
}

// Matches is the song list filter: a case-insensitive substring match on
// title, artist or any tag name.
func (s Song) Matches(term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(s.Title), term) ||
		strings.Contains(strings.ToLower(s.Artist), term) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag.Name), term) {
			return true
		}
	}
	return false
}
