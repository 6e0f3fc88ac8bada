package note

import "github.com/jsphweid/chordsheet/util"

// PitchClass is one of the twelve chromatic steps, C = 0 through B = 11.
type PitchClass int

func (p PitchClass) Shift(semitones int) PitchClass {
	return PitchClass(util.Mod(int(p)+semitones, 12))
}

var pitchClasses = map[string]PitchClass{
	"C":  0,
	"B#": 0,
	"C#": 1,
	"Db": 1,
	"D":  2,
	"D#": 3,
	"Eb": 3,
	"E":  4,
	"Fb": 4,
	"F":  5,
	"E#": 5,
	"F#": 6,
	"Gb": 6,
	"G":  7,
	"G#": 8,
	"Ab": 8,
	"A":  9,
	"A#": 10,
	"Bb": 10,
	"B":  11,
	"Cb": 11,
}

var sharps = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flats = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var flatKeys = map[string]bool{"F": true, "Bb": true, "Eb": true, "Ab": true, "Db": true, "Gb": true}

// Keys is the fixed key list transpositions are measured over.
var Keys = flats

// Lookup resolves a spelling like "C#" or "Db". Spellings are case sensitive.
func Lookup(name string) (PitchClass, bool) {
	pc, ok := pitchClasses[name]
	return pc, ok
}

func PrefersFlats(key string) bool {
	return flatKeys[key]
}

func (p PitchClass) Sharp() string {
	return sharps[util.Mod(int(p), 12)]
}

func (p PitchClass) Flat() string {
	return flats[util.Mod(int(p), 12)]
}

// Spell names p the way it should be written in destKey.
func Spell(p PitchClass, destKey string) string {
	if PrefersFlats(destKey) {
		return p.Flat()
	}
	return p.Sharp()
}

func KeyIndex(key string) (int, bool) {
	for i, k := range Keys {
		if k == key {
			return i, true
		}
	}
	return -1, false
}

// Semitones is the upward distance from one key to another, in [0, 12). It
// reports false when either key is not one of Keys.
func Semitones(from, to string) (int, bool) {
	fromIndex, ok := KeyIndex(from)
	if !ok {
		return 0, false
	}
	toIndex, ok := KeyIndex(to)
	if !ok {
		return 0, false
	}
	return (toIndex - fromIndex + 12) % 12, true
}
