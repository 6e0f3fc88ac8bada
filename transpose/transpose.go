package transpose

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/note"
	"github.com/jsphweid/chordsheet/util"
)

var ErrUnknownKey = errors.New("unknown key")

// group 1 is the optional leading space, group 2 the chord text
var chordPattern = regexp.MustCompile(`( ?)\[([^\]]*)\]`)

const keyDirectivePrefix = "{key:"

// Line rewrites every bracketed chord in raw. It works on the raw text rather
// than parsed segments so a sheet can be transposed before it is re-parsed.
func Line(raw string, semitones int, destKey string) string {
	semitones = util.Mod(semitones, 12)
	if semitones == 0 {
		return raw
	}

	return chordPattern.ReplaceAllStringFunc(raw, func(match string) string {
		groups := chordPattern.FindStringSubmatch(match)
		space, symbol := groups[1], groups[2]
		return space + "[" + chord.Transpose(symbol, semitones, destKey) + "]"
	})
}

// IsKeyDirective reports whether raw is a `{key: ...}` line.
func IsKeyDirective(raw string) bool {
	return strings.HasPrefix(strings.ToLower(raw), keyDirectivePrefix)
}

// Document moves a whole sheet from one key to another. The `{key: ...}`
// directive is rewritten to toKey rather than transposed. When either key is
// not one of note.Keys the text comes back untouched along with
// ErrUnknownKey.
func Document(text, fromKey, toKey string) (string, error) {
	semitones, ok := note.Semitones(fromKey, toKey)
	if !ok {
		return text, fmt.Errorf("%w: cannot transpose from %q to %q", ErrUnknownKey, fromKey, toKey)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if IsKeyDirective(line) {
			// keep CRLF line endings intact
			eol := ""
			if strings.HasSuffix(line, "\r") {
				eol = "\r"
			}
			lines[i] = fmt.Sprintf("{key: %s}%s", toKey, eol)
			continue
		}
		lines[i] = Line(line, semitones, toKey)
	}
	return strings.Join(lines, "\n"), nil
}
