package constants

import "os"

func GetLogLevel() string {
	level := os.Getenv("CHORDSHEET_LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

func GetLogFormat() string {
	format := os.Getenv("CHORDSHEET_LOG_FORMAT")
	if format != "" {
		return format
	}
	return "text"
}

// GetSpaceGlyph is what a `~` in lyrics turns into when rendered.
func GetSpaceGlyph() string {
	glyph := os.Getenv("CHORDSHEET_SPACE_GLYPH")
	if glyph != "" {
		return glyph
	}
	return DefaultSpaceGlyph
}

// no-break space, so a `~` never collapses or wraps
const DefaultSpaceGlyph = "\u00a0"

const SpaceMarker = "~"
