package sheet

import "github.com/jsphweid/chordsheet/model"

// Block is a run of content lines. Section is empty for lines that sit
// outside any {start_of_...} / {end_of_...} pair.
type Block struct {
	Section model.Section
	Lines   []model.Content
	// Continued marks a block that resumes a section after a metadata line
	// interrupted it.
	Continued bool
	// Notes are the displayable metadata lines that sit at the top of the
	// block, in document order.
	Notes []model.Metadata
}

type Sheet struct {
	Title string
	Key   string
	// Metadata holds every metadata line, wherever it appeared.
	Metadata []model.Metadata
	// Preamble is the metadata seen before the first section or non-blank
	// content line.
	Preamble []model.Metadata
	Blocks   []Block
}

// Displayable reports whether a metadata line is shown as text. Title and
// key have their own header rows.
func Displayable(m model.Metadata) bool {
	return m.Key != "title" && m.Key != "key" && m.Value != ""
}

// keep reports whether a block is worth emitting: it has a non-blank line,
// or it opens a section whose heading should still show.
func (b *Block) keep() bool {
	if len(b.Notes) > 0 {
		return true
	}
	for _, line := range b.Lines {
		if len(line.Segments) > 0 {
			return true
		}
	}
	return b.Section != "" && !b.Continued
}

// folder is the accumulator for Fold. It is the only place that knows which
// section is currently open.
type folder struct {
	sheet   Sheet
	current *Block
	started bool
}

func (f *folder) closeBlock() {
	if f.current != nil && f.current.keep() {
		f.sheet.Blocks = append(f.sheet.Blocks, *f.current)
	}
	f.current = nil
}

func (f *folder) openSection() model.Section {
	if f.current == nil {
		return ""
	}
	return f.current.Section
}

func (f *folder) add(line model.Line) {
	switch l := line.(type) {
	case model.Metadata:
		switch l.Key {
		case "title":
			f.sheet.Title = l.Value
		case "key":
			f.sheet.Key = l.Value
		}
		f.sheet.Metadata = append(f.sheet.Metadata, l)
		if !f.started {
			f.sheet.Preamble = append(f.sheet.Preamble, l)
			return
		}

		// a block that has not taken any lines yet can carry the note itself
		if f.current == nil || len(f.current.Lines) > 0 {
			section := f.openSection()
			f.closeBlock()
			f.current = &Block{Section: section, Continued: section != ""}
		}
		if Displayable(l) {
			f.current.Notes = append(f.current.Notes, l)
		}
	case model.SectionStart:
		f.started = true
		f.closeBlock()
		f.current = &Block{Section: l.Section}
	case model.SectionEnd:
		f.closeBlock()
	case model.Content:
		if len(l.Segments) > 0 {
			f.started = true
		}
		if f.current == nil {
			f.current = &Block{}
		}
		f.current.Lines = append(f.current.Lines, l)
	default:
		panic("sheet: unhandled line type")
	}
}

// Fold groups parsed lines into blocks in a single pass. A section start or
// end closes whatever block is open. Metadata ahead of the body goes to the
// preamble; later metadata splits the open block, leaves its section open and
// is kept as a note on the block that follows. Blocks made only of blank lines are dropped
// unless they carry a section heading.
func Fold(lines []model.Line) Sheet {
	var f folder
	for _, line := range lines {
		f.add(line)
	}
	f.closeBlock()
	return f.sheet
}

// Lookup returns the value of the last metadata directive with the given key.
func (s Sheet) Lookup(key string) (string, bool) {
	for i := len(s.Metadata) - 1; i >= 0; i-- {
		if s.Metadata[i].Key == key {
			return s.Metadata[i].Value, true
		}
	}
	return "", false
}
