package tags

import "strings"

// Key is a key press delivered to the editor
type Key string

const (
	KeyEnter     Key = "Enter"
	KeyComma     Key = ","
	KeyBackspace Key = "Backspace"
)

// Editor models the tag text field: a set plus the text being typed.
type Editor struct {
	set        *Set
	input      string
	vocabulary []string
}

// NewEditor wraps set; vocabulary feeds autocomplete.
func NewEditor(set *Set, vocabulary []string) *Editor {
	return &Editor{set: set, vocabulary: vocabulary}
}

// Type replaces the text field contents
func (e *Editor) Type(text string) {
	e.input = text
}

// Input returns the current text
func (e *Editor) Input() string {
	return e.input
}

// Tags returns the applied tags
func (e *Editor) Tags() []string {
	return e.set.Items()
}

// Press handles a key and reports whether the tag list changed.
//
// Enter and comma add the trimmed text; the field is cleared only when the
// tag was actually added. Backspace on an empty field removes the last tag.
func (e *Editor) Press(key Key) bool {
	switch key {
	case KeyEnter, KeyComma:
		value := strings.TrimSpace(e.input)
		if value == "" {
			return false
		}
		if e.set.Add(value) {
			e.input = ""
			return true
		}
	case KeyBackspace:
		if e.input == "" {
			_, removed := e.set.RemoveLast()
			return removed
		}
	}
	return false
}

// Pick adds a suggestion and clears the text field
func (e *Editor) Pick(tag string) bool {
	if !e.set.Add(tag) {
		return false
	}
	e.input = ""
	return true
}

// Suggestions lists vocabulary matches for the current text
func (e *Editor) Suggestions() []string {
	return Suggest(e.input, e.vocabulary, e.set)
}
