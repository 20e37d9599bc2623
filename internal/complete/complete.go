package complete

import "strings"

// CursorContext describes the editor position a completion was requested at.
type CursorContext struct {
	Line string // the current line of text
	Pos  int    // rune offset of the cursor within Line
}

// Result is a completion answer: Options replace the text from From (a rune
// offset into the line) up to the cursor. ValidFor lets the editor keep the
// result while the user types more word characters.
type Result struct {
	From     int
	Options  []Option
	ValidFor string
}

// wordPattern matches the characters a completion word may consist of.
const wordPattern = `^\w*$`

// Complete returns the candidates for the word immediately before the
// cursor, or nil when the cursor is not adjacent to a word.
func Complete(ctx CursorContext) *Result {
	line := []rune(ctx.Line)
	pos := ctx.Pos
	if pos < 0 || pos > len(line) {
		return nil
	}

	from := pos
	for from > 0 && isWordRune(line[from-1]) {
		from--
	}
	if from == pos {
		return nil
	}

	prefix := strings.ToLower(string(line[from:pos]))
	var options []Option
	for _, opt := range table {
		if strings.HasPrefix(strings.ToLower(opt.Label), prefix) {
			options = append(options, opt)
		}
	}
	if len(options) == 0 {
		return nil
	}

	return &Result{From: from, Options: options, ValidFor: wordPattern}
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
