package stacklang

import (
	"regexp"
	"strings"

	"github.com/nsavage/stacklang/internal/fileinput"
)

// Cursor owns the input text and a byte offset into it, per spec §4.1.
// Location tracking is purely for error reporting (spec §7's "print
// message + input cursor marked with <--!--> at the failure point") and
// is not part of the core's addressing semantics.
type Cursor struct {
	text string
	pos  int
	loc  fileinput.Location
}

// NewCursor returns a Cursor over text, named for error reports.
func NewCursor(text, name string) Cursor {
	return Cursor{text: text, loc: fileinput.NewLocation(name)}
}

// AtEnd reports whether the cursor has exhausted the input.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.text) }

// Location returns the current line-tracking location, for diagnostics.
func (c *Cursor) Location() fileinput.Location { return c.loc }

// Pos returns the current byte offset, for diagnostics (the <--!--> marker).
func (c *Cursor) Pos() int { return c.pos }

// Text returns the full source text, for diagnostics.
func (c *Cursor) Text() string { return c.text }

var isSpaceRune = func(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// Consume implements spec §4.1: optionally skip leading whitespace, then
// read up to (and optionally including) the first occurrence of until,
// which may be a literal rune or a single-rune-matching *regexp.Regexp.
// Backslash-escapes in the result are stripped (every \X becomes X).
// Consume never fails: if the loop runs off the end of input, it simply
// stops there.
func (c *Cursor) Consume(until interface{}, including, ignoreLeadingWhitespace bool) string {
	if ignoreLeadingWhitespace {
		for !c.AtEnd() && isSpaceRune(rune(c.text[c.pos])) {
			c.advance(1)
		}
	}

	matches := matcherFor(until)

	start := c.pos
	for !c.AtEnd() && !matches(c.text[c.pos]) {
		c.advance(1)
	}
	result := c.text[start:c.pos]
	if including && !c.AtEnd() {
		c.advance(1)
	}
	return unescape(result)
}

func matcherFor(until interface{}) func(byte) bool {
	switch u := until.(type) {
	case rune:
		return func(b byte) bool { return rune(b) == u }
	case byte:
		return func(b byte) bool { return b == u }
	case *regexp.Regexp:
		return func(b byte) bool { return u.MatchString(string(b)) }
	default:
		return func(byte) bool { return true }
	}
}

func (c *Cursor) advance(n int) {
	c.loc = c.loc.Advance(c.text[c.pos : c.pos+n])
	c.pos += n
}

func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// ConsumeWord reads one whitespace-delimited token, skipping any leading
// whitespace, per the "word" primitive and the tokenizer step of interpret.
func (c *Cursor) ConsumeWord() string {
	return c.Consume(regexpSpace, false, true)
}

var regexpSpace = regexp.MustCompile(`\s`)

// SkipOneSpace advances past exactly one whitespace character, if the
// cursor is sitting on one. Parsing words like ' and re/ use this to
// skip the single mandatory separator space before their payload,
// without disturbing any whitespace that is part of the payload itself.
func (c *Cursor) SkipOneSpace() {
	if !c.AtEnd() && isSpaceRune(rune(c.text[c.pos])) {
		c.advance(1)
	}
}

// Mark renders the source text with a <--!--> marker inserted at the
// cursor's current position, for spec §7's error-report boundary.
func (c *Cursor) Mark() string {
	return c.text[:c.pos] + "<--!-->" + c.text[c.pos:]
}
