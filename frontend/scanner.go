package frontend

import (
	"unicode/utf8"

	"github.com/quark-lang/quark/source"
)

/**
 * # Handling of Line & File terminations
 *
 * The first character in each line is considered to be in column 1. A newline
 * at the end of a line with `N` characters is considered to be in column
 * `N + 1`.
 *
 * Once every rune has been consumed the scanner reports `eof` from Peek and
 * PeekNext. Calling Next at that point returns the zero rune and the position
 * just after the last rune, so lexers can use it to anchor end-of-input spans.
 */

// Scanner strcts hold the state of a scanner instance which consumes source
// code runes one at a time. Since source code documents can be Unicode, the
// scanner must keep track of each rune's byte offset. The scanner also records
// line and column data which it emits along with each rune.
type Scanner struct {
	File     *source.File
	nextByte int // initialized to 0
	nextLine int // ...  ...  ...  1
	nextCol  int // ...  ...  ...  1
}

// NewScanner is a basic constructor function for Scanners which populates
// private fields with the appropriate starting values
func NewScanner(file *source.File) *Scanner {
	return &Scanner{
		File:     file,
		nextByte: 0,
		nextLine: 1,
		nextCol:  1,
	}
}

// Pos returns the position of the upcoming rune
func (s *Scanner) Pos() source.Pos {
	return source.Pos{Line: s.nextLine, Col: s.nextCol}
}

// Peek returns the next rune and its position without advancing the scanner.
// The `eof` flag is set when every rune has already been consumed
func (s *Scanner) Peek() (r rune, pos source.Pos, eof bool) {
	if s.nextByte >= len(s.File.Contents) {
		return 0, s.Pos(), true
	}

	r, _ = utf8.DecodeRuneInString(s.File.Contents[s.nextByte:])
	return r, s.Pos(), false
}

// PeekNext returns the rune after the upcoming one without advancing the
// scanner. It is needed to tell a decimal point from a trailing `.` and a
// two-rune operator from its one-rune prefix
func (s *Scanner) PeekNext() (r rune, eof bool) {
	if s.nextByte >= len(s.File.Contents) {
		return 0, true
	}

	_, width := utf8.DecodeRuneInString(s.File.Contents[s.nextByte:])
	if s.nextByte+width >= len(s.File.Contents) {
		return 0, true
	}

	r, _ = utf8.DecodeRuneInString(s.File.Contents[s.nextByte+width:])
	return r, false
}

// Next returns the next rune and the rune's position, advancing the Scanner
// permanently. Newlines move the position to column 1 of the following line
func (s *Scanner) Next() (r rune, pos source.Pos) {
	pos = s.Pos()

	if s.nextByte >= len(s.File.Contents) {
		return 0, pos
	}

	runeValue, runeWidth := utf8.DecodeRuneInString(s.File.Contents[s.nextByte:])

	if runeValue == '\n' {
		s.nextLine++
		s.nextCol = 1
	} else {
		s.nextCol++
	}

	s.nextByte += runeWidth

	return runeValue, pos
}
