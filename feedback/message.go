package feedback

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/quark-lang/quark/source"
)

const (
	warningColors = iota
	errorColors
	helperColors
)

// Message is the interface for all Warnings and Errors that can be emitted
// by the stages of the pipeline
type Message interface {
	Make(withColor bool) string
}

// Selection represents a region of the source code file along with a
// corresponding description that supplies information as to why an warning or
// error occured
type Selection struct {
	Description string
	Span        source.Span
}

// Warning classification constants
const (
	DuplicateParameterWarning string = "duplicate parameter"
	UnreachableCodeWarning    string = "unreachable code"
)

// Warning messages are emitted by the pipeline to highlight issues which might
// need to be addressed by the source code author. Warnings never stop the
// pipeline
type Warning struct {
	Classification string
	File           *source.File
	What           Selection
	Why            []Selection
}

// Make takes a Warning and produces a fully rendered message with the option of
// using colors to make elements of the message more clear. The rendered message
// is returned as a single string and can be then output to stdout or some other
// destination
func (w Warning) Make(withColor bool) string {
	return makeMessage(w.Classification, w.File, w.What, w.Why, warningColors, newPalette(withColor))
}

// Error classification constants
const (
	LexError        string = "lex error"
	ParseError      string = "parse error"
	UnexpectedToken string = "unexpected token"
	UnknownType     string = "unknown type"
)

// Error messages are fatal: the first Error produced by any stage stops the
// pipeline and no output is written. Error values satisfy the `error`
// interface so they can be passed up through ordinary error returns
type Error struct {
	Classification string
	File           *source.File
	What           Selection
	Why            []Selection
}

// RenderError builds the Error reported when a lexing or grammar rule fails at
// the given span
func RenderError(file *source.File, span source.Span, classification, description string) Error {
	return Error{
		Classification: classification,
		File:           file,
		What: Selection{
			Description: description,
			Span:        span,
		},
	}
}

// Make takes an Error and produces a fully rendered message with the option of
// using colors to make elements of the message more clear. The rendered message
// is returned as a single string and can be then output to stdout or some other
// destination
func (e Error) Make(withColor bool) string {
	return makeMessage(e.Classification, e.File, e.What, e.Why, errorColors, newPalette(withColor))
}

// Error renders the message without colors
func (e Error) Error() string {
	return e.Make(false)
}

// Span returns the region of source code the error points at
func (e Error) Span() source.Span {
	return e.What.Span
}

// IsError reports whether msg stops the pipeline
func IsError(msg Message) bool {
	_, ok := msg.(Error)
	return ok
}

// palette holds the color functions for a single rendering. Colors are forced
// on or off per palette so that rendering never touches package-level state
type palette struct {
	yellow, red, blue   func(a ...interface{}) string
	yellowBold, redBold func(a ...interface{}) string
}

func newPalette(withColor bool) palette {
	fn := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)

		if withColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return c.SprintFunc()
	}

	return palette{
		yellow:     fn(color.FgYellow),
		red:        fn(color.FgRed),
		blue:       fn(color.FgBlue),
		yellowBold: fn(color.FgYellow, color.Bold),
		redBold:    fn(color.FgRed, color.Bold),
	}
}

// makeMessage is a utility function which takes any Message and a corresponding
// File to make a rendered message of the form:
//
// <message type>: <error classification>
//   --> <filename>:<line number>:<column number>
//    |
//  1 | <offending line of source code>
//    |  ^^^^^^^^^ <message detailing error>
//
func makeMessage(classification string, file *source.File, what Selection, why []Selection, colorScheme int, pal palette) string {
	var lines []string

	maxLineNum := getMaxLineNum(append([]Selection{what}, why...)...)
	placeValues := utf8.RuneCountInString(fmt.Sprintf("%d", maxLineNum))

	if colorScheme == warningColors {
		lines = append(lines, pal.yellowBold(fmt.Sprintf("warning: %s", classification)))
	} else {
		lines = append(lines, pal.redBold(fmt.Sprintf("error: %s", classification)))
	}

	filename := "<unknown>"
	if file != nil {
		filename = file.Filename
	}

	lines = append(lines, fmt.Sprintf(" %s%s %s:%d:%d",
		mulStr(" ", placeValues),
		pal.blue("-->"),
		filename,
		what.Span.Start.Line,
		what.Span.Start.Col))

	// Without the source text only the location and description can be shown
	if file == nil {
		lines = append(lines, fmt.Sprintf(" %s %s %s", mulStr(" ", placeValues), pal.blue("="), what.Description))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, pal.blue(fmt.Sprintf(" %s |", mulStr(" ", placeValues))))

	for i, sel := range why {
		if i > 0 && skipsLines(why[i-1], sel) {
			lines = append(lines, gapLine(placeValues, pal))
		}

		lines = append(lines, sourceCodeSelection(file, sel, helperColors, placeValues, pal)...)
	}

	if len(why) > 0 && skipsLines(why[len(why)-1], what) {
		lines = append(lines, gapLine(placeValues, pal))
	}

	lines = append(lines, sourceCodeSelection(file, what, colorScheme, placeValues, pal)...)
	return strings.Join(lines, "\n")
}

// skipsLines reports whether source lines are left out between two
// consecutive selections
func skipsLines(prev, next Selection) bool {
	return prev.Span.End.Line+1 < next.Span.Start.Line
}

// gapLine marks skipped source lines, aligned with the line number margin
func gapLine(placeValues int, pal palette) string {
	return fmt.Sprintf(" %s%s", mulStr(" ", placeValues), pal.blue("..."))
}

// sourceCodeSelection is a utility function which, given a File and a Selection
// extracts an offending line of source code from the source file and renders
// the line along with its line number and the description set to accompany that
// line of source code
func sourceCodeSelection(file *source.File, sel Selection, colorScheme int, placeValues int, pal palette) (lines []string) {
	numMargFmt := fmt.Sprintf("%%%dd", placeValues)
	emptyMargFmt := mulStr(" ", placeValues)

	for lineNum := sel.Span.Start.Line; lineNum <= sel.Span.End.Line; lineNum++ {
		srcLine := file.Line(lineNum)

		var focusStart, focusEnd int

		if lineNum == sel.Span.Start.Line {
			focusStart = sel.Span.Start.Col
		} else {
			focusStart = 1
		}

		if lineNum == sel.Span.End.Line {
			focusEnd = sel.Span.End.Col + 1
		} else {
			focusEnd = utf8.RuneCountInString(srcLine) + 1
		}

		prefix, focus, suffix := highlightSourceLine(srcLine, focusStart, focusEnd)

		switch colorScheme {
		case warningColors:
			focus = pal.yellow(focus)
		case errorColors:
			focus = pal.red(focus)
		case helperColors:
			focus = pal.blue(focus)
		}

		lines = append(lines, fmt.Sprintf(" %s %s %s%s%s", pal.blue(fmt.Sprintf(numMargFmt, lineNum)), pal.blue("|"), prefix, focus, suffix))
	}

	if sel.Description == "" {
		return lines
	}

	var underlineChar string
	var desc string

	switch colorScheme {
	case warningColors:
		underlineChar = pal.yellow("^")
		desc = pal.yellow(sel.Description)
	case errorColors:
		underlineChar = pal.red("^")
		desc = pal.red(sel.Description)
	default:
		underlineChar = pal.blue("-")
		desc = pal.blue(sel.Description)
	}

	// Multi-line selections are underlined from the start column to the end of
	// the first line
	endCol := sel.Span.End.Col
	if sel.Span.End.Line != sel.Span.Start.Line {
		endCol = utf8.RuneCountInString(file.Line(sel.Span.Start.Line))
	}

	leftPad := mulStr(" ", sel.Span.Start.Col-1)

	// Underline width must be at least 1 character wide
	width := endCol + 1 - sel.Span.Start.Col
	if width < 1 {
		width = 1
	}

	lines = append(lines, fmt.Sprintf(" %s %s %s%s %s", emptyMargFmt, pal.blue("|"), leftPad, mulStr(underlineChar, width), desc))

	return lines
}

// getMaxLineNum returns the largest line number present in a collection of
// Selection structs
func getMaxLineNum(selections ...Selection) (max int) {
	max = 1

	for _, sel := range selections {
		if sel.Span.End.Line > max {
			max = sel.Span.End.Line
		}
	}

	return max
}

// highlightSourceLine takes a line of source code and 2 column numbers and
// returns the segment before the first column number, the segment between the
// column numbers, and the segment after the last column number. This is used
// to provide color to only the significant segment of a source code line
func highlightSourceLine(line string, start, end int) (prefix, focus, suffix string) {
	nextByte := 0

	for i := 1; i < end && nextByte < len(line); i++ {
		runeValue, runeWidth := utf8.DecodeRuneInString(line[nextByte:])
		nextByte += runeWidth

		if i < start {
			prefix += string(runeValue)
		} else {
			focus += string(runeValue)
		}
	}

	suffix = line[nextByte:]

	return prefix, focus, suffix
}

// mulStr repeats a string "n" times
func mulStr(s string, n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(s, n)
}
