// Package markup places and removes inline emotion tags in plain text.
// Injection and stripping are exact inverses for any tag-free input.
package markup

import (
	"regexp"
	"strings"
)

// Position says where a tag lands relative to the text.
type Position string

const (
	PositionStart  Position = "start"
	PositionEnd    Position = "end"
	PositionInline Position = "inline"
)

// Placement is a single tag with its target position. Placements sharing
// a position keep their input order.
type Placement struct {
	Tag      string   `json:"tag"`
	Position Position `json:"position"`
}

// tagPattern matches an inline tag together with any whitespace run in
// front of it, so stripping undoes injection exactly.
var tagPattern = regexp.MustCompile(`\s*<[^<>]+>`)

var spaceRun = regexp.MustCompile(`\s{2,}`)

// Inject renders placements into text. Start tags are space-joined and
// prepended, end tags appended, and each inline tag lands immediately
// before the final sentence punctuation when there is one.
func Inject(text string, placements []Placement) string {
	text = strings.TrimSpace(text)
	if len(placements) == 0 {
		return text
	}

	var start, end, inline []string
	for _, p := range placements {
		tag := "<" + strings.Trim(p.Tag, "<>") + ">"
		switch p.Position {
		case PositionEnd:
			end = append(end, tag)
		case PositionInline:
			inline = append(inline, tag)
		default:
			start = append(start, tag)
		}
	}

	for _, tag := range inline {
		text = insertInline(text, tag)
	}
	if len(start) > 0 {
		text = strings.Join(start, " ") + " " + text
	}
	if len(end) > 0 {
		text = text + " " + strings.Join(end, " ")
	}
	return text
}

// Strip removes every <...> token and the whitespace run preceding it,
// collapses any remaining whitespace runs, and trims the result.
func Strip(text string) string {
	out := tagPattern.ReplaceAllString(text, "")
	out = spaceRun.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

func insertInline(text, tag string) string {
	if text == "" {
		return tag
	}
	last := text[len(text)-1]
	if isSentencePunct(last) {
		return text[:len(text)-1] + " " + tag + string(last)
	}
	return text + " " + tag
}

func isSentencePunct(c byte) bool {
	switch c {
	case '.', '!', '?', ',', ';':
		return true
	}
	return false
}
