package docgen

import "strings"

// Block delimiters. The start marker extends CMake's bracket-comment
// opener; the end marker is the standard bracket-comment closer. Both are
// distinct from the ordinary "#" line comment.
const (
	startMarker = "#[[["
	endMarker   = "#]]"
)

// BlockScanner walks source text and yields documentation blocks one at a
// time, in order of appearance. Blocks do not nest: a start marker seen
// while inside a block is literal content, because the scanner only looks
// for the end marker once a block is open.
type BlockScanner struct {
	source   string
	pos      int
	warnings []Warning
}

// NewBlockScanner returns a scanner positioned at the start of source.
func NewBlockScanner(source string) *BlockScanner {
	return &BlockScanner{source: source}
}

// Next returns the next well-formed block. ok is false once the source is
// exhausted. An unterminated block is dropped with a warning rather than
// returned.
func (s *BlockScanner) Next() (block RawBlock, ok bool) {
	if s.pos >= len(s.source) {
		return RawBlock{}, false
	}

	rel := strings.Index(s.source[s.pos:], startMarker)
	if rel < 0 {
		s.pos = len(s.source)
		return RawBlock{}, false
	}
	start := s.pos + rel

	innerStart := start + len(startMarker)
	endRel := strings.Index(s.source[innerStart:], endMarker)
	if endRel < 0 {
		s.warn(start, "unterminated documentation block, dropping")
		s.pos = len(s.source)
		return RawBlock{}, false
	}
	end := innerStart + endRel + len(endMarker)
	s.pos = end

	return RawBlock{
		Start: start,
		End:   end,
		Text:  stripContinuations(s.source[innerStart : innerStart+endRel]),
	}, true
}

// Warnings returns the anomalies seen so far, in source order.
func (s *BlockScanner) Warnings() []Warning {
	return s.warnings
}

func (s *BlockScanner) warn(offset int, msg string) {
	s.warnings = append(s.warnings, Warning{Offset: offset, Message: msg})
}

// stripContinuations removes the leading "#" comment marker and exactly one
// following space from each continuation line, reconstructing the literal
// multi-line prose the author wrote.
func stripContinuations(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if rest, found := strings.CutPrefix(trimmed, "#"); found {
			lines[i] = strings.TrimPrefix(rest, " ")
		}
	}
	return strings.Join(lines, "\n")
}
