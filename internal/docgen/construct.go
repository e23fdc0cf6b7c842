package docgen

import (
	"fmt"
	"strings"
)

// constructKinds maps a declaration's leading command to its Kind. This is
// the single dispatch point for the recognized construct grammar; commands
// absent from the table leave the block free-standing.
var constructKinds = map[string]Kind{
	"function": KindFunction,
	"macro":    KindMacro,
	"set":      KindVariable,
}

// Associate inspects source starting at offset from (normally a block's end
// offset) and returns the signature of the construct the block documents.
// Blank lines and ordinary "#" comments between the block and its construct
// are skipped; another documentation block, or any line outside the
// recognized grammar, yields KindNone.
func Associate(source string, from int) (ConstructSignature, []Warning) {
	if from > len(source) {
		from = len(source)
	}
	rest := source[from:]

	offset := from
	for len(rest) > 0 {
		line, remainder, _ := strings.Cut(rest, "\n")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			// keep scanning
		case strings.HasPrefix(trimmed, startMarker):
			// The next documentation block starts before any
			// construct; this one stands alone.
			return ConstructSignature{Kind: KindNone}, nil
		case strings.HasPrefix(trimmed, "#"):
			// ordinary comment
		default:
			return parseDeclaration(trimmed, remainder, offset)
		}

		offset += len(line) + 1
		rest = remainder
	}
	return ConstructSignature{Kind: KindNone}, nil
}

// parseDeclaration matches the first qualifying line (plus continuation
// lines up to the closing paren) against the construct grammar.
func parseDeclaration(line, remainder string, offset int) (ConstructSignature, []Warning) {
	keyword, after, found := cutIdentifier(line)
	if !found {
		return ConstructSignature{Kind: KindNone}, nil
	}
	kind, known := constructKinds[strings.ToLower(keyword)]
	if !known {
		return ConstructSignature{Kind: KindNone}, nil
	}

	after = strings.TrimLeft(after, " \t")
	if !strings.HasPrefix(after, "(") {
		return ConstructSignature{Kind: KindNone}, nil
	}

	args, ok := joinArgList(after[1:], remainder)
	if !ok {
		w := Warning{Offset: offset, Message: fmt.Sprintf("unterminated %s declaration, leaving block unbound", kind)}
		return ConstructSignature{Kind: KindNone}, []Warning{w}
	}

	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ConstructSignature{Kind: KindNone}, nil
	}

	sig := ConstructSignature{Kind: kind, Name: fields[0]}
	if kind == KindFunction || kind == KindMacro {
		sig.Params = fields[1:]
	}
	return sig, nil
}

// joinArgList collects the argument text from the opening paren to its
// matching close, joining continuation lines with spaces. Parens and "#"
// inside a double-quoted argument are literal; an unquoted "#" starts a
// trailing comment. ok is false when end-of-file arrives before the list
// closes.
func joinArgList(firstLine, remainder string) (args string, ok bool) {
	var b strings.Builder
	line := firstLine
	rest := remainder
	depth := 1
	inQuote := false

	for {
		i := 0
		for i < len(line) {
			c := line[i]
			switch {
			case inQuote && c == '\\' && i+1 < len(line):
				i++ // escaped character inside a quoted argument
			case c == '"':
				inQuote = !inQuote
			case inQuote:
				// quoted content is literal
			case c == '(':
				depth++
			case c == ')':
				depth--
				if depth == 0 {
					b.WriteString(line[:i])
					return b.String(), true
				}
			case c == '#':
				// trailing comment, rest of line is not arguments
				line = line[:i]
				continue
			}
			i++
		}
		b.WriteString(line)
		b.WriteByte(' ')

		if len(rest) == 0 {
			return "", false
		}
		line, rest, _ = strings.Cut(rest, "\n")
	}
}

// cutIdentifier splits a leading CMake command name off the line.
func cutIdentifier(line string) (ident, rest string, found bool) {
	i := 0
	for i < len(line) {
		c := line[i]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (i > 0 && c >= '0' && c <= '9') {
			i++
			continue
		}
		break
	}
	if i == 0 {
		return "", "", false
	}
	return line[:i], line[i:], true
}
