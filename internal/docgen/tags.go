package docgen

import "strings"

// fieldMarker describes one entry of the recognized tag vocabulary.
type fieldMarker struct {
	canonical string // field name used in the model and in rendering
	wantIdent bool   // marker takes an identifier before the closing colon
}

// fieldMarkers is the closed marker vocabulary. New tag kinds are added
// here plus one render template in rst.go; the parsing logic below never
// changes. Lines whose marker is not in this table stay description text.
var fieldMarkers = map[string]fieldMarker{
	"param":   {canonical: "param", wantIdent: true},
	"return":  {canonical: "returns"},
	"returns": {canonical: "returns"},
}

// ParseBlock splits one block's raw text into a description and an ordered
// field list. ok is false when the block carries neither, in which case it
// should be dropped.
func ParseBlock(raw RawBlock) (block DocBlock, ok bool) {
	block = DocBlock{Start: raw.Start, End: raw.End}

	var desc []string
	var open *FieldTag

	flush := func() {
		if open != nil {
			open.Payload = strings.TrimRight(open.Payload, " ")
			block.Fields = append(block.Fields, *open)
			open = nil
		}
	}

	for _, line := range strings.Split(raw.Text, "\n") {
		trimmed := strings.TrimSpace(line)

		// A blank line terminates an open payload; inside the
		// description it is a paragraph break.
		if trimmed == "" {
			if open != nil {
				flush()
			} else {
				desc = append(desc, "")
			}
			continue
		}

		if tag, isTag := parseTagLine(trimmed); isTag {
			flush()
			open = &tag
			continue
		}

		if open != nil {
			open.Payload += " " + trimmed
		} else {
			desc = append(desc, trimmed)
		}
	}
	flush()

	block.Description = strings.Trim(strings.Join(desc, "\n"), "\n")
	if block.Description == "" && len(block.Fields) == 0 {
		return DocBlock{}, false
	}
	return block, true
}

// parseTagLine matches ":marker ident?: payload". Lines that merely look
// tag-like (unknown marker, missing identifier, no closing colon) are not
// tags; the caller keeps them as prose.
func parseTagLine(line string) (FieldTag, bool) {
	rest, found := strings.CutPrefix(line, ":")
	if !found {
		return FieldTag{}, false
	}
	head, body, found := strings.Cut(rest, ":")
	if !found {
		return FieldTag{}, false
	}
	body = strings.TrimSpace(body)

	marker, ident, _ := strings.Cut(strings.TrimSpace(head), " ")
	ident = strings.TrimSpace(ident)

	m, known := fieldMarkers[strings.ToLower(marker)]
	if !known {
		return FieldTag{}, false
	}

	if m.wantIdent {
		if ident == "" {
			return FieldTag{}, false
		}
		return FieldTag{Name: m.canonical, Payload: strings.TrimRight(ident+": "+body, " ")}, true
	}
	if ident != "" {
		return FieldTag{}, false
	}
	return FieldTag{Name: m.canonical, Payload: body}, true
}
