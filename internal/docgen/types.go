package docgen

import "fmt"

// Kind identifies the CMake construct a documentation block is bound to.
type Kind int

const (
	// KindNone marks free-standing documentation with no following construct.
	KindNone Kind = iota
	KindFunction
	KindMacro
	KindVariable
)

// String returns the lowercase construct name.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindMacro:
		return "macro"
	case KindVariable:
		return "variable"
	default:
		return "none"
	}
}

// RawBlock is one delimited documentation span as found in the source.
// Text has the comment-continuation prefixes already stripped.
type RawBlock struct {
	Start int // byte offset of the start marker
	End   int // byte offset just past the end marker
	Text  string
}

// FieldTag is one recognized field line inside a block. Payload keeps the
// identifier prefix, e.g. "name: the person's name" for ":param name: ...".
type FieldTag struct {
	Name    string
	Payload string
}

// DocBlock is the structured content of one documentation block.
type DocBlock struct {
	Description string
	Fields      []FieldTag
	Start       int
	End         int
}

// ConstructSignature describes the declaration a block documents.
// Params is nil for variables and for KindNone.
type ConstructSignature struct {
	Kind   Kind
	Name   string
	Params []string
}

// DocEntry binds a parsed block to the construct that follows it.
type DocEntry struct {
	Block     DocBlock
	Signature ConstructSignature
}

// DocumentModel is the ordered documentation for one source file.
// Entries appear in source order; the renderer relies on that ordering.
type DocumentModel struct {
	SourceID   string
	HeaderName string
	Entries    []DocEntry
}

// Warning describes a recoverable anomaly found while processing a file.
type Warning struct {
	Offset  int
	Message string
}

// String formats the warning with its byte offset.
func (w Warning) String() string {
	return fmt.Sprintf("offset %d: %s", w.Offset, w.Message)
}
