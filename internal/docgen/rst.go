package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// directives maps construct kinds to their RST directive. KindNone has no
// entry: free-standing documentation renders as a bare prose section.
var directives = map[Kind]string{
	KindFunction: "function",
	KindMacro:    "macro",
	KindVariable: "data",
}

// fieldTemplates maps a field tag name to its RST field-list line. param
// payloads already carry the "ident: " prefix, so the template supplies
// only the marker.
var fieldTemplates = map[string]string{
	"param":   ":param %s",
	"returns": ":returns: %s",
}

const indent = "   "

// RenderedOutput is generated RST text, serializable directly or
// persistable to a file.
type RenderedOutput struct {
	text string
}

// String returns the full RST text.
func (r RenderedOutput) String() string {
	return r.text
}

// WriteFile persists the text to path atomically: it writes a temporary
// file in the destination directory and renames it into place, so a failed
// write never leaves a partial file behind.
func (r RenderedOutput) WriteFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".cmakedoc-*")
	if err != nil {
		return fmt.Errorf("creating temporary output in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(r.text); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions on %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("moving output to %s: %w", path, err)
	}
	return nil
}

// RenderRST renders the model as Sphinx-compatible RST. Output is a pure
// function of the model: entries render in model order and identical
// models yield byte-identical text.
func RenderRST(model *DocumentModel) RenderedOutput {
	var b strings.Builder

	rule := strings.Repeat("#", len(model.HeaderName))
	b.WriteString(rule + "\n" + model.HeaderName + "\n" + rule + "\n")

	for _, entry := range model.Entries {
		b.WriteString("\n")
		renderEntry(&b, entry)
	}

	return RenderedOutput{text: b.String()}
}

// renderEntry writes one construct section: directive heading, description
// paragraph, then the field list in original order.
func renderEntry(b *strings.Builder, entry DocEntry) {
	prefix := ""
	sig := entry.Signature

	if directive, ok := directives[sig.Kind]; ok {
		b.WriteString(fmt.Sprintf(".. %s:: %s\n\n", directive, signatureHeading(sig)))
		prefix = indent
	}

	if desc := entry.Block.Description; desc != "" {
		writeIndented(b, desc, prefix)
		if len(entry.Block.Fields) > 0 {
			b.WriteString("\n")
		}
	}

	for _, field := range entry.Block.Fields {
		tmpl, ok := fieldTemplates[field.Name]
		if !ok {
			tmpl = ":" + field.Name + ": %s"
		}
		b.WriteString(prefix + fmt.Sprintf(tmpl, field.Payload) + "\n")
	}
}

// signatureHeading formats a construct as a call-style heading. Variables
// have no parameter list.
func signatureHeading(sig ConstructSignature) string {
	if sig.Kind == KindVariable {
		return sig.Name
	}
	return sig.Name + "(" + strings.Join(sig.Params, " ") + ")"
}

// writeIndented writes text line by line with the given prefix on
// non-blank lines.
func writeIndented(b *strings.Builder, text, prefix string) {
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(prefix + line + "\n")
	}
}
