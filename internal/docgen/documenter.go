// Package docgen extracts structured documentation from #[[[ ... #]]
// block comments in CMake source and renders it as Sphinx-compatible RST.
// The pipeline for one file is scan -> parse tags -> associate construct
// -> model -> render; every stage recovers locally from malformed input
// and surfaces warnings instead of failing.
package docgen

// Documenter runs the per-file pipeline over one CMake source text.
type Documenter struct {
	source     string
	sourceID   string
	headerName string
}

// NewDocumenter creates a Documenter for the given source text. sourceID
// identifies the file in warnings; headerName is used for the rendered
// document title.
func NewDocumenter(source, sourceID, headerName string) *Documenter {
	return &Documenter{
		source:     source,
		sourceID:   sourceID,
		headerName: headerName,
	}
}

// Process builds the documentation model in a single forward pass. Parse
// anomalies degrade to warnings and never fail the file; the model is
// frozen once returned.
func (d *Documenter) Process() (*DocumentModel, []Warning) {
	model := &DocumentModel{
		SourceID:   d.sourceID,
		HeaderName: d.headerName,
	}
	var warnings []Warning

	scanner := NewBlockScanner(d.source)
	for {
		raw, ok := scanner.Next()
		if !ok {
			break
		}

		block, ok := ParseBlock(raw)
		if !ok {
			// empty block, nothing to document
			continue
		}

		sig, warns := Associate(d.source, raw.End)
		warnings = append(warnings, warns...)

		model.Entries = append(model.Entries, DocEntry{
			Block:     block,
			Signature: sig,
		})
	}
	warnings = append(warnings, scanner.Warnings()...)

	return model, warnings
}
