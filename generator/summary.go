package generator

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig"
)

//go:embed summary.tmpl
var summaryTemplate string

var summary = template.Must(template.New("summary").Funcs(sprig.TxtFuncMap()).Parse(summaryTemplate))

// WriteSummary writes one line per generated preset: the index, the mask
// drawn with "x" and ".", the scale name, the enabled notes on a C root and
// the path.
func WriteSummary(w io.Writer, results []Result) error {
	if err := summary.Execute(w, results); err != nil {
		return fmt.Errorf("could not execute summary template: %w", err)
	}
	return nil
}
