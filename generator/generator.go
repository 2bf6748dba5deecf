// Package generator writes Quantizer preset files from a scale table.
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	fundamental "github.com/VCVRack/Fundamental"
)

type (
	// Generator writes one preset file per scale into Dir. The zero value
	// writes JSON presets into the current directory using no degree table;
	// use New to get a usable one.
	Generator struct {
		Dir     string
		Degrees fundamental.DegreeTable
		Format  Format
		Safe    bool      // never overwrite a file with different contents
		DryRun  bool      // do not write files, just report what would change
		Log     io.Writer // each path and its record are echoed here
	}

	// Result describes the preset generated for one scale.
	Result struct {
		Index   int
		Scale   fundamental.Scale
		Mask    fundamental.Mask
		Path    string
		Changed bool // false if the file already had the same contents
	}
)

// DefaultDir is the preset directory of the Quantizer module in VCV Rack
// plugins.
var DefaultDir = filepath.Join("presets", "Quantizer")

var ErrWouldOverwrite = errors.New("file would be overwritten")

// New returns a Generator writing JSON presets into dir.
func New(dir string, degrees fundamental.DegreeTable) *Generator {
	return &Generator{Dir: dir, Degrees: degrees, Format: JSON, Log: io.Discard}
}

// Generate writes one preset per scale into dir and returns how many files
// were generated.
func Generate(scales []fundamental.Scale, degrees fundamental.DegreeTable, dir string) (int, error) {
	results, err := New(dir, degrees).Run(scales)
	return len(results), err
}

// FileName returns the preset file name for the scale at index. The index
// keeps file names unique and sorted in table order.
func FileName(index int, name string, ext string) string {
	return fmt.Sprintf("%02d_%s%s", index, name, ext)
}

// Run generates the presets in table order. All masks are computed before
// anything is written, so an unknown degree leaves the directory untouched.
// Any other error aborts the run; files written before it are kept.
func (g *Generator) Run(scales []fundamental.Scale) ([]Result, error) {
	log := g.Log
	if log == nil {
		log = io.Discard
	}
	results := make([]Result, 0, len(scales))
	for i, s := range scales {
		mask, err := g.Degrees.Mask(s)
		if err != nil {
			return nil, fmt.Errorf("could not build preset #%d: %w", i, err)
		}
		results = append(results, Result{
			Index: i,
			Scale: s,
			Mask:  mask,
			Path:  filepath.Join(g.Dir, FileName(i, s.Name, g.Format.Ext())),
		})
	}
	if !g.DryRun {
		if err := os.MkdirAll(g.Dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("could not create output directory %v: %w", g.Dir, err)
		}
	}
	for i := range results {
		r := &results[i]
		contents, err := g.Format.Marshal(fundamental.NewQuantizerPreset(r.Mask))
		if err != nil {
			return results[:i], fmt.Errorf("could not marshal preset %v: %w", r.Path, err)
		}
		fmt.Fprintln(log, r.Path)
		log.Write(contents)
		if r.Changed, err = g.output(r.Path, contents); err != nil {
			return results[:i], err
		}
	}
	return results, nil
}

func (g *Generator) output(path string, contents []byte) (changed bool, err error) {
	original, err := os.ReadFile(path)
	if err == nil {
		if bytes.Equal(original, contents) {
			return false, nil // no need to update
		}
		if g.Safe && !g.DryRun {
			return false, fmt.Errorf("%v: %w", path, ErrWouldOverwrite)
		}
	}
	if g.DryRun {
		return true, nil
	}
	if err := writeFile(path, contents); err != nil {
		return false, fmt.Errorf("could not write file %v: %w", path, err)
	}
	return true, nil
}

// writeFile writes to a temp file then renames it over path.
func writeFile(path string, contents []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, contents, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
