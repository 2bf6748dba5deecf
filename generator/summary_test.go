package generator_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	fundamental "github.com/VCVRack/Fundamental"
	"github.com/VCVRack/Fundamental/generator"
)

func TestWriteSummary(t *testing.T) {
	g := generator.New("out", fundamental.Degrees())
	g.DryRun = true
	results, err := g.Run([]fundamental.Scale{
		{Name: "Major Pentatonic", Degrees: "1-2-3-5-6"},
		{Name: "Blues Rock'n'Roll", Degrees: "1-2-b3-3-4-b5-5-6-b7"},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	results[1].Changed = false
	var buf bytes.Buffer
	if err := generator.WriteSummary(&buf, results); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	expected := strings.Join([]string{
		`00 x.x.x..x.x.. "Major Pentatonic" [C D E G A] ` + filepath.Join("out", "00_Major Pentatonic.vcvm"),
		`01 x.xxxxxx.xx. "Blues Rock'n'Roll" [C D Eb E F Gb G A Bb] ` + filepath.Join("out", "01_Blues Rock'n'Roll.vcvm") + " (unchanged)",
		"2 presets",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Fatalf("wrong summary, got:\n%v\nexpected:\n%v", buf.String(), expected)
	}
}

func TestWriteSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := generator.WriteSummary(&buf, nil); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	if buf.String() != "0 presets\n" {
		t.Fatalf("wrong summary, got %q", buf.String())
	}
}
