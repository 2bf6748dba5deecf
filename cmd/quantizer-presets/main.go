package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	fundamental "github.com/VCVRack/Fundamental"
	"github.com/VCVRack/Fundamental/generator"
	"github.com/VCVRack/Fundamental/version"
)

func main() {
	outDir := flag.String("o", generator.DefaultDir, "Directory where to write the presets. Directory and its parents are created if needed.")
	safe := flag.Bool("n", false, "Never overwrite files; if a preset already exists with different contents, give an error.")
	list := flag.Bool("l", false, "Do not write files; just list files that would change instead.")
	yamlOut := flag.Bool("y", false, "Output the presets as .yml files instead of .vcvm.")
	summary := flag.Bool("summary", false, "Print a summary of the presets instead of echoing each preset.")
	help := flag.Bool("h", false, "Show help.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if *help || flag.NArg() > 0 {
		flag.Usage()
		os.Exit(0)
	}
	scales, err := fundamental.Scales()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load the scale table: %v\n", err)
		os.Exit(1)
	}
	gen := generator.New(*outDir, fundamental.Degrees())
	gen.Safe = *safe
	gen.DryRun = *list
	gen.Log = os.Stdout
	if *yamlOut {
		gen.Format = generator.YAML
	}
	if *summary || *list {
		gen.Log = io.Discard
	}
	results, err := gen.Run(scales)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generating presets failed: %v\n", err)
		os.Exit(1)
	}
	switch {
	case *list:
		for _, r := range results {
			if r.Changed {
				fmt.Println(r.Path)
			}
		}
	case *summary:
		if err := generator.WriteSummary(os.Stdout, results); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Quantizer preset generator. Writes a VCV Rack Fundamental Quantizer preset for each built-in scale.\nUsage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}
