package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/discourse"
	"github.com/tsawler/discourse/render"
	"github.com/tsawler/discourse/volume"
)

func main() {
	output := flag.String("o", "", "Output file (default derived from the source name)")
	asJSON := flag.Bool("json", false, "Write JSON instead of markdown")
	speaker := flag.String("speaker", "", "Keep only records by this speaker")
	noNumbers := flag.Bool("no-numbers", false, "Omit \"## Discourse N\" headings")
	title := flag.String("title", "", "Override the derived volume title")
	flag.Parse()

	srcFile := "JoD01.txt"
	if flag.NArg() > 0 {
		srcFile = flag.Arg(0)
	}

	outFile := *output
	if outFile == "" {
		outFile = volume.OutputName(srcFile)
		if *asJSON {
			outFile = strings.TrimSuffix(outFile, ".md") + ".json"
		}
	}

	fmt.Printf("Processing %s...\n", srcFile)

	ext := discourse.Open(srcFile)
	if *title != "" {
		ext = ext.VolumeTitle(*title)
	}
	if *speaker != "" {
		ext = ext.Speaker(*speaker)
	}
	if *noNumbers {
		ext = ext.WithoutNumbers()
	}

	doc, err := ext.Document()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d discourses\n", len(doc.Records))

	f, err := os.Create(outFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if *asJSON {
		err = render.WriteJSON(f, doc)
	} else {
		cfg := render.DefaultMarkdownConfig()
		cfg.NumberRecords = !*noNumbers
		err = render.WriteMarkdown(f, doc, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done! Created %s with %d discourses\n", outFile, len(doc.Records))
}
