// Command convert rewrites manually annotated hand landmarks into the
// MediaPipe 21-point landmark format.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ayusman/handmetrics/internal/convert"
	"github.com/ayusman/handmetrics/internal/record"
)

func main() {
	output := flag.String("o", "", "output path (defaults to <input>_mediapipe.json)")
	width := flag.Int("width", convert.DefaultImageWidth, "source image width in pixels")
	height := flag.Int("height", convert.DefaultImageHeight, "source image height in pixels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <annotation.json>\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Converts manual landmark annotations to MediaPipe format.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	input := flag.Arg(0)

	f, err := record.Load(input)
	if err != nil && !errors.Is(err, record.ErrNoMeasurements) {
		log.Fatalf("Failed to load %s: %v", input, err)
	}

	landmarks := convert.ToMediaPipe(f.AllPoints(), *width, *height)
	if len(landmarks) == 0 {
		log.Fatalf("No landmark points found in %s", input)
	}

	outPath := *output
	if outPath == "" {
		outPath = trimJSONExt(input) + "_mediapipe.json"
	}

	out, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", outPath, err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(convert.NewDocument(landmarks)); err != nil {
		log.Fatalf("Failed to write %s: %v", outPath, err)
	}

	fmt.Printf("Converted %d landmarks to %s\n", len(landmarks), outPath)
}

func trimJSONExt(path string) string {
	const ext = ".json"
	if len(path) > len(ext) && path[len(path)-len(ext):] == ext {
		return path[:len(path)-len(ext)]
	}
	return path
}
