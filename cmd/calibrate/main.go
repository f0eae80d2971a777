// Command calibrate detects AprilTag fiducial markers in an image and prints
// the derived pixel-to-centimeter scale.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gocv.io/x/gocv"

	"github.com/ayusman/handmetrics/internal/detector"
	"github.com/ayusman/handmetrics/internal/measure"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <image>\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Detects AprilTag markers and prints the pixel-to-cm scale factor.")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	img := gocv.IMRead(flag.Arg(0), gocv.IMReadColor)
	defer img.Close()
	if img.Empty() {
		log.Fatalf("Failed to read image: %s", flag.Arg(0))
	}

	d := detector.NewArucoDetector(detector.DefaultConfig())
	defer d.Close()

	markers, err := d.Detect(&img)
	if err != nil {
		log.Fatalf("Marker detection failed: %v", err)
	}
	if len(markers) == 0 {
		log.Fatal("No fiducial markers detected")
	}

	for _, m := range markers {
		scale := m.Calibrate()
		if !scale.Calibrated {
			fmt.Printf("tag %d: degenerate geometry, calibration failed\n", m.ID)
			continue
		}
		fmt.Printf("tag %d: %.4f pixels/cm (marker edge %.1f cm)\n",
			m.ID, scale.PixelsPerCM, measure.MarkerSizeCM)
	}
}
