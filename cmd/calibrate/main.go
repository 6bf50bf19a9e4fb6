// Command calibrate drives the LED matrix with test patterns so an operator
// can visually confirm (or rule out) a wiring layout. It runs headless: the
// patterns are generated at matrix resolution and pushed straight through
// the remapper and the device client.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"ledray/internal/led"
	"ledray/internal/wled"
)

func main() {
	device := flag.String("device", "", "WLED device IP or hostname")
	matrixW := flag.Int("matrix-w", 16, "LED matrix width in pixels")
	matrixH := flag.Int("matrix-h", 8, "LED matrix height in pixels")
	wiring := flag.String("wiring", "row", "wiring layout under test (row, row-serpentine, col, col-serpentine, split)")
	timeout := flag.Duration("timeout", time.Second, "per-request device timeout")
	clearOnly := flag.Bool("clear", false, "blank the matrix and exit")
	flag.Parse()

	if *device == "" {
		log.Fatal("calibrate: -device is required")
	}
	layout, err := led.ParseLayout(*wiring)
	if err != nil {
		log.Fatal(err)
	}
	mapper, err := led.NewMapper(*matrixW, *matrixH, layout)
	if err != nil {
		log.Fatal(err)
	}
	client := wled.New(*device, *timeout)

	if *clearOnly {
		if err := client.Clear(*matrixW * *matrixH); err != nil {
			log.Fatal(err)
		}
		return
	}

	fmt.Printf("Calibrating %dx%d matrix at %s, wiring %q\n", *matrixW, *matrixH, *device, layout)
	fmt.Println("Each test shows a pattern; answer y if it looks as described.")

	in := bufio.NewScanner(os.Stdin)
	var failed []string
	patterns := led.CalibrationPatterns(*matrixW, *matrixH)
	for i, p := range patterns {
		fmt.Printf("\n[%d/%d] %s\n", i+1, len(patterns), p.Name)
		pixels := led.RenderPattern(p.Fn, *matrixW, *matrixH)
		if err := client.SendFrame(mapper.Remap(pixels)); err != nil {
			log.Fatalf("calibrate: %v", err)
		}
		if !askYes(in, p.Prompt) {
			failed = append(failed, p.Name)
		}
		if err := client.Clear(*matrixW * *matrixH); err != nil {
			log.Fatalf("calibrate: %v", err)
		}
	}

	fmt.Println()
	if len(failed) == 0 {
		fmt.Printf("All tests passed: wiring %q is correct. Run ledray with -wiring %s\n", layout, layout)
		return
	}
	fmt.Printf("Failed tests: %s\n", strings.Join(failed, ", "))
	fmt.Println("Try another -wiring value and run calibration again.")
	os.Exit(1)
}

func askYes(in *bufio.Scanner, prompt string) bool {
	for {
		fmt.Printf("%s (y/n): ", prompt)
		if !in.Scan() {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Println("Please answer y or n.")
	}
}
