package led

// PatternFunc returns the color for logical matrix coordinates (x, y).
// Patterns are generated at matrix resolution and pushed through Remap, so
// a miswired layout shows up as a visibly broken pattern.
type PatternFunc func(x, y int) RGB

// Pattern pairs a calibration pattern with the prompt shown to the
// operator.
type Pattern struct {
	Name   string
	Prompt string
	Fn     PatternFunc
}

// CalibrationPatterns returns the test sequence used to verify a wiring
// layout on a w-by-h matrix.
func CalibrationPatterns(w, h int) []Pattern {
	red := RGB{255, 0, 0}
	green := RGB{0, 255, 0}
	blue := RGB{0, 0, 255}
	yellow := RGB{255, 255, 0}
	magenta := RGB{255, 0, 255}
	cyan := RGB{0, 255, 255}
	white := RGB{255, 255, 255}
	off := RGB{}

	return []Pattern{
		{
			Name:   "corners",
			Prompt: "RED top-left, GREEN top-right, BLUE bottom-left, YELLOW bottom-right?",
			Fn: func(x, y int) RGB {
				switch {
				case x == 0 && y == 0:
					return red
				case x == w-1 && y == 0:
					return green
				case x == 0 && y == h-1:
					return blue
				case x == w-1 && y == h-1:
					return yellow
				}
				return off
			},
		},
		{
			Name:   "gradient",
			Prompt: "RED on the left, GREEN in the middle, BLUE on the right?",
			Fn: func(x, y int) RGB {
				switch {
				case x < w/3:
					return red
				case x < 2*w/3:
					return green
				}
				return blue
			},
		},
		{
			Name:   "stripes",
			Prompt: "VERTICAL stripes RED-GREEN-BLUE-YELLOW repeating?",
			Fn: func(x, y int) RGB {
				switch x % 4 {
				case 0:
					return red
				case 1:
					return green
				case 2:
					return blue
				}
				return yellow
			},
		},
		{
			Name:   "rows",
			Prompt: "MAGENTA full top row and CYAN full bottom row?",
			Fn: func(x, y int) RGB {
				switch y {
				case 0:
					return magenta
				case h - 1:
					return cyan
				}
				return off
			},
		},
		{
			Name:   "panels",
			Prompt: "LEFT half RED and RIGHT half BLUE, cleanly separated?",
			Fn: func(x, y int) RGB {
				if x < w/2 {
					return red
				}
				return blue
			},
		},
		{
			Name:   "checkerboard",
			Prompt: "A continuous WHITE/RED checkerboard with no breaks or shifts?",
			Fn: func(x, y int) RGB {
				if (x+y)%2 == 0 {
					return white
				}
				return red
			},
		},
	}
}

// RenderPattern evaluates a pattern into a row-major pixel buffer.
func RenderPattern(fn PatternFunc, w, h int) []RGB {
	pixels := make([]RGB, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pixels[y*w+x] = fn(x, y)
		}
	}
	return pixels
}
