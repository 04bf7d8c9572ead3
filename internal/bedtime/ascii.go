package bedtime

import (
	"fmt"
	"math"
	"strings"
)

const minASCIIRadius = 6

// RenderASCII draws the ring as text for terminals: '.' for the ring, '+'
// for cycle marks, 'N' for now and 'W' for the wake time. Cells are twice
// as tall as wide, so x is stretched by two.
func RenderASCII(r *Result, radius int) string {
	radius = max(radius, minASCIIRadius)
	height := 2*radius + 1
	width := 4*radius + 1
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", width))
	}

	cx, cy := float64(2*radius), float64(radius)
	cell := func(angle, rr float64) (int, int, bool) {
		p := PointAt(angle, 0, 0, rr)
		x := int(math.Round(cx + 2*p.X))
		y := int(math.Round(cy + p.Y))
		return x, y, x >= 0 && x < width && y >= 0 && y < height
	}
	plot := func(angle float64, c rune) {
		if x, y, ok := cell(angle, float64(radius)); ok {
			grid[y][x] = c
		}
	}
	text := func(x, y int, s string) {
		x -= len(s) / 2
		for i, c := range s {
			if x+i >= 0 && x+i < width && y >= 0 && y < height {
				grid[y][x+i] = c
			}
		}
	}

	for a := 0.0; a < 360; a += 3 {
		plot(a, '.')
	}
	for h := 0; h < 24; h += 6 {
		a := float64(h)/24*360 - 90
		x, y, _ := cell(a, float64(radius)*0.6)
		text(x, y, fmt.Sprintf("%02d", h))
	}
	for _, m := range r.CycleMarks {
		plot(Angle(m), '+')
	}
	plot(Angle(r.Now), 'N')
	plot(Angle(r.Wake), 'W')
	text(int(cx), int(cy), FormatHM(r.Until)+" sleep")

	lines := make([]string, height)
	for y, row := range grid {
		lines[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}
