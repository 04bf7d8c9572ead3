package bedtime

import (
	"fmt"
	"math"
	"time"
)

// Angle places t on a 24-hour ring, in degrees. Midnight is -90, the top of
// the ring in screen coordinates, and time runs clockwise.
func Angle(t time.Time) float64 {
	minutes := float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60
	return minutes/1440*360 - 90
}

type Point struct {
	X, Y float64
}

// PointAt is the point at angle degrees on a circle around (cx, cy), with y
// growing downwards.
func PointAt(angle, cx, cy, r float64) Point {
	rad := angle * math.Pi / 180
	return Point{X: cx + r*math.Cos(rad), Y: cy + r*math.Sin(rad)}
}

type Tick struct {
	Time         time.Time
	Inner, Outer Point
}

type Label struct {
	Text string
	At   Point
}

// RingLayout is everything a drawing surface needs for one result: a circle,
// a line per cycle mark, two filled markers and some text.
type RingLayout struct {
	CX, CY, R float64

	Now  Point
	Wake Point

	Cycles []Tick
	Hours  []Label

	Caption string
}

func Layout(r *Result, cx, cy, radius float64) RingLayout {
	l := RingLayout{
		CX:      cx,
		CY:      cy,
		R:       radius,
		Now:     PointAt(Angle(r.Now), cx, cy, radius),
		Wake:    PointAt(Angle(r.Wake), cx, cy, radius),
		Caption: fmt.Sprintf("%s sleep", FormatHM(r.Until)),
	}
	for _, m := range r.CycleMarks {
		a := Angle(m)
		l.Cycles = append(l.Cycles, Tick{
			Time:  m,
			Inner: PointAt(a, cx, cy, radius*0.85),
			Outer: PointAt(a, cx, cy, radius*1.1),
		})
	}
	for h := 0; h < 24; h += 6 {
		a := float64(h)/24*360 - 90
		l.Hours = append(l.Hours, Label{
			Text: fmt.Sprintf("%02d", h),
			At:   PointAt(a, cx, cy, radius*0.7),
		})
	}
	return l
}
