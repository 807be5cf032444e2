package web

import (
	"fmt"
	"math"
	"sort"

	"fintrack/internal/core"
)

// Donut geometry. The chart is drawn into a 220x220 viewBox centered at
// (110,110) with a 2 degree gap between adjacent slices.
const (
	chartSize    = 220.0
	chartCenter  = chartSize / 2
	outerRadius  = 100.0
	innerRadius  = 60.0
	paddingAngle = 2.0
)

// palette cycles when there are more categories than colors.
var palette = []string{
	"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#FF6B6B",
	"#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7", "#DFE6E9",
}

type chartSlice struct {
	Name     string
	Value    string
	Tooltip  string
	Color    string
	Path     string
	FillRule string
}

type chartView struct {
	HasData bool
	Size    float64
	Slices  []chartSlice
}

// buildChart turns the per-category totals into a renderable donut model.
// Categories are sorted by name so the layout is stable across refreshes.
func buildChart(byCategory map[string]core.Money) chartView {
	names := make([]string, 0, len(byCategory))
	var total int64
	for name, m := range byCategory {
		if m.Cents == 0 {
			continue
		}
		names = append(names, name)
		total += m.Cents
	}
	if len(names) == 0 || total <= 0 {
		return chartView{Size: chartSize}
	}
	sort.Strings(names)

	view := chartView{HasData: true, Size: chartSize}

	if len(names) == 1 {
		m := byCategory[names[0]]
		view.Slices = append(view.Slices, chartSlice{
			Name:     names[0],
			Value:    m.String(),
			Tooltip:  names[0] + ": " + formatUSD(m.Cents),
			Color:    palette[0],
			Path:     fullRingPath(),
			FillRule: "evenodd",
		})
		return view
	}

	angle := 0.0
	for i, name := range names {
		m := byCategory[name]
		sweep := 360.0 * float64(m.Cents) / float64(total)
		start := angle + paddingAngle/2
		end := angle + sweep - paddingAngle/2
		if end < start {
			end = start
		}
		view.Slices = append(view.Slices, chartSlice{
			Name:    name,
			Value:   m.String(),
			Tooltip: name + ": " + formatUSD(m.Cents),
			Color:   palette[i%len(palette)],
			Path:    annularSectorPath(start, end),
		})
		angle += sweep
	}
	return view
}

// polar converts an angle in degrees, measured clockwise from 12 o'clock,
// into viewBox coordinates at the given radius.
func polar(radius, degrees float64) (float64, float64) {
	rad := (degrees - 90) * math.Pi / 180
	return chartCenter + radius*math.Cos(rad), chartCenter + radius*math.Sin(rad)
}

func annularSectorPath(start, end float64) string {
	largeArc := 0
	if end-start > 180 {
		largeArc = 1
	}
	x1, y1 := polar(outerRadius, start)
	x2, y2 := polar(outerRadius, end)
	x3, y3 := polar(innerRadius, end)
	x4, y4 := polar(innerRadius, start)
	return fmt.Sprintf("M %.2f %.2f A %.0f %.0f 0 %d 1 %.2f %.2f L %.2f %.2f A %.0f %.0f 0 %d 0 %.2f %.2f Z",
		x1, y1, outerRadius, outerRadius, largeArc, x2, y2,
		x3, y3, innerRadius, innerRadius, largeArc, x4, y4)
}

// fullRingPath draws a complete annulus for the single-category case, where
// an arc with coincident endpoints would collapse to nothing.
func fullRingPath() string {
	ring := func(r float64) string {
		top := chartCenter - r
		bottom := chartCenter + r
		return fmt.Sprintf("M %.0f %.0f A %.0f %.0f 0 1 1 %.0f %.0f A %.0f %.0f 0 1 1 %.0f %.0f Z",
			chartCenter, top, r, r, chartCenter, bottom, r, r, chartCenter, top)
	}
	return ring(outerRadius) + " " + ring(innerRadius)
}
