package chart

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KaramelBytes/legends-cli/internal/analysis"
	"github.com/KaramelBytes/legends-cli/internal/dataset"
)

// Colour modes.
const (
	ColorByEra  = "era"
	ColorBySize = "size"
)

// Options selects the colour encoding and the bubble scale.
type Options struct {
	ColorBy string
	Scale   Scale
}

// DefaultOptions colours by era with the default scale.
func DefaultOptions() Options {
	return Options{ColorBy: ColorByEra, Scale: DefaultScale()}
}

// ParseColorBy validates a colour mode name.
func ParseColorBy(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", ColorByEra:
		return ColorByEra, nil
	case ColorBySize, "nineties", "90s":
		return ColorBySize, nil
	default:
		return "", fmt.Errorf("unsupported color mode: %s (use era or size)", s)
	}
}

var eraColors = map[string]string{
	"Nineties":        "#E4572E",
	"Twenty-Noughts":  "#4C78A8",
	"Twenty-Tens":     "#72B7B2",
	"Twenty-Twenties": "#F2A541",
}

const fallbackColor = "#888888"

// EraColor returns the fixed colour for an era, or gray for unknown eras.
func EraColor(era string) string {
	if c, ok := eraColors[era]; ok {
		return c
	}
	return fallbackColor
}

// Build assembles the bubble figure for ds. The summary supplies the median
// reference lines and the size maximum.
func Build(ds *dataset.Dataset, s analysis.Summary, opt Options) (*Figure, error) {
	if ds == nil || len(ds.Players) == 0 {
		return nil, fmt.Errorf("build chart: %w", dataset.ErrEmptyDataset)
	}
	mode, err := ParseColorBy(opt.ColorBy)
	if err != nil {
		return nil, err
	}
	scale := opt.Scale
	if scale.MaxDiameter <= 0 {
		scale = DefaultScale()
	}
	if scale.MinDiameter > scale.MaxDiameter {
		return nil, errors.New("build chart: min diameter exceeds max diameter")
	}

	fig := &Figure{Layout: baseLayout(mode)}
	switch mode {
	case ColorBySize:
		fig.Data = append(fig.Data, sizeTrace(ds.Players, s.MaxNineties, scale))
	default:
		for _, g := range ds.GroupByEra() {
			fig.Data = append(fig.Data, eraTrace(g, s.MaxNineties, scale))
		}
		for _, level := range LegendLevels(s.MaxNineties) {
			fig.Data = append(fig.Data, legendTrace(level, s.MaxNineties, scale))
		}
	}
	addMedianLines(&fig.Layout, s.MedianGoals, s.MedianAssists)
	return fig, nil
}

func points(players []dataset.Player, peak float64, scale Scale) (xs, ys []any, sizes []float64, text []string) {
	xs = make([]any, len(players))
	ys = make([]any, len(players))
	sizes = make([]float64, len(players))
	text = make([]string, len(players))
	for i, p := range players {
		xs[i] = p.Goals
		ys[i] = p.Assists
		sizes[i] = Diameter(p.Nineties, peak, scale)
		text[i] = HoverText(p)
	}
	return xs, ys, sizes, text
}

func eraTrace(g dataset.EraGroup, peak float64, scale Scale) Trace {
	xs, ys, sizes, text := points(g.Players, peak, scale)
	return Trace{
		Type:          "scatter",
		Mode:          "markers",
		Name:          "Era: " + capitalize(g.Era),
		X:             xs,
		Y:             ys,
		Text:          text,
		HoverTemplate: "%{text}<extra></extra>",
		Marker: Marker{
			Size:     sizes,
			SizeMode: "diameter",
			SizeRef:  1,
			SizeMin:  scale.MinDiameter,
			Color:    EraColor(g.Era),
			Line:     &MarkerLine{Width: 1, Color: "white"},
		},
	}
}

func sizeTrace(players []dataset.Player, peak float64, scale Scale) Trace {
	xs, ys, sizes, text := points(players, peak, scale)
	colors := make([]float64, len(players))
	for i, p := range players {
		colors[i] = p.Nineties
	}
	return Trace{
		Type:          "scatter",
		Mode:          "markers",
		Name:          "Players",
		X:             xs,
		Y:             ys,
		Text:          text,
		HoverTemplate: "%{text}<extra></extra>",
		Marker: Marker{
			Size:       sizes,
			SizeMode:   "diameter",
			SizeRef:    1,
			SizeMin:    scale.MinDiameter,
			Color:      colors,
			ColorScale: "Viridis",
			ShowScale:  true,
			ColorBar:   &ColorBar{Title: Title{Text: "90s Played"}},
			Line:       &MarkerLine{Width: 1, Color: "white"},
		},
	}
}

// legendTrace is an off-plot bubble that only shows up in the legend.
func legendTrace(level, peak float64, scale Scale) Trace {
	ls := Scale{MaxDiameter: scale.MaxDiameter, MinDiameter: legendFloor}
	show := true
	return Trace{
		Type:       "scatter",
		Mode:       "markers",
		Name:       analysis.FormatValue(level) + " games",
		X:          []any{nil},
		Y:          []any{nil},
		HoverInfo:  "skip",
		ShowLegend: &show,
		Marker: Marker{
			Size:     []float64{Diameter(level, peak, ls)},
			SizeMode: "diameter",
			SizeRef:  1,
			SizeMin:  legendFloor,
			Color:    "lightgray",
			Line:     &MarkerLine{Width: 1, Color: "gray"},
		},
	}
}

func baseLayout(mode string) Layout {
	title := "<b>Goals vs Assists by Era</b>"
	if mode == ColorBySize {
		title = "<b>Goals vs Assists by 90s Played</b>"
	}
	return Layout{
		Title:        Title{Text: title},
		XAxis:        Axis{Title: Title{Text: "Goals (excluding penalties)"}, GridColor: "white"},
		YAxis:        Axis{Title: Title{Text: "Assists"}, GridColor: "white"},
		Height:       650,
		Legend:       Legend{Title: Title{Text: "<b>Legend</b>"}},
		PlotBGColor:  "#F5F5F5",
		PaperBGColor: "white",
		HoverMode:    "closest",
	}
}

// addMedianLines draws a vertical line at the goals median and a horizontal one
// at the assists median, each labelled with the exact value it sits on.
func addMedianLines(l *Layout, medianGoals, medianAssists float64) {
	line := ShapeLine{Dash: "dot", Color: "gray"}
	l.Shapes = append(l.Shapes,
		Shape{Type: "line", XRef: "x", YRef: "paper", X0: medianGoals, X1: medianGoals, Y0: 0, Y1: 1, Line: line},
		Shape{Type: "line", XRef: "paper", YRef: "y", X0: 0, X1: 1, Y0: medianAssists, Y1: medianAssists, Line: line},
	)
	l.Annotations = append(l.Annotations,
		Annotation{
			Text: "Median Goals = " + analysis.FormatMedian(medianGoals),
			X:    medianGoals, Y: 1, XRef: "x", YRef: "paper",
			YAnchor: "bottom", Font: Font{Size: 12},
		},
		Annotation{
			Text: "Median Assists = " + analysis.FormatMedian(medianAssists),
			X:    1, Y: medianAssists, XRef: "paper", YRef: "y",
			XAnchor: "left", Font: Font{Size: 12},
		},
	)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[n:])
}
