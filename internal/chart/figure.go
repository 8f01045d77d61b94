// Package chart builds the goals-vs-assists bubble figure as a Plotly figure
// document, ready to hand to plotly.js in the browser.
package chart

// Figure is a Plotly figure: data traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a scatter trace. X and Y hold nil entries for legend-only traces.
type Trace struct {
	Type          string   `json:"type"`
	Mode          string   `json:"mode"`
	Name          string   `json:"name,omitempty"`
	X             []any    `json:"x"`
	Y             []any    `json:"y"`
	Text          []string `json:"text,omitempty"`
	HoverTemplate string   `json:"hovertemplate,omitempty"`
	HoverInfo     string   `json:"hoverinfo,omitempty"`
	ShowLegend    *bool    `json:"showlegend,omitempty"`
	Marker        Marker   `json:"marker"`
}

// Marker encodes bubble size and colour. Color is either a single CSS colour
// or one value per point when a colour scale is set.
type Marker struct {
	Size       []float64   `json:"size"`
	SizeMode   string      `json:"sizemode"`
	SizeRef    float64     `json:"sizeref"`
	SizeMin    float64     `json:"sizemin"`
	Color      any         `json:"color"`
	ColorScale string      `json:"colorscale,omitempty"`
	ShowScale  bool        `json:"showscale,omitempty"`
	ColorBar   *ColorBar   `json:"colorbar,omitempty"`
	Line       *MarkerLine `json:"line,omitempty"`
}

// MarkerLine outlines each bubble.
type MarkerLine struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

// ColorBar labels the continuous colour scale.
type ColorBar struct {
	Title Title `json:"title"`
}

// Title is plotly's text wrapper for titles.
type Title struct {
	Text string `json:"text"`
}

// Font sets annotation text size.
type Font struct {
	Size int `json:"size"`
}

// Axis configures one cartesian axis.
type Axis struct {
	Title     Title  `json:"title"`
	GridColor string `json:"gridcolor,omitempty"`
}

// Legend configures the trace legend.
type Legend struct {
	Title Title `json:"title"`
}

// Shape is a layout line; reference lines use "paper" for the spanning axis.
type Shape struct {
	Type string    `json:"type"`
	XRef string    `json:"xref"`
	YRef string    `json:"yref"`
	X0   float64   `json:"x0"`
	X1   float64   `json:"x1"`
	Y0   float64   `json:"y0"`
	Y1   float64   `json:"y1"`
	Line ShapeLine `json:"line"`
}

// ShapeLine styles a layout shape's stroke.
type ShapeLine struct {
	Dash  string `json:"dash"`
	Color string `json:"color"`
	Width int    `json:"width,omitempty"`
}

// Annotation is a text label placed in data or paper coordinates.
type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	XAnchor   string  `json:"xanchor,omitempty"`
	YAnchor   string  `json:"yanchor,omitempty"`
	ShowArrow bool    `json:"showarrow"`
	Font      Font    `json:"font"`
}

// Layout is the figure-level configuration.
type Layout struct {
	Title        Title        `json:"title"`
	XAxis        Axis         `json:"xaxis"`
	YAxis        Axis         `json:"yaxis"`
	Height       int          `json:"height"`
	Legend       Legend       `json:"legend"`
	PlotBGColor  string       `json:"plot_bgcolor"`
	PaperBGColor string       `json:"paper_bgcolor"`
	HoverMode    string       `json:"hovermode"`
	Shapes       []Shape      `json:"shapes"`
	Annotations  []Annotation `json:"annotations"`
}

// Points returns how many data points the figure plots, ignoring legend-only traces.
func (f *Figure) Points() int {
	n := 0
	for _, tr := range f.Data {
		for _, x := range tr.X {
			if x != nil {
				n++
			}
		}
	}
	return n
}
