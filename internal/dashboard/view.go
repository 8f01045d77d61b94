package dashboard

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/KaramelBytes/legends-cli/internal/analysis"
	"github.com/KaramelBytes/legends-cli/internal/chart"
	"github.com/KaramelBytes/legends-cli/internal/dataset"
)

// Config describes one pass of the pipeline.
type Config struct {
	Path      string
	Dataset   dataset.Options
	Stats     analysis.Options
	Chart     chart.Options
	ShowTable bool
}

// View is everything the page needs, produced fresh for each render.
type View struct {
	RunID     string
	Source    string
	Summary   analysis.Summary
	Figure    *chart.Figure
	Columns   []string
	Rows      [][]string
	ShowTable bool
}

// Pipeline produces a View; the HTTP handler calls it once per request.
type Pipeline func() (*View, error)

// BuildView loads the file, computes the summary and builds the figure.
// Nothing is cached between calls.
func BuildView(cfg Config) (*View, error) {
	ds, err := dataset.Load(cfg.Path, cfg.Dataset)
	if err != nil {
		return nil, err
	}
	sum := analysis.Summarize(ds, cfg.Stats)
	fig, err := chart.Build(ds, sum, cfg.Chart)
	if err != nil {
		return nil, err
	}
	return &View{
		RunID:     uuid.NewString(),
		Source:    ds.Source,
		Summary:   sum,
		Figure:    fig,
		Columns:   ds.Columns,
		Rows:      ds.Rows,
		ShowTable: cfg.ShowTable,
	}, nil
}

// NewPipeline binds cfg into a Pipeline.
func NewPipeline(cfg Config) Pipeline {
	return func() (*View, error) { return BuildView(cfg) }
}

// FigureJSON encodes the figure for plotly.js.
func (v *View) FigureJSON() ([]byte, error) {
	b, err := json.Marshal(v.Figure)
	if err != nil {
		return nil, fmt.Errorf("marshal figure: %w", err)
	}
	return b, nil
}
