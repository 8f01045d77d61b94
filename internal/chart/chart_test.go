package chart

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/legends-cli/internal/analysis"
	"github.com/KaramelBytes/legends-cli/internal/dataset"
)

const header = "Player,Goals - Penalty Kicks,Assists,Era,Number of 90s (minimum 4),Position,Best Year in Top 5 Euro League\n"

func load(t *testing.T, rows string) (*dataset.Dataset, analysis.Summary) {
	t.Helper()
	ds, err := dataset.Parse("legends.csv", strings.NewReader(header+rows), dataset.DefaultOptions())
	require.NoError(t, err)
	return ds, analysis.Summarize(ds, analysis.DefaultOptions())
}

const legends = "Roger Milla,40,10,Nineties,90,Forward,1990-91\n" +
	"Jay-Jay Okocha,25,30,Nineties,150,Midfielder,1997-98\n" +
	"Didier Drogba,104,55,Twenty-Noughts,254,Forward,2006-07\n" +
	"Yaya Toure,45,38,Twenty-Tens,0,Midfielder,2013-14\n" +
	"Mohamed Salah,120,55,Twenty-Twenties,240,Forward,2017-18\n" +
	"Riyad Mahrez,70,50,Twenty-Tens,220,Winger,2015-16\n"

func TestDiameterMonotoneWithFloorAndCeiling(t *testing.T) {
	s := DefaultScale()
	prev := 0.0
	for v := 0.0; v <= 254; v += 0.5 {
		d := Diameter(v, 254, s)
		require.GreaterOrEqual(t, d, prev, "diameter decreased at %v", v)
		require.GreaterOrEqual(t, d, s.MinDiameter)
		require.LessOrEqual(t, d, s.MaxDiameter)
		prev = d
	}
	require.Equal(t, 40.0, Diameter(254, 254, s))
	require.Equal(t, 6.0, Diameter(0, 254, s))
	require.Equal(t, 20.0, Diameter(127, 254, s))
}

func TestDiameterZeroMax(t *testing.T) {
	s := DefaultScale()
	require.Equal(t, s.MinDiameter, Diameter(0, 0, s))
	require.Equal(t, s.MinDiameter, Diameter(5, 0, s))
}

func TestLegendLevels(t *testing.T) {
	cases := map[float64][]float64{
		254: {64, 127, 254},
		40:  {10, 20, 40},
		1:   {1, 2, 3},
		2:   {1, 2, 3},
		0:   {1, 2, 3},
	}
	for peak, want := range cases {
		got := LegendLevels(peak)
		require.Equal(t, want, got, "peak %v", peak)
		require.Len(t, got, 3)
		require.Less(t, got[0], got[1])
		require.Less(t, got[1], got[2])
	}
}

func TestLegendBubblesNeverExceedMaxDiameter(t *testing.T) {
	scale := DefaultScale()
	for _, peak := range []float64{1, 2, 3} {
		for _, level := range LegendLevels(peak) {
			tr := legendTrace(level, peak, scale)
			require.LessOrEqual(t, tr.Marker.Size[0], scale.MaxDiameter, "peak %v level %v", peak, level)
		}
	}
	require.Equal(t, 40.0, Diameter(3, 1, scale))
}

func TestHoverText(t *testing.T) {
	got := HoverText(dataset.Player{
		Name: "Samuel Eto'o", Goals: 100, Assists: 30.5, Nineties: 250,
		Position: "Forward", Era: "Twenty-Noughts", BestSeason: "2005-06",
	})
	require.Equal(t, "<b>Samuel Eto&#39;o</b><br>Goals: 100<br>Assists: 30.5<br>90-Min Matches: 250<br>"+
		"Position: Forward<br>Era: Twenty-Noughts<br>Best Season: 2005-06", got)
}

func TestBuildEraVariant(t *testing.T) {
	ds, s := load(t, legends)
	fig, err := Build(ds, s, DefaultOptions())
	require.NoError(t, err)

	// Four eras plus three legend bubbles.
	require.Len(t, fig.Data, 7)
	require.Equal(t, "Era: Nineties", fig.Data[0].Name)
	require.Equal(t, "Era: Twenty-noughts", fig.Data[1].Name)
	require.Equal(t, "#E4572E", fig.Data[0].Marker.Color)
	require.Equal(t, "#72B7B2", fig.Data[2].Marker.Color)
	require.Equal(t, len(ds.Players), fig.Points())

	for _, tr := range fig.Data[:4] {
		require.Len(t, tr.Text, len(tr.X))
		require.Len(t, tr.Marker.Size, len(tr.X))
		require.Equal(t, "%{text}<extra></extra>", tr.HoverTemplate)
	}
	// Drogba has the most 90s and gets the full diameter; Toure has none and sits at the floor.
	require.Equal(t, 40.0, fig.Data[1].Marker.Size[0])
	require.Equal(t, "Yaya Toure", ds.GroupByEra()[2].Players[0].Name)
	require.Equal(t, 6.0, fig.Data[2].Marker.Size[0])

	legend := fig.Data[4:]
	require.Equal(t, "64 games", legend[0].Name)
	require.Equal(t, "127 games", legend[1].Name)
	require.Equal(t, "254 games", legend[2].Name)
	for _, tr := range legend {
		require.Equal(t, []any{nil}, tr.X)
		require.NotNil(t, tr.ShowLegend)
		require.True(t, *tr.ShowLegend)
	}
	require.Equal(t, 40.0, legend[2].Marker.Size[0])
}

func TestBuildMedianLines(t *testing.T) {
	ds, s := load(t, legends)
	fig, err := Build(ds, s, DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, 57.5, s.MedianGoals)
	require.Equal(t, 44.0, s.MedianAssists)
	require.Len(t, fig.Layout.Shapes, 2)
	v, h := fig.Layout.Shapes[0], fig.Layout.Shapes[1]
	require.Equal(t, s.MedianGoals, v.X0)
	require.Equal(t, s.MedianGoals, v.X1)
	require.Equal(t, "paper", v.YRef)
	require.Equal(t, s.MedianAssists, h.Y0)
	require.Equal(t, s.MedianAssists, h.Y1)
	require.Equal(t, "dot", h.Line.Dash)

	require.Equal(t, "Median Goals = 57.5", fig.Layout.Annotations[0].Text)
	require.Equal(t, s.MedianGoals, fig.Layout.Annotations[0].X)
	require.Equal(t, "Median Assists = 44.0", fig.Layout.Annotations[1].Text)
	require.Equal(t, s.MedianAssists, fig.Layout.Annotations[1].Y)
}

func TestBuildSizeVariant(t *testing.T) {
	ds, s := load(t, legends)
	fig, err := Build(ds, s, Options{ColorBy: ColorBySize, Scale: DefaultScale()})
	require.NoError(t, err)
	require.Len(t, fig.Data, 1)
	tr := fig.Data[0]
	require.Len(t, tr.X, len(ds.Players))
	require.Equal(t, "Viridis", tr.Marker.ColorScale)
	require.True(t, tr.Marker.ShowScale)
	require.Equal(t, []float64{90, 150, 254, 0, 240, 220}, tr.Marker.Color)
	require.Contains(t, fig.Layout.Title.Text, "90s Played")
}

func TestBuildZeroMaxSize(t *testing.T) {
	ds, s := load(t, "A,1,1,Nineties,0,FW,x\nB,2,2,Nineties,0,FW,x\n")
	fig, err := Build(ds, s, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []float64{6, 6}, fig.Data[0].Marker.Size)
	for _, tr := range fig.Data[1:] {
		require.Equal(t, float64(legendFloor), tr.Marker.Size[0])
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	ds, s := load(t, legends)
	a, err := Build(ds, s, DefaultOptions())
	require.NoError(t, err)
	b, err := Build(ds, s, DefaultOptions())
	require.NoError(t, err)
	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	require.JSONEq(t, string(ja), string(jb))
	require.Equal(t, ja, jb)
}

func TestBuildRejectsBadInput(t *testing.T) {
	_, err := Build(&dataset.Dataset{}, analysis.Summary{}, DefaultOptions())
	require.ErrorIs(t, err, dataset.ErrEmptyDataset)

	ds, s := load(t, legends)
	_, err = Build(ds, s, Options{ColorBy: "rainbow"})
	require.Error(t, err)
}

func TestFigureJSONShape(t *testing.T) {
	ds, s := load(t, legends)
	fig, err := Build(ds, s, DefaultOptions())
	require.NoError(t, err)
	b, err := json.Marshal(fig)
	require.NoError(t, err)
	out := string(b)
	require.Contains(t, out, `"sizemode":"diameter"`)
	require.Contains(t, out, `"x":[null]`)
	require.Contains(t, out, `"plot_bgcolor":"#F5F5F5"`)
	require.Contains(t, out, `"hovermode":"closest"`)
}
