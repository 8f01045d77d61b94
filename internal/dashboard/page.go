package dashboard

import (
	"bytes"
	"fmt"
	"strconv"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

const pageTitle = "⚽ Player Performance Dashboard"

// Metric is one labelled summary widget.
type Metric struct {
	Label string
	Value string
}

// Metrics returns the three summary widgets shown under the chart.
func (v *View) Metrics() []Metric {
	return []Metric{
		{Label: "Total Players", Value: strconv.Itoa(v.Summary.Count)},
		{Label: "Avg Goals", Value: fmt.Sprintf("%.1f", v.Summary.MeanGoals)},
		{Label: "Avg Assists", Value: fmt.Sprintf("%.1f", v.Summary.MeanAssists)},
	}
}

func document(title string, body ...gomponents.Node) gomponents.Node {
	return html.Doctype(html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title)),
			html.Link(html.Rel("icon"), html.Href("data:,")),
			html.StyleEl(gomponents.Raw(stylesheet)),
		),
		html.Body(html.Main(html.Class("layout"), gomponents.Group(body))),
	))
}

// Page renders the dashboard: chart, summary metrics and the optional raw table.
func Page(v *View) (gomponents.Node, error) {
	fig, err := v.FigureJSON()
	if err != nil {
		return nil, err
	}
	cards := make([]gomponents.Node, 0, 3)
	for _, m := range v.Metrics() {
		cards = append(cards, html.Div(
			html.Class("metric"),
			html.Div(html.Class("metric-label"), gomponents.Text(m.Label)),
			html.Div(html.Class("metric-value"), gomponents.Text(m.Value)),
		))
	}
	return document(
		"Player Performance Dashboard",
		html.H1(html.Class("page-title"), gomponents.Text(pageTitle)),
		html.Div(html.ID("chart"), gomponents.Attr("data-figure", string(fig))),
		html.Script(html.Src(plotlyScriptURL)),
		html.Script(gomponents.Raw(plotInit)),
		html.Section(
			html.H2(gomponents.Text("📊 Summary Statistics")),
			html.Div(html.Class("metrics"), gomponents.Group(cards)),
		),
		gomponents.If(v.ShowTable, rawTable(v.Columns, v.Rows)),
		html.P(html.Class("run-id"), gomponents.Textf("%s · run %s", v.Source, v.RunID)),
	), nil
}

func rawTable(columns []string, rows [][]string) gomponents.Node {
	head := make([]gomponents.Node, 0, len(columns))
	for _, c := range columns {
		head = append(head, html.Th(gomponents.Text(c)))
	}
	body := make([]gomponents.Node, 0, len(rows))
	for _, row := range rows {
		cells := make([]gomponents.Node, 0, len(row))
		for _, cell := range row {
			cells = append(cells, html.Td(gomponents.Text(cell)))
		}
		body = append(body, html.Tr(cells...))
	}
	return html.Details(
		html.Class("raw"),
		html.Summary(gomponents.Text("View Raw Data")),
		html.Table(
			html.Class("raw-table"),
			html.THead(html.Tr(head...)),
			html.TBody(body...),
		),
	)
}

// ErrorPage is the halting page: the message and nothing else.
func ErrorPage(title, message string) gomponents.Node {
	return document(
		title+" | Player Performance Dashboard",
		html.H1(html.Class("page-title"), gomponents.Text(pageTitle)),
		html.Div(html.Class("error-box"), html.Strong(gomponents.Text(title)), html.P(gomponents.Text(message))),
	)
}

// RenderPage writes the complete dashboard document to a byte slice.
func RenderPage(v *View) ([]byte, error) {
	page, err := Page(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}
