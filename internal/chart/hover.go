package chart

import (
	"html"
	"strings"

	"github.com/KaramelBytes/legends-cli/internal/analysis"
	"github.com/KaramelBytes/legends-cli/internal/dataset"
)

// HoverText is the per-point tooltip. Text fields are HTML-escaped because
// plotly renders the string as markup.
func HoverText(p dataset.Player) string {
	var b strings.Builder
	b.WriteString("<b>" + html.EscapeString(p.Name) + "</b><br>")
	b.WriteString("Goals: " + analysis.FormatValue(p.Goals) + "<br>")
	b.WriteString("Assists: " + analysis.FormatValue(p.Assists) + "<br>")
	b.WriteString("90-Min Matches: " + analysis.FormatValue(p.Nineties) + "<br>")
	b.WriteString("Position: " + html.EscapeString(p.Position) + "<br>")
	b.WriteString("Era: " + html.EscapeString(p.Era) + "<br>")
	b.WriteString("Best Season: " + html.EscapeString(p.BestSeason))
	return b.String()
}
