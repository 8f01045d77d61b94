package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/KaramelBytes/legends-cli/internal/dataset"
)

// Options controls how summary figures are derived.
type Options struct {
	// MedianDecimals rounds both medians; negative disables rounding.
	MedianDecimals int
}

// DefaultOptions rounds medians to three decimals.
func DefaultOptions() Options {
	return Options{MedianDecimals: 3}
}

// Summary holds the figures shown next to the chart. It is recomputed on every run.
type Summary struct {
	Count         int          `json:"count"`
	MeanGoals     float64      `json:"mean_goals"`
	MedianGoals   float64      `json:"median_goals"`
	MeanAssists   float64      `json:"mean_assists"`
	MedianAssists float64      `json:"median_assists"`
	MaxNineties   float64      `json:"max_nineties"`
	Eras          []EraSummary `json:"eras"`
}

// EraSummary aggregates one era group.
type EraSummary struct {
	Era         string  `json:"era"`
	Count       int     `json:"count"`
	MeanGoals   float64 `json:"mean_goals"`
	MeanAssists float64 `json:"mean_assists"`
}

// Summarize computes counts, means, medians and the size maximum of ds.
func Summarize(ds *dataset.Dataset, opt Options) Summary {
	goals := ds.Column(dataset.Goals)
	assists := ds.Column(dataset.Assists)
	s := Summary{
		Count:         len(ds.Players),
		MeanGoals:     Mean(goals),
		MedianGoals:   Round(Median(goals), opt.MedianDecimals),
		MeanAssists:   Mean(assists),
		MedianAssists: Round(Median(assists), opt.MedianDecimals),
		MaxNineties:   Max(ds.Column(dataset.Nineties)),
	}
	for _, g := range ds.GroupByEra() {
		sub := &dataset.Dataset{Players: g.Players}
		s.Eras = append(s.Eras, EraSummary{
			Era:         g.Era,
			Count:       len(g.Players),
			MeanGoals:   Mean(sub.Column(dataset.Goals)),
			MeanAssists: Mean(sub.Column(dataset.Assists)),
		})
	}
	sort.SliceStable(s.Eras, func(i, j int) bool {
		if s.Eras[i].Count == s.Eras[j].Count {
			return s.Eras[i].Era < s.Eras[j].Era
		}
		return s.Eras[i].Count > s.Eras[j].Count
	})
	return s
}

// FormatValue renders a number without trailing zeros, e.g. 2.5 or 12.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatMedian is FormatValue with at least one decimal, so 44 reads 44.0.
func FormatMedian(v float64) string {
	s := FormatValue(v)
	if strings.ContainsAny(s, ".eEN") {
		return s
	}
	return s + ".0"
}

// Markdown renders a compact report for terminals and docs.
func (s Summary) Markdown(source string) string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if source != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", source))
	}
	b.WriteString(fmt.Sprintf("Players: %d\n", s.Count))
	b.WriteString(fmt.Sprintf("Avg Goals: %.1f\n", s.MeanGoals))
	b.WriteString(fmt.Sprintf("Avg Assists: %.1f\n", s.MeanAssists))

	b.WriteString("\n[MEDIANS]\n")
	b.WriteString(fmt.Sprintf("- Median Goals = %s\n", FormatMedian(s.MedianGoals)))
	b.WriteString(fmt.Sprintf("- Median Assists = %s\n", FormatMedian(s.MedianAssists)))
	b.WriteString(fmt.Sprintf("- Max 90s played = %s\n", FormatValue(s.MaxNineties)))

	if len(s.Eras) > 0 {
		b.WriteString("\n[ERA SUMMARY]\n")
		for _, e := range s.Eras {
			b.WriteString(fmt.Sprintf("- %s (n=%d): mean goals %.1f, mean assists %.1f\n", safeVal(e.Era), e.Count, e.MeanGoals, e.MeanAssists))
		}
	}
	return b.String()
}

func safeVal(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
