package dataset

import (
	"regexp"
	"strings"
)

// Normalized names of the columns the dashboard depends on.
const (
	ColPlayer     = "player"
	ColGoals      = "goals__penalty_kicks"
	ColAssists    = "assists"
	ColEra        = "era"
	ColNineties   = "number_of_90s_minimum_4"
	ColPosition   = "position"
	ColBestSeason = "best_year_in_top_5_euro_league"
)

// DefaultRequired lists the columns every input file must carry after normalization.
func DefaultRequired() []string {
	return []string{ColPlayer, ColGoals, ColAssists, ColEra, ColNineties, ColPosition, ColBestSeason}
}

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// NormalizeColumn trims, lowercases, turns spaces into underscores and then
// drops anything that is not a word character or whitespace.
// "Goals - Penalty Kicks" becomes "goals__penalty_kicks".
func NormalizeColumn(name string) string {
	s := strings.TrimSpace(name)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	return nonWord.ReplaceAllString(s, "")
}

// NormalizeColumns applies NormalizeColumn to every header label.
func NormalizeColumns(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = NormalizeColumn(h)
	}
	return out
}

// Validate reports the required columns absent from columns, in required order.
func Validate(columns []string, required []string) error {
	have := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		have[c] = struct{}{}
	}
	var missing []string
	for _, r := range required {
		if _, ok := have[r]; !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Missing: missing}
	}
	return nil
}
