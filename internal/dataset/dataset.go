package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Options controls how a player file is read.
type Options struct {
	// Required columns, by normalized name. Nil means DefaultRequired().
	Required []string
	// Delimiter for CSV. If 0, ',' is used ('\t' for .tsv files).
	Delimiter rune
	// Encoding of CSV/TSV text: latin-1, windows-1252 or utf-8.
	Encoding string
	// XLSX sheet selection; SheetIndex is 1-based and used when Sheet is empty.
	Sheet      string
	SheetIndex int
	// DecimalSeparator for numeric cells. If 0, auto-detect per value.
	DecimalSeparator rune
}

// DefaultOptions returns the settings used for the legends export.
func DefaultOptions() Options {
	return Options{
		Required:   DefaultRequired(),
		Encoding:   DefaultEncoding,
		SheetIndex: 1,
	}
}

// Player is one row of the source table.
type Player struct {
	Name       string  `json:"player"`
	Goals      float64 `json:"goals"`
	Assists    float64 `json:"assists"`
	Era        string  `json:"era"`
	Nineties   float64 `json:"nineties"`
	Position   string  `json:"position"`
	BestSeason string  `json:"best_season"`
}

// Dataset is the validated table in file order.
type Dataset struct {
	Source  string
	Columns []string
	Rows    [][]string
	Players []Player
}

// EraGroup holds the players of one era in row order.
type EraGroup struct {
	Era     string
	Players []Player
}

// Load reads path, normalizes the header, validates the required columns and
// parses every player. Any failure aborts the whole load.
func Load(path string, opt Options) (*Dataset, error) {
	var (
		records [][]string
		err     error
	)
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xlsx"):
		records, err = readXLSX(path, opt.Sheet, opt.SheetIndex)
	default:
		delim := opt.Delimiter
		if delim == 0 {
			delim = sniffDelimiter(path)
		}
		records, err = readCSV(path, delim, opt.Encoding)
	}
	if err != nil {
		return nil, err
	}
	return fromRecords(filepath.Base(path), records, opt)
}

// Parse builds a Dataset from an in-memory CSV stream that is already UTF-8.
func Parse(name string, r io.Reader, opt Options) (*Dataset, error) {
	delim := opt.Delimiter
	if delim == 0 {
		delim = ','
	}
	records, err := readRecords(r, delim)
	if err != nil {
		return nil, err
	}
	return fromRecords(name, records, opt)
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

func readCSV(path string, delim rune, encoding string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	r, err := decodeReader(f, encoding)
	if err != nil {
		return nil, err
	}
	return readRecords(r, delim)
}

func readRecords(src io.Reader, delim rune) ([][]string, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim
	var out [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(out), err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func fromRecords(name string, records [][]string, opt Options) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no header row: %w", name, ErrEmptyDataset)
	}
	required := opt.Required
	if required == nil {
		required = DefaultRequired()
	}
	cols := NormalizeColumns(records[0])
	if err := Validate(cols, required); err != nil {
		return nil, err
	}
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}

	ds := &Dataset{Source: name, Columns: cols}
	for _, rec := range records[1:] {
		if blankRow(rec) {
			continue
		}
		row := len(ds.Rows) + 1
		if len(rec) > len(cols) && !blankRow(rec[len(cols):]) {
			return nil, &FieldCountError{Row: row, Got: len(rec), Want: len(cols)}
		}
		if len(rec) < len(cols) {
			tmp := make([]string, len(cols))
			copy(tmp, rec)
			rec = tmp
		}
		p, err := playerFromRow(rec, index, row, opt.DecimalSeparator)
		if err != nil {
			return nil, err
		}
		ds.Rows = append(ds.Rows, rec[:len(cols)])
		ds.Players = append(ds.Players, p)
	}
	if len(ds.Players) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyDataset)
	}
	return ds, nil
}

func blankRow(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func playerFromRow(rec []string, index map[string]int, row int, dec rune) (Player, error) {
	text := func(col string) string {
		if i, ok := index[col]; ok {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	num := func(col string) (float64, error) {
		v := text(col)
		f, err := parseNumeric(v, dec)
		if err != nil {
			return 0, &ParseError{Row: row, Column: col, Value: v, Err: err}
		}
		return f, nil
	}

	p := Player{
		Name:       text(ColPlayer),
		Era:        text(ColEra),
		Position:   text(ColPosition),
		BestSeason: text(ColBestSeason),
	}
	var err error
	if p.Goals, err = num(ColGoals); err != nil {
		return Player{}, err
	}
	if p.Assists, err = num(ColAssists); err != nil {
		return Player{}, err
	}
	if p.Nineties, err = num(ColNineties); err != nil {
		return Player{}, err
	}
	if p.Nineties < 0 {
		return Player{}, &ParseError{Row: row, Column: ColNineties, Value: text(ColNineties), Err: ErrNegativeSize}
	}
	return p, nil
}

// GroupByEra splits players by era, ordered by era name.
func (d *Dataset) GroupByEra() []EraGroup {
	byEra := map[string][]Player{}
	for _, p := range d.Players {
		byEra[p.Era] = append(byEra[p.Era], p)
	}
	eras := make([]string, 0, len(byEra))
	for e := range byEra {
		eras = append(eras, e)
	}
	sort.Strings(eras)
	out := make([]EraGroup, len(eras))
	for i, e := range eras {
		out[i] = EraGroup{Era: e, Players: byEra[e]}
	}
	return out
}

// Column returns one numeric field of every player, in row order.
func (d *Dataset) Column(field func(Player) float64) []float64 {
	out := make([]float64, len(d.Players))
	for i, p := range d.Players {
		out[i] = field(p)
	}
	return out
}

// Goals, Assists and Nineties are field selectors for Column.
func Goals(p Player) float64    { return p.Goals }
func Assists(p Player) float64  { return p.Assists }
func Nineties(p Player) float64 { return p.Nineties }
