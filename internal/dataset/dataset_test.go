package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/legends-cli/internal/dataset"
)

const header = "Player,Goals - Penalty Kicks,Assists,Era,Number of 90s (minimum 4),Position,Best Year in Top 5 Euro League\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestNormalizeColumn(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Player", "player"},
		{"  Goals - Penalty Kicks ", "goals__penalty_kicks"},
		{"Number of 90s (minimum 4)", "number_of_90s_minimum_4"},
		{"Best Year in Top 5 Euro League", "best_year_in_top_5_euro_league"},
		{"Era", "era"},
		{"Année", "année"},
		{"", ""},
	}
	for _, c := range cases {
		if got := dataset.NormalizeColumn(c.in); got != c.want {
			t.Errorf("NormalizeColumn(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLoadCSVLatin1(t *testing.T) {
	body := header +
		"Yaya Tour\xe9,45,38,Twenty-Tens,210.5,Midfielder,2011-12\n" +
		"George Weah,60,20,Nineties,150,Forward,1994-95\n" +
		"\n" +
		"Mohamed Salah,120,55,Twenty-Twenties,240,Forward,2017-18\n"
	p := writeFile(t, "legends.csv", []byte(body))

	ds, err := dataset.Load(p, dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Source != "legends.csv" {
		t.Fatalf("source = %q", ds.Source)
	}
	if len(ds.Players) != 3 || len(ds.Rows) != 3 {
		t.Fatalf("players = %d, rows = %d, want 3", len(ds.Players), len(ds.Rows))
	}
	first := ds.Players[0]
	if first.Name != "Yaya Touré" {
		t.Fatalf("latin-1 name decoded as %q", first.Name)
	}
	if first.Goals != 45 || first.Assists != 38 || first.Nineties != 210.5 {
		t.Fatalf("numbers = %+v", first)
	}
	if first.Era != "Twenty-Tens" || first.Position != "Midfielder" || first.BestSeason != "2011-12" {
		t.Fatalf("text fields = %+v", first)
	}
	if ds.Columns[1] != dataset.ColGoals || ds.Columns[4] != dataset.ColNineties {
		t.Fatalf("columns = %#v", ds.Columns)
	}
}

func TestLoadUTF8WithBOM(t *testing.T) {
	body := "\ufeff" + header + "Sadio Mané,90,40,Twenty-Tens,200,Forward,2019-20\n"
	p := writeFile(t, "utf8.csv", []byte(body))
	opt := dataset.DefaultOptions()
	opt.Encoding = "utf-8"
	ds, err := dataset.Load(p, opt)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Columns[0] != "player" {
		t.Fatalf("BOM not stripped: %q", ds.Columns[0])
	}
	if ds.Players[0].Name != "Sadio Mané" {
		t.Fatalf("name = %q", ds.Players[0].Name)
	}
}

func TestLoadTSV(t *testing.T) {
	body := strings.ReplaceAll(header, ",", "\t") + "Samuel Eto'o\t100\t30\tTwenty-Noughts\t250\tForward\t2005-06\n"
	p := writeFile(t, "legends.tsv", []byte(body))
	ds, err := dataset.Load(p, dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ds.Players[0].Goals != 100 {
		t.Fatalf("goals = %v", ds.Players[0].Goals)
	}
}

func TestLoadMissingColumnsNamesEachColumn(t *testing.T) {
	full := strings.Split(strings.TrimSpace(header), ",")
	required := dataset.DefaultRequired()
	for drop := range full {
		cols := append(append([]string{}, full[:drop]...), full[drop+1:]...)
		row := make([]string, len(cols))
		for i := range row {
			row[i] = "1"
		}
		body := strings.Join(cols, ",") + "\n" + strings.Join(row, ",") + "\n"
		p := writeFile(t, "missing.csv", []byte(body))

		ds, err := dataset.Load(p, dataset.DefaultOptions())
		if ds != nil {
			t.Fatalf("drop %s: expected no dataset", full[drop])
		}
		var mc *dataset.MissingColumnsError
		if !errors.As(err, &mc) {
			t.Fatalf("drop %s: expected MissingColumnsError, got %v", full[drop], err)
		}
		if len(mc.Missing) != 1 || mc.Missing[0] != required[drop] {
			t.Fatalf("drop %s: missing = %#v", full[drop], mc.Missing)
		}
		if !strings.Contains(err.Error(), required[drop]) {
			t.Fatalf("message %q does not name %s", err.Error(), required[drop])
		}
	}
}

func TestLoadMalformedNumber(t *testing.T) {
	body := header + "A,1,2,Nineties,10,FW,1990\nB,x,2,Nineties,10,FW,1990\n"
	p := writeFile(t, "bad.csv", []byte(body))
	_, err := dataset.Load(p, dataset.DefaultOptions())
	var pe *dataset.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Row != 2 || pe.Column != dataset.ColGoals || pe.Value != "x" {
		t.Fatalf("parse error = %+v", pe)
	}
}

func TestLoadNegativeSize(t *testing.T) {
	body := header + "A,1,2,Nineties,-3,FW,1990\n"
	p := writeFile(t, "neg.csv", []byte(body))
	_, err := dataset.Load(p, dataset.DefaultOptions())
	if !errors.Is(err, dataset.ErrNegativeSize) {
		t.Fatalf("expected ErrNegativeSize, got %v", err)
	}
}

func TestLoadEmpty(t *testing.T) {
	for name, body := range map[string]string{
		"header-only.csv": header,
		"blank.csv":       "",
	} {
		p := writeFile(t, name, []byte(body))
		_, err := dataset.Load(p, dataset.DefaultOptions())
		if !errors.Is(err, dataset.ErrEmptyDataset) {
			t.Fatalf("%s: expected ErrEmptyDataset, got %v", name, err)
		}
	}
}

func TestLoadUnreadable(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "nope.csv"), dataset.DefaultOptions())
	if err == nil || !strings.Contains(err.Error(), "open csv") {
		t.Fatalf("expected open error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestLoadUnsupportedEncoding(t *testing.T) {
	p := writeFile(t, "enc.csv", []byte(header+"A,1,2,Nineties,10,FW,1990\n"))
	opt := dataset.DefaultOptions()
	opt.Encoding = "ebcdic"
	if _, err := dataset.Load(p, opt); err == nil {
		t.Fatalf("expected encoding error")
	}
}

func TestGroupByEraKeepsRowOrder(t *testing.T) {
	body := header +
		"A,1,1,Twenty-Tens,10,FW,x\n" +
		"B,2,2,Nineties,10,FW,x\n" +
		"C,3,3,Twenty-Tens,10,FW,x\n"
	ds, err := dataset.Parse("inline.csv", strings.NewReader(body), dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	groups := ds.GroupByEra()
	if len(groups) != 2 || groups[0].Era != "Nineties" || groups[1].Era != "Twenty-Tens" {
		t.Fatalf("groups = %#v", groups)
	}
	if groups[1].Players[0].Name != "A" || groups[1].Players[1].Name != "C" {
		t.Fatalf("row order lost: %#v", groups[1].Players)
	}
	if got := ds.Column(dataset.Goals); len(got) != 3 || got[2] != 3 {
		t.Fatalf("Column(Goals) = %v", got)
	}
}

func TestDuplicatesAreKept(t *testing.T) {
	body := header + "A,1,1,Nineties,10,FW,x\nA,1,1,Nineties,10,FW,x\n"
	ds, err := dataset.Parse("dup.csv", strings.NewReader(body), dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(ds.Players) != 2 {
		t.Fatalf("players = %d, want 2", len(ds.Players))
	}
}

func TestLoadRowWithExtraFields(t *testing.T) {
	body := header + "A,1,2,Nineties,10,FW,1990\nB,1,2,Nineties,10,FW,1990,surplus\n"
	_, err := dataset.Load(writeFile(t, "wide.csv", []byte(body)), dataset.DefaultOptions())
	var fe *dataset.FieldCountError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldCountError, got %v", err)
	}
	if fe.Row != 2 || fe.Got != 8 || fe.Want != 7 {
		t.Fatalf("unexpected error fields: %+v", fe)
	}
}

func TestLoadRowWithTrailingEmptyFields(t *testing.T) {
	body := header + "A,1,2,Nineties,10,FW,1990,,\n"
	ds, err := dataset.Load(writeFile(t, "trailing.csv", []byte(body)), dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("trailing empty cells should be accepted: %v", err)
	}
	if len(ds.Rows[0]) != 7 {
		t.Fatalf("expected row trimmed to header width, got %d cells", len(ds.Rows[0]))
	}
}
