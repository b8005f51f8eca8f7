package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Column names the loader requires in the roster header. A missing
// column is a precondition failure reported before any rendering.
const (
	ColName    = "Name"
	ColWebinar = "Webinar Name"
	ColDate    = "Webinar Date"
)

// RequiredColumns lists the header columns every roster must carry.
var RequiredColumns = []string{ColName, ColWebinar, ColDate}

// Load reads a CSV roster with a header row. Rows keep the file order.
func Load(path string) ([]Row, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster %s: %w", path, err)
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("roster %s has no header row", path)
	}

	cols := map[string]int{}
	for i, h := range records[0] {
		cols[strings.TrimSpace(h)] = i
	}
	for _, c := range RequiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("roster %s: missing column: %s", path, c)
		}
	}

	get := func(rec []string, name string) string {
		if idx := cols[name]; idx < len(rec) {
			return strings.TrimSpace(rec[idx])
		}
		return ""
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, Row{
			Name:    get(rec, ColName),
			Webinar: get(rec, ColWebinar),
			Date:    get(rec, ColDate),
		})
	}
	return rows, nil
}
