package visitors

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV writes a series as day,visitors rows so it can be replayed across
// runs instead of re-sampled.
func WriteCSV(path string, s Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"day", "visitors"}); err != nil {
		return err
	}
	for i, v := range s {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(v, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// LoadCSV reads a series written by WriteCSV. The header row is optional and
// the visitors value is taken from the last column, so bare one-column files
// load too.
func LoadCSV(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	out := make(Series, 0, len(records))
	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		field := rec[len(rec)-1]
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			if i == 0 {
				// header row
				continue
			}
			return nil, fmt.Errorf("row %d: parse visitors %q: %w", i+1, field, err)
		}
		out = append(out, v)
	}
	return out, nil
}
