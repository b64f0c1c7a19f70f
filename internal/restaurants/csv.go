package restaurants

// #region imports
import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// #endregion

// #region import

// ImportCSV loads restaurant rows from a headered CSV file into the store.
// Unknown columns are ignored; missing optional columns stay empty.
func (s *Store) ImportCSV(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return s.importReader(f)
}

func (s *Store) importReader(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(strings.ToLower(h))] = i
	}
	for _, required := range []string{"restaurantname", "pricerange", "area", "food"} {
		if _, ok := col[required]; !ok {
			return 0, fmt.Errorf("csv missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.ToLower(strings.TrimSpace(row[i]))
	}

	count := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("read csv row: %w", err)
		}
		rec := Record{
			Name:         strings.TrimSpace(row[col["restaurantname"]]),
			PriceRange:   field(row, "pricerange"),
			Area:         field(row, "area"),
			Food:         field(row, "food"),
			Phone:        strings.TrimSpace(valueAt(row, col, "phone")),
			Addr:         strings.TrimSpace(valueAt(row, col, "addr")),
			Postcode:     strings.TrimSpace(valueAt(row, col, "postcode")),
			FoodQuality:  field(row, "food_quality"),
			Crowdedness:  field(row, "crowdedness"),
			LengthOfStay: field(row, "length_of_stay"),
		}
		if rec.Name == "" {
			continue
		}
		if err := s.Insert(rec); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func valueAt(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// #endregion

// #region augment

// Augment fills empty experiential columns with randomly chosen tiers,
// mirroring the dataset expansion tool. Rows that already carry a value keep
// it. randInt must return a value in [0, n).
func (s *Store) Augment(randInt func(n int) int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT id, food_quality, crowdedness, length_of_stay FROM restaurants`)
	if err != nil {
		return fmt.Errorf("augment query: %w", err)
	}

	type patch struct {
		id                   int64
		quality, crowd, stay string
	}
	var patches []patch
	for rows.Next() {
		var p patch
		if err := rows.Scan(&p.id, &p.quality, &p.crowd, &p.stay); err != nil {
			rows.Close()
			return fmt.Errorf("augment scan: %w", err)
		}
		if p.quality == "" {
			p.quality = FoodQualityTiers[randInt(len(FoodQualityTiers))]
		}
		if p.crowd == "" {
			p.crowd = CrowdednessTiers[randInt(len(CrowdednessTiers))]
		}
		if p.stay == "" {
			p.stay = LengthOfStayTiers[randInt(len(LengthOfStayTiers))]
		}
		patches = append(patches, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("augment rows: %w", err)
	}
	rows.Close()

	for _, p := range patches {
		_, err := tx.Exec(
			`UPDATE restaurants SET food_quality = ?, crowdedness = ?, length_of_stay = ? WHERE id = ?`,
			p.quality, p.crowd, p.stay, p.id,
		)
		if err != nil {
			return fmt.Errorf("augment update: %w", err)
		}
	}
	return tx.Commit()
}

// #endregion

// #region export

// ExportCSV writes the full table, augmentation columns included, to path.
// The target is left untouched when it already exists.
func (s *Store) ExportCSV(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	recs, err := s.Lookup(Wildcard, Wildcard, Wildcard)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"restaurantname", "pricerange", "area", "food",
		"phone", "addr", "postcode", "food_quality", "crowdedness", "length_of_stay"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range recs {
		row := []string{r.Name, r.PriceRange, r.Area, r.Food,
			r.Phone, r.Addr, r.Postcode, r.FoodQuality, r.Crowdedness, r.LengthOfStay}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// #endregion
