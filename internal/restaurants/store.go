// Package restaurants is the restaurant repository: a SQLite-backed store
// holding the imported dataset, queried per lookup with wildcard-aware
// filters.
package restaurants

// #region imports
import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// #endregion

// Wildcard mirrors the extractor's no-preference value; a wildcard filter
// applies no constraint for that field.
const Wildcard = "dontcare"

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS restaurants (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	name            TEXT NOT NULL,
	pricerange      TEXT NOT NULL,
	area            TEXT NOT NULL,
	food            TEXT NOT NULL,
	phone           TEXT NOT NULL DEFAULT '',
	addr            TEXT NOT NULL DEFAULT '',
	postcode        TEXT NOT NULL DEFAULT '',
	food_quality    TEXT NOT NULL DEFAULT '',
	crowdedness     TEXT NOT NULL DEFAULT '',
	length_of_stay  TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_restaurants_slots
ON restaurants(area, pricerange, food);
`

// #endregion

// #region store

// Store manages the restaurant table in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) a SQLite database and runs migrations.
// Use ":memory:" for an ephemeral store.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion

// #region insert

// Insert adds one restaurant row.
func (s *Store) Insert(rec Record) error {
	_, err := s.db.Exec(`
		INSERT INTO restaurants
		(name, pricerange, area, food, phone, addr, postcode,
		 food_quality, crowdedness, length_of_stay)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Name, rec.PriceRange, rec.Area, rec.Food,
		rec.Phone, rec.Addr, rec.Postcode,
		rec.FoodQuality, rec.Crowdedness, rec.LengthOfStay,
	)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// #endregion

// #region lookup

// Lookup returns restaurants matching the given slot values. A Wildcard (or
// empty) filter applies no constraint for that field.
func (s *Store) Lookup(area, price, food string) ([]Record, error) {
	var conds []string
	var args []any
	if area != "" && area != Wildcard {
		conds = append(conds, "area = ?")
		args = append(args, area)
	}
	if price != "" && price != Wildcard {
		conds = append(conds, "pricerange = ?")
		args = append(args, price)
	}
	if food != "" && food != Wildcard {
		conds = append(conds, "food = ?")
		args = append(args, food)
	}

	query := `SELECT name, pricerange, area, food, phone, addr, postcode,
		food_quality, crowdedness, length_of_stay FROM restaurants`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Name, &r.PriceRange, &r.Area, &r.Food,
			&r.Phone, &r.Addr, &r.Postcode,
			&r.FoodQuality, &r.Crowdedness, &r.LengthOfStay); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lookup rows: %w", err)
	}
	return out, nil
}

// #endregion

// #region domains

// DomainValues returns the distinct non-empty values per slot. These seed the
// extractor's keyword tables at startup.
func (s *Store) DomainValues() (area, price, food []string, err error) {
	area, err = s.distinct("area")
	if err != nil {
		return nil, nil, nil, err
	}
	price, err = s.distinct("pricerange")
	if err != nil {
		return nil, nil, nil, err
	}
	food, err = s.distinct("food")
	if err != nil {
		return nil, nil, nil, err
	}
	return area, price, food, nil
}

func (s *Store) distinct(column string) ([]string, error) {
	// column is always one of the fixed slot column names
	rows, err := s.db.Query(
		`SELECT DISTINCT ` + column + ` FROM restaurants WHERE ` + column + ` != '' ORDER BY ` + column)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", column, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// #endregion

// #region count

// Count returns the number of stored restaurants.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM restaurants`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// DB exposes the underlying handle for packages that share the database
// (e.g. the transcript log).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion
