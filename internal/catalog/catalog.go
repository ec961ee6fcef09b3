// Package catalog stores named sky objects in a SQLite database and
// resolves them into equatorial coordinates.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/litescript/starward/internal/astro"
)

// Object is one catalog entry. Coordinates are J2000.
type Object struct {
	Name        string
	Designation string // catalog designation, e.g. "M31", "HR 2491"
	Kind        string // star, galaxy, nebula, open-cluster, globular-cluster, planetary-nebula
	RADeg       float64
	DecDeg      float64
	Magnitude   float64
}

// Equatorial returns the object's position as a frame value.
func (o Object) Equatorial() astro.Equatorial {
	return astro.Equatorial{
		RA:  astro.Degrees(o.RADeg).Normalize(),
		Dec: astro.Degrees(o.DecDeg),
	}
}

// Provider adapts the fixed catalog position to the event finder.
func (o Object) Provider() astro.PositionFunc {
	return astro.FixedPosition(o.Equatorial())
}

// ErrNotFound reports a lookup that matched nothing.
var ErrNotFound = errors.New("object not found in catalog")

// Store wraps an open catalog database. Create one with Open and close it
// when done; the handle is safe for concurrent readers.
type Store struct {
	db *sql.DB
}

// DefaultPath returns ~/.starward/catalog.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".starward", "catalog.db"), nil
}

// Open opens the catalog at path, creating and seeding it on first use.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	_, _ = db.Exec("PRAGMA journal_mode=WAL")
	_, _ = db.Exec("PRAGMA synchronous=NORMAL")

	s := &Store{db: db}
	if err := s.provision(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// OpenMemory opens an in-memory catalog, used by tests.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	s := &Store{db: db}
	if err := s.provision(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) provision() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS objects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			designation TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL,
			ra_deg REAL NOT NULL,
			dec_deg REAL NOT NULL,
			magnitude REAL NOT NULL
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_objects_name ON objects(name);
		CREATE INDEX IF NOT EXISTS idx_objects_designation ON objects(designation);
	`)
	if err != nil {
		return fmt.Errorf("creating objects table: %w", err)
	}

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM objects").Scan(&n); err != nil {
		return fmt.Errorf("counting objects: %w", err)
	}
	if n > 0 {
		return nil
	}
	return s.seed()
}

func (s *Store) seed() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	stmt, err := tx.Prepare(
		"INSERT INTO objects (name, designation, kind, ra_deg, dec_deg, magnitude) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("seeding catalog: %w", err)
	}
	defer stmt.Close()

	for _, o := range seedObjects {
		if _, err := stmt.Exec(o.Name, o.Designation, o.Kind, o.RADeg, o.DecDeg, o.Magnitude); err != nil {
			tx.Rollback()
			return fmt.Errorf("seeding %s: %w", o.Name, err)
		}
	}
	return tx.Commit()
}

func scanObject(row interface{ Scan(...any) error }) (Object, error) {
	var o Object
	err := row.Scan(&o.Name, &o.Designation, &o.Kind, &o.RADeg, &o.DecDeg, &o.Magnitude)
	return o, err
}

const selectCols = "SELECT name, designation, kind, ra_deg, dec_deg, magnitude FROM objects"

// Lookup resolves an object by common name or designation,
// case-insensitively. Returns ErrNotFound when nothing matches.
func (s *Store) Lookup(name string) (Object, error) {
	q := strings.TrimSpace(name)
	row := s.db.QueryRow(
		selectCols+" WHERE name = ? COLLATE NOCASE OR designation = ? COLLATE NOCASE", q, q)
	o, err := scanObject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Object{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Object{}, fmt.Errorf("looking up %q: %w", name, err)
	}
	return o, nil
}

// Search returns objects whose name or designation contains the query,
// ordered by brightness.
func (s *Store) Search(query string, limit int) ([]Object, error) {
	if limit <= 0 {
		limit = 20
	}
	pat := "%" + strings.TrimSpace(query) + "%"
	rows, err := s.db.Query(
		selectCols+" WHERE name LIKE ? OR designation LIKE ? ORDER BY magnitude LIMIT ?",
		pat, pat, limit)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}
	defer rows.Close()
	return collect(rows)
}

// Brightest returns the brightest objects of the given kind, or of any
// kind when kind is empty.
func (s *Store) Brightest(kind string, limit int) ([]Object, error) {
	if limit <= 0 {
		limit = 10
	}
	var (
		rows *sql.Rows
		err  error
	)
	if kind == "" {
		rows, err = s.db.Query(selectCols+" ORDER BY magnitude LIMIT ?", limit)
	} else {
		rows, err = s.db.Query(selectCols+" WHERE kind = ? ORDER BY magnitude LIMIT ?", kind, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()
	return collect(rows)
}

// Add inserts or replaces a user-defined object.
func (s *Store) Add(o Object) error {
	if err := astro.CheckDeclination("declination", astro.Degrees(o.DecDeg)); err != nil {
		return err
	}
	_, err := s.db.Exec(`
		INSERT INTO objects (name, designation, kind, ra_deg, dec_deg, magnitude)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			designation = excluded.designation,
			kind = excluded.kind,
			ra_deg = excluded.ra_deg,
			dec_deg = excluded.dec_deg,
			magnitude = excluded.magnitude`,
		o.Name, o.Designation, o.Kind, o.RADeg, o.DecDeg, o.Magnitude)
	if err != nil {
		return fmt.Errorf("adding %s: %w", o.Name, err)
	}
	return nil
}

// Count reports the number of cataloged objects.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM objects").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting objects: %w", err)
	}
	return n, nil
}

func collect(rows *sql.Rows) ([]Object, error) {
	var out []Object
	for rows.Next() {
		o, err := scanObject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning object: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
