package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"relato/internal/domain"
	"relato/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index implements ports.ContentIndex using SQLite
type Index struct {
	db     *sql.DB
	dbPath string
}

// Ensure Index implements ContentIndex
var _ ports.ContentIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the database at path, creating the schema if needed
func (idx *Index) Open(path string) error {
	// Expand ~ in path
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	idx.dbPath = path

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS sections (
			position INTEGER PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			nav TEXT NOT NULL,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			subtitle TEXT NOT NULL,
			calculator INTEGER NOT NULL,
			connector_ref TEXT,
			connector_from TEXT,
			connector_to TEXT
		);
		CREATE TABLE IF NOT EXISTS blocks (
			section_id TEXT NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			ref TEXT NOT NULL,
			text TEXT NOT NULL,
			static INTEGER NOT NULL,
			PRIMARY KEY (section_id, position)
		);
		CREATE TABLE IF NOT EXISTS counters (
			target TEXT PRIMARY KEY,
			section_id TEXT NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			value INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			delay_ms INTEGER NOT NULL,
			grouped INTEGER NOT NULL,
			suffix TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS gallery (
			position INTEGER PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			url TEXT NOT NULL,
			fallback_url TEXT NOT NULL,
			caption_title TEXT,
			caption_description TEXT
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_counters_section ON counters(section_id, position);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// DefaultPath returns the database location for a content file, keyed by a
// hash of its path under the XDG data directory.
func DefaultPath(contentFile string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "relato", hashPath(contentFile)+".db")
}

// hashPath returns a short hash of path
func hashPath(path string) string {
	h := sha256.Sum256([]byte(path))
	return hex.EncodeToString(h[:8])
}

// Stale reports whether the stored page was written by another schema version
// or nothing has been imported yet.
func (idx *Index) Stale(ctx context.Context) bool {
	var version string
	idx.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	return version != schemaVersion
}

// LoadPage reassembles the stored page declaration
func (idx *Index) LoadPage(ctx context.Context) (*domain.Page, error) {
	page := &domain.Page{}

	err := idx.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = 'title'").Scan(&page.Title)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no page imported in %s: %w", idx.dbPath, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if page.Sections, err = idx.loadSections(ctx); err != nil {
		return nil, fmt.Errorf("loading sections: %w", err)
	}
	if page.Gallery, err = idx.loadGallery(ctx); err != nil {
		return nil, fmt.Errorf("loading gallery: %w", err)
	}
	return page, nil
}

func (idx *Index) loadSections(ctx context.Context) ([]domain.SectionDecl, error) {
	rows, err := idx.db.QueryContext(ctx, `
		SELECT id, nav, kind, title, subtitle, calculator, connector_ref, connector_from, connector_to
		FROM sections ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []domain.SectionDecl
	for rows.Next() {
		var s domain.SectionDecl
		var ref, from, to sql.NullString
		if err := rows.Scan(&s.ID, &s.Nav, &s.Kind, &s.Title, &s.Subtitle, &s.Calculator, &ref, &from, &to); err != nil {
			return nil, err
		}
		if ref.Valid {
			s.Connector = &domain.Connector{Ref: ref.String, From: from.String, To: to.String}
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range sections {
		if sections[i].Blocks, err = idx.loadBlocks(ctx, sections[i].ID); err != nil {
			return nil, err
		}
		if sections[i].Counters, err = idx.loadCounters(ctx, sections[i].ID); err != nil {
			return nil, err
		}
	}
	return sections, nil
}

func (idx *Index) loadBlocks(ctx context.Context, sectionID string) ([]domain.Block, error) {
	rows, err := idx.db.QueryContext(ctx, `
		SELECT ref, text, static
		FROM blocks WHERE section_id = ? ORDER BY position
	`, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []domain.Block
	for rows.Next() {
		var b domain.Block
		if err := rows.Scan(&b.Ref, &b.Text, &b.Static); err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

func (idx *Index) loadCounters(ctx context.Context, sectionID string) ([]domain.CounterSpec, error) {
	rows, err := idx.db.QueryContext(ctx, `
		SELECT target, value, duration_ms, delay_ms, grouped, suffix
		FROM counters WHERE section_id = ? ORDER BY position
	`, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counters []domain.CounterSpec
	for rows.Next() {
		var c domain.CounterSpec
		if err := rows.Scan(&c.Target, &c.Value, &c.DurationMs, &c.DelayMs, &c.Grouping, &c.Suffix); err != nil {
			return nil, err
		}
		counters = append(counters, c)
	}
	return counters, rows.Err()
}

func (idx *Index) loadGallery(ctx context.Context) ([]domain.GalleryImage, error) {
	rows, err := idx.db.QueryContext(ctx, `
		SELECT id, url, fallback_url, caption_title, caption_description
		FROM gallery ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.GalleryImage
	for rows.Next() {
		var img domain.GalleryImage
		var title, desc sql.NullString
		if err := rows.Scan(&img.ID, &img.URL, &img.FallbackURL, &title, &desc); err != nil {
			return nil, err
		}
		if title.Valid {
			img.Caption = &domain.Caption{Title: title.String, Description: desc.String}
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
