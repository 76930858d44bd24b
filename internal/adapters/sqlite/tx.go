package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"relato/internal/domain"
)

// importTx writes one page declaration inside a transaction
type importTx struct {
	tx *sql.Tx
}

// Import validates page and replaces the stored declaration atomically
func (idx *Index) Import(ctx context.Context, page *domain.Page) (err error) {
	if err := page.Validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	sqlTx, err := idx.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	t := &importTx{tx: sqlTx}
	defer func() {
		if err != nil {
			t.tx.Rollback()
		}
	}()

	if err = t.clear(ctx); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}
	for i, s := range page.Sections {
		if err = t.insertSection(ctx, i, s); err != nil {
			return fmt.Errorf("section %s: %w", s.ID, err)
		}
	}
	for i, img := range page.Gallery {
		if err = t.insertImage(ctx, i, img); err != nil {
			return fmt.Errorf("gallery image %s: %w", img.ID, err)
		}
	}
	if err = t.setMeta(ctx, "schema_version", schemaVersion); err != nil {
		return err
	}
	if err = t.setMeta(ctx, "title", page.Title); err != nil {
		return err
	}
	return t.tx.Commit()
}

// clear removes every stored row
func (t *importTx) clear(ctx context.Context) error {
	_, err := t.tx.ExecContext(ctx, `
		DELETE FROM blocks;
		DELETE FROM counters;
		DELETE FROM sections;
		DELETE FROM gallery;
		DELETE FROM meta;
	`)
	return err
}

// insertSection writes a section with its blocks and counters
func (t *importTx) insertSection(ctx context.Context, pos int, s domain.SectionDecl) error {
	var ref, from, to sql.NullString
	if s.Connector != nil {
		ref = sql.NullString{String: s.Connector.Ref, Valid: true}
		from = sql.NullString{String: s.Connector.From, Valid: true}
		to = sql.NullString{String: s.Connector.To, Valid: true}
	}
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO sections (position, id, nav, kind, title, subtitle, calculator, connector_ref, connector_from, connector_to)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, pos, s.ID, s.Nav, s.Kind, s.Title, s.Subtitle, s.Calculator, ref, from, to)
	if err != nil {
		return err
	}

	for i, b := range s.Blocks {
		if _, err := t.tx.ExecContext(ctx, `
			INSERT INTO blocks (section_id, position, ref, text, static)
			VALUES (?, ?, ?, ?, ?)
		`, s.ID, i, b.Ref, b.Text, b.Static); err != nil {
			return err
		}
	}

	for i, c := range s.Counters {
		if _, err := t.tx.ExecContext(ctx, `
			INSERT INTO counters (target, section_id, position, value, duration_ms, delay_ms, grouped, suffix)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, c.Target, s.ID, i, c.Value, c.DurationMs, c.DelayMs, c.Grouping, c.Suffix); err != nil {
			return err
		}
	}
	return nil
}

// insertImage writes a gallery entry
func (t *importTx) insertImage(ctx context.Context, pos int, img domain.GalleryImage) error {
	var title, desc sql.NullString
	if img.Caption != nil {
		title = sql.NullString{String: img.Caption.Title, Valid: true}
		desc = sql.NullString{String: img.Caption.Description, Valid: true}
	}
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO gallery (position, id, url, fallback_url, caption_title, caption_description)
		VALUES (?, ?, ?, ?, ?, ?)
	`, pos, img.ID, img.URL, img.FallbackURL, title, desc)
	return err
}

// setMeta upserts a metadata entry
func (t *importTx) setMeta(ctx context.Context, key, value string) error {
	_, err := t.tx.ExecContext(ctx, `INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}
