package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/glabrego/ilm-cli/internal/content"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS content_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  category TEXT NOT NULL,
  category_pos INTEGER NOT NULL,
  source TEXT NOT NULL,
  source_pos INTEGER NOT NULL,
  item_pos INTEGER NOT NULL,
  kind TEXT NOT NULL,
  title TEXT NOT NULL,
  arabic TEXT NOT NULL DEFAULT '',
  secondary TEXT NOT NULL DEFAULT '',
  body TEXT NOT NULL DEFAULT ''
)`,
		`CREATE INDEX IF NOT EXISTS idx_content_items_order
  ON content_items (category_pos, source_pos, item_pos)`,
		`CREATE TABLE IF NOT EXISTS content_categories (
  label TEXT PRIMARY KEY,
  position INTEGER NOT NULL
)`,
	}
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// CheckWritable fails when the database file cannot be written.
func (r *Repository) CheckWritable(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS write_probe (id INTEGER)`); err != nil {
		return fmt.Errorf("write probe: %w", err)
	}
	return nil
}

// SaveCollections replaces all stored content with collections. Empty
// categories are kept so their position survives a round trip.
func (r *Repository) SaveCollections(ctx context.Context, collections []content.Collection) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM content_items`); err != nil {
		return fmt.Errorf("clear content items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM content_categories`); err != nil {
		return fmt.Errorf("clear content categories: %w", err)
	}

	catStmt, err := tx.PrepareContext(ctx, `INSERT INTO content_categories (label, position) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare category statement: %w", err)
	}
	defer catStmt.Close()

	itemStmt, err := tx.PrepareContext(ctx, `
INSERT INTO content_items (category, category_pos, source, source_pos, item_pos, kind, title, arabic, secondary, body)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return fmt.Errorf("prepare item statement: %w", err)
	}
	defer itemStmt.Close()

	for ci, c := range collections {
		if _, err := catStmt.ExecContext(ctx, c.Label, ci); err != nil {
			return fmt.Errorf("save category %q: %w", c.Label, err)
		}
		for si, group := range c.Groups {
			for ii, item := range group.Items {
				d := content.DisplayOf(item)
				_, err := itemStmt.ExecContext(
					ctx,
					c.Label,
					ci,
					group.Label,
					si,
					ii,
					string(item.Kind()),
					d.Title,
					d.Arabic,
					d.Secondary,
					d.Body,
				)
				if err != nil {
					return fmt.Errorf("save %s item %q: %w", c.Label, d.Title, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ListCollections returns stored content in the order it was saved. Items
// come back untagged; the aggregator attaches category and source labels.
func (r *Repository) ListCollections(ctx context.Context) ([]content.Collection, error) {
	collections, err := r.listCategories(ctx)
	if err != nil {
		return nil, err
	}
	byLabel := make(map[string]int, len(collections))
	for i, c := range collections {
		byLabel[c.Label] = i
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT category, source, source_pos, kind, title, arabic, secondary, body
FROM content_items
ORDER BY category_pos, source_pos, item_pos
`)
	if err != nil {
		return nil, fmt.Errorf("query content items: %w", err)
	}
	defer rows.Close()

	lastSource := make(map[string]int)
	for rows.Next() {
		var (
			category, source, kind string
			sourcePos              int
			d                      content.Display
		)
		if err := rows.Scan(&category, &source, &sourcePos, &kind, &d.Title, &d.Arabic, &d.Secondary, &d.Body); err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		item, err := content.FromDisplay(content.Kind(kind), content.Labels{}, d)
		if err != nil {
			return nil, fmt.Errorf("load %s item %q: %w", category, d.Title, err)
		}

		ci, ok := byLabel[category]
		if !ok {
			ci = len(collections)
			byLabel[category] = ci
			collections = append(collections, content.Collection{Label: category})
		}
		c := &collections[ci]
		if pos, seen := lastSource[category]; !seen || pos != sourcePos {
			c.Groups = append(c.Groups, content.SourceGroup{Label: source})
			lastSource[category] = sourcePos
		}
		g := &c.Groups[len(c.Groups)-1]
		g.Items = append(g.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return collections, nil
}

func (r *Repository) CountItems(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM content_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count content items: %w", err)
	}
	return n, nil
}

func (r *Repository) listCategories(ctx context.Context) ([]content.Collection, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT label FROM content_categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []content.Collection
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, content.Collection{Label: label})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}
