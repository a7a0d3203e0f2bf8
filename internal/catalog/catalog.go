// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog maintains a SQLite index of stored papers keyed by the
// date they were stored. It answers the today/history queries so record
// filenames never have to be parsed back.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound indicates no catalog row matches the identifier.
var ErrNotFound = errors.New("paper not in catalog")

// Record is the catalog row for one stored paper.
type Record struct {
	ID         string
	Title      string
	Authors    []string
	Published  string
	StoredDate string // YYYY-MM-DD, UTC
	File       string // record file name under papers/
	PDFURL     string
	Summarized bool
}

// Catalog wraps the SQLite database.
type Catalog struct {
	db *sql.DB
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var recordCols = []string{"id", "title", "authors", "published", "stored_date", "file", "pdf_url", "summarized"}

// Open opens or creates the catalog database at path and creates the
// schema if it does not exist.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			title TEXT,
			authors TEXT,
			published TEXT,
			stored_date TEXT NOT NULL,
			file TEXT NOT NULL,
			pdf_url TEXT,
			summarized INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_stored_date ON papers(stored_date)`,
	}
	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Put upserts a catalog row.
func (c *Catalog) Put(ctx context.Context, rec Record) error {
	authorsJSON, _ := json.Marshal(rec.Authors)
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO papers (id, title, authors, published, stored_date, file, pdf_url, summarized)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, authors=excluded.authors, published=excluded.published,
			stored_date=excluded.stored_date, file=excluded.file,
			pdf_url=excluded.pdf_url, summarized=excluded.summarized`,
		rec.ID, rec.Title, string(authorsJSON), rec.Published,
		rec.StoredDate, rec.File, rec.PDFURL, boolToInt(rec.Summarized),
	)
	if err != nil {
		return fmt.Errorf("upserting paper %s: %w", rec.ID, err)
	}
	return nil
}

// Get returns the catalog row for id, or ErrNotFound.
func (c *Catalog) Get(ctx context.Context, id string) (Record, error) {
	query, args, err := builder.Select(recordCols...).
		From("papers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return Record{}, fmt.Errorf("building query: %w", err)
	}

	rec, err := scanRecord(c.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("loading paper %s: %w", id, err)
	}
	return rec, nil
}

// ByDate returns the rows stored on one date, in identifier order.
func (c *Catalog) ByDate(ctx context.Context, date string) ([]Record, error) {
	return c.selectRecords(ctx, builder.Select(recordCols...).
		From("papers").
		Where(sq.Eq{"stored_date": date}).
		OrderBy("id"))
}

// Since returns rows with stored_date >= cutoff, newest date first. An
// empty cutoff returns everything.
func (c *Catalog) Since(ctx context.Context, cutoff string) ([]Record, error) {
	q := builder.Select(recordCols...).
		From("papers").
		OrderBy("stored_date DESC", "id")
	if cutoff != "" {
		q = q.Where(sq.GtOrEq{"stored_date": cutoff})
	}
	return c.selectRecords(ctx, q)
}

// Count returns the number of cataloged papers.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT count(*) FROM papers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting papers: %w", err)
	}
	return n, nil
}

// SetSummarized marks a paper's record as carrying a generated summary.
func (c *Catalog) SetSummarized(ctx context.Context, id string) error {
	res, err := c.db.ExecContext(ctx, `UPDATE papers SET summarized = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking %s summarized: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Catalog) selectRecords(ctx context.Context, q sq.SelectBuilder) ([]Record, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning paper row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating paper rows: %w", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var rec Record
	var authorsJSON string
	var summarized int
	err := row.Scan(&rec.ID, &rec.Title, &authorsJSON, &rec.Published,
		&rec.StoredDate, &rec.File, &rec.PDFURL, &summarized)
	if err != nil {
		return Record{}, err
	}
	if authorsJSON != "" {
		json.Unmarshal([]byte(authorsJSON), &rec.Authors)
	}
	rec.Summarized = summarized != 0
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
