package sqlitevec

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/hupe1980/lexfeat/model"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// DefaultTable is the table read when none is configured.
const DefaultTable = "vectors"

// ErrInvalidTable is returned for table names that are not plain identifiers.
var ErrInvalidTable = errors.New("sqlitevec: invalid table name")

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Open opens a SQLite database. Pass a file path or ":memory:".
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }

// OpenReadOnly opens the database file at path without write access.
func OpenReadOnly(path string) (*sql.DB, error) {
	return sql.Open("sqlite", "file:"+path+"?mode=ro")
}

// Options configures Load.
type Options struct {
	// Table defaults to DefaultTable.
	Table string
	// Limit keeps only the first Limit rows. 0 means all.
	Limit int
}

func (o Options) table() (string, error) {
	if o.Table == "" {
		return DefaultTable, nil
	}
	if !identifier.MatchString(o.Table) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTable, o.Table)
	}
	return o.Table, nil
}

// Load reads a vector table into a model. The dimension is taken from the
// first non-empty embedding; every other non-empty embedding must match it.
// Rows with an empty embedding carry no vector and are skipped.
func Load(ctx context.Context, db *sql.DB, opts Options) (*model.VectorModel, error) {
	table, err := opts.table()
	if err != nil {
		return nil, err
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = -1
	}

	rows, err := db.QueryContext(ctx,
		"SELECT token, embedding FROM "+table+" ORDER BY rowid LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("sqlitevec: query %s: %w", table, err)
	}
	defer rows.Close()

	var b *model.VectorBuilder
	for rows.Next() {
		var (
			token string
			blob  []byte
		)
		if err := rows.Scan(&token, &blob); err != nil {
			return nil, fmt.Errorf("sqlitevec: scan %s: %w", table, err)
		}
		vec, err := DecodeEmbedding(blob)
		if err != nil {
			return nil, fmt.Errorf("sqlitevec: token %q: %w", token, err)
		}
		if len(vec) == 0 {
			continue
		}
		if b == nil {
			if b, err = model.NewVectorBuilder(len(vec), max(opts.Limit, 0)); err != nil {
				return nil, err
			}
		}
		if _, err := b.Add(token, vec); err != nil {
			return nil, fmt.Errorf("sqlitevec: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlitevec: read %s: %w", table, err)
	}
	if b == nil {
		return nil, fmt.Errorf("sqlitevec: table %s: %w", table, model.ErrEmptyModel)
	}
	return b.Build()
}

// CreateTable creates the vector table if it does not exist.
func CreateTable(ctx context.Context, db *sql.DB, table string) error {
	table, err := Options{Table: table}.table()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		"CREATE TABLE IF NOT EXISTS "+table+" (token TEXT PRIMARY KEY, embedding BLOB NOT NULL)")
	if err != nil {
		return fmt.Errorf("sqlitevec: create %s: %w", table, err)
	}
	return nil
}

// Entry is one row to insert.
type Entry struct {
	Token  string
	Vector []float32
}

// Insert appends entries to table in one transaction, in order.
func Insert(ctx context.Context, db *sql.DB, table string, entries []Entry) (err error) {
	table, err = Options{Table: table}.table()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlitevec: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO "+table+" (token, embedding) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("sqlitevec: prepare: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		blob := EncodeEmbedding(e.Vector)
		if blob == nil {
			blob = []byte{}
		}
		if _, err = stmt.ExecContext(ctx, e.Token, blob); err != nil {
			return fmt.Errorf("sqlitevec: insert %q: %w", e.Token, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sqlitevec: commit: %w", err)
	}
	return nil
}
