// Package sqlite provides a SQLite-backed character store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/roster-cli/internal/adapters/repo/sqlite/migrations"
	"github.com/bnema/roster-cli/internal/domain"
	"github.com/bnema/roster-cli/internal/ports"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists characters in SQLite. UNIQUE(owner, name) backs the
// duplicate-name rule at the storage level.
type Store struct {
	sqlDB *sql.DB
}

var _ ports.CharacterRepository = (*Store)(nil)

// Open opens the database at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", filepath.Clean(path))
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// Single writer; WAL still allows concurrent readers.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Create(ctx context.Context, owner domain.Owner, record domain.CandidateRecord) (domain.Character, error) {
	if err := ctx.Err(); err != nil {
		return domain.Character{}, err
	}

	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO characters (owner, name, class, position, created_at) VALUES (?, ?, ?, ?, ?)`,
		string(owner),
		record.Name,
		string(record.Class),
		string(record.Role),
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Character{}, domain.ErrDuplicateName
		}
		return domain.Character{}, fmt.Errorf("insert character: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Character{}, fmt.Errorf("read character id: %w", err)
	}

	return domain.Character{
		ID:    domain.CharacterID(id),
		Owner: owner,
		Name:  record.Name,
		Class: record.Class,
		Role:  record.Role,
	}, nil
}

func (s *Store) CountByRole(ctx context.Context, owner domain.Owner, role domain.Role) (int, error) {
	var count int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM characters WHERE owner = ? AND position = ?`,
		string(owner), string(role),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count characters: %w", err)
	}
	return count, nil
}

func (s *Store) ExistsByName(ctx context.Context, owner domain.Owner, name string) (bool, error) {
	var found int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT 1 FROM characters WHERE owner = ? AND name = ?`,
		string(owner), name,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup character name: %w", err)
	}
	return true, nil
}

func (s *Store) ListByOwner(ctx context.Context, owner domain.Owner) ([]domain.Character, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, owner, name, class, position FROM characters WHERE owner = ? ORDER BY id ASC`,
		string(owner),
	)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	var characters []domain.Character
	for rows.Next() {
		var c domain.Character
		var id int64
		var ownerCol, class, position string
		if err := rows.Scan(&id, &ownerCol, &c.Name, &class, &position); err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}
		c.ID = domain.CharacterID(id)
		c.Owner = domain.Owner(ownerCol)
		c.Class = domain.Class(class)
		c.Role = domain.Role(position)
		characters = append(characters, c)
	}
	return characters, rows.Err()
}

func (s *Store) Delete(ctx context.Context, owner domain.Owner, id domain.CharacterID) (bool, error) {
	res, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM characters WHERE id = ? AND owner = ?`,
		int64(id), string(owner),
	)
	if err != nil {
		return false, fmt.Errorf("delete character: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("check rows affected: %w", err)
	}
	return n > 0, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
