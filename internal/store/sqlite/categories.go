package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PEEKING-web/steam-tracker/internal/domain/categories"
	"github.com/PEEKING-web/steam-tracker/internal/store"
)

const categoryColumns = `id, steam_id, name, games, created_at`

func (s *DB) Categories(ctx context.Context, steamID string) ([]categories.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE steam_id = ? ORDER BY created_at DESC, id ASC`,
		steamID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	out := make([]categories.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *DB) CreateCategory(ctx context.Context, c categories.Category) error {
	games, err := encodeGames(c.Games)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO categories (`+categoryColumns+`) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.SteamID, c.Name, games, formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

func (s *DB) GetCategory(ctx context.Context, steamID, id string) (categories.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ? AND steam_id = ?`, id, steamID)
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return categories.Category{}, store.ErrNotFound
	}
	if err != nil {
		return categories.Category{}, fmt.Errorf("reading category: %w", err)
	}
	return c, nil
}

func (s *DB) UpdateCategory(ctx context.Context, c categories.Category) error {
	games, err := encodeGames(c.Games)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, games = ? WHERE id = ? AND steam_id = ?`,
		c.Name, games, c.ID, c.SteamID,
	)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	return requireAffected(res)
}

func (s *DB) DeleteCategory(ctx context.Context, steamID, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM categories WHERE id = ? AND steam_id = ?`, id, steamID)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return requireAffected(res)
}

func scanCategory(row scanner) (categories.Category, error) {
	var (
		c       categories.Category
		games   string
		created string
	)
	if err := row.Scan(&c.ID, &c.SteamID, &c.Name, &games, &created); err != nil {
		return categories.Category{}, err
	}
	if err := json.Unmarshal([]byte(games), &c.Games); err != nil {
		return categories.Category{}, fmt.Errorf("decoding games: %w", err)
	}
	if c.Games == nil {
		c.Games = []categories.Game{}
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return categories.Category{}, fmt.Errorf("parsing created_at: %w", err)
	}
	c.CreatedAt = t
	return c, nil
}

func encodeGames(games []categories.Game) (string, error) {
	if games == nil {
		games = []categories.Game{}
	}
	b, err := json.Marshal(games)
	if err != nil {
		return "", fmt.Errorf("encoding games: %w", err)
	}
	return string(b), nil
}
