package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/PEEKING-web/steam-tracker/internal/domain/sessions"
	"github.com/PEEKING-web/steam-tracker/internal/store"
)

// Timestamps are stored as fixed-width UTC text so string order is time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const sessionColumns = `id, steam_id, appid, game_name, start_time, end_time, duration_minutes, mood, notes`

func (s *DB) CreateSession(ctx context.Context, ps sessions.PlaySession) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (`+sessionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ps.ID, ps.SteamID, ps.AppID, ps.GameName,
		formatTime(ps.StartTime), nullTime(ps.EndTime), nullInt(ps.DurationMinutes),
		string(ps.Mood), ps.Notes,
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (s *DB) GetSession(ctx context.Context, steamID, id string) (sessions.PlaySession, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ? AND steam_id = ?`, id, steamID)
	ps, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return sessions.PlaySession{}, store.ErrNotFound
	}
	if err != nil {
		return sessions.PlaySession{}, fmt.Errorf("reading session: %w", err)
	}
	return ps, nil
}

func (s *DB) UpdateSession(ctx context.Context, ps sessions.PlaySession) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET end_time = ?, duration_minutes = ?, mood = ?, notes = ?
		 WHERE id = ? AND steam_id = ?`,
		nullTime(ps.EndTime), nullInt(ps.DurationMinutes), string(ps.Mood), ps.Notes,
		ps.ID, ps.SteamID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	return requireAffected(res)
}

func (s *DB) SessionsByUser(ctx context.Context, steamID string) ([]sessions.PlaySession, error) {
	return s.querySessions(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE steam_id = ? ORDER BY start_time DESC, id ASC`,
		steamID,
	)
}

func (s *DB) SessionsByGame(ctx context.Context, steamID string, appID int) ([]sessions.PlaySession, error) {
	return s.querySessions(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE steam_id = ? AND appid = ? ORDER BY start_time DESC, id ASC`,
		steamID, appID,
	)
}

func (s *DB) querySessions(ctx context.Context, query string, args ...any) ([]sessions.PlaySession, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	out := make([]sessions.PlaySession, 0)
	for rows.Next() {
		ps, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		out = append(out, ps)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (sessions.PlaySession, error) {
	var (
		ps       sessions.PlaySession
		start    string
		end      sql.NullString
		duration sql.NullInt64
		mood     string
	)
	if err := row.Scan(&ps.ID, &ps.SteamID, &ps.AppID, &ps.GameName, &start, &end, &duration, &mood, &ps.Notes); err != nil {
		return sessions.PlaySession{}, err
	}

	var err error
	if ps.StartTime, err = time.Parse(timeLayout, start); err != nil {
		return sessions.PlaySession{}, fmt.Errorf("parsing start time: %w", err)
	}
	if end.Valid {
		t, err := time.Parse(timeLayout, end.String)
		if err != nil {
			return sessions.PlaySession{}, fmt.Errorf("parsing end time: %w", err)
		}
		ps.EndTime = &t
	}
	if duration.Valid {
		d := int(duration.Int64)
		ps.DurationMinutes = &d
	}
	ps.Mood = sessions.Mood(mood)
	return ps, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
