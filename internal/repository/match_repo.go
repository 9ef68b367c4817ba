package repository

import (
	"context"

	"kittens_server/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MatchRepository struct {
	db *pgxpool.Pool
}

// NewMatchRepository returns nil when persistence is disabled.
func NewMatchRepository(db *pgxpool.Pool) *MatchRepository {
	if db == nil {
		return nil
	}
	return &MatchRepository{db: db}
}

// Create сохраняет запись завершённого матча
func (r *MatchRepository) Create(ctx context.Context, m *domain.Match) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO matches (room_code, player_count, players, winner_name, turn_count)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		m.RoomCode,
		m.PlayerCount,
		m.Players,
		m.WinnerName,
		m.TurnCount,
	).Scan(&m.ID, &m.CreatedAt)
}

// Recent возвращает последние завершённые матчи
func (r *MatchRepository) Recent(ctx context.Context, limit int) ([]*domain.Match, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, room_code, player_count, players, winner_name, turn_count, created_at
		 FROM matches
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Match
	for rows.Next() {
		m := &domain.Match{}
		if err := rows.Scan(&m.ID, &m.RoomCode, &m.PlayerCount, &m.Players, &m.WinnerName, &m.TurnCount, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
