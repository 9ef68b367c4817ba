package handlers

import (
	"kittens_server/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB        *pgxpool.Pool
	MatchRepo *repository.MatchRepository
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		DB:        db,
		MatchRepo: repository.NewMatchRepository(db),
	}
}
