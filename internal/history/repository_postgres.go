package history

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, g *Generation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO generations (
			id,
			restaurant,
			variants,
			status,
			articles,
			dropped,
			unknown_categories,
			documents,
			error,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		g.ID,
		g.Restaurant,
		g.Variants,
		g.Status,
		g.Articles,
		g.Dropped,
		g.Unknown,
		g.Documents,
		g.Error,
		g.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Generation, error) {
	var g Generation

	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant, variants, status, articles, dropped,
		       unknown_categories, documents, error, created_at
		FROM generations
		WHERE id = $1
	`, id).Scan(
		&g.ID,
		&g.Restaurant,
		&g.Variants,
		&g.Status,
		&g.Articles,
		&g.Dropped,
		&g.Unknown,
		&g.Documents,
		&g.Error,
		&g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &g, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status string, reason *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE generations
		SET status = $1,
		    error = $2
		WHERE id = $3
	`, status, reason, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
