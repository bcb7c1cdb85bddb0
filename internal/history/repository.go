package history

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("generation not found")

type Repository interface {
	Save(ctx context.Context, g *Generation) error
	Get(ctx context.Context, id string) (*Generation, error)
	UpdateStatus(ctx context.Context, id string, status string, reason *string) error
}
