package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
)

// relationOps binds the toggle algorithm to one (target, actor) pair.
type relationOps[T any] struct {
	find   func(ctx context.Context) (*T, error)
	create func(ctx context.Context) (*T, error)
	remove func(ctx context.Context, row *T) error
}

// toggleRelation deletes the row for the pair if present and creates it otherwise.
// The store holds a unique index on the pair, so a duplicate key on create means a
// concurrent request already activated the relation; that row is returned.
func toggleRelation[T any](ctx context.Context, ops relationOps[T]) (domain.ToggleAction, *T, error) {
	existing, err := ops.find(ctx)
	switch {
	case err == nil:
		if err := ops.remove(ctx, existing); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return "", nil, err
		}
		return domain.ToggleDeactivated, existing, nil
	case !errors.Is(err, domain.ErrNotFound):
		return "", nil, err
	}

	created, err := ops.create(ctx)
	if err == nil {
		return domain.ToggleActivated, created, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return "", nil, err
	}

	winner, err := ops.find(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, fmt.Errorf("%w: relation changed concurrently", domain.ErrRepository)
	}
	if err != nil {
		return "", nil, err
	}
	return domain.ToggleActivated, winner, nil
}
