package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"go.uber.org/zap"
)

const cleanupTimeout = 30 * time.Second

// requireText trims a mandatory text field and rejects it when empty.
func requireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, field)
	}
	return v, nil
}

// optionalText trims a provided text field; provided fields must not be blank.
func optionalText(field string, value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	v, err := requireText(field, *value)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, field)
	}
	return nil
}

func requireActor(actorID string) error {
	if strings.TrimSpace(actorID) == "" {
		return fmt.Errorf("%w: caller identity is missing", domain.ErrUnauthorized)
	}
	return nil
}

// ensureOwner fails with ErrForbidden unless actor owns the resource.
func ensureOwner(owner, actorID, action string) error {
	if owner != actorID {
		return fmt.Errorf("%w: you cannot %s", domain.ErrForbidden, action)
	}
	return nil
}

var knownKinds = []error{
	domain.ErrNotFound,
	domain.ErrForbidden,
	domain.ErrInvalidInput,
	domain.ErrUnauthorized,
	domain.ErrAlreadyExists,
	domain.ErrRepository,
	domain.ErrStorage,
}

func isKnownKind(err error) bool {
	for _, kind := range knownKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// storeErr keeps recognized error kinds and marks anything else as a repository failure.
func storeErr(err error, op string) error {
	if err == nil || isKnownKind(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrRepository, op, err)
}

// readBack re-reads a freshly created record. Any failure, NotFound included,
// means the write cannot be trusted and is reported as a repository error.
func readBack[T any](ctx context.Context, get func(context.Context, string) (*T, error), id, what string) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: created %s has no id", domain.ErrRepository, what)
	}
	v, err := get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: created %s %s could not be read back: %v", domain.ErrRepository, what, id, err)
	}
	return v, nil
}

// detached returns a context that survives cancellation of the request so
// compensating and cleanup calls can still run.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
}

func publishEvent(ctx context.Context, events domain.EventPublisher, log *logger.Logger, subject string, data map[string]interface{}) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, subject, data); err != nil {
		log.Warn("Failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
