package domain

import "errors"

var (
	// ErrNotFound indicates that a requested entity was not found.
	ErrNotFound = errors.New("entity not found")
	// ErrForbidden indicates that the actor does not own the entity.
	ErrForbidden = errors.New("action forbidden")
	// ErrInvalidInput indicates missing or malformed input.
	ErrInvalidInput = errors.New("invalid input data")
	// ErrUnauthorized indicates a missing or invalid caller identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAlreadyExists indicates a unique constraint violation in the store.
	ErrAlreadyExists = errors.New("entity already exists")
	// ErrRepository indicates a generic data persistence error.
	ErrRepository = errors.New("repository error")
	// ErrStorage indicates a blob store failure.
	ErrStorage = errors.New("media storage error")
	// ErrCacheMiss is returned by caches when a key is absent.
	ErrCacheMiss = errors.New("key not found in cache")
)
