package domain

import (
	"context"
	"time"
)

// VideoRepository persists videos. Ids are hex ObjectIDs; a malformed id yields ErrInvalidInput.
type VideoRepository interface {
	Create(ctx context.Context, video *Video) error
	GetByID(ctx context.Context, id string) (*Video, error)
	// Update applies the non-nil fields and returns the stored result.
	Update(ctx context.Context, id string, update VideoUpdate) (*Video, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, owner string, page Page) ([]*Video, int64, error)

	CountByOwner(ctx context.Context, owner string) (int64, error)
	SumViewsByOwner(ctx context.Context, owner string) (int64, error)
	ListIDsByOwner(ctx context.Context, owner string) ([]string, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	UpdateContent(ctx context.Context, id, content string) (*Comment, error)
	Delete(ctx context.Context, id string) error
	ListByVideo(ctx context.Context, videoID string, page Page) ([]*Comment, int64, error)
	DeleteByVideoID(ctx context.Context, videoID string) (int64, error)
}

type TweetRepository interface {
	Create(ctx context.Context, tweet *Tweet) error
	GetByID(ctx context.Context, id string) (*Tweet, error)
	UpdateContent(ctx context.Context, id, content string) (*Tweet, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, owner string) ([]*Tweet, error)
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *Playlist) error
	GetByID(ctx context.Context, id string) (*Playlist, error)
	Update(ctx context.Context, id string, update PlaylistUpdate) (*Playlist, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, owner string) ([]*Playlist, error)
	// AddVideo appends videoID; RemoveVideo pulls every occurrence of it.
	AddVideo(ctx context.Context, id, videoID string) (*Playlist, error)
	RemoveVideo(ctx context.Context, id, videoID string) (*Playlist, error)
}

// LikeRepository persists likes. Create returns ErrAlreadyExists when the
// (target, likedBy) pair is already stored.
type LikeRepository interface {
	Find(ctx context.Context, target LikeTarget, likedBy string) (*Like, error)
	Create(ctx context.Context, like *Like) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, likedBy string) ([]*Like, error)
	CountByVideoIDs(ctx context.Context, videoIDs []string) (int64, error)
	DeleteByTarget(ctx context.Context, target LikeTarget) (int64, error)
}

// SubscriptionRepository persists subscriptions. Create returns ErrAlreadyExists
// when the (channel, subscriber) pair is already stored.
type SubscriptionRepository interface {
	Find(ctx context.Context, channel, subscriber string) (*Subscription, error)
	Create(ctx context.Context, sub *Subscription) error
	Delete(ctx context.Context, id string) error
	ListByChannel(ctx context.Context, channel string) ([]*Subscription, error)
	ListBySubscriber(ctx context.Context, subscriber string) ([]*Subscription, error)
	CountByChannel(ctx context.Context, channel string) (int64, error)
}

// MediaStorage stores and removes media blobs.
type MediaStorage interface {
	Upload(ctx context.Context, folder string, file MediaFile) (*MediaAsset, error)
	Delete(ctx context.Context, publicID string) error
}

// EventPublisher emits domain events. Failures are reported but never fatal to callers.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
}

// CacheRepository is a byte cache. Get returns ErrCacheMiss for absent keys.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
