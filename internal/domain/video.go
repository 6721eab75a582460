package domain

import (
	"io"
	"time"
)

// MediaAsset points at a blob in external storage.
type MediaAsset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// MediaFile is an upload waiting to be stored.
type MediaFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Video is an uploaded video owned by a channel.
type Video struct {
	ID          string     `json:"id"`
	VideoFile   MediaAsset `json:"videoFile"`
	Thumbnail   MediaAsset `json:"thumbnail"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Views       int64      `json:"views"`
	IsPublished bool       `json:"isPublished"`
	Owner       string     `json:"owner"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// VideoUpdate carries the fields an owner may change. Nil means unchanged.
type VideoUpdate struct {
	Title       *string
	Description *string
	Thumbnail   *MediaAsset
	IsPublished *bool
}

// Page is a 1-based pagination window.
type Page struct {
	Page  int
	Limit int
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Normalize clamps page and limit into their allowed ranges.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	} else if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Skip is the number of records before the page.
func (p Page) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// ChannelStats summarizes a channel for its dashboard.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

// CleanupReport lists best-effort cleanup steps that failed after a delete.
type CleanupReport struct {
	Failed []string `json:"failed,omitempty"`
}

// Add records a failed cleanup step.
func (r *CleanupReport) Add(step string) {
	r.Failed = append(r.Failed, step)
}

// OK reports whether every cleanup step succeeded.
func (r *CleanupReport) OK() bool {
	return len(r.Failed) == 0
}
