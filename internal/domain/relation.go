package domain

import "time"

// LikeKind names the kind of entity a like points at.
type LikeKind string

const (
	LikeKindVideo   LikeKind = "video"
	LikeKindComment LikeKind = "comment"
	LikeKindTweet   LikeKind = "tweet"
)

// IsValid checks if the kind is one of the defined constants.
func (k LikeKind) IsValid() bool {
	switch k {
	case LikeKindVideo, LikeKindComment, LikeKindTweet:
		return true
	}
	return false
}

// LikeTarget identifies exactly one liked entity.
type LikeTarget struct {
	Kind LikeKind `json:"kind"`
	ID   string   `json:"id"`
}

// Like is a join row between an actor and a liked entity.
type Like struct {
	ID        string     `json:"id"`
	Target    LikeTarget `json:"target"`
	LikedBy   string     `json:"likedBy"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Subscription is a join row between a channel and a subscriber.
type Subscription struct {
	ID         string    `json:"id"`
	Channel    string    `json:"channel"`
	Subscriber string    `json:"subscriber"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToggleAction reports what a toggle did.
type ToggleAction string

const (
	ToggleActivated   ToggleAction = "activated"
	ToggleDeactivated ToggleAction = "deactivated"
)

// LikeToggle is the outcome of toggling a like.
type LikeToggle struct {
	Action ToggleAction `json:"action"`
	Like   *Like        `json:"like"`
}

// SubscriptionToggle is the outcome of toggling a subscription.
type SubscriptionToggle struct {
	Action       ToggleAction  `json:"action"`
	Subscription *Subscription `json:"subscription"`
}
