package mongodb

import (
	"time"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mediaDocument struct {
	URL      string `bson:"url"`
	PublicID string `bson:"public_id"`
}

type videoDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	VideoFile   mediaDocument      `bson:"video_file"`
	Thumbnail   mediaDocument      `bson:"thumbnail"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Views       int64              `bson:"views"`
	IsPublished bool               `bson:"is_published"`
	Owner       string             `bson:"owner"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type commentDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	VideoID   string             `bson:"video_id"`
	Owner     string             `bson:"owner"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type tweetDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	Owner     string             `bson:"owner"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type playlistDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Videos      []string           `bson:"videos"`
	Owner       string             `bson:"owner"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// likeDocument sets exactly one of the target fields; the partial unique
// indexes on each of them keep one like per (target, user).
type likeDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	VideoID   string             `bson:"video_id,omitempty"`
	CommentID string             `bson:"comment_id,omitempty"`
	TweetID   string             `bson:"tweet_id,omitempty"`
	LikedBy   string             `bson:"liked_by"`
	CreatedAt time.Time          `bson:"created_at"`
}

type subscriptionDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Channel    string             `bson:"channel"`
	Subscriber string             `bson:"subscriber"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func toMediaDocument(a domain.MediaAsset) mediaDocument {
	return mediaDocument{URL: a.URL, PublicID: a.PublicID}
}

func (d mediaDocument) toDomain() domain.MediaAsset {
	return domain.MediaAsset{URL: d.URL, PublicID: d.PublicID}
}

func toVideoDocument(v *domain.Video) *videoDocument {
	return &videoDocument{
		VideoFile:   toMediaDocument(v.VideoFile),
		Thumbnail:   toMediaDocument(v.Thumbnail),
		Title:       v.Title,
		Description: v.Description,
		Views:       v.Views,
		IsPublished: v.IsPublished,
		Owner:       v.Owner,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func (d *videoDocument) toDomain() *domain.Video {
	return &domain.Video{
		ID:          d.ID.Hex(),
		VideoFile:   d.VideoFile.toDomain(),
		Thumbnail:   d.Thumbnail.toDomain(),
		Title:       d.Title,
		Description: d.Description,
		Views:       d.Views,
		IsPublished: d.IsPublished,
		Owner:       d.Owner,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (d *commentDocument) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:        d.ID.Hex(),
		Content:   d.Content,
		VideoID:   d.VideoID,
		Owner:     d.Owner,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (d *tweetDocument) toDomain() *domain.Tweet {
	return &domain.Tweet{
		ID:        d.ID.Hex(),
		Content:   d.Content,
		Owner:     d.Owner,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (d *playlistDocument) toDomain() *domain.Playlist {
	videos := d.Videos
	if videos == nil {
		videos = []string{}
	}
	return &domain.Playlist{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Videos:      videos,
		Owner:       d.Owner,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// likeTargetField is the document field that stores ids of the given kind.
func likeTargetField(kind domain.LikeKind) string {
	switch kind {
	case domain.LikeKindComment:
		return "comment_id"
	case domain.LikeKindTweet:
		return "tweet_id"
	default:
		return "video_id"
	}
}

func toLikeDocument(l *domain.Like) *likeDocument {
	doc := &likeDocument{LikedBy: l.LikedBy, CreatedAt: l.CreatedAt}
	switch l.Target.Kind {
	case domain.LikeKindVideo:
		doc.VideoID = l.Target.ID
	case domain.LikeKindComment:
		doc.CommentID = l.Target.ID
	case domain.LikeKindTweet:
		doc.TweetID = l.Target.ID
	}
	return doc
}

func (d *likeDocument) toDomain() *domain.Like {
	like := &domain.Like{ID: d.ID.Hex(), LikedBy: d.LikedBy, CreatedAt: d.CreatedAt}
	switch {
	case d.VideoID != "":
		like.Target = domain.LikeTarget{Kind: domain.LikeKindVideo, ID: d.VideoID}
	case d.CommentID != "":
		like.Target = domain.LikeTarget{Kind: domain.LikeKindComment, ID: d.CommentID}
	case d.TweetID != "":
		like.Target = domain.LikeTarget{Kind: domain.LikeKindTweet, ID: d.TweetID}
	}
	return like
}

func (d *subscriptionDocument) toDomain() *domain.Subscription {
	return &domain.Subscription{
		ID:         d.ID.Hex(),
		Channel:    d.Channel,
		Subscriber: d.Subscriber,
		CreatedAt:  d.CreatedAt,
	}
}
