package handler

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/usecase"
)

// The interfaces below list what each handler needs from the usecase layer.

type VideoService interface {
	PublishVideo(ctx context.Context, actorID string, in usecase.PublishVideoInput) (*domain.Video, error)
	GetVideo(ctx context.Context, actorID, videoID string) (*domain.Video, error)
	ListOwnVideos(ctx context.Context, actorID string, page domain.Page) ([]*domain.Video, int64, error)
	UpdateVideo(ctx context.Context, actorID, videoID string, in usecase.UpdateVideoInput) (*domain.Video, error)
	DeleteVideo(ctx context.Context, actorID, videoID string) (*domain.Video, *domain.CleanupReport, error)
	TogglePublishStatus(ctx context.Context, actorID, videoID string) (*domain.Video, error)
}

type CommentService interface {
	ListVideoComments(ctx context.Context, videoID string, page domain.Page) ([]*domain.Comment, int64, error)
	AddComment(ctx context.Context, actorID, videoID, content string) (*domain.Comment, error)
	UpdateComment(ctx context.Context, actorID, commentID, content string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, actorID, commentID string) (*domain.Comment, error)
}

type TweetService interface {
	CreateTweet(ctx context.Context, actorID, content string) (*domain.Tweet, error)
	ListUserTweets(ctx context.Context, userID string) ([]*domain.Tweet, error)
	UpdateTweet(ctx context.Context, actorID, tweetID, content string) (*domain.Tweet, error)
	DeleteTweet(ctx context.Context, actorID, tweetID string) (*domain.Tweet, error)
}

type PlaylistService interface {
	CreatePlaylist(ctx context.Context, actorID, name, description string) (*domain.Playlist, error)
	ListUserPlaylists(ctx context.Context, userID string) ([]*domain.Playlist, error)
	GetPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error)
	UpdatePlaylist(ctx context.Context, actorID, playlistID string, update domain.PlaylistUpdate) (*domain.Playlist, error)
	DeletePlaylist(ctx context.Context, actorID, playlistID string) (*domain.Playlist, error)
	AddVideo(ctx context.Context, actorID, playlistID, videoID string) (*domain.Playlist, error)
	RemoveVideo(ctx context.Context, actorID, playlistID, videoID string) (*domain.Playlist, error)
}

type LikeService interface {
	ToggleVideoLike(ctx context.Context, actorID, videoID string) (*domain.LikeToggle, error)
	ToggleCommentLike(ctx context.Context, actorID, commentID string) (*domain.LikeToggle, error)
	ToggleTweetLike(ctx context.Context, actorID, tweetID string) (*domain.LikeToggle, error)
	ListLiked(ctx context.Context, actorID string) ([]*domain.Like, error)
}

type SubscriptionService interface {
	ToggleSubscription(ctx context.Context, actorID, channelID string) (*domain.SubscriptionToggle, error)
	ListSubscribers(ctx context.Context, channelID string) ([]*domain.Subscription, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]*domain.Subscription, error)
}

type DashboardService interface {
	ChannelStats(ctx context.Context, ownerID string) (*domain.ChannelStats, error)
	ChannelVideos(ctx context.Context, ownerID string) ([]string, error)
}
