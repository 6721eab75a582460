package handler

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type MockVideoService struct{ mock.Mock }

func (m *MockVideoService) PublishVideo(ctx context.Context, actorID string, in usecase.PublishVideoInput) (*domain.Video, error) {
	args := m.Called(ctx, actorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoService) GetVideo(ctx context.Context, actorID, videoID string) (*domain.Video, error) {
	args := m.Called(ctx, actorID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoService) ListOwnVideos(ctx context.Context, actorID string, page domain.Page) ([]*domain.Video, int64, error) {
	args := m.Called(ctx, actorID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Video), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoService) UpdateVideo(ctx context.Context, actorID, videoID string, in usecase.UpdateVideoInput) (*domain.Video, error) {
	args := m.Called(ctx, actorID, videoID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoService) DeleteVideo(ctx context.Context, actorID, videoID string) (*domain.Video, *domain.CleanupReport, error) {
	args := m.Called(ctx, actorID, videoID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Video), args.Get(1).(*domain.CleanupReport), args.Error(2)
}

func (m *MockVideoService) TogglePublishStatus(ctx context.Context, actorID, videoID string) (*domain.Video, error) {
	args := m.Called(ctx, actorID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

type MockCommentService struct{ mock.Mock }

func (m *MockCommentService) ListVideoComments(ctx context.Context, videoID string, page domain.Page) ([]*domain.Comment, int64, error) {
	args := m.Called(ctx, videoID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentService) AddComment(ctx context.Context, actorID, videoID, content string) (*domain.Comment, error) {
	args := m.Called(ctx, actorID, videoID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, actorID, commentID, content string) (*domain.Comment, error) {
	args := m.Called(ctx, actorID, commentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, actorID, commentID string) (*domain.Comment, error) {
	args := m.Called(ctx, actorID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

type MockTweetService struct{ mock.Mock }

func (m *MockTweetService) CreateTweet(ctx context.Context, actorID, content string) (*domain.Tweet, error) {
	args := m.Called(ctx, actorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tweet), args.Error(1)
}

func (m *MockTweetService) ListUserTweets(ctx context.Context, userID string) ([]*domain.Tweet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Tweet), args.Error(1)
}

func (m *MockTweetService) UpdateTweet(ctx context.Context, actorID, tweetID, content string) (*domain.Tweet, error) {
	args := m.Called(ctx, actorID, tweetID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tweet), args.Error(1)
}

func (m *MockTweetService) DeleteTweet(ctx context.Context, actorID, tweetID string) (*domain.Tweet, error) {
	args := m.Called(ctx, actorID, tweetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tweet), args.Error(1)
}

type MockPlaylistService struct{ mock.Mock }

func (m *MockPlaylistService) playlist(args mock.Arguments) (*domain.Playlist, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistService) CreatePlaylist(ctx context.Context, actorID, name, description string) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, actorID, name, description))
}

func (m *MockPlaylistService) ListUserPlaylists(ctx context.Context, userID string) ([]*domain.Playlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistService) GetPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, playlistID))
}

func (m *MockPlaylistService) UpdatePlaylist(ctx context.Context, actorID, playlistID string, update domain.PlaylistUpdate) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, actorID, playlistID, update))
}

func (m *MockPlaylistService) DeletePlaylist(ctx context.Context, actorID, playlistID string) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, actorID, playlistID))
}

func (m *MockPlaylistService) AddVideo(ctx context.Context, actorID, playlistID, videoID string) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, actorID, playlistID, videoID))
}

func (m *MockPlaylistService) RemoveVideo(ctx context.Context, actorID, playlistID, videoID string) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, actorID, playlistID, videoID))
}

type MockLikeService struct{ mock.Mock }

func (m *MockLikeService) toggle(args mock.Arguments) (*domain.LikeToggle, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LikeToggle), args.Error(1)
}

func (m *MockLikeService) ToggleVideoLike(ctx context.Context, actorID, videoID string) (*domain.LikeToggle, error) {
	return m.toggle(m.Called(ctx, actorID, videoID))
}

func (m *MockLikeService) ToggleCommentLike(ctx context.Context, actorID, commentID string) (*domain.LikeToggle, error) {
	return m.toggle(m.Called(ctx, actorID, commentID))
}

func (m *MockLikeService) ToggleTweetLike(ctx context.Context, actorID, tweetID string) (*domain.LikeToggle, error) {
	return m.toggle(m.Called(ctx, actorID, tweetID))
}

func (m *MockLikeService) ListLiked(ctx context.Context, actorID string) ([]*domain.Like, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Like), args.Error(1)
}

type MockSubscriptionService struct{ mock.Mock }

func (m *MockSubscriptionService) ToggleSubscription(ctx context.Context, actorID, channelID string) (*domain.SubscriptionToggle, error) {
	args := m.Called(ctx, actorID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriptionToggle), args.Error(1)
}

func (m *MockSubscriptionService) ListSubscribers(ctx context.Context, channelID string) ([]*domain.Subscription, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]*domain.Subscription, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Subscription), args.Error(1)
}

type MockDashboardService struct{ mock.Mock }

func (m *MockDashboardService) ChannelStats(ctx context.Context, ownerID string) (*domain.ChannelStats, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChannelStats), args.Error(1)
}

func (m *MockDashboardService) ChannelVideos(ctx context.Context, ownerID string) ([]string, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
