package usecase

import (
	"context"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"go.uber.org/zap"
)

// PlaylistUsecase manages playlists and their video membership.
type PlaylistUsecase struct {
	playlists domain.PlaylistRepository
	videos    domain.VideoRepository
	events    domain.EventPublisher
	logger    *logger.Logger
}

func NewPlaylistUsecase(playlists domain.PlaylistRepository, videos domain.VideoRepository, events domain.EventPublisher, log *logger.Logger) *PlaylistUsecase {
	return &PlaylistUsecase{
		playlists: playlists,
		videos:    videos,
		events:    events,
		logger:    log.Named("PlaylistUsecase"),
	}
}

func (uc *PlaylistUsecase) CreatePlaylist(ctx context.Context, actorID, name, description string) (*domain.Playlist, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	n, err := requireText("name", name)
	if err != nil {
		return nil, err
	}
	d, err := requireText("description", description)
	if err != nil {
		return nil, err
	}

	playlist := &domain.Playlist{Name: n, Description: d, Videos: []string{}, Owner: actorID}
	if err := uc.playlists.Create(ctx, playlist); err != nil {
		uc.logger.Error("Failed to save playlist", zap.String("owner", actorID), zap.Error(err))
		return nil, storeErr(err, "create playlist")
	}
	created, err := readBack(ctx, uc.playlists.GetByID, playlist.ID, "playlist")
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, uc.events, uc.logger, domain.SubjectPlaylistCreated, map[string]interface{}{
		"playlist_id": created.ID,
		"owner":       created.Owner,
	})
	return created, nil
}

func (uc *PlaylistUsecase) ListUserPlaylists(ctx context.Context, userID string) ([]*domain.Playlist, error) {
	if err := requireID("user id", userID); err != nil {
		return nil, err
	}
	playlists, err := uc.playlists.ListByOwner(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "list playlists")
	}
	return playlists, nil
}

func (uc *PlaylistUsecase) GetPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	if err := requireID("playlist id", playlistID); err != nil {
		return nil, err
	}
	playlist, err := uc.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, storeErr(err, "get playlist")
	}
	return playlist, nil
}

func (uc *PlaylistUsecase) UpdatePlaylist(ctx context.Context, actorID, playlistID string, update domain.PlaylistUpdate) (*domain.Playlist, error) {
	if err := requireID("playlist id", playlistID); err != nil {
		return nil, err
	}
	if _, err := uc.ownedPlaylist(ctx, actorID, playlistID, "update this playlist"); err != nil {
		return nil, err
	}

	if update.Name == nil && update.Description == nil {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}
	name, err := optionalText("name", update.Name)
	if err != nil {
		return nil, err
	}
	description, err := optionalText("description", update.Description)
	if err != nil {
		return nil, err
	}

	updated, err := uc.playlists.Update(ctx, playlistID, domain.PlaylistUpdate{Name: name, Description: description})
	if err != nil {
		return nil, storeErr(err, "update playlist")
	}
	return updated, nil
}

func (uc *PlaylistUsecase) DeletePlaylist(ctx context.Context, actorID, playlistID string) (*domain.Playlist, error) {
	if err := requireID("playlist id", playlistID); err != nil {
		return nil, err
	}
	playlist, err := uc.ownedPlaylist(ctx, actorID, playlistID, "delete this playlist")
	if err != nil {
		return nil, err
	}

	if err := uc.playlists.Delete(ctx, playlistID); err != nil {
		return nil, storeErr(err, "delete playlist")
	}

	publishEvent(ctx, uc.events, uc.logger, domain.SubjectPlaylistDeleted, map[string]interface{}{
		"playlist_id": playlistID,
		"owner":       playlist.Owner,
		"deleted_at":  nowRFC3339(),
	})
	return playlist, nil
}

// AddVideo appends an existing video to an owned playlist.
func (uc *PlaylistUsecase) AddVideo(ctx context.Context, actorID, playlistID, videoID string) (*domain.Playlist, error) {
	if err := uc.checkMembershipChange(ctx, actorID, playlistID, videoID, "add videos to this playlist"); err != nil {
		return nil, err
	}
	playlist, err := uc.playlists.AddVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, storeErr(err, "add video to playlist")
	}
	return playlist, nil
}

// RemoveVideo removes every occurrence of a video from an owned playlist.
func (uc *PlaylistUsecase) RemoveVideo(ctx context.Context, actorID, playlistID, videoID string) (*domain.Playlist, error) {
	if err := uc.checkMembershipChange(ctx, actorID, playlistID, videoID, "remove videos from this playlist"); err != nil {
		return nil, err
	}
	playlist, err := uc.playlists.RemoveVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, storeErr(err, "remove video from playlist")
	}
	return playlist, nil
}

func (uc *PlaylistUsecase) checkMembershipChange(ctx context.Context, actorID, playlistID, videoID, action string) error {
	if err := requireID("playlist id", playlistID); err != nil {
		return err
	}
	if _, err := uc.ownedPlaylist(ctx, actorID, playlistID, action); err != nil {
		return err
	}

	if err := requireID("video id", videoID); err != nil {
		return err
	}
	if _, err := uc.videos.GetByID(ctx, videoID); err != nil {
		return storeErr(err, "get video")
	}
	return nil
}

func (uc *PlaylistUsecase) ownedPlaylist(ctx context.Context, actorID, playlistID, action string) (*domain.Playlist, error) {
	playlist, err := uc.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, storeErr(err, "get playlist")
	}
	if err := ensureOwner(playlist.Owner, actorID, action); err != nil {
		uc.logger.Warn("User forbidden to change playlist", zap.String("playlist_id", playlistID), zap.String("requesting_user", actorID))
		return nil, err
	}
	return playlist, nil
}
