package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"go.uber.org/zap"
)

const (
	videoFolder      = "videos"
	thumbnailFolder  = "thumbnails"
	videoCachePrefix = "video:"
)

// VideoUsecase implements video publishing and owner-guarded video management.
type VideoUsecase struct {
	videos   domain.VideoRepository
	comments domain.CommentRepository
	likes    domain.LikeRepository
	storage  domain.MediaStorage
	cache    domain.CacheRepository
	events   domain.EventPublisher
	cacheTTL time.Duration
	logger   *logger.Logger
}

// NewVideoUsecase creates a new VideoUsecase.
func NewVideoUsecase(
	videos domain.VideoRepository,
	comments domain.CommentRepository,
	likes domain.LikeRepository,
	storage domain.MediaStorage,
	cache domain.CacheRepository,
	events domain.EventPublisher,
	cacheTTL time.Duration,
	log *logger.Logger,
) *VideoUsecase {
	return &VideoUsecase{
		videos:   videos,
		comments: comments,
		likes:    likes,
		storage:  storage,
		cache:    cache,
		events:   events,
		cacheTTL: cacheTTL,
		logger:   log.Named("VideoUsecase"),
	}
}

// PublishVideoInput holds the fields of a new video.
type PublishVideoInput struct {
	Title       string
	Description string
	VideoFile   *domain.MediaFile
	Thumbnail   *domain.MediaFile
}

// UpdateVideoInput holds the fields an owner may change. Nil means unchanged.
type UpdateVideoInput struct {
	Title       *string
	Description *string
	Thumbnail   *domain.MediaFile
}

// PublishVideo uploads both media files and then creates the record.
// Blobs uploaded before a failure are deleted before the error is returned.
func (uc *VideoUsecase) PublishVideo(ctx context.Context, actorID string, in PublishVideoInput) (*domain.Video, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	title, err := requireText("title", in.Title)
	if err != nil {
		return nil, err
	}
	description, err := requireText("description", in.Description)
	if err != nil {
		return nil, err
	}
	if in.VideoFile == nil || in.Thumbnail == nil {
		return nil, fmt.Errorf("%w: video file and thumbnail are required", domain.ErrInvalidInput)
	}

	uc.logger.Info("Publishing video", zap.String("owner", actorID), zap.String("title", title))

	videoAsset, err := uc.storage.Upload(ctx, videoFolder, *in.VideoFile)
	if err != nil {
		uc.logger.Error("Video file upload failed", zap.String("owner", actorID), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to upload video: %w", domain.ErrStorage, err)
	}

	thumbAsset, err := uc.storage.Upload(ctx, thumbnailFolder, *in.Thumbnail)
	if err != nil {
		uc.logger.Error("Thumbnail upload failed", zap.String("owner", actorID), zap.Error(err))
		uc.discardBlobs(ctx, "thumbnail upload failed", videoAsset.PublicID)
		return nil, fmt.Errorf("%w: failed to upload thumbnail: %w", domain.ErrStorage, err)
	}

	video := &domain.Video{
		VideoFile:   *videoAsset,
		Thumbnail:   *thumbAsset,
		Title:       title,
		Description: description,
		IsPublished: true,
		Owner:       actorID,
	}
	if err := uc.videos.Create(ctx, video); err != nil {
		uc.logger.Error("Failed to save video", zap.String("owner", actorID), zap.Error(err))
		uc.discardBlobs(ctx, "video record not created", videoAsset.PublicID, thumbAsset.PublicID)
		return nil, storeErr(err, "create video")
	}

	created, err := readBack(ctx, uc.videos.GetByID, video.ID, "video")
	if err != nil {
		uc.logger.Error("Created video could not be read back", zap.String("video_id", video.ID), zap.Error(err))
		uc.discardVideoRecord(ctx, video.ID)
		uc.discardBlobs(ctx, "video record not readable", videoAsset.PublicID, thumbAsset.PublicID)
		return nil, err
	}

	publishEvent(ctx, uc.events, uc.logger, domain.SubjectVideoPublished, map[string]interface{}{
		"video_id":   created.ID,
		"owner":      created.Owner,
		"title":      created.Title,
		"created_at": created.CreatedAt.Format(time.RFC3339Nano),
	})

	uc.logger.Info("Video published successfully", zap.String("video_id", created.ID))
	return created, nil
}

// GetVideo returns a video. Unpublished videos are only visible to their owner.
func (uc *VideoUsecase) GetVideo(ctx context.Context, actorID, videoID string) (*domain.Video, error) {
	if err := requireID("video id", videoID); err != nil {
		return nil, err
	}

	video, err := uc.loadVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.Owner != actorID {
		return nil, fmt.Errorf("%w: video %s", domain.ErrNotFound, videoID)
	}
	return video, nil
}

// ListOwnVideos returns the caller's videos, newest first.
func (uc *VideoUsecase) ListOwnVideos(ctx context.Context, actorID string, page domain.Page) ([]*domain.Video, int64, error) {
	if err := requireActor(actorID); err != nil {
		return nil, 0, err
	}
	videos, total, err := uc.videos.ListByOwner(ctx, actorID, page.Normalize())
	if err != nil {
		return nil, 0, storeErr(err, "list videos")
	}
	return videos, total, nil
}

// UpdateVideo changes title, description or thumbnail of an owned video.
// A new thumbnail is uploaded first; if the record update fails it is deleted again,
// otherwise the previous thumbnail is deleted best-effort.
func (uc *VideoUsecase) UpdateVideo(ctx context.Context, actorID, videoID string, in UpdateVideoInput) (*domain.Video, error) {
	if err := requireID("video id", videoID); err != nil {
		return nil, err
	}

	current, err := uc.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, storeErr(err, "get video")
	}
	if err := ensureOwner(current.Owner, actorID, "update this video"); err != nil {
		uc.logger.Warn("User forbidden to update video", zap.String("video_id", videoID), zap.String("owner", current.Owner), zap.String("requesting_user", actorID))
		return nil, err
	}

	if in.Title == nil && in.Description == nil && in.Thumbnail == nil {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}
	title, err := optionalText("title", in.Title)
	if err != nil {
		return nil, err
	}
	description, err := optionalText("description", in.Description)
	if err != nil {
		return nil, err
	}

	update := domain.VideoUpdate{Title: title, Description: description}
	var newThumb *domain.MediaAsset
	if in.Thumbnail != nil {
		newThumb, err = uc.storage.Upload(ctx, thumbnailFolder, *in.Thumbnail)
		if err != nil {
			uc.logger.Error("Thumbnail upload failed", zap.String("video_id", videoID), zap.Error(err))
			return nil, fmt.Errorf("%w: failed to upload thumbnail: %w", domain.ErrStorage, err)
		}
		update.Thumbnail = newThumb
	}

	updated, err := uc.videos.Update(ctx, videoID, update)
	if err != nil {
		uc.logger.Error("Failed to update video", zap.String("video_id", videoID), zap.Error(err))
		if newThumb != nil {
			uc.discardBlobs(ctx, "video record not updated", newThumb.PublicID)
		}
		return nil, storeErr(err, "update video")
	}
	if newThumb != nil && current.Thumbnail.PublicID != "" {
		uc.discardBlobs(ctx, "thumbnail replaced", current.Thumbnail.PublicID)
	}

	uc.invalidate(ctx, videoID)
	publishEvent(ctx, uc.events, uc.logger, domain.SubjectVideoUpdated, map[string]interface{}{
		"video_id":   updated.ID,
		"owner":      updated.Owner,
		"updated_at": updated.UpdatedAt.Format(time.RFC3339Nano),
	})

	uc.logger.Info("Video updated successfully", zap.String("video_id", videoID))
	return updated, nil
}

// DeleteVideo removes an owned video record. Media blobs, likes and comments are
// removed afterwards on a best-effort basis; failures land in the report only.
func (uc *VideoUsecase) DeleteVideo(ctx context.Context, actorID, videoID string) (*domain.Video, *domain.CleanupReport, error) {
	if err := requireID("video id", videoID); err != nil {
		return nil, nil, err
	}

	video, err := uc.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, nil, storeErr(err, "get video")
	}
	if err := ensureOwner(video.Owner, actorID, "delete this video"); err != nil {
		uc.logger.Warn("User forbidden to delete video", zap.String("video_id", videoID), zap.String("owner", video.Owner), zap.String("requesting_user", actorID))
		return nil, nil, err
	}

	if err := uc.videos.Delete(ctx, videoID); err != nil {
		uc.logger.Error("Failed to delete video", zap.String("video_id", videoID), zap.Error(err))
		return nil, nil, storeErr(err, "delete video")
	}

	report := uc.cleanupVideo(ctx, video)
	uc.invalidate(ctx, videoID)
	publishEvent(ctx, uc.events, uc.logger, domain.SubjectVideoDeleted, map[string]interface{}{
		"video_id":   videoID,
		"owner":      video.Owner,
		"deleted_at": nowRFC3339(),
	})

	uc.logger.Info("Video deleted successfully", zap.String("video_id", videoID), zap.Strings("cleanup_failed", report.Failed))
	return video, report, nil
}

// TogglePublishStatus flips the published flag of an owned video.
func (uc *VideoUsecase) TogglePublishStatus(ctx context.Context, actorID, videoID string) (*domain.Video, error) {
	if err := requireID("video id", videoID); err != nil {
		return nil, err
	}

	video, err := uc.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, storeErr(err, "get video")
	}
	if err := ensureOwner(video.Owner, actorID, "update this video"); err != nil {
		return nil, err
	}

	published := !video.IsPublished
	updated, err := uc.videos.Update(ctx, videoID, domain.VideoUpdate{IsPublished: &published})
	if err != nil {
		return nil, storeErr(err, "toggle publish status")
	}

	uc.invalidate(ctx, videoID)
	publishEvent(ctx, uc.events, uc.logger, domain.SubjectVideoPublishToggled, map[string]interface{}{
		"video_id":     videoID,
		"is_published": updated.IsPublished,
	})
	return updated, nil
}

func (uc *VideoUsecase) cleanupVideo(ctx context.Context, video *domain.Video) *domain.CleanupReport {
	cctx, cancel := detached(ctx)
	defer cancel()

	report := &domain.CleanupReport{}
	for _, asset := range []struct {
		step string
		id   string
	}{
		{"video file", video.VideoFile.PublicID},
		{"thumbnail", video.Thumbnail.PublicID},
	} {
		if asset.id == "" {
			continue
		}
		if err := uc.storage.Delete(cctx, asset.id); err != nil {
			uc.logger.Warn("Failed to delete media blob", zap.String("video_id", video.ID), zap.String("public_id", asset.id), zap.Error(err))
			report.Add(asset.step)
		}
	}

	if _, err := uc.likes.DeleteByTarget(cctx, domain.LikeTarget{Kind: domain.LikeKindVideo, ID: video.ID}); err != nil {
		uc.logger.Warn("Failed to delete video likes", zap.String("video_id", video.ID), zap.Error(err))
		report.Add("likes")
	}
	if _, err := uc.comments.DeleteByVideoID(cctx, video.ID); err != nil {
		uc.logger.Warn("Failed to delete video comments", zap.String("video_id", video.ID), zap.Error(err))
		report.Add("comments")
	}
	return report
}

// discardBlobs deletes blobs after a failed operation and returns the ids it could not delete.
func (uc *VideoUsecase) discardBlobs(ctx context.Context, reason string, publicIDs ...string) []string {
	cctx, cancel := detached(ctx)
	defer cancel()

	var failed []string
	for _, id := range publicIDs {
		if id == "" {
			continue
		}
		if err := uc.storage.Delete(cctx, id); err != nil {
			uc.logger.Error("Failed to delete media blob", zap.String("reason", reason), zap.String("public_id", id), zap.Error(err))
			failed = append(failed, id)
			continue
		}
		uc.logger.Info("Media blob deleted", zap.String("reason", reason), zap.String("public_id", id))
	}
	return failed
}

func (uc *VideoUsecase) discardVideoRecord(ctx context.Context, videoID string) {
	cctx, cancel := detached(ctx)
	defer cancel()
	if err := uc.videos.Delete(cctx, videoID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		uc.logger.Error("Failed to remove unreadable video record", zap.String("video_id", videoID), zap.Error(err))
	}
}

func (uc *VideoUsecase) loadVideo(ctx context.Context, videoID string) (*domain.Video, error) {
	key := videoCachePrefix + videoID

	if uc.cache != nil {
		raw, err := uc.cache.Get(ctx, key)
		switch {
		case err == nil:
			var cached domain.Video
			if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
				return &cached, nil
			}
			uc.logger.Warn("Dropping undecodable cached video", zap.String("key", key))
		case !errors.Is(err, domain.ErrCacheMiss):
			uc.logger.Warn("Video cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	video, err := uc.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, storeErr(err, "get video")
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(video); err == nil {
			if err := uc.cache.Set(ctx, key, raw, uc.cacheTTL); err != nil {
				uc.logger.Warn("Video cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return video, nil
}

func (uc *VideoUsecase) invalidate(ctx context.Context, videoID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, videoCachePrefix+videoID); err != nil {
		uc.logger.Warn("Video cache invalidation failed", zap.String("video_id", videoID), zap.Error(err))
	}
}
