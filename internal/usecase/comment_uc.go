package usecase

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"go.uber.org/zap"
)

// CommentUsecase manages comments on videos.
type CommentUsecase struct {
	comments domain.CommentRepository
	videos   domain.VideoRepository
	likes    domain.LikeRepository
	events   domain.EventPublisher
	logger   *logger.Logger
}

func NewCommentUsecase(comments domain.CommentRepository, videos domain.VideoRepository, likes domain.LikeRepository, events domain.EventPublisher, log *logger.Logger) *CommentUsecase {
	return &CommentUsecase{
		comments: comments,
		videos:   videos,
		likes:    likes,
		events:   events,
		logger:   log.Named("CommentUsecase"),
	}
}

// ListVideoComments returns a page of comments on an existing video.
func (uc *CommentUsecase) ListVideoComments(ctx context.Context, videoID string, page domain.Page) ([]*domain.Comment, int64, error) {
	if err := requireID("video id", videoID); err != nil {
		return nil, 0, err
	}
	if _, err := uc.videos.GetByID(ctx, videoID); err != nil {
		return nil, 0, storeErr(err, "get video")
	}
	comments, total, err := uc.comments.ListByVideo(ctx, videoID, page.Normalize())
	if err != nil {
		return nil, 0, storeErr(err, "list comments")
	}
	return comments, total, nil
}

func (uc *CommentUsecase) AddComment(ctx context.Context, actorID, videoID, content string) (*domain.Comment, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	if err := requireID("video id", videoID); err != nil {
		return nil, err
	}
	text, err := requireText("content", content)
	if err != nil {
		return nil, err
	}
	if _, err := uc.videos.GetByID(ctx, videoID); err != nil {
		return nil, storeErr(err, "get video")
	}

	comment := &domain.Comment{Content: text, VideoID: videoID, Owner: actorID}
	if err := uc.comments.Create(ctx, comment); err != nil {
		uc.logger.Error("Failed to save comment", zap.String("video_id", videoID), zap.Error(err))
		return nil, storeErr(err, "create comment")
	}
	created, err := readBack(ctx, uc.comments.GetByID, comment.ID, "comment")
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, uc.events, uc.logger, domain.SubjectCommentCreated, map[string]interface{}{
		"comment_id": created.ID,
		"video_id":   created.VideoID,
		"owner":      created.Owner,
	})
	return created, nil
}

func (uc *CommentUsecase) UpdateComment(ctx context.Context, actorID, commentID, content string) (*domain.Comment, error) {
	if err := requireID("comment id", commentID); err != nil {
		return nil, err
	}

	comment, err := uc.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, storeErr(err, "get comment")
	}
	if err := ensureOwner(comment.Owner, actorID, "update this comment"); err != nil {
		uc.logger.Warn("User forbidden to update comment", zap.String("comment_id", commentID), zap.String("requesting_user", actorID))
		return nil, err
	}

	text, err := requireText("content", content)
	if err != nil {
		return nil, err
	}

	updated, err := uc.comments.UpdateContent(ctx, commentID, text)
	if err != nil {
		return nil, storeErr(err, "update comment")
	}
	return updated, nil
}

// DeleteComment removes an owned comment; its likes are removed best-effort.
func (uc *CommentUsecase) DeleteComment(ctx context.Context, actorID, commentID string) (*domain.Comment, error) {
	if err := requireID("comment id", commentID); err != nil {
		return nil, err
	}

	comment, err := uc.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, storeErr(err, "get comment")
	}
	if err := ensureOwner(comment.Owner, actorID, "delete this comment"); err != nil {
		uc.logger.Warn("User forbidden to delete comment", zap.String("comment_id", commentID), zap.String("requesting_user", actorID))
		return nil, err
	}

	if err := uc.comments.Delete(ctx, commentID); err != nil {
		return nil, storeErr(err, "delete comment")
	}

	cctx, cancel := detached(ctx)
	defer cancel()
	if _, err := uc.likes.DeleteByTarget(cctx, domain.LikeTarget{Kind: domain.LikeKindComment, ID: commentID}); err != nil {
		uc.logger.Warn("Failed to delete comment likes", zap.String("comment_id", commentID), zap.Error(err))
	}

	publishEvent(ctx, uc.events, uc.logger, domain.SubjectCommentDeleted, map[string]interface{}{
		"comment_id": commentID,
		"video_id":   comment.VideoID,
		"deleted_at": nowRFC3339(),
	})
	return comment, nil
}
