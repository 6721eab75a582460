package usecase

import (
	"context"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"go.uber.org/zap"
)

// LikeUsecase toggles likes on videos, comments and tweets.
type LikeUsecase struct {
	likes    domain.LikeRepository
	videos   domain.VideoRepository
	comments domain.CommentRepository
	tweets   domain.TweetRepository
	events   domain.EventPublisher
	logger   *logger.Logger
}

func NewLikeUsecase(
	likes domain.LikeRepository,
	videos domain.VideoRepository,
	comments domain.CommentRepository,
	tweets domain.TweetRepository,
	events domain.EventPublisher,
	log *logger.Logger,
) *LikeUsecase {
	return &LikeUsecase{
		likes:    likes,
		videos:   videos,
		comments: comments,
		tweets:   tweets,
		events:   events,
		logger:   log.Named("LikeUsecase"),
	}
}

func (uc *LikeUsecase) ToggleVideoLike(ctx context.Context, actorID, videoID string) (*domain.LikeToggle, error) {
	return uc.ToggleLike(ctx, actorID, domain.LikeTarget{Kind: domain.LikeKindVideo, ID: videoID})
}

func (uc *LikeUsecase) ToggleCommentLike(ctx context.Context, actorID, commentID string) (*domain.LikeToggle, error) {
	return uc.ToggleLike(ctx, actorID, domain.LikeTarget{Kind: domain.LikeKindComment, ID: commentID})
}

func (uc *LikeUsecase) ToggleTweetLike(ctx context.Context, actorID, tweetID string) (*domain.LikeToggle, error) {
	return uc.ToggleLike(ctx, actorID, domain.LikeTarget{Kind: domain.LikeKindTweet, ID: tweetID})
}

// ToggleLike likes the target if the actor has not liked it yet and unlikes it otherwise.
func (uc *LikeUsecase) ToggleLike(ctx context.Context, actorID string, target domain.LikeTarget) (*domain.LikeToggle, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	if !target.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown like target %q", domain.ErrInvalidInput, target.Kind)
	}
	if err := requireID(string(target.Kind)+" id", target.ID); err != nil {
		return nil, err
	}
	if err := uc.ensureTargetExists(ctx, target); err != nil {
		return nil, err
	}

	action, like, err := toggleRelation(ctx, relationOps[domain.Like]{
		find: func(ctx context.Context) (*domain.Like, error) {
			return uc.likes.Find(ctx, target, actorID)
		},
		create: func(ctx context.Context) (*domain.Like, error) {
			like := &domain.Like{Target: target, LikedBy: actorID}
			if err := uc.likes.Create(ctx, like); err != nil {
				return nil, err
			}
			return like, nil
		},
		remove: func(ctx context.Context, like *domain.Like) error {
			return uc.likes.Delete(ctx, like.ID)
		},
	})
	if err != nil {
		uc.logger.Error("Like toggle failed", zap.String("kind", string(target.Kind)), zap.String("target_id", target.ID), zap.String("user_id", actorID), zap.Error(err))
		return nil, storeErr(err, "toggle like")
	}

	publishEvent(ctx, uc.events, uc.logger, domain.SubjectLikeToggled, map[string]interface{}{
		"kind":      target.Kind,
		"target_id": target.ID,
		"user_id":   actorID,
		"action":    action,
	})
	uc.logger.Info("Like toggled", zap.String("kind", string(target.Kind)), zap.String("target_id", target.ID), zap.String("action", string(action)))
	return &domain.LikeToggle{Action: action, Like: like}, nil
}

// ListLiked returns everything the actor has liked, newest first.
func (uc *LikeUsecase) ListLiked(ctx context.Context, actorID string) ([]*domain.Like, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	likes, err := uc.likes.ListByUser(ctx, actorID)
	if err != nil {
		return nil, storeErr(err, "list likes")
	}
	return likes, nil
}

func (uc *LikeUsecase) ensureTargetExists(ctx context.Context, target domain.LikeTarget) error {
	var err error
	switch target.Kind {
	case domain.LikeKindVideo:
		_, err = uc.videos.GetByID(ctx, target.ID)
	case domain.LikeKindComment:
		_, err = uc.comments.GetByID(ctx, target.ID)
	case domain.LikeKindTweet:
		_, err = uc.tweets.GetByID(ctx, target.ID)
	}
	return storeErr(err, "get "+string(target.Kind))
}
