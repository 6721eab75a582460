package usecase

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"go.uber.org/zap"
)

type TweetUsecase struct {
	tweets domain.TweetRepository
	likes  domain.LikeRepository
	events domain.EventPublisher
	logger *logger.Logger
}

func NewTweetUsecase(tweets domain.TweetRepository, likes domain.LikeRepository, events domain.EventPublisher, log *logger.Logger) *TweetUsecase {
	return &TweetUsecase{
		tweets: tweets,
		likes:  likes,
		events: events,
		logger: log.Named("TweetUsecase"),
	}
}

func (uc *TweetUsecase) CreateTweet(ctx context.Context, actorID, content string) (*domain.Tweet, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	text, err := requireText("content", content)
	if err != nil {
		return nil, err
	}

	tweet := &domain.Tweet{Content: text, Owner: actorID}
	if err := uc.tweets.Create(ctx, tweet); err != nil {
		uc.logger.Error("Failed to save tweet", zap.String("owner", actorID), zap.Error(err))
		return nil, storeErr(err, "create tweet")
	}
	created, err := readBack(ctx, uc.tweets.GetByID, tweet.ID, "tweet")
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, uc.events, uc.logger, domain.SubjectTweetCreated, map[string]interface{}{
		"tweet_id": created.ID,
		"owner":    created.Owner,
	})
	return created, nil
}

func (uc *TweetUsecase) ListUserTweets(ctx context.Context, userID string) ([]*domain.Tweet, error) {
	if err := requireID("user id", userID); err != nil {
		return nil, err
	}
	tweets, err := uc.tweets.ListByOwner(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "list tweets")
	}
	return tweets, nil
}

func (uc *TweetUsecase) UpdateTweet(ctx context.Context, actorID, tweetID, content string) (*domain.Tweet, error) {
	if err := requireID("tweet id", tweetID); err != nil {
		return nil, err
	}

	tweet, err := uc.tweets.GetByID(ctx, tweetID)
	if err != nil {
		return nil, storeErr(err, "get tweet")
	}
	if err := ensureOwner(tweet.Owner, actorID, "update this tweet"); err != nil {
		return nil, err
	}

	text, err := requireText("content", content)
	if err != nil {
		return nil, err
	}

	updated, err := uc.tweets.UpdateContent(ctx, tweetID, text)
	if err != nil {
		return nil, storeErr(err, "update tweet")
	}
	return updated, nil
}

func (uc *TweetUsecase) DeleteTweet(ctx context.Context, actorID, tweetID string) (*domain.Tweet, error) {
	if err := requireID("tweet id", tweetID); err != nil {
		return nil, err
	}

	tweet, err := uc.tweets.GetByID(ctx, tweetID)
	if err != nil {
		return nil, storeErr(err, "get tweet")
	}
	if err := ensureOwner(tweet.Owner, actorID, "delete this tweet"); err != nil {
		return nil, err
	}

	if err := uc.tweets.Delete(ctx, tweetID); err != nil {
		return nil, storeErr(err, "delete tweet")
	}

	cctx, cancel := detached(ctx)
	defer cancel()
	if _, err := uc.likes.DeleteByTarget(cctx, domain.LikeTarget{Kind: domain.LikeKindTweet, ID: tweetID}); err != nil {
		uc.logger.Warn("Failed to delete tweet likes", zap.String("tweet_id", tweetID), zap.Error(err))
	}

	publishEvent(ctx, uc.events, uc.logger, domain.SubjectTweetDeleted, map[string]interface{}{
		"tweet_id":   tweetID,
		"owner":      tweet.Owner,
		"deleted_at": nowRFC3339(),
	})
	return tweet, nil
}
