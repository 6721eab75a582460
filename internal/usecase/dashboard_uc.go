package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DashboardUsecase computes read-only channel statistics.
type DashboardUsecase struct {
	videos        domain.VideoRepository
	likes         domain.LikeRepository
	subscriptions domain.SubscriptionRepository
	logger        *logger.Logger
}

func NewDashboardUsecase(videos domain.VideoRepository, likes domain.LikeRepository, subscriptions domain.SubscriptionRepository, log *logger.Logger) *DashboardUsecase {
	return &DashboardUsecase{
		videos:        videos,
		likes:         likes,
		subscriptions: subscriptions,
		logger:        log.Named("DashboardUsecase"),
	}
}

// ChannelStats aggregates video, view, subscriber and like totals for a channel.
func (uc *DashboardUsecase) ChannelStats(ctx context.Context, ownerID string) (*domain.ChannelStats, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}

	var stats domain.ChannelStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.videos.CountByOwner(gctx, ownerID)
		if err != nil {
			return storeErr(err, "count videos")
		}
		stats.TotalVideos = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.videos.SumViewsByOwner(gctx, ownerID)
		if err != nil {
			return storeErr(err, "sum views")
		}
		stats.TotalViews = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.subscriptions.CountByChannel(gctx, ownerID)
		if err != nil {
			return storeErr(err, "count subscribers")
		}
		stats.TotalSubscribers = n
		return nil
	})
	g.Go(func() error {
		ids, err := uc.videos.ListIDsByOwner(gctx, ownerID)
		if err != nil {
			return storeErr(err, "list video ids")
		}
		if len(ids) == 0 {
			return nil
		}
		n, err := uc.likes.CountByVideoIDs(gctx, ids)
		if err != nil {
			return storeErr(err, "count likes")
		}
		stats.TotalLikes = n
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("Failed to compute channel stats", zap.String("owner", ownerID), zap.Error(err))
		if !errors.Is(err, domain.ErrRepository) {
			err = fmt.Errorf("%w: channel stats: %v", domain.ErrRepository, err)
		}
		return nil, err
	}
	return &stats, nil
}

// ChannelVideos returns the ids of every video the channel owns.
func (uc *DashboardUsecase) ChannelVideos(ctx context.Context, ownerID string) ([]string, error) {
	if err := requireActor(ownerID); err != nil {
		return nil, err
	}
	ids, err := uc.videos.ListIDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, storeErr(err, "list video ids")
	}
	return ids, nil
}
