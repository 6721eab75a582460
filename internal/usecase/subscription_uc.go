package usecase

import (
	"context"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/logger"
	"go.uber.org/zap"
)

type SubscriptionUsecase struct {
	subscriptions domain.SubscriptionRepository
	events        domain.EventPublisher
	logger        *logger.Logger
}

func NewSubscriptionUsecase(subscriptions domain.SubscriptionRepository, events domain.EventPublisher, log *logger.Logger) *SubscriptionUsecase {
	return &SubscriptionUsecase{
		subscriptions: subscriptions,
		events:        events,
		logger:        log.Named("SubscriptionUsecase"),
	}
}

// ToggleSubscription subscribes the actor to a channel or cancels the subscription.
// Subscribing to oneself is rejected before anything is written.
func (uc *SubscriptionUsecase) ToggleSubscription(ctx context.Context, actorID, channelID string) (*domain.SubscriptionToggle, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	if err := requireID("channel id", channelID); err != nil {
		return nil, err
	}
	if channelID == actorID {
		return nil, fmt.Errorf("%w: you cannot subscribe to yourself", domain.ErrInvalidInput)
	}

	action, sub, err := toggleRelation(ctx, relationOps[domain.Subscription]{
		find: func(ctx context.Context) (*domain.Subscription, error) {
			return uc.subscriptions.Find(ctx, channelID, actorID)
		},
		create: func(ctx context.Context) (*domain.Subscription, error) {
			sub := &domain.Subscription{Channel: channelID, Subscriber: actorID}
			if err := uc.subscriptions.Create(ctx, sub); err != nil {
				return nil, err
			}
			return sub, nil
		},
		remove: func(ctx context.Context, sub *domain.Subscription) error {
			return uc.subscriptions.Delete(ctx, sub.ID)
		},
	})
	if err != nil {
		uc.logger.Error("Subscription toggle failed", zap.String("channel", channelID), zap.String("subscriber", actorID), zap.Error(err))
		return nil, storeErr(err, "toggle subscription")
	}

	publishEvent(ctx, uc.events, uc.logger, domain.SubjectSubscriptionToggled, map[string]interface{}{
		"channel":    channelID,
		"subscriber": actorID,
		"action":     action,
	})
	return &domain.SubscriptionToggle{Action: action, Subscription: sub}, nil
}

func (uc *SubscriptionUsecase) ListSubscribers(ctx context.Context, channelID string) ([]*domain.Subscription, error) {
	if err := requireID("channel id", channelID); err != nil {
		return nil, err
	}
	subs, err := uc.subscriptions.ListByChannel(ctx, channelID)
	if err != nil {
		return nil, storeErr(err, "list subscribers")
	}
	return subs, nil
}

func (uc *SubscriptionUsecase) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]*domain.Subscription, error) {
	if err := requireID("subscriber id", subscriberID); err != nil {
		return nil, err
	}
	subs, err := uc.subscriptions.ListBySubscriber(ctx, subscriberID)
	if err != nil {
		return nil, storeErr(err, "list subscribed channels")
	}
	return subs, nil
}
