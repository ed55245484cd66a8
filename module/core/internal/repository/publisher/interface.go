package publisher

import (
	"context"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

type TransitionPublisher interface {
	PublishTransition(ctx context.Context, t *domain.Transition) error
}
