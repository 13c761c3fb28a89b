package service

import (
	"context"

	"todo/internal/domain/entity"
)

// ChangeHandler receives realtime change notifications for one table.
type ChangeHandler func(event entity.ChangeEvent)

// Subscription is a live realtime subscription. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe() error
}

// RealtimeService subscribes to insert/update/delete notifications of a table.
type RealtimeService interface {
	Subscribe(ctx context.Context, table string, handler ChangeHandler) (Subscription, error)
}
