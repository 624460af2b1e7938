// File: internal/domain/ports/gateway/orders.go
package gateway

import (
	"context"

	"mnogo-rolly-bot/internal/domain/model"
)

// OrderGateway is the boundary to the remote order service. Every call is a
// fresh fetch; implementations never cache and never retry.
type OrderGateway interface {
	// FetchOrder returns the order or domain.ErrOrderNotFound on 404.
	// Any other failure is a *domain.TransportError.
	FetchOrder(ctx context.Context, id int64) (*model.Order, error)
	// ListOrders returns the caller-visible order list.
	ListOrders(ctx context.Context) ([]model.Order, error)
	// Health probes the order service.
	Health(ctx context.Context) error
}
