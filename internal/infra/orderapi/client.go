// File: internal/infra/orderapi/client.go
package orderapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"mnogo-rolly-bot/internal/config"
	"mnogo-rolly-bot/internal/domain"
	"mnogo-rolly-bot/internal/domain/model"
	"mnogo-rolly-bot/internal/domain/ports/gateway"
	"mnogo-rolly-bot/internal/infra/metrics"
)

const (
	fetchTimeout  = 10 * time.Second
	healthTimeout = 5 * time.Second
)

// Client talks to the remote order service. Stateless: no caching, no
// retries; staleness is bounded by network latency only.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *zerolog.Logger
}

var _ gateway.OrderGateway = (*Client)(nil)

func NewClient(cfg *config.APIConfig, logger *zerolog.Logger) *Client {
	l := logger.With().Str("component", "OrderAPI").Logger()
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.AdminToken,
		http:    &http.Client{},
		log:     &l,
	}
}

// FetchOrder loads one order via the admin endpoint, which exposes the phone
// and notes fields hidden on the public one.
func (c *Client) FetchOrder(ctx context.Context, id int64) (*model.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	body, err := c.get(ctx, "fetch_order", "/admin/orders/"+strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	var order model.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, &domain.TransportError{StatusCode: http.StatusOK, Message: fmt.Sprintf("decode order: %v", err)}
	}
	return &order, nil
}

// ListOrders loads the caller-visible order list.
func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	body, err := c.get(ctx, "list_orders", "/orders")
	if err != nil {
		return nil, err
	}
	var orders []model.Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, &domain.TransportError{StatusCode: http.StatusOK, Message: fmt.Sprintf("decode orders: %v", err)}
	}
	return orders, nil
}

// Health probes the order service with the short timeout.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	_, err := c.get(ctx, "health", "/products")
	return err
}

func (c *Client) get(ctx context.Context, op, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &domain.TransportError{Message: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.IncGatewayRequest(op, 0)
		c.log.Error().Err(err).Str("op", op).Msg("order api request failed")
		return nil, &domain.TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()
	metrics.IncGatewayRequest(op, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrOrderNotFound
	default:
		c.log.Warn().Str("op", op).Int("status", resp.StatusCode).Msg("unexpected order api status")
		return nil, &domain.TransportError{StatusCode: resp.StatusCode, Message: bodyExcerpt(body)}
	}
}

// bodyExcerpt keeps error bodies short enough to log.
func bodyExcerpt(b []byte) string {
	const max = 200
	s := string(b)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
