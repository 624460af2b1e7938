package usecase_test

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"mnogo-rolly-bot/internal/domain/model"
	"mnogo-rolly-bot/internal/domain/ports/adapter"
	"mnogo-rolly-bot/internal/domain/ports/gateway"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

// ---- Mock Messenger ----

type sentMessage struct {
	ChatID int64
	Text   string
}

type MockMessenger struct {
	mu   sync.Mutex
	Sent []sentMessage

	SendMessageFunc func(ctx context.Context, chatID int64, text string) error
}

var _ adapter.Messenger = (*MockMessenger)(nil)

func (m *MockMessenger) SendMessage(ctx context.Context, chatID int64, text string) error {
	if m.SendMessageFunc != nil {
		if err := m.SendMessageFunc(ctx, chatID, text); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, sentMessage{ChatID: chatID, Text: text})
	return nil
}

// ---- Mock OrderGateway ----

type MockGateway struct {
	mu         sync.Mutex
	FetchCalls int
	ListCalls  int

	FetchOrderFunc func(ctx context.Context, id int64) (*model.Order, error)
	ListOrdersFunc func(ctx context.Context) ([]model.Order, error)
	HealthFunc     func(ctx context.Context) error
}

var _ gateway.OrderGateway = (*MockGateway)(nil)

func (m *MockGateway) FetchOrder(ctx context.Context, id int64) (*model.Order, error) {
	m.mu.Lock()
	m.FetchCalls++
	m.mu.Unlock()
	if m.FetchOrderFunc != nil {
		return m.FetchOrderFunc(ctx, id)
	}
	return &model.Order{ID: id}, nil
}

func (m *MockGateway) ListOrders(ctx context.Context) ([]model.Order, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx)
	}
	return nil, nil
}

func (m *MockGateway) Health(ctx context.Context) error {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}
