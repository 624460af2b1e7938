package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"mnogo-rolly-bot/internal/domain"
	"mnogo-rolly-bot/internal/domain/model"
	"mnogo-rolly-bot/internal/format"
	"mnogo-rolly-bot/internal/usecase"
)

const adminGroupID = int64(-1002728692510)

var testOpts = format.Options{Currency: "сом"}

func newRelay(gw *MockGateway, bot *MockMessenger) usecase.NotifyUseCase {
	return usecase.NewNotifyUseCase(gw, bot, adminGroupID, testOpts, newTestLogger())
}

func TestHandleOrderLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("replies with the formatted order on success", func(t *testing.T) {
		// --- Arrange ---
		gw := &MockGateway{
			FetchOrderFunc: func(ctx context.Context, id int64) (*model.Order, error) {
				return &model.Order{
					ID:          id,
					Status:      "ready",
					TotalAmount: json.Number("2500"),
					CreatedAt:   "2024-03-05T14:30:00Z",
				}, nil
			},
		}
		bot := &MockMessenger{}
		uc := newRelay(gw, bot)

		// --- Act ---
		err := uc.HandleOrderLookup(ctx, 42, 123)

		// --- Assert ---
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if len(bot.Sent) != 1 {
			t.Fatalf("expected exactly one dispatch, got %d", len(bot.Sent))
		}
		if bot.Sent[0].ChatID != 42 {
			t.Errorf("reply sent to wrong chat: %d", bot.Sent[0].ChatID)
		}
		if !strings.Contains(bot.Sent[0].Text, "Заказ #123") {
			t.Errorf("unexpected reply: %q", bot.Sent[0].Text)
		}
	})

	t.Run("not found yields the fixed not-found reply, never the generic one", func(t *testing.T) {
		// --- Arrange ---
		gw := &MockGateway{
			FetchOrderFunc: func(ctx context.Context, id int64) (*model.Order, error) {
				return nil, domain.ErrOrderNotFound
			},
		}
		bot := &MockMessenger{}
		uc := newRelay(gw, bot)

		// --- Act ---
		err := uc.HandleOrderLookup(ctx, 42, 404)

		// --- Assert ---
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if len(bot.Sent) != 1 {
			t.Fatalf("expected exactly one reply, got %d", len(bot.Sent))
		}
		if !strings.Contains(bot.Sent[0].Text, "не найден") {
			t.Errorf("expected not-found reply, got %q", bot.Sent[0].Text)
		}
		if strings.Contains(bot.Sent[0].Text, "Произошла ошибка") {
			t.Errorf("not-found must not produce the generic-error reply: %q", bot.Sent[0].Text)
		}
		if gw.FetchCalls != 1 {
			t.Errorf("expected exactly one gateway call (no retries), got %d", gw.FetchCalls)
		}
	})

	t.Run("transport error yields the generic reply", func(t *testing.T) {
		// --- Arrange ---
		gw := &MockGateway{
			FetchOrderFunc: func(ctx context.Context, id int64) (*model.Order, error) {
				return nil, &domain.TransportError{StatusCode: 502, Message: "bad gateway"}
			},
		}
		bot := &MockMessenger{}
		uc := newRelay(gw, bot)

		// --- Act ---
		err := uc.HandleOrderLookup(ctx, 42, 1)

		// --- Assert ---
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if len(bot.Sent) != 1 {
			t.Fatalf("expected exactly one reply, got %d", len(bot.Sent))
		}
		if !strings.Contains(bot.Sent[0].Text, "Произошла ошибка") {
			t.Errorf("expected generic-error reply, got %q", bot.Sent[0].Text)
		}
		if strings.Contains(bot.Sent[0].Text, "502") {
			t.Errorf("raw status must not leak to the user: %q", bot.Sent[0].Text)
		}
		if gw.FetchCalls != 1 {
			t.Errorf("expected exactly one gateway call (no retries), got %d", gw.FetchCalls)
		}
	})

	t.Run("dispatch failure is returned to the caller", func(t *testing.T) {
		// --- Arrange ---
		gw := &MockGateway{}
		bot := &MockMessenger{
			SendMessageFunc: func(ctx context.Context, chatID int64, text string) error {
				return errors.New("chat closed")
			},
		}
		uc := newRelay(gw, bot)

		// --- Act / Assert ---
		if err := uc.HandleOrderLookup(ctx, 42, 1); err == nil {
			t.Fatal("expected dispatch error to surface")
		}
	})
}

func TestHandleOrderList(t *testing.T) {
	ctx := context.Background()

	t.Run("replies with the summary", func(t *testing.T) {
		// --- Arrange ---
		gw := &MockGateway{
			ListOrdersFunc: func(ctx context.Context) ([]model.Order, error) {
				return []model.Order{
					{ID: 1, Status: "pending"},
					{ID: 2, Status: "delivered"},
				}, nil
			},
		}
		bot := &MockMessenger{}
		uc := newRelay(gw, bot)

		// --- Act ---
		err := uc.HandleOrderList(ctx, 42)

		// --- Assert ---
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if len(bot.Sent) != 1 {
			t.Fatalf("expected exactly one dispatch, got %d", len(bot.Sent))
		}
		if !strings.Contains(bot.Sent[0].Text, "Заказ #1") || !strings.Contains(bot.Sent[0].Text, "Заказ #2") {
			t.Errorf("unexpected summary: %q", bot.Sent[0].Text)
		}
	})

	t.Run("transport error yields the generic reply", func(t *testing.T) {
		// --- Arrange ---
		gw := &MockGateway{
			ListOrdersFunc: func(ctx context.Context) ([]model.Order, error) {
				return nil, &domain.TransportError{Message: "timeout"}
			},
		}
		bot := &MockMessenger{}
		uc := newRelay(gw, bot)

		// --- Act ---
		if err := uc.HandleOrderList(ctx, 42); err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}

		// --- Assert ---
		if len(bot.Sent) != 1 || !strings.Contains(bot.Sent[0].Text, "Произошла ошибка") {
			t.Errorf("expected generic-error reply, got %+v", bot.Sent)
		}
	})
}

func TestHandleNewOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches once to the admin group", func(t *testing.T) {
		// --- Arrange ---
		gw := &MockGateway{}
		bot := &MockMessenger{}
		uc := newRelay(gw, bot)
		payload := model.NewOrder{
			CustomerName: "A",
			TotalAmount:  json.Number("500"),
			Items:        []model.OrderItem{{Name: "Roll", Quantity: 1, Price: json.Number("500")}},
		}

		// --- Act ---
		err := uc.HandleNewOrder(ctx, payload)

		// --- Assert ---
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if len(bot.Sent) != 1 {
			t.Fatalf("expected exactly one dispatch, got %d", len(bot.Sent))
		}
		if bot.Sent[0].ChatID != adminGroupID {
			t.Errorf("dispatch sent to %d, want the broadcast destination", bot.Sent[0].ChatID)
		}
		for _, want := range []string{"A", "500", "Roll"} {
			if !strings.Contains(bot.Sent[0].Text, want) {
				t.Errorf("message missing %q: %q", want, bot.Sent[0].Text)
			}
		}
		if gw.FetchCalls != 0 {
			t.Errorf("new-order trigger must not call the gateway, got %d calls", gw.FetchCalls)
		}
	})

	t.Run("rejects an empty payload before dispatching", func(t *testing.T) {
		// --- Arrange ---
		bot := &MockMessenger{}
		uc := newRelay(&MockGateway{}, bot)

		// --- Act ---
		err := uc.HandleNewOrder(ctx, model.NewOrder{})

		// --- Assert ---
		if !errors.Is(err, domain.ErrEmptyPayload) {
			t.Fatalf("expected ErrEmptyPayload, got: %v", err)
		}
		if len(bot.Sent) != 0 {
			t.Fatalf("expected zero dispatches, got %d", len(bot.Sent))
		}
	})
}

func TestHandleStatusChange(t *testing.T) {
	ctx := context.Background()

	t.Run("notifies the admin group", func(t *testing.T) {
		// --- Arrange ---
		bot := &MockMessenger{}
		uc := newRelay(&MockGateway{}, bot)

		// --- Act ---
		err := uc.HandleStatusChange(ctx, model.StatusChange{OrderID: 9, OldStatus: "pending", NewStatus: "ready"})

		// --- Assert ---
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if len(bot.Sent) != 1 || bot.Sent[0].ChatID != adminGroupID {
			t.Fatalf("expected one admin dispatch, got %+v", bot.Sent)
		}
	})

	t.Run("also notifies the client when the event carries a chat", func(t *testing.T) {
		// --- Arrange ---
		bot := &MockMessenger{}
		uc := newRelay(&MockGateway{}, bot)

		// --- Act ---
		err := uc.HandleStatusChange(ctx, model.StatusChange{OrderID: 9, NewStatus: "ready", ChatID: 42})

		// --- Assert ---
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if len(bot.Sent) != 2 {
			t.Fatalf("expected admin and client dispatches, got %d", len(bot.Sent))
		}
		if bot.Sent[0].ChatID != adminGroupID || bot.Sent[1].ChatID != 42 {
			t.Errorf("unexpected destinations: %+v", bot.Sent)
		}
	})

	t.Run("rejects an empty event", func(t *testing.T) {
		bot := &MockMessenger{}
		uc := newRelay(&MockGateway{}, bot)

		if err := uc.HandleStatusChange(ctx, model.StatusChange{}); !errors.Is(err, domain.ErrEmptyPayload) {
			t.Fatalf("expected ErrEmptyPayload, got: %v", err)
		}
		if len(bot.Sent) != 0 {
			t.Fatalf("expected zero dispatches, got %d", len(bot.Sent))
		}
	})
}
