// File: internal/usecase/notify_uc.go
package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"mnogo-rolly-bot/internal/domain"
	"mnogo-rolly-bot/internal/domain/model"
	"mnogo-rolly-bot/internal/domain/ports/adapter"
	"mnogo-rolly-bot/internal/domain/ports/gateway"
	"mnogo-rolly-bot/internal/format"
	"mnogo-rolly-bot/internal/infra/metrics"
	sentryutil "mnogo-rolly-bot/internal/infra/sentry"
)

// User-facing replies. Failure replies stay generic; the cause goes to the
// log and the error tracker, never to the chat.
const (
	replyNotFound     = "Заказ не найден."
	replyLookupFailed = "Произошла ошибка при получении заказа. Попробуйте позже."
	replyListFailed   = "Произошла ошибка при получении заказов. Попробуйте позже."
)

// Compile-time check
var _ NotifyUseCase = (*notifyUC)(nil)

// NotifyUseCase is the notification relay: one method per trigger, each
// terminal and producing at most one outward dispatch per destination.
type NotifyUseCase interface {
	// HandleOrderLookup resolves one order and replies to the requesting chat.
	HandleOrderLookup(ctx context.Context, chatID, orderID int64) error
	// HandleOrderList replies with a summary of recent orders.
	HandleOrderList(ctx context.Context, chatID int64) error
	// HandleNewOrder notifies the admin group about a freshly placed order.
	HandleNewOrder(ctx context.Context, p model.NewOrder) error
	// HandleStatusChange notifies the admin group (and the client, when the
	// event carries a chat) about a status transition.
	HandleStatusChange(ctx context.Context, ev model.StatusChange) error
}

type notifyUC struct {
	gw           gateway.OrderGateway
	bot          adapter.Messenger
	adminGroupID int64
	opts         format.Options
	log          *zerolog.Logger
}

func NewNotifyUseCase(gw gateway.OrderGateway, bot adapter.Messenger, adminGroupID int64, opts format.Options, logger *zerolog.Logger) *notifyUC {
	l := logger.With().Str("component", "NotifyUC").Logger()
	return &notifyUC{
		gw:           gw,
		bot:          bot,
		adminGroupID: adminGroupID,
		opts:         opts,
		log:          &l,
	}
}

func (n *notifyUC) HandleOrderLookup(ctx context.Context, chatID, orderID int64) error {
	metrics.IncTrigger("order_lookup")

	order, err := n.gw.FetchOrder(ctx, orderID)
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return n.send(ctx, chatID, "user", replyNotFound)
	case err != nil:
		n.log.Error().Err(err).Int64("order_id", orderID).Msg("order lookup failed")
		sentryutil.CaptureError(err, map[string]string{"trigger": "order_lookup"})
		return n.send(ctx, chatID, "user", replyLookupFailed)
	}
	return n.send(ctx, chatID, "user", format.Order(*order, n.opts))
}

func (n *notifyUC) HandleOrderList(ctx context.Context, chatID int64) error {
	metrics.IncTrigger("order_list")

	orders, err := n.gw.ListOrders(ctx)
	if err != nil {
		n.log.Error().Err(err).Msg("order list failed")
		sentryutil.CaptureError(err, map[string]string{"trigger": "order_list"})
		return n.send(ctx, chatID, "user", replyListFailed)
	}
	return n.send(ctx, chatID, "user", format.OrderList(orders, n.opts))
}

func (n *notifyUC) HandleNewOrder(ctx context.Context, p model.NewOrder) error {
	metrics.IncTrigger("new_order")

	if p.Empty() {
		return domain.ErrEmptyPayload
	}
	return n.send(ctx, n.adminGroupID, "admin_group", format.NewOrder(p, n.opts))
}

func (n *notifyUC) HandleStatusChange(ctx context.Context, ev model.StatusChange) error {
	metrics.IncTrigger("status_change")

	if ev.Empty() {
		return domain.ErrEmptyPayload
	}
	if err := n.send(ctx, n.adminGroupID, "admin_group", format.StatusChangeAdmin(ev)); err != nil {
		return err
	}
	if ev.ChatID != 0 {
		return n.send(ctx, ev.ChatID, "user", format.StatusChangeClient(ev))
	}
	return nil
}

func (n *notifyUC) send(ctx context.Context, chatID int64, destination, text string) error {
	err := n.bot.SendMessage(ctx, chatID, text)
	metrics.IncDispatch(destination, err == nil)
	if err != nil {
		n.log.Error().Err(err).Int64("chat_id", chatID).Msg("dispatch failed")
		return err
	}
	return nil
}
