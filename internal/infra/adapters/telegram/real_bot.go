// File: internal/infra/adapters/telegram/real_bot.go
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mnogo-rolly-bot/internal/config"
	"mnogo-rolly-bot/internal/domain/model"
	"mnogo-rolly-bot/internal/domain/ports/adapter"
	"mnogo-rolly-bot/internal/infra/logging"
	red "mnogo-rolly-bot/internal/infra/redis"
	"mnogo-rolly-bot/internal/usecase"
)

const sendTimeout = 10 * time.Second

const usageReply = "Использование: /order <номер>\nПример: /order 123"
const unknownReply = "Отправьте номер заказа или используйте команду /help для справки."
const rateLimitReply = "Слишком много запросов. Попробуйте позже."

// RealBotAdapter polls Telegram for updates and maps recognized commands and
// numeric free text onto the relay's triggers. It is also the outbound
// Messenger used for every dispatch.
type RealBotAdapter struct {
	bot         *tgbotapi.BotAPI
	cfg         *config.BotConfig
	fmtCfg      config.FormatConfig
	relay       usecase.NotifyUseCase
	rateLimiter *red.RateLimiter
	log         *zerolog.Logger

	updateWorkers int
	cancelPolling context.CancelFunc
}

var _ adapter.Messenger = (*RealBotAdapter)(nil)

func NewRealBotAdapter(cfg *config.BotConfig, fmtCfg config.FormatConfig, rateLimiter *red.RateLimiter, logger *zerolog.Logger) (*RealBotAdapter, error) {
	if cfg == nil {
		return nil, errors.New("bot config is nil")
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 5
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}

	l := logger.With().Str("component", "TelegramBot").Logger()
	return &RealBotAdapter{
		bot:           bot,
		cfg:           cfg,
		fmtCfg:        fmtCfg,
		rateLimiter:   rateLimiter,
		log:           &l,
		updateWorkers: workers,
	}, nil
}

// AttachRelay wires the relay in after construction; the relay itself needs
// this adapter as its Messenger.
func (r *RealBotAdapter) AttachRelay(relay usecase.NotifyUseCase) {
	r.relay = relay
}

// Username returns the authorized bot account name.
func (r *RealBotAdapter) Username() string {
	return r.bot.Self.UserName
}

func (r *RealBotAdapter) StartPolling(ctx context.Context) error {
	if r.relay == nil {
		return errors.New("relay is not attached")
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := r.bot.GetUpdatesChan(u)

	ctx, cancel := context.WithCancel(ctx)
	r.cancelPolling = cancel

	var wg sync.WaitGroup
	updateChan := make(chan tgbotapi.Update, 100)

	for i := 0; i < r.updateWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case up := <-updateChan:
					if err := r.handleUpdateSafe(ctx, up); err != nil {
						r.log.Error().Err(err).Int("worker", id).Msg("update handling failed")
					}
				}
			}
		}(i)
	}

	for {
		select {
		case <-ctx.Done():
			close(updateChan)
			wg.Wait()
			return ctx.Err()
		case up := <-updates:
			updateChan <- up
		}
	}
}

func (r *RealBotAdapter) StopPolling() {
	if r.cancelPolling != nil {
		r.cancelPolling()
	}
}

// SendMessage implements the Messenger port. Outbound calls are bounded so a
// slow Telegram API cannot hang a trigger indefinitely.
func (r *RealBotAdapter) SendMessage(ctx context.Context, chatID int64, text string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := tgbotapi.NewMessage(chatID, text)
	done := make(chan error, 1)
	go func() {
		_, err := r.bot.Send(msg)
		done <- err
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(sendTimeout):
		return fmt.Errorf("send to chat %d: timeout after %s", chatID, sendTimeout)
	}
}

// handleUpdateSafe contains panics to the single update: one malformed input
// must never take down the receive loop.
func (r *RealBotAdapter) handleUpdateSafe(ctx context.Context, update tgbotapi.Update) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic in update handler: %v", rec)
		}
	}()
	return r.handleUpdate(ctx, update)
}

func (r *RealBotAdapter) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	if update.Message == nil || update.Message.From == nil {
		return nil
	}
	chatID := update.Message.Chat.ID
	text := update.Message.Text

	ctx = logging.WithTraceID(ctx, uuid.NewString())
	ctx = logging.WithChatID(ctx, chatID)

	// Basic rate limiting per chat per command
	if r.rateLimiter != nil {
		command := "message"
		if fields := strings.Fields(text); len(fields) > 0 && strings.HasPrefix(fields[0], "/") {
			command = fields[0]
		}
		allowed, err := r.rateLimiter.Allow(ctx, red.ChatCommandKey(chatID, command), 20, time.Minute)
		if err != nil {
			r.log.Error().Err(err).Msg("rate limit error")
		} else if !allowed {
			return r.SendMessage(ctx, chatID, rateLimitReply)
		}
	}

	trig := ParseTrigger(text)
	switch trig.Kind {
	case model.TriggerStart:
		return r.SendMessage(ctx, chatID, r.welcomeText(update.Message.From.FirstName))
	case model.TriggerHelp:
		return r.SendMessage(ctx, chatID, r.helpText())
	case model.TriggerOrderLookup:
		return r.relay.HandleOrderLookup(ctx, chatID, trig.OrderID)
	case model.TriggerOrderList:
		return r.relay.HandleOrderList(ctx, chatID)
	case model.TriggerUsage:
		return r.SendMessage(ctx, chatID, usageReply)
	default:
		return r.SendMessage(ctx, chatID, unknownReply)
	}
}

func (r *RealBotAdapter) welcomeText(firstName string) string {
	var b strings.Builder
	b.WriteString("🍕 Добро пожаловать в бот заказов \"Много Роллы\"!\n\n")
	if strings.TrimSpace(firstName) != "" {
		fmt.Fprintf(&b, "👋 Привет, %s!\n\n", firstName)
	}
	b.WriteString("📋 Доступные команды:\n")
	b.WriteString("/orders - Посмотреть мои заказы\n")
	b.WriteString("/order <номер> - Информация о заказе\n")
	b.WriteString("/help - Помощь\n\n")
	b.WriteString("💡 Чтобы узнать статус заказа, напишите его номер или используйте команду /order <номер>")
	return b.String()
}

func (r *RealBotAdapter) helpText() string {
	var b strings.Builder
	b.WriteString("🔧 Помощь по боту\n\n")
	b.WriteString("📋 Основные команды:\n")
	b.WriteString("/start - Начать работу с ботом\n")
	b.WriteString("/orders - Посмотреть мои заказы\n")
	b.WriteString("/order <номер> - Информация о заказе\n")
	b.WriteString("/help - Показать эту справку\n\n")
	b.WriteString("💡 Примеры использования:\n")
	b.WriteString("• /order 123 - посмотреть заказ №123\n")
	b.WriteString("• /orders - список всех заказов")
	if r.fmtCfg.SiteURL != "" {
		fmt.Fprintf(&b, "\n\n🌐 Сайт: %s", r.fmtCfg.SiteURL)
	}
	if r.fmtCfg.Support != "" {
		fmt.Fprintf(&b, "\n📞 Поддержка: %s", r.fmtCfg.Support)
	}
	return b.String()
}
