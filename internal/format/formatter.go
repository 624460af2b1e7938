// File: internal/format/formatter.go
//
// Deterministic plain-text rendering of order records for the messaging
// channel. Every function here is total: missing fields render fixed
// placeholders and a malformed timestamp renders a placeholder date, so
// formatting never fails.
package format

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mnogo-rolly-bot/internal/domain/model"
)

const (
	placeholderMissing = "Не указан"
	placeholderNotes   = "Нет комментария"
	placeholderDate    = "Дата не указана"
	placeholderItems   = "Товары не указаны"

	dateLayout = "02.01.2006 15:04"
)

// Options carries the display knobs that used to be hardcoded literals.
type Options struct {
	Currency string
}

// Order renders the full status message for a fetched order.
func Order(o model.Order, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Заказ #%d\n\n", StatusGlyph(o.Status), o.ID)
	fmt.Fprintf(&b, "📅 Дата: %s\n", Date(o.CreatedAt))
	fmt.Fprintf(&b, "💰 Сумма: %s %s\n", amount(o.TotalAmount), opts.Currency)
	fmt.Fprintf(&b, "📍 Адрес: %s\n", orPlaceholder(o.DeliveryAddress, placeholderMissing))
	fmt.Fprintf(&b, "📱 Телефон: %s\n", orPlaceholder(o.CustomerPhone, placeholderMissing))
	fmt.Fprintf(&b, "📊 Статус: %s\n\n", StatusLabel(o.Status))
	if len(o.Items) > 0 {
		b.WriteString("🛒 Товары:\n")
		for _, it := range o.Items {
			b.WriteString(renderItem(it, opts))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "📝 Комментарий: %s", orPlaceholder(o.Notes, placeholderNotes))
	return b.String()
}

// NewOrder renders the admin-group notification for a freshly placed order.
// Unlike Order it carries the client name and no status line.
func NewOrder(p model.NewOrder, opts Options) string {
	var b strings.Builder
	b.WriteString("🆕 Новый заказ!\n\n")
	fmt.Fprintf(&b, "📋 Заказ %s\n", newOrderRef(p))
	fmt.Fprintf(&b, "👤 Клиент: %s\n", orPlaceholder(p.CustomerName, placeholderMissing))
	fmt.Fprintf(&b, "📞 Телефон: %s\n", orPlaceholder(p.CustomerPhone, placeholderMissing))
	fmt.Fprintf(&b, "📍 Адрес: %s\n", orPlaceholder(p.DeliveryAddress, placeholderMissing))
	fmt.Fprintf(&b, "💰 Сумма: %s %s\n\n", amount(p.TotalAmount), opts.Currency)
	b.WriteString("🛒 Товары:\n")
	if len(p.Items) == 0 {
		b.WriteString(placeholderItems + "\n")
	}
	for _, it := range p.Items {
		b.WriteString(renderItem(it, opts))
	}
	fmt.Fprintf(&b, "\n📝 Комментарий: %s", orPlaceholder(p.Notes, placeholderNotes))
	return b.String()
}

// OrderList renders a summary of the caller's most recent orders.
func OrderList(orders []model.Order, opts Options) string {
	if len(orders) == 0 {
		return "У вас пока нет заказов. Сделайте первый заказ на сайте! 🛒"
	}
	if len(orders) > 10 {
		orders = orders[:10]
	}
	var b strings.Builder
	b.WriteString("📋 Ваши последние заказы:\n\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "%s Заказ #%d\n", StatusGlyph(o.Status), o.ID)
		fmt.Fprintf(&b, "💰 Сумма: %s %s\n", amount(o.TotalAmount), opts.Currency)
		fmt.Fprintf(&b, "📅 Дата: %s\n", Date(o.CreatedAt))
		fmt.Fprintf(&b, "📍 Адрес: %s\n", orPlaceholder(o.DeliveryAddress, placeholderMissing))
		fmt.Fprintf(&b, "📊 Статус: %s\n\n", StatusLabel(o.Status))
	}
	b.WriteString("💡 Для детальной информации используйте: /order <номер>")
	return b.String()
}

// StatusChangeAdmin renders the admin-group notice for a status transition.
func StatusChangeAdmin(ev model.StatusChange) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔄 Статус заказа #%d изменен!\n\n", ev.OrderID)
	fmt.Fprintf(&b, "📊 Старый статус: %s\n", StatusLabel(ev.OldStatus))
	fmt.Fprintf(&b, "📊 Новый статус: %s", StatusLabel(ev.NewStatus))
	return b.String()
}

// StatusChangeClient renders the client-facing notice for a status transition.
func StatusChangeClient(ev model.StatusChange) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Статус заказа #%d изменен!\n\n", StatusGlyph(ev.NewStatus), ev.OrderID)
	fmt.Fprintf(&b, "📊 Новый статус: %s\n\n", StatusLabel(ev.NewStatus))
	fmt.Fprintf(&b, "🔄 Для обновления информации используйте: /order %d", ev.OrderID)
	return b.String()
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Date renders an ISO-8601 timestamp as DD.MM.YYYY HH:MM. The zone suffix
// may be present or absent; unparseable input renders the placeholder.
func Date(createdAt string) string {
	s := strings.TrimSpace(createdAt)
	if s == "" {
		return placeholderDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout)
		}
	}
	return placeholderDate
}

func renderItem(it model.OrderItem, opts Options) string {
	if it.Raw != "" {
		return "• " + it.Raw + "\n"
	}
	qty := it.Quantity
	if qty <= 0 {
		qty = 1
	}
	name := orPlaceholder(it.Name, "Товар")
	return "• " + strconv.Itoa(qty) + "x " + name + " - " + amount(it.Price) + " " + opts.Currency + "\n"
}

func newOrderRef(p model.NewOrder) string {
	switch {
	case p.ID > 0:
		return "#" + strconv.FormatInt(p.ID, 10)
	case p.OrderNumber != "":
		return "#" + p.OrderNumber
	default:
		return "#N/A"
	}
}

func amount(n json.Number) string {
	if n == "" {
		return "0"
	}
	return n.String()
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
