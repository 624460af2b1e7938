// File: internal/format/status.go
package format

// Closed status vocabulary of the order service. Unknown statuses fall back
// to a generic glyph and pass the raw value through as the label.
var statusGlyphs = map[string]string{
	"pending":   "⏳",
	"confirmed": "✅",
	"preparing": "👨‍🍳",
	"ready":     "🚚",
	"delivered": "🎉",
	"cancelled": "❌",
}

var statusLabels = map[string]string{
	"pending":   "Ожидает подтверждения",
	"confirmed": "Подтвержден",
	"preparing": "Готовится",
	"ready":     "Готов к доставке",
	"delivered": "Доставлен",
	"cancelled": "Отменен",
}

// StatusGlyph returns the display glyph for a status code.
func StatusGlyph(status string) string {
	if g, ok := statusGlyphs[status]; ok {
		return g
	}
	return "❓"
}

// StatusLabel returns the localized label for a status code. Unrecognized
// codes are displayed verbatim, never rejected.
func StatusLabel(status string) string {
	if l, ok := statusLabels[status]; ok {
		return l
	}
	return status
}
