// File: internal/infra/adapters/telegram/dispatch.go
package telegram

import (
	"strconv"
	"strings"

	"mnogo-rolly-bot/internal/domain/model"
)

// ParseTrigger classifies an inbound message text. Pure; the polling loop
// acts on the result. Bare numeric free text is treated as an order lookup;
// anything unrecognized is answered with the help prompt, which is defined
// behavior rather than an error.
func ParseTrigger(text string) model.Trigger {
	trimmed := strings.TrimSpace(text)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return model.Trigger{Kind: model.TriggerUnknown}
	}

	switch fields[0] {
	case "/start":
		return model.Trigger{Kind: model.TriggerStart}
	case "/help":
		return model.Trigger{Kind: model.TriggerHelp}
	case "/orders":
		return model.Trigger{Kind: model.TriggerOrderList}
	case "/order":
		// Exactly one numeric argument; anything else is a usage error that
		// never reaches the relay.
		if len(fields) != 2 {
			return model.Trigger{Kind: model.TriggerUsage}
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || id <= 0 {
			return model.Trigger{Kind: model.TriggerUsage}
		}
		return model.Trigger{Kind: model.TriggerOrderLookup, OrderID: id}
	}

	if isDigits(trimmed) {
		if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil && id > 0 {
			return model.Trigger{Kind: model.TriggerOrderLookup, OrderID: id}
		}
	}
	return model.Trigger{Kind: model.TriggerUnknown}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
