// File: internal/domain/model/trigger.go
package model

// TriggerKind classifies an inbound chat message.
type TriggerKind int

const (
	TriggerStart TriggerKind = iota
	TriggerHelp
	TriggerOrderLookup // /order <id> or bare numeric text
	TriggerOrderList   // /orders
	TriggerUsage       // /order with a missing or non-numeric argument
	TriggerUnknown     // anything else; answered with the help prompt
)

// Trigger is the dispatcher's classification result. OrderID is set only for
// TriggerOrderLookup.
type Trigger struct {
	Kind    TriggerKind
	OrderID int64
}
