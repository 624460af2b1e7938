package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	triggersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_triggers_total",
			Help: "Inbound triggers handled, per kind.",
		},
		[]string{"kind"},
	)

	dispatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_dispatches_total",
			Help: "Outbound message dispatches, per destination and result.",
		},
		[]string{"destination", "success"},
	)

	gatewayRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_gateway_requests_total",
			Help: "Order API requests, per operation and HTTP status (0 = transport failure).",
		},
		[]string{"op", "status"},
	)

	webhookRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_requests_total",
			Help: "Inbound webhook requests, per route and HTTP status.",
		},
		[]string{"route", "status"},
	)
)

var registerOnce sync.Once

// MustRegister installs every collector with the default registry. Safe to
// call from more than one wiring path; only the first call registers.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			triggersTotal,
			dispatchesTotal,
			gatewayRequestsTotal,
			webhookRequestsTotal,
		)
	})
}

func IncTrigger(kind string) {
	triggersTotal.WithLabelValues(kind).Inc()
}

func IncDispatch(destination string, ok bool) {
	dispatchesTotal.WithLabelValues(destination, strconv.FormatBool(ok)).Inc()
}

func IncGatewayRequest(op string, status int) {
	gatewayRequestsTotal.WithLabelValues(op, strconv.Itoa(status)).Inc()
}

func IncWebhookRequest(route string, status int) {
	webhookRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
