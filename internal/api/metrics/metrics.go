// Package metrics defines and registers all custom Prometheus metrics for
// the taskboard API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time; the
// router exposes them on /metrics together with the echoprometheus HTTP
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskboard"

// ── Task metrics ─────────────────────────────────────────────────────────────

// TasksCreatedTotal counts newly created tasks.
// Label:
//   - priority: "Low", "Medium", or "High"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by priority.",
	},
	[]string{"priority"},
)

// TaskMutationsTotal counts successful task mutations.
// Label:
//   - op: "create", "update", or "delete"
var TaskMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_mutations_total",
		Help:      "Total number of successful task mutations, by operation.",
	},
	[]string{"op"},
)

// ── Notification metrics ─────────────────────────────────────────────────────

// NotificationsPublishedTotal counts events handed to the relay dispatcher.
// Label:
//   - event: the event name (e.g. "task.created")
var NotificationsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_published_total",
		Help:      "Total number of notification events enqueued for delivery.",
	},
	[]string{"event"},
)

// NotificationsDroppedTotal counts events dropped because the responsible
// worker's buffer was full. Delivery is best-effort, so drops never surface
// to the caller.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notification events dropped on a full queue.",
	},
)

// NotificationsFailedTotal counts events the relay refused or that failed in
// transit after being dequeued.
var NotificationsFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of notification events that failed delivery to the relay.",
	},
)

// ── Weather metrics ──────────────────────────────────────────────────────────

// WeatherRequestsTotal counts weather endpoint outcomes.
// Label:
//   - result: "ok", "city_not_set", or "unavailable"
var WeatherRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "weather_requests_total",
		Help:      "Total number of weather requests, by outcome.",
	},
	[]string{"result"},
)
