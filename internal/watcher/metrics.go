package watcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "openbazaar_watcher",
		Name:      "notifications_total",
		Help:      "Notifications handled by the watcher, by outcome.",
	},
	[]string{"result"},
)

var pollsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "openbazaar_watcher",
		Name:      "polls_total",
		Help:      "Notification polls, by outcome.",
	},
	[]string{"result"},
)

const (
	resultPublished = "published"
	resultSkipped   = "skipped"
	resultFailed    = "failed"
	resultOK        = "ok"
)
