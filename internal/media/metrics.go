package media

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cleanupDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_gateway_media_cleanup_deleted_total",
		Help: "Objects deleted during media cleanup.",
	})
	cleanupFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_gateway_media_cleanup_failed_total",
		Help: "Objects that could not be deleted during media cleanup.",
	})
	cleanupSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_gateway_media_cleanup_skipped_total",
		Help: "Media URLs skipped as malformed during cleanup.",
	})
)
