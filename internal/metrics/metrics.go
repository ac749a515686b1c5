package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	grpcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "golfbuddy_grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "code"},
	)

	grpcRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "golfbuddy_grpc_request_duration_seconds",
			Help:    "Duration of gRPC requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method"},
	)

	buddyMatchEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "golfbuddy_buddy_match_events_total",
			Help: "Buddy match lifecycle events (created, accepted, declined)",
		},
		[]string{"event"},
	)

	conversationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "golfbuddy_conversations_created_total",
			Help: "Conversations inserted, direct or via an accepted match",
		},
	)

	messagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "golfbuddy_messages_sent_total",
			Help: "Messages appended to conversations",
		},
	)

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "golfbuddy_cache_lookups_total",
			Help: "Redis cache lookups by cache and result (hit, miss, error)",
		},
		[]string{"cache", "result"},
	)
)

// RecordRPC is called by the server interceptor once per unary call.
func RecordRPC(method, code string, duration time.Duration) {
	grpcRequestsTotal.WithLabelValues(method, code).Inc()
	grpcRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordMatchEvent counts a match lifecycle step: "created" or the new status.
func RecordMatchEvent(event string) {
	buddyMatchEvents.WithLabelValues(event).Inc()
}

func RecordConversationCreated() { conversationsCreated.Inc() }

func RecordMessageSent() { messagesSent.Inc() }

func RecordCacheLookup(cache, result string) {
	cacheLookups.WithLabelValues(cache, result).Inc()
}
