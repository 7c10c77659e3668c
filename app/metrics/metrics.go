package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Drop reasons for FeedItemsDropped.
const (
	ReasonBookNotFound    = "book_not_found"
	ReasonBookLookupError = "book_lookup_error"
	ReasonIncompleteItem  = "incomplete_details"
)

var (
	// FeedItemsDropped counts draft items omitted from a published feed.
	// Omission is policy, not an error; the counter is the observable trace
	// it leaves behind.
	FeedItemsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirrormatch_feed_items_dropped_total",
		Help: "Draft feed items omitted from the published feed, by reason.",
	}, []string{"reason"})

	// GenerationFailures counts /recommend requests that degraded to the
	// synthetic error feed.
	GenerationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirrormatch_generation_failures_total",
		Help: "Recommendation requests answered with the synthetic error feed, by failure class.",
	}, []string{"reason"})

	// RecommendRequests counts /recommend requests by outcome.
	RecommendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirrormatch_recommend_requests_total",
		Help: "Recommendation requests, by outcome.",
	}, []string{"status"})
)
