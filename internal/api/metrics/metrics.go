// Package metrics defines and registers the custom Prometheus metrics for
// the rental API. It is the single source of truth for metric names,
// labels, and help strings; registration happens on import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "thespot"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ItemsCreatedTotal counts catalog items created.
// Label:
//   - genre: the item's genre
var ItemsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Total number of catalog items created, by genre.",
	},
	[]string{"genre"},
)

// ItemCacheTotal counts item cache lookups.
// Label:
//   - result: "hit" or "miss"
var ItemCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "item_cache_total",
		Help:      "Total number of item cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
