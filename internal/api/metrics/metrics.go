// Package metrics defines all custom Prometheus metrics for the trainer
// directory API. It is the single source of truth for metric names, labels,
// and help strings. All metrics register themselves with the default registry
// via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trainer_directory"

// TrainersRegisteredTotal counts successful trainer registrations.
var TrainersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trainers_registered_total",
		Help:      "Total number of trainer profiles registered.",
	},
)

// StatusTransitionsTotal counts successful review decisions.
// Label:
//   - to: the status applied ("approved" or "rejected")
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of trainer status transitions, by target status.",
	},
	[]string{"to"},
)

// BlacklistMigrationsTotal counts blacklist entries created.
// Label:
//   - path: "by_id", "by_fields", or "legacy"
var BlacklistMigrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blacklist_migrations_total",
		Help:      "Total number of trainers moved to the blacklist, by entry point.",
	},
	[]string{"path"},
)

// UsersRegisteredTotal counts successful account registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// UploadsFailedTotal counts profile-picture uploads that failed after
// validation and were swallowed (the record is saved without a picture).
var UploadsFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_failed_total",
		Help:      "Total number of profile picture uploads that failed best-effort.",
	},
)

// DirectoryCacheTotal counts directory listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var DirectoryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_cache_total",
		Help:      "Total number of directory cache lookups, labelled by result.",
	},
	[]string{"result"},
)
