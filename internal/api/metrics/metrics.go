// Package metrics defines and registers all custom Prometheus metrics for the
// account service. It is the single source of truth for metric names, labels,
// and help strings. Registration happens via promauto at package init; the
// /metrics route is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// UsersRegisteredTotal counts successful self-registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users created through self-registration.",
	},
)

// ClientsRegisteredTotal counts successful client registrations.
var ClientsRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_registered_total",
		Help:      "Total number of client organizations registered.",
	},
)

// PartnersRegisteredTotal counts successful partner sponsorships.
// Label:
//   - bill_to: "client" or "partner"
var PartnersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "partners_registered_total",
		Help:      "Total number of partner sub-accounts registered, by billing mode.",
	},
	[]string{"bill_to"},
)

// RoleRequestsTotal counts role-change submissions.
// Label:
//   - outcome: "submitted" or "noop" (requested role equals current role)
var RoleRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_requests_total",
		Help:      "Total number of role-change requests, by outcome.",
	},
	[]string{"outcome"},
)

// RoleApprovalsTotal counts admin approval attempts.
// Label:
//   - outcome: "approved" or "not_pending"
var RoleApprovalsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_approvals_total",
		Help:      "Total number of role-change approval attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ListingCacheTotal counts admin user-listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var ListingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_cache_total",
		Help:      "Total number of listing cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
