// Package workflow derives the dashboard buckets from the independent
// state fields on a remito. The fields are toggled separately by
// production and logistics staff, so the bucket is always recomputed
// from the full record rather than stored.
package workflow

import "tablero/internal/domain"

// Bucket is the derived workflow state shown on the dashboard.
type Bucket string

const (
	BucketPending      Bucket = "pending"
	BucketProduction   Bucket = "production"
	BucketAwaitingDate Bucket = "awaiting-date"
	BucketReady        Bucket = "ready"
	BucketDispatched   Bucket = "dispatched"
)

// Classify maps a remito to its bucket. Rules are evaluated top to
// bottom and the first match wins; in particular a dispatched remito is
// always dispatched no matter what the production fields say, and the
// awaiting-date check runs before the ready check.
func Classify(r *domain.Remito) Bucket {
	if r.PreparationState == domain.PreparationDespachado {
		return BucketDispatched
	}

	if r.NeedsProduction {
		switch {
		case r.ProductionState == domain.ProductionListo && r.DispatchWindow == "":
			return BucketAwaitingDate
		case r.ProductionState == domain.ProductionListo && r.PreparationState == domain.PreparationListo:
			return BucketReady
		case r.ProductionState == domain.ProductionListo:
			return BucketProduction
		default:
			return BucketPending
		}
	}

	switch {
	case r.PreparationState == domain.PreparationPendiente && r.DispatchWindow == "":
		return BucketAwaitingDate
	case r.PreparationState == domain.PreparationListo:
		return BucketReady
	default:
		return BucketPending
	}
}

// CountedAsReady is the counter engine's "already accounted as shipped"
// predicate. It deliberately differs from Classify: a remito counts as
// ready when its production state is Listo or it was dispatched, or when
// production is not blocking and preparation has moved past entry. The
// two predicates have always disagreed on edge combinations and the
// dashboards depend on each one's exact behavior, so they are kept
// separate instead of unified.
func CountedAsReady(r *domain.Remito) bool {
	if r.ProductionState == domain.ProductionListo || r.PreparationState == domain.PreparationDespachado {
		return true
	}
	if r.ProductionState == domain.ProductionNone || r.ProductionState == domain.ProductionListo {
		switch r.PreparationState {
		case domain.PreparationListo, domain.PreparationPendiente, domain.PreparationDespachado:
			return true
		}
	}
	return false
}
