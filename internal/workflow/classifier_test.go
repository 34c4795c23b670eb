package workflow_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"tablero/internal/domain"
	"tablero/internal/workflow"
)

func TestClassify_DespachadoAlwaysDispatched(t *testing.T) {
	// Despachado wins over every combination of the remaining fields.
	for _, needsProduction := range []bool{false, true} {
		for _, prodState := range []domain.ProductionState{domain.ProductionNone, domain.ProductionPendiente, domain.ProductionListo} {
			for _, window := range []string{"", "Lunes Mañana"} {
				for _, priority := range []bool{false, true} {
					r := &domain.Remito{
						NeedsProduction:  needsProduction,
						ProductionState:  prodState,
						PreparationState: domain.PreparationDespachado,
						DispatchWindow:   window,
						Priority:         priority,
					}
					name := fmt.Sprintf("prod=%v/%s window=%q prio=%v", needsProduction, prodState, window, priority)
					assert.Equal(t, workflow.BucketDispatched, workflow.Classify(r), name)
				}
			}
		}
	}
}

func TestClassify_ProductionBranch(t *testing.T) {
	tests := []struct {
		name    string
		prod    domain.ProductionState
		prep    domain.PreparationState
		window  string
		want    workflow.Bucket
	}{
		// The empty-window check runs before the ready check, so a
		// remito that production finished but no one scheduled sits in
		// awaiting-date even when preparation already flagged it Listo.
		{"listo no window", domain.ProductionListo, domain.PreparationPendiente, "", workflow.BucketAwaitingDate},
		{"listo listo no window", domain.ProductionListo, domain.PreparationListo, "", workflow.BucketAwaitingDate},
		{"listo listo with window", domain.ProductionListo, domain.PreparationListo, "Lunes Mañana", workflow.BucketReady},
		{"listo pending prep with window", domain.ProductionListo, domain.PreparationPendiente, "Martes Tarde", workflow.BucketProduction},
		{"still producing", domain.ProductionPendiente, domain.PreparationPendiente, "Lunes Mañana", workflow.BucketPending},
		{"not started", domain.ProductionNone, domain.PreparationPendiente, "", workflow.BucketPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &domain.Remito{
				NeedsProduction:  true,
				ProductionState:  tt.prod,
				PreparationState: tt.prep,
				DispatchWindow:   tt.window,
			}
			assert.Equal(t, tt.want, workflow.Classify(r))
		})
	}
}

func TestClassify_NoProductionBranch(t *testing.T) {
	tests := []struct {
		name   string
		prep   domain.PreparationState
		window string
		want   workflow.Bucket
	}{
		{"pendiente no window", domain.PreparationPendiente, "", workflow.BucketAwaitingDate},
		{"pendiente with window", domain.PreparationPendiente, "Lunes Mañana", workflow.BucketPending},
		{"listo", domain.PreparationListo, "", workflow.BucketReady},
		{"listo with window", domain.PreparationListo, "Viernes Tarde", workflow.BucketReady},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &domain.Remito{
				PreparationState: tt.prep,
				DispatchWindow:   tt.window,
			}
			assert.Equal(t, tt.want, workflow.Classify(r))
		})
	}
}

func TestClassify_NoProduction_PendingWindowBeforeListo(t *testing.T) {
	// Same precedence trap as the production branch: empty window is
	// checked first, but only for Pendiente preparation.
	r := &domain.Remito{PreparationState: domain.PreparationListo, DispatchWindow: ""}
	assert.Equal(t, workflow.BucketReady, workflow.Classify(r))
}

func TestCountedAsReady(t *testing.T) {
	tests := []struct {
		name string
		prod domain.ProductionState
		prep domain.PreparationState
		want bool
	}{
		{"production listo", domain.ProductionListo, domain.PreparationPendiente, true},
		{"dispatched", domain.ProductionPendiente, domain.PreparationDespachado, true},
		{"no production, prep pendiente", domain.ProductionNone, domain.PreparationPendiente, true},
		{"no production, prep listo", domain.ProductionNone, domain.PreparationListo, true},
		{"producing, prep pendiente", domain.ProductionPendiente, domain.PreparationPendiente, false},
		{"producing, prep listo", domain.ProductionPendiente, domain.PreparationListo, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &domain.Remito{ProductionState: tt.prod, PreparationState: tt.prep}
			assert.Equal(t, tt.want, workflow.CountedAsReady(r))
		})
	}
}

func TestCountedAsReady_DisagreesWithClassify(t *testing.T) {
	// The two predicates intentionally diverge: a fresh remito with no
	// production work classifies as awaiting-date yet already counts as
	// shipped for the category tally.
	r := &domain.Remito{
		ProductionState:  domain.ProductionNone,
		PreparationState: domain.PreparationPendiente,
		DispatchWindow:   "",
	}
	assert.Equal(t, workflow.BucketAwaitingDate, workflow.Classify(r))
	assert.True(t, workflow.CountedAsReady(r))
}
