package domain

// UserRole defines the staff roles. Role is resolved once at login and
// carried in the session token.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleProduccion UserRole = "produccion"
)

// PreparationState is the overall fulfillment state of a remito,
// independent of the production axis.
type PreparationState string

const (
	PreparationPendiente  PreparationState = "Pendiente"
	PreparationListo      PreparationState = "Listo"
	PreparationDespachado PreparationState = "Despachado"
	PreparationEntregado  PreparationState = "Entregado"
)

// ProductionState tracks the assembly step. Only meaningful when the
// remito has NeedsProduction set; empty otherwise.
type ProductionState string

const (
	ProductionNone      ProductionState = ""
	ProductionPendiente ProductionState = "Pendiente"
	ProductionListo     ProductionState = "Listo"
)

// TicketState is the support ticket lifecycle.
type TicketState string

const (
	TicketPendiente  TicketState = "Pendiente"
	TicketEnProgreso TicketState = "En progreso"
	TicketResuelto   TicketState = "Resuelto"
	TicketEntregado  TicketState = "Entregado"
)

// MovementKind discriminates the two record shapes sharing the
// movements collection.
type MovementKind string

const (
	MovementPayment MovementKind = "pago"
	MovementPickup  MovementKind = "retiro"
)

// ReconciledState tracks cash/check control of a payment record.
type ReconciledState string

const (
	ReconciledAControlar ReconciledState = "A Controlar"
	ReconciledControlado ReconciledState = "Controlado"
)

// BookedState tracks whether a controlled payment has been entered in
// the books. Empty until booked.
type BookedState string

const (
	BookedNone       BookedState = ""
	BookedRegistrado BookedState = "Registrado"
)

// DispatchWindows is the fixed enumeration of weekday/half-day delivery
// slots. A remito or resolved ticket either has one of these or "".
var DispatchWindows = []string{
	"Lunes Mañana", "Lunes Tarde",
	"Martes Mañana", "Martes Tarde",
	"Miércoles Mañana", "Miércoles Tarde",
	"Jueves Mañana", "Jueves Tarde",
	"Viernes Mañana", "Viernes Tarde",
}

// ValidDispatchWindow reports whether w is one of the fixed slots or empty.
func ValidDispatchWindow(w string) bool {
	if w == "" {
		return true
	}
	for _, s := range DispatchWindows {
		if s == w {
			return true
		}
	}
	return false
}
