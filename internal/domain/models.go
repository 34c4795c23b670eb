package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a staff member.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// LineItem is one structured line of a remito: a quantity and a product
// code, plus any annotation text merged onto it.
type LineItem struct {
	Code     string  `json:"code"`
	Quantity float64 `json:"quantity"`
	Note     string  `json:"note,omitempty"`
}

// RejectedItem records a partially or fully rejected line on delivery.
type RejectedItem struct {
	Code             string  `json:"code"`
	RejectedQuantity float64 `json:"rejected_quantity"`
}

// DeliveryProof is attached once a remito is delivered.
type DeliveryProof struct {
	SignerName     string `json:"signer_name"`
	SignerID       string `json:"signer_id"`
	SignatureS3Key string `json:"signature_s3_key,omitempty"`
}

// Remito is a delivery note. Number and IssueDate come from the pasted
// document text and are not guaranteed unique or well-formed; staff fix
// them by hand when the parser misses.
type Remito struct {
	ID                uuid.UUID        `db:"id" json:"id"`
	Number            string           `db:"number" json:"number"`
	IssueDate         string           `db:"issue_date" json:"issue_date"`
	Client            string           `db:"client" json:"client"`
	LineItems         LineItems        `db:"line_items" json:"line_items"`
	Annotations       string           `db:"annotations" json:"annotations"`
	NeedsProduction   bool             `db:"needs_production" json:"needs_production"`
	ProductionState   ProductionState  `db:"production_state" json:"production_state"`
	PreparationState  PreparationState `db:"preparation_state" json:"preparation_state"`
	DispatchWindow    string           `db:"dispatch_window" json:"dispatch_window"`
	Priority          bool             `db:"priority" json:"priority"`
	IsExternalCarrier bool             `db:"is_external_carrier" json:"is_external_carrier"`
	DeliveryProof     *DeliveryProof   `db:"delivery_proof" json:"delivery_proof,omitempty"`
	RejectedItems     RejectedItemList `db:"rejected_items" json:"rejected_items,omitempty"`
	CreatedBy         uuid.UUID        `db:"created_by" json:"created_by"`
	CreatedAt         time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at" json:"updated_at"`
}

// RemitoDraft is the output of the free-text ingest parser. It is not
// persisted; the client reviews it and submits a create request.
type RemitoDraft struct {
	Number      string     `json:"number"`
	IssueDate   string     `json:"issue_date"`
	Client      string     `json:"client"`
	LineItems   []LineItem `json:"line_items"`
	Annotations string     `json:"annotations"`
}

// SupportTicket is a technical-support job. Items are free text, looser
// than remito line items.
type SupportTicket struct {
	ID              uuid.UUID   `db:"id" json:"id"`
	Number          string      `db:"number" json:"number"`
	Client          string      `db:"client" json:"client"`
	Date            string      `db:"date" json:"date"`
	Items           StringList  `db:"items" json:"items"`
	State           TicketState `db:"state" json:"state"`
	WorkDescription string      `db:"work_description" json:"work_description"`
	DeliveryWindow  string      `db:"delivery_window" json:"delivery_window"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at" json:"updated_at"`
}

// PickupItem is one item on a pickup (retiro) movement.
type PickupItem struct {
	ItemName string  `json:"item_name"`
	Quantity float64 `json:"quantity"`
	Color    string  `json:"color,omitempty"`
	Note     string  `json:"note,omitempty"`
}

// Movement is a driver movement record: either a payment drop-off or a
// merchandise pickup, discriminated by Kind. Payment fields are zero for
// pickups and Items is empty for payments.
type Movement struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	Kind           MovementKind    `db:"kind" json:"kind"`
	Client         string          `db:"client" json:"client"`
	Driver         string          `db:"driver" json:"driver"`
	Date           string          `db:"date" json:"date"`
	CashAmount     float64         `db:"cash_amount" json:"cash_amount"`
	CheckAmount    float64         `db:"check_amount" json:"check_amount"`
	Reconciled     ReconciledState `db:"reconciled" json:"reconciled"`
	SealedEnvelope bool            `db:"sealed_envelope" json:"sealed_envelope"`
	Booked         BookedState     `db:"booked" json:"booked"`
	Items          PickupItemList  `db:"items" json:"items,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// CategoryConfig maps a category label to the ordered product codes it
// counts. It lives in the dashboard host's local store, not in Postgres,
// so each deployment carries its own copy.
type CategoryConfig map[string][]string

// DefaultCategoryConfig is the hardcoded seed used when nothing has been
// persisted yet.
func DefaultCategoryConfig() CategoryConfig {
	return CategoryConfig{
		"Rodados":   {"R12", "R16", "R20", "R20 MTB", "R24", "R26", "R29"},
		"Triciclos": {"TRI CLASICO", "TRI REFORZADO"},
		"Varios":    {"MONOPATIN", "CASCO"},
	}
}
