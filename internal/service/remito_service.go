package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tablero/internal/domain"
	"tablero/internal/ingest"
	"tablero/internal/port"
	"tablero/internal/report"
	"tablero/internal/stream"
	"tablero/internal/workflow"
)

// Collection names used on the snapshot stream.
const (
	CollectionRemitos = "remitos"
	CollectionHistory = "remitos_history"
)

// RemitoView is a remito plus its derived workflow bucket.
type RemitoView struct {
	domain.Remito
	Bucket workflow.Bucket `json:"bucket"`
}

// HistoryView is a delivered remito plus a short-lived URL for its
// signature image, when one was captured.
type HistoryView struct {
	domain.Remito
	SignatureURL string `json:"signature_url,omitempty"`
}

// signatureURLExpiry bounds how long a presigned signature link stays
// valid, in seconds.
const signatureURLExpiry int64 = 15 * 60

// CreateRemitoInput carries the reviewed draft or manual form data.
type CreateRemitoInput struct {
	Number            string            `json:"number"`
	IssueDate         string            `json:"issue_date"`
	Client            string            `json:"client"`
	LineItems         []domain.LineItem `json:"line_items"`
	Annotations       string            `json:"annotations"`
	NeedsProduction   bool              `json:"needs_production"`
	DispatchWindow    string            `json:"dispatch_window"`
	Priority          bool              `json:"priority"`
	IsExternalCarrier bool              `json:"is_external_carrier"`
}

// DeliverInput carries the delivery proof. Signature is optional; a
// remito can be closed without a captured signature image.
type DeliverInput struct {
	SignerName    string
	SignerID      string
	Signature     io.Reader
	SignatureType string
}

// RemitoService is the delivery-note workflow.
type RemitoService interface {
	ParseBlock(rawHeader, rawLines, rawAnnotations string) domain.RemitoDraft
	Create(ctx context.Context, input CreateRemitoInput, createdBy uuid.UUID) (*domain.Remito, error)
	ListActive(ctx context.Context) ([]RemitoView, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Deliver(ctx context.Context, id uuid.UUID, input DeliverInput) error
	RejectItems(ctx context.Context, id uuid.UUID, items []domain.RejectedItem) error
	History(ctx context.Context) ([]domain.Remito, error)
	HistoryDetail(ctx context.Context, id uuid.UUID) (*HistoryView, error)
	DeleteFromHistory(ctx context.Context, id uuid.UUID) error
	ExportHistory(ctx context.Context, w io.Writer) error
}

type remitoService struct {
	repo       port.RemitoRepository
	signatures port.SignatureStore
	notifier   port.Notifier
	hub        *stream.Hub
}

// NewRemitoService creates a new RemitoService implementation.
func NewRemitoService(
	repo port.RemitoRepository,
	signatures port.SignatureStore,
	notifier port.Notifier,
	hub *stream.Hub,
) RemitoService {
	return &remitoService{repo: repo, signatures: signatures, notifier: notifier, hub: hub}
}

func (s *remitoService) ParseBlock(rawHeader, rawLines, rawAnnotations string) domain.RemitoDraft {
	return ingest.ParseDeliveryBlock(rawHeader, rawLines, rawAnnotations)
}

func (s *remitoService) Create(ctx context.Context, input CreateRemitoInput, createdBy uuid.UUID) (*domain.Remito, error) {
	if !domain.ValidDispatchWindow(input.DispatchWindow) {
		return nil, domain.ErrInvalidWindow
	}

	productionState := domain.ProductionNone
	if input.NeedsProduction {
		productionState = domain.ProductionPendiente
	}

	rem := &domain.Remito{
		ID:                uuid.New(),
		Number:            input.Number,
		IssueDate:         input.IssueDate,
		Client:            input.Client,
		LineItems:         domain.LineItems(input.LineItems),
		Annotations:       input.Annotations,
		NeedsProduction:   input.NeedsProduction,
		ProductionState:   productionState,
		PreparationState:  domain.PreparationPendiente,
		DispatchWindow:    input.DispatchWindow,
		Priority:          input.Priority,
		IsExternalCarrier: input.IsExternalCarrier,
		CreatedBy:         createdBy,
	}

	if err := s.repo.Create(ctx, rem); err != nil {
		return nil, err
	}
	s.publishActive(ctx)
	return rem, nil
}

func (s *remitoService) ListActive(ctx context.Context) ([]RemitoView, error) {
	remitos, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return classifyAll(remitos), nil
}

// patchValidators check individual patch fields before they reach SQL.
var patchValidators = map[string]func(interface{}) error{
	"dispatch_window": func(v interface{}) error {
		w, ok := v.(string)
		if !ok || !domain.ValidDispatchWindow(w) {
			return domain.ErrInvalidWindow
		}
		return nil
	},
	"production_state": func(v interface{}) error {
		switch domain.ProductionState(fmt.Sprint(v)) {
		case domain.ProductionNone, domain.ProductionPendiente, domain.ProductionListo:
			return nil
		}
		return domain.ErrInvalidState
	},
	"preparation_state": func(v interface{}) error {
		switch domain.PreparationState(fmt.Sprint(v)) {
		case domain.PreparationPendiente, domain.PreparationListo, domain.PreparationDespachado:
			return nil
		}
		// Entregado travels through Deliver, never through a patch.
		return domain.ErrInvalidState
	},
}

func (s *remitoService) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	for key, val := range fields {
		if validate, ok := patchValidators[key]; ok {
			if err := validate(val); err != nil {
				return err
			}
		}
		// JSONB columns arrive as decoded JSON; re-encode for the driver.
		if key == "line_items" || key == "rejected_items" {
			encoded, err := json.Marshal(val)
			if err != nil {
				return fmt.Errorf("encoding %s: %w", key, err)
			}
			fields[key] = encoded
		}
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return err
	}

	if state, ok := fields["preparation_state"]; ok && fmt.Sprint(state) == string(domain.PreparationDespachado) {
		s.notifyDispatch(id)
	}

	s.publishActive(ctx)
	return nil
}

func (s *remitoService) Deliver(ctx context.Context, id uuid.UUID, input DeliverInput) error {
	rem, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRemitoNotFound) {
			if _, histErr := s.repo.GetHistoryByID(ctx, id); histErr == nil {
				return domain.ErrRemitoDelivered
			}
		}
		return err
	}

	proof := &domain.DeliveryProof{
		SignerName: input.SignerName,
		SignerID:   input.SignerID,
	}

	if input.Signature != nil {
		key := fmt.Sprintf("firmas/%s", rem.ID)
		if err := s.signatures.Upload(ctx, key, input.SignatureType, input.Signature); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrProofUploadFailed, err)
		}
		proof.SignatureS3Key = key
	}

	rem.DeliveryProof = proof
	rem.PreparationState = domain.PreparationEntregado

	if err := s.repo.MoveToHistory(ctx, rem); err != nil {
		return err
	}

	s.publishActive(ctx)
	s.publishHistory(ctx)
	return nil
}

func (s *remitoService) RejectItems(ctx context.Context, id uuid.UUID, items []domain.RejectedItem) error {
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding rejected items: %w", err)
	}
	if err := s.repo.UpdateFields(ctx, id, map[string]interface{}{"rejected_items": encoded}); err != nil {
		return err
	}
	s.publishActive(ctx)
	return nil
}

func (s *remitoService) History(ctx context.Context) ([]domain.Remito, error) {
	return s.repo.ListHistory(ctx)
}

func (s *remitoService) HistoryDetail(ctx context.Context, id uuid.UUID) (*HistoryView, error) {
	rem, err := s.repo.GetHistoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &HistoryView{Remito: *rem}
	if rem.DeliveryProof != nil && rem.DeliveryProof.SignatureS3Key != "" {
		url, err := s.signatures.PresignedURL(ctx, rem.DeliveryProof.SignatureS3Key, signatureURLExpiry)
		if err != nil {
			return nil, fmt.Errorf("signing signature url: %w", err)
		}
		view.SignatureURL = url
	}
	return view, nil
}

func (s *remitoService) DeleteFromHistory(ctx context.Context, id uuid.UUID) error {
	rem, err := s.repo.GetHistoryByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteFromHistory(ctx, id); err != nil {
		return err
	}

	// The row is gone either way; a leftover S3 object only gets logged.
	if rem.DeliveryProof != nil && rem.DeliveryProof.SignatureS3Key != "" {
		if err := s.signatures.Delete(ctx, rem.DeliveryProof.SignatureS3Key); err != nil {
			log.Warn().Err(err).Str("remito", id.String()).Msg("deleting signature object failed")
		}
	}

	s.publishHistory(ctx)
	return nil
}

func (s *remitoService) ExportHistory(ctx context.Context, w io.Writer) error {
	remitos, err := s.repo.ListHistory(ctx)
	if err != nil {
		return err
	}
	return report.WriteHistoryXLSX(w, remitos)
}

// notifyDispatch fires the dispatch notice without blocking the write
// path. A failed notice only gets logged: the dispatch itself already
// happened and the snapshot stream is the source of truth.
func (s *remitoService) notifyDispatch(id uuid.UUID) {
	go func() {
		ctx := context.Background()
		rem, err := s.repo.GetByID(ctx, id)
		if err != nil {
			log.Warn().Err(err).Str("remito", id.String()).Msg("dispatch notice: reload failed")
			return
		}
		if err := s.notifier.SendDispatchNotice(ctx, rem); err != nil {
			log.Warn().Err(err).Str("remito", id.String()).Msg("dispatch notice failed")
		}
	}()
}

func (s *remitoService) publishActive(ctx context.Context) {
	remitos, err := s.repo.ListActive(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("remito snapshot refresh failed")
		return
	}
	s.hub.Publish(CollectionRemitos, classifyAll(remitos))
}

func (s *remitoService) publishHistory(ctx context.Context) {
	remitos, err := s.repo.ListHistory(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("history snapshot refresh failed")
		return
	}
	s.hub.Publish(CollectionHistory, remitos)
}

func classifyAll(remitos []domain.Remito) []RemitoView {
	views := make([]RemitoView, len(remitos))
	for i := range remitos {
		views[i] = RemitoView{Remito: remitos[i], Bucket: workflow.Classify(&remitos[i])}
	}
	return views
}
