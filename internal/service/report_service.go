package service

import (
	"context"

	"tablero/internal/catalog"
	"tablero/internal/domain"
	"tablero/internal/port"
	"tablero/internal/report"
)

// ReportService computes the dashboard aggregations. Each call loads a
// fresh snapshot of the records it needs and hands it to the pure
// functions in the report package, mirroring the recompute-on-update
// model of the live views.
type ReportService interface {
	Categories(ctx context.Context) (report.CategoryTally, error)
	Monthly(ctx context.Context) ([]report.NamedCount, error)
	Weekdays(ctx context.Context) ([]report.NamedCount, error)
	TopProducts(ctx context.Context, n int) ([]report.NamedCount, error)
	TopClients(ctx context.Context, n int) ([]report.NamedCount, error)
}

type reportService struct {
	remitoRepo port.RemitoRepository
	ticketRepo port.TicketRepository
	catalog    *catalog.Store
}

// NewReportService creates a new ReportService implementation.
func NewReportService(remitoRepo port.RemitoRepository, ticketRepo port.TicketRepository, cat *catalog.Store) ReportService {
	return &reportService{remitoRepo: remitoRepo, ticketRepo: ticketRepo, catalog: cat}
}

// Categories tallies only the active board: the production view asks
// "what still needs to be made", so delivered history is out.
func (s *reportService) Categories(ctx context.Context) (report.CategoryTally, error) {
	remitos, err := s.remitoRepo.ListActive(ctx)
	if err != nil {
		return report.CategoryTally{}, err
	}
	config, err := s.catalog.Load()
	if err != nil {
		return report.CategoryTally{}, err
	}
	return report.TallyCategories(remitos, config), nil
}

func (s *reportService) Monthly(ctx context.Context) ([]report.NamedCount, error) {
	remitos, err := s.allRemitos(ctx)
	if err != nil {
		return nil, err
	}
	tickets, err := s.ticketRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.MonthlyCounts(remitos, tickets), nil
}

func (s *reportService) Weekdays(ctx context.Context) ([]report.NamedCount, error) {
	remitos, err := s.allRemitos(ctx)
	if err != nil {
		return nil, err
	}
	tickets, err := s.ticketRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.WeekdayCounts(remitos, tickets), nil
}

func (s *reportService) TopProducts(ctx context.Context, n int) ([]report.NamedCount, error) {
	remitos, err := s.allRemitos(ctx)
	if err != nil {
		return nil, err
	}
	return report.TopProducts(remitos, n), nil
}

func (s *reportService) TopClients(ctx context.Context, n int) ([]report.NamedCount, error) {
	remitos, err := s.allRemitos(ctx)
	if err != nil {
		return nil, err
	}
	tickets, err := s.ticketRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.TopClients(remitos, tickets, n), nil
}

// allRemitos joins the active board with the delivered history; the
// sales reports cover both.
func (s *reportService) allRemitos(ctx context.Context) ([]domain.Remito, error) {
	active, err := s.remitoRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.remitoRepo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}
	return append(active, history...), nil
}
