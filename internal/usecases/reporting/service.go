package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/repository"
	"github.com/vfg2006/leadssu-webmaster/internal/domain"
	"github.com/vfg2006/leadssu-webmaster/pkg/utils"
)

var ErrInvalidPeriod = errors.New("reporting: start date after end date")

//go:generate mockgen -source=service.go -destination=mocks/reporter_mock.go -package=mocks
type Reporter interface {
	GetStoredLeads(ctx context.Context, filters domain.LeadFilters) ([]domain.Lead, error)
	GetCommissionHistory(ctx context.Context, filters domain.CommissionFilters) (*domain.CommissionHistory, error)
}

type Service struct {
	leadRepo     repository.LeadRepository
	snapshotRepo repository.CommissionSnapshotRepository
}

func NewService(leadRepo repository.LeadRepository, snapshotRepo repository.CommissionSnapshotRepository) Reporter {
	return &Service{
		leadRepo:     leadRepo,
		snapshotRepo: snapshotRepo,
	}
}

// GetStoredLeads lê os leads já sincronizados, sem chamar o leads.su
func (s *Service) GetStoredLeads(ctx context.Context, filters domain.LeadFilters) ([]domain.Lead, error) {
	if invalidPeriod(filters.StartDate, filters.EndDate) {
		return nil, ErrInvalidPeriod
	}

	leads, err := s.leadRepo.ListLeads(ctx, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"offer_id": filters.OfferID,
			"error":    err.Error(),
		}).Error("reporting: failed to list stored leads")
		return nil, err
	}

	return leads, nil
}

// GetCommissionHistory devolve os snapshots do período e o total somado com
// arredondamento a cada passo
func (s *Service) GetCommissionHistory(ctx context.Context, filters domain.CommissionFilters) (*domain.CommissionHistory, error) {
	if invalidPeriod(filters.StartDate, filters.EndDate) {
		return nil, ErrInvalidPeriod
	}

	snapshots, err := s.snapshotRepo.List(ctx, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"offer_id": filters.OfferID,
			"error":    err.Error(),
		}).Error("reporting: failed to list commission snapshots")
		return nil, err
	}

	history := &domain.CommissionHistory{
		Snapshots: snapshots,
	}
	for _, snapshot := range snapshots {
		history.Total.CommissionRejected = utils.AddWithTwoDecimalPlace(history.Total.CommissionRejected, snapshot.Summary.CommissionRejected)
		history.Total.CommissionOpen = utils.AddWithTwoDecimalPlace(history.Total.CommissionOpen, snapshot.Summary.CommissionOpen)
		history.Total.CommissionApproved = utils.AddWithTwoDecimalPlace(history.Total.CommissionApproved, snapshot.Summary.CommissionApproved)
	}

	return history, nil
}

func invalidPeriod(start, end time.Time) bool {
	return !start.IsZero() && !end.IsZero() && start.After(end)
}
