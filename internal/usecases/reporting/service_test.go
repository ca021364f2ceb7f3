package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/repository/mocks"
	"github.com/vfg2006/leadssu-webmaster/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetCommissionHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	leadRepo := mocks.NewMockLeadRepository(ctrl)
	snapshotRepo := mocks.NewMockCommissionSnapshotRepository(ctrl)
	service := NewService(leadRepo, snapshotRepo)

	filters := domain.CommissionFilters{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		EndDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local),
	}

	snapshotRepo.EXPECT().List(gomock.Any(), filters).Return([]domain.CommissionSnapshot{
		{Date: "2024-01-01", Summary: domain.CommissionSummary{CommissionOpen: 10.005, CommissionApproved: 0.1}},
		{Date: "2024-01-02", Summary: domain.CommissionSummary{CommissionOpen: 10.005, CommissionApproved: 0.2}},
	}, nil)

	history, err := service.GetCommissionHistory(context.Background(), filters)
	require.NoError(t, err)

	assert.Len(t, history.Snapshots, 2)
	assert.Equal(t, domain.CommissionSummary{CommissionOpen: 20.02, CommissionApproved: 0.3}, history.Total)
}

func TestService_GetCommissionHistoryInvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewService(mocks.NewMockLeadRepository(ctrl), mocks.NewMockCommissionSnapshotRepository(ctrl))

	_, err := service.GetCommissionHistory(context.Background(), domain.CommissionFilters{
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local),
		EndDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
	})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestService_GetStoredLeads(t *testing.T) {
	ctrl := gomock.NewController(t)
	leadRepo := mocks.NewMockLeadRepository(ctrl)
	service := NewService(leadRepo, mocks.NewMockCommissionSnapshotRepository(ctrl))

	filters := domain.LeadFilters{OfferID: 10}
	leadRepo.EXPECT().ListLeads(gomock.Any(), filters).Return([]domain.Lead{{OrderID: 1, OfferID: 10}}, nil)

	leads, err := service.GetStoredLeads(context.Background(), filters)
	require.NoError(t, err)
	assert.Len(t, leads, 1)

	leadRepo.EXPECT().ListLeads(gomock.Any(), filters).Return(nil, errors.New("connection refused"))

	leads, err = service.GetStoredLeads(context.Background(), filters)
	assert.Nil(t, leads)
	assert.Error(t, err)
}
