package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/leadssu-webmaster/internal/api/handler/router"
	"github.com/vfg2006/leadssu-webmaster/internal/domain"
	"github.com/vfg2006/leadssu-webmaster/internal/usecases/authenticating"
	authMocks "github.com/vfg2006/leadssu-webmaster/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/leadssu-webmaster/internal/usecases/reporting"
	reportingMocks "github.com/vfg2006/leadssu-webmaster/internal/usecases/reporting/mocks"
	"github.com/vfg2006/leadssu-webmaster/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fakeCronJob struct {
	mu        sync.Mutex
	triggered int
	status    map[string]any
}

func (f *fakeCronJob) TriggerManualSync() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.triggered++
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return f.status
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authMocks.NewMockAuthenticator(ctrl)

	service.EXPECT().Login("client", "secret").Return("jwt-token", nil)

	rt := router.New(router.WithRoutes(Authentication(service)...))
	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"client_id":"client","client_secret":"secret"}`))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"jwt-token"}`, rec.Body.String())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "corpo inválido",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "credenciais inválidas",
			body:       `{"client_id":"client","client_secret":"wrong"}`,
			loginErr:   authenticating.NewClientAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "client", "Segredo incorreto"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:       "erro inesperado",
			body:       `{"client_id":"client","client_secret":"secret"}`,
			loginErr:   errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authMocks.NewMockAuthenticator(ctrl)
			if tt.loginErr != nil {
				service.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", tt.loginErr)
			}

			rt := router.New(router.WithRoutes(Authentication(service)...))
			req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeBody(t, rec)["code"])
		})
	}
}

func TestGetCommissionHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportingMocks.NewMockReporter(ctrl)

	expected := domain.CommissionFilters{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		EndDate:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local),
	}
	service.EXPECT().GetCommissionHistory(gomock.Any(), expected).Return(&domain.CommissionHistory{
		Snapshots: []domain.CommissionSnapshot{{Date: "2024-01-01"}},
		Total:     domain.CommissionSummary{CommissionApproved: 12.5},
	}, nil)

	rt := router.New(router.WithRoutes(Reporting(service)...))
	req := httptest.NewRequest(http.MethodGet, "/v1/commissions/history?start_date=2024-01-01&end_date=2024-01-31", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"commissionApproved":12.5`)
}

func TestGetStoredLeads_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "período inválido", err: reporting.ErrInvalidPeriod, wantStatus: http.StatusBadRequest},
		{name: "falha no banco", err: errors.New("db fora"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := reportingMocks.NewMockReporter(ctrl)
			service.EXPECT().GetStoredLeads(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rt := router.New(router.WithRoutes(Reporting(service)...))
			req := httptest.NewRequest(http.MethodGet, "/v1/leads", nil)
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRunCronJob(t *testing.T) {
	leads := &fakeCronJob{}
	commissions := &fakeCronJob{}
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{
		LeadSyncService:           leads,
		CommissionSnapshotService: commissions,
	})...))

	for _, target := range []string{"/v1/cron/leads/run", "/v1/cron/all/run"} {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 2, leads.triggered)
	assert.Equal(t, 1, commissions.triggered)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/unknown/run", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunCronJob_ServiceUnavailable(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{})...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/commissions/run", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetCronStatus(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{
		LeadSyncService:           &fakeCronJob{status: map[string]any{"running": false}},
		CommissionSnapshotService: &fakeCronJob{status: map[string]any{"running": true}},
	})...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"leads":{"running":false},"commissions":{"running":true}}`, rec.Body.String())
}

func TestHealthcheck(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck()...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
