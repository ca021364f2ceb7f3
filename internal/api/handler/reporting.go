package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/leadssu-webmaster/internal/usecases/reporting"
	"github.com/vfg2006/leadssu-webmaster/pkg/apiErrors"
	"github.com/vfg2006/leadssu-webmaster/pkg/log"
)

// GetStoredLeads lista os leads gravados pela sincronização
func GetStoredLeads(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := leadFiltersFromRequest(r, false)
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		leads, err := service.GetStoredLeads(r.Context(), filters)
		if err != nil {
			writeReportingError(w, logger, err)
			return
		}

		writeJSON(w, logger, leads)
	})
}

func GetCommissionHistory(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := commissionFiltersFromRequest(r, false)
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		history, err := service.GetCommissionHistory(r.Context(), filters)
		if err != nil {
			writeReportingError(w, logger, err)
			return
		}

		logger.WithField("snapshot_count", len(history.Snapshots)).Debug("reporting: commission history retrieved")
		writeJSON(w, logger, history)
	})
}

func writeReportingError(w http.ResponseWriter, logger log.Logger, err error) {
	if errors.Is(err, reporting.ErrInvalidPeriod) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return
	}

	logger.WithField("error", err.Error()).Error("reporting: failed to read repository")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o banco de dados", nil)
}
