package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/integrator/leadssu/leadssuclient"
	"github.com/vfg2006/leadssu-webmaster/pkg/apiErrors"
	"github.com/vfg2006/leadssu-webmaster/pkg/log"
	"github.com/vfg2006/leadssu-webmaster/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errMissingDate = errors.New("start_date e end_date são obrigatórios")

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithField("error", err.Error()).Error("http: failed to encode response")
	}
}

// writeServiceError traduz falhas do leads.su para 502 e o resto para 500
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, leadssuclient.ErrRequestFailed) {
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha ao consultar o leads.su", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
}

// queryInt lê um inteiro opcional da query string; ausente vale 0
func queryInt(r *http.Request, name string) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, errors.Errorf("%s inválido: %q", name, value)
	}

	return n, nil
}

// queryIntList lê uma lista separada por vírgula, ex: offer_ids=1,2,3
func queryIntList(r *http.Request, name string) ([]int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return nil, nil
	}

	var ids []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, errors.Errorf("%s inválido: %q", name, part)
		}
		ids = append(ids, n)
	}

	return ids, nil
}

// queryPeriod lê start_date e end_date (YYYY-MM-DD). Com required, ambos precisam estar presentes.
func queryPeriod(r *http.Request, required bool) (time.Time, time.Time, error) {
	rawStart := r.URL.Query().Get("start_date")
	rawEnd := r.URL.Query().Get("end_date")

	if required && (rawStart == "" || rawEnd == "") {
		return time.Time{}, time.Time{}, errMissingDate
	}

	startDate, err := utils.ParseDate(rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(err, "start_date inválido")
	}

	endDate, err := utils.ParseDate(rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(err, "end_date inválido")
	}

	if !startDate.IsZero() && !endDate.IsZero() && startDate.After(*endDate) {
		return time.Time{}, time.Time{}, errors.New("start_date posterior a end_date")
	}

	return *startDate, *endDate, nil
}

func writeQueryError(w http.ResponseWriter, logger log.Logger, err error) {
	logger.WithField("error", err.Error()).Warn("http: invalid query parameters")

	code := apiErrors.ErrInvalidFormat
	if errors.Is(err, errMissingDate) {
		code = apiErrors.ErrMissingRequiredData
	}
	apiErrors.WriteError(w, code, err.Error(), nil)
}
