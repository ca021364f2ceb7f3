package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/leadssu-webmaster/pkg/apiErrors"
	"github.com/vfg2006/leadssu-webmaster/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeLeads       = "leads"
	CronJobTypeCommissions = "commissions"
	CronJobTypeAll         = "all"
)

// CronJob é o que o handler precisa de um agendador
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	LeadSyncService           CronJob
	CommissionSnapshotService CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.LeadSyncService != nil {
		jobs[CronJobTypeLeads] = s.LeadSyncService
	}
	if s.CommissionSnapshotService != nil {
		jobs[CronJobTypeCommissions] = s.CommissionSnapshotService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		switch cronType {
		case CronJobTypeLeads, CronJobTypeCommissions:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
				return
			}
			job.TriggerManualSync()

		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: leads, commissions, all", nil)
			return
		}

		logger.WithField("job", cronType).Info("cron: manual run triggered")

		writeJSON(w, logger, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), status)
	}
}
