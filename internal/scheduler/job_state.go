// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leadssu-webmaster/pkg/utils"
)

// jobState guarda o controle de execução de um job, evitando execuções simultâneas
type jobState struct {
	mu              sync.Mutex
	running         bool
	runID           string
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

// begin marca o início de uma execução. Devolve false se já houver uma em andamento.
func (j *jobState) begin() (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return "", false
	}

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("scheduler: failed to generate run id")
	}

	j.running = true
	j.runID = runID
	j.lastStartedAt = time.Now()
	return runID, true
}

func (j *jobState) finish(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.running = false
	j.lastCompletedAt = time.Now()
	j.lastError = ""
	if err != nil {
		j.lastError = err.Error()
	}
}

func (j *jobState) isRunning() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

func (j *jobState) status() map[string]any {
	j.mu.Lock()
	defer j.mu.Unlock()

	return map[string]any{
		"running":                j.running,
		"last_run_id":            j.runID,
		"last_sync_started_at":   j.lastStartedAt,
		"last_sync_completed_at": j.lastCompletedAt,
		"last_error":             j.lastError,
	}
}

// startCron agenda fn na expressão cron e para o agendador quando ctx termina
func startCron(ctx context.Context, scheduler *gocron.Scheduler, cron, name string, fn func()) error {
	_, err := scheduler.Cron(cron).Do(fn)
	if err != nil {
		return fmt.Errorf("erro ao agendar %s: %w", name, err)
	}

	scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", name).Info("scheduler: stopping job")
		scheduler.Stop()
	}()

	return nil
}
