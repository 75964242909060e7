package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
)

// AutoRefreshConfig representa a configuração do agendador de atualização automática
type AutoRefreshConfig struct {
	IntervalMinutes int
}

// AutoRefreshService agenda a atualização periódica do dashboard. O ciclo só
// executa de fato quando o usuário deixou o auto-refresh ligado na sessão.
type AutoRefreshService struct {
	scheduler *gocron.Scheduler
	config    AutoRefreshConfig
	session   dashboarding.Dashboarder

	refreshRunning     bool
	refreshMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewAutoRefreshService cria uma nova instância do agendador de atualização automática
func NewAutoRefreshService(session dashboarding.Dashboarder, appConfig *config.Config) *AutoRefreshService {
	refreshConfig := AutoRefreshConfig{
		IntervalMinutes: appConfig.AutoRefresh.IntervalMinutes,
	}
	if refreshConfig.IntervalMinutes <= 0 {
		refreshConfig.IntervalMinutes = 60
	}

	logrus.WithFields(logrus.Fields{
		"interval_minutes": refreshConfig.IntervalMinutes,
		"enabled_at_start": appConfig.AutoRefresh.Enabled,
	}).Info("Configuração do agendador de atualização automática carregada")

	return &AutoRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		session:   session,
	}
}

// Start inicia o agendador
func (s *AutoRefreshService) Start(ctx context.Context) error {
	logrus.WithField("interval_minutes", s.config.IntervalMinutes).
		Info("Iniciando agendador de atualização automática do dashboard")

	_, err := s.scheduler.Every(s.config.IntervalMinutes).Minutes().Do(func() {
		s.refreshDashboard(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização automática do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização automática do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDashboard executa um ciclo de atualização forçada via orquestrador
func (s *AutoRefreshService) refreshDashboard(ctx context.Context) {
	if !s.session.AutoRefreshEnabled() {
		logrus.Debug("Atualização automática desligada pelo usuário, ignorando ciclo")
		return
	}

	startTime := time.Now()

	// O mutex protege tanto a flag de execução quanto os carimbos de horário
	// lidos pelo GetStatus em outra goroutine
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização automática já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.lastRunStartedAt = startTime
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Iniciando ciclo de atualização automática do dashboard")

	if err := s.session.FetchAll(ctx, dashboarding.FetchOptions{ForceRefresh: true}); err != nil {
		logrus.WithError(err).Error("Erro no ciclo de atualização automática do dashboard")
		return
	}

	s.refreshMutex.Lock()
	s.lastRunCompletedAt = time.Now()
	s.refreshMutex.Unlock()

	logrus.WithField("duration", time.Since(startTime).String()).
		Info("Ciclo de atualização automática do dashboard concluído")
}

// TriggerManualRun dispara manualmente um ciclo de atualização. Se já houver
// um ciclo em andamento, o próprio refreshDashboard descarta o pedido.
func (s *AutoRefreshService) TriggerManualRun(ctx context.Context) {
	logrus.Info("Iniciando ciclo manual de atualização do dashboard")
	go s.refreshDashboard(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *AutoRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	startedAt := s.lastRunStartedAt
	completedAt := s.lastRunCompletedAt
	s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":       s.session.AutoRefreshEnabled(),
		"interval_minutes":      s.config.IntervalMinutes,
		"last_run_started_at":   startedAt,
		"last_run_completed_at": completedAt,
	}
}
