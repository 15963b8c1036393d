package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/rh-dashboard-api/internal/config"
	"github.com/vfg2006/rh-dashboard-api/internal/domain"
)

// SheetSyncConfig representa a configuração do agendador de sincronização de planilhas
type SheetSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SheetSyncStatus é o retrato do agendador exposto pela API de cron.
type SheetSyncStatus struct {
	Enabled             bool       `json:"enabled"`
	CronSchedule        string     `json:"cron_schedule"`
	Running             bool       `json:"running"`
	LastSyncStartedAt   *time.Time `json:"last_sync_started_at,omitempty"`
	LastSyncCompletedAt *time.Time `json:"last_sync_completed_at,omitempty"`
	LastSyncErrors      int        `json:"last_sync_errors"`
}

// SheetSyncService gerencia o agendamento e execução da sincronização das
// planilhas de origem para o cache de snapshots. Cada tentativa reserva seu
// token antes de buscar a matriz: se duas tentativas correrem em paralelo, a
// gravação com token menor perde e é descartada pelo repositório.
type SheetSyncService struct {
	scheduler           *gocron.Scheduler
	config              SheetSyncConfig
	source              sheetsource.Source
	snapshotRepo        repository.SnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncErrors      int
}

// NewSheetSyncService cria uma nova instância do serviço de sincronização de planilhas
func NewSheetSyncService(
	source sheetsource.Source,
	snapshotRepo repository.SnapshotRepository,
	appConfig *config.Config,
) *SheetSyncService {
	syncConfig := SheetSyncConfig{
		CronSchedule: appConfig.SheetSync.CronSchedule,
		SyncEnabled:  appConfig.SheetSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de planilhas carregada")

	return &SheetSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		source:       source,
		snapshotRepo: snapshotRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *SheetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de planilhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de planilhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllReports(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de planilhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara a sincronização de um relatório fora do agendamento. Usada
// pela rota de cron manual da API.
func (s *SheetSyncService) RunNow(ctx context.Context, reportType domain.ReportType) error {
	logrus.WithField("report", reportType).Info("Sincronização manual de planilha solicitada")
	return s.syncReport(ctx, reportType)
}

// Status retorna o estado corrente do agendador
func (s *SheetSyncService) Status() SheetSyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SheetSyncStatus{
		Enabled:        s.config.SyncEnabled,
		CronSchedule:   s.config.CronSchedule,
		Running:        s.syncRunning,
		LastSyncErrors: s.lastSyncErrors,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastSyncStartedAt = &startedAt
	}

	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastSyncCompletedAt = &completedAt
	}

	return status
}

// syncAllReports sincroniza todos os tipos de relatório conhecidos
func (s *SheetSyncService) syncAllReports(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de planilhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de planilhas para todos os relatórios")

	syncErrors := 0
	for _, reportType := range domain.ReportTypes {
		if err := s.syncReport(ctx, reportType); err != nil {
			syncErrors++
			logrus.WithError(err).WithField("report", reportType).
				Error("Erro ao sincronizar planilha do relatório")
		}
	}

	s.syncMutex.Lock()
	s.lastSyncErrors = syncErrors
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"reports": len(domain.ReportTypes),
		"errors":  syncErrors,
	}).Info("Sincronização de planilhas concluída")
}

// syncReport reserva o token, busca a matriz e grava o snapshot. A ordem
// importa: o token marca a posição desta tentativa na corrida antes da busca
// demorada começar, então uma tentativa lenta nunca sobrescreve o resultado
// de uma mais nova.
func (s *SheetSyncService) syncReport(ctx context.Context, reportType domain.ReportType) error {
	token, err := s.snapshotRepo.NextSyncToken(reportType)
	if err != nil {
		return fmt.Errorf("erro ao reservar token de sincronização: %w", err)
	}

	matrix, err := s.source.FetchReport(ctx, reportType)
	if err != nil {
		return fmt.Errorf("erro ao buscar matriz da fonte: %w", err)
	}

	snapshot := &domain.MatrixSnapshot{
		ReportType: reportType,
		SyncToken:  token,
		Matrix:     matrix,
		FetchedAt:  time.Now(),
	}

	if err := s.snapshotRepo.Save(snapshot); err != nil {
		return fmt.Errorf("erro ao gravar snapshot: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"report":     reportType,
		"sync_token": token,
		"rows":       len(matrix),
	}).Info("Snapshot do relatório sincronizado")

	return nil
}
