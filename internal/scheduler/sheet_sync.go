package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-metrics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/funnel-metrics-api/internal/config"
	"github.com/vfg2006/funnel-metrics-api/internal/usecases/reporting"
)

// SheetSyncConfig representa a configuração do agendador de sincronização da planilha
type SheetSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SheetSyncService gerencia o agendamento e execução da sincronização da
// planilha remota: baixa o CSV publicado, reprocessa tudo e substitui a
// coleção do painel.
type SheetSyncService struct {
	scheduler           *gocron.Scheduler
	config              SheetSyncConfig
	sheetsService       sheets.SheetsIntegrator
	reporter            reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastSyncRecords     int
}

// NewSheetSyncService cria uma nova instância do serviço de sincronização da planilha
func NewSheetSyncService(
	sheetsService sheets.SheetsIntegrator,
	reporter reporting.Reporter,
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
	}).Info("Configuração do agendador de sincronização da planilha carregada")

	return &SheetSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		sheetsService: sheetsService,
		reporter:      reporter,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *SheetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização da planilha desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização da planilha")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSheet()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização da planilha: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização da planilha")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSheet executa uma rodada completa de sincronização. Somente uma
// rodada roda por vez; disparos concorrentes são ignorados.
func (s *SheetSyncService) syncSheet() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização da planilha já em andamento, ignorando")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização da planilha remota")

	records, err := s.sheetsService.LoadRecords()
	if err != nil {
		s.recordSyncFailure(err)
		logrus.WithError(err).Error("Erro ao carregar a planilha remota")
		return
	}

	if err := s.reporter.ReplaceAll(records); err != nil {
		s.recordSyncFailure(err)
		logrus.WithError(err).Error("Erro ao substituir a coleção de registros")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.lastSyncRecords = len(records)
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"records":  len(records),
	}).Info("Sincronização da planilha concluída")
}

func (s *SheetSyncService) recordSyncFailure(err error) {
	s.syncMutex.Lock()
	s.lastSyncError = err.Error()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma sincronização da planilha.
// Retorna false se já houver uma rodada em andamento.
func (s *SheetSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização da planilha já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual da planilha")
	go s.syncSheet()
	return true
}

// GetStatus retorna o status atual do agendador. Os campos de última
// sincronização são lidos sob o mesmo mutex que os protege na escrita.
func (s *SheetSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"last_sync_records":      s.lastSyncRecords,
	}
}
