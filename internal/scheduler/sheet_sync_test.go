package scheduler

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sheetsmocks "github.com/vfg2006/funnel-metrics-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/funnel-metrics-api/internal/config"
	"github.com/vfg2006/funnel-metrics-api/internal/domain"
	"github.com/vfg2006/funnel-metrics-api/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

func newSheetSyncFixture(t *testing.T) (*SheetSyncService, *sheetsmocks.MockSheetsIntegrator, *reporting.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSheets := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	reporter := reporting.NewService()

	appConfig := &config.Config{
		SheetSync: config.SheetSync{
			CronSchedule: "0 7 * * *",
			Enabled:      true,
		},
	}

	return NewSheetSyncService(mockSheets, reporter, appConfig), mockSheets, reporter
}

func TestSyncSheetReplacesCollection(t *testing.T) {
	service, mockSheets, reporter := newSheetSyncFixture(t)

	loaded := []*domain.DailyRecord{
		domain.NewDailyRecord("2025-01-01"),
		domain.NewDailyRecord("2025-01-02"),
	}

	mockSheets.EXPECT().
		LoadRecords().
		Return(loaded, nil)

	service.syncSheet()

	records, err := reporter.Records("", "")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	status := service.GetStatus()
	assert.Equal(t, 2, status["last_sync_records"])
	assert.Equal(t, "", status["last_sync_error"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestSyncSheetKeepsCollectionOnFetchError(t *testing.T) {
	service, mockSheets, reporter := newSheetSyncFixture(t)

	require.NoError(t, reporter.ReplaceAll([]*domain.DailyRecord{
		domain.NewDailyRecord("2025-01-01"),
	}))

	mockSheets.EXPECT().
		LoadRecords().
		Return(nil, errors.New("planilha indisponível"))

	service.syncSheet()

	// A coleção anterior permanece intacta
	records, err := reporter.Records("", "")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	status := service.GetStatus()
	assert.Equal(t, "planilha indisponível", status["last_sync_error"])
}

func TestTriggerManualSyncIgnoresConcurrentRuns(t *testing.T) {
	service, _, _ := newSheetSyncFixture(t)

	// Simula uma rodada em andamento
	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	assert.False(t, service.TriggerManualSync())
}

func TestGetStatusConcurrentWithSync(t *testing.T) {
	service, mockSheets, _ := newSheetSyncFixture(t)

	mockSheets.EXPECT().
		LoadRecords().
		Return([]*domain.DailyRecord{domain.NewDailyRecord("2025-01-01")}, nil).
		AnyTimes()

	// Leituras de status durante rodadas em andamento não podem disputar
	// com as escritas dos campos de última sincronização
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.syncSheet()
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = service.GetStatus()
			}
		}()
	}
	wg.Wait()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "", status["last_sync_error"])
}

func TestGetStatusReportsConfiguration(t *testing.T) {
	service, _, _ := newSheetSyncFixture(t)

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 7 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
}
