package reporting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/funnel-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 { return &f }

func seedService(dates ...string) *Service {
	service := NewService()
	records := make([]*domain.DailyRecord, 0, len(dates))
	for _, date := range dates {
		records = append(records, domain.NewDailyRecord(date))
	}
	_ = service.ReplaceAll(records)
	return service
}

func TestRecordsOrderingAndRange(t *testing.T) {
	service := seedService("2025-01-03", "2025-01-01", "2025-01-02")

	tests := []struct {
		name     string
		from     string
		to       string
		expected []string
	}{
		{
			name:     "Sem filtro retorna tudo ordenado",
			expected: []string{"2025-01-01", "2025-01-02", "2025-01-03"},
		},
		{
			name:     "Filtro inferior",
			from:     "2025-01-02",
			expected: []string{"2025-01-02", "2025-01-03"},
		},
		{
			name:     "Filtro superior",
			to:       "2025-01-02",
			expected: []string{"2025-01-01", "2025-01-02"},
		},
		{
			name:     "Intervalo fechado",
			from:     "2025-01-02",
			to:       "2025-01-02",
			expected: []string{"2025-01-02"},
		},
		{
			name:     "Intervalo sem registros",
			from:     "2026-01-01",
			to:       "2026-12-31",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := service.Records(tt.from, tt.to)
			require.NoError(t, err)

			dates := make([]string, 0, len(records))
			for _, r := range records {
				dates = append(dates, r.Date)
			}
			assert.Equal(t, tt.expected, dates)
		})
	}
}

func TestRecordsInvalidRange(t *testing.T) {
	service := seedService("2025-01-01")

	_, err := service.Records("03/01/2025", "")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = service.Records("2025-02-01", "2025-01-01")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestUpsertManualEntryCreatesAndRecomputes(t *testing.T) {
	service := NewService()

	entry := &domain.ManualEntry{
		Spend:       floatPtr(10000),
		Leads:       floatPtr(0),
		AgendasAut:  floatPtr(2),
		AgendasSet:  floatPtr(1),
		Asistencias: floatPtr(2),
		Cierres:     floatPtr(1),
		Ventas:      floatPtr(1),
		Facturado:   floatPtr(50000),
	}

	record, err := service.UpsertManualEntry("2025-03-10", entry)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, 3.0, record.AgendasTotal)
	assert.InDelta(t, 66.666, record.AsisRate, 0.001)
	assert.Equal(t, 50.0, record.CCRate)
	assert.Equal(t, 0.0, record.LCRate)
	assert.Equal(t, 40000.0, record.Beneficio)
	assert.Equal(t, 5.0, record.ROAS)
	assert.Equal(t, 400.0, record.ROI)

	// O registro ficou na coleção, visível pelas consultas
	stored, err := service.RecordByDate("2025-03-10")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 50000.0, stored.Facturado)
}

func TestUpsertManualEntryMergesExisting(t *testing.T) {
	service := NewService()

	_, err := service.UpsertManualEntry("2025-03-10", &domain.ManualEntry{
		Spend: floatPtr(1000),
		Leads: floatPtr(10),
	})
	require.NoError(t, err)

	// Segunda edição informa só o faturamento; spend e leads persistem
	record, err := service.UpsertManualEntry("2025-03-10", &domain.ManualEntry{
		Facturado: floatPtr(5000),
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, record.Spend)
	assert.Equal(t, 10.0, record.Leads)
	assert.Equal(t, 5000.0, record.Revenue)
	assert.Equal(t, 5.0, record.ROAS)
}

func TestUpsertManualEntryValidation(t *testing.T) {
	service := NewService()

	_, err := service.UpsertManualEntry("10/03/2025", &domain.ManualEntry{Spend: floatPtr(1)})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = service.UpsertManualEntry("2025-03-10", &domain.ManualEntry{})
	assert.ErrorIs(t, err, ErrEmptyEntry)

	_, err = service.UpsertManualEntry("2025-03-10", nil)
	assert.ErrorIs(t, err, ErrEmptyEntry)
}

func TestUpsertManualEntryWritesBehind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDailyRecordRepository(ctrl)
	mockRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(record *domain.DailyRecord) error {
			assert.Equal(t, "2025-03-10", record.Date)
			assert.Equal(t, 1000.0, record.Spend)
			return nil
		})

	service := NewService().WithRepository(mockRepo)

	_, err := service.UpsertManualEntry("2025-03-10", &domain.ManualEntry{Spend: floatPtr(1000)})
	require.NoError(t, err)
}

func TestUpsertManualEntrySurvivesStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDailyRecordRepository(ctrl)
	mockRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(errors.New("conexão recusada"))

	service := NewService().WithRepository(mockRepo)

	record, err := service.UpsertManualEntry("2025-03-10", &domain.ManualEntry{Spend: floatPtr(1000)})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, record.Spend)
}

func TestReplaceAllPersistsCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []*domain.DailyRecord{
		domain.NewDailyRecord("2025-01-01"),
		domain.NewDailyRecord("2025-01-02"),
	}

	mockRepo := mocks.NewMockDailyRecordRepository(ctrl)
	mockRepo.EXPECT().
		ReplaceAll(records).
		Return(nil)

	service := NewService().WithRepository(mockRepo)
	require.NoError(t, service.ReplaceAll(records))

	stored, err := service.Records("", "")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestHydrateFromRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := domain.NewDailyRecord("2025-01-01")
	stored.Spend = 500

	mockRepo := mocks.NewMockDailyRecordRepository(ctrl)
	mockRepo.EXPECT().
		ListAll().
		Return([]*domain.DailyRecord{stored}, nil)

	service := NewService().WithRepository(mockRepo)
	require.NoError(t, service.Hydrate())

	record, err := service.RecordByDate("2025-01-01")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 500.0, record.Spend)
}

func TestHydrateWithoutRepository(t *testing.T) {
	assert.ErrorIs(t, NewService().Hydrate(), ErrStoreDisabled)
}

func TestRecordByDateReadsThroughStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := domain.NewDailyRecord("2025-04-01")
	stored.Spend = 250

	mockRepo := mocks.NewMockDailyRecordRepository(ctrl)
	mockRepo.EXPECT().
		GetByDate("2025-04-01").
		Return(stored, nil)

	service := NewService().WithRepository(mockRepo)

	record, err := service.RecordByDate("2025-04-01")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 250.0, record.Spend)
}

func TestRecordsDegradeToStoreWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDailyRecordRepository(ctrl)
	mockRepo.EXPECT().
		ListByRange("2025-01-01", "2025-01-31").
		Return([]*domain.DailyRecord{
			domain.NewDailyRecord("2025-01-05"),
			domain.NewDailyRecord("2025-01-10"),
		}, nil)

	service := NewService().WithRepository(mockRepo)

	records, err := service.Records("2025-01-01", "2025-01-31")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-01-05", records[0].Date)
}

func TestRecordsPreferMemoryOverStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa de leitura: com a coleção populada o banco
	// não é consultado
	mockRepo := mocks.NewMockDailyRecordRepository(ctrl)
	mockRepo.EXPECT().
		ReplaceAll(gomock.Any()).
		Return(nil)

	service := NewService().WithRepository(mockRepo)
	require.NoError(t, service.ReplaceAll([]*domain.DailyRecord{domain.NewDailyRecord("2025-01-01")}))

	records, err := service.Records("", "")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSummaryAggregatesPeriod(t *testing.T) {
	service := NewService()

	first := domain.NewDailyRecord("2025-01-01")
	first.Spend = 1000
	first.Leads = 10
	first.Revenue = 3000

	second := domain.NewDailyRecord("2025-01-02")
	second.Spend = 2000
	second.Leads = 30
	second.Revenue = 6000

	require.NoError(t, service.ReplaceAll([]*domain.DailyRecord{first, second}))

	summary, err := service.Summary("", "")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Days)
	assert.Equal(t, 3000.0, summary.TotalSpend)
	assert.Equal(t, 40.0, summary.TotalLeads)
	assert.Equal(t, 9000.0, summary.TotalRevenue)
	assert.Equal(t, 75.0, summary.OverallCPL)
	assert.Equal(t, 3.0, summary.OverallROAS)
}

func TestRecordsReturnsCopies(t *testing.T) {
	service := seedService("2025-01-01")

	records, err := service.Records("", "")
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Mutação no resultado não pode vazar para a coleção interna
	records[0].Spend = 999

	stored, err := service.RecordByDate("2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.Spend)
}
