package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-metrics-api/internal/domain"
	"github.com/vfg2006/funnel-metrics-api/internal/usecases/reporting"
)

func TestListRecordsEncodesCollection(t *testing.T) {
	reporter := reporting.NewService()

	first := domain.NewDailyRecord("2025-01-01")
	first.Spend = 1000
	require.NoError(t, reporter.ReplaceAll([]*domain.DailyRecord{
		first,
		domain.NewDailyRecord("2025-01-02"),
	}))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/records?from=2025-01-01&to=2025-01-31", nil)

	ListRecords(reporter).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var response RecordsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, 2, response.Total)
	assert.Equal(t, "2025-01-01", response.Records[0].Date)
	assert.Equal(t, 1000.0, response.Records[0].Spend)
}

func TestListRecordsInvalidRange(t *testing.T) {
	reporter := reporting.NewService()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/records?from=2025-02-01&to=2025-01-01", nil)

	ListRecords(reporter).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "REC_002", body["code"])
}

func TestGetRecordsSummaryEncodesTotals(t *testing.T) {
	reporter := reporting.NewService()

	record := domain.NewDailyRecord("2025-01-01")
	record.Spend = 1000
	record.Leads = 10
	record.Revenue = 3000
	require.NoError(t, reporter.ReplaceAll([]*domain.DailyRecord{record}))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/records/summary", nil)

	GetRecordsSummary(reporter).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var summary domain.PeriodSummary
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.Days)
	assert.Equal(t, 1000.0, summary.TotalSpend)
	assert.Equal(t, 3.0, summary.OverallROAS)
}

func TestUpsertManualEntryDecodesBody(t *testing.T) {
	reporter := reporting.NewService()

	body := strings.NewReader(`{"spend": 1000, "facturado": 5000}`)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/v1/records/2025-03-10", body)
	request = requestWithRouteParam(request, "date", "2025-03-10")

	UpsertManualEntry(reporter).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var record domain.DailyRecord
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &record))
	assert.Equal(t, "2025-03-10", record.Date)
	assert.Equal(t, 5.0, record.ROAS)
}
