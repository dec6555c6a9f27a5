package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-metrics-api/internal/domain"
	"github.com/vfg2006/funnel-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/funnel-metrics-api/pkg/apiErrors"
)

type RecordsResponse struct {
	Records []*domain.DailyRecord `json:"records"`
	Total   int                   `json:"total"`
}

// ListRecords retorna os registros diários, opcionalmente limitados ao
// intervalo informado em ?from=YYYY-MM-DD&to=YYYY-MM-DD.
func ListRecords(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")

		records, err := service.Records(from, to)
		if err != nil {
			handleReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RecordsResponse{
			Records: records,
			Total:   len(records),
		})
	}
}

// GetRecordsSummary agrega os registros do intervalo nos totais do período.
func GetRecordsSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")

		summary, err := service.Summary(from, to)
		if err != nil {
			handleReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// UpsertManualEntry funde os campos digitados no registro da data e
// devolve o registro já recalculado.
func UpsertManualEntry(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := httprouter.ParamsFromContext(r.Context()).ByName("date")
		if date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data não fornecida", nil)
			return
		}

		var entry domain.ManualEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		record, err := service.UpsertManualEntry(date, &entry)
		if err != nil {
			handleReportingError(w, err)
			return
		}

		logrus.WithField("date", date).Info("Registro diário atualizado manualmente")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(record)
	}
}

// handleReportingError mapeia os erros do serviço de registros para as
// respostas padronizadas da API.
func handleReportingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporting.ErrInvalidDate), errors.Is(err, reporting.ErrInvalidRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateOrRange, err.Error(), nil)

	case errors.Is(err, reporting.ErrEmptyEntry):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Erro inesperado no serviço de registros")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao consultar registros", nil)
	}
}
