package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-metrics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/funnel-metrics-api/internal/domain"
	"github.com/vfg2006/funnel-metrics-api/internal/usecases/importing"
	"github.com/vfg2006/funnel-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/funnel-metrics-api/pkg/apiErrors"
)

// Limite de upload de planilhas (texto ou .xlsx)
const maxImportBodySize = 10 << 20 // 10 MiB

type ImportRequest struct {
	Text string `json:"text"`
}

type ImportResponse struct {
	Records []*domain.DailyRecord `json:"records"`
	Total   int                   `json:"total"`
}

// ImportPaste processa texto colado de planilha (tab ou vírgula) e
// substitui a coleção do painel pelo resultado.
func ImportPaste(importer importing.Importer, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, ok := readImportText(w, r)
		if !ok {
			return
		}

		records, err := importer.ParsePasted(text)
		if err != nil {
			handleImportError(w, err)
			return
		}

		finishImport(w, reporter, records, "paste")
	}
}

// ImportCSV processa um export CSV enviado como texto.
func ImportCSV(importer importing.Importer, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, ok := readImportText(w, r)
		if !ok {
			return
		}

		records, err := importer.ParseCSV(text)
		if err != nil {
			handleImportError(w, err)
			return
		}

		finishImport(w, reporter, records, "csv")
	}
}

// ImportXLSX processa a primeira aba de um arquivo .xlsx enviado via
// multipart (campo "file").
func ImportXLSX(importer importing.Importer, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxImportBodySize)

		if err := r.ParseMultipartForm(maxImportBodySize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidImportFile, "Upload inválido: esperado multipart com campo 'file'", nil)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' não encontrado no upload", nil)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidImportFile, "Erro ao ler o arquivo enviado", nil)
			return
		}

		records, err := importer.ParseXLSX(data)
		if err != nil {
			handleImportError(w, err)
			return
		}

		finishImport(w, reporter, records, "xlsx")
	}
}

// ImportSheet baixa a planilha remota configurada e substitui a coleção
// pelo resultado, o mesmo caminho da sincronização agendada.
func ImportSheet(sheetsService sheets.SheetsIntegrator, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := sheetsService.LoadRecords()
		if err != nil {
			if errors.Is(err, sheets.ErrNoSheetURL) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			var layoutErr *importing.UnrecognizedLayoutError
			if errors.Is(err, importing.ErrEmptyInput) || errors.As(err, &layoutErr) {
				handleImportError(w, err)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrRemoteSheetFailure, "Erro ao buscar a planilha remota", nil)
			return
		}

		finishImport(w, reporter, records, "sheet")
	}
}

// readImportText aceita JSON {"text": ...} ou corpo texto puro, conforme
// o Content-Type da requisição.
func readImportText(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBodySize)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var req ImportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return "", false
		}
		return req.Text, true
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição", nil)
		return "", false
	}

	return string(data), true
}

func finishImport(w http.ResponseWriter, reporter reporting.Reporter, records []*domain.DailyRecord, source string) {
	if err := reporter.ReplaceAll(records); err != nil {
		logrus.WithError(err).Error("Erro ao substituir a coleção de registros")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao armazenar os registros importados", nil)
		return
	}

	logrus.WithFields(logrus.Fields{
		"source":  source,
		"records": len(records),
	}).Info("Importação aplicada ao painel")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResponse{
		Records: records,
		Total:   len(records),
	})
}

// handleImportError mapeia os erros fatais do motor de importação para
// as respostas padronizadas, preservando o diagnóstico de cada um.
func handleImportError(w http.ResponseWriter, err error) {
	var layoutErr *importing.UnrecognizedLayoutError
	var columnErr *importing.MissingColumnError

	switch {
	case errors.Is(err, importing.ErrEmptyInput):
		apiErrors.WriteError(w, apiErrors.ErrEmptyImport, err.Error(), nil)

	case errors.As(err, &layoutErr):
		apiErrors.WriteError(w, apiErrors.ErrUnrecognizedLayout, layoutErr.Error(), map[string]any{
			"first_row":      layoutErr.FirstRow,
			"missing_groups": layoutErr.MissingGroups,
		})

	case errors.As(err, &columnErr):
		apiErrors.WriteError(w, apiErrors.ErrMissingColumn, columnErr.Error(), map[string]any{
			"missing": columnErr.Missing,
			"headers": columnErr.Headers,
		})

	default:
		apiErrors.WriteError(w, apiErrors.ErrInvalidImportFile, err.Error(), nil)
	}
}
