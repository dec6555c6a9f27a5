package sheets

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-metrics-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/funnel-metrics-api/internal/config"
	"github.com/vfg2006/funnel-metrics-api/internal/domain"
	"github.com/vfg2006/funnel-metrics-api/internal/usecases/importing"
)

var ErrNoSheetURL = errors.New("nenhuma URL de planilha configurada")

// SheetsIntegrator busca a planilha remota publicada e a converte na
// coleção de registros diários.
type SheetsIntegrator interface {
	LoadRecords() ([]*domain.DailyRecord, error)
}

type SheetsService struct {
	cfg      *config.Config
	Client   sheetsclient.Client
	importer importing.Importer
}

func New(cfg *config.Config, client sheetsclient.Client, importer importing.Importer) SheetsIntegrator {
	return &SheetsService{
		cfg:      cfg,
		Client:   client,
		importer: importer,
	}
}

// LoadRecords é stateless: cada chamada baixa e reprocessa a planilha
// inteira; o chamador é dono da coleção resultante.
func (s *SheetsService) LoadRecords() ([]*domain.DailyRecord, error) {
	csvURL := s.cfg.Sheets.CSVURL
	if csvURL == "" {
		return nil, ErrNoSheetURL
	}

	text, err := s.Client.FetchCSV(csvURL)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar o CSV da planilha remota")
		return nil, err
	}

	records, err := s.importer.ParseCSV(text)
	if err != nil {
		logrus.WithError(err).Error("Erro ao processar o CSV da planilha remota")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"bytes":   len(text),
		"records": len(records),
	}).Info("Planilha remota carregada")

	return records, nil
}
