package reporting

import (
	"github.com/vfg2006/funnel-metrics-api/internal/domain"
)

// Reporter mantém a coleção de registros diários do funil e responde às
// consultas do painel.
type Reporter interface {
	// Records retorna os registros ordenados por data, opcionalmente
	// limitados ao intervalo [from, to] (datas ISO, vazio = sem limite)
	Records(from, to string) ([]*domain.DailyRecord, error)

	// RecordByDate retorna o registro de uma data, ou nil se não existir
	RecordByDate(date string) (*domain.DailyRecord, error)

	// Summary agrega os registros do intervalo nos totais do período
	Summary(from, to string) (*domain.PeriodSummary, error)

	// UpsertManualEntry funde os campos informados no registro da data
	// (criando-o se necessário) e recalcula as métricas derivadas
	UpsertManualEntry(date string, entry *domain.ManualEntry) (*domain.DailyRecord, error)

	// ReplaceAll troca a coleção inteira, usado após importações completas
	ReplaceAll(records []*domain.DailyRecord) error
}
