package reporting

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-metrics-api/infrastructure/repository"
	"github.com/vfg2006/funnel-metrics-api/internal/domain"
)

// Service guarda a coleção em memória, indexada por data ISO. O banco é
// opcional e atua como write-behind: falhas de persistência são logadas
// sem abortar a operação do painel.
type Service struct {
	mu      sync.RWMutex
	records map[string]*domain.DailyRecord

	recordRepository repository.DailyRecordRepository
	useStore         bool
}

// NewService cria uma nova instância do serviço de registros diários.
func NewService() *Service {
	return &Service{
		records:  make(map[string]*domain.DailyRecord),
		useStore: false,
	}
}

// WithRepository habilita a persistência write-behind dos registros.
func (s *Service) WithRepository(recordRepo repository.DailyRecordRepository) *Service {
	s.recordRepository = recordRepo
	s.useStore = recordRepo != nil
	return s
}

// Hydrate repõe a coleção em memória a partir do banco, chamado uma vez
// na subida do processo quando a persistência está habilitada.
func (s *Service) Hydrate() error {
	if !s.useStore {
		return ErrStoreDisabled
	}

	stored, err := s.recordRepository.ListAll()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]*domain.DailyRecord, len(stored))
	for _, record := range stored {
		s.records[record.Date] = record
	}

	logrus.WithField("records", len(stored)).Info("Coleção de registros diários hidratada do banco")

	return nil
}

func (s *Service) Records(from, to string) ([]*domain.DailyRecord, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	s.mu.RLock()
	empty := len(s.records) == 0
	records := make([]*domain.DailyRecord, 0, len(s.records))
	for date, record := range s.records {
		if from != "" && date < from {
			continue
		}
		if to != "" && date > to {
			continue
		}
		copied := *record
		records = append(records, &copied)
	}
	s.mu.RUnlock()

	// Coleção vazia com banco habilitado indica hidratação perdida na
	// subida; a leitura degrada para o banco
	if empty && s.useStore {
		return s.recordRepository.ListByRange(from, to)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})

	return records, nil
}

func (s *Service) RecordByDate(date string) (*domain.DailyRecord, error) {
	if !isISODate(date) {
		return nil, ErrInvalidDate
	}

	s.mu.RLock()
	record, ok := s.records[date]
	if ok {
		copied := *record
		s.mu.RUnlock()
		return &copied, nil
	}
	s.mu.RUnlock()

	// Data ausente da memória pode ter sido gravada por outra instância;
	// com banco habilitado a leitura passa direto para ele
	if s.useStore {
		return s.recordRepository.GetByDate(date)
	}

	return nil, nil
}

func (s *Service) Summary(from, to string) (*domain.PeriodSummary, error) {
	records, err := s.Records(from, to)
	if err != nil {
		return nil, err
	}

	return domain.BuildPeriodSummary(records), nil
}

// UpsertManualEntry funde os campos informados no registro da data e
// recalcula as métricas derivadas, tudo sob o mesmo lock para que
// leitores nunca observem um registro meio-atualizado.
func (s *Service) UpsertManualEntry(date string, entry *domain.ManualEntry) (*domain.DailyRecord, error) {
	if !isISODate(date) {
		return nil, ErrInvalidDate
	}
	if entry.Empty() {
		return nil, ErrEmptyEntry
	}

	s.mu.Lock()

	record, ok := s.records[date]
	if !ok {
		record = domain.NewDailyRecord(date)
	}

	updated := *record
	entry.ApplyTo(&updated)
	domain.Recompute(&updated)
	s.records[date] = &updated

	result := updated
	s.mu.Unlock()

	if s.useStore {
		if err := s.recordRepository.SaveOrUpdate(&result); err != nil {
			logrus.WithError(err).WithField("date", date).Warn("Erro ao persistir registro diário")
		}
	}

	return &result, nil
}

// ReplaceAll troca a coleção inteira, usado após importações e após a
// sincronização da planilha remota.
func (s *Service) ReplaceAll(records []*domain.DailyRecord) error {
	s.mu.Lock()

	s.records = make(map[string]*domain.DailyRecord, len(records))
	for _, record := range records {
		copied := *record
		s.records[copied.Date] = &copied
	}
	s.mu.Unlock()

	logrus.WithField("records", len(records)).Info("Coleção de registros diários substituída")

	if s.useStore {
		if err := s.recordRepository.ReplaceAll(records); err != nil {
			logrus.WithError(err).Warn("Erro ao persistir coleção de registros diários")
		}
	}

	return nil
}

func isISODate(date string) bool {
	_, err := time.Parse(time.DateOnly, date)
	return err == nil
}

func validateRange(from, to string) error {
	if from != "" && !isISODate(from) {
		return ErrInvalidDate
	}
	if to != "" && !isISODate(to) {
		return ErrInvalidDate
	}
	if from != "" && to != "" && from > to {
		return ErrInvalidRange
	}
	return nil
}
