package domain

// FieldKey identifica semanticamente uma métrica do funil dentro de um
// registro diário. O conjunto é fechado: o mapeador de colunas só atribui
// identidades listadas aqui.
type FieldKey string

const (
	FieldDate FieldKey = "date"

	// Métricas do Meta
	FieldSpend       FieldKey = "spend"
	FieldImpressions FieldKey = "impressions"
	FieldReach       FieldKey = "reach"
	FieldCPM         FieldKey = "cpm"
	FieldClicks      FieldKey = "clicks"
	FieldCTR         FieldKey = "ctr"
	FieldCPC         FieldKey = "cpc"

	// Funil - Web
	FieldVisits  FieldKey = "visits"
	FieldLPCRate FieldKey = "lpcRate"
	FieldLeads   FieldKey = "leads"
	FieldLPRate  FieldKey = "lpRate"
	FieldCPL     FieldKey = "cpl"

	// Funil - CRM / Agendas
	FieldAgendasAut     FieldKey = "agendasAut"
	FieldAgendasSet     FieldKey = "agendasSet"
	FieldAgendasTotal   FieldKey = "agendasTotal"
	FieldAgCualificado  FieldKey = "agCualificado"
	FieldCPLCualificado FieldKey = "cplCualificado"
	FieldVCRRate        FieldKey = "vcrRate"
	FieldVCRCash        FieldKey = "vcrCash"

	// Funil - Llamadas / Asistencias
	FieldLlamadas      FieldKey = "llamadas"
	FieldAsistencias   FieldKey = "asistencias"
	FieldCancelaciones FieldKey = "cancelaciones"
	FieldAsisRate      FieldKey = "asisRate"
	FieldAsisCash      FieldKey = "asisCash"

	// Funil - Ventas
	FieldCierres FieldKey = "cierres"
	FieldCCRate  FieldKey = "ccRate"
	FieldLCRate  FieldKey = "lcRate"
	FieldVentas  FieldKey = "ventas"

	// Financeiro
	FieldRevenue    FieldKey = "revenue"
	FieldFacturado  FieldKey = "facturado"
	FieldCPA        FieldKey = "cpa"
	FieldBeneficio  FieldKey = "beneficio"
	FieldBFacturado FieldKey = "bfacturado"

	// ROI
	FieldROAS FieldKey = "roas"
	FieldROI  FieldKey = "roi"
	FieldRRoi FieldKey = "rRoi"
	FieldCRoi FieldKey = "cRoi"
)

// ColumnNotFound é o sentinela para campo ausente na origem. Campos
// numéricos ausentes resolvem para 0 no registro final; apenas a data
// é obrigatória.
const ColumnNotFound = -1

// ColumnMap associa cada FieldKey ao índice da coluna (layout diário) ou
// da linha (layout mensal transposto) onde o campo foi localizado.
type ColumnMap map[FieldKey]int

// Index retorna o índice mapeado para o campo, ou ColumnNotFound.
func (m ColumnMap) Index(field FieldKey) int {
	if idx, ok := m[field]; ok {
		return idx
	}
	return ColumnNotFound
}

// DailyRecord é a unidade canônica de saída do motor de normalização:
// um registro por data de calendário (ISO YYYY-MM-DD), com forma fixa e
// todos os campos numéricos inicializados em zero. Revenue e Facturado
// são aliases sincronizados do mesmo conceito monetário.
type DailyRecord struct {
	Date string `json:"date"`

	Spend       float64 `json:"spend"`
	Impressions float64 `json:"impressions"`
	Reach       float64 `json:"reach"`
	CPM         float64 `json:"cpm"`
	Clicks      float64 `json:"clicks"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`

	Visits  float64 `json:"visits"`
	LPCRate float64 `json:"lpcRate"`
	Leads   float64 `json:"leads"`
	LPRate  float64 `json:"lpRate"`
	CPL     float64 `json:"cpl"`

	AgendasAut     float64 `json:"agendasAut"`
	AgendasSet     float64 `json:"agendasSet"`
	AgendasTotal   float64 `json:"agendasTotal"`
	AgCualificado  float64 `json:"agCualificado"`
	CPLCualificado float64 `json:"cplCualificado"`
	VCRRate        float64 `json:"vcrRate"`
	VCRCash        float64 `json:"vcrCash"`

	Llamadas      float64 `json:"llamadas"`
	Asistencias   float64 `json:"asistencias"`
	Cancelaciones float64 `json:"cancelaciones"`
	AsisRate      float64 `json:"asisRate"`
	AsisCash      float64 `json:"asisCash"`

	Cierres float64 `json:"cierres"`
	CCRate  float64 `json:"ccRate"`
	LCRate  float64 `json:"lcRate"`
	Ventas  float64 `json:"ventas"`

	Revenue    float64 `json:"revenue"`
	Facturado  float64 `json:"facturado"`
	CPA        float64 `json:"cpa"`
	Beneficio  float64 `json:"beneficio"`
	BFacturado float64 `json:"bfacturado"`

	ROAS float64 `json:"roas"`
	ROI  float64 `json:"roi"`
	RRoi float64 `json:"rRoi"`
	CRoi float64 `json:"cRoi"`
}

// NewDailyRecord cria um registro zerado para a data informada.
func NewDailyRecord(date string) *DailyRecord {
	return &DailyRecord{Date: date}
}

// Set grava um campo numérico pelo FieldKey. A tabela de despacho é um
// switch explícito para manter o conjunto de campos auditável (sem
// reflexão). FieldKeys desconhecidos e FieldDate são ignorados.
func (d *DailyRecord) Set(field FieldKey, value float64) {
	switch field {
	case FieldSpend:
		d.Spend = value
	case FieldImpressions:
		d.Impressions = value
	case FieldReach:
		d.Reach = value
	case FieldCPM:
		d.CPM = value
	case FieldClicks:
		d.Clicks = value
	case FieldCTR:
		d.CTR = value
	case FieldCPC:
		d.CPC = value
	case FieldVisits:
		d.Visits = value
	case FieldLPCRate:
		d.LPCRate = value
	case FieldLeads:
		d.Leads = value
	case FieldLPRate:
		d.LPRate = value
	case FieldCPL:
		d.CPL = value
	case FieldAgendasAut:
		d.AgendasAut = value
	case FieldAgendasSet:
		d.AgendasSet = value
	case FieldAgendasTotal:
		d.AgendasTotal = value
	case FieldAgCualificado:
		d.AgCualificado = value
	case FieldCPLCualificado:
		d.CPLCualificado = value
	case FieldVCRRate:
		d.VCRRate = value
	case FieldVCRCash:
		d.VCRCash = value
	case FieldLlamadas:
		d.Llamadas = value
	case FieldAsistencias:
		d.Asistencias = value
	case FieldCancelaciones:
		d.Cancelaciones = value
	case FieldAsisRate:
		d.AsisRate = value
	case FieldAsisCash:
		d.AsisCash = value
	case FieldCierres:
		d.Cierres = value
	case FieldCCRate:
		d.CCRate = value
	case FieldLCRate:
		d.LCRate = value
	case FieldVentas:
		d.Ventas = value
	case FieldRevenue:
		d.Revenue = value
	case FieldFacturado:
		d.Facturado = value
	case FieldCPA:
		d.CPA = value
	case FieldBeneficio:
		d.Beneficio = value
	case FieldBFacturado:
		d.BFacturado = value
	case FieldROAS:
		d.ROAS = value
	case FieldROI:
		d.ROI = value
	case FieldRRoi:
		d.RRoi = value
	case FieldCRoi:
		d.CRoi = value
	}
}

// Value lê um campo numérico pelo FieldKey. FieldKeys desconhecidos e
// FieldDate retornam 0.
func (d *DailyRecord) Value(field FieldKey) float64 {
	switch field {
	case FieldSpend:
		return d.Spend
	case FieldImpressions:
		return d.Impressions
	case FieldReach:
		return d.Reach
	case FieldCPM:
		return d.CPM
	case FieldClicks:
		return d.Clicks
	case FieldCTR:
		return d.CTR
	case FieldCPC:
		return d.CPC
	case FieldVisits:
		return d.Visits
	case FieldLPCRate:
		return d.LPCRate
	case FieldLeads:
		return d.Leads
	case FieldLPRate:
		return d.LPRate
	case FieldCPL:
		return d.CPL
	case FieldAgendasAut:
		return d.AgendasAut
	case FieldAgendasSet:
		return d.AgendasSet
	case FieldAgendasTotal:
		return d.AgendasTotal
	case FieldAgCualificado:
		return d.AgCualificado
	case FieldCPLCualificado:
		return d.CPLCualificado
	case FieldVCRRate:
		return d.VCRRate
	case FieldVCRCash:
		return d.VCRCash
	case FieldLlamadas:
		return d.Llamadas
	case FieldAsistencias:
		return d.Asistencias
	case FieldCancelaciones:
		return d.Cancelaciones
	case FieldAsisRate:
		return d.AsisRate
	case FieldAsisCash:
		return d.AsisCash
	case FieldCierres:
		return d.Cierres
	case FieldCCRate:
		return d.CCRate
	case FieldLCRate:
		return d.LCRate
	case FieldVentas:
		return d.Ventas
	case FieldRevenue:
		return d.Revenue
	case FieldFacturado:
		return d.Facturado
	case FieldCPA:
		return d.CPA
	case FieldBeneficio:
		return d.Beneficio
	case FieldBFacturado:
		return d.BFacturado
	case FieldROAS:
		return d.ROAS
	case FieldROI:
		return d.ROI
	case FieldRRoi:
		return d.RRoi
	case FieldCRoi:
		return d.CRoi
	}
	return 0
}
