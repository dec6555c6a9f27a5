package domain

import (
	"github.com/vfg2006/funnel-metrics-api/pkg/utils"
)

// PeriodSummary agrega os registros diários de um período nos totais e
// nas médias exibidas no painel.
type PeriodSummary struct {
	Days             int     `json:"days"`
	TotalSpend       float64 `json:"totalSpend"`
	TotalLeads       float64 `json:"totalLeads"`
	TotalVisits      float64 `json:"totalVisits"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalImpressions float64 `json:"totalImpressions"`
	TotalReach       float64 `json:"totalReach"`
	TotalClicks      float64 `json:"totalClicks"`

	OverallCPL       float64 `json:"overallCpl"`
	LPConversionRate float64 `json:"lpConversionRate"`
	OverallROAS      float64 `json:"overallRoas"`

	AvgCTR       float64 `json:"avgCtr"`
	AvgCPC       float64 `json:"avgCpc"`
	AvgCPM       float64 `json:"avgCpm"`
	AvgFrequency float64 `json:"avgFrequency"`
}

// BuildPeriodSummary calcula os agregados do período. As razões seguem a
// mesma política das fórmulas diárias: denominador zero resulta em 0.
func BuildPeriodSummary(records []*DailyRecord) *PeriodSummary {
	summary := &PeriodSummary{Days: len(records)}

	for _, r := range records {
		summary.TotalSpend += r.Spend
		summary.TotalLeads += r.Leads
		summary.TotalVisits += r.Visits
		summary.TotalRevenue += r.Revenue
		summary.TotalImpressions += r.Impressions
		summary.TotalReach += r.Reach
		summary.TotalClicks += r.Clicks
	}

	summary.OverallCPL = utils.RoundWithTwoDecimalPlace(safeDivide(summary.TotalSpend, summary.TotalLeads))
	summary.LPConversionRate = utils.RoundWithTwoDecimalPlace(safeDivide(summary.TotalLeads, summary.TotalVisits) * 100)
	summary.OverallROAS = utils.RoundWithTwoDecimalPlace(safeDivide(summary.TotalRevenue, summary.TotalSpend))

	summary.AvgCTR = utils.RoundWithTwoDecimalPlace(safeDivide(summary.TotalClicks, summary.TotalImpressions) * 100)
	summary.AvgCPC = utils.RoundWithTwoDecimalPlace(safeDivide(summary.TotalSpend, summary.TotalClicks))
	summary.AvgCPM = utils.RoundWithTwoDecimalPlace(safeDivide(summary.TotalSpend, summary.TotalImpressions) * 1000)
	summary.AvgFrequency = utils.RoundWithTwoDecimalPlace(safeDivide(summary.TotalImpressions, summary.TotalReach))

	return summary
}
