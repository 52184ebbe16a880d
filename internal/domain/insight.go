package domain

import "time"

type InsightFilters struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// ComparisonPoint é o total de uma métrica para uma campanha selecionada
type ComparisonPoint struct {
	CampaignID CampaignID `json:"campaign_id"`
	Label      string     `json:"label"`
	Value      float64    `json:"value"`
}

// ProfilePoint é um eixo do radar: a pontuação normalizada (0-100) de cada campanha para uma métrica
type ProfilePoint struct {
	Metric      MetricKey          `json:"metric"`
	MetricLabel string             `json:"metric_label"`
	Scores      map[CampaignID]int `json:"scores"`
}

// TimeSeriesPoint é o valor de cada campanha selecionada em um dia (YYYY-MM-DD)
type TimeSeriesPoint struct {
	Date   string                 `json:"date"`
	Values map[CampaignID]float64 `json:"values"`
}

type ComparisonResponse struct {
	Metric      MetricKey         `json:"metric"`
	MetricLabel string            `json:"metric_label"`
	Points      []ComparisonPoint `json:"points"`
	Filters     *InsightFilters   `json:"filters"`
}

type ProfileResponse struct {
	Campaigns []Campaign      `json:"campaigns"`
	Points    []ProfilePoint  `json:"points"`
	Filters   *InsightFilters `json:"filters"`
}

type TimeSeriesResponse struct {
	Metric      MetricKey         `json:"metric"`
	MetricLabel string            `json:"metric_label"`
	Series      []TimeSeriesPoint `json:"series"`
	Filters     *InsightFilters   `json:"filters"`
}
