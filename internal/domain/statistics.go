package domain

import "time"

const DefaultStatisticsGroup = "year"

type StatisticsRow struct {
	OfferID            int     `json:"offerId"`
	OfferName          string  `json:"offerName"`
	Clicks             int     `json:"clicks"`
	Leads              int     `json:"leads"`
	LeadsRejected      int     `json:"leadsRejected"`
	LeadsOpen          int     `json:"leadsOpen"`
	LeadsApproved      int     `json:"leadsApproved"`
	CommissionRejected float64 `json:"commissionRejected"`
	CommissionOpen     float64 `json:"commissionOpen"`
	CommissionApproved float64 `json:"commissionApproved"`
	CR                 float64 `json:"cr"`
	AR                 float64 `json:"ar"`
}

type StatisticsFilters struct {
	StartDate time.Time
	EndDate   time.Time
	OfferID   int
	ChannelID int
	SubID     string
	Group     string // padrão: year
	Subgroup  string
}

type CommissionSummary struct {
	CommissionRejected float64 `json:"commissionRejected"`
	CommissionOpen     float64 `json:"commissionOpen"`
	CommissionApproved float64 `json:"commissionApproved"`
}

type CommissionFilters struct {
	StartDate time.Time
	EndDate   time.Time
	OfferID   int
}

// CommissionSnapshot é o resumo de comissões de um dia persistido pelo agendador.
type CommissionSnapshot struct {
	ID        string            `json:"id"`
	Date      string            `json:"date"` // formato YYYY-MM-DD
	OfferID   int               `json:"offerId"`
	Summary   CommissionSummary `json:"summary"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// CommissionHistory agrupa os snapshots de um período e o total acumulado
type CommissionHistory struct {
	Snapshots []CommissionSnapshot `json:"snapshots"`
	Total     CommissionSummary    `json:"total"`
}
