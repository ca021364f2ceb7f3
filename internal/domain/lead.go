package domain

import "time"

// LeadStatus é o vocabulário normalizado de status de conversão.
// Valores fora das constantes abaixo são preservados como vieram do provedor.
type LeadStatus string

const (
	LeadStatusRejected LeadStatus = "rejected"
	LeadStatusOpen     LeadStatus = "open"
	LeadStatusApproved LeadStatus = "approved"
)

// IsKnown informa se o status pertence ao vocabulário do domínio ou se é um
// valor repassado sem mapeamento.
func (s LeadStatus) IsKnown() bool {
	switch s {
	case LeadStatusRejected, LeadStatusOpen, LeadStatusApproved:
		return true
	default:
		return false
	}
}

type Lead struct {
	OrderID     int64      `json:"orderId"`
	OfferID     int        `json:"offerId"`
	Status      LeadStatus `json:"status"`
	Commission  float64    `json:"commission"`
	Subaccount  string     `json:"subaccount"`
	Subaccount2 string     `json:"subaccount2"`
	LeadTime    int64      `json:"leadTime"` // epoch em milissegundos
}

type LeadFilters struct {
	StartDate time.Time
	EndDate   time.Time
	OfferID   int // 0 = todos os offers
	ChannelID int // 0 = todos os canais
}
