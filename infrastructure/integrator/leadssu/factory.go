package leadssu

import (
	"time"

	"github.com/sirupsen/logrus"
	leadssudomain "github.com/vfg2006/leadssu-webmaster/infrastructure/integrator/leadssu/domain"
	"github.com/vfg2006/leadssu-webmaster/internal/domain"
	"github.com/vfg2006/leadssu-webmaster/pkg/utils"
)

// Formatos aceitos no campo created das conversões
var leadTimeLayouts = []string{
	time.DateTime,
	time.RFC3339,
}

func FactoryBalance(raw *leadssudomain.Balance) *domain.Balance {
	if raw == nil {
		return nil
	}

	return &domain.Balance{
		MainBalance:      raw.Balance.Float64(),
		HoldAdv:          raw.Hold.Float64(),
		AvailableBalance: raw.AvailableBalance.Float64(),
		Withdrawal:       raw.Ordered.Float64(),
		Withdrawn:        raw.Paid.Float64(),
	}
}

func FactoryTrafficChannel(raw leadssudomain.Platform) domain.TrafficChannel {
	return domain.TrafficChannel{
		ID:   raw.ID.Int(),
		Name: raw.Name.String(),
	}
}

func FactoryLead(raw leadssudomain.Conversion) domain.Lead {
	return domain.Lead{
		OrderID:     raw.ID.Int64(),
		OfferID:     raw.OfferID.Int(),
		Status:      leadssudomain.MapLeadStatus(raw.Status.String()),
		Commission:  raw.Payout.Float64(),
		Subaccount:  raw.AffSub1.String(),
		Subaccount2: raw.AffSub2.String(),
		LeadTime:    parseLeadTime(raw.ID.Int64(), raw.Created.String()),
	}
}

func FactoryStatisticsRow(raw leadssudomain.SummaryRow) domain.StatisticsRow {
	clicks := raw.Clicks.Int()
	leads := raw.Conversions.Int()
	approved := raw.ConversionsApproved.Int()

	return domain.StatisticsRow{
		OfferID:            raw.OfferID.Int(),
		OfferName:          raw.OfferName.String(),
		Clicks:             clicks,
		Leads:              leads,
		LeadsRejected:      raw.ConversionsRejected.Int(),
		LeadsOpen:          raw.ConversionsPending.Int(),
		LeadsApproved:      approved,
		CommissionRejected: raw.RejectedPayout.Float64(),
		CommissionOpen:     raw.PendingPayout.Float64(),
		CommissionApproved: raw.Payout.Float64(),
		CR:                 utils.Percentage(float64(leads), float64(clicks)),
		AR:                 utils.Percentage(float64(approved), float64(leads)),
	}
}

// parseLeadTime devolve o epoch em milissegundos ou 0 quando a data é inválida
func parseLeadTime(orderID int64, created string) int64 {
	for _, layout := range leadTimeLayouts {
		t, err := time.ParseInLocation(layout, created, time.Local)
		if err == nil {
			return t.UnixMilli()
		}
	}

	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"created":  created,
	}).Warn("leadssu: invalid lead creation time")

	return 0
}
