package leadssu

import (
	"github.com/vfg2006/leadssu-webmaster/internal/domain"
	"github.com/vfg2006/leadssu-webmaster/pkg/utils"
)

// SummarizeCommissions soma as comissões arredondando para 2 casas a cada soma
func SummarizeCommissions(rows []domain.StatisticsRow) domain.CommissionSummary {
	summary := domain.CommissionSummary{}
	for _, row := range rows {
		summary.CommissionRejected = utils.AddWithTwoDecimalPlace(summary.CommissionRejected, row.CommissionRejected)
		summary.CommissionOpen = utils.AddWithTwoDecimalPlace(summary.CommissionOpen, row.CommissionOpen)
		summary.CommissionApproved = utils.AddWithTwoDecimalPlace(summary.CommissionApproved, row.CommissionApproved)
	}
	return summary
}
