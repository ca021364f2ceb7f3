package leadssudomain

import "github.com/vfg2006/leadssu-webmaster/internal/domain"

// MapLeadStatus traduz o status do leads.su. Valores desconhecidos passam sem alteração.
func MapLeadStatus(raw string) domain.LeadStatus {
	switch raw {
	case "rejected":
		return domain.LeadStatusRejected
	case "pending":
		return domain.LeadStatusOpen
	case "approved":
		return domain.LeadStatusApproved
	default:
		return domain.LeadStatus(raw)
	}
}
