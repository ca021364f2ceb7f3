package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/integrator/leadssu"
	"github.com/vfg2006/leadssu-webmaster/internal/domain"
	"github.com/vfg2006/leadssu-webmaster/pkg/apiErrors"
	"github.com/vfg2006/leadssu-webmaster/pkg/log"
)

func GetProfile(service leadssu.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		profile, err := service.GetProfile(r.Context())
		if err != nil {
			logger.WithField("error", err.Error()).Error("leadssu: failed to get profile")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, logger, profile)
	})
}

func GetBalance(service leadssu.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		balance, err := service.GetBalance(r.Context())
		if err != nil {
			logger.WithField("error", err.Error()).Error("leadssu: failed to get balance")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, logger, balance)
	})
}

func GetTrafficChannels(service leadssu.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		channels, err := service.GetTrafficChannels(r.Context())
		if err != nil {
			logger.WithField("error", err.Error()).Error("leadssu: failed to get traffic channels")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, logger, channels)
	})
}

func GetOffers(service leadssu.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		offerID, err := queryInt(r, "offer_id")
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		offerIDs, err := queryIntList(r, "offer_ids")
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		channelID, err := queryInt(r, "channel_id")
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		offers, err := service.GetOffersData(r.Context(), domain.OfferQuery{
			OfferID:   offerID,
			OfferIDs:  offerIDs,
			ChannelID: channelID,
		})
		if err != nil {
			logger.WithFields(log.Fields{
				"offer_id":   offerID,
				"channel_id": channelID,
				"error":      err.Error(),
			}).Error("leadssu: failed to get offers")
			writeServiceError(w, err)
			return
		}

		logger.WithField("offer_count", len(offers)).Info("leadssu: offers retrieved")
		writeJSON(w, logger, offers)
	})
}

func GetLeads(service leadssu.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := leadFiltersFromRequest(r, true)
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		leads, err := service.GetLeadsByOfferID(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"offer_id": filters.OfferID,
				"error":    err.Error(),
			}).Error("leadssu: failed to get leads")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"offer_id":   filters.OfferID,
			"lead_count": len(leads),
		}).Info("leadssu: leads retrieved")
		writeJSON(w, logger, leads)
	})
}

func GetStatistics(service leadssu.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, endDate, err := queryPeriod(r, true)
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		offerID, err := queryInt(r, "offer_id")
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		channelID, err := queryInt(r, "channel_id")
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		query := r.URL.Query()
		rows, err := service.GetStatisticsOffers(r.Context(), domain.StatisticsFilters{
			StartDate: startDate,
			EndDate:   endDate,
			OfferID:   offerID,
			ChannelID: channelID,
			SubID:     query.Get("subid"),
			Group:     query.Get("group"),
			Subgroup:  query.Get("subgroup"),
		})
		if err != nil {
			logger.WithFields(log.Fields{
				"offer_id": offerID,
				"error":    err.Error(),
			}).Error("leadssu: failed to get statistics")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, logger, rows)
	})
}

func GetCommissions(service leadssu.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := commissionFiltersFromRequest(r, true)
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		summary, err := service.GetWebmasterCommissions(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"offer_id": filters.OfferID,
				"error":    err.Error(),
			}).Error("leadssu: failed to get commissions")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, logger, summary)
	})
}

func GetOfferLink(service leadssu.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rawID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		offerID, err := strconv.Atoi(rawID)
		if err != nil || offerID <= 0 {
			logger.WithField("offer_id", rawID).Warn("leadssu: invalid offer id")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do offer inválido", nil)
			return
		}

		channelID, err := queryInt(r, "channel_id")
		if err != nil {
			writeQueryError(w, logger, err)
			return
		}

		link, err := service.GetOfferLinkByOfferID(r.Context(), offerID, channelID)
		if err != nil {
			logger.WithFields(log.Fields{
				"offer_id":   offerID,
				"channel_id": channelID,
				"error":      err.Error(),
			}).Error("leadssu: failed to get offer link")
			writeServiceError(w, err)
			return
		}

		if link == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Offer não encontrado", map[string]any{
				"offer_id":   offerID,
				"channel_id": channelID,
			})
			return
		}

		writeJSON(w, logger, link)
	})
}

func leadFiltersFromRequest(r *http.Request, requirePeriod bool) (domain.LeadFilters, error) {
	startDate, endDate, err := queryPeriod(r, requirePeriod)
	if err != nil {
		return domain.LeadFilters{}, err
	}

	offerID, err := queryInt(r, "offer_id")
	if err != nil {
		return domain.LeadFilters{}, err
	}

	channelID, err := queryInt(r, "channel_id")
	if err != nil {
		return domain.LeadFilters{}, err
	}

	return domain.LeadFilters{
		StartDate: startDate,
		EndDate:   endDate,
		OfferID:   offerID,
		ChannelID: channelID,
	}, nil
}

func commissionFiltersFromRequest(r *http.Request, requirePeriod bool) (domain.CommissionFilters, error) {
	startDate, endDate, err := queryPeriod(r, requirePeriod)
	if err != nil {
		return domain.CommissionFilters{}, err
	}

	offerID, err := queryInt(r, "offer_id")
	if err != nil {
		return domain.CommissionFilters{}, err
	}

	return domain.CommissionFilters{
		StartDate: startDate,
		EndDate:   endDate,
		OfferID:   offerID,
	}, nil
}
