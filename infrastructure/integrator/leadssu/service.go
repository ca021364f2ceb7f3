package leadssu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	leadssudomain "github.com/vfg2006/leadssu-webmaster/infrastructure/integrator/leadssu/domain"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/integrator/leadssu/leadssuclient"
	"github.com/vfg2006/leadssu-webmaster/internal/config"
	"github.com/vfg2006/leadssu-webmaster/internal/domain"
	"github.com/vfg2006/leadssu-webmaster/pkg/utils"
)

const (
	actionProfile           = "account"
	actionBalance           = "account/balance"
	actionPlatforms         = "platforms"
	actionOffers            = "offers"
	actionConnectedPlatform = "offers/connectedPlatforms"
	actionConversions       = "conversions"
	actionSummary           = "reports/summary"

	statisticsLimit    = 500
	defaultTrackingURL = "https://pxl.leads.su/aff_c"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator_mock.go -package=mocks
type Integrator interface {
	GetProfile(ctx context.Context) (domain.Profile, error)
	GetBalance(ctx context.Context) (*domain.Balance, error)
	GetTrafficChannels(ctx context.Context) ([]domain.TrafficChannel, error)
	GetOffersData(ctx context.Context, query domain.OfferQuery) ([]domain.Offer, error)
	GetLeadsByOfferID(ctx context.Context, filters domain.LeadFilters) ([]domain.Lead, error)
	GetStatisticsOffers(ctx context.Context, filters domain.StatisticsFilters) ([]domain.StatisticsRow, error)
	GetWebmasterCommissions(ctx context.Context, filters domain.CommissionFilters) (*domain.CommissionSummary, error)
	GetOfferLinkByOfferID(ctx context.Context, offerID, channelID int) (*domain.OfferLink, error)
}

type LeadssuIntegrator struct {
	Client      leadssuclient.Requester
	pageSize    int
	trackingURL string
}

func New(cfg *config.Config, client leadssuclient.Requester) Integrator {
	trackingURL := cfg.Leadssu.TrackingURL
	if trackingURL == "" {
		trackingURL = defaultTrackingURL
	}

	return &LeadssuIntegrator{
		Client:      client,
		pageSize:    cfg.Leadssu.PageSize,
		trackingURL: trackingURL,
	}
}

func (s *LeadssuIntegrator) GetProfile(ctx context.Context) (domain.Profile, error) {
	envelope, err := s.Client.Request(ctx, actionProfile, leadssuclient.NewParams())
	if err != nil {
		logrus.WithError(err).Error("leadssu: failed to get profile")
		return nil, err
	}

	var profile domain.Profile
	if err := json.Unmarshal(envelope.Data, &profile); err != nil {
		logrus.WithError(err).Error("leadssu: failed to decode profile")
		return nil, fmt.Errorf("leadssu: decode profile: %w", err)
	}

	return profile, nil
}

func (s *LeadssuIntegrator) GetBalance(ctx context.Context) (*domain.Balance, error) {
	envelope, err := s.Client.Request(ctx, actionBalance, leadssuclient.NewParams())
	if err != nil {
		logrus.WithError(err).Error("leadssu: failed to get balance")
		return nil, err
	}

	var raw leadssudomain.Balance
	if err := json.Unmarshal(envelope.Data, &raw); err != nil {
		logrus.WithError(err).Error("leadssu: failed to decode balance")
		return nil, fmt.Errorf("leadssu: decode balance: %w", err)
	}

	return FactoryBalance(&raw), nil
}

func (s *LeadssuIntegrator) GetTrafficChannels(ctx context.Context) ([]domain.TrafficChannel, error) {
	envelope, err := s.Client.Request(ctx, actionPlatforms, leadssuclient.NewParams())
	if err != nil {
		logrus.WithError(err).Error("leadssu: failed to get traffic channels")
		return nil, err
	}

	channels := make([]domain.TrafficChannel, 0)
	for _, record := range envelope.Records() {
		var raw leadssudomain.Platform
		if err := json.Unmarshal(record, &raw); err != nil {
			logrus.WithError(err).Error("leadssu: failed to decode traffic channel")
			return nil, fmt.Errorf("leadssu: decode traffic channel: %w", err)
		}
		channels = append(channels, FactoryTrafficChannel(raw))
	}

	return channels, nil
}

func (s *LeadssuIntegrator) GetOffersData(ctx context.Context, query domain.OfferQuery) ([]domain.Offer, error) {
	action := actionOffers
	params := leadssuclient.NewParams()

	if len(query.OfferIDs) > 0 {
		params.Set("ids", query.OfferIDs)
	} else if query.OfferID > 0 {
		params.Set("id", query.OfferID)
	}

	if query.ChannelID > 0 {
		action = actionConnectedPlatform
		params.Set("platform_id", query.ChannelID)
	}

	paginator := leadssuclient.NewPaginator(s.Client, action, params, s.pageSize)
	offers, err := leadssuclient.Collect(paginator.Records(ctx), decodeOffer)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"action":     action,
			"offer_id":   query.OfferID,
			"offer_ids":  query.OfferIDs,
			"channel_id": query.ChannelID,
			"error":      err.Error(),
		}).Error("leadssu: failed to get offers")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"action": action,
		"offers": len(offers),
		"pages":  paginator.Pages(),
	}).Debug("leadssu: offers retrieved")

	return offers, nil
}

func (s *LeadssuIntegrator) GetLeadsByOfferID(ctx context.Context, filters domain.LeadFilters) ([]domain.Lead, error) {
	params := leadssuclient.NewParams().
		Set("start_date", utils.FormatDate(filters.StartDate)).
		Set("end_date", utils.FormatDate(filters.EndDate))

	if filters.OfferID > 0 {
		params.Set("offer_id", filters.OfferID)
	}
	if filters.ChannelID > 0 {
		params.Set("platform_id", filters.ChannelID)
	}

	paginator := leadssuclient.NewPaginator(s.Client, actionConversions, params, s.pageSize)
	leads, err := leadssuclient.Collect(paginator.Records(ctx), decodeLead)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"offer_id":   filters.OfferID,
			"channel_id": filters.ChannelID,
			"error":      err.Error(),
		}).Error("leadssu: failed to get leads")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"offer_id": filters.OfferID,
		"leads":    len(leads),
		"pages":    paginator.Pages(),
	}).Debug("leadssu: leads retrieved")

	return leads, nil
}

// GetStatisticsOffers faz uma única requisição com limit 500, sem paginação
func (s *LeadssuIntegrator) GetStatisticsOffers(ctx context.Context, filters domain.StatisticsFilters) ([]domain.StatisticsRow, error) {
	params := leadssuclient.NewParams()
	if filters.OfferID > 0 {
		params.Set("offer_id", filters.OfferID)
	}
	if filters.ChannelID > 0 {
		params.Set("platform_id", filters.ChannelID)
	}
	if filters.SubID != "" {
		params.Set("aff_sub1", filters.SubID)
	}
	if filters.Subgroup != "" {
		params.Set("fields", filters.Subgroup)
	}

	group := filters.Group
	if group == "" {
		group = domain.DefaultStatisticsGroup
	}

	params.Set("start_date", utils.FormatDate(filters.StartDate))
	params.Set("end_date", utils.FormatDate(filters.EndDate))
	params.Set("grouping", group)
	params.Set("limit", statisticsLimit)

	envelope, err := s.Client.Request(ctx, actionSummary, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"offer_id": filters.OfferID,
			"grouping": group,
			"error":    err.Error(),
		}).Error("leadssu: failed to get statistics")
		return nil, err
	}

	rows := make([]domain.StatisticsRow, 0)
	for _, record := range envelope.Records() {
		var raw leadssudomain.SummaryRow
		if err := json.Unmarshal(record, &raw); err != nil {
			logrus.WithError(err).Error("leadssu: failed to decode statistics row")
			return nil, fmt.Errorf("leadssu: decode statistics row: %w", err)
		}
		rows = append(rows, FactoryStatisticsRow(raw))
	}

	return rows, nil
}

func (s *LeadssuIntegrator) GetWebmasterCommissions(ctx context.Context, filters domain.CommissionFilters) (*domain.CommissionSummary, error) {
	rows, err := s.GetStatisticsOffers(ctx, domain.StatisticsFilters{
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
		OfferID:   filters.OfferID,
	})
	if err != nil {
		return nil, err
	}

	summary := SummarizeCommissions(rows)
	return &summary, nil
}

// GetOfferLinkByOfferID devolve nil, nil quando o offer não existe
func (s *LeadssuIntegrator) GetOfferLinkByOfferID(ctx context.Context, offerID, channelID int) (*domain.OfferLink, error) {
	offers, err := s.GetOffersData(ctx, domain.OfferQuery{
		OfferID:   offerID,
		ChannelID: channelID,
	})
	if err != nil {
		return nil, err
	}

	if len(offers) == 0 {
		logrus.WithFields(logrus.Fields{
			"offer_id":   offerID,
			"channel_id": channelID,
		}).Info("leadssu: offer not found")
		return nil, nil
	}

	link, err := buildTrackingLink(s.trackingURL, offerID, channelID)
	if err != nil {
		return nil, err
	}

	return &domain.OfferLink{
		OfferID:   offerID,
		ChannelID: channelID,
		URL:       link,
	}, nil
}

// buildTrackingLink preserva a query já existente na URL de tracking
func buildTrackingLink(trackingURL string, offerID, channelID int) (string, error) {
	u, err := url.Parse(trackingURL)
	if err != nil {
		return "", fmt.Errorf("leadssu: invalid tracking url: %w", err)
	}

	params := u.Query()
	params.Set("offer_id", strconv.Itoa(offerID))
	params.Set("pltfm_id", strconv.Itoa(channelID))
	u.RawQuery = params.Encode()

	return u.String(), nil
}

func decodeOffer(record json.RawMessage) (domain.Offer, error) {
	var offer domain.Offer
	if err := json.Unmarshal(record, &offer); err != nil {
		return nil, fmt.Errorf("leadssu: decode offer: %w", err)
	}
	return offer, nil
}

func decodeLead(record json.RawMessage) (domain.Lead, error) {
	var raw leadssudomain.Conversion
	if err := json.Unmarshal(record, &raw); err != nil {
		return domain.Lead{}, fmt.Errorf("leadssu: decode lead: %w", err)
	}
	return FactoryLead(raw), nil
}
