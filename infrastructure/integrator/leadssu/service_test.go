package leadssu

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	leadssudomain "github.com/vfg2006/leadssu-webmaster/infrastructure/integrator/leadssu/domain"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/integrator/leadssu/leadssuclient"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/integrator/leadssu/mocks"
	"github.com/vfg2006/leadssu-webmaster/internal/config"
	"github.com/vfg2006/leadssu-webmaster/internal/domain"
	"go.uber.org/mock/gomock"
)

func envelope(data string, count int) *leadssudomain.Envelope {
	return &leadssudomain.Envelope{
		Code:  200,
		Data:  json.RawMessage(data),
		Count: leadssudomain.Number(count),
	}
}

func requestFailure(action string) error {
	return &leadssuclient.RequestError{
		Kind:   leadssuclient.EnvelopeFailure,
		Action: action,
		Err:    leadssudomain.ErrEnvelopeError,
	}
}

func newTestIntegrator(t *testing.T, pageSize int) (Integrator, *mocks.MockRequester) {
	ctrl := gomock.NewController(t)
	requester := mocks.NewMockRequester(ctrl)

	cfg := &config.Config{Leadssu: config.Leadssu{PageSize: pageSize}}
	return New(cfg, requester), requester
}

func paramValue(params *leadssuclient.Params, key string) any {
	v, _ := params.Get(key)
	return v
}

func TestLeadssuIntegrator_GetProfile(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 500)

	requester.EXPECT().
		Request(gomock.Any(), "account", gomock.Any()).
		Return(envelope(`{"id":77,"email":"web@master.io"}`, 0), nil)

	profile, err := integrator.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(77), profile["id"])
	assert.Equal(t, "web@master.io", profile["email"])
}

func TestLeadssuIntegrator_GetProfileFailure(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 500)

	requester.EXPECT().
		Request(gomock.Any(), "account", gomock.Any()).
		Return(nil, requestFailure("account"))

	profile, err := integrator.GetProfile(context.Background())
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, leadssuclient.ErrRequestFailed)
}

func TestLeadssuIntegrator_GetBalance(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 500)

	requester.EXPECT().
		Request(gomock.Any(), "account/balance", gomock.Any()).
		Return(envelope(`{"balance":"100.50","hold":20,"available_balance":"80.5","ordered":"0","paid":1000}`, 0), nil)

	balance, err := integrator.GetBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.Balance{
		MainBalance:      100.5,
		HoldAdv:          20,
		AvailableBalance: 80.5,
		Withdrawal:       0,
		Withdrawn:        1000,
	}, balance)
}

func TestLeadssuIntegrator_GetBalanceFailure(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 500)

	requester.EXPECT().
		Request(gomock.Any(), "account/balance", gomock.Any()).
		Return(nil, requestFailure("account/balance"))

	balance, err := integrator.GetBalance(context.Background())
	assert.Nil(t, balance)
	assert.ErrorIs(t, err, leadssuclient.ErrRequestFailed)
}

func TestLeadssuIntegrator_GetTrafficChannels(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []domain.TrafficChannel
	}{
		{
			name: "numeric string ids",
			data: `[{"id":"12","name":"Site"},{"id":13,"name":"Doorway"}]`,
			want: []domain.TrafficChannel{{ID: 12, Name: "Site"}, {ID: 13, Name: "Doorway"}},
		},
		{
			name: "data is not an array",
			data: `{"id":1}`,
			want: []domain.TrafficChannel{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, requester := newTestIntegrator(t, 500)

			requester.EXPECT().
				Request(gomock.Any(), "platforms", gomock.Any()).
				Return(envelope(tt.data, 0), nil)

			channels, err := integrator.GetTrafficChannels(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, channels)
		})
	}
}

func TestLeadssuIntegrator_GetOffersDataConcatenatesPagesOnce(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 2)

	gomock.InOrder(
		requester.EXPECT().
			Request(gomock.Any(), "offers", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params *leadssuclient.Params) (*leadssudomain.Envelope, error) {
				assert.Equal(t, 0, paramValue(params, "offset"))
				return envelope(`[{"id":1,"name":"A"},{"id":2,"name":"B"}]`, 3), nil
			}),
		requester.EXPECT().
			Request(gomock.Any(), "offers", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params *leadssuclient.Params) (*leadssudomain.Envelope, error) {
				assert.Equal(t, 2, paramValue(params, "offset"))
				return envelope(`[{"id":3,"name":"C"}]`, 3), nil
			}),
	)

	offers, err := integrator.GetOffersData(context.Background(), domain.OfferQuery{})
	require.NoError(t, err)
	require.Len(t, offers, 3)
	assert.Equal(t, 1, offers[0].ID())
	assert.Equal(t, 2, offers[1].ID())
	assert.Equal(t, 3, offers[2].ID())
	assert.Equal(t, "C", offers[2]["name"])
}

func TestLeadssuIntegrator_GetOffersDataParams(t *testing.T) {
	tests := []struct {
		name       string
		query      domain.OfferQuery
		wantAction string
		wantQuery  string
	}{
		{
			name:       "single offer",
			query:      domain.OfferQuery{OfferID: 5},
			wantAction: "offers",
			wantQuery:  "id=5&offset=0&limit=500",
		},
		{
			name:       "several offers",
			query:      domain.OfferQuery{OfferIDs: []int{5, 6}},
			wantAction: "offers",
			wantQuery:  "ids=%5B5%2C6%5D&offset=0&limit=500",
		},
		{
			name:       "connected platform",
			query:      domain.OfferQuery{OfferID: 5, ChannelID: 9},
			wantAction: "offers/connectedPlatforms",
			wantQuery:  "id=5&platform_id=9&offset=0&limit=500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, requester := newTestIntegrator(t, 500)

			requester.EXPECT().
				Request(gomock.Any(), tt.wantAction, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, params *leadssuclient.Params) (*leadssudomain.Envelope, error) {
					assert.Equal(t, tt.wantQuery, params.Encode())
					return envelope(`[]`, 0), nil
				})

			offers, err := integrator.GetOffersData(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Empty(t, offers)
		})
	}
}

func TestLeadssuIntegrator_GetOffersDataAbortsOnPageFailure(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 1)

	gomock.InOrder(
		requester.EXPECT().
			Request(gomock.Any(), "offers", gomock.Any()).
			Return(envelope(`[{"id":1}]`, 2), nil),
		requester.EXPECT().
			Request(gomock.Any(), "offers", gomock.Any()).
			Return(nil, requestFailure("offers")),
	)

	offers, err := integrator.GetOffersData(context.Background(), domain.OfferQuery{})
	assert.Nil(t, offers)
	assert.ErrorIs(t, err, leadssuclient.ErrRequestFailed)
}

func TestLeadssuIntegrator_GetLeadsByOfferID(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 500)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)

	requester.EXPECT().
		Request(gomock.Any(), "conversions", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params *leadssuclient.Params) (*leadssudomain.Envelope, error) {
			assert.Equal(t, "start_date=2024-01-01&end_date=2024-01-31&offer_id=10&platform_id=3&offset=0&limit=500", params.Encode())
			return envelope(`[
				{"id":"1001","offer_id":"10","status":"pending","payout":"12.5","aff_sub1":"abc","aff_sub2":null,"created":"2024-01-05 10:00:00"},
				{"id":1002,"offer_id":10,"status":"approved","payout":7,"aff_sub1":"","aff_sub2":"x","created":"not a date"},
				{"id":1003,"offer_id":10,"status":"hold","payout":0,"created":"2024-01-06T08:30:00Z"}
			]`, 3), nil
		})

	leads, err := integrator.GetLeadsByOfferID(context.Background(), domain.LeadFilters{
		StartDate: start,
		EndDate:   end,
		OfferID:   10,
		ChannelID: 3,
	})
	require.NoError(t, err)
	require.Len(t, leads, 3)

	assert.Equal(t, domain.Lead{
		OrderID:     1001,
		OfferID:     10,
		Status:      domain.LeadStatusOpen,
		Commission:  12.5,
		Subaccount:  "abc",
		Subaccount2: "",
		LeadTime:    time.Date(2024, 1, 5, 10, 0, 0, 0, time.Local).UnixMilli(),
	}, leads[0])

	assert.Equal(t, domain.LeadStatusApproved, leads[1].Status)
	assert.Equal(t, int64(0), leads[1].LeadTime)

	assert.Equal(t, domain.LeadStatus("hold"), leads[2].Status)
	assert.False(t, leads[2].Status.IsKnown())
	assert.Equal(t, time.Date(2024, 1, 6, 8, 30, 0, 0, time.UTC).UnixMilli(), leads[2].LeadTime)
}

func TestLeadssuIntegrator_GetLeadsByOfferIDBadPayout(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 2)

	gomock.InOrder(
		requester.EXPECT().
			Request(gomock.Any(), "conversions", gomock.Any()).
			Return(envelope(`[
				{"id":1,"offer_id":10,"status":"approved","payout":"4.5"},
				{"id":2,"offer_id":10,"status":"pending","payout":"n/a"}
			]`, 3), nil),
		requester.EXPECT().
			Request(gomock.Any(), "conversions", gomock.Any()).
			Return(envelope(`[{"id":3,"offer_id":10,"status":"rejected","payout":1}]`, 3), nil),
	)

	leads, err := integrator.GetLeadsByOfferID(context.Background(), domain.LeadFilters{OfferID: 10})
	require.NoError(t, err)
	require.Len(t, leads, 3)

	assert.Equal(t, 4.5, leads[0].Commission)
	assert.Equal(t, int64(2), leads[1].OrderID)
	assert.Equal(t, 0.0, leads[1].Commission)
	assert.Equal(t, domain.LeadStatusOpen, leads[1].Status)
	assert.Equal(t, 1.0, leads[2].Commission)
}

func TestLeadssuIntegrator_GetLeadsByOfferIDFailure(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 500)

	requester.EXPECT().
		Request(gomock.Any(), "conversions", gomock.Any()).
		Return(nil, requestFailure("conversions"))

	leads, err := integrator.GetLeadsByOfferID(context.Background(), domain.LeadFilters{})
	assert.Nil(t, leads)
	assert.ErrorIs(t, err, leadssuclient.ErrRequestFailed)
}

func TestLeadssuIntegrator_GetStatisticsOffers(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 500)

	requester.EXPECT().
		Request(gomock.Any(), "reports/summary", gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, _ string, params *leadssuclient.Params) (*leadssudomain.Envelope, error) {
			assert.Equal(t, "offer_id=10&aff_sub1=sub&start_date=2024-01-01&end_date=2024-01-31&grouping=year&limit=500", params.Encode())
			return envelope(`[
				{"offer_id":"10","offer_name":"Loans","clicks":3,"conversions":2,"conversions_rejected":0,"conversions_pending":1,"conversions_approved":1,"pending_payout":"5.5","payout":10,"rejected_payout":"1.25"},
				{"offer_id":11,"offer_name":"Cards"}
			]`, 2), nil
		})

	rows, err := integrator.GetStatisticsOffers(context.Background(), domain.StatisticsFilters{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		EndDate:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local),
		OfferID:   10,
		SubID:     "sub",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, domain.StatisticsRow{
		OfferID:            10,
		OfferName:          "Loans",
		Clicks:             3,
		Leads:              2,
		LeadsRejected:      0,
		LeadsOpen:          1,
		LeadsApproved:      1,
		CommissionRejected: 1.25,
		CommissionOpen:     5.5,
		CommissionApproved: 10,
		CR:                 66.67,
		AR:                 50,
	}, rows[0])

	assert.Equal(t, domain.StatisticsRow{OfferID: 11, OfferName: "Cards"}, rows[1])
}

func TestLeadssuIntegrator_GetStatisticsOffersFailure(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 500)

	requester.EXPECT().
		Request(gomock.Any(), "reports/summary", gomock.Any()).
		Return(nil, requestFailure("reports/summary"))

	rows, err := integrator.GetStatisticsOffers(context.Background(), domain.StatisticsFilters{})
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, leadssuclient.ErrRequestFailed)
}

func TestLeadssuIntegrator_GetWebmasterCommissions(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 500)

	requester.EXPECT().
		Request(gomock.Any(), "reports/summary", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params *leadssuclient.Params) (*leadssudomain.Envelope, error) {
			assert.Equal(t, "year", paramValue(params, "grouping"))
			return envelope(`[
				{"offer_id":1,"pending_payout":10.005,"payout":"1.10","rejected_payout":0.2},
				{"offer_id":2,"pending_payout":10.005,"payout":"2.20","rejected_payout":0.1}
			]`, 2), nil
		})

	summary, err := integrator.GetWebmasterCommissions(context.Background(), domain.CommissionFilters{})
	require.NoError(t, err)
	assert.Equal(t, &domain.CommissionSummary{
		CommissionRejected: 0.3,
		CommissionOpen:     20.02,
		CommissionApproved: 3.3,
	}, summary)
}

func TestLeadssuIntegrator_GetWebmasterCommissionsFailure(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 500)

	requester.EXPECT().
		Request(gomock.Any(), "reports/summary", gomock.Any()).
		Return(nil, requestFailure("reports/summary"))

	summary, err := integrator.GetWebmasterCommissions(context.Background(), domain.CommissionFilters{})
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, leadssuclient.ErrRequestFailed))
}

func TestLeadssuIntegrator_GetOfferLinkByOfferID(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 500)

	requester.EXPECT().
		Request(gomock.Any(), "offers/connectedPlatforms", gomock.Any()).
		Return(envelope(`[{"id":123}]`, 1), nil)

	link, err := integrator.GetOfferLinkByOfferID(context.Background(), 123, 45)
	require.NoError(t, err)
	assert.Equal(t, "https://pxl.leads.su/aff_c?offer_id=123&pltfm_id=45", link.URL)
	assert.Equal(t, 123, link.OfferID)
	assert.Equal(t, 45, link.ChannelID)
}

func TestLeadssuIntegrator_GetOfferLinkByOfferIDNotFound(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 500)

	requester.EXPECT().
		Request(gomock.Any(), "offers/connectedPlatforms", gomock.Any()).
		Return(envelope(`[]`, 0), nil)

	link, err := integrator.GetOfferLinkByOfferID(context.Background(), 123, 45)
	assert.NoError(t, err)
	assert.Nil(t, link)
}

func TestLeadssuIntegrator_GetOfferLinkByOfferIDFailure(t *testing.T) {
	integrator, requester := newTestIntegrator(t, 500)

	requester.EXPECT().
		Request(gomock.Any(), "offers/connectedPlatforms", gomock.Any()).
		Return(nil, requestFailure("offers/connectedPlatforms"))

	link, err := integrator.GetOfferLinkByOfferID(context.Background(), 123, 45)
	assert.Nil(t, link)
	assert.ErrorIs(t, err, leadssuclient.ErrRequestFailed)
}

func TestNew_CustomTrackingURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	requester := mocks.NewMockRequester(ctrl)

	integrator := New(&config.Config{Leadssu: config.Leadssu{TrackingURL: "http://localhost/aff_c"}}, requester)

	requester.EXPECT().
		Request(gomock.Any(), "offers/connectedPlatforms", gomock.Any()).
		Return(envelope(`[{"id":1}]`, 1), nil)

	link, err := integrator.GetOfferLinkByOfferID(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/aff_c?offer_id=1&pltfm_id=2", link.URL)
}

func TestGetOfferLinkByOfferID_TrackingURLWithQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	requester := mocks.NewMockRequester(ctrl)

	integrator := New(&config.Config{Leadssu: config.Leadssu{TrackingURL: "http://localhost/aff_c?src=panel&offer_id=9"}}, requester)

	requester.EXPECT().
		Request(gomock.Any(), "offers/connectedPlatforms", gomock.Any()).
		Return(envelope(`[{"id":1}]`, 1), nil)

	link, err := integrator.GetOfferLinkByOfferID(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/aff_c?offer_id=1&pltfm_id=2&src=panel", link.URL)
}

func TestBuildTrackingLink_InvalidURL(t *testing.T) {
	link, err := buildTrackingLink("http://local host/%zz", 1, 2)
	assert.Empty(t, link)
	assert.Error(t, err)
}
