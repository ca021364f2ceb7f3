package leadssudomain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, body string) *Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env))
	return &env
}

func TestEnvelope_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name: "valid envelope",
			body: `{"error":false,"code":200,"data":{"balance":"10.5"},"count":1}`,
		},
		{
			name: "empty array data is present",
			body: `{"code":200,"data":[],"count":0}`,
		},
		{
			name:    "error flag set even with code 200",
			body:    `{"error":true,"code":200,"data":[1]}`,
			wantErr: ErrEnvelopeError,
		},
		{
			name:    "error message",
			body:    `{"error":"invalid token","code":200,"data":[1]}`,
			wantErr: ErrEnvelopeError,
		},
		{
			name:    "code different from 200",
			body:    `{"error":false,"code":401,"data":[1]}`,
			wantErr: ErrEnvelopeCode,
		},
		{
			name: "code as numeric string",
			body: `{"code":"200","data":[1]}`,
		},
		{
			name: "code as float",
			body: `{"code":200.0,"data":[1]}`,
		},
		{
			name:    "code as non numeric string",
			body:    `{"code":"ok","data":[1]}`,
			wantErr: ErrEnvelopeCode,
		},
		{
			name:    "missing code",
			body:    `{"data":[1]}`,
			wantErr: ErrEnvelopeCode,
		},
		{
			name:    "null data",
			body:    `{"error":false,"code":200,"data":null}`,
			wantErr: ErrEnvelopeNoData,
		},
		{
			name:    "missing data",
			body:    `{"error":false,"code":200}`,
			wantErr: ErrEnvelopeNoData,
		},
		{
			name:    "false data",
			body:    `{"error":0,"code":200,"data":false}`,
			wantErr: ErrEnvelopeNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decodeEnvelope(t, tt.body).Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEnvelope_Records(t *testing.T) {
	env := decodeEnvelope(t, `{"code":200,"data":[{"id":1},{"id":2}],"count":"2"}`)

	records := env.Records()
	require.Len(t, records, 2)
	assert.JSONEq(t, `{"id":1}`, string(records[0]))
	assert.Equal(t, 2, env.Total())

	notArray := decodeEnvelope(t, `{"code":200,"data":{"id":1}}`)
	assert.Empty(t, notArray.Records())
}

func TestNumber_Unmarshal(t *testing.T) {
	var row SummaryRow
	err := json.Unmarshal([]byte(`{"offer_id":"42","offer_name":"Loans","clicks":10,"conversions":null,"payout":"12.50","pending_payout":""}`), &row)
	require.NoError(t, err)

	assert.Equal(t, 42, row.OfferID.Int())
	assert.Equal(t, "Loans", row.OfferName.String())
	assert.Equal(t, 10, row.Clicks.Int())
	assert.Equal(t, 0, row.Conversions.Int())
	assert.Equal(t, 12.5, row.Payout.Float64())
	assert.Equal(t, 0.0, row.PendingPayout.Float64())
	assert.Equal(t, 0.0, row.RejectedPayout.Float64())

	for _, body := range []string{`"abc"`, `"n/a"`, `true`, `{}`} {
		n := Number(7)
		require.NoError(t, json.Unmarshal([]byte(body), &n), body)
		assert.Equal(t, 0.0, n.Float64(), body)
	}
}

func TestConversion_BadPayoutKeepsRecord(t *testing.T) {
	var conv Conversion
	require.NoError(t, json.Unmarshal([]byte(`{"id":"7","offer_id":10,"status":"approved","payout":"n/a"}`), &conv))

	assert.Equal(t, int64(7), conv.ID.Int64())
	assert.Equal(t, 10, conv.OfferID.Int())
	assert.Equal(t, 0.0, conv.Payout.Float64())
}

func TestText_UnmarshalNumber(t *testing.T) {
	var conv Conversion
	require.NoError(t, json.Unmarshal([]byte(`{"aff_sub1":123,"aff_sub2":null}`), &conv))

	assert.Equal(t, "123", conv.AffSub1.String())
	assert.Equal(t, "", conv.AffSub2.String())
}
