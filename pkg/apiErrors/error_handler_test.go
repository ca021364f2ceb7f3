package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrExternalService, "leads.su indisponível", map[string]string{"action": "offers"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"SRV_003","message":"leads.su indisponível","details":{"action":"offers"}}`, rec.Body.String())
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(ErrInvalidFormat))
	assert.Equal(t, http.StatusNotFound, StatusCode(ErrResourceNotFound))
	assert.Equal(t, http.StatusInternalServerError, StatusCode("UNKNOWN"))
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidFormat).Code)

	apiErr := FromError(errors.New("bad date"), ErrInvalidFormat)
	assert.Equal(t, "VAL_003: bad date", apiErr.Error())
}
