package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAppErrorWrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	appErr := BadGatewayError("upstream unavailable").WithError(cause)

	assert.Equal(t, "ERR_UPSTREAM", appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "upstream unavailable")
	assert.Contains(t, appErr.Error(), "timeout")
}

func TestAppErrorConstructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequestError("bad").Status)
	assert.Equal(t, http.StatusNotFound, NotFoundError("missing").Status)
	assert.Equal(t, http.StatusInternalServerError, InternalError("boom").Status)
	assert.Equal(t, "series 433 unavailable", BadGatewayErrorf("series %d unavailable", 433).Message)
}

func TestAppErrorResponseMapsStatusAndCode(t *testing.T) {
	c, rec := newTestContext(t)

	require.NoError(t, AppErrorResponse(c, BadGatewayError("upstream unavailable")))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "ERR_UPSTREAM", envelope.Error)
	assert.Equal(t, "upstream unavailable", envelope.Message)
}

func TestAppErrorResponseDefaultsToInternal(t *testing.T) {
	c, rec := newTestContext(t)

	require.NoError(t, AppErrorResponse(c, errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "ERR_INTERNAL", envelope.Error)
}

func TestAppErrorResponseUsesOutermostAppError(t *testing.T) {
	c, rec := newTestContext(t)

	wrapped := InternalError("wrapper").WithError(BadGatewayError("inner"))
	require.NoError(t, AppErrorResponse(c, wrapped))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
