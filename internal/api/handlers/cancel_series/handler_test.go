package cancel_series

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"
)

const seriesID = "5f0c2a8e-3b1d-4c7a-9e2f-1a2b3c4d5e6f"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	tenantID int64
	seriesID string
	req      *models.CancelRequest
	err      error
}

func (s *stubService) CancelSeries(_ context.Context, tenantID int64, seriesID string, req *models.CancelRequest) (*models.CancelSeriesResponse, error) {
	s.tenantID = tenantID
	s.seriesID = seriesID
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.CancelSeriesResponse{SeriesID: seriesID, Cancelled: 3}, nil
}

func serve(svc *stubService, path, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/tenants/{tenantId}/series/{seriesId}", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, strings.NewReader(body)))
	return rec
}

func TestHandleCancelsSeries(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/api/v1/tenants/7/series/"+seriesID, `{"cancellationReason":"отпуск"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.tenantID)
	assert.Equal(t, seriesID, svc.seriesID)
	require.NotNil(t, svc.req.CancellationReason)
	assert.Equal(t, "отпуск", *svc.req.CancellationReason)

	var body models.CancelSeriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, seriesID, body.SeriesID)
	assert.Equal(t, int64(3), body.Cancelled)
}

func TestHandleWithoutBody(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/api/v1/tenants/7/series/"+seriesID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.req.CancellationReason)
}

func TestHandleErrorMapping(t *testing.T) {
	path := "/api/v1/tenants/7/series/" + seriesID

	assert.Equal(t, http.StatusBadRequest, serve(&stubService{err: occurrences.ErrInvalidInput}, "/api/v1/tenants/7/series/not-a-uuid", "").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubService{err: occurrences.ErrInternal}, path, "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "/api/v1/tenants/abc/series/"+seriesID, "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, path, `{"cancellationReason":`).Code)
}
