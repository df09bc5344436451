package cancel_booking

import (
	"context"
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	req *models.CancelRequest
	err error
}

func (s *stubService) Cancel(_ context.Context, _, id int64, req *models.CancelRequest) (*models.OccurrenceResponse, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.OccurrenceResponse{ID: id, Status: "cancelled"}, nil
}

func serve(svc *stubService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/tenants/{tenantId}/bookings/{occurrenceId}/cancel", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/tenants/7/bookings/5/cancel", strings.NewReader(body)))
	return rec
}

func TestHandleWithReason(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, `{"cancellationReason":"болезнь"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.req.CancellationReason)
	assert.Equal(t, "болезнь", *svc.req.CancellationReason)
}

func TestHandleWithoutBody(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.req.CancellationReason)
}

func TestHandleErrorMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(&stubService{err: occurrences.ErrOccurrenceNotFound}, "").Code)
	assert.Equal(t, http.StatusConflict, serve(&stubService{err: occurrences.ErrCannotCancel}, "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{err: occurrences.ErrInvalidInput}, "").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubService{err: occurrences.ErrInternal}, "").Code)
}
