package update_booking_status

import (
	"context"
	"fmt"
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
	req *models.UpdateStatusRequest
	err error
}

func (s *stubService) UpdateStatus(_ context.Context, _, id int64, req *models.UpdateStatusRequest) (*models.OccurrenceResponse, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.OccurrenceResponse{ID: id, Status: req.Status}, nil
}

func serve(svc *stubService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/tenants/{tenantId}/bookings/{occurrenceId}/status", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/tenants/7/bookings/5/status", strings.NewReader(body)))
	return rec
}

func TestHandleUpdatesStatus(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "completed", svc.req.Status)
	assert.Contains(t, rec.Body.String(), `"completed"`)
}

func TestHandleErrorMapping(t *testing.T) {
	body := `{"status":"completed"}`
	cancelledConcurrently := fmt.Errorf("%w: cancelled -> completed", occurrences.ErrInvalidTransition)

	assert.Equal(t, http.StatusNotFound, serve(&stubService{err: occurrences.ErrOccurrenceNotFound}, body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{err: occurrences.ErrInvalidInput}, body).Code)
	assert.Equal(t, http.StatusConflict, serve(&stubService{err: cancelledConcurrently}, body).Code)
	assert.Equal(t, http.StatusConflict, serve(&stubService{err: occurrences.ErrCannotCancel}, body).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubService{err: occurrences.ErrInternal}, body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, `{"status":`).Code)
}
