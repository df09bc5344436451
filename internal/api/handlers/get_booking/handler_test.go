package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences"
	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	tenantID int64
	err      error
}

func (s *stubService) GetByID(_ context.Context, tenantID, id int64) (*models.OccurrenceResponse, error) {
	s.tenantID = tenantID
	if s.err != nil {
		return nil, s.err
	}
	return &models.OccurrenceResponse{ID: id, TenantID: tenantID, Status: "scheduled"}, nil
}

func serve(svc *stubService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/tenants/{tenantId}/bookings/{occurrenceId}", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "/api/v1/tenants/7/bookings/5")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.tenantID)

	assert.Equal(t, http.StatusNotFound, serve(&stubService{err: occurrences.ErrOccurrenceNotFound}, "/api/v1/tenants/7/bookings/5").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubService{err: occurrences.ErrInternal}, "/api/v1/tenants/7/bookings/5").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "/api/v1/tenants/7/bookings/x").Code)
}
