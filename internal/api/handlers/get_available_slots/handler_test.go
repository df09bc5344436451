package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachScheduling/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CoachScheduling/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CoachScheduling/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc *stubUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/tenants/{tenantId}/available-slots", NewHandler(uc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleReturnsSlotsWithPrices(t *testing.T) {
	price := decimal.RequireFromString("20000")
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		TenantID:        7,
		Date:            types.MustDate("2026-10-19"),
		DurationMinutes: 60,
		Slots: []getAvailableSlots.Slot{
			{StartTime: "09:00", EndTime: "10:00", DurationMinutes: 60, Price: &price, Tier: domain.TierLow},
			{StartTime: "11:00", EndTime: "12:00", DurationMinutes: 60},
		},
		DurationsOffered: []int{60, 90},
	}}

	rec := serve(uc, "/api/v1/tenants/7/available-slots?date=2026-10-19&duration=60&sport=padel&participants=2")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got.Sport)
	assert.Equal(t, domain.SportPadel, *uc.got.Sport)
	assert.Equal(t, 2, uc.got.Participants)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "20000.00", *resp.Slots[0].Price)
	assert.Nil(t, resp.Slots[1].Price)
	assert.Equal(t, []int{60, 90}, resp.DurationsOffered)
}

func TestHandleEmptyListIsOK(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{Slots: []getAvailableSlots.Slot{}}}

	rec := serve(uc, "/api/v1/tenants/7/available-slots?date=2026-10-19&duration=45")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slots":[]`)
	assert.Nil(t, uc.got.Sport)
}

func TestHandleBadParams(t *testing.T) {
	for _, target := range []string{
		"/api/v1/tenants/abc/available-slots?date=2026-10-19&duration=60",
		"/api/v1/tenants/0/available-slots?date=2026-10-19&duration=60",
		"/api/v1/tenants/7/available-slots?duration=60",
		"/api/v1/tenants/7/available-slots?date=2026-10-19",
		"/api/v1/tenants/7/available-slots?date=2026-10-19&duration=sixty",
		"/api/v1/tenants/7/available-slots?date=19-10-2026&duration=60",
	} {
		rec := serve(&stubUseCase{}, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}

	rec := serve(&stubUseCase{err: getAvailableSlots.ErrInternal}, "/api/v1/tenants/7/available-slots?date=2026-10-19&duration=60")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
