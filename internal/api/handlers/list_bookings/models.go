package list_bookings

import (
	"strconv"

	"github.com/m04kA/SMC-CoachScheduling/internal/service/occurrences/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(tenantID int64, date, seriesID, status *string, includeCancelledStr string) (*models.ListRequest, error) {
	req := &models.ListRequest{
		TenantID: tenantID,
		Date:     date,
		SeriesID: seriesID,
		Status:   status,
	}

	// По умолчанию отменённые не показываем
	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
