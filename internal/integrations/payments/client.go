package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client HTTP клиент сервиса платежей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса платежей
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyPaymentRequired сообщает сервису платежей о новом занятии с ценой
func (c *Client) NotifyPaymentRequired(ctx context.Context, req PaymentRequest) error {
	url := fmt.Sprintf("%s/internal/payments", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", fmt.Sprintf("occurrence-%d", req.OccurrenceID))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK,
		resp.StatusCode == http.StatusCreated,
		resp.StatusCode == http.StatusAccepted,
		resp.StatusCode == http.StatusConflict: // уже выставлено раньше
		c.log.Info("Payment requested for occurrence_id=%d, amount=%s", req.OccurrenceID, req.Amount.String())
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, errResp.Message)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}
}
