package poolapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HeaderUserID заголовок, которым клиент представляется сервису
const HeaderUserID = "X-User-ID"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с PoolService
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PoolService
// userID передается в X-User-ID для управляющих операций
func NewClient(baseURL string, timeout time.Duration, userID string, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		userID:  userID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListLanes получает список дорожек, status пустой - без фильтра
func (c *Client) ListLanes(ctx context.Context, status string) (*LaneList, error) {
	endpoint := c.baseURL + "/api/v1/lanes"
	if status != "" {
		endpoint += "?status=" + url.QueryEscape(status)
	}

	var list LaneList
	if err := c.do(ctx, http.MethodGet, endpoint, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Stats получает агрегированную занятость бассейна
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/api/v1/lanes/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SetMaintenance переводит дорожку на обслуживание
func (c *Client) SetMaintenance(ctx context.Context, laneNumber int) (*Lane, error) {
	return c.laneAction(ctx, http.MethodPut, laneNumber, "maintenance")
}

// ClearMaintenance возвращает дорожку в работу
func (c *Client) ClearMaintenance(ctx context.Context, laneNumber int) (*Lane, error) {
	return c.laneAction(ctx, http.MethodDelete, laneNumber, "maintenance")
}

// ReleaseLane полностью освобождает дорожку
func (c *Client) ReleaseLane(ctx context.Context, laneNumber int) (*Lane, error) {
	return c.laneAction(ctx, http.MethodPost, laneNumber, "release")
}

func (c *Client) laneAction(ctx context.Context, method string, laneNumber int, action string) (*Lane, error) {
	endpoint := fmt.Sprintf("%s/api/v1/lanes/%d/%s", c.baseURL, laneNumber, action)

	var lane Lane
	if err := c.do(ctx, method, endpoint, &lane); err != nil {
		c.log.Warn("PoolService %s %s failed for lane=%d: %v", method, action, laneNumber, err)
		return nil, err
	}

	c.log.Info("PoolService %s %s done for lane=%d, status=%s", method, action, laneNumber, lane.Status)
	return &lane, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userID != "" {
		req.Header.Set(HeaderUserID, c.userID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrLaneNotFound, readMessage(resp.Body))
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, readMessage(resp.Body))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readMessage(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// readMessage достает message из тела ошибки, при неудаче возвращает тело как есть
func readMessage(body io.Reader) string {
	raw, _ := io.ReadAll(body)
	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(raw)
}
