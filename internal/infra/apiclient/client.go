package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
	"github.com/daffahilmyf/dictators-seed/internal/domain/service"
	"github.com/google/uuid"
)

const (
	userAgent    = "dictators-seed"
	maxErrorBody = 4 << 10
)

// StatusError is returned when the API answers with an unexpected status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

type Config struct {
	BaseURL string
	// Timeout bounds each call. Zero leaves calls bounded only by ctx.
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

var _ service.DictatorsAPI = (*Client)(nil)

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		httpClient: httpClient,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/dictators", nil, nil)
}

func (c *Client) ListDictators(ctx context.Context) ([]entity.Dictator, error) {
	var out []entity.Dictator
	if err := c.do(ctx, http.MethodGet, "/dictators", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDictator(ctx context.Context, id int64) (entity.Dictator, error) {
	var out entity.Dictator
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/dictators/%d", id), nil, &out); err != nil {
		return entity.Dictator{}, err
	}
	return out, nil
}

func (c *Client) ListAchievements(ctx context.Context) ([]entity.Achievement, error) {
	var out []entity.Achievement
	if err := c.do(ctx, http.MethodGet, "/achievements", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDictator(ctx context.Context, rec entity.DictatorRecord) (entity.Dictator, error) {
	var out entity.Dictator
	if err := c.do(ctx, http.MethodPost, "/init/dictator", rec, &out); err != nil {
		return entity.Dictator{}, err
	}
	if out.ID == 0 {
		return entity.Dictator{}, errors.New("POST /init/dictator: response has no id")
	}
	return out, nil
}

func (c *Client) CreateAchievement(ctx context.Context, dictatorID int64, rec entity.AchievementRecord) (entity.Achievement, error) {
	var out entity.Achievement
	path := fmt.Sprintf("/init/dictator/%d/achievement", dictatorID)
	if err := c.do(ctx, http.MethodPost, path, rec, &out); err != nil {
		return entity.Achievement{}, err
	}
	return out, nil
}

func (c *Client) InitSampleData(ctx context.Context) (entity.SampleDataResult, error) {
	var out entity.SampleDataResult
	if err := c.do(ctx, http.MethodPost, "/init/sample-data", nil, &out); err != nil {
		return entity.SampleDataResult{}, err
	}
	return out, nil
}

// do sends one request and decodes a 200 response into out. Anything other
// than 200 is a *StatusError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s %s: encode: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return nil
}
