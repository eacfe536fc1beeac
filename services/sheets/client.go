package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"sweetdots/config"
	"sweetdots/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	defaultBaseURL  = "https://sheets.googleapis.com/v4/spreadsheets"
	weekRange       = "A1:H100"
	gridCachePrefix = "sheetGrid:"
)

// Client reads grids from the spreadsheet backing the schedule.
type Client interface {
	ListWeekSheets(ctx context.Context) ([]string, error)
	FetchGrid(ctx context.Context, sheetName string, bypassCache bool) ([][]string, error)
}

// DefaultClient talks to the Google Sheets v4 REST API with an API key and
// caches fetched grids in Redis so a page of staff refreshing all morning
// does not hammer the quota.
type DefaultClient struct {
	APIKey        string
	SpreadsheetID string
	BaseURL       string
	HTTPClient    *http.Client
	Cache         *redis.Client
	CacheTTL      time.Duration
	Logger        *zap.Logger
}

// NewDefaultClient builds a client from AppConfig.
func NewDefaultClient() *DefaultClient {
	return &DefaultClient{
		APIKey:        config.AppConfig.SheetsAPIKey,
		SpreadsheetID: config.AppConfig.SheetID,
		BaseURL:       defaultBaseURL,
		HTTPClient:    &http.Client{Timeout: 10 * time.Second},
		Cache:         utils.GetGridCacheClient(),
		CacheTTL:      time.Duration(config.AppConfig.GridCacheTTL) * time.Second,
		Logger:        utils.GetLogger(),
	}
}

// spreadsheetMetadata mirrors the slice of the metadata response we need.
type spreadsheetMetadata struct {
	Sheets []struct {
		Properties struct {
			Title string `json:"title"`
		} `json:"properties"`
	} `json:"sheets"`
}

// valuesResponse mirrors the values.get response body.
type valuesResponse struct {
	Values [][]string `json:"values"`
}

func (c *DefaultClient) checkConfig() error {
	if c.APIKey == "" || c.SpreadsheetID == "" {
		return ConfigMissingError{Detail: "API key or spreadsheet ID not set"}
	}
	return nil
}

func (c *DefaultClient) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build sheets request: %w", err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach sheets API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return HTTPStatusError{Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return MalformedPayloadError{Reason: "could not decode response body"}
	}
	return nil
}

// ListWeekSheets fetches the spreadsheet's sheet titles, filtered and
// ordered for week navigation.
func (c *DefaultClient) ListWeekSheets(ctx context.Context) ([]string, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	var meta spreadsheetMetadata
	metaURL := fmt.Sprintf("%s/%s?key=%s", c.BaseURL, c.SpreadsheetID, url.QueryEscape(c.APIKey))
	if err := c.get(ctx, metaURL, &meta); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(meta.Sheets))
	for _, sheet := range meta.Sheets {
		titles = append(titles, sheet.Properties.Title)
	}
	return FilterWeekTitles(titles), nil
}

// FetchGrid returns the cell grid of the named sheet, reading through the
// Redis cache unless bypassCache is set (the user hit refresh).
func (c *DefaultClient) FetchGrid(ctx context.Context, sheetName string, bypassCache bool) ([][]string, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	cacheKey := gridCachePrefix + sheetName
	if !bypassCache && c.Cache != nil {
		if data, err := c.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var rows [][]string
			if json.Unmarshal([]byte(data), &rows) == nil {
				return rows, nil
			}
		}
	}

	rangeRef := url.PathEscape(sheetName + "!" + weekRange)
	valuesURL := fmt.Sprintf("%s/%s/values/%s?key=%s", c.BaseURL, c.SpreadsheetID, rangeRef, url.QueryEscape(c.APIKey))

	var body valuesResponse
	if err := c.get(ctx, valuesURL, &body); err != nil {
		return nil, err
	}
	if len(body.Values) == 0 {
		return nil, MalformedPayloadError{Reason: "no values returned for sheet " + sheetName}
	}

	if c.Cache != nil {
		if data, err := json.Marshal(body.Values); err == nil {
			if err := c.Cache.Set(ctx, cacheKey, data, c.CacheTTL).Err(); err != nil && c.Logger != nil {
				c.Logger.Warn("Failed to cache sheet grid", zap.String("sheet", sheetName), zap.Error(err))
			}
		}
	}
	return body.Values, nil
}
