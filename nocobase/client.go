package nocobase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	// NocoBase caps list responses, so bulk reads page at this size.
	defaultPageSize = 200

	requestTimeout = 15 * time.Second
)

// Record is one row of a NocoBase collection. Field semantics are
// collection-defined; readers normalize values defensively.
type Record = map[string]any

// listEnvelope is the NocoBase list response: {"data": [...], "meta": {"count": N}}.
// Some endpoints return a bare array instead, so decoding tolerates both.
type listEnvelope struct {
	Data []Record `json:"data"`
	Meta *struct {
		Count int `json:"count"`
	} `json:"meta"`
}

// Client is an authenticated NocoBase list-API client.
type Client struct {
	httpClient *resty.Client
	logger     *logrus.Logger
}

// NewClient creates a NocoBase client. The token is sent as a bearer token
// together with the fixed role/locale/app headers the upstream expects.
func NewClient(baseURL, apiKey string, logger *logrus.Logger) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("nocobase base url is empty")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("nocobase api key is empty")
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(requestTimeout).
		SetAuthToken(apiKey).
		SetHeader("Accept", "application/json").
		SetHeader("X-Role", "admin").
		SetHeader("X-Locale", "en-US").
		SetHeader("X-App", "Assets").
		SetHeader("X-Timezone", "+05:30").
		SetHeader("X-Hostname", "spaces.iitm.ac.in").
		SetHeader("X-Authentication", "basic")

	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// FetchList performs a single GET against the given path (including any query
// string) and returns the records of that one response.
func (c *Client) FetchList(ctx context.Context, path string) ([]Record, error) {
	records, _, err := c.getList(ctx, path)
	return records, err
}

// FetchAllRecords retrieves every record of the named collection, paging
// until the server-reported count is reached, a short page is returned, or a
// page comes back empty. Any transport error aborts the whole fetch; no
// partial results are returned.
func (c *Client) FetchAllRecords(ctx context.Context, collection string) ([]Record, error) {
	if strings.TrimSpace(collection) == "" {
		return nil, errors.New("collection name is empty")
	}

	var allRecords []Record
	page := 1

	for {
		endpoint := fmt.Sprintf("/api/%s:list?page=%d&pageSize=%d", collection, page, defaultPageSize)
		records, total, err := c.getList(ctx, endpoint)
		if err != nil {
			return nil, err
		}

		if len(records) == 0 {
			break
		}
		allRecords = append(allRecords, records...)

		if total > 0 && len(allRecords) >= total {
			break
		}
		if len(records) < defaultPageSize {
			// Last page.
			break
		}
		page++
	}

	c.logger.WithFields(logrus.Fields{
		"collection": collection,
		"records":    len(allRecords),
		"pages":      page,
	}).Debug("fetched collection from NocoBase")

	return allRecords, nil
}

func (c *Client) getList(ctx context.Context, path string) ([]Record, int, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to call NocoBase API: %w", err)
	}
	if resp.IsError() {
		return nil, 0, fmt.Errorf("NocoBase API error %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	var envelope listEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Data != nil {
		total := 0
		if envelope.Meta != nil {
			total = envelope.Meta.Count
		}
		return envelope.Data, total, nil
	}

	// Some endpoints return a bare array without the envelope.
	var records []Record
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, 0, fmt.Errorf("failed to decode NocoBase response: %w", err)
	}
	return records, 0, nil
}
