package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// ErrRecordNotFound is returned when the store reports no such record.
var ErrRecordNotFound = errors.New("airtable: record not found")

type (
	// Conf configures the record store connection. Field overrides let an
	// operator rename store columns without a code change: each logical
	// field maps to an ordered candidate list, primary name first.
	Conf struct {
		BaseUrl        string `json:",default=https://api.airtable.com/v0"`
		ApiKey         string
		BaseId         string
		TimeoutSeconds int `json:",default=15"`
		Tables         TablesConf
		Fields         map[string][]string `json:",optional"`
	}

	TablesConf struct {
		Closet  string `json:",default=ClosetItems"`
		Outfits string `json:",default=Outfits"`
		Orders  string `json:",default=Orders"`
	}

	// Record is one row of a table. Fields hold whatever the store returns;
	// typed access goes through the helpers in fields.go.
	Record struct {
		ID          string                 `json:"id"`
		Fields      map[string]interface{} `json:"fields"`
		CreatedTime string                 `json:"createdTime,omitempty"`
	}

	// Error is a non-404 failure reported by the store.
	Error struct {
		StatusCode int
		Type       string
		Message    string
	}

	Client struct {
		conf  Conf
		httpc *http.Client
	}
)

func (e *Error) Error() string {
	return fmt.Sprintf("airtable: %s (%d): %s", e.Type, e.StatusCode, e.Message)
}

// MustNewClient builds a store client or panics on unusable configuration.
func MustNewClient(c Conf) *Client {
	if c.ApiKey == "" {
		logx.Must(errors.New("airtable: api key is required"))
	}
	if c.BaseId == "" {
		logx.Must(errors.New("airtable: base id is required"))
	}
	if c.BaseUrl == "" {
		c.BaseUrl = "https://api.airtable.com/v0"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 15
	}
	return &Client{
		conf: c,
		httpc: &http.Client{
			Timeout: time.Duration(c.TimeoutSeconds) * time.Second,
		},
	}
}

// Find fetches one record by id. A store 404 becomes ErrRecordNotFound.
func (c *Client) Find(ctx context.Context, table, id string) (*Record, error) {
	body, status, err := c.do(ctx, http.MethodGet, c.recordURL(table, id), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, ErrRecordNotFound
	}
	if status != http.StatusOK {
		return nil, parseError(body, status)
	}

	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("airtable: decode record: %w", err)
	}
	return &rec, nil
}

// Query runs a formula filter against a table, following the store's offset
// pagination. maxRecords caps the total result size; zero means no cap.
func (c *Client) Query(ctx context.Context, table, formula string, maxRecords int) ([]Record, error) {
	var out []Record
	offset := ""
	for {
		params := url.Values{}
		if formula != "" {
			params.Set("filterByFormula", formula)
		}
		if maxRecords > 0 {
			params.Set("maxRecords", fmt.Sprint(maxRecords))
		}
		if offset != "" {
			params.Set("offset", offset)
		}

		body, status, err := c.do(ctx, http.MethodGet, c.tableURL(table)+"?"+params.Encode(), nil)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, parseError(body, status)
		}

		var page struct {
			Records []Record `json:"records"`
			Offset  string   `json:"offset"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("airtable: decode page: %w", err)
		}
		out = append(out, page.Records...)

		if page.Offset == "" || (maxRecords > 0 && len(out) >= maxRecords) {
			break
		}
		offset = page.Offset
	}

	if maxRecords > 0 && len(out) > maxRecords {
		out = out[:maxRecords]
	}
	return out, nil
}

// Create inserts a record. typecast lets the store coerce field values,
// which keeps linked-record and select columns tolerant of plain strings.
func (c *Client) Create(ctx context.Context, table string, fields map[string]interface{}) (*Record, error) {
	payload := map[string]interface{}{
		"fields":   fields,
		"typecast": true,
	}
	body, status, err := c.do(ctx, http.MethodPost, c.tableURL(table), payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, parseError(body, status)
	}

	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("airtable: decode record: %w", err)
	}
	return &rec, nil
}

// Update patches the supplied fields only, leaving the rest untouched.
func (c *Client) Update(ctx context.Context, table, id string, fields map[string]interface{}) (*Record, error) {
	payload := map[string]interface{}{
		"fields":   fields,
		"typecast": true,
	}
	body, status, err := c.do(ctx, http.MethodPatch, c.recordURL(table, id), payload)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, ErrRecordNotFound
	}
	if status != http.StatusOK {
		return nil, parseError(body, status)
	}

	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("airtable: decode record: %w", err)
	}
	return &rec, nil
}

// Delete removes one record by id.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	body, status, err := c.do(ctx, http.MethodDelete, c.recordURL(table, id), nil)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return ErrRecordNotFound
	}
	if status != http.StatusOK {
		return parseError(body, status)
	}
	return nil
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s",
		strings.TrimRight(c.conf.BaseUrl, "/"), c.conf.BaseId, url.PathEscape(table))
}

func (c *Client) recordURL(table, id string) string {
	return c.tableURL(table) + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, rawURL string, payload interface{}) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("airtable: encode payload: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.conf.ApiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("airtable: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("airtable: read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

func parseError(body []byte, statusCode int) error {
	var errResp struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		return &Error{
			StatusCode: statusCode,
			Type:       "unknown",
			Message:    strings.TrimSpace(string(body)),
		}
	}
	return &Error{
		StatusCode: statusCode,
		Type:       errResp.Error.Type,
		Message:    errResp.Error.Message,
	}
}
