package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/usergate/internal/common"
	"github.com/dmitrijs2005/usergate/internal/server/models"
)

// RESTClient talks to a hosted PostgREST endpoint (the /rest/v1 API of a
// Supabase project) with a project access key.
type RESTClient struct {
	baseURL *url.URL
	apiKey  string
	http    *http.Client
}

// NewRESTClient validates endpoint and apiKey and returns a ready client.
// A nil hc means a fresh http.Client without a timeout.
func NewRESTClient(endpoint, apiKey string, hc *http.Client) (*RESTClient, error) {
	if endpoint == "" {
		return nil, common.ErrMissingEndpoint
	}
	if apiKey == "" {
		return nil, common.ErrMissingAPIKey
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme and host are required", endpoint)
	}

	if hc == nil {
		hc = &http.Client{}
	}

	return &RESTClient{baseURL: u, apiKey: apiKey, http: hc}, nil
}

// Insert posts users and returns the inserted rows untouched, whatever
// columns the hosted table has.
func (c *RESTClient) Insert(ctx context.Context, collection string, users []models.User) ([]models.Row, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, common.ErrEmptyInsert
	}

	body, err := json.Marshal(users)
	if err != nil {
		return nil, fmt.Errorf("encode rows: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.collectionURL(collection, url.Values{"select": {"*"}}), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	var inserted []models.Row
	if err := c.do(req, &inserted); err != nil {
		return nil, err
	}
	return inserted, nil
}

func (c *RESTClient) Select(ctx context.Context, collection string, limit int) ([]models.Row, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	if limit < 0 {
		limit = 0
	}

	query := url.Values{
		"select": {"*"},
		"limit":  {strconv.Itoa(limit)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.collectionURL(collection, query), nil)
	if err != nil {
		return nil, err
	}

	var rows []models.Row
	if err := c.do(req, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *RESTClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *RESTClient) collectionURL(collection string, query url.Values) string {
	u := c.baseURL.JoinPath("rest", "v1", collection)
	u.RawQuery = query.Encode()
	return u.String()
}

// do sends req with the access key attached and decodes a 2xx JSON body into
// out. Transport errors are returned as-is.
func (c *RESTClient) do(req *http.Request, out any) error {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp.StatusCode, resp.Status, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
