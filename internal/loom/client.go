package loom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/loomhq/shuttle/internal/collection"
)

// API defines the gateway operations Shuttle relies on. It is implemented
// by *Client and can be faked in tests.
type API interface {
	FetchPage(ctx context.Context, res Resource, req collection.PageRequest) (collection.Page, error)
	CreateRecord(ctx context.Context, res Resource, draft RecordDraft) (Record, error)
	RenameRecord(ctx context.Context, res Resource, id, name string) (Record, error)
	DeleteRecord(ctx context.Context, res Resource, id string) error
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the Loom HTTP gateway.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:7600"
	defaultUserAgent = "shuttle/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Collection returns a collection.Gateway bound to one resource, suitable
// for handing straight to a controller.
func (c *Client) Collection(res Resource) collection.Gateway {
	return resourceGateway{client: c, res: res}
}

type resourceGateway struct {
	client *Client
	res    Resource
}

func (g resourceGateway) FetchPage(ctx context.Context, req collection.PageRequest) (collection.Page, error) {
	return g.client.FetchPage(ctx, g.res, req)
}

// FetchPage retrieves one page of a resource listing. The cursor, filter,
// and sort inside req are encoded as query parameters; cursors are passed
// through opaquely.
func (c *Client) FetchPage(ctx context.Context, res Resource, req collection.PageRequest) (collection.Page, error) {
	if c == nil {
		return collection.Page{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if req.Cursor != "" {
		values.Set("cursor", req.Cursor)
	}
	if req.Limit > 0 {
		values.Set("limit", strconv.Itoa(req.Limit))
	}
	if q := strings.TrimSpace(req.Params.Filter.Query); q != "" {
		values.Set("q", q)
	}
	if field := strings.TrimSpace(req.Params.Sort.Field); field != "" {
		values.Set("sort", field)
		if req.Params.Sort.Desc {
			values.Set("order", "desc")
		} else {
			values.Set("order", "asc")
		}
	}
	rel := &url.URL{Path: "/api/v1/" + string(res), RawQuery: values.Encode()}

	var payload pageResponse
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return collection.Page{}, err
	}

	page := collection.Page{
		Edges:    make([]collection.Edge, 0, len(payload.Edges)),
		PageInfo: collection.PageInfo{HasNextPage: payload.PageInfo.HasNextPage},
	}
	if payload.PageInfo.EndCursor != nil {
		page.PageInfo.EndCursor = *payload.PageInfo.EndCursor
	}
	for _, e := range payload.Edges {
		page.Edges = append(page.Edges, collection.Edge{Cursor: e.Cursor, Node: e.Node})
	}
	return page, nil
}

// CreateRecord creates a new entry and returns the gateway's echo of it,
// including the server-assigned id and timestamps.
func (c *Client) CreateRecord(ctx context.Context, res Resource, draft RecordDraft) (Record, error) {
	if c == nil {
		return Record{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/api/v1/" + string(res)}
	var created Record
	if err := c.doURL(ctx, http.MethodPost, rel, draft, &created); err != nil {
		return Record{}, err
	}
	return created, nil
}

// RenameRecord updates an entry's name and returns the updated record.
func (c *Client) RenameRecord(ctx context.Context, res Resource, id, name string) (Record, error) {
	if c == nil {
		return Record{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return Record{}, fmt.Errorf("record id required")
	}
	rel := &url.URL{Path: "/api/v1/" + string(res) + "/" + id}
	body := struct {
		Name string `json:"name"`
	}{Name: name}
	var updated Record
	if err := c.doURL(ctx, http.MethodPatch, rel, body, &updated); err != nil {
		return Record{}, err
	}
	return updated, nil
}

// DeleteRecord removes an entry.
func (c *Client) DeleteRecord(ctx context.Context, res Resource, id string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("record id required")
	}
	rel := &url.URL{Path: "/api/v1/" + string(res) + "/" + id}
	return c.doURL(ctx, http.MethodDelete, rel, nil, nil)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var payload *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
