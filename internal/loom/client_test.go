package loom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/loomhq/shuttle/internal/collection"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBind {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBind)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchPageEncodesRequestAndDecodesEnvelope(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotPath string
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		end := "cur-2"
		_ = json.NewEncoder(w).Encode(pageResponse{
			Edges: []edgeEnvelope{
				{Cursor: "cur-1", Node: Record{ID: "p1", Name: "greet"}},
				{Cursor: "cur-2", Node: Record{ID: "p2", Name: "classify"}},
			},
			PageInfo: pageInfoEnvelope{EndCursor: &end, HasNextPage: true},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	page, err := c.FetchPage(ctx, ResourcePrompts, collection.PageRequest{
		Cursor: "cur-0",
		Limit:  50,
		Params: collection.Params{
			Filter: collection.Filter{Query: "greet"},
			Sort:   collection.Sort{Field: "updatedAt", Desc: true},
		},
	})
	if err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}

	if gotPath != "/api/v1/prompts" {
		t.Fatalf("path = %q, want /api/v1/prompts", gotPath)
	}
	if gotQuery.Get("cursor") != "cur-0" ||
		gotQuery.Get("limit") != "50" ||
		gotQuery.Get("q") != "greet" ||
		gotQuery.Get("sort") != "updatedAt" ||
		gotQuery.Get("order") != "desc" {
		t.Fatalf("query = %v, want params encoded", gotQuery)
	}
	if gotUserAgent != defaultUserAgent {
		t.Fatalf("user agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}

	if len(page.Edges) != 2 {
		t.Fatalf("edges = %d, want 2", len(page.Edges))
	}
	if page.Edges[0].Node.NodeID() != "p1" || page.Edges[1].Cursor != "cur-2" {
		t.Fatalf("edges = %#v, want p1 then cursor cur-2", page.Edges)
	}
	if !page.PageInfo.HasNextPage || page.PageInfo.EndCursor != "cur-2" {
		t.Fatalf("pageInfo = %#v, want hasNext endCursor=cur-2", page.PageInfo)
	}
}

func TestClient_FetchPageNullEndCursor(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"edges":[],"pageInfo":{"endCursor":null,"hasNextPage":false}}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	page, err := c.FetchPage(context.Background(), ResourceDatasets, collection.PageRequest{})
	if err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}
	if len(page.Edges) != 0 || page.PageInfo.HasNextPage || page.PageInfo.EndCursor != "" {
		t.Fatalf("page = %#v, want empty terminal page", page)
	}
}

func TestClient_Mutations(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody = nil
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPost:
			_ = json.NewEncoder(w).Encode(Record{ID: "new-1", Name: gotBody["name"]})
		case http.MethodPatch:
			_ = json.NewEncoder(w).Encode(Record{ID: "p1", Name: gotBody["name"]})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	created, err := c.CreateRecord(ctx, ResourcePrompts, RecordDraft{Name: "summarize"})
	if err != nil {
		t.Fatalf("CreateRecord returned error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/v1/prompts" {
		t.Fatalf("create request = %s %s, want POST /api/v1/prompts", gotMethod, gotPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content type = %q, want application/json", gotContentType)
	}
	if created.ID != "new-1" || created.Name != "summarize" {
		t.Fatalf("created = %#v, want echo with server id", created)
	}

	updated, err := c.RenameRecord(ctx, ResourcePrompts, "p1", "renamed")
	if err != nil {
		t.Fatalf("RenameRecord returned error: %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/api/v1/prompts/p1" {
		t.Fatalf("rename request = %s %s, want PATCH /api/v1/prompts/p1", gotMethod, gotPath)
	}
	if updated.Name != "renamed" {
		t.Fatalf("updated name = %q, want renamed", updated.Name)
	}

	if err := c.DeleteRecord(ctx, ResourceAPIKeys, "k9"); err != nil {
		t.Fatalf("DeleteRecord returned error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/v1/api-keys/k9" {
		t.Fatalf("delete request = %s %s, want DELETE /api/v1/api-keys/k9", gotMethod, gotPath)
	}

	if err := c.DeleteRecord(ctx, ResourcePrompts, " "); err == nil {
		t.Fatal("DeleteRecord with blank id = nil error, want error")
	}
	if _, err := c.RenameRecord(ctx, ResourcePrompts, "", "x"); err == nil {
		t.Fatal("RenameRecord with blank id = nil error, want error")
	}
}

func TestClient_ErrorStatusSurfacesPathAndCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchPage(context.Background(), ResourceEvaluators, collection.PageRequest{})
	if err == nil {
		t.Fatal("FetchPage = nil error for 502, want error")
	}
	want := "api /api/v1/evaluators returned status 502"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}
