package registry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modelcontextprotocol/registry/pkg/model"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://registry.example.com/", "", 0)

	if client.HTTPClient == nil {
		t.Fatal("HTTPClient is nil")
	}
	if client.HTTPClient.Timeout != 30*time.Second {
		t.Errorf("expected default 30s timeout, got %v", client.HTTPClient.Timeout)
	}
	if client.BaseURL != "https://registry.example.com" {
		t.Errorf("trailing slash not trimmed: %s", client.BaseURL)
	}
}

func serverEntry(name, version, status string) ServerEntry {
	return ServerEntry{
		Server: ServerSpec{
			Name:        name,
			Description: "Test server",
			Version:     version,
			Status:      status,
		},
	}
}

func TestFetchServer_Found(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/servers/io.test%2Fserver/versions/latest" && r.URL.Path != "/v0/servers/io.test/server/versions/latest" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ListResponse{
			Servers: []ServerEntry{serverEntry("io.test/server", "1.0.0", "active")},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0)
	entry, err := client.FetchServer("io.test/server", "")
	if err != nil {
		t.Fatalf("FetchServer() failed: %v", err)
	}
	if entry == nil {
		t.Fatal("FetchServer() returned nil entry")
	}
	if entry.Server.Name != "io.test/server" {
		t.Errorf("unexpected server name: %s", entry.Server.Name)
	}
}

func TestFetchServer_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0)
	entry, err := client.FetchServer("missing", "")
	if err != nil {
		t.Fatalf("FetchServer() should not error on 404: %v", err)
	}
	if entry != nil {
		t.Error("FetchServer() should return nil on 404")
	}
}

func TestFetchServer_SendsAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("expected bearer token, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(ListResponse{
			Servers: []ServerEntry{serverEntry("io.test/server", "1.0.0", "")},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-test", 0)
	if _, err := client.FetchServer("io.test/server", ""); err != nil {
		t.Fatalf("FetchServer() failed: %v", err)
	}
}

func TestFetchAllServers_Pagination(t *testing.T) {
	page := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page++
		resp := ListResponse{}
		switch page {
		case 1:
			if r.URL.Query().Get("cursor") != "" {
				t.Errorf("first page should have no cursor, got %q", r.URL.Query().Get("cursor"))
			}
			resp.Servers = []ServerEntry{
				serverEntry("io.test/one", "1.0.0", "active"),
				serverEntry("io.test/gone", "1.0.0", "deleted"),
			}
			resp.Metadata.NextCursor = "next-page"
		case 2:
			if r.URL.Query().Get("cursor") != "next-page" {
				t.Errorf("expected cursor=next-page, got %q", r.URL.Query().Get("cursor"))
			}
			resp.Servers = []ServerEntry{serverEntry("io.test/two", "2.0.0", "")}
		default:
			t.Errorf("unexpected page %d", page)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0)
	servers, err := client.FetchAllServers(FetchOptions{})
	if err != nil {
		t.Fatalf("FetchAllServers() failed: %v", err)
	}

	// The deleted entry is filtered out; both pages are fetched.
	if len(servers) != 2 {
		t.Fatalf("expected 2 servers, got %d", len(servers))
	}
	if servers[0].Server.Name != "io.test/one" || servers[1].Server.Name != "io.test/two" {
		t.Errorf("unexpected servers: %s, %s", servers[0].Server.Name, servers[1].Server.Name)
	}
}

func TestResolveServer_SuffixMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/servers" {
			// Exact lookup misses, forcing the catalog search.
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(ListResponse{
			Servers: []ServerEntry{
				serverEntry("io.test/fetch", "1.0.0", "active"),
				serverEntry("io.test/other", "1.0.0", "active"),
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0)
	entry, err := client.ResolveServer("fetch", "")
	if err != nil {
		t.Fatalf("ResolveServer() failed: %v", err)
	}
	if entry.Server.Name != "io.test/fetch" {
		t.Errorf("expected io.test/fetch, got %s", entry.Server.Name)
	}
}

func TestResolveServer_Ambiguous(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/servers" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(ListResponse{
			Servers: []ServerEntry{
				serverEntry("io.alpha/fetch", "1.0.0", "active"),
				serverEntry("io.beta/fetch", "1.0.0", "active"),
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0)
	if _, err := client.ResolveServer("fetch", ""); err == nil {
		t.Error("ResolveServer() should fail on ambiguous short names")
	}
}

func TestResolveServer_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/servers" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(ListResponse{})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0)
	if _, err := client.ResolveServer("missing", ""); err == nil {
		t.Error("ResolveServer() should fail when nothing matches")
	}
}

func TestValidateKey(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{"OK", http.StatusOK, false},
		{"NoContent", http.StatusNoContent, false},
		{"Unauthorized", http.StatusUnauthorized, true},
		{"Forbidden", http.StatusForbidden, true},
		{"ServerError", http.StatusInternalServerError, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v0/auth/validate" {
					t.Errorf("unexpected path: %s", r.URL.Path)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
					t.Errorf("expected bearer token, got %q", got)
				}
				w.WriteHeader(tc.statusCode)
			}))
			defer server.Close()

			client := NewClient(server.URL, "", 0)
			err := client.ValidateKey("sk-test")
			if tc.wantErr && err == nil {
				t.Error("ValidateKey() should have failed")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("ValidateKey() failed: %v", err)
			}
		})
	}
}

func TestServerSpecIsRemote(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }
	httpRemote := model.Transport{Type: string(model.TransportTypeStreamableHTTP), URL: "https://mcp.example.com"}

	testCases := []struct {
		name string
		spec ServerSpec
		want bool
	}{
		{"HTTPRemote", ServerSpec{Remotes: []model.Transport{httpRemote}}, true},
		{"SSERemote", ServerSpec{Remotes: []model.Transport{{Type: "sse", URL: "https://mcp.example.com/sse"}}}, true},
		{"NoRemotes", ServerSpec{}, false},
		{"RemoteWithoutURL", ServerSpec{Remotes: []model.Transport{{Type: string(model.TransportTypeStreamableHTTP)}}}, false},
		{"StdioTransport", ServerSpec{Remotes: []model.Transport{{Type: string(model.TransportTypeStdio), URL: "ignored"}}}, false},
		{"HintFalseOverrides", ServerSpec{Remote: boolPtr(false), Remotes: []model.Transport{httpRemote}}, false},
		{"HintTrue", ServerSpec{Remote: boolPtr(true), Remotes: []model.Transport{httpRemote}}, true},
		{"HintTrueWithoutURL", ServerSpec{Remote: boolPtr(true)}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.spec.IsRemote(); got != tc.want {
				t.Errorf("IsRemote() = %t, want %t", got, tc.want)
			}
		})
	}
}
