package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Client handles communication with an MCP registry
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	apiKey string
}

// NewClient creates a new registry client. The API key may be empty for
// anonymous access; when set it is sent as a bearer token on every request.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) get(rawURL string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return c.HTTPClient.Do(req)
}

func (c *Client) serversURL() string {
	return c.BaseURL + "/v0/servers"
}

// FetchOptions configures the fetch behavior
type FetchOptions struct {
	ShowProgress bool
	Verbose      bool
}

// FetchAllServers fetches all servers from the registry with cursor-based
// pagination, keeping only active entries.
func (c *Client) FetchAllServers(opts FetchOptions) ([]ServerEntry, error) {
	var allServers []ServerEntry
	cursor := ""
	pageCount := 0
	const pageLimit = 100

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Fetching servers"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("servers"),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionFullWidth(),
		)
	}

	for {
		pageCount++

		fetchURL := fmt.Sprintf("%s?limit=%d", c.serversURL(), pageLimit)
		if cursor != "" {
			fetchURL = fmt.Sprintf("%s&cursor=%s", fetchURL, url.QueryEscape(cursor))
		}

		if opts.Verbose && !opts.ShowProgress {
			fmt.Printf("    Fetching page %d...\n", pageCount)
		}

		resp, err := c.get(fetchURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d: %w", pageCount, err)
		}

		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("unexpected status code on page %d: %d", pageCount, resp.StatusCode)
		}

		var listResp ListResponse
		err = json.NewDecoder(resp.Body).Decode(&listResp)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse response on page %d: %w", pageCount, err)
		}

		// Only keep "active" servers; an empty status means active.
		activeServers := make([]ServerEntry, 0, len(listResp.Servers))
		for _, server := range listResp.Servers {
			if server.Server.Status == "" || server.Server.Status == "active" {
				activeServers = append(activeServers, server)
			}
		}

		allServers = append(allServers, activeServers...)

		if bar != nil {
			_ = bar.Add(len(activeServers))
		}

		if listResp.Metadata.NextCursor == "" {
			break
		}
		cursor = listResp.Metadata.NextCursor
	}

	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	return allServers, nil
}

// FetchServer fetches a server by exact name and (optionally) version.
// If version is empty, the latest version is fetched.
func (c *Client) FetchServer(name, version string) (*ServerEntry, error) {
	if version == "" {
		version = "latest"
	}

	fetchURL := fmt.Sprintf("%s/%s/versions/%s", c.serversURL(), url.PathEscape(name), url.PathEscape(version))

	resp, err := c.get(fetchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch server %s: %w", name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var listResp ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode server response: %w", err)
	}
	if len(listResp.Servers) == 0 {
		return nil, nil
	}
	return &listResp.Servers[0], nil
}

// ResolveServer finds a server by name. It tries an exact match first,
// then falls back to matching the name part after the namespace slash
// (e.g. "fetch" matches "io.example/fetch"). Ambiguous short names are
// an error listing the candidates.
func (c *Client) ResolveServer(name, version string) (*ServerEntry, error) {
	entry, err := c.FetchServer(name, version)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		return entry, nil
	}

	servers, err := c.FetchAllServers(FetchOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to search registry for %s: %w", name, err)
	}

	searchLower := strings.ToLower(name)
	var matches []ServerEntry
	for _, s := range servers {
		namePart := s.Server.Name
		if idx := strings.LastIndex(namePart, "/"); idx != -1 {
			namePart = namePart[idx+1:]
		}
		if strings.ToLower(namePart) == searchLower {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("server not found in registry: %s", name)
	case 1:
		// Re-fetch by full name so a version pin applies to the right entry.
		if version != "" && version != "latest" {
			entry, err := c.FetchServer(matches[0].Server.Name, version)
			if err != nil {
				return nil, err
			}
			if entry == nil {
				return nil, fmt.Errorf("server %s has no version %s", matches[0].Server.Name, version)
			}
			return entry, nil
		}
		return &matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Server.Name)
		}
		return nil, fmt.Errorf("ambiguous server name %q, matches: %s", name, strings.Join(names, ", "))
	}
}

// ValidateKey checks an API key against the registry auth endpoint.
func (c *Client) ValidateKey(key string) error {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+"/v0/auth/validate", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach registry: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("registry rejected the API key (status %d)", resp.StatusCode)
	default:
		return fmt.Errorf("unexpected status code %d from registry", resp.StatusCode)
	}
}
