package registry

import (
	"encoding/json"

	"github.com/modelcontextprotocol/registry/pkg/model"
)

// ListResponse represents the paginated response from the registry HTTP API
type ListResponse struct {
	Servers  []ServerEntry `json:"servers"`
	Metadata ListMetadata  `json:"metadata"`
}

// ListMetadata contains pagination information
type ListMetadata struct {
	Count      int    `json:"count"`
	NextCursor string `json:"nextCursor"`
}

// ServerEntry represents a server entry from the registry HTTP API
type ServerEntry struct {
	Server ServerSpec      `json:"server"`
	Meta   json.RawMessage `json:"_meta,omitempty"`
}

// ServerSpec represents the server specification from the registry HTTP API
type ServerSpec struct {
	Name        string            `json:"name"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Version     string            `json:"version,omitempty"`
	Status      string            `json:"status,omitempty"`
	WebsiteURL  string            `json:"websiteUrl,omitempty"`
	Repository  Repository        `json:"repository,omitempty"`
	Remote      *bool             `json:"remote,omitempty"`
	Packages    []model.Package   `json:"packages,omitempty"`
	Remotes     []model.Transport `json:"remotes,omitempty"`
}

// Repository represents the repository information from the registry HTTP API
type Repository struct {
	URL    string `json:"url,omitempty"`
	Source string `json:"source,omitempty"`
}

// IsRemote reports whether the server should be treated as a hosted remote.
// A server is remote iff it advertises at least one HTTP transport carrying
// a deployment URL and its remote hint is not explicitly false.
func (s *ServerSpec) IsRemote() bool {
	if s.Remote != nil && !*s.Remote {
		return false
	}
	for _, remote := range s.Remotes {
		if remote.URL == "" {
			continue
		}
		switch remote.Type {
		case string(model.TransportTypeStreamableHTTP), "sse":
			return true
		}
	}
	return false
}

// HasPackages reports whether the server has any local launch packages.
func (s *ServerSpec) HasPackages() bool {
	return len(s.Packages) > 0
}
