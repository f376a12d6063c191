package clients

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

const serversKey = "mcpServers"

// Document is one client's configuration file held in memory. Only the
// mcpServers mapping is interpreted; every other top-level key is carried
// through untouched so a round-trip never loses client-specific settings.
type Document struct {
	path    string
	servers map[string]json.RawMessage
	extra   map[string]json.RawMessage
}

// LoadDocument reads a client config file. A missing file yields an empty
// document that will be created on Save.
func LoadDocument(path string) (*Document, error) {
	doc := &Document{
		path:    path,
		servers: make(map[string]json.RawMessage),
		extra:   make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	for key, value := range top {
		if key == serversKey {
			if err := json.Unmarshal(value, &doc.servers); err != nil {
				return nil, fmt.Errorf("failed to parse %s in %s: %w", serversKey, path, err)
			}
			continue
		}
		doc.extra[key] = value
	}
	return doc, nil
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// ServerNames returns the installed server names, sorted.
func (d *Document) ServerNames() []string {
	names := make([]string, 0, len(d.servers))
	for name := range d.servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the raw entry for a server name.
func (d *Document) Get(name string) (json.RawMessage, bool) {
	entry, ok := d.servers[name]
	return entry, ok
}

// Set replaces the entry for name wholesale. Existing sub-fields are not
// merged; last write wins.
func (d *Document) Set(name string, cfg any) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal server config: %w", err)
	}
	d.servers[name] = data
	return nil
}

// Remove deletes the entry for name. Removing an absent entry is an error
// so the caller can tell the user nothing was installed.
func (d *Document) Remove(name string) error {
	if _, ok := d.servers[name]; !ok {
		return fmt.Errorf("server %q is not installed", name)
	}
	delete(d.servers, name)
	return nil
}

// Save writes the document back to disk, creating parent directories as
// needed. The write replaces the whole file in one operation; there is no
// backup or partial-failure rollback.
func (d *Document) Save() error {
	top := make(map[string]json.RawMessage, len(d.extra)+1)
	for key, value := range d.extra {
		top[key] = value
	}

	serversJSON, err := json.Marshal(d.servers)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", serversKey, err)
	}
	top[serversKey] = serversJSON

	raw, err := json.Marshal(top)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	// MarshalIndent leaves RawMessage values compact; re-indent the whole
	// document so carried-through keys stay readable too.
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format config: %w", err)
	}
	buf.WriteByte('\n')
	data := buf.Bytes()

	if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(d.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
