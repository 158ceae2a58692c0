package registrybroker

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type JSONObject map[string]any

type RegistryBrokerClientOptions struct {
	BaseURL        string
	APIKey         string
	DefaultHeaders map[string]string
	HTTPClient     *http.Client
	HTTPTimeout    time.Duration
	Logger         *zerolog.Logger
}

type SearchParams struct {
	Q            string
	Limit        int
	Capabilities []string
	Protocols    []string
}

// SearchResponse is the body returned by GET /search.
type SearchResponse struct {
	Hits  []SearchHit `json:"hits"`
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// SearchHit is a single agent record as indexed by the broker. Adapters from
// different registries populate different subsets of these fields, so every
// field apart from ID may be missing. Decoding is lenient per field: a value
// of an unexpected JSON type is coerced or dropped instead of failing the
// whole response.
type SearchHit struct {
	ID           string     `json:"id"`
	UAID         string     `json:"uaid,omitempty"`
	Name         string     `json:"name,omitempty"`
	Description  string     `json:"description,omitempty"`
	Registry     string     `json:"registry,omitempty"`
	Capabilities []any      `json:"capabilities,omitempty"`
	Endpoints    JSONObject `json:"endpoints,omitempty"`
	Metadata     JSONObject `json:"metadata,omitempty"`
	Profile      JSONObject `json:"profile,omitempty"`
	LastSeen     string     `json:"lastSeen,omitempty"`
	CreatedAt    string     `json:"createdAt,omitempty"`
}

type searchHitWire struct {
	ID           json.RawMessage `json:"id"`
	UAID         json.RawMessage `json:"uaid"`
	Name         json.RawMessage `json:"name"`
	Description  json.RawMessage `json:"description"`
	Registry     json.RawMessage `json:"registry"`
	Capabilities json.RawMessage `json:"capabilities"`
	Endpoints    json.RawMessage `json:"endpoints"`
	Metadata     json.RawMessage `json:"metadata"`
	Profile      json.RawMessage `json:"profile"`
	LastSeen     json.RawMessage `json:"lastSeen"`
	CreatedAt    json.RawMessage `json:"createdAt"`
}

func (h *SearchHit) UnmarshalJSON(data []byte) error {
	var wire searchHitWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*h = SearchHit{
		ID:           lenientString(wire.ID),
		UAID:         lenientString(wire.UAID),
		Name:         lenientString(wire.Name),
		Description:  lenientString(wire.Description),
		Registry:     lenientString(wire.Registry),
		Capabilities: lenientArray(wire.Capabilities),
		Endpoints:    lenientObject(wire.Endpoints),
		Metadata:     lenientObject(wire.Metadata),
		Profile:      lenientObject(wire.Profile),
		LastSeen:     lenientString(wire.LastSeen),
		CreatedAt:    lenientString(wire.CreatedAt),
	}
	return nil
}

// lenientString keeps strings, renders numbers and booleans as their JSON
// text, and drops null, objects and arrays.
func lenientString(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return ""
		}
		return value
	case '{', '[', 'n':
		return ""
	default:
		return strings.TrimSpace(string(trimmed))
	}
}

func lenientArray(raw json.RawMessage) []any {
	var values []any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}

func lenientObject(raw json.RawMessage) JSONObject {
	var object JSONObject
	if err := json.Unmarshal(raw, &object); err != nil {
		return nil
	}
	return object
}

// ProfileDisplayName returns profile.display_name when it is a non-empty string.
func (h SearchHit) ProfileDisplayName() string {
	return stringField(h.Profile, "display_name")
}

// ProfileDescription returns profile.description when it is a non-empty string.
func (h SearchHit) ProfileDescription() string {
	return stringField(h.Profile, "description")
}

// MetadataProtocol returns metadata.protocol when it is a non-empty string.
func (h SearchHit) MetadataProtocol() string {
	return stringField(h.Metadata, "protocol")
}

// PrimaryEndpoint returns endpoints.primary when it is a non-empty string.
func (h SearchHit) PrimaryEndpoint() string {
	return stringField(h.Endpoints, "primary")
}

func stringField(object JSONObject, key string) string {
	if object == nil {
		return ""
	}
	value, ok := object[key].(string)
	if !ok {
		return ""
	}
	return value
}
