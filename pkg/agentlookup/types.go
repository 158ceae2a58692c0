package agentlookup

import (
	"net/http"
	"time"

	"github.com/hashgraph-online/registry-broker-tools-go/pkg/registrybroker"
	"github.com/rs/zerolog"
)

type Options struct {
	BaseURL     string
	APIKey      string
	HTTPClient  *http.Client
	HTTPTimeout time.Duration
	Logger      *zerolog.Logger
}

// SearchQuery is the structured form of the search tool input. Query is a
// pointer so that a JSON object without a query key is rejected rather than
// treated as an empty search.
type SearchQuery struct {
	Query      *string `json:"query" validate:"required" jsonschema:"required,description=Natural language search query for finding AI agents"`
	Protocol   string  `json:"protocol,omitempty" jsonschema:"description=Filter by protocol: nanda or mcp or openrouter or a2a or virtuals or olas"`
	Capability string  `json:"capability,omitempty" jsonschema:"description=Filter by capability: chat or code or research or creative or analysis"`
	Limit      float64 `json:"limit,omitempty" jsonschema:"default=5,description=Maximum number of results to return"`
}

// SearchRequest is a SearchQuery after defaults have been applied.
type SearchRequest struct {
	Query      string
	Protocol   string
	Capability string
	Limit      int
}

// NormalizedAgent is the stable shape returned by the search tool for every
// hit, whatever registry adapter produced it.
type NormalizedAgent struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Protocol     string  `json:"protocol,omitempty"`
	Capabilities []any   `json:"capabilities"`
	Endpoint     *string `json:"endpoint"`
	UAID         string  `json:"uaid,omitempty"`
}

// AgentDetails is the record returned by the details tool. Optional broker
// fields are passed through as received; an empty list or object the broker
// sent is kept, a missing one is omitted.
type AgentDetails struct {
	ID           string                    `json:"id"`
	UAID         string                    `json:"uaid,omitempty"`
	Name         string                    `json:"name,omitempty"`
	Description  string                    `json:"description,omitempty"`
	Protocol     string                    `json:"protocol,omitempty"`
	Capabilities []any                     `json:"capabilities,omitzero"`
	Endpoints    registrybroker.JSONObject `json:"endpoints,omitzero"`
	Profile      registrybroker.JSONObject `json:"profile,omitzero"`
	Metadata     registrybroker.JSONObject `json:"metadata,omitzero"`
	LastSeen     string                    `json:"lastSeen,omitempty"`
	CreatedAt    string                    `json:"createdAt,omitempty"`
}

type SearchResult struct {
	Total  int
	Agents []NormalizedAgent
}

type searchFoundResponse struct {
	Success bool              `json:"success"`
	Total   int               `json:"total"`
	Agents  []NormalizedAgent `json:"agents"`
}

type searchEmptyResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Agents  []NormalizedAgent `json:"agents"`
}

type detailsResponse struct {
	Success bool         `json:"success"`
	Agent   AgentDetails `json:"agent"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
