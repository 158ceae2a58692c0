package agentlookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hashgraph-online/registry-broker-tools-go/pkg/registrybroker"
	"github.com/hashgraph-online/registry-broker-tools-go/pkg/uaid"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL  = registrybroker.DefaultBaseURL
	NoAgentsMessage = "No agents found matching your criteria"

	SearchToolName       = "registry_broker_search"
	AgentDetailsToolName = "registry_broker_agent_details"
)

// Adapter turns tool input into Registry Broker searches and renders the
// results as the JSON documents handed back to the calling agent. It holds
// no per-call state and is safe for concurrent use.
type Adapter struct {
	client *registrybroker.RegistryBrokerClient
	logger zerolog.Logger
}

// New creates an Adapter bound to options.BaseURL, or DefaultBaseURL when it
// is empty.
func New(options Options) (*Adapter, error) {
	client, err := registrybroker.NewRegistryBrokerClient(registrybroker.RegistryBrokerClientOptions{
		BaseURL:     options.BaseURL,
		APIKey:      options.APIKey,
		HTTPClient:  options.HTTPClient,
		HTTPTimeout: options.HTTPTimeout,
		Logger:      options.Logger,
	})
	if err != nil {
		return nil, err
	}
	return NewWithClient(client, options.Logger), nil
}

// NewWithClient wraps an existing client. A nil logger disables logging.
func NewWithClient(client *registrybroker.RegistryBrokerClient, logger *zerolog.Logger) *Adapter {
	adapterLogger := zerolog.Nop()
	if logger != nil {
		adapterLogger = *logger
	}
	return &Adapter{
		client: client,
		logger: adapterLogger.With().Str("component", "agentlookup").Logger(),
	}
}

// BaseURL returns the base URL both tools are bound to.
func (a *Adapter) BaseURL() string {
	return a.client.BaseURL()
}

// SearchAgents runs one search and normalizes every hit.
func (a *Adapter) SearchAgents(ctx context.Context, request SearchRequest) (SearchResult, error) {
	limit := request.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	params := registrybroker.SearchParams{
		Q:     request.Query,
		Limit: limit,
	}
	if request.Protocol != "" {
		params.Protocols = []string{request.Protocol}
	}
	if request.Capability != "" {
		params.Capabilities = []string{request.Capability}
	}

	a.logger.Debug().
		Str("query", request.Query).
		Int("limit", limit).
		Str("protocol", request.Protocol).
		Str("capability", request.Capability).
		Msg("searching registry broker")

	response, err := a.search(ctx, params)
	if err != nil {
		return SearchResult{}, err
	}

	agents := make([]NormalizedAgent, 0, len(response.Hits))
	for _, hit := range response.Hits {
		agents = append(agents, normalizeHit(hit))
	}
	return SearchResult{Total: response.Total, Agents: agents}, nil
}

// GetAgentDetails looks up a single agent by UAID or any other identifier
// the broker indexes. It returns ErrAgentNotFound when the search is empty.
func (a *Adapter) GetAgentDetails(ctx context.Context, identifier string) (AgentDetails, error) {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return AgentDetails{}, ErrIdentifierRequired
	}

	a.logger.Debug().Str("identifier", trimmed).Bool("is_uaid", uaid.IsUAID(trimmed)).Msg("fetching agent details")

	response, err := a.search(ctx, registrybroker.SearchParams{Q: trimmed, Limit: 1})
	if err != nil {
		return AgentDetails{}, err
	}
	if len(response.Hits) == 0 {
		return AgentDetails{}, ErrAgentNotFound
	}
	return detailsFromHit(response.Hits[0]), nil
}

// Search executes the search tool. The returned string is always a JSON
// document with a success flag; err carries the failure, if any, that the
// document reports.
func (a *Adapter) Search(ctx context.Context, input string) (string, error) {
	result, err := a.SearchAgents(ctx, ParseSearchInput(input))
	if err != nil {
		return a.failure(err), err
	}
	if len(result.Agents) == 0 {
		return render(searchEmptyResponse{
			Success: true,
			Message: NoAgentsMessage,
			Agents:  []NormalizedAgent{},
		}), nil
	}
	return render(searchFoundResponse{
		Success: true,
		Total:   result.Total,
		Agents:  result.Agents,
	}), nil
}

// Details executes the agent details tool with the same output rules as
// Search.
func (a *Adapter) Details(ctx context.Context, identifier string) (string, error) {
	agent, err := a.GetAgentDetails(ctx, identifier)
	if err != nil {
		return a.failure(err), err
	}
	return render(detailsResponse{Success: true, Agent: agent}), nil
}

func (a *Adapter) search(
	ctx context.Context,
	params registrybroker.SearchParams,
) (*registrybroker.SearchResponse, error) {
	response, err := a.client.Search(ctx, params)
	if err == nil {
		a.logger.Debug().Int("hits", len(response.Hits)).Int("total", response.Total).Msg("registry broker search completed")
		return response, nil
	}
	if status, ok := registrybroker.StatusCode(err); ok {
		return nil, &APIError{Status: status, Cause: err}
	}
	return nil, fmt.Errorf("registry broker search failed: %w", err)
}

func (a *Adapter) failure(err error) string {
	event := a.logger.Warn()
	if errors.Is(err, ErrAgentNotFound) {
		event = a.logger.Debug()
	}
	event.Err(err).Msg("agent lookup failed")
	return FailureOutput(err)
}

// FailureOutput renders err as a success:false tool document.
func FailureOutput(err error) string {
	return render(failureResponse{Success: false, Error: err.Error()})
}

func render(value any) string {
	payload, err := json.Marshal(value)
	if err != nil {
		payload, _ = json.Marshal(failureResponse{
			Success: false,
			Error:   fmt.Sprintf("failed to encode tool output: %v", err),
		})
	}
	return string(payload)
}
