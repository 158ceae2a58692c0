package langchaingo

import (
	"context"

	"github.com/hashgraph-online/registry-broker-tools-go/pkg/agentlookup"
	"github.com/tmc/langchaingo/callbacks"
	"github.com/tmc/langchaingo/tools"
)

const (
	SearchToolName       = agentlookup.SearchToolName
	AgentDetailsToolName = agentlookup.AgentDetailsToolName
)

const searchToolDescription = `Search for AI agents across multiple protocols using Registry Broker.
Use this tool when you need to find specialized AI agents for specific tasks.
The Registry Broker indexes agents from NANDA, MCP, OpenRouter, A2A, Virtuals, and more.

Input should include:
- query: What kind of agent are you looking for? (e.g., "code review agent", "research assistant")
- protocol: (optional) Filter by specific protocol
- capability: (optional) Filter by capability type
- limit: (optional) Number of results (default: 5)`

const agentDetailsToolDescription = `Get detailed information about a specific AI agent by its UAID (Universal Agent ID).
Use this after searching to get full details about an agent before interacting with it.

Input: The UAID of the agent (e.g., "uaid:aid:example;uid=agent-1;registry=demo;proto=mcp")`

// SearchTool is a langchaingo compatible Tool that searches the Registry
// Broker index for agents.
type SearchTool struct {
	adapter   *agentlookup.Adapter
	Callbacks callbacks.Handler
}

// AgentDetailsTool is a langchaingo compatible Tool that returns the full
// Registry Broker record of one agent.
type AgentDetailsTool struct {
	adapter   *agentlookup.Adapter
	Callbacks callbacks.Handler
}

var (
	_ tools.Tool = &SearchTool{}
	_ tools.Tool = &AgentDetailsTool{}
)

// NewSearchTool creates a search tool backed by adapter.
func NewSearchTool(adapter *agentlookup.Adapter) *SearchTool {
	return &SearchTool{adapter: adapter}
}

// NewAgentDetailsTool creates a details tool backed by adapter.
func NewAgentDetailsTool(adapter *agentlookup.Adapter) *AgentDetailsTool {
	return &AgentDetailsTool{adapter: adapter}
}

// NewRegistryBrokerTools builds both tools bound to baseURL. An empty
// baseURL selects the public Registry Broker.
func NewRegistryBrokerTools(baseURL string) ([]tools.Tool, error) {
	adapter, err := agentlookup.New(agentlookup.Options{BaseURL: baseURL})
	if err != nil {
		return nil, err
	}
	return NewRegistryBrokerToolsWithAdapter(adapter), nil
}

// NewRegistryBrokerToolsWithAdapter builds both tools sharing adapter.
func NewRegistryBrokerToolsWithAdapter(adapter *agentlookup.Adapter) []tools.Tool {
	return []tools.Tool{
		NewSearchTool(adapter),
		NewAgentDetailsTool(adapter),
	}
}

// Name returns the name of the tool.
func (t *SearchTool) Name() string {
	return SearchToolName
}

// Description returns a description of the tool to help the language model
// decide when to use it.
func (t *SearchTool) Description() string {
	return searchToolDescription
}

// Call runs the search. Input is free text or a JSON object with query,
// protocol, capability and limit keys.
func (t *SearchTool) Call(ctx context.Context, input string) (string, error) {
	return run(ctx, t.Callbacks, input, t.adapter.Search)
}

// Name returns the name of the tool.
func (t *AgentDetailsTool) Name() string {
	return AgentDetailsToolName
}

// Description returns a description of the tool to help the language model
// decide when to use it.
func (t *AgentDetailsTool) Description() string {
	return agentDetailsToolDescription
}

// Call looks up the agent named by the UAID in input.
func (t *AgentDetailsTool) Call(ctx context.Context, input string) (string, error) {
	return run(ctx, t.Callbacks, input, t.adapter.Details)
}

func run(
	ctx context.Context,
	handler callbacks.Handler,
	input string,
	execute func(context.Context, string) (string, error),
) (string, error) {
	if handler != nil {
		handler.HandleToolStart(ctx, input)
	}

	output, err := execute(ctx, input)
	if err != nil && handler != nil {
		handler.HandleToolError(ctx, err)
	}

	if handler != nil {
		handler.HandleToolEnd(ctx, output)
	}
	return output, nil
}
