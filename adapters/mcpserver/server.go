package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/jsonschema"
	"github.com/hashgraph-online/registry-broker-tools-go/pkg/agentlookup"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

const (
	SearchToolName       = agentlookup.SearchToolName
	AgentDetailsToolName = agentlookup.AgentDetailsToolName

	DefaultServerName    = "registry-broker-tools"
	DefaultServerVersion = "0.1.0"
)

type ServerOptions struct {
	Name    string
	Version string
	Logger  *zerolog.Logger
}

// NewServer creates an MCP server with both tools registered.
func NewServer(adapter *agentlookup.Adapter, options ServerOptions) *server.MCPServer {
	name := strings.TrimSpace(options.Name)
	if name == "" {
		name = DefaultServerName
	}
	version := strings.TrimSpace(options.Version)
	if version == "" {
		version = DefaultServerVersion
	}

	mcpServer := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
	)
	RegisterTools(mcpServer, adapter, options.Logger)
	return mcpServer
}

// ServeStdio serves mcpServer on stdin/stdout until the client disconnects.
func ServeStdio(mcpServer *server.MCPServer) error {
	return server.ServeStdio(mcpServer)
}

// RegisterTools adds both tools to mcpServer.
func RegisterTools(mcpServer *server.MCPServer, adapter *agentlookup.Adapter, logger *zerolog.Logger) {
	toolLogger := zerolog.Nop()
	if logger != nil {
		toolLogger = *logger
	}
	toolLogger = toolLogger.With().Str("component", "mcpserver").Logger()

	mcpServer.AddTool(SearchTool(), SearchHandler(adapter))
	mcpServer.AddTool(AgentDetailsTool(), AgentDetailsHandler(adapter))

	toolLogger.Debug().
		Strs("tools", []string{SearchToolName, AgentDetailsToolName}).
		Str("base_url", adapter.BaseURL()).
		Msg("registered registry broker tools")
}

// SearchTool describes the search tool. Its input schema is reflected from
// agentlookup.SearchQuery.
func SearchTool() mcp.Tool {
	return mcp.Tool{
		Name: SearchToolName,
		Description: "Search for AI agents across multiple protocols using Registry Broker. " +
			"The Registry Broker indexes agents from NANDA, MCP, OpenRouter, A2A, Virtuals, and more.",
		InputSchema: searchInputSchema(),
	}
}

// AgentDetailsTool describes the agent details tool.
func AgentDetailsTool() mcp.Tool {
	return mcp.Tool{
		Name: AgentDetailsToolName,
		Description: "Get detailed information about a specific AI agent by its UAID (Universal Agent ID). " +
			"Use this after searching to get full details about an agent before interacting with it.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"uaid": map[string]any{
					"type":        "string",
					"description": "The UAID of the agent, e.g. uaid:aid:example;uid=agent-1;registry=demo;proto=mcp",
				},
			},
			Required: []string{"uaid"},
		},
	}
}

// SearchHandler re-encodes the tool arguments as a JSON SearchQuery so MCP
// calls follow the same parsing rules as free-form tool input. Null arguments
// are dropped and calls without a string query are rejected.
func SearchHandler(adapter *agentlookup.Adapter) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		arguments := request.GetArguments()
		if _, ok := arguments["query"].(string); !ok {
			return textResult(agentlookup.FailureOutput(agentlookup.ErrQueryRequired), agentlookup.ErrQueryRequired), nil
		}
		query := make(map[string]any, len(arguments))
		for key, value := range arguments {
			if value != nil {
				query[key] = value
			}
		}
		input, err := json.Marshal(query)
		if err != nil {
			return nil, fmt.Errorf("failed to encode search arguments: %w", err)
		}
		output, searchErr := adapter.Search(ctx, string(input))
		return textResult(output, searchErr), nil
	}
}

// AgentDetailsHandler passes the uaid argument to the details tool.
func AgentDetailsHandler(adapter *agentlookup.Adapter) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		identifier, _ := request.GetArguments()["uaid"].(string)
		output, detailsErr := adapter.Details(ctx, identifier)
		return textResult(output, detailsErr), nil
	}
}

func textResult(output string, err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: output,
			},
		},
		IsError: err != nil,
	}
}

func searchInputSchema() mcp.ToolInputSchema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(&agentlookup.SearchQuery{})
	schema.Version = ""

	raw, err := json.Marshal(schema)
	if err != nil {
		return mcp.ToolInputSchema{Type: "object"}
	}
	var decoded struct {
		Properties map[string]any `json:"properties"`
		Required   []string       `json:"required"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return mcp.ToolInputSchema{Type: "object"}
	}
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: decoded.Properties,
		Required:   decoded.Required,
	}
}
