package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashgraph-online/registry-broker-tools-go/pkg/agentlookup"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(t *testing.T, status int, body string) (*agentlookup.Adapter, *[]string) {
	t.Helper()
	queries := []string{}
	broker := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		queries = append(queries, request.URL.RawQuery)
		writer.Header().Set("content-type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(broker.Close)

	adapter, err := agentlookup.New(agentlookup.Options{BaseURL: broker.URL})
	require.NoError(t, err)
	return adapter, &queries
}

func callRequest(arguments map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = arguments
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.Len(t, result.Content, 1)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(textContent.Text), &decoded))
	return decoded
}

func TestSearchToolSchema(t *testing.T) {
	tool := SearchTool()
	assert.Equal(t, SearchToolName, tool.Name)
	assert.Equal(t, "object", tool.InputSchema.Type)
	assert.Equal(t, []string{"query"}, tool.InputSchema.Required)
	for _, key := range []string{"query", "protocol", "capability", "limit"} {
		assert.Contains(t, tool.InputSchema.Properties, key)
	}

	details := AgentDetailsTool()
	assert.Equal(t, AgentDetailsToolName, details.Name)
	assert.Equal(t, []string{"uaid"}, details.InputSchema.Required)
}

func TestSearchHandler(t *testing.T) {
	adapter, queries := newAdapter(t, http.StatusOK, `{"hits":[{"id":"a","profile":{"display_name":"Alpha"}}],"total":1}`)

	result, err := SearchHandler(adapter)(context.Background(), callRequest(map[string]any{
		"query":    "research",
		"protocol": "mcp",
		"limit":    2,
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	decoded := resultText(t, result)
	assert.Equal(t, true, decoded["success"])
	agents := decoded["agents"].([]any)
	require.Len(t, agents, 1)
	assert.Equal(t, "Alpha", agents[0].(map[string]any)["name"])

	require.Len(t, *queries, 1)
	assert.Equal(t, "limit=2&protocols=mcp&q=research", (*queries)[0])
}

func TestSearchHandlerRequiresQuery(t *testing.T) {
	adapter, queries := newAdapter(t, http.StatusOK, `{"hits":[]}`)

	for _, request := range []mcp.CallToolRequest{
		{},
		callRequest(map[string]any{"limit": 3}),
		callRequest(map[string]any{"query": 7}),
	} {
		result, err := SearchHandler(adapter)(context.Background(), request)
		require.NoError(t, err)
		assert.True(t, result.IsError)

		decoded := resultText(t, result)
		assert.Equal(t, false, decoded["success"])
		assert.Equal(t, agentlookup.ErrQueryRequired.Error(), decoded["error"])
	}
	assert.Empty(t, *queries)
}

func TestSearchHandlerDropsNullArguments(t *testing.T) {
	adapter, queries := newAdapter(t, http.StatusOK, `{"hits":[]}`)

	result, err := SearchHandler(adapter)(context.Background(), callRequest(map[string]any{
		"query":    "research",
		"protocol": nil,
		"limit":    3.0,
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	require.Len(t, *queries, 1)
	assert.Equal(t, "limit=3&q=research", (*queries)[0])
}

func TestAgentDetailsHandlerNotFound(t *testing.T) {
	adapter, _ := newAdapter(t, http.StatusOK, `{"hits":[]}`)

	result, err := AgentDetailsHandler(adapter)(context.Background(), callRequest(map[string]any{
		"uaid": "uaid:aid:missing",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	decoded := resultText(t, result)
	assert.Equal(t, false, decoded["success"])
	assert.Equal(t, "Agent not found", decoded["error"])
}

func TestNewServerRegistersTools(t *testing.T) {
	adapter, _ := newAdapter(t, http.StatusOK, `{"hits":[]}`)
	assert.NotNil(t, NewServer(adapter, ServerOptions{}))
}
