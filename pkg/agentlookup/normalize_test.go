package agentlookup

import (
	"testing"

	"github.com/hashgraph-online/registry-broker-tools-go/pkg/registrybroker"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeHitPrecedence(t *testing.T) {
	cases := []struct {
		name     string
		hit      registrybroker.SearchHit
		expected NormalizedAgent
	}{
		{
			name: "top-level fields win",
			hit: registrybroker.SearchHit{
				ID:          "1",
				Name:        "Top",
				Description: "Top desc",
				Registry:    "demo",
				Metadata:    registrybroker.JSONObject{"protocol": "mcp"},
				Profile:     registrybroker.JSONObject{"display_name": "Nested", "description": "Nested desc"},
				Endpoints:   registrybroker.JSONObject{"primary": "https://x"},
			},
			expected: NormalizedAgent{ID: "1", Name: "Top", Description: "Top desc", Protocol: "mcp", Capabilities: []any{}, Endpoint: stringPointer("https://x")},
		},
		{
			name: "profile fills missing name and description",
			hit: registrybroker.SearchHit{
				ID:       "2",
				Registry: "nanda",
				Profile:  registrybroker.JSONObject{"display_name": "Nested", "description": "Nested desc"},
			},
			expected: NormalizedAgent{ID: "2", Name: "Nested", Description: "Nested desc", Protocol: "nanda", Capabilities: []any{}},
		},
		{
			name: "defaults when nothing is present",
			hit:  registrybroker.SearchHit{ID: "3"},
			expected: NormalizedAgent{ID: "3", Name: UnknownAgentName, Capabilities: []any{}},
		},
		{
			name: "non-string nested values are ignored",
			hit: registrybroker.SearchHit{
				ID:        "4",
				Profile:   registrybroker.JSONObject{"display_name": 7},
				Metadata:  registrybroker.JSONObject{"protocol": true},
				Endpoints: registrybroker.JSONObject{"primary": []any{"x"}},
			},
			expected: NormalizedAgent{ID: "4", Name: UnknownAgentName, Capabilities: []any{}},
		},
		{
			name: "uaid proto is the last protocol fallback",
			hit: registrybroker.SearchHit{
				ID:           "5",
				UAID:         "uaid:aid:five;uid=5;proto=a2a",
				Capabilities: []any{"chat"},
			},
			expected: NormalizedAgent{ID: "5", Name: UnknownAgentName, Protocol: "a2a", Capabilities: []any{"chat"}, UAID: "uaid:aid:five;uid=5;proto=a2a"},
		},
		{
			name: "registry beats uaid proto",
			hit: registrybroker.SearchHit{
				ID:       "6",
				UAID:     "uaid:aid:six;proto=a2a",
				Registry: "virtuals",
			},
			expected: NormalizedAgent{ID: "6", Name: UnknownAgentName, Protocol: "virtuals", Capabilities: []any{}, UAID: "uaid:aid:six;proto=a2a"},
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, normalizeHit(testCase.hit))
		})
	}
}

func TestDetailsFromHitKeepsMissingFieldsEmpty(t *testing.T) {
	details := detailsFromHit(registrybroker.SearchHit{ID: "7", UAID: "not-a-uaid"})
	assert.Equal(t, AgentDetails{ID: "7", UAID: "not-a-uaid"}, details)
}

func stringPointer(value string) *string {
	return &value
}
