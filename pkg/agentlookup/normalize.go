package agentlookup

import (
	"github.com/hashgraph-online/registry-broker-tools-go/pkg/registrybroker"
	"github.com/hashgraph-online/registry-broker-tools-go/pkg/uaid"
)

const UnknownAgentName = "Unknown Agent"

type resolvedFields struct {
	name        string
	description string
	protocol    string
	endpoint    string
}

// resolveFields applies the fallback precedence shared by both tools:
// top-level fields win over nested profile/metadata fields.
func resolveFields(hit registrybroker.SearchHit) resolvedFields {
	return resolvedFields{
		name:        firstNonEmpty(hit.Name, hit.ProfileDisplayName()),
		description: firstNonEmpty(hit.Description, hit.ProfileDescription()),
		protocol:    firstNonEmpty(hit.MetadataProtocol(), hit.Registry, uaidProtocol(hit.UAID)),
		endpoint:    hit.PrimaryEndpoint(),
	}
}

func normalizeHit(hit registrybroker.SearchHit) NormalizedAgent {
	fields := resolveFields(hit)

	capabilities := hit.Capabilities
	if capabilities == nil {
		capabilities = []any{}
	}

	var endpoint *string
	if fields.endpoint != "" {
		endpoint = &fields.endpoint
	}

	return NormalizedAgent{
		ID:           hit.ID,
		Name:         firstNonEmpty(fields.name, UnknownAgentName),
		Description:  fields.description,
		Protocol:     fields.protocol,
		Capabilities: capabilities,
		Endpoint:     endpoint,
		UAID:         hit.UAID,
	}
}

func detailsFromHit(hit registrybroker.SearchHit) AgentDetails {
	fields := resolveFields(hit)
	return AgentDetails{
		ID:           hit.ID,
		UAID:         hit.UAID,
		Name:         fields.name,
		Description:  fields.description,
		Protocol:     fields.protocol,
		Capabilities: hit.Capabilities,
		Endpoints:    hit.Endpoints,
		Profile:      hit.Profile,
		Metadata:     hit.Metadata,
		LastSeen:     hit.LastSeen,
		CreatedAt:    hit.CreatedAt,
	}
}

func uaidProtocol(value string) string {
	if value == "" {
		return ""
	}
	parsed, err := uaid.Parse(value)
	if err != nil {
		return ""
	}
	return parsed.Protocol()
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
