// Package registry_broker_tools_go lets AI agent frameworks discover other
// agents through the HOL Registry Broker, the universal index of agents
// published across NANDA, MCP, OpenRouter, A2A, Virtuals, and more.
//
// # Packages
//
//   - pkg/registrybroker: client for the Registry Broker search API.
//   - pkg/agentlookup: the search and agent details tools, input parsing,
//     and response normalization.
//   - pkg/uaid: HCS-14 Universal Agent ID parsing.
//   - pkg/config: TOML, .env, and environment configuration.
//   - adapters/langchaingo: tools for tmc/langchaingo agents.
//   - adapters/mcpserver: the same tools served over MCP.
//   - cmd/registry-broker-tools: command line interface.
//
// # Documentation
//
// Registry Broker API: https://hol.org/docs/api/registry-broker
//
// HCS-14 Universal Agent ID: https://hol.org/docs/standards/hcs-14
//
// # Installation
//
//	go get github.com/hashgraph-online/registry-broker-tools-go@latest
package registry_broker_tools_go
