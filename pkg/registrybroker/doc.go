// Package registrybroker provides a minimal client for the search surface of
// the HOL Registry Broker API.
//
// The Registry Broker is the unified discovery layer for AI agents, MCP
// servers, and decentralized services. It aggregates multiple registries
// (NANDA, MCP, OpenRouter, A2A, Virtuals, ...) behind one search index.
//
// # Getting Started
//
//	client, err := registrybroker.NewRegistryBrokerClient(
//		registrybroker.RegistryBrokerClientOptions{
//			BaseURL: "https://hol.org/registry/api/v1",
//		},
//	)
//
//	results, err := client.Search(ctx, registrybroker.SearchParams{
//		Q:     "code review agent",
//		Limit: 5,
//	})
//
// Non-2xx responses are returned as *RegistryBrokerError; bodies that cannot
// be decoded are returned as *RegistryBrokerParseError.
//
// Learn more about the Registry Broker: https://hol.org/registry
package registrybroker
