// Package langchaingo provides Registry Broker tools for the
// tmc/langchaingo AI agent framework.
//
// The tools let Langchain-powered agents discover other AI agents indexed by
// the HOL Registry Broker across NANDA, MCP, OpenRouter, A2A, Virtuals and
// more, then fetch the full record of a chosen agent by its Universal Agent
// ID (UAID).
//
// # Available Tools
//
//   - SearchTool: "registry_broker_search", free text or JSON query input.
//   - AgentDetailsTool: "registry_broker_agent_details", UAID input.
//
// Both tools answer with a JSON document carrying a "success" flag. Failures
// are reported inside that document and never as a Go error.
//
// # Usage
//
//	registryTools, err := langchaingo.NewRegistryBrokerTools("")
//	agent := agents.NewOneShotAgent(llm, registryTools)
//
// # Documentation
//
// Registry Broker API: https://hol.org/docs/api/registry-broker
//
// Langchaingo: https://github.com/tmc/langchaingo
package langchaingo
