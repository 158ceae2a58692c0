// Package agentlookup adapts agent-framework tool calls to the Registry
// Broker search API.
//
// Two entry points are provided. Search accepts free text or a JSON
// SearchQuery and returns normalized agents; Details looks up a single agent
// by UAID. Both return a JSON document that always carries a "success" flag,
// so the calling model sees failures as data instead of errors:
//
//	adapter, err := agentlookup.New(agentlookup.Options{})
//	output, _ := adapter.Search(ctx, `{"query":"research","protocol":"mcp","limit":3}`)
//	details, _ := adapter.Details(ctx, "uaid:aid:example;uid=agent-1;registry=demo;proto=mcp")
//
// Registry adapters report the same facts in different places. Names and
// descriptions are read from the hit first and the profile second; the
// protocol from metadata, then the registry, then the hit's UAID.
package agentlookup
