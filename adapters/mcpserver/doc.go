// Package mcpserver exposes the Registry Broker search and agent details
// tools over the Model Context Protocol using mark3labs/mcp-go.
//
//	adapter, _ := agentlookup.New(agentlookup.Options{})
//	server := mcpserver.NewServer(adapter, mcpserver.ServerOptions{})
//	err := mcpserver.ServeStdio(server)
//
// Tool results are the same JSON documents the langchaingo tools return,
// carried as text content. Results whose success flag is false are marked
// as tool errors.
package mcpserver
