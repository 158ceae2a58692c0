package registrybroker

import (
	"context"
	"net/http"
	"net/url"
)

// Search runs a keyword search against GET /search.
func (c *RegistryBrokerClient) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	var result SearchResponse
	if err := c.requestJSON(ctx, http.MethodGet, pathWithQuery("/search", buildSearchQuery(params)), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func buildSearchQuery(params SearchParams) url.Values {
	query := url.Values{}
	query.Set("q", params.Q)
	addQueryPositiveInt(query, "limit", params.Limit)
	addQueryStrings(query, "protocols", params.Protocols)
	addQueryStrings(query, "capabilities", params.Capabilities)
	return query
}
