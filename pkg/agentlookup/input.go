package agentlookup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

const DefaultLimit = 5

var inputValidator = validator.New()

// ParseSearchInput accepts either a JSON SearchQuery or free text. Anything
// that does not decode and validate as a SearchQuery is searched verbatim
// with the default limit.
func ParseSearchInput(input string) SearchRequest {
	query, err := decodeSearchQuery(input)
	if err != nil {
		return SearchRequest{Query: input, Limit: DefaultLimit}
	}
	return query.Request()
}

// Request applies defaults to the query. Fractional limits are truncated.
func (q SearchQuery) Request() SearchRequest {
	request := SearchRequest{
		Protocol:   strings.TrimSpace(q.Protocol),
		Capability: strings.TrimSpace(q.Capability),
		Limit:      DefaultLimit,
	}
	if q.Query != nil {
		request.Query = *q.Query
	}
	if q.Limit >= 1 {
		request.Limit = int(math.Min(q.Limit, math.MaxInt32))
	}
	return request
}

// decodeSearchQuery matches keys exactly and rejects null values, unlike
// json.Unmarshal into a struct. Unknown keys are ignored.
func decodeSearchQuery(input string) (SearchQuery, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(input), &fields); err != nil {
		return SearchQuery{}, err
	}

	var query SearchQuery
	targets := map[string]any{
		"query":      &query.Query,
		"protocol":   &query.Protocol,
		"capability": &query.Capability,
		"limit":      &query.Limit,
	}
	for key, target := range targets {
		raw, exists := fields[key]
		if !exists {
			continue
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return SearchQuery{}, fmt.Errorf("%s must not be null", key)
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return SearchQuery{}, fmt.Errorf("invalid %s: %w", key, err)
		}
	}

	if err := inputValidator.Struct(query); err != nil {
		return SearchQuery{}, err
	}
	return query, nil
}
