package registrybroker

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL     = "https://hol.org/registry/api/v1"
	DefaultUserAgent   = "@hol-org/rb-tools-go"
	DefaultHTTPTimeout = 60 * time.Second
)

type RegistryBrokerClient struct {
	baseURL        string
	httpClient     *http.Client
	defaultHeaders map[string]string
	logger         zerolog.Logger
}

// NewRegistryBrokerClient creates a new RegistryBrokerClient.
func NewRegistryBrokerClient(options RegistryBrokerClientOptions) (*RegistryBrokerClient, error) {
	baseURL, err := normalizeBaseURL(options.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := options.HTTPTimeout
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	defaultHeaders := map[string]string{}
	for key, value := range options.DefaultHeaders {
		normalizedKey := normalizeHeaderName(key)
		trimmedValue := strings.TrimSpace(value)
		if normalizedKey != "" && trimmedValue != "" {
			defaultHeaders[normalizedKey] = trimmedValue
		}
	}
	if strings.TrimSpace(options.APIKey) != "" {
		defaultHeaders["x-api-key"] = strings.TrimSpace(options.APIKey)
	}

	client := options.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	logger := zerolog.Nop()
	if options.Logger != nil {
		logger = *options.Logger
	}

	return &RegistryBrokerClient{
		baseURL:        baseURL,
		httpClient:     client,
		defaultHeaders: defaultHeaders,
		logger:         logger.With().Str("component", "registrybroker").Logger(),
	}, nil
}

// BaseURL returns the normalized base URL the client was built with.
func (c *RegistryBrokerClient) BaseURL() string {
	return c.baseURL
}

// GetDefaultHeaders returns a copy of the headers sent with every request.
func (c *RegistryBrokerClient) GetDefaultHeaders() map[string]string {
	cloned := make(map[string]string, len(c.defaultHeaders))
	for key, value := range c.defaultHeaders {
		cloned[key] = value
	}
	return cloned
}

// BuildURL joins path onto the base URL.
func (c *RegistryBrokerClient) BuildURL(path string) string {
	normalizedPath := path
	if !strings.HasPrefix(normalizedPath, "/") {
		normalizedPath = "/" + normalizedPath
	}
	return c.baseURL + normalizedPath
}

func (c *RegistryBrokerClient) request(
	ctx context.Context,
	method string,
	path string,
	headers map[string]string,
) ([]byte, http.Header, error) {
	request, err := http.NewRequestWithContext(ctx, method, c.BuildURL(path), nil)
	if err != nil {
		return nil, nil, err
	}

	mergedHeaders := c.GetDefaultHeaders()
	for key, value := range headers {
		normalized := normalizeHeaderName(key)
		if normalized != "" && strings.TrimSpace(value) != "" {
			mergedHeaders[normalized] = strings.TrimSpace(value)
		}
	}
	if _, exists := mergedHeaders["accept"]; !exists {
		mergedHeaders["accept"] = "application/json"
	}
	if _, exists := mergedHeaders["accept-encoding"]; !exists {
		mergedHeaders["accept-encoding"] = "br, gzip"
	}
	if _, exists := mergedHeaders["user-agent"]; !exists {
		mergedHeaders["user-agent"] = DefaultUserAgent
	}
	if _, exists := mergedHeaders["x-request-id"]; !exists {
		mergedHeaders["x-request-id"] = uuid.NewString()
	}
	for key, value := range mergedHeaders {
		request.Header.Set(key, value)
	}

	logger := c.logger.With().
		Str("method", method).
		Str("url", request.URL.String()).
		Str("request_id", mergedHeaders["x-request-id"]).
		Logger()
	started := time.Now()

	response, err := c.httpClient.Do(request)
	if err != nil {
		logger.Debug().Err(err).Msg("registry broker request failed")
		return nil, nil, err
	}
	defer response.Body.Close()

	responseBody, err := readBody(response)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug().
		Int("status", response.StatusCode).
		Int("bytes", len(responseBody)).
		Dur("elapsed", time.Since(started)).
		Msg("registry broker response")

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, nil, &RegistryBrokerError{
			Message:    "registry broker request failed",
			Status:     response.StatusCode,
			StatusText: response.Status,
			Body:       parseErrorResponseBody(response.Header, responseBody),
		}
	}

	return responseBody, response.Header, nil
}

func (c *RegistryBrokerClient) requestJSON(
	ctx context.Context,
	method string,
	path string,
	target any,
) error {
	rawBody, rawHeaders, err := c.request(ctx, method, path, nil)
	if err != nil {
		return err
	}
	contentType := rawHeaders.Get("content-type")
	if contentType != "" && !isJSONContentType(contentType) {
		return &RegistryBrokerParseError{
			Message: "expected JSON response from registry broker",
			Body:    strings.TrimSpace(string(rawBody)),
		}
	}
	if err := json.Unmarshal(rawBody, target); err != nil {
		return &RegistryBrokerParseError{
			Message: "failed to decode registry broker response",
			Body:    strings.TrimSpace(string(rawBody)),
			Cause:   err,
		}
	}
	return nil
}

// readBody drains the response, undoing any content encoding the server
// applied. Go's transport only decodes gzip transparently when it set the
// accept-encoding header itself, which it does not once we set it.
func readBody(response *http.Response) ([]byte, error) {
	var reader io.Reader = response.Body
	switch strings.ToLower(strings.TrimSpace(response.Header.Get("content-encoding"))) {
	case "br":
		reader = brotli.NewReader(response.Body)
	case "gzip":
		gzipReader, err := gzip.NewReader(response.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip response: %w", err)
		}
		defer gzipReader.Close()
		reader = gzipReader
	}
	return io.ReadAll(reader)
}

func normalizeHeaderName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func normalizeBaseURL(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	trimmed = strings.TrimRight(trimmed, "/")

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid registry broker base URL %q: %w", value, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid registry broker base URL %q: scheme must be http or https", value)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("invalid registry broker base URL %q: host is required", value)
	}

	hostname := strings.ToLower(parsed.Hostname())
	if hostname == "registry.hashgraphonline.com" || hostname == "hashgraphonline.com" {
		parsed.Host = strings.Replace(parsed.Host, parsed.Hostname(), "hol.org", 1)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}

func isJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "json")
}

func parseErrorResponseBody(headers http.Header, body []byte) any {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}
	if isJSONContentType(headers.Get("content-type")) {
		var parsed any
		if err := json.Unmarshal(body, &parsed); err == nil {
			return parsed
		}
	}
	return trimmed
}

func addQueryStrings(values url.Values, key string, items []string) {
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			values.Add(key, trimmed)
		}
	}
}

func addQueryPositiveInt(values url.Values, key string, value int) {
	if value > 0 {
		values.Set(key, strconv.Itoa(value))
	}
}

func pathWithQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
