package uaid

import (
	"errors"
	"net/url"
	"sort"
	"strings"
)

const (
	TargetAID = "aid"
	TargetDID = "did"
)

var (
	ErrInvalidUAID        = errors.New("invalid UAID")
	ErrInvalidTarget      = errors.New("invalid UAID target")
	ErrIdentifierRequired = errors.New("UAID identifier is required")
)

var paramOrder = []string{
	"uid",
	"registry",
	"proto",
	"nativeId",
	"domain",
	"src",
	"version",
}

type Parsed struct {
	Target string
	ID     string
	Params map[string]string
}

// Protocol returns the proto routing parameter.
func (p Parsed) Protocol() string {
	return p.Params["proto"]
}

// Registry returns the registry routing parameter.
func (p Parsed) Registry() string {
	return p.Params["registry"]
}

// String renders the canonical UAID.
func (p Parsed) String() string {
	return Build(p.Target, p.ID, p.Params)
}

// IsUAID reports whether value parses as a UAID.
func IsUAID(value string) bool {
	_, err := Parse(value)
	return err == nil
}

func Parse(value string) (Parsed, error) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "uaid:") {
		return Parsed{}, ErrInvalidUAID
	}

	remainder := strings.TrimPrefix(trimmed, "uaid:")
	target := ""
	switch {
	case strings.HasPrefix(remainder, TargetAID+":"):
		target = TargetAID
	case strings.HasPrefix(remainder, TargetDID+":"):
		target = TargetDID
	default:
		return Parsed{}, ErrInvalidTarget
	}
	remainder = strings.TrimPrefix(remainder, target+":")

	identifier, paramSection, _ := strings.Cut(remainder, ";")
	if strings.TrimSpace(identifier) == "" {
		return Parsed{}, ErrIdentifierRequired
	}

	params := parseParams(paramSection)
	for key, raw := range params {
		if decoded, err := url.QueryUnescape(raw); err == nil {
			params[key] = decoded
		}
	}
	return Parsed{
		Target: target,
		ID:     identifier,
		Params: params,
	}, nil
}

func Build(target string, identifier string, params map[string]string) string {
	entries := make([]string, 0, len(params))
	used := map[string]struct{}{}

	for _, key := range paramOrder {
		value := strings.TrimSpace(params[key])
		if value == "" {
			continue
		}
		entries = append(entries, key+"="+escapeParam(value))
		used[key] = struct{}{}
	}

	extraKeys := make([]string, 0)
	for key, value := range params {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if _, exists := used[key]; exists {
			continue
		}
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		entries = append(entries, key+"="+escapeParam(strings.TrimSpace(params[key])))
	}

	if len(entries) == 0 {
		return "uaid:" + target + ":" + identifier
	}
	return "uaid:" + target + ":" + identifier + ";" + strings.Join(entries, ";")
}

func escapeParam(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

func parseParams(input string) map[string]string {
	fields := map[string]string{}
	for _, part := range strings.Split(input, ";") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		key, value, found := strings.Cut(trimmed, "=")
		key = strings.TrimSpace(key)
		value = unquote(value)
		if !found || key == "" || value == "" {
			continue
		}
		fields[key] = value
	}
	return fields
}

func unquote(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "\"") && strings.HasSuffix(trimmed, "\"") {
		return strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	}
	return trimmed
}
