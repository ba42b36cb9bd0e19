// Package clients provides the HTTP helpers of the toolkit:
// query-string construction and a small request wrapper.
package clients

import (
	"net/url"
	"sort"
	"strings"
)

// QueryBuilder collects query parameters and renders them as a
// query string. The zero value is usable.
type QueryBuilder map[string]string

// Set stores a parameter and returns the builder for chaining.
func (qb QueryBuilder) Set(name, value string) QueryBuilder {
	qb[name] = value
	return qb
}

// Delete removes a parameter.
func (qb QueryBuilder) Delete(name string) {
	delete(qb, name)
}

// Encode renders the parameters as an escaped query string,
// keys in sorted order so output is deterministic.
func (qb QueryBuilder) Encode() string {
	if len(qb) == 0 {
		return ""
	}
	keys := make([]string, 0, len(qb))
	for k := range qb {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(qb[k]))
	}
	return b.String()
}

// Concat appends the parameters to a URL, `u?k=v&...`.
// The URL is returned unchanged when the builder is empty.
func (qb QueryBuilder) Concat(u string) string {
	q := qb.Encode()
	if q == "" {
		return u
	}
	if strings.Contains(u, "?") {
		return u + "&" + q
	}
	return u + "?" + q
}

// BuildQueryParams makes the query parameters string with the
// leading separator included.
func BuildQueryParams(params map[string]string) string {
	q := QueryBuilder(params).Encode()
	if q == "" {
		return ""
	}
	return "?" + q
}
