package schema

import (
	"net/url"
	"strings"
)

// Params is an ordered set of form parameters. Encode keeps insertion order, so the
// signed body is reproducible for a given call.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams builds Params from alternating key, value arguments.
func NewParams(kv ...string) *Params {
	p := &Params{values: make(map[string]string, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		p.Set(kv[i], kv[i+1])
	}
	return p
}

// Set adds key or replaces its value in place.
func (p *Params) Set(key, value string) *Params {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Keys returns keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Clone returns an independent copy; a nil receiver yields an empty set.
func (p *Params) Clone() *Params {
	out := NewParams()
	if p == nil {
		return out
	}
	for _, k := range p.keys {
		out.Set(k, p.values[k])
	}
	return out
}

// Encode renders application/x-www-form-urlencoded text in insertion order.
func (p *Params) Encode() string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.values[k]))
	}
	return sb.String()
}
