package domain

import "time"

// Patch is a partial-field update keyed by the internal (camel-cased) field
// names. Entities apply the keys they recognize and ignore the rest; the
// gateway layer owns translation to external naming.
type Patch map[string]any

// Str assigns dst when key holds a string.
func (p Patch) Str(key string, dst *string) {
	if v, ok := p[key].(string); ok {
		*dst = v
	}
}

// StrPtr assigns dst when key is present; an explicit nil clears the field.
func (p Patch) StrPtr(key string, dst **string) {
	v, ok := p[key]
	if !ok {
		return
	}
	if v == nil {
		*dst = nil
		return
	}
	if s, ok := v.(string); ok {
		*dst = &s
	}
}

// Int assigns dst when key holds an int or a JSON-decoded float64.
func (p Patch) Int(key string, dst *int) {
	switch v := p[key].(type) {
	case int:
		*dst = v
	case float64:
		*dst = int(v)
	}
}

// Time assigns dst when key holds a time.Time or an RFC 3339 string; an
// explicit nil clears the field.
func (p Patch) Time(key string, dst **time.Time) {
	v, ok := p[key]
	if !ok {
		return
	}
	switch t := v.(type) {
	case nil:
		*dst = nil
	case time.Time:
		*dst = &t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			*dst = &parsed
		}
	}
}

// IDs assigns dst when key holds an id sequence ([]string, LinkSet, or
// JSON-decoded []any). Duplicates are dropped, first occurrence wins.
func (p Patch) IDs(key string, dst *LinkSet) {
	v, ok := p[key]
	if !ok {
		return
	}
	var raw []string
	switch ids := v.(type) {
	case LinkSet:
		raw = ids
	case []string:
		raw = ids
	case []any:
		for _, e := range ids {
			if s, ok := e.(string); ok {
				raw = append(raw, s)
			}
		}
	default:
		return
	}
	out := LinkSet{}
	for _, id := range raw {
		out = out.Add(id)
	}
	*dst = out
}

// Clone returns an independent shallow copy of the patch.
func (p Patch) Clone() Patch {
	out := make(Patch, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
