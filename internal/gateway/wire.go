package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/alexanderramin/northstar/internal/domain"
)

// The core names fields in camel case; the primary store speaks snake case.
// The translation is owned here, at the boundary, in both directions.

func camelToSnake(key string) string {
	var b strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func snakeToCamel(key string) string {
	parts := strings.Split(key, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

// translateKeys rewrites every map key in v with fn, recursing through nested
// maps and arrays. Values are left untouched.
func translateKeys(v any, fn func(string) string) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fn(k)] = translateKeys(val, fn)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = translateKeys(val, fn)
		}
		return out
	default:
		return v
	}
}

// entityToWire flattens an entity to a snake-cased field map for the primary
// store's create operation.
func entityToWire(e domain.Entity) (map[string]any, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return translateKeys(fields, camelToSnake).(map[string]any), nil
}

// patchToWire translates a partial-field patch to the primary store's naming.
func patchToWire(p domain.Patch) map[string]any {
	return translateKeys(map[string]any(normalize(p)), camelToSnake).(map[string]any)
}

// normalize round-trips patch values through JSON so link sets and timestamps
// serialize the same way entities do.
func normalize(p domain.Patch) map[string]any {
	data, err := json.Marshal(p)
	if err != nil {
		return p
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return p
	}
	return out
}

// wireToEntity decodes a snake-cased record into a typed entity of the given
// kind.
func wireToEntity(kind domain.Kind, record map[string]any) (domain.Entity, error) {
	camel := translateKeys(record, snakeToCamel)
	data, err := json.Marshal(camel)
	if err != nil {
		return nil, err
	}
	e, ok := domain.NewEntity(kind)
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
	if err := json.Unmarshal(data, e); err != nil {
		return nil, err
	}
	return e, nil
}
