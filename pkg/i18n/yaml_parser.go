package i18n

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML decodes content shaped as lang -> nested keys -> template and
// flattens every language into dot-separated keys.
func parseYAML(ctx context.Context, content []byte) (map[string]map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]string, len(data))
	for lang, val := range data {
		tree, ok := asStringMap(val)
		if !ok {
			return nil, errors.Join(ErrFailedToParseYAML,
				fmt.Errorf("language %q: expected map, got %T", lang, val))
		}
		flat := make(map[string]string)
		flatten("", tree, flat)
		result[lang] = flat
	}
	return result, nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := asStringMap(v); ok {
			flatten(key, sub, out)
			continue
		}
		if v != nil {
			out[key] = fmt.Sprint(v)
		}
	}
}

func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
