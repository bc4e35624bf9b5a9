package normalizer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/wallace-museum/nft-importer/internal/domain"
)

// maxFallbackTags caps how many attribute values stand in for missing tags
const maxFallbackTags = 5

// attributeCollector accumulates attributes, dropping case-insensitive
// duplicates of (trait, value) while preserving first-seen order
type attributeCollector struct {
	seen  map[string]struct{}
	items []domain.Attribute
}

func newAttributeCollector() *attributeCollector {
	return &attributeCollector{seen: make(map[string]struct{})}
}

func (c *attributeCollector) add(trait string, value any) {
	v, ok := stringifyValue(value)
	if !ok {
		return
	}
	trait = strings.TrimSpace(trait)
	key := strings.ToLower(trait) + "\x00" + strings.ToLower(v)
	if _, dup := c.seen[key]; dup {
		return
	}
	c.seen[key] = struct{}{}
	c.items = append(c.items, domain.Attribute{TraitType: trait, Value: v})
}

// addList flattens [{trait_type|name|key, value}] style entries
func (c *attributeCollector) addList(list []any) {
	for _, entry := range list {
		switch e := entry.(type) {
		case map[string]any:
			trait := stringFrom(e, "trait_type", "traitType", "name", "key", "type")
			value, ok := e["value"]
			if !ok {
				continue
			}
			c.add(trait, value)
		case string:
			c.add("", e)
		}
	}
}

// addObject flattens {trait: value} style objects with keys in sorted order
func (c *attributeCollector) addObject(obj map[string]any) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.add(k, obj[k])
	}
}

// addAny dispatches on the decoded JSON shape
func (c *attributeCollector) addAny(v any) {
	switch t := v.(type) {
	case []any:
		c.addList(t)
	case map[string]any:
		c.addObject(t)
	}
}

func (c *attributeCollector) result() []domain.Attribute {
	if c.items == nil {
		return []domain.Attribute{}
	}
	return c.items
}

// attributesFromMetadata flattens the attributes, traits, properties and
// features members of a token metadata document
func attributesFromMetadata(c *attributeCollector, metadata map[string]any) {
	if metadata == nil {
		return
	}
	for _, key := range []string{"attributes", "traits"} {
		if v, ok := metadata[key]; ok {
			c.addAny(v)
		}
	}
	for _, key := range []string{"properties", "features"} {
		if obj, ok := metadata[key].(map[string]any); ok {
			c.addObject(scalarMembers(obj))
		}
	}
}

// scalarMembers keeps only members whose values are scalars
func scalarMembers(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		switch v.(type) {
		case string, float64, bool, json.Number:
			out[k] = v
		}
	}
	return out
}

// stringifyValue renders a JSON scalar as a string; nil and empty values are dropped
func stringifyValue(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t), true
		}
		return string(b), true
	}
}

// parseTags accepts a list of strings, a list of {name} objects or a comma separated string
func parseTags(v any) []string {
	var raw []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			switch it := item.(type) {
			case string:
				raw = append(raw, it)
			case map[string]any:
				raw = append(raw, stringFrom(it, "name", "tag"))
			}
		}
	case []string:
		raw = t
	case string:
		raw = strings.Split(t, ",")
	}
	return dedupeTags(raw)
}

func dedupeTags(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	var tags []string
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// tagsFromAttributes uses the first attribute values as tags
func tagsFromAttributes(attrs []domain.Attribute) []string {
	raw := make([]string, 0, maxFallbackTags)
	for _, a := range attrs {
		if len(raw) == maxFallbackTags {
			break
		}
		raw = append(raw, a.Value)
	}
	return dedupeTags(raw)
}

// chooseTags applies explicit list, then comma string, then attribute fallback
func chooseTags(explicit []string, attrs []domain.Attribute) []string {
	if len(explicit) > 0 {
		return explicit
	}
	if fallback := tagsFromAttributes(attrs); len(fallback) > 0 {
		return fallback
	}
	return []string{}
}
