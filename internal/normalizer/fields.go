package normalizer

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/logger"
)

var dimensionPattern = regexp.MustCompile(`^\s*(\d+)\s*[xX×]\s*(\d+)\s*$`)

// dateLayouts are tried in order for textual dates
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// millisThreshold separates unix seconds from unix milliseconds
const millisThreshold = 1e11

// stringFrom returns the first non-empty string member among keys
func stringFrom(m map[string]any, keys ...string) string {
	if m == nil {
		return ""
	}
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// decodeRaw decodes a raw JSON member into a generic value, nil when absent or malformed
func decodeRaw(field string, raw json.RawMessage, log *zap.Logger) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn("dropping malformed field", zap.String("field", field), zap.Error(err))
		return nil
	}
	return v
}

// parseDate parses RFC3339, date-only, or unix seconds/millis values.
// Anything unparseable yields nil.
func parseDate(field string, v any, log *zap.Logger) *time.Time {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		return unixTime(field, t, log)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			log.Warn("dropping malformed date", zap.String("field", field), zap.String("value", t.String()))
			return nil
		}
		return unixTime(field, f, log)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return unixTime(field, f, log)
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				parsed = parsed.UTC()
				return &parsed
			}
		}
		log.Warn("dropping malformed date", zap.String("field", field), zap.String("value", s))
		return nil
	default:
		log.Warn("dropping malformed date", zap.String("field", field), zap.Any("value", v))
		return nil
	}
}

func unixTime(field string, f float64, log *zap.Logger) *time.Time {
	if f <= 0 {
		log.Warn("dropping non-positive timestamp", zap.String("field", field), zap.Float64("value", f))
		return nil
	}
	var ts time.Time
	if f >= millisThreshold {
		ts = time.UnixMilli(int64(f)).UTC()
	} else {
		ts = time.Unix(int64(f), 0).UTC()
	}
	return &ts
}

// firstDate returns the first candidate that parses
func firstDate(log *zap.Logger, candidates ...namedValue) *time.Time {
	for _, c := range candidates {
		if d := parseDate(c.name, c.value, log); d != nil {
			return d
		}
	}
	return nil
}

// namedValue pairs a raw value with its field name for logging
type namedValue struct {
	name  string
	value any
}

// positiveInt reads a positive integer out of a JSON scalar
func positiveInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		if t > 0 && t == float64(int(t)) {
			return int(t), true
		}
	case json.Number:
		i, err := t.Int64()
		if err == nil && i > 0 {
			return int(i), true
		}
	case string:
		s := strings.TrimSuffix(strings.TrimSpace(strings.ToLower(t)), "px")
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil && i > 0 {
			return i, true
		}
	case int:
		if t > 0 {
			return t, true
		}
	}
	return 0, false
}

// parseDimensions accepts {width,height}, {value:"WxH"} or "WxH"
func parseDimensions(v any) *domain.Dimensions {
	switch t := v.(type) {
	case string:
		m := dimensionPattern.FindStringSubmatch(t)
		if m == nil {
			return nil
		}
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		return domain.NewDimensions(w, h)
	case map[string]any:
		w, wok := positiveInt(t["width"])
		h, hok := positiveInt(t["height"])
		if wok && hok {
			return domain.NewDimensions(w, h)
		}
		if value, ok := t["value"].(string); ok {
			return parseDimensions(value)
		}
	}
	return nil
}

// firstDimensions returns the first candidate with positive width and height
func firstDimensions(log *zap.Logger, candidates ...namedValue) *domain.Dimensions {
	for _, c := range candidates {
		if c.value == nil {
			continue
		}
		if d := parseDimensions(c.value); d != nil {
			return d
		}
		log.Debug("ignoring unusable dimensions", zap.String("field", c.name), zap.Any("value", c.value))
	}
	return nil
}

// parseInt64 reads a non-negative integer out of a JSON scalar or numeric string
func parseInt64(v any) *int64 {
	var i int64
	switch t := v.(type) {
	case float64:
		if t < 0 || t != float64(int64(t)) {
			return nil
		}
		i = int64(t)
	case json.Number:
		n, err := t.Int64()
		if err != nil || n < 0 {
			return nil
		}
		i = n
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil || n < 0 {
			return nil
		}
		i = n
	default:
		return nil
	}
	return &i
}

// recordLogger returns a logger scoped to one record
func recordLogger(raw domain.RawRecord) *zap.Logger {
	return logger.With(
		zap.String("nft_uid", raw.NFTUID()),
		zap.String("source", string(raw.Source)),
	)
}
