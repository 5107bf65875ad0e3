package logger

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/stellrent/response/logging/logger/config"
)

const maxDepth = 10

// Default patterns for detecting sensitive values
var defaultValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`),          // Credit card
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`), // Email
	regexp.MustCompile(`\b[A-Za-z0-9]{32,}\b`),                                // API keys/tokens
}

// Desensitizer masks sensitive data in log fields. Values under sensitive
// keys are replaced with a fixed-length mask; strings holding JSON documents
// are decoded, masked and re-encoded so logged response bodies are covered.
type Desensitizer struct {
	config   *config.Desensitization
	patterns []*regexp.Regexp
	mask     string
}

// NewDesensitizer creates a new desensitizer instance
func NewDesensitizer(cfg *config.Desensitization) *Desensitizer {
	if cfg == nil {
		cfg = config.DefaultDesensitization()
	}
	d := &Desensitizer{
		config: cfg,
		mask:   strings.Repeat(cfg.MaskChar, cfg.FixedMaskLength),
	}

	for _, pattern := range cfg.CustomPatterns {
		if regex, err := regexp.Compile(pattern); err == nil {
			d.patterns = append(d.patterns, regex)
		}
	}
	if cfg.EnableDefaultPatterns {
		d.patterns = append(d.patterns, defaultValuePatterns...)
	}

	return d
}

// DesensitizeFields processes log fields and masks sensitive data
func (d *Desensitizer) DesensitizeFields(fields logrus.Fields) logrus.Fields {
	if !d.config.Enabled {
		return fields
	}

	result := make(logrus.Fields, len(fields))
	for key, value := range fields {
		result[key] = d.desensitizeValue(key, value, 0)
	}
	return result
}

// DeepDesensitize provides standalone deep desensitization
func (d *Desensitizer) DeepDesensitize(data any) any {
	if !d.config.Enabled {
		return data
	}
	return d.desensitizeValue("", data, 0)
}

func (d *Desensitizer) desensitizeValue(key string, value any, depth int) any {
	if value == nil || depth > maxDepth {
		return value
	}
	if d.isSensitiveField(key) {
		return d.maskValue(value)
	}

	switch v := value.(type) {
	case string:
		return d.desensitizeString(v, depth)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = d.desensitizeValue(k, e, depth+1)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = d.desensitizeValue("", e, depth+1)
		}
		return out
	case error, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	default:
		return d.processViaJSON(value, depth)
	}
}

// processViaJSON handles complex types via JSON marshaling
func (d *Desensitizer) processViaJSON(value any, depth int) any {
	b, err := json.Marshal(value)
	if err != nil {
		return value
	}
	decoded, ok := decode(b)
	if !ok {
		return value
	}
	return d.desensitizeValue("", decoded, depth+1)
}

// desensitizeString masks JSON documents structurally and applies value
// patterns to everything else.
func (d *Desensitizer) desensitizeString(str string, depth int) string {
	trimmed := strings.TrimSpace(str)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if decoded, ok := decode([]byte(trimmed)); ok {
			var buf bytes.Buffer
			enc := json.NewEncoder(&buf)
			enc.SetEscapeHTML(false)
			if err := enc.Encode(d.desensitizeValue("", decoded, depth+1)); err == nil {
				return strings.TrimSuffix(buf.String(), "\n")
			}
		}
	}

	result := str
	for _, pattern := range d.patterns {
		result = pattern.ReplaceAllString(result, d.mask)
	}
	return result
}

func decode(b []byte) (any, bool) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, false
	}
	return out, true
}

// isSensitiveField checks if field name contains sensitive keywords
func (d *Desensitizer) isSensitiveField(fieldName string) bool {
	if fieldName == "" {
		return false
	}

	lowerName := strings.ToLower(fieldName)
	for _, sensitiveField := range d.config.SensitiveFields {
		lowerSensitiveField := strings.ToLower(sensitiveField)
		if d.config.ExactFieldMatch {
			if lowerName == lowerSensitiveField {
				return true
			}
		} else if strings.Contains(lowerName, lowerSensitiveField) {
			return true
		}
	}
	return false
}

// maskValue masks sensitive values with fixed-length replacement
func (d *Desensitizer) maskValue(value any) any {
	if s, ok := value.(string); ok && s == "" {
		return s
	}
	return d.mask
}
