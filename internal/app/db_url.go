package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL adds lib/pq session defaults the caller did not set
// explicitly. Key/value DSNs get the same settings appended as tokens.
func normalizeDBURL(raw string, readOnly bool, applicationName string) string {
	trimmed := strings.TrimSpace(raw)
	settings := sessionSettings(readOnly, applicationName)
	if len(settings) == 0 {
		return raw
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return appendDSNSettings(trimmed, settings)
	}

	query := parsed.Query()
	for _, kv := range settings {
		if query.Get(kv[0]) == "" {
			query.Set(kv[0], kv[1])
		}
	}
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

func sessionSettings(readOnly bool, applicationName string) [][2]string {
	var out [][2]string
	if name := strings.TrimSpace(applicationName); name != "" {
		out = append(out, [2]string{"application_name", name})
	}
	if readOnly {
		out = append(out, [2]string{"default_transaction_read_only", "on"})
	}
	return out
}

func appendDSNSettings(dsn string, settings [][2]string) string {
	present := make(map[string]struct{})
	for _, token := range strings.Fields(dsn) {
		if key, _, ok := strings.Cut(token, "="); ok {
			present[key] = struct{}{}
		}
	}

	var b strings.Builder
	b.WriteString(dsn)
	for _, kv := range settings {
		if _, ok := present[kv[0]]; ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv[0] + "=" + quoteDSNValue(kv[1]))
	}
	return b.String()
}

func quoteDSNValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
