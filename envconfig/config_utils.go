// config_utils.go - Utility-Funktionen und Export fuer Konfiguration
//
// Dieses Modul enthaelt:
// - Bool: Boolean-Getter (Default: false)
// - String: String-Getter
// - Uint: Integer-Getter mit Default-Wert
// - EnvVar: Struktur fuer Environment-Variablen-Info
// - AsMap: Gibt alle Konfigurationen als Map zurueck
// - Values: Gibt alle Konfigurationswerte als String-Map zurueck
package envconfig

import (
	"fmt"
	"log/slog"
	"strconv"
)

// =============================================================================
// Boolean-Getter
// =============================================================================

// boolWithDefault gibt eine Funktion zurueck, die einen Bool mit Default-Wert liest
func boolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool gibt eine Funktion zurueck, die einen Bool liest (Default: false)
func Bool(k string) func() bool {
	withDefault := boolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// =============================================================================
// String-Getter
// =============================================================================

// String gibt eine Funktion zurueck, die einen String liest
func String(s string) func() string {
	return func() string {
		return Var(s)
	}
}

// =============================================================================
// Integer-Getter
// =============================================================================

// Uint gibt eine Funktion zurueck, die einen uint mit Default-Wert liest
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// =============================================================================
// Export-Strukturen und -Funktionen
// =============================================================================

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
// Enthaelt Namen, aktuelle Werte und Beschreibungen
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"BPE_DEBUG":        {"BPE_DEBUG", LogLevel(), "Show additional debug information (e.g. BPE_DEBUG=1)"},
		"BPE_HOST":         {"BPE_HOST", Host(), "IP Address for the tokenizer server (default 127.0.0.1:11535)"},
		"BPE_ORIGINS":      {"BPE_ORIGINS", AllowedOrigins(), "A comma separated list of allowed origins"},
		"BPE_MODELS":       {"BPE_MODELS", Models(), "The path to the models directory"},
		"BPE_NUM_THREADS":  {"BPE_NUM_THREADS", NumThreads(), "Maximum goroutines used for pair counting (default: GOMAXPROCS)"},
		"BPE_NOPROGRESS":   {"BPE_NOPROGRESS", NoProgress(), "Do not show training progress"},
		"BPE_ENCODE_CACHE": {"BPE_ENCODE_CACHE", EncodeCache(), "Number of encode results the server keeps cached (default: 1024)"},
	}
}

// Values gibt alle Konfigurationswerte als String-Map zurueck
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
