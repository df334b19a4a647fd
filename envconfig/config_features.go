// config_features.go - Trainings- und Server-Einstellungen
//
// Dieses Modul enthaelt:
// - Parallelitaet beim Zaehlen der Paare
// - Groesse des Encode-Caches im Server
// - Fortschrittsanzeige
package envconfig

// =============================================================================
// Training
// =============================================================================

var (
	// NumThreads begrenzt die Goroutinen beim Zaehlen der Paare
	// Konfigurierbar via BPE_NUM_THREADS, 0 = GOMAXPROCS
	NumThreads = Uint("BPE_NUM_THREADS", 0)

	// NoProgress deaktiviert die Fortschrittsausgabe beim Training
	NoProgress = Bool("BPE_NOPROGRESS")
)

// =============================================================================
// Server
// =============================================================================

var (
	// EncodeCache setzt die Anzahl gecachter Encode-Ergebnisse
	// Konfigurierbar via BPE_ENCODE_CACHE, 0 = kein Cache
	EncodeCache = Uint("BPE_ENCODE_CACHE", 1024)
)
