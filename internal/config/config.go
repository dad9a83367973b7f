package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Store     StoreConfig
	Metrics   MetricsConfig
	Firestore FirestoreConfig
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Backend string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Store:     loadStore(),
		Metrics:   loadMetrics(),
		Firestore: loadFirestore(),
	}
}

func loadStore() StoreConfig {
	backend := envOrDefault(envStoreBackend, defaultStoreBackend)
	if backend != StoreMemory && backend != StoreFirestore {
		backend = defaultStoreBackend
	}
	return StoreConfig{Backend: backend}
}
