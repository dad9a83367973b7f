package config

const (
	envPort              = "PORT"
	envStoreBackend      = "STORE_BACKEND"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"
	envFirestoreProject  = "FIRESTORE_PROJECT_ID"
	envFirestoreEmulator = "FIRESTORE_EMULATOR_HOST"

	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	// The in-memory backend keeps the service usable without Firestore
	// credentials; production deployments set STORE_BACKEND=firestore.
	defaultStoreBackend = StoreMemory
)

// Store backend names accepted by STORE_BACKEND.
const (
	StoreMemory    = "memory"
	StoreFirestore = "firestore"
)
