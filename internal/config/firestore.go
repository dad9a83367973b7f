package config

// FirestoreConfig holds the settings for the Firestore-backed store.
type FirestoreConfig struct {
	ProjectID string
	// EmulatorHost is read for logging only; the Firestore client picks up
	// FIRESTORE_EMULATOR_HOST from the environment on its own.
	EmulatorHost string
}

func loadFirestore() FirestoreConfig {
	return FirestoreConfig{
		ProjectID:    envOrDefault(envFirestoreProject, ""),
		EmulatorHost: envOrDefault(envFirestoreEmulator, ""),
	}
}
