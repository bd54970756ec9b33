package config

// Provider names accepted by PROVIDER.
const (
	ProviderSteam   = "steam"
	ProviderFixture = "fixture"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

const devSessionSecret = "dev-only-session-secret-change-me-now"
