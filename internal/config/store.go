package config

// StoreConfig selects where sessions and categories are persisted.
type StoreConfig struct {
	Driver string `env:"STORE_DRIVER" envDefault:"sqlite"`
	Path   string `env:"STORE_PATH" envDefault:"steam-tracker.db"`
}
