package config

// Default configuration values.
const (
	DefaultEnvPrefix = "MSYSKIT"
	DefaultLegacy    = false
)

// defaulter is the subset of viper used to seed defaults.
type defaulter interface {
	SetDefault(key string, value any)
}

// applyDefaults seeds default values for settings that have one.
// Provider roots have no defaults: a missing root must surface as missing.
func applyDefaults(v defaulter) {
	v.SetDefault(KeyLegacy, DefaultLegacy)
}
