package addressbook

import "github.com/amirrezaask/contacts/env"

type Config struct {
	// BatchSize is used by Pages.
	BatchSize        int
	MetricsNamespace string
}

func DefaultConfig() Config {
	return Config{
		BatchSize:        10,
		MetricsNamespace: "contacts",
	}
}

// ConfigFromEnv reads ADDRESSBOOK_BATCH_SIZE and ADDRESSBOOK_METRICS_NAMESPACE.
func ConfigFromEnv() Config {
	def := DefaultConfig()
	return Config{
		BatchSize:        env.GetEnvIntDefault("ADDRESSBOOK_BATCH_SIZE", def.BatchSize),
		MetricsNamespace: env.GetEnvDefault("ADDRESSBOOK_METRICS_NAMESPACE", def.MetricsNamespace),
	}
}
