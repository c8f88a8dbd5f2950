package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every environment variable lookup so the client
// does not collide with unrelated tools on the same machine.
const envPrefix = "TASTEBOOK_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// parser. Nested structs are resolved through their envPrefix tags, so the
// full variable name is e.g. TASTEBOOK_SERVER_BASE_URL.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error parsing environment variables: %w", err)
	}

	return nil
}
