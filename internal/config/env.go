package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from process environment variables. The mapping is
// declared with `env` and `envPrefix` tags on [StructuredConfig] and its
// nested sections, so APP_TOKEN_ISSUER lands in App.TokenIssuer and
// SERVER_ADDRESS in Server.HTTPAddress.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("reading environment configuration: %w", err)
	}

	return nil
}
