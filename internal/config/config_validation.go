package config

import "time"

// Defaults applied to any expiry or scheduling setting left unset by every
// configuration source. Addresses and secrets have no defaults: they must be
// supplied explicitly.
const (
	defaultTokenDuration  = time.Hour
	defaultSessionWindow  = 15 * time.Minute
	defaultRequestTimeout = 30 * time.Second
	defaultSweepInterval  = 5 * time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.SessionWindow == 0 {
		cfg.App.SessionWindow = defaultSessionWindow
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.SweepInterval == 0 {
		cfg.Workers.SweepInterval = defaultSweepInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The session issuer cannot operate without a signing secret, and the store
// cannot operate without a DSN, so both are required whenever the server
// address is set. A config used only by the CLI client carries neither.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return nil
	}

	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	return nil
}
