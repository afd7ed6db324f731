// Package config loads the host settings of the nft_drop command: runtime
// options from the environment and deployment parameters from YAML.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Runtime holds the environment-driven settings of the command.
type Runtime struct {
	// StatePath is the sqlite file the drop lives in.
	StatePath       string `env:"NFT_DROP_STATE" envDefault:"nft_drop.db"`
	LogLevel        string `env:"NFT_DROP_LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"NFT_DROP_LOG_FORMAT" envDefault:"text"`
	ContractAddress string `env:"NFT_DROP_CONTRACT_ADDRESS" envDefault:"contract:nft_drop"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadRuntime parses Runtime from the environment.
func LoadRuntime() (Runtime, error) {
	var rt Runtime
	if err := ParseEnv(&rt); err != nil {
		return Runtime{}, err
	}
	return rt, nil
}
