// Package poolconfig loads the pool's immutable parameters (the
// amplification coefficient, fee shares, decimal precisions, storage
// backend selection) the way the teacher's internal/config package loads
// node configuration: viper defaults layered under a config file layered
// under environment variables.
package poolconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full set of parameters needed to construct a Pool and
// its storage backend.
type Config struct {
	Amplification     uint64 `mapstructure:"amplification"`
	FeeShareBP        uint16 `mapstructure:"fee_share_bp"`
	AdminFeeShareBP   uint16 `mapstructure:"admin_fee_share_bp"`
	BalanceRatioMinBP uint16 `mapstructure:"balance_ratio_min_bp"`

	DecimalsA  uint32 `mapstructure:"decimals_a"`
	DecimalsB  uint32 `mapstructure:"decimals_b"`
	DecimalsLP uint32 `mapstructure:"decimals_lp"`

	StorageBackend string `mapstructure:"storage_backend"` // "memory", "pebble" or "bolt"
	StoragePath    string `mapstructure:"storage_path"`
}

// envPrefix is the environment variable prefix configuration values can
// be overridden through, matching the teacher's XRPLD_ prefix convention.
const envPrefix = "AMMPOOL"

// Load reads configuration from defaults, then configPath (if non-empty
// and present), then environment variables, in that priority order.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("poolconfig: read config file %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("poolconfig: unmarshal: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("amplification", 20)
	v.SetDefault("fee_share_bp", 1)
	v.SetDefault("admin_fee_share_bp", 2000)
	v.SetDefault("balance_ratio_min_bp", 1)
	v.SetDefault("decimals_a", 7)
	v.SetDefault("decimals_b", 7)
	v.SetDefault("decimals_lp", 7)
	v.SetDefault("storage_backend", "memory")
	v.SetDefault("storage_path", "./ammpool-data")
}

func validate(cfg *Config) error {
	if cfg.Amplification == 0 {
		return fmt.Errorf("poolconfig: amplification must be positive")
	}
	if cfg.FeeShareBP > 10000 || cfg.AdminFeeShareBP > 10000 || cfg.BalanceRatioMinBP > 10000 {
		return fmt.Errorf("poolconfig: basis-point fields must be <= 10000")
	}
	switch cfg.StorageBackend {
	case "memory", "pebble", "bolt":
	default:
		return fmt.Errorf("poolconfig: unknown storage backend %q", cfg.StorageBackend)
	}
	return nil
}
