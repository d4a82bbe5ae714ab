package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/sejong/types"
	"github.com/spf13/viper"
)

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// Load resolves the configuration into v and returns it validated.
//
// Sources, lowest priority first: defaults, the config file, a .env file in
// the working directory, SEJONG_* environment variables, then any flags
// already bound to v. cfgFile, when set, must exist; otherwise
// ./.sejong.yaml and ~/.sejong.yaml are searched and may be absent.
func Load(v *viper.Viper, cfgFile string) (*types.AppConfig, error) {
	// It's okay if .env file doesn't exist.
	_ = godotenv.Load()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := GetGlobalConfigDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Config = v.ConfigFileUsed()

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
