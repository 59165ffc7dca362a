package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration. With no
// arguments it tries config.yml in the usual locations; a missing file is
// fine and leaves the defaults in place, since every setting has a flag.
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}

	var cfg AppConfig
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
		v := validator.New()
		if err := v.Struct(cfg); err != nil {
			return err
		}
	}

	Config = cfg
	if Config.Decoder.Generation == "" {
		Config.Decoder.Generation = "v5"
	}
	if Config.Decoder.PolylinePrecision == 0 {
		Config.Decoder.PolylinePrecision = 5
	}
	if Config.Output.Format == "" {
		Config.Output.Format = "json"
	}
	if Config.Log.Env == "" {
		Config.Log.Env = "production"
	}
	return nil
}
