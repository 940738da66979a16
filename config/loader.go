package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/tollkit/nested"
	"github.com/theoremus-urban-solutions/tollkit/toll"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// tollkit.yml, then fills defaults for anything left unset.
func LoadAppConfig() error {
	paths := []string{"tollkit.yml", "./config/tollkit.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return errors.Wrap(err, "read tollkit.yml")
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return errors.Wrap(err, "parse tollkit.yml")
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	for _, b := range cfg.Tolling.TimeBands {
		if _, err := time.Parse("15:04", b.Start); err != nil {
			return errors.Wrapf(err, "time band start %q", b.Start)
		}
	}
	Config = cfg
	applyDefaults(&Config)
	return nil
}

// UseDefaults resets the global configuration to the built-in defaults.
// The CLI calls this when no tollkit.yml is present.
func UseDefaults() {
	Config = AppConfig{}
	applyDefaults(&Config)
}

func applyDefaults(cfg *AppConfig) {
	if len(cfg.Tolling.VehicleRates) == 0 {
		cfg.Tolling.VehicleRates = toll.DefaultVehicleRates
	}
	if len(cfg.Tolling.TimeBands) == 0 {
		cfg.Tolling.TimeBands = toll.DefaultTimeBands
	}
	if cfg.Flatten.Separator == "" {
		cfg.Flatten.Separator = nested.DefaultSeparator
	}
}
