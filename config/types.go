package config

import "github.com/theoremus-urban-solutions/tollkit/toll"

// TollingConfig carries the rate tables. Both tables are ordered: time bands
// are matched in declared order, so the yaml sequence order is significant.
type TollingConfig struct {
	VehicleRates []toll.VehicleRate `yaml:"vehicleRates" validate:"omitempty,dive"`
	TimeBands    []toll.TimeBand    `yaml:"timeBands" validate:"omitempty,dive"`
}

// DatasetsConfig contains default CSV dataset paths for the CLI.
type DatasetsConfig struct {
	Locations  string `yaml:"locations"`
	Distances  string `yaml:"distances"`
	Timestamps string `yaml:"timestamps"`
}

// FlattenConfig contains nested-map flattening options.
type FlattenConfig struct {
	Separator string `yaml:"separator"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Tolling  TollingConfig  `yaml:"tolling"`
	Datasets DatasetsConfig `yaml:"datasets"`
	Flatten  FlattenConfig  `yaml:"flatten"`
}
