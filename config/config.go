// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to the environment variables that override settings, eg MOCLO_STRATEGY
	EnvPrefix = "MOCLO"

	// fusion site role from the Sequence Ontology (SO:0001953)
	defaultFusionSiteRole = "http://identifiers.org/so/SO:0001953"

	// plasmid vector role from the Sequence Ontology (SO:0000637)
	defaultPlasmidRole = "http://identifiers.org/so/SO:0000637"
)

// RolesConfig are the Sequence Ontology terms used to classify definitions
type RolesConfig struct {
	// FusionSite marks overhang sub-features of a plasmid
	FusionSite string `mapstructure:"fusion-site"`

	// Plasmid marks library entries that can be used in a chain
	Plasmid string `mapstructure:"plasmid"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment, and those
// available from the command line
type Config struct {
	// FusionSites is the path to a YAML table of fusion site names to sequences.
	// The CIDAR MoClo overhangs are used if it's empty
	FusionSites string `mapstructure:"fusion-sites"`

	// Roles used to find fusion sites and plasmids
	Roles RolesConfig `mapstructure:"roles"`

	// Ordering of a plasmid's fusion sites: positional or sorted
	Ordering string `mapstructure:"ordering"`

	// Strategy for picking plasmids: greedy or backtrack
	Strategy string `mapstructure:"strategy"`

	// RejectAmbiguous fails when more than one plasmid fits a position
	RejectAmbiguous bool `mapstructure:"reject-ambiguous"`

	// Verbose logs every matching decision
	Verbose bool `mapstructure:"verbose"`

	// Out is the JSON output file. Guessed from the design's path if empty
	Out string `mapstructure:"out"`
}

func setDefaults() {
	viper.SetDefault("fusion-sites", "")
	viper.SetDefault("roles.fusion-site", defaultFusionSiteRole)
	viper.SetDefault("roles.plasmid", defaultPlasmidRole)
	viper.SetDefault("ordering", "positional")
	viper.SetDefault("strategy", "greedy")
	viper.SetDefault("reject-ambiguous", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("out", "")
}

// Setup loads a .env file if there is one, binds MOCLO_ environment
// variables, and reads the settings file if one is passed.
func Setup(settingsFile string) error {
	_ = godotenv.Load() // optional

	setDefaults()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if settingsFile == "" {
		return nil
	}

	viper.SetConfigFile(settingsFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read settings file %s: %w", settingsFile, err)
	}
	return nil
}

// New returns a new Config struct populated by Viper settings
func New() (*Config, error) {
	setDefaults()

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	return c, nil
}
