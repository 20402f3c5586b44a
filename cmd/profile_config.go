package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Define struct for YAML
type ProfileConfig struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile is one named preset of bench parameters. Zero-valued fields
// leave the corresponding flag defaults untouched.
type Profile struct {
	ClockMHz     float64 `yaml:"clock_mhz"`
	Ticks        int64   `yaml:"ticks"`
	TraceFile    string  `yaml:"trace_file"`
	TraceDepth   int     `yaml:"trace_depth"`
	CounterWidth int     `yaml:"counter_width"`
	CounterLimit uint64  `yaml:"counter_limit"`
}

// GetProfile loads the named profile from a YAML profile file, or nil
// if the file has no profile under that name.
func GetProfile(profileFilePath string, profileName string) *Profile {
	// Read YAML file
	data, err := os.ReadFile(profileFilePath)
	if err != nil {
		panic(err)
	}

	// Parse YAML
	var cfg ProfileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		panic(err)
	}

	if profile, profileExists := cfg.Profiles[profileName]; profileExists {
		logrus.Infof("Using preset profile %v", profileName)
		return &profile
	}
	return nil
}
