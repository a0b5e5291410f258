package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/bucketvec"
)

// parseConfig decodes a YAML growth config. Unknown keys are rejected;
// an empty document yields the zero config.
func parseConfig(data []byte) (bucketvec.GrowthConfig, error) {
	var cfg bucketvec.GrowthConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return bucketvec.GrowthConfig{}, err
	}
	return cfg, nil
}

// loadConfig resolves the growth config for cmd: DefaultConfig, then the
// --config file, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (bucketvec.GrowthConfig, error) {
	cfg := bucketvec.DefaultConfig()
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		fileCfg, err := parseConfig(data)
		if err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", configFile, err)
		}
		if fileCfg.StartingCapacity != 0 {
			cfg.StartingCapacity = fileCfg.StartingCapacity
		}
		if fileCfg.GrowthRate != 0 {
			cfg.GrowthRate = fileCfg.GrowthRate
		}
	}
	if cmd.Flags().Changed("starting-capacity") {
		cfg.StartingCapacity = startingCapacity
	}
	if cmd.Flags().Changed("growth-rate") {
		cfg.GrowthRate = growthRate
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
