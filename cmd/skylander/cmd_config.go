package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"skylander/cmd/skylander/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit client configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, _ := config.ConfigFile()
		fmt.Printf("Config file:   %s\n", path)
		fmt.Printf("api_base_url:  %s\n", cfg.APIBaseURL)
		fmt.Printf("nominatim_url: %s\n", cfg.NominatimURL)
		fmt.Printf("detect_url:    %s\n", cfg.DetectURL)
		fmt.Printf("theme:         %s\n", cfg.Theme)
		fmt.Printf("debug_mode:    %t\n", cfg.DebugMode)
		fmt.Printf("home:          %.6f, %.6f\n", cfg.HomeLat, cfg.HomeLon)
		return nil
	},
}

// configSetCmd writes a single key back to the config file. Environment
// overrides still win at load time.
var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		key, value := args[0], args[1]
		switch key {
		case "api_base_url":
			cfg.APIBaseURL = value
		case "nominatim_url":
			cfg.NominatimURL = value
		case "detect_url":
			cfg.DetectURL = value
		case "theme":
			if value != "light" && value != "dark" {
				return fmt.Errorf("theme must be \"light\" or \"dark\"")
			}
			cfg.Theme = value
		case "debug_mode":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("debug_mode must be true or false")
			}
			cfg.DebugMode = b
		case "home_lat":
			f, err := strconv.ParseFloat(value, 64)
			if err != nil || f < -90 || f > 90 {
				return fmt.Errorf("home_lat must be a latitude between -90 and 90")
			}
			cfg.HomeLat = f
		case "home_lon":
			f, err := strconv.ParseFloat(value, 64)
			if err != nil || f < -180 || f > 180 {
				return fmt.Errorf("home_lon must be a longitude between -180 and 180")
			}
			cfg.HomeLon = f
		default:
			return fmt.Errorf("unknown key %q", key)
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
