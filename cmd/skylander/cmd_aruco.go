package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"skylander/internal/aruco"
)

var arucoCmd = &cobra.Command{
	Use:   "aruco",
	Short: "ArUco marker detection",
}

// arucoScanCmd sends a still image to the detection server.
var arucoScanCmd = &cobra.Command{
	Use:   "scan [image]",
	Short: "Detect marker ids in a photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		markers, err := aruco.New(cfg.DetectURL).Detect(context.Background(), args[0])
		if err != nil {
			return err
		}
		if len(markers) == 0 {
			fmt.Println("No markers detected.")
			return nil
		}
		fmt.Printf("Detected Markers: %s\n", strings.Join(markers, ", "))
		return nil
	},
}

func init() {
	arucoCmd.AddCommand(arucoScanCmd)
}
