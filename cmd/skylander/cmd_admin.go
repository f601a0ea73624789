package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"skylander/internal/types"
)

var adminSearch string

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrator review operations",
}

// adminLocationsCmd lists every enrollment for review.
var adminLocationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List all enrollments for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		if !sess.User.IsAdmin() {
			return fmt.Errorf("the %s role cannot review enrollments", sess.User.Role)
		}

		client, _, err := buildClient()
		if err != nil {
			return err
		}
		locs, err := client.ListLocations(context.Background())
		if err != nil {
			return err
		}
		locs = types.FilterByAddress(locs, adminSearch)
		if len(locs) == 0 {
			fmt.Println("No locations found")
			return nil
		}
		for _, l := range locs {
			fmt.Printf("%-6s %-10s %-18s %s\n", l.ID, l.Status, l.EnrolledBy, l.Address)
		}
		return nil
	},
}

// adminDetailCmd shows one enrollment the way the review screen does.
var adminDetailCmd = &cobra.Command{
	Use:   "detail [id]",
	Short: "Show one enrollment's full details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		if !sess.User.IsAdmin() {
			return fmt.Errorf("the %s role cannot review enrollments", sess.User.Role)
		}

		client, _, err := buildClient()
		if err != nil {
			return err
		}
		loc, err := client.LocationDetail(context.Background(), types.FlexID(args[0]))
		if err != nil {
			return err
		}
		fmt.Printf("Location Address:    %s\n", loc.Address)
		fmt.Printf("Enrolled by:         %s\n", loc.EnrolledBy)
		fmt.Printf("Person email:        %s\n", loc.EnrolledEmail)
		fmt.Printf("Location Coordinate: %s\n", loc.Coordinate())
		fmt.Printf("Status:              %s\n", loc.Status)
		fmt.Printf("Aruco ID:            %s\n", loc.ArucoLabel())
		fmt.Printf("Verification video:  %s\n", client.MediaURL(loc.MediaFileName))
		return nil
	},
}

func init() {
	adminLocationsCmd.Flags().StringVar(&adminSearch, "search", "", "filter by address substring")
	adminCmd.AddCommand(adminLocationsCmd)
	adminCmd.AddCommand(adminDetailCmd)
}
