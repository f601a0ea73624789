package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"skylander/internal/api"
	"skylander/internal/types"
)

var (
	listMine    bool
	listPending bool
	listSearch  string

	addAddress string
	addLat     float64
	addLon     float64
	addMedia   string
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List and submit location enrollments",
}

// locationsListCmd prints enrollments, optionally scoped and filtered.
var locationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List location enrollments",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := buildClient()
		if err != nil {
			return err
		}
		ctx := context.Background()

		var locs []types.Location
		if listMine {
			sess, err := requireSession()
			if err != nil {
				return err
			}
			locs, err = client.ListLocationsByUser(ctx, sess.User.ID)
			if err != nil {
				return err
			}
		} else {
			locs, err = client.ListLocations(ctx)
			if err != nil {
				return err
			}
		}

		if listPending {
			locs = types.FilterByStatus(locs, types.StatusPending)
		}
		locs = types.FilterByAddress(locs, listSearch)

		if len(locs) == 0 {
			fmt.Println("No locations found")
			return nil
		}
		for _, l := range locs {
			fmt.Printf("%-6s %-10s %-24s %s\n", l.ID, l.Status, l.Coordinate(), l.Address)
		}
		return nil
	},
}

// locationsAddCmd submits a new enrollment.
var locationsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Submit a new location enrollment",
	Long: `Submits a location enrollment with its coordinate, address, and a
recorded verification video. All three are required; the submission is a
single multipart upload with no retry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireSession()
		if err != nil {
			return err
		}
		if addAddress == "" {
			return fmt.Errorf("address is required")
		}
		coord, err := types.ParseCoordinate(fmt.Sprintf("%f, %f", addLat, addLon))
		if err != nil {
			return err
		}

		client, _, err := buildClient()
		if err != nil {
			return err
		}
		msg, err := client.AddLocation(context.Background(), api.AddLocationRequest{
			UserID:     sess.User.ID,
			Address:    addAddress,
			Coordinate: coord,
			MediaPath:  addMedia,
		})
		if err != nil {
			return err
		}
		logger.Info("enrollment submitted", zap.String("address", addAddress))
		if msg == "" {
			msg = "Location submitted for review"
		}
		fmt.Println(msg)
		return nil
	},
}

// locationsStatusCmd fetches one enrollment by id.
var locationsStatusCmd = &cobra.Command{
	Use:   "status [id]",
	Short: "Show one enrollment's review status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := buildClient()
		if err != nil {
			return err
		}
		loc, err := client.LocationDetail(context.Background(), types.FlexID(args[0]))
		if err != nil {
			return err
		}
		fmt.Printf("Address:    %s\n", loc.Address)
		fmt.Printf("Coordinate: %s\n", loc.Coordinate())
		fmt.Printf("Status:     %s\n", loc.Status)
		fmt.Printf("Aruco ID:   %s\n", loc.ArucoLabel())
		return nil
	},
}

func init() {
	locationsListCmd.Flags().BoolVar(&listMine, "mine", false, "only the logged-in user's locations")
	locationsListCmd.Flags().BoolVar(&listPending, "pending", false, "only pending locations")
	locationsListCmd.Flags().StringVar(&listSearch, "search", "", "filter by address substring")

	locationsAddCmd.Flags().StringVar(&addAddress, "address", "", "location address")
	locationsAddCmd.Flags().Float64Var(&addLat, "lat", 0, "latitude")
	locationsAddCmd.Flags().Float64Var(&addLon, "lon", 0, "longitude")
	locationsAddCmd.Flags().StringVar(&addMedia, "media", "", "path to the verification video")
	_ = locationsAddCmd.MarkFlagRequired("address")
	_ = locationsAddCmd.MarkFlagRequired("lat")
	_ = locationsAddCmd.MarkFlagRequired("lon")
	_ = locationsAddCmd.MarkFlagRequired("media")

	locationsCmd.AddCommand(locationsListCmd)
	locationsCmd.AddCommand(locationsAddCmd)
	locationsCmd.AddCommand(locationsStatusCmd)
}
