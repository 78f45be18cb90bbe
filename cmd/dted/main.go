package main

import (
	"fmt"
	"os"

	"github.com/hillshade/dted/internal/config"
	"github.com/hillshade/dted/internal/lookup"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dted <coordinate> <coordinate>",
	Short: "Resolve a coordinate pair to a DTED Level-2 elevation",
	Long: `Resolve a latitude/longitude pair to the elevation at the nearest
DTED Level-2 grid post. Coordinates use the D.MMSSH form, degrees then
two-digit minutes and seconds, with a trailing hemisphere letter.

Example (the Zugspitze, needs tile E0104500N471500_SRTM_1_DEM.dt2):
  dted 47.2516N 10.5911E

Tiles are read from the current directory unless --dir or DTED_DIR says
otherwise. Prints the elevation in meters, or "unknown" when the tile has
no data at that grid post.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadFromEnv()
		if cmd.Flags().Changed("dir") {
			dir, _ := cmd.Flags().GetString("dir")
			config.WithTileDir(dir)(cfg)
		}
		if cmd.Flags().Changed("log-level") {
			level, _ := cmd.Flags().GetString("log-level")
			config.WithLogLevel(level)(cfg)
		}
		cfg.InitializeLogging()

		loader, err := cfg.BuildLoader(cmd.Context())
		if err != nil {
			return err
		}

		elevation, err := lookup.NewService(loader).Height(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		if !elevation.Valid {
			fmt.Println("unknown")
			return nil
		}
		fmt.Println(elevation.Meters)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringP("dir", "d", "", "Directory holding the tile files")
	rootCmd.Flags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dted:", err)
		os.Exit(1)
	}
}
