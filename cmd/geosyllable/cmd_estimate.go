package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var argsEstimate struct {
	config string
}

var cmdEstimate = &cobra.Command{
	Use:   "estimate --config <name> <prefix>",
	Short: "Estimate the bounding region of a geosyllable address prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystemByName(argsRoot.catalog, argsEstimate.config)
		if err != nil {
			return err
		}

		est, err := sys.EstimateFromPrefix(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("center: %.7f, %.7f\n", est.CenterLat, est.CenterLon)
		fmt.Printf("bounds: N=%.7f S=%.7f E=%.7f W=%.7f\n", est.North, est.South, est.East, est.West)
		fmt.Printf("area: %.6f km^2, confidence: %.4f, completeness_level: %d\n", est.EstimatedAreaKm2, est.Confidence, est.CompletenessLevel)
		return nil
	},
}

func init() {
	cmdEstimate.Flags().StringVar(&argsEstimate.config, "config", "", "name of a catalogued configuration")
	_ = cmdEstimate.MarkFlagRequired("config")
}
