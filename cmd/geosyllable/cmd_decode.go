package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var argsDecode struct {
	config string
}

var cmdDecode = &cobra.Command{
	Use:   "decode --config <name> <address>",
	Short: "Decode a geosyllable address into a coordinate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystemByName(argsRoot.catalog, argsDecode.config)
		if err != nil {
			return err
		}

		lat, lon, err := sys.AddressToCoordinate(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%.7f, %.7f\n", lat, lon)
		return nil
	},
}

func init() {
	cmdDecode.Flags().StringVar(&argsDecode.config, "config", "", "name of a catalogued configuration")
	_ = cmdDecode.MarkFlagRequired("config")
}
