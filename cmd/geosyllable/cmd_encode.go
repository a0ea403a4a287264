package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var argsEncode struct {
	config string
}

var cmdEncode = &cobra.Command{
	Use:   "encode --config <name> <lat> <lon>",
	Short: "Encode a coordinate into a geosyllable address",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("parse lat: %w", err)
		}
		lon, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("parse lon: %w", err)
		}

		sys, err := loadSystemByName(argsRoot.catalog, argsEncode.config)
		if err != nil {
			return err
		}

		addr, err := sys.CoordinateToAddress(lat, lon)
		if err != nil {
			return err
		}
		fmt.Println(addr)
		return nil
	},
}

func init() {
	cmdEncode.Flags().StringVar(&argsEncode.config, "config", "", "name of a catalogued configuration")
	_ = cmdEncode.MarkFlagRequired("config")
}
