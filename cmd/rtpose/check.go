package main

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rtpose/internal/config"
	"rtpose/internal/posenet"
)

// runCheck constructs the net (plan path validation included) and prints
// the sanity report without touching the device.
func runCheck(cmd *cobra.Command, cfg config.Config) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	net, err := posenet.New(posenet.NetConfig{
		PlanPath:       cfg.PlanPath,
		GPUID:          cfg.GPUID,
		OutputName:     cfg.OutputName,
		DisableLogging: cfg.DisableLogging,
	}, logger)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(net.SanityCheck())
}
