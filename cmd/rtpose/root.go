package main

import (
	"github.com/spf13/cobra"

	"rtpose/internal/common/fsutil"
	"rtpose/internal/config"
)

const version = "0.1.0"

// buildRootCmd constructs the Cobra command tree.
func buildRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rtpose",
		Short:         "Pose-estimation engine runner (serialized plan, fixed-shape forward passes)",
		SilenceUsage:  true,
		SilenceErrors: false,
		Version:       version,
	}

	root.PersistentFlags().String("config", "", "Optional config file (.yaml/.json/.toml)")
	root.PersistentFlags().String("plan", "", "Path to the serialized engine plan")
	root.PersistentFlags().Int("gpu", 0, "GPU device index")
	root.PersistentFlags().String("output-name", "", "Output binding name override (default net_output)")
	root.PersistentFlags().Bool("no-runtime-log", false, "Suppress engine runtime diagnostics")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Initialize the net, run a warm-up pass, and serve health/status/metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runServe(cmd, cfg)
		},
	}
	serve.Flags().String("addr", ":8080", "HTTP listen address")

	check := &cobra.Command{
		Use:   "check",
		Short: "Validate the plan path and report runtime prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runCheck(cmd, cfg)
		},
	}

	root.AddCommand(serve, check)
	return root
}

// resolveConfig merges the optional config file with flag overrides; flags
// that were set on the command line win.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("plan") || cfg.PlanPath == "" {
		cfg.PlanPath, _ = cmd.Flags().GetString("plan")
	}
	if cmd.Flags().Changed("gpu") {
		cfg.GPUID, _ = cmd.Flags().GetInt("gpu")
	}
	if cmd.Flags().Changed("output-name") {
		cfg.OutputName, _ = cmd.Flags().GetString("output-name")
	}
	if cmd.Flags().Changed("no-runtime-log") {
		cfg.DisableLogging, _ = cmd.Flags().GetBool("no-runtime-log")
	}
	if cmd.Flags().Lookup("addr") != nil {
		if cmd.Flags().Changed("addr") || cfg.Addr == "" {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}
	}

	plan, err := fsutil.ExpandHome(cfg.PlanPath)
	if err != nil {
		return cfg, err
	}
	cfg.PlanPath = plan
	return cfg, nil
}
