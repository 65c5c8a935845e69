package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/zoa/app"
	"github.com/kilianp07/zoa/config"
	"github.com/kilianp07/zoa/infra/logger"
)

var (
	cfgPath string
	only    []string
	pace    float64
)

var rootCmd = &cobra.Command{
	Use:          "zoa",
	Short:        "ZOA energy balancing demo",
	Long:         "Plays the built-in balancing scenarios across the four site units, printing supply, demand and net figures and driving the status indicators.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.Flags().StringSliceVar(&only, "only", nil, "run only the named scenarios, in the given order")
	rootCmd.Flags().Float64Var(&pace, "pace", 1, "multiply every hold by this factor (0 disables waiting)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.LoadOptional(cfgPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("pace") {
		cfg.Pacing.Scale = pace
		if err := cfg.Pacing.Validate(); err != nil {
			return err
		}
	}
	return runService(ctx, cmd, cfg, only)
}

func runService(ctx context.Context, cmd *cobra.Command, cfg *config.Config, names []string) error {
	svc, err := app.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	sum, err := svc.Run(ctx, names...)
	if err != nil {
		return err
	}
	if !sum.OK() {
		logger.New("main").Warnf("run %s: %d phase(s) lit an unexpected indicator", sum.RunID, sum.Mismatches)
	}
	return nil
}
