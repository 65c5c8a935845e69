package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kilianp07/zoa/app"
	"github.com/kilianp07/zoa/config"
	"github.com/kilianp07/zoa/core/factory"
)

var verifyQuiet bool

var verifyCmd = &cobra.Command{
	Use:   "verify [scenario...]",
	Short: "Run scenarios without pacing and check every phase lights its expected indicator",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		cfg.Log = config.LogConfig{Level: "warn"}
		cfg.Pacing.Scale = 0
		cfg.Indicator.Panels = []factory.ModuleConfig{{Type: "gpio"}}

		var out io.Writer = cmd.OutOrStdout()
		if verifyQuiet {
			out = io.Discard
		}
		svc, err := app.New(&cfg, out)
		if err != nil {
			return err
		}
		defer func() { _ = svc.Close() }()

		sum, err := svc.Run(cmd.Context(), args...)
		if err != nil {
			return err
		}
		for _, r := range sum.Results {
			status := "ok"
			if !r.Match() {
				status = "MISMATCH"
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-18s phase %d  expected %-8s got %-8s %s\n",
				r.Scenario, r.Phase, r.Expected, r.Observed, status); err != nil {
				return err
			}
		}
		if !sum.OK() {
			return fmt.Errorf("%d phase(s) lit an unexpected indicator", sum.Mismatches)
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().BoolVarP(&verifyQuiet, "quiet", "q", false, "suppress the status report")
	rootCmd.AddCommand(verifyCmd)
}
