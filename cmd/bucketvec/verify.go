package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	var buckets, maxElements int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "check the capacity math against a brute-force simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if buckets < 0 {
				return fmt.Errorf("--buckets must not be negative, got %d", buckets)
			}
			elements := cfg.TotalCapacity(buckets)
			if elements > maxElements {
				return fmt.Errorf("%d buckets of %s hold %d elements, more than --max-elements %d",
					buckets, cfg, elements, maxElements)
			}
			slog.Info("verifying", "config", cfg, "buckets", buckets, "elements", elements)
			if err := cfg.Verify(buckets); err != nil {
				return fmt.Errorf("capacity math for %s: %w", cfg, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d buckets, %d elements\n", buckets, elements)
			return nil
		},
	}
	cmd.Flags().IntVar(&buckets, "buckets", 16, "number of buckets to simulate")
	cmd.Flags().IntVar(&maxElements, "max-elements", 1<<24, "refuse to simulate more elements than this")
	return cmd
}
