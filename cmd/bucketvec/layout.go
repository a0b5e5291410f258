package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/bucketvec"
)

func newLayoutCmd() *cobra.Command {
	var pushes int
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "push values and print the resulting buckets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if pushes < 0 {
				return fmt.Errorf("--pushes must not be negative, got %d", pushes)
			}
			v := bucketvec.New[struct{}](cfg)
			for i := 0; i < pushes; i++ {
				v.Push(struct{}{})
			}
			m := v.Metrics()
			slog.Debug("layout built", "config", cfg, "len", m.Len, "buckets", m.NumBuckets)
			return printLayout(cmd, v.Layout(), m)
		},
	}
	cmd.Flags().IntVar(&pushes, "pushes", 100, "number of elements to push")
	return cmd
}

func printLayout(cmd *cobra.Command, layout []bucketvec.BucketStats, m bucketvec.VecMetrics) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "bucket\tstart\tlen\tcapacity\t")
	for i, b := range layout {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t\n", i, b.Start, b.Len, b.Capacity)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "len=%d capacity=%d buckets=%d utilization=%.1f%%\n",
		m.Len, m.Capacity, m.NumBuckets, m.Utilization*100)
	return err
}
