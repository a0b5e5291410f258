package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate INDEX...",
		Short: "print the bucket and offset of global indices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			for _, arg := range args {
				j, err := strconv.Atoi(arg)
				if err != nil || j < 0 {
					return fmt.Errorf("invalid index %q", arg)
				}
				b, off := cfg.Locate(j)
				fmt.Fprintf(cmd.OutOrStdout(), "%d: bucket %d offset %d (capacity %d)\n",
					j, b, off, cfg.BucketCapacity(b))
			}
			return nil
		},
	}
}
