package main

import (
	"fmt"
	"os"

	"github.com/example/go-tonegen/internal/doctor"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment before generating fixtures",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			dcfg := doctor.Config{
				OutputPath:  cfg.Output,
				CheckParams: cfg.Validate,
			}

			result := doctor.Run(dcfg, os.Stdout)
			if result.Failed() {
				return fmt.Errorf("doctor found %d problem(s)", len(result.Failures()))
			}

			_, _ = fmt.Fprintln(os.Stdout, "All checks passed")
			return nil
		},
	}

	return cmd
}
