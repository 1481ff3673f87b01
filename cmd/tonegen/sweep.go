package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-dsp/measure/sweep"
	"github.com/example/go-tonegen/internal/audio"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	var out string
	var startHz float64
	var endHz float64
	var durationSec float64

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Generate a logarithmic frequency sweep fixture",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			outPath := cfg.Output
			if out != "" {
				outPath = out
			}
			if durationSec <= 0 {
				return fmt.Errorf("invalid duration: %g seconds", durationSec)
			}
			if startHz <= 0 || endHz <= startHz {
				return fmt.Errorf("invalid sweep range %g..%g Hz", startHz, endHz)
			}

			s := &sweep.LogSweep{
				StartFreq:  startHz,
				EndFreq:    endHz,
				Duration:   durationSec,
				SampleRate: float64(cfg.Tone.SampleRateHz),
			}
			excitation, err := s.Generate()
			if err != nil {
				return fmt.Errorf("generate sweep: %w", err)
			}

			samples := make([]float32, len(excitation))
			for i, v := range excitation {
				samples[i] = float32(v * cfg.Tone.Amplitude)
			}

			wavData, err := audio.EncodeFloat(samples, cfg.Tone.SampleRateHz)
			if err != nil {
				return fmt.Errorf("encode sweep: %w", err)
			}
			if err := audio.WriteFile(outPath, wavData); err != nil {
				return err
			}

			slog.Info("sweep fixture written",
				"path", outPath,
				"start_hz", startHz,
				"end_hz", endHz,
				"duration_sec", durationSec,
			)
			_, _ = fmt.Fprintf(os.Stdout, "Created sweep fixture: %s\n", outPath)
			_, _ = fmt.Fprintf(os.Stdout, "Range: %g Hz to %g Hz over %g seconds\n", startHz, endHz, durationSec)
			_, _ = fmt.Fprintf(os.Stdout, "Sample rate: %d Hz\n", cfg.Tone.SampleRateHz)

			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (overrides config)")
	cmd.Flags().Float64Var(&startHz, "start-hz", 20, "Sweep start frequency in Hz")
	cmd.Flags().Float64Var(&endHz, "end-hz", 20000, "Sweep end frequency in Hz")
	cmd.Flags().Float64Var(&durationSec, "duration-sec", 5, "Sweep duration in seconds")

	return cmd
}
