package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/example/go-tonegen/internal/audio"
	"github.com/example/go-tonegen/internal/config"
	"github.com/example/go-tonegen/internal/signal"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var out string
	var verify bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize the alternating two-tone fixture and write it as WAV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			outPath := cfg.Output
			if out != "" {
				outPath = out
			}

			params := toneParams(cfg.Tone)
			samples, err := signal.Generate(params)
			if err != nil {
				return err
			}

			wavData, err := audio.EncodePCM16(samples, params.SampleRateHz)
			if err != nil {
				return fmt.Errorf("encode fixture: %w", err)
			}

			if err := audio.WriteFile(outPath, wavData); err != nil {
				return err
			}

			slog.Info("fixture written",
				"path", outPath,
				"duration_sec", params.DurationSec,
				"sample_rate_hz", params.SampleRateHz,
				"samples", len(samples),
			)
			printGenerateReport(os.Stdout, outPath, params, len(samples)*audio.BytesPerSample)

			if verify {
				info, err := audio.ReadInfo(outPath)
				if err != nil {
					return fmt.Errorf("verify: %w", err)
				}
				if err := audio.CheckFixtureFormat(info, params.SampleRateHz, len(samples)); err != nil {
					return fmt.Errorf("verify %s: %w", outPath, err)
				}
				_, _ = fmt.Fprintln(os.Stdout, "Verified: file decodes with the expected format")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (overrides config)")
	cmd.Flags().BoolVar(&verify, "verify", false, "Re-read the written file and check its format")

	return cmd
}

// toneParams maps the tone configuration onto generator parameters.
func toneParams(tc config.ToneConfig) signal.Params {
	return signal.Params{
		DurationSec:  tc.DurationSec,
		BaseFreqHz:   tc.BaseFreqHz,
		AltFreqHz:    tc.AltFreqHz,
		SampleRateHz: tc.SampleRateHz,
		Amplitude:    tc.Amplitude,
	}
}

// printGenerateReport writes the human-readable summary lines. The byte
// count is the PCM payload length, not the container size.
func printGenerateReport(w io.Writer, path string, p signal.Params, payloadBytes int) {
	_, _ = fmt.Fprintf(w, "Created test audio file: %s\n", path)
	_, _ = fmt.Fprintf(w, "Duration: %g seconds\n", p.DurationSec)
	_, _ = fmt.Fprintf(w, "Sample rate: %d Hz\n", p.SampleRateHz)
	_, _ = fmt.Fprintf(w, "File size: %d bytes\n", payloadBytes)
}
