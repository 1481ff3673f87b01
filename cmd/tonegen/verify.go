package main

import (
	"fmt"
	"io"
	"os"

	"github.com/example/go-tonegen/internal/audio"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that a fixture file is a well-formed PCM WAV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := audio.ReadInfo(args[0])
			if err != nil {
				return err
			}
			printVerifyReport(os.Stdout, args[0], info)
			return nil
		},
	}

	return cmd
}

func printVerifyReport(w io.Writer, path string, info audio.Info) {
	_, _ = fmt.Fprintf(w, "File: %s\n", path)
	_, _ = fmt.Fprintf(w, "Channels: %d\n", info.Channels)
	_, _ = fmt.Fprintf(w, "Bit depth: %d\n", info.BitDepth)
	_, _ = fmt.Fprintf(w, "Sample rate: %d Hz\n", info.SampleRate)
	_, _ = fmt.Fprintf(w, "Samples: %d (%.3f seconds)\n", info.NumSamples, info.DurationSec())
}
