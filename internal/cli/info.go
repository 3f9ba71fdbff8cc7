// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/audfile"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>...",
		Short: "Print the format of audio files",
		Long: `Print channel count, length, sample rate, bit depth and numeric domain
of WAV, AIFF and AIFC files. The container is detected from the file header.

Examples:
  audfile info input.wav
  audfile info --chunks take1.aiff take2.aiff`,
		Args: cobra.MinimumNArgs(1),
		RunE: runInfo,
	}

	cmd.Flags().Bool("chunks", false, "List chunks other than the format and sample chunks")

	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	listChunks, err := cmd.Flags().GetBool("chunks")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, path := range args {
		a := audfile.New[float64]()
		a.KeepChunks = listChunks

		if err := a.Load(path); err != nil {
			slog.Error("Failed to load file", "path", path, "error", err)
			return err
		}
		slog.Debug("Loaded file", "path", path, "format", a.FileFormat())

		fmt.Fprintf(out, "%s (%s)\n", path, a.FileFormat())
		fmt.Fprint(out, a.Summary())
		for _, c := range a.Chunks {
			fmt.Fprintf(out, "Chunk %q: %d bytes at offset %d\n", c.ID[:], c.Size, c.Offset)
		}
	}

	return nil
}
