// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audfile"
	"github.com/ik5/audfile/audio"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input_file>",
		Short: "Convert an audio file to another container or bit depth",
		Long: `Convert WAV, AIFF and AIFC files between containers, bit depths and
numeric domains. The sample rate and samples are kept; narrowing the bit
depth drops the low bits.

Examples:
  # WAV to 24-bit AIFF
  audfile convert input.wav --out output.aiff --bit-depth 24

  # AIFF to 32-bit float WAV
  audfile convert input.aiff --out output.wav --float

  # Explicit little-endian AIFC
  audfile convert input.wav --out output.aifc --format aifc-sowt

Output formats:
  wav, aiff, aifc, aifc-sowt (default: from the --out extension)`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}

	cmd.Flags().String("out", "", "Output file path")
	cmd.Flags().String("format", "", "Output format: wav, aiff, aifc or aifc-sowt")
	cmd.Flags().Int("bit-depth", 0, "Output bit depth (default: keep)")
	cmd.Flags().Bool("float", false, "Store floating point samples (WAV only)")
	cmd.Flags().Bool("keep-chunks", true, "Copy metadata chunks to the output")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// formatFor picks the output format from the --format flag or the file
// extension of path.
func formatFor(name, path string) (audfile.FileFormat, error) {
	if name != "" {
		return audfile.ParseFileFormat(strings.ToLower(name))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return audfile.WAV, nil
	case ".aif", ".aiff":
		return audfile.AIFF, nil
	case ".aifc":
		return audfile.AIFC, nil
	}

	return "", fmt.Errorf("%w: cannot infer format of %q, use --format", audfile.ErrUnknownFileFormat, path)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inFileName := args[0]

	outFileName, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	bitDepth, err := cmd.Flags().GetInt("bit-depth")
	if err != nil {
		return err
	}
	toFloat, err := cmd.Flags().GetBool("float")
	if err != nil {
		return err
	}
	keepChunks, err := cmd.Flags().GetBool("keep-chunks")
	if err != nil {
		return err
	}

	ff, err := formatFor(formatName, outFileName)
	if err != nil {
		slog.Error("Invalid output format", "format", formatName, "out", outFileName, "error", err)
		return err
	}

	a := audfile.New[float64]()
	a.KeepChunks = keepChunks
	if err := a.Load(inFileName); err != nil {
		slog.Error("Failed to load input", "path", inFileName, "error", err)
		return err
	}

	slog.Info("Loaded input",
		"path", inFileName,
		"format", a.FileFormat(),
		"channels", a.NumChannels(),
		"sample_rate", a.SampleRate(),
		"bit_depth", a.BitDepth(),
		"domain", a.Domain())

	switch {
	case toFloat:
		if bitDepth == 0 && a.Domain() != audio.Float {
			bitDepth = 32
		}
		a.SetDomain(audio.Float)
	case a.Domain() == audio.Float && ff != audfile.WAV:
		// AIFF has no float encoding
		a.SetDomain(audio.SignedInt)
		if bitDepth == 0 || bitDepth == 64 {
			bitDepth = 32
		}
	}

	if bitDepth != 0 {
		if err := a.SetBitDepth(bitDepth); err != nil {
			slog.Error("Invalid bit depth", "bit_depth", bitDepth, "error", err)
			return err
		}
	}

	if err := a.Save(outFileName, ff); err != nil {
		slog.Error("Failed to save output", "path", outFileName, "format", ff, "error", err)
		return err
	}

	slog.Info("Conversion complete",
		"out", outFileName,
		"format", ff,
		"bit_depth", a.BitDepth(),
		"domain", a.Domain(),
		"duration", a.Duration())

	return nil
}
