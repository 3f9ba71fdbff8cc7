// SPDX-License-Identifier: EPL-2.0

// Package cli implements the audfile command line tool.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the audfile command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "audfile",
		Short: "Inspect and convert WAV and AIFF files",
		Long: `audfile - read, inspect and convert uncompressed audio files.

Supported containers:
  - WAV (RIFF/WAVE): 8-bit unsigned, 16/24/32-bit PCM, 32/64-bit float
  - AIFF: 8-bit unsigned, 16/24/32-bit PCM
  - AIFC: uncompressed ("NONE") and little-endian ("sowt") PCM

Commands:
  - info: Print the format of one or more files
  - convert: Rewrite a file with another container, bit depth or domain`,
		SilenceUsage: true,
	}

	root.AddCommand(newInfoCmd(), newConvertCmd())

	return root
}
