// SPDX-License-Identifier: EPL-2.0

package audfile

import (
	"fmt"

	"github.com/ik5/audfile/audio"
)

var (
	// ErrUnknownFileFormat indicates a FileFormat with no registered codec.
	ErrUnknownFileFormat = fmt.Errorf("%w: unknown file format", audio.ErrValidation)

	// ErrNilBuffer indicates a nil go-audio buffer or a buffer without a format.
	ErrNilBuffer = fmt.Errorf("%w: nil buffer or format", audio.ErrValidation)
)
