// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/ik5/audfile/audio"
)

var (
	// ErrNotAiffFile indicates the file is not a FORM/AIFF or FORM/AIFC file
	ErrNotAiffFile = fmt.Errorf("%w: not an AIFF file", audio.ErrBadSignature)

	// ErrUnsupportedAiffLayout indicates a COMM or SSND chunk too short to parse
	ErrUnsupportedAiffLayout = fmt.Errorf("%w: unsupported AIFF layout", audio.ErrMalformedChunk)

	// ErrUnsupportedCompressionType indicates an AIFC compression other than NONE or sowt
	ErrUnsupportedCompressionType = fmt.Errorf("%w: AIFC compression type", audio.ErrUnsupportedCompression)

	// ErrFloatNotSupported indicates floating point samples, which AIFF cannot store
	ErrFloatNotSupported = fmt.Errorf("%w: AIFF stores integer samples only", audio.ErrUnsupportedFormat)

	ErrMissingCommChunk  = fmt.Errorf("%w: COMM", audio.ErrMissingChunk)
	ErrMissingSoundChunk = fmt.Errorf("%w: SSND", audio.ErrMissingChunk)
)
