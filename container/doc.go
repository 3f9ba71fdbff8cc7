// SPDX-License-Identifier: EPL-2.0

// Package container walks and writes the chunked outer structure shared by
// RIFF/WAVE and AIFF/AIFC files.
//
// Both containers are a 12-byte group header (ID, size, form type) followed
// by tagged, length-prefixed chunks. They differ in byte order and chunk
// names only, so a single Scanner and a single Writer are parameterized by a
// Dialect:
//
//	sc, err := container.NewScanner(r, container.RIFF)
//	for {
//	    c, err := sc.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if c.ID == container.RIFF.FormatID {
//	        payload, err := sc.Payload()
//	        ...
//	    }
//	}
//
// Chunks whose payload is not requested are skipped when Next is called
// again. A declared length larger than what is left in the stream fails with
// audio.ErrTruncated; payloads are never partially returned.
//
// # Padding
//
// Odd-length chunks are followed by one pad byte that is not counted in the
// declared length. The Scanner consumes it and tolerates its absence at the
// very end of the stream; the Writer always emits it.
package container
