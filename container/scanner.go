// SPDX-License-Identifier: EPL-2.0

package container

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audfile/audio"
)

var errNoChunk = errors.New("container: no current chunk")

// Scanner yields the chunks of a container one at a time.
type Scanner struct {
	r        io.Reader
	d        *Dialect
	formType [4]byte
	size     uint32

	// offset counts bytes consumed from the start of the container.
	offset int64
	cur    *audio.Chunk
	unread int64
	err    error
}

// NewScanner reads and validates the outer header of a d container.
func NewScanner(r io.Reader, d *Dialect) (*Scanner, error) {
	var hdr [HeaderSize]byte

	n, err := io.ReadFull(r, hdr[:])
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
		}
		if n < 4 || !bytes.Equal(hdr[:4], d.ID[:]) {
			return nil, fmt.Errorf("%w: not a %s container", audio.ErrBadSignature, d)
		}
		return nil, fmt.Errorf("%w: %d of %d header bytes", audio.ErrTruncated, n, HeaderSize)
	}

	s := &Scanner{r: r, d: d, offset: HeaderSize}
	copy(s.formType[:], hdr[8:12])
	s.size = d.Order.Uint32(hdr[4:8])

	if !bytes.Equal(hdr[:4], d.ID[:]) || !d.Accepts(s.formType) {
		return nil, fmt.Errorf("%w: %q/%q is not a %s container", audio.ErrBadSignature, hdr[:4], hdr[8:12], d)
	}

	return s, nil
}

// Dialect returns the scanned dialect.
func (s *Scanner) Dialect() *Dialect { return s.d }

// FormType returns the form type from the outer header (WAVE, AIFF, AIFC).
func (s *Scanner) FormType() [4]byte { return s.formType }

// Size returns the declared outer container size.
func (s *Scanner) Size() uint32 { return s.size }

// Next advances to the next chunk and returns its header. The payload of the
// previous chunk, if not read, is discarded. Next returns io.EOF when the
// stream is exhausted.
func (s *Scanner) Next() (*audio.Chunk, error) {
	if s.err != nil {
		return nil, s.err
	}

	if err := s.skip(); err != nil {
		s.err = err
		return nil, err
	}

	// bytes past the declared form belong to someone else; a size too
	// small to hold the form type is not trusted
	if s.size >= 4 && s.offset >= 8+int64(s.size) {
		s.err = io.EOF
		return nil, io.EOF
	}

	var hdr [8]byte
	n, err := io.ReadFull(s.r, hdr[:])
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// trailing bytes shorter than a chunk header end the container
		s.offset += int64(n)
		s.err = io.EOF
		return nil, io.EOF
	case err != nil:
		s.err = fmt.Errorf("%w: %w", audio.ErrIO, err)
		return nil, s.err
	}

	c := &audio.Chunk{
		Offset: s.offset,
		Size:   s.d.Order.Uint32(hdr[4:8]),
	}
	copy(c.ID[:], hdr[:4])

	s.offset += 8
	s.cur = c
	s.unread = int64(c.Size)

	return c, nil
}

// Payload reads the whole payload of the current chunk.
func (s *Scanner) Payload() ([]byte, error) {
	if s.cur == nil {
		return nil, errNoChunk
	}
	if s.cur.Data != nil || s.cur.Size == 0 {
		if s.cur.Data == nil {
			s.cur.Data = []byte{}
		}
		return s.cur.Data, nil
	}

	// LimitReader keeps an untrusted length from sizing the allocation.
	data, err := io.ReadAll(io.LimitReader(s.r, s.unread))
	s.offset += int64(len(data))
	s.unread -= int64(len(data))
	if err != nil {
		s.err = fmt.Errorf("%w: %w", audio.ErrIO, err)
		return nil, s.err
	}
	if s.unread > 0 {
		s.err = s.truncated()
		return nil, s.err
	}

	s.cur.Data = data

	return data, nil
}

// skip discards what is left of the current chunk, including its pad byte.
func (s *Scanner) skip() error {
	if s.cur == nil {
		return nil
	}

	if s.unread > 0 {
		n, err := io.CopyN(io.Discard, s.r, s.unread)
		s.offset += n
		s.unread -= n
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %w", audio.ErrIO, err)
		}
		if s.unread > 0 {
			return s.truncated()
		}
	}

	if s.d.PadOdd && s.cur.Size%2 == 1 {
		var pad [1]byte
		n, err := io.ReadFull(s.r, pad[:])
		s.offset += int64(n)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %w", audio.ErrIO, err)
		}
	}

	s.cur = nil

	return nil
}

func (s *Scanner) truncated() error {
	return &audio.ChunkError{
		ID:     s.cur.ID,
		Offset: s.cur.Offset,
		Err: fmt.Errorf("%w: declared %d bytes, %d missing",
			audio.ErrTruncated, s.cur.Size, s.unread),
	}
}

// ScanAll reads every chunk of a d container, payloads included.
func ScanAll(r io.Reader, d *Dialect) (formType [4]byte, chunks []audio.Chunk, err error) {
	s, err := NewScanner(r, d)
	if err != nil {
		return formType, nil, err
	}

	for {
		c, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return s.FormType(), nil, err
		}
		if _, err := s.Payload(); err != nil {
			return s.FormType(), nil, err
		}
		chunks = append(chunks, *c)
	}

	return s.FormType(), chunks, nil
}
