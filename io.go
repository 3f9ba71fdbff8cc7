// SPDX-License-Identifier: EPL-2.0

package audfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audfile/audio"
	"github.com/ik5/audfile/codec"
	"github.com/ik5/audfile/container"
)

// Open loads the file at path into a new AudioFile.
func Open[S codec.Sample](path string) (*AudioFile[S], error) {
	a := New[S]()
	if err := a.Load(path); err != nil {
		return nil, err
	}
	return a, nil
}

// Load replaces the contents of a with the file at path. On failure a is
// left unchanged.
func (a *AudioFile[S]) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	defer f.Close()

	return a.Decode(f)
}

// LoadFromMemory is Load for an in-memory file.
func (a *AudioFile[S]) LoadFromMemory(data []byte) error {
	return a.Decode(bytes.NewReader(data))
}

// Decode replaces the contents of a with the WAV, AIFF or AIFC stream read
// from r. The container is detected from its header. On failure a is left
// unchanged.
func (a *AudioFile[S]) Decode(r io.Reader) error {
	br := bufio.NewReader(r)

	header, err := br.Peek(container.HeaderSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	d, err := container.Detect(header)
	if err != nil {
		return err
	}

	ff := WAV
	if d == container.AIFF {
		ff = AIFF
		if bytes.Equal(header[8:12], container.FormAIFC[:]) {
			ff = AIFC
		}
	}

	c, err := ff.codec()
	if err != nil {
		return err
	}

	raw, err := c.Decode(br, audio.DecodeOptions{KeepChunks: a.KeepChunks})
	if err != nil {
		return err
	}

	samples, err := codec.Decode[S](raw.Data, raw.Layout(), raw.Format.NumChannels, raw.Frames)
	if err != nil {
		return err
	}

	if ff == AIFC && !raw.BigEndian {
		ff = AIFCSowt
	}

	a.Samples = samples
	a.Chunks = raw.Chunks
	a.sampleRate = raw.Format.SampleRate
	a.bitDepth = raw.Format.BitDepth
	a.domain = raw.Format.Domain
	a.fileFormat = ff

	return nil
}

// Save writes a to path as ff. The file is encoded in memory first, so a
// validation failure neither creates nor truncates path.
func (a *AudioFile[S]) Save(path string, ff FileFormat) error {
	data, err := a.SaveToMemory(ff)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	return nil
}

// SaveToMemory returns a encoded as ff.
func (a *AudioFile[S]) SaveToMemory(ff FileFormat) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := a.Encode(buf, ff); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes a to w as ff. 8-bit integer samples are stored as unsigned
// offset-binary bytes and wider integers as two's complement, whatever the
// domain of a.
// Validation happens before the first byte is written.
func (a *AudioFile[S]) Encode(w io.Writer, ff FileFormat) error {
	raw, c, err := a.rawAudio(ff)
	if err != nil {
		return err
	}
	return c.Encode(w, raw)
}

func (a *AudioFile[S]) rawAudio(ff FileFormat) (*audio.RawAudio, audio.Codec, error) {
	c, err := ff.codec()
	if err != nil {
		return nil, nil, err
	}

	f := a.Format()
	switch {
	case f.SampleRate <= 0:
		return nil, nil, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, f.SampleRate)
	case f.NumChannels < 1:
		return nil, nil, fmt.Errorf("%w: %d", audio.ErrInvalidNumChannels, f.NumChannels)
	}

	// an unsupported depth is both a format and a validation error here
	l, err := c.Layout(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", audio.ErrValidation, ff, err)
	}

	data, err := codec.Encode(a.Samples, l)
	if err != nil {
		return nil, nil, err
	}

	f.Domain = l.Domain

	return &audio.RawAudio{
		Format:    f,
		BigEndian: l.BigEndian,
		Frames:    a.NumSamplesPerChannel(),
		Data:      data,
		Chunks:    a.Chunks,
	}, c, nil
}
