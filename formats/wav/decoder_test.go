// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/audfile/audio"
	"github.com/ik5/audfile/internal/audiotest"
)

// extensibleFmt builds a 40-byte WAVE_FORMAT_EXTENSIBLE fmt payload.
func extensibleFmt(subFormat uint16, channels, sampleRate, bitsPerSample int) []byte {
	buf := bytes.NewBuffer(audiotest.WAVFmt(FormatExtensible, channels, sampleRate, bitsPerSample))
	binary.Write(buf, binary.LittleEndian, uint16(22))            // cbSize
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample)) // valid bits
	binary.Write(buf, binary.LittleEndian, uint32(0x3))           // FL|FR
	binary.Write(buf, binary.LittleEndian, subFormat)
	buf.Write(subFormatTail)
	return buf.Bytes()
}

func decode(t *testing.T, data []byte, opts audio.DecodeOptions) *audio.RawAudio {
	t.Helper()

	raw, err := Codec{}.Decode(bytes.NewReader(data), opts)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	return raw
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	channels := [][]int16{{0, 100, 200}, {-100, -200, 0}}
	raw := decode(t, audiotest.WAV16(8000, channels), audio.DecodeOptions{})

	want := audio.Format{SampleRate: 8000, BitDepth: 16, NumChannels: 2, Domain: audio.SignedInt}
	if raw.Format != want {
		t.Errorf("Format = %v, want %v", raw.Format, want)
	}
	if raw.BigEndian {
		t.Error("BigEndian = true, want false")
	}
	if raw.Frames != 3 {
		t.Errorf("Frames = %d, want 3", raw.Frames)
	}
	if !bytes.Equal(raw.Data, audiotest.Interleave16(binary.LittleEndian, channels)) {
		t.Error("Data does not match the interleaved input")
	}
	if raw.Chunks != nil {
		t.Errorf("Chunks = %v, want nil without KeepChunks", raw.Chunks)
	}
}

func TestDecoder_Domains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		fmtPayload []byte
		want       audio.Format
	}{
		{
			name:       "8-bit is unsigned",
			fmtPayload: audiotest.WAVFmt(FormatPCM, 1, 11025, 8),
			want:       audio.Format{SampleRate: 11025, BitDepth: 8, NumChannels: 1, Domain: audio.UnsignedInt},
		},
		{
			name:       "24-bit",
			fmtPayload: audiotest.WAVFmt(FormatPCM, 2, 96000, 24),
			want:       audio.Format{SampleRate: 96000, BitDepth: 24, NumChannels: 2, Domain: audio.SignedInt},
		},
		{
			name:       "float32",
			fmtPayload: audiotest.WAVFmt(FormatIEEEFloat, 1, 48000, 32),
			want:       audio.Format{SampleRate: 48000, BitDepth: 32, NumChannels: 1, Domain: audio.Float},
		},
		{
			name:       "float64",
			fmtPayload: audiotest.WAVFmt(FormatIEEEFloat, 2, 48000, 64),
			want:       audio.Format{SampleRate: 48000, BitDepth: 64, NumChannels: 2, Domain: audio.Float},
		},
		{
			name:       "extensible pcm",
			fmtPayload: extensibleFmt(FormatPCM, 2, 44100, 24),
			want:       audio.Format{SampleRate: 44100, BitDepth: 24, NumChannels: 2, Domain: audio.SignedInt},
		},
		{
			name:       "extensible float",
			fmtPayload: extensibleFmt(FormatIEEEFloat, 2, 44100, 32),
			want:       audio.Format{SampleRate: 44100, BitDepth: 32, NumChannels: 2, Domain: audio.Float},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := make([]byte, tt.want.BlockAlign()*4)
			file := audiotest.RIFF(
				audiotest.Chunk{ID: "fmt ", Data: tt.fmtPayload},
				audiotest.Chunk{ID: "data", Data: data},
			)

			raw := decode(t, file, audio.DecodeOptions{})
			if raw.Format != tt.want {
				t.Errorf("Format = %v, want %v", raw.Format, tt.want)
			}
			if raw.Frames != 4 {
				t.Errorf("Frames = %d, want 4", raw.Frames)
			}
		})
	}
}

func TestDecoder_ChunkOrderAndPadding(t *testing.T) {
	t.Parallel()

	samples := []byte{1, 0, 2, 0}
	file := audiotest.RIFF(
		audiotest.Chunk{ID: "LIST", Data: []byte("odd")},
		audiotest.Chunk{ID: "data", Data: samples},
		audiotest.Chunk{ID: "junk", Data: []byte{9}},
		audiotest.Chunk{ID: "fmt ", Data: audiotest.WAVFmt(FormatPCM, 1, 8000, 16)},
	)

	raw := decode(t, file, audio.DecodeOptions{KeepChunks: true})
	if !bytes.Equal(raw.Data, samples) {
		t.Errorf("Data = %v, want %v", raw.Data, samples)
	}

	if len(raw.Chunks) != 2 {
		t.Fatalf("kept %d chunks, want 2", len(raw.Chunks))
	}
	if raw.Chunks[0].ID != audio.ID("LIST") || string(raw.Chunks[0].Data) != "odd" {
		t.Errorf("Chunks[0] = %q %q, want LIST odd", raw.Chunks[0].ID[:], raw.Chunks[0].Data)
	}
	if raw.Chunks[1].ID != audio.ID("junk") || raw.Chunks[1].Size != 1 {
		t.Errorf("Chunks[1] = %q size %d, want junk size 1", raw.Chunks[1].ID[:], raw.Chunks[1].Size)
	}
	// RIFF(12) + LIST(8+3+1) + data(8+4)
	if raw.Chunks[1].Offset != 36 {
		t.Errorf("Chunks[1].Offset = %d, want 36", raw.Chunks[1].Offset)
	}
}

func TestDecoder_MissingFinalPad(t *testing.T) {
	t.Parallel()

	file := audiotest.RIFF(
		audiotest.Chunk{ID: "fmt ", Data: audiotest.WAVFmt(FormatPCM, 1, 8000, 8)},
		audiotest.Chunk{ID: "data", Data: []byte{128, 129, 127}, NoPad: true},
	)

	raw := decode(t, file, audio.DecodeOptions{})
	if raw.Frames != 3 {
		t.Errorf("Frames = %d, want 3", raw.Frames)
	}
}

func TestDecoder_PartialFrameDropped(t *testing.T) {
	t.Parallel()

	file := audiotest.RIFF(
		audiotest.Chunk{ID: "fmt ", Data: audiotest.WAVFmt(FormatPCM, 2, 8000, 16)},
		audiotest.Chunk{ID: "data", Data: make([]byte, 10)},
	)

	raw := decode(t, file, audio.DecodeOptions{})
	if raw.Frames != 2 || len(raw.Data) != 8 {
		t.Errorf("Frames = %d, len(Data) = %d, want 2 and 8", raw.Frames, len(raw.Data))
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	pcm16 := audiotest.Chunk{ID: "fmt ", Data: audiotest.WAVFmt(FormatPCM, 1, 8000, 16)}
	data := audiotest.Chunk{ID: "data", Data: []byte{0, 0}}

	badAlign := audiotest.WAVFmt(FormatPCM, 2, 8000, 16)
	binary.LittleEndian.PutUint16(badAlign[12:14], 3)

	badGUID := extensibleFmt(FormatPCM, 2, 8000, 16)
	badGUID[39] = 0

	tests := []struct {
		name     string
		data     []byte
		wantErrs []error
	}{
		{"empty input", nil, []error{ErrNotWavFile, audio.ErrFormat}},
		{"not a WAV", []byte("This is not a WAV file"), []error{ErrNotWavFile, audio.ErrBadSignature}},
		{"AIFF file", audiotest.AIFF16(8000, [][]int16{{1}}), []error{ErrNotWavFile}},
		{"short header", []byte("RIFF\x10\x00"), []error{audio.ErrTruncated}},
		{"missing fmt", audiotest.RIFF(data), []error{ErrMissingFmtChunk, audio.ErrMissingChunk}},
		{"missing data", audiotest.RIFF(pcm16), []error{ErrMissingDataChunk, audio.ErrFormat}},
		{
			"adpcm",
			audiotest.RIFF(audiotest.Chunk{ID: "fmt ", Data: audiotest.WAVFmt(2, 1, 8000, 4)}, data),
			[]error{ErrUnsupportedFormatTag, audio.ErrUnsupportedCompression},
		},
		{
			"bad extensible guid",
			audiotest.RIFF(audiotest.Chunk{ID: "fmt ", Data: badGUID}, data),
			[]error{audio.ErrUnsupportedCompression},
		},
		{
			"short fmt",
			audiotest.RIFF(audiotest.Chunk{ID: "fmt ", Data: make([]byte, 14)}, data),
			[]error{ErrUnsupportedWavLayout, audio.ErrMalformedChunk},
		},
		{
			"block align mismatch",
			audiotest.RIFF(audiotest.Chunk{ID: "fmt ", Data: badAlign}, data),
			[]error{ErrUnsupportedWavLayout},
		},
		{
			"12-bit pcm",
			audiotest.RIFF(audiotest.Chunk{ID: "fmt ", Data: audiotest.WAVFmt(FormatPCM, 1, 8000, 12)}, data),
			[]error{audio.ErrUnsupportedFormat},
		},
		{
			"16-bit float",
			audiotest.RIFF(audiotest.Chunk{ID: "fmt ", Data: audiotest.WAVFmt(FormatIEEEFloat, 1, 8000, 16)}, data),
			[]error{audio.ErrUnsupportedFormat},
		},
		{
			"zero channels",
			audiotest.RIFF(audiotest.Chunk{ID: "fmt ", Data: audiotest.WAVFmt(FormatPCM, 0, 8000, 16)}, data),
			[]error{audio.ErrInvalidNumChannels, audio.ErrValidation},
		},
		{
			"zero sample rate",
			audiotest.RIFF(audiotest.Chunk{ID: "fmt ", Data: audiotest.WAVFmt(FormatPCM, 1, 0, 16)}, data),
			[]error{audio.ErrInvalidSampleRate},
		},
		{
			"truncated data",
			audiotest.RIFF(pcm16, audiotest.Chunk{ID: "data", Data: make([]byte, 4), Declared: 100}),
			[]error{audio.ErrTruncated},
		},
		{
			"truncated fmt",
			audiotest.RIFF(audiotest.Chunk{ID: "fmt ", Data: audiotest.WAVFmt(FormatPCM, 1, 8000, 16)[:8], Declared: 16}),
			[]error{audio.ErrTruncated},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw, err := Codec{}.Decode(bytes.NewReader(tt.data), audio.DecodeOptions{})
			if err == nil {
				t.Fatal("Decode() error = nil, want error")
			}
			if raw != nil {
				t.Error("Decode() returned audio alongside an error")
			}
			for _, want := range tt.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("Decode() error = %v, want errors.Is(%v)", err, want)
				}
			}
		})
	}
}

func TestDecoder_TruncatedChunkError(t *testing.T) {
	t.Parallel()

	file := audiotest.RIFF(
		audiotest.Chunk{ID: "fmt ", Data: audiotest.WAVFmt(FormatPCM, 1, 8000, 16)},
		audiotest.Chunk{ID: "data", Data: make([]byte, 6), Declared: 1 << 30},
	)

	_, err := Codec{}.Decode(bytes.NewReader(file), audio.DecodeOptions{})

	var ce *audio.ChunkError
	if !errors.As(err, &ce) {
		t.Fatalf("Decode() error = %v, want *audio.ChunkError", err)
	}
	if ce.ID != audio.ID("data") || ce.Offset != 36 {
		t.Errorf("ChunkError = %q at %d, want data at 36", ce.ID[:], ce.Offset)
	}
}

func BenchmarkDecoder(b *testing.B) {
	file := audiotest.WAV16(44100, audiotest.Int16Pattern(2, 44100))

	b.ReportAllocs()

	for b.Loop() {
		if _, err := (Codec{}).Decode(bytes.NewReader(file), audio.DecodeOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}
