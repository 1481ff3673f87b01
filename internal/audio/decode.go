package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/wav"
)

// ErrFormatMismatch is returned when a container does not match the
// expected fixture format.
var ErrFormatMismatch = errors.New("WAV format mismatch")

// Info describes the container-level format of a WAV fixture.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	// NumSamples is the sample-frame count derived from the data chunk.
	NumSamples int
}

// DurationSec returns the audio duration implied by the header fields.
func (i Info) DurationSec() float64 {
	if i.SampleRate < 1 {
		return 0
	}
	return float64(i.NumSamples) / float64(i.SampleRate)
}

// DecodeInfo parses WAV container headers and returns the declared
// format. Only headers and the data chunk length are inspected; the PCM
// payload is not decoded.
func DecodeInfo(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, errors.New("empty WAV input")
	}

	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return Info{}, errors.New("invalid WAV file")
	}

	info := Info{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}

	blockAlign := info.Channels * info.BitDepth / 8
	if blockAlign < 1 {
		return Info{}, fmt.Errorf("%w: zero block align", ErrFormatMismatch)
	}

	dataSize, err := findDataChunkSize(data)
	if err != nil {
		return Info{}, err
	}
	info.NumSamples = int(dataSize) / blockAlign

	return info, nil
}

// ReadInfo reads the file at path and returns its container format.
func ReadInfo(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("read %s: %w", path, err)
	}
	info, err := DecodeInfo(data)
	if err != nil {
		return Info{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return info, nil
}

// CheckFixtureFormat verifies that info matches the mono 16-bit PCM
// fixture format at the given sample rate with the given sample count.
func CheckFixtureFormat(info Info, sampleRate, numSamples int) error {
	if info.Channels != Channels {
		return fmt.Errorf("%w: channels %d, want %d", ErrFormatMismatch, info.Channels, Channels)
	}
	if info.BitDepth != BitDepth {
		return fmt.Errorf("%w: bit depth %d, want %d", ErrFormatMismatch, info.BitDepth, BitDepth)
	}
	if info.SampleRate != sampleRate {
		return fmt.Errorf("%w: sample rate %d, want %d", ErrFormatMismatch, info.SampleRate, sampleRate)
	}
	if info.NumSamples != numSamples {
		return fmt.Errorf("%w: %d samples, want %d", ErrFormatMismatch, info.NumSamples, numSamples)
	}
	return nil
}

// findDataChunkSize walks the WAV chunk list to locate the "data"
// sub-chunk and returns its size in bytes.
func findDataChunkSize(data []byte) (uint32, error) {
	// Start after the 12-byte RIFF/WAVE header.
	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])

		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		if id == "data" {
			return size, nil
		}

		offset += 8 + int(size)
		// Pad to even boundary.
		if size%2 != 0 {
			offset++
		}
	}

	return 0, errors.New("data chunk not found in WAV")
}
