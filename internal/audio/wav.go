package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Fixture WAV format: mono, 16-bit signed PCM.
const (
	Channels       = 1
	BitDepth       = 16
	BytesPerSample = BitDepth / 8
)

// ErrSampleRange is returned when a sample does not fit in 16-bit signed
// PCM. Out-of-range samples indicate a generation defect and are rejected,
// never clamped or wrapped.
var ErrSampleRange = errors.New("sample out of 16-bit signed range")

// EncodePCM16 serializes samples as a canonical RIFF/WAVE byte stream:
// mono, 16-bit little-endian PCM at the given sample rate, with a 16-byte
// fmt chunk followed by a single data chunk.
func EncodePCM16(samples []int, sampleRate int) ([]byte, error) {
	if sampleRate < 1 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}

	pcm := make([]int16, len(samples))
	for i, s := range samples {
		if s < -32768 || s > 32767 {
			return nil, fmt.Errorf("%w: value %d at index %d", ErrSampleRange, s, i)
		}
		pcm[i] = int16(s)
	}

	byteRate := sampleRate * Channels * BytesPerSample
	blockAlign := Channels * BytesPerSample
	dataSize := len(pcm) * BytesPerSample
	riffSize := 4 + (8 + 16) + (8 + dataSize)

	buf := &bytes.Buffer{}
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(riffSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(buf, binary.LittleEndian, uint16(Channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, uint16(BitDepth))
	buf.WriteString("data")

	_ = binary.Write(buf, binary.LittleEndian, uint32(dataSize))
	for _, s := range pcm {
		_ = binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes(), nil
}
