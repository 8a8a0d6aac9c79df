package audio

import "encoding/binary"

// Parameters of the provider's raw PCM streams. Every headerless payload the
// API returns is 16-bit little-endian mono at 24kHz.
const (
	PCMSampleRate    = 24000
	PCMChannels      = 1
	PCMBitsPerSample = 16

	// HeaderSize is the length of the canonical WAV header WrapPCM prepends.
	HeaderSize = 44
)

// WAVHeader builds a 44-byte RIFF/WAVE header describing dataSize bytes of
// the provider's PCM. All multi-byte fields are little-endian.
func WAVHeader(dataSize int) []byte {
	byteRate := PCMSampleRate * PCMChannels * PCMBitsPerSample / 8
	blockAlign := PCMChannels * PCMBitsPerSample / 8

	h := make([]byte, 0, HeaderSize)
	h = append(h, "RIFF"...)
	h = binary.LittleEndian.AppendUint32(h, uint32(36+dataSize))
	h = append(h, "WAVE"...)
	h = append(h, "fmt "...)
	h = binary.LittleEndian.AppendUint32(h, 16) // PCM fmt chunk size
	h = binary.LittleEndian.AppendUint16(h, 1)  // audio format: PCM
	h = binary.LittleEndian.AppendUint16(h, PCMChannels)
	h = binary.LittleEndian.AppendUint32(h, PCMSampleRate)
	h = binary.LittleEndian.AppendUint32(h, uint32(byteRate))
	h = binary.LittleEndian.AppendUint16(h, uint16(blockAlign))
	h = binary.LittleEndian.AppendUint16(h, PCMBitsPerSample)
	h = append(h, "data"...)
	h = binary.LittleEndian.AppendUint32(h, uint32(dataSize))
	return h
}

// WrapPCM prepends a WAV header to raw PCM samples. The result is exactly
// HeaderSize bytes longer than the input.
func WrapPCM(pcm []byte) []byte {
	out := make([]byte, 0, HeaderSize+len(pcm))
	out = append(out, WAVHeader(len(pcm))...)
	return append(out, pcm...)
}
