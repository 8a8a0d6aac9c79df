package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMagicBytes(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want Format
	}{
		{"riff", []byte("RIFFxxxxWAVEfmt "), FormatWAV},
		{"mp3 fffb", []byte{0xff, 0xfb, 0x90, 0x00}, FormatMP3},
		{"mp3 fffa", []byte{0xff, 0xfa, 0x90, 0x00}, FormatMP3},
		{"id3", []byte("ID3\x04\x00"), FormatMP3},
		{"flac", []byte("fLaC\x00\x00\x00\x22"), FormatFLAC},
		{"ogg", []byte("OggS\x00\x02"), FormatOGG},
		{"headerless", []byte{0x01, 0x02, 0x03, 0x04}, FormatPCM},
		{"empty", nil, FormatPCM},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Detect(c.data, ""))
		})
	}
}

func TestDetectMagicBytesBeatContentType(t *testing.T) {
	// A server lying about an mp3 payload must not override the bytes.
	got := Detect([]byte{0xff, 0xfb, 0x90, 0x00}, "audio/wav")
	assert.Equal(t, FormatMP3, got)
}

func TestDetectContentTypeFallback(t *testing.T) {
	cases := []struct {
		contentType string
		want        Format
	}{
		{"audio/wav", FormatWAV},
		{"audio/x-wave", FormatWAV},
		{"Audio/WAV", FormatWAV},
		{"audio/mpeg", FormatMP3},
		{"audio/mp3; charset=binary", FormatMP3},
		{"audio/flac", FormatFLAC},
		{"application/ogg", FormatOGG},
		{"application/octet-stream", FormatPCM},
		{"", FormatPCM},
	}
	// Payload bytes with no recognizable magic number.
	data := []byte{0x10, 0x20, 0x30, 0x40}
	for _, c := range cases {
		t.Run(c.contentType, func(t *testing.T) {
			assert.Equal(t, c.want, Detect(data, c.contentType))
		})
	}
}

func TestFormatExt(t *testing.T) {
	assert.Equal(t, ".wav", FormatWAV.Ext())
	assert.Equal(t, ".mp3", FormatMP3.Ext())
	assert.Equal(t, ".flac", FormatFLAC.Ext())
	assert.Equal(t, ".ogg", FormatOGG.Ext())
	assert.Equal(t, ".wav", FormatPCM.Ext())
	assert.Equal(t, ".wav", Format("mystery").Ext())
}
