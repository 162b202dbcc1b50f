package llm

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestWavFromPCM(t *testing.T) {
	// Samples 0x0201, -2 and 0x0605 as little endian int16.
	pcm := []byte{1, 2, 0xfe, 0xff, 5, 6}

	out, err := wavFromPCM(pcm, 24000)
	require.NoError(t, err)
	require.Len(t, out, 44+len(pcm))

	assert.Equal(t, "RIFF", string(out[0:4]))
	assert.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(out[4:8]))
	assert.Equal(t, "WAVE", string(out[8:12]))
	assert.Equal(t, "data", string(out[36:40]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(out[40:44]))
	assert.Equal(t, pcm, out[44:])

	dec := wav.NewDecoder(bytes.NewReader(out))
	require.True(t, dec.IsValidFile())
	assert.Equal(t, uint32(24000), dec.SampleRate)
	assert.Equal(t, uint16(1), dec.NumChans)
	assert.Equal(t, uint16(16), dec.BitDepth)
	assert.Equal(t, uint16(1), dec.WavAudioFormat)

	decoded, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, []int{0x0201, -2, 0x0605}, decoded.Data)
}

func TestWavFromPCM_Defaults(t *testing.T) {
	out, err := wavFromPCM([]byte{1, 2, 3}, 0)
	require.NoError(t, err)

	// The odd trailing byte is dropped.
	assert.Len(t, out, 44+2)
	assert.Equal(t, uint32(defaultSampleRate), binary.LittleEndian.Uint32(out[24:28]))
}

func TestSeekBuffer(t *testing.T) {
	b := &seekBuffer{}
	_, err := b.Write([]byte("abcdef"))
	require.NoError(t, err)

	pos, err := b.Seek(1, io.SeekStart)
	require.NoError(t, err)
	assert.EqualValues(t, 1, pos)

	_, err = b.Write([]byte("XY"))
	require.NoError(t, err)
	assert.Equal(t, "aXYdef", string(b.data))

	pos, err = b.Seek(-1, io.SeekEnd)
	require.NoError(t, err)
	assert.EqualValues(t, 5, pos)

	_, err = b.Write([]byte("gh"))
	require.NoError(t, err)
	assert.Equal(t, "aXYdegh", string(b.data))

	_, err = b.Seek(-10, io.SeekCurrent)
	assert.ErrorIs(t, err, errNegativeOffset)
}

func TestSampleRateFromMIME(t *testing.T) {
	tests := []struct {
		mime string
		want int
	}{
		{mime: "audio/L16;codec=pcm;rate=16000", want: 16000},
		{mime: "audio/L16; rate=44100", want: 44100},
		{mime: "audio/L16;rate=abc", want: defaultSampleRate},
		{mime: "audio/pcm", want: defaultSampleRate},
		{mime: "", want: defaultSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, sampleRateFromMIME(tt.mime))
		})
	}
}

func TestInlineAudio(t *testing.T) {
	res := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []*genai.Part{
				{Text: "ignored"},
				{InlineData: &genai.Blob{Data: []byte{9, 9}, MIMEType: "audio/L16;rate=8000"}},
			}}},
		},
	}

	data, rate := inlineAudio(res)
	assert.Equal(t, []byte{9, 9}, data)
	assert.Equal(t, 8000, rate)

	data, _ = inlineAudio(nil)
	assert.Nil(t, data)
}
