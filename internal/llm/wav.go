package llm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	defaultSampleRate = 24000
	channels          = 1
	bitsPerSample     = 16
	formatPCM         = 1
)

// sampleRateFromMIME reads the rate parameter of a MIME type such as
// "audio/L16;codec=pcm;rate=24000".
func sampleRateFromMIME(mimeType string) int {
	for param := range strings.SplitSeq(mimeType, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || key != "rate" {
			continue
		}
		if rate, err := strconv.Atoi(value); err == nil && rate > 0 {
			return rate
		}
	}

	return defaultSampleRate
}

// wavFromPCM wraps 16 bit little endian mono PCM into a WAV container.
// A trailing odd byte is not a full sample and is dropped.
func wavFromPCM(pcm []byte, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}

	samples := make([]int, len(pcm)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(pcm[2*i:])))
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: bitsPerSample,
	}

	out := &seekBuffer{}
	enc := wav.NewEncoder(out, sampleRate, bitsPerSample, channels, formatPCM)
	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("finalising wav: %w", err)
	}

	return out.data, nil
}

var errNegativeOffset = errors.New("negative seek offset")

// seekBuffer is an in-memory io.WriteSeeker. The wav encoder seeks back to
// patch the chunk sizes once all samples are written.
type seekBuffer struct {
	data []byte
	pos  int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if end := b.pos + len(p); end > len(b.data) {
		b.data = append(b.data, make([]byte, end-len(b.data))...)
	}
	n := copy(b.data[b.pos:], p)
	b.pos += n

	return n, nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(b.pos)
	case io.SeekEnd:
		base = int64(len(b.data))
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}

	next := base + offset
	if next < 0 {
		return 0, errNegativeOffset
	}
	b.pos = int(next)

	return next, nil
}
