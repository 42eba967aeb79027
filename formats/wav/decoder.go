// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/dinesh-batta/AaltoASR/audio"
	"github.com/dinesh-batta/AaltoASR/formats/internal/goaudio"
)

const pcmFormat = 1

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := goaudio.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("read wav header: %w", err)
	}

	switch {
	case dec.WavAudioFormat != pcmFormat:
		return nil, ErrUnsupportedWavFormat
	case dec.BitDepth != 16 && dec.BitDepth != 24 && dec.BitDepth != 32:
		return nil, ErrUnsupportedWavFormat
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("seek wav data: %w", err)
	}

	return goaudio.NewSource(dec, dec.Format(), int(dec.BitDepth)), nil
}
