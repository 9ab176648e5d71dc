package audio

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	recordBitDepth = 16
	wavFormatPCM   = 1
)

// Recorder writes the tone output of every frame to a WAV file.
type Recorder struct {
	file    *os.File
	encoder *wav.Encoder
	tone    *Tone

	samples []float32
	buf     *audio.IntBuffer
}

// NewRecorder creates the WAV file. frameRate is the number of Frame calls per
// second that the recorder will receive.
func NewRecorder(path string, sampleRate, frameRate int) (*Recorder, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if frameRate <= 0 {
		return nil, fmt.Errorf("invalid frame rate %d", frameRate)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating file %s: %w", path, err)
	}

	samplesPerFrame := sampleRate / frameRate
	return &Recorder{
		file:    file,
		encoder: wav.NewEncoder(file, sampleRate, recordBitDepth, 1, wavFormatPCM),
		tone:    NewTone(sampleRate, DefaultFrequency),
		samples: make([]float32, samplesPerFrame),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 1,
				SampleRate:  sampleRate,
			},
			Data:           make([]int, samplesPerFrame),
			SourceBitDepth: recordBitDepth,
		},
	}, nil
}

// SetActive switches the tone on or off.
func (r *Recorder) SetActive(active bool) {
	r.tone.SetActive(active)
}

// Frame writes the samples of one frame.
func (r *Recorder) Frame() error {
	r.tone.Samples(r.samples)

	for i, s := range r.samples {
		r.buf.Data[i] = int(s * math.MaxInt16)
	}
	if err := r.encoder.Write(r.buf); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	return nil
}

// Close finalizes the WAV header and closes the file.
func (r *Recorder) Close() error {
	if err := r.encoder.Close(); err != nil {
		_ = r.file.Close()
		return fmt.Errorf("closing wav encoder: %w", err)
	}
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}
