// Package audio generates the tone of the CHIP-8 buzzer and outputs it to a
// sound device or a WAV file.
package audio

import (
	"encoding/binary"
	"math"
	"sync"
	"sync/atomic"
)

// Default tone settings.
const (
	DefaultSampleRate = 44100
	DefaultFrequency  = 440.0
	DefaultVolume     = 0.25
)

// bytesPerSample is the size of a float32 sample.
const bytesPerSample = 4

// Tone is a square wave generator that outputs silence while inactive.
// SetActive can be called concurrently to reading samples.
type Tone struct {
	active atomic.Bool

	mu        sync.Mutex
	step      float64 // phase increment per sample
	phase     float64
	volume    float32
	sampleBuf []float32
}

// NewTone returns a new inactive tone generator.
func NewTone(sampleRate int, frequency float64) *Tone {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	return &Tone{
		step:   frequency / float64(sampleRate),
		volume: DefaultVolume,
	}
}

// SetActive switches the tone on or off.
func (t *Tone) SetActive(active bool) {
	t.active.Store(active)
}

// Active returns whether the tone is switched on.
func (t *Tone) Active() bool {
	return t.active.Load()
}

// Samples fills the buffer with the next samples.
func (t *Tone) Samples(buf []float32) {
	active := t.active.Load()

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range buf {
		switch {
		case !active:
			buf[i] = 0
		case t.phase < 0.5:
			buf[i] = t.volume
		default:
			buf[i] = -t.volume
		}

		t.phase += t.step
		if t.phase >= 1 {
			t.phase -= 1
		}
	}
}

// Read implements io.Reader and returns the samples as 32 bit little endian floats.
func (t *Tone) Read(p []byte) (int, error) {
	numSamples := len(p) / bytesPerSample
	if cap(t.sampleBuf) < numSamples {
		t.sampleBuf = make([]float32, numSamples)
	}
	samples := t.sampleBuf[:numSamples]
	t.Samples(samples)

	for i, s := range samples {
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(s))
	}
	return numSamples * bytesPerSample, nil
}
