package audio

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// Player streams a tone to the default sound device.
type Player struct {
	tone   *Tone
	ctx    *oto.Context
	player *oto.Player
}

// NewPlayer opens the sound device and starts playing the tone. The tone stays
// silent until it gets activated.
func NewPlayer(sampleRate int, frequency float64) (*Player, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	tone := NewTone(sampleRate, frequency)
	p := &Player{
		tone:   tone,
		ctx:    ctx,
		player: ctx.NewPlayer(tone),
	}
	p.player.Play()
	return p, nil
}

// SetActive switches the tone on or off.
func (p *Player) SetActive(active bool) {
	p.tone.SetActive(active)
}

// Frame does nothing, the sound device pulls the samples on its own.
func (p *Player) Frame() error {
	return nil
}

// Close stops the playback.
func (p *Player) Close() error {
	p.tone.SetActive(false)
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
