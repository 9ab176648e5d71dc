package audio

import "errors"

// Beeper is a sound output that is updated once per frame.
type Beeper interface {
	SetActive(active bool)
	Frame() error
}

// Multi forwards to multiple sound outputs.
type Multi []Beeper

// SetActive switches the tone of all outputs on or off.
func (m Multi) SetActive(active bool) {
	for _, b := range m {
		b.SetActive(active)
	}
}

// Frame updates all outputs and returns the joined errors.
func (m Multi) Frame() error {
	var errs []error
	for _, b := range m {
		if err := b.Frame(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
