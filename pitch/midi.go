package pitch

import (
	"fmt"

	"github.com/gomidi/midi/midimessage/channel"
	"github.com/gruntwork-io/go-commons/errors"
)

// OutOfMIDIRangeError is returned when a pitch has no MIDI key number.
type OutOfMIDIRangeError struct {
	Pitch Pitch
}

func (err OutOfMIDIRangeError) Error() string {
	return fmt.Sprintf("pitch %s (%d) is outside the MIDI key range 0-127", err.Pitch, err.Pitch.midiNumber)
}

// InMIDIRange reports whether the pitch number is a valid MIDI key.
func (p Pitch) InMIDIRange() bool {
	return p.midiNumber >= 0 && p.midiNumber <= 127
}

// NoteOn builds a note on message for the pitch on ch.
func (p Pitch) NoteOn(ch channel.Channel, velocity uint8) (channel.NoteOn, error) {
	if !p.InMIDIRange() {
		return channel.NoteOn{}, errors.WithStackTrace(OutOfMIDIRangeError{Pitch: p})
	}
	return ch.NoteOn(uint8(p.midiNumber), velocity), nil
}

// NoteOff builds a note off message for the pitch on ch.
func (p Pitch) NoteOff(ch channel.Channel) (channel.NoteOff, error) {
	if !p.InMIDIRange() {
		return channel.NoteOff{}, errors.WithStackTrace(OutOfMIDIRangeError{Pitch: p})
	}
	return ch.NoteOff(uint8(p.midiNumber)), nil
}
