// Package tilt bridges a phone's motion sensor to the game. A small page
// served over HTTP streams accelerometer readings through a WebSocket, and
// each reading becomes a heading for whichever game is currently attached.
package tilt

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
)

// HeadingSink receives headings in radians. Implementations must be safe to
// call from the bridge's connection goroutines.
type HeadingSink interface {
	SetHeading(angle float64)
}

// HeadingFromTilt turns the x and y gravity components reported by a device
// held in portrait into a heading. Tilting right moves the snake right and
// tilting the top edge down moves it up.
func HeadingFromTilt(x, y float64) float64 {
	return math.Atan2(y, -x)
}

// Relay forwards headings to a sink that can be swapped while the bridge is
// running. Headings arriving with no sink attached are dropped.
type Relay struct {
	mu   sync.RWMutex
	sink HeadingSink
}

// Attach sets the sink that receives headings. Passing nil detaches.
func (r *Relay) Attach(sink HeadingSink) {
	r.mu.Lock()
	r.sink = sink
	r.mu.Unlock()
}

// SetHeading forwards angle to the attached sink and reports whether one
// was attached.
func (r *Relay) SetHeading(angle float64) bool {
	r.mu.RLock()
	sink := r.sink
	r.mu.RUnlock()
	if sink == nil {
		return false
	}
	sink.SetHeading(angle)
	return true
}

// ErrBadMessage is returned for messages that carry no usable heading.
var ErrBadMessage = errors.New("tilt: bad message")

// Message is a client reading. Either Heading is set, or both X and Y.
type Message struct {
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
	Heading *float64 `json:"heading,omitempty"`
}

// Angle returns the heading carried by m. A device lying flat reports no
// tilt at all, which yields ok == false rather than an error.
func (m Message) Angle() (angle float64, ok bool, err error) {
	if m.Heading != nil {
		if !finite(*m.Heading) {
			return 0, false, fmt.Errorf("%w: heading is not finite", ErrBadMessage)
		}
		return *m.Heading, true, nil
	}
	if m.X == nil || m.Y == nil {
		return 0, false, fmt.Errorf("%w: need heading or both x and y", ErrBadMessage)
	}
	x, y := *m.X, *m.Y
	if !finite(x) || !finite(y) {
		return 0, false, fmt.Errorf("%w: tilt is not finite", ErrBadMessage)
	}
	if x == 0 && y == 0 {
		return 0, false, nil
	}
	return HeadingFromTilt(x, y), true, nil
}

// Decode parses a raw WebSocket payload into a heading.
func Decode(raw []byte) (angle float64, ok bool, err error) {
	var m Message
	if err := json.Unmarshal(raw, &m); err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	return m.Angle()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
