package tilt

import (
	"errors"
	"math"
	"testing"
)

func TestHeadingFromTilt(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected float64
	}{
		{"tilt right heads right", -9.8, 0, 0},
		{"tilt left heads left", 9.8, 0, math.Pi},
		{"top edge down heads down", 0, 9.8, math.Pi / 2},
		{"top edge up heads up", 0, -9.8, -math.Pi / 2},
		{"diagonal", -1, 1, math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeadingFromTilt(tt.x, tt.y)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("HeadingFromTilt(%v, %v) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		angle   float64
		ok      bool
		wantErr bool
	}{
		{"tilt pair", `{"x":-2,"y":0}`, 0, true, false},
		{"explicit heading", `{"heading":1.5}`, 1.5, true, false},
		{"heading wins over tilt", `{"x":1,"y":1,"heading":-0.5}`, -0.5, true, false},
		{"flat device", `{"x":0,"y":0}`, 0, false, false},
		{"missing y", `{"x":1}`, 0, false, true},
		{"empty object", `{}`, 0, false, true},
		{"not json", `tilt`, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			angle, ok, err := Decode([]byte(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode(%s) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrBadMessage) {
				t.Errorf("error %v does not wrap ErrBadMessage", err)
			}
			if ok != tt.ok || math.Abs(angle-tt.angle) > 1e-9 {
				t.Errorf("Decode(%s) = %v, %v; expected %v, %v", tt.raw, angle, ok, tt.angle, tt.ok)
			}
		})
	}
}

func TestMessageRejectsNonFinite(t *testing.T) {
	nan := math.NaN()
	if _, _, err := (Message{Heading: &nan}).Angle(); !errors.Is(err, ErrBadMessage) {
		t.Errorf("NaN heading accepted, err = %v", err)
	}
	inf, one := math.Inf(1), 1.0
	if _, _, err := (Message{X: &inf, Y: &one}).Angle(); !errors.Is(err, ErrBadMessage) {
		t.Errorf("infinite tilt accepted, err = %v", err)
	}
}

type recordingSink struct {
	got chan float64
}

func newRecordingSink() *recordingSink {
	return &recordingSink{got: make(chan float64, 16)}
}

func (r *recordingSink) SetHeading(angle float64) {
	r.got <- angle
}

func TestRelay(t *testing.T) {
	var relay Relay

	if relay.SetHeading(1) {
		t.Error("SetHeading reported delivery with no sink attached")
	}

	sink := newRecordingSink()
	relay.Attach(sink)
	if !relay.SetHeading(0.25) {
		t.Fatal("SetHeading not delivered to attached sink")
	}
	if got := <-sink.got; got != 0.25 {
		t.Errorf("sink received %v, expected 0.25", got)
	}

	relay.Attach(nil)
	if relay.SetHeading(2) {
		t.Error("SetHeading delivered after detach")
	}
}
