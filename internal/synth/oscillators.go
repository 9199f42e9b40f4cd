package synth

import "math"

const twoPi = 2 * math.Pi

// Oscillator maps a phase in radians to an amplitude in [-1, 1].
type Oscillator func(phase float64) float64

// Instrument is a named oscillator preset.
type Instrument struct {
	Name string
	Osc  Oscillator
}

// Instruments lists the presets in the order the keyboard cycles through them.
// The first entry is the default.
var Instruments = []Instrument{
	{Name: "Pure Sine", Osc: Sine},
	{Name: "Electric Piano", Osc: Piano},
	{Name: "8-Bit Square", Osc: Square},
	{Name: "Synth Saw", Osc: Saw},
	{Name: "Soft Flute", Osc: Triangle},
	{Name: "Church Organ", Osc: Organ},
	{Name: "Gameboy Pulse", Osc: Pulse},
}

// InstrumentByName returns the preset with the given name.
func InstrumentByName(name string) (Instrument, bool) {
	for _, inst := range Instruments {
		if inst.Name == name {
			return inst, true
		}
	}
	return Instrument{}, false
}

func Sine(p float64) float64 {
	return math.Sin(p)
}

func Piano(p float64) float64 {
	v1 := math.Sin(p)
	v2 := math.Sin(p*2.0) * 0.5
	v3 := math.Sin(p*3.0) * 0.2
	return (v1 + v2 + v3) / 1.7
}

func Square(p float64) float64 {
	if math.Sin(p) >= 0 {
		return 1
	}
	return -1
}

func Saw(p float64) float64 {
	norm := wrap(p) / twoPi
	return 2.0*norm - 1.0
}

func Triangle(p float64) float64 {
	norm := wrap(p) / twoPi
	return 2.0*math.Abs(2.0*norm-1.0) - 1.0
}

func Organ(p float64) float64 {
	v1 := math.Sin(p)
	v2 := math.Sin(p*2.0) * 0.5
	v3 := math.Sin(p*4.0) * 0.25
	v4 := math.Sin(p*8.0) * 0.125
	return (v1 + v2 + v3 + v4) / 1.875
}

func Pulse(p float64) float64 {
	if wrap(p) < math.Pi/2 {
		return 1
	}
	return -1
}

// wrap folds p into [0, 2π).
func wrap(p float64) float64 {
	p = math.Mod(p, twoPi)
	if p < 0 {
		p += twoPi
	}
	return p
}
