package synth

import (
	"errors"
	"math"
	"testing"
)

func TestSynthesizeLength(t *testing.T) {
	tests := []struct {
		duration   float64
		sampleRate int
		want       int
	}{
		{0.5, 44100, 22050},
		{0.1, 44100, 4410},
		{2.0, 44100, 88200},
		{0.5, 8000, 4000},
		{1.0 / 3.0, 100, 33},
		{0, 44100, 0},
		{-1, 44100, 0},
	}
	for _, tt := range tests {
		buf, err := Synthesize(440, tt.duration, 0.5, tt.sampleRate)
		if err != nil {
			t.Fatalf("Synthesize(d=%v, sr=%d): %v", tt.duration, tt.sampleRate, err)
		}
		if len(buf) != tt.want {
			t.Errorf("len(Synthesize(d=%v, sr=%d)) = %d, want %d", tt.duration, tt.sampleRate, len(buf), tt.want)
		}
	}
}

func TestSynthesizeZeroDurationIsEmptyNotNil(t *testing.T) {
	buf, err := Synthesize(440, 0, 1, 44100)
	if err != nil {
		t.Fatal(err)
	}
	if buf == nil || len(buf) != 0 {
		t.Errorf("got %v, want empty non-nil buffer", buf)
	}
}

func TestSynthesizeBounded(t *testing.T) {
	for _, inst := range Instruments {
		for _, vol := range []float64{0, 0.1, 0.5, 1} {
			buf, err := SynthesizeWith(inst.Osc, 493.88, 0.25, vol, 44100)
			if err != nil {
				t.Fatal(err)
			}
			for i, s := range buf {
				if s < -vol || s > vol {
					t.Fatalf("%s vol=%v: sample[%d] = %v out of range", inst.Name, vol, i, s)
				}
			}
		}
	}
}

func TestSynthesizeSilence(t *testing.T) {
	buf, err := Synthesize(261.63, 0.5, 0, 44100)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 22050 {
		t.Fatalf("len = %d, want 22050", len(buf))
	}
	for i, s := range buf {
		if s != 0 {
			t.Fatalf("sample[%d] = %v, want 0", i, s)
		}
	}
}

func TestSynthesizeClampsVolume(t *testing.T) {
	loud, err := Synthesize(440, 0.1, 3, 44100)
	if err != nil {
		t.Fatal(err)
	}
	full, _ := Synthesize(440, 0.1, 1, 44100)
	for i := range loud {
		if loud[i] != full[i] {
			t.Fatalf("volume 3 sample[%d] = %v, want %v (clamped to 1)", i, loud[i], full[i])
		}
	}

	quiet, _ := Synthesize(440, 0.1, -0.5, 44100)
	for i, s := range quiet {
		if s != 0 {
			t.Fatalf("negative volume sample[%d] = %v, want 0", i, s)
		}
	}
}

func TestSynthesizeInvalidFrequency(t *testing.T) {
	for _, f := range []float64{0, -440, math.NaN(), math.Inf(1)} {
		_, err := Synthesize(f, 0.5, 0.5, 44100)
		var inv *InvalidFrequencyError
		if !errors.As(err, &inv) {
			t.Errorf("Synthesize(freq=%v) err = %v, want *InvalidFrequencyError", f, err)
		}
	}
}

func TestSynthesizeInvalidSampleRate(t *testing.T) {
	_, err := Synthesize(440, 0.5, 0.5, 0)
	if !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("err = %v, want ErrInvalidSampleRate", err)
	}
}

func TestSynthesizeWaveform(t *testing.T) {
	const (
		freq = 261.6255653005986
		sr   = 44100
		vol  = 0.5
	)
	buf, err := Synthesize(freq, 0.5, vol, sr)
	if err != nil {
		t.Fatal(err)
	}
	if buf[0] != 0 {
		t.Errorf("sample[0] = %v, want 0", buf[0])
	}

	// Quarter period lands on the positive peak.
	q := int(math.Round(sr / (4 * freq)))
	if math.Abs(buf[q]-vol) > 1e-3 {
		t.Errorf("sample[%d] = %v, want ~%v", q, buf[q], vol)
	}

	for _, i := range []int{1, 100, 12345, len(buf) - 1} {
		want := math.Sin(2*math.Pi*freq*float64(i)/sr) * vol
		if math.Abs(buf[i]-want) > 1e-9 {
			t.Errorf("sample[%d] = %v, want %v", i, buf[i], want)
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	a, _ := Synthesize(329.63, 0.3, 0.7, 22050)
	b, _ := Synthesize(329.63, 0.3, 0.7, 22050)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample[%d] differs: %v vs %v", i, a[i], b[i])
		}
	}
	a[0] = 42
	if b[0] == 42 {
		t.Error("buffers share storage")
	}
}

func TestLength(t *testing.T) {
	if got := Length(0.5, 44100); got != 22050 {
		t.Errorf("Length(0.5, 44100) = %d, want 22050", got)
	}
	if got := Length(0.5, 0); got != 0 {
		t.Errorf("Length(0.5, 0) = %d, want 0", got)
	}
}
