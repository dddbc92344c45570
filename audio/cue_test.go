package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/pthm-cable/invaders/config"
)

// Playing or cleaning up without a device must be a silent no-op.
func TestFireCueWithoutInitialize(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("cue panicked without initialization: %v", r)
		}
	}()

	c := NewFireCue(config.Default().Audio)
	c.PlayFire()
	c.PlayFire()
	c.Cleanup()
	c.PlayFire()
}

func TestToneGeneratorLength(t *testing.T) {
	g := NewToneGenerator(beep.SampleRate(1000), 100, 250)

	buf := make([][2]float64, 100)
	var total int
	for {
		n, ok := g.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > 1000 {
			t.Fatal("tone never drained")
		}
	}
	if total != 250 {
		t.Errorf("streamed %d samples, want 250", total)
	}
	if err := g.Err(); err != nil {
		t.Errorf("Err = %v", err)
	}
}

func TestToneGeneratorShape(t *testing.T) {
	g := NewToneGenerator(beep.SampleRate(8000), 440, 400)

	buf := make([][2]float64, 400)
	n, _ := g.Stream(buf)
	if n != 400 {
		t.Fatalf("n = %d, want 400", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", buf[0][0])
	}
	for i, s := range buf {
		if s[0] != s[1] {
			t.Fatalf("sample %d not mono: %v", i, s)
		}
		if math.Abs(s[0]) > 0.3 {
			t.Fatalf("sample %d = %v exceeds amplitude", i, s[0])
		}
	}
	// The fade out keeps the tail quieter than the head.
	var head, tail float64
	for i := 0; i < 40; i++ {
		head = math.Max(head, math.Abs(buf[i][0]))
		tail = math.Max(tail, math.Abs(buf[359+i][0]))
	}
	if tail >= head {
		t.Errorf("tail peak %v >= head peak %v", tail, head)
	}
}
