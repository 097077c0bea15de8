package gasket

import (
	"math/rand"
	"testing"
)

func BenchmarkMidpoint(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector2, 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector2{X: rand.Float64()*2 - 1, Y: rand.Float64()*2 - 1})
	}

	b.ReportAllocs()
	b.StartTimer()

	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = Midpoint(vecs[i], vecs[i+1])
		}
	}

}

func TestMidpoint(t *testing.T) {

	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {

		p := Vector2{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}
		q := Vector2{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}

		mid := Midpoint(p, q)

		if mid.X != (p.X+q.X)/2 || mid.Y != (p.Y+q.Y)/2 {
			t.Fatalf("Midpoint(%v, %v) = %v, expected ((p.X+q.X)/2, (p.Y+q.Y)/2)", p, q, mid)
		}

		if Midpoint(q, p) != mid {
			t.Fatalf("Midpoint(%v, %v) isn't symmetric", p, q)
		}

	}

	if mid := Midpoint(NewVector2(-1, -1), NewVector2(0, 1)); mid != NewVector2(-0.5, 0) {
		t.Errorf("got %v, expected {-0.5, 0}", mid)
	}

}

func TestClipPosition(t *testing.T) {

	clip := ClipPosition(NewVector2(0.25, -0.75))

	if clip != (Vector4{X: 0.25, Y: -0.75, Z: 0, W: 1}) {
		t.Fatalf("got %v, expected (0.25, -0.75, 0, 1)", clip)
	}

	if clip.NDC() != NewVector2(0.25, -0.75) {
		t.Fatalf("NDC() of a W=1 position should be its X and Y, got %v", clip.NDC())
	}

}
