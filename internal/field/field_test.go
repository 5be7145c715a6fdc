package field

import (
	"math"
	"math/rand"
	"testing"
)

func newRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

func TestCount(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{0, 0},
		{-30, 0},
		{14.9, 0},
		{15, 1},
		{800, 53},
		{1199, 79},
		{1200, 80},
		{4000, 80},
	}
	for _, tt := range tests {
		if got := Count(tt.width); got != tt.want {
			t.Errorf("Count(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestCountStableAcrossTicksAndResizes(t *testing.T) {
	f := New(640, 480, newRand())
	want := Count(640)
	if f.Len() != want {
		t.Fatalf("Len() = %d, want %d", f.Len(), want)
	}
	for i := 0; i < 50; i++ {
		f.Step()
		if i%10 == 0 {
			f.Resize(float64(100+i*40), float64(80+i*10))
		}
		if f.Len() != want {
			t.Fatalf("tick %d: Len() = %d, want %d", i, f.Len(), want)
		}
	}
}

func TestNewParticleRanges(t *testing.T) {
	f := New(1200, 700, newRand())
	for i, p := range f.Particles() {
		if p.Pos.X < 0 || p.Pos.X >= 1200 || p.Pos.Y < 0 || p.Pos.Y >= 700 {
			t.Fatalf("particle %d position %+v outside surface", i, p.Pos)
		}
		if math.Abs(p.Vel.X) > 0.25 || math.Abs(p.Vel.Y) > 0.25 {
			t.Fatalf("particle %d velocity %+v outside [-0.25,0.25]", i, p.Vel)
		}
		if p.Radius < 1 || p.Radius >= 3 {
			t.Fatalf("particle %d radius %v outside [1,3)", i, p.Radius)
		}
		if p.Opacity < 0.2 || p.Opacity >= 0.7 {
			t.Fatalf("particle %d opacity %v outside [0.2,0.7)", i, p.Opacity)
		}
		found := false
		for _, c := range Palette {
			if c == p.Color {
				found = true
			}
		}
		if !found {
			t.Fatalf("particle %d color %v not in palette", i, p.Color.Hex())
		}
	}
}

func TestNewZeroWidthHasNoParticles(t *testing.T) {
	f := New(0, 0, newRand())
	if f.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", f.Len())
	}
	f.Step()
	f.Render(&recorder{}, nil)
}

func TestPointerStartsAtOrigin(t *testing.T) {
	f := New(300, 300, newRand())
	if f.Pointer() != (Vec{}) {
		t.Fatalf("Pointer() = %+v, want origin", f.Pointer())
	}
}

func TestStepBounceFlipsOnlyOutwardComponent(t *testing.T) {
	tests := []struct {
		name    string
		p       Particle
		wantVel Vec
	}{
		{"right edge", Particle{Pos: Vec{200, 50}, Vel: Vec{0.2, 0.1}}, Vec{-0.2, 0.1}},
		{"left edge", Particle{Pos: Vec{0, 50}, Vel: Vec{-0.2, 0.1}}, Vec{0.2, 0.1}},
		{"bottom edge", Particle{Pos: Vec{50, 100}, Vel: Vec{0.1, 0.2}}, Vec{0.1, -0.2}},
		{"top edge", Particle{Pos: Vec{50, 0}, Vel: Vec{0.1, -0.2}}, Vec{0.1, 0.2}},
		{"inside", Particle{Pos: Vec{50, 50}, Vel: Vec{0.1, 0.2}}, Vec{0.1, 0.2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FromParticles(200, 100, []Particle{tt.p})
			f.PointerMove(-1000, -1000)
			f.Step()
			if got := f.Particles()[0].Vel; got != tt.wantVel {
				t.Fatalf("Vel = %+v, want %+v", got, tt.wantVel)
			}
		})
	}
}

func TestStepBounceDoesNotClamp(t *testing.T) {
	f := FromParticles(200, 100, []Particle{{Pos: Vec{200, 50}, Vel: Vec{0.2, 0}}})
	f.PointerMove(-1000, -1000)
	f.Step()
	if x := f.Particles()[0].Pos.X; x <= 200 {
		t.Fatalf("X = %v, want outside surface after one tick", x)
	}
	f.Step()
	if x := f.Particles()[0].Pos.X; math.Abs(x-200) > 1e-9 {
		t.Fatalf("X = %v, want back near 200 after reversal", x)
	}
}

func TestStepPointerThreshold(t *testing.T) {
	tests := []struct {
		dist  float64
		moved bool
	}{
		{99.9, true},
		{100.1, false},
	}
	for _, tt := range tests {
		start := Vec{300, 300}
		f := FromParticles(1000, 1000, []Particle{{Pos: start}})
		f.PointerMove(start.X+tt.dist, start.Y)
		f.Step()

		got := f.Particles()[0].Pos
		if moved := got != start; moved != tt.moved {
			t.Fatalf("d=%v: moved = %v, want %v (pos %+v)", tt.dist, moved, tt.moved, got)
		}
		if tt.moved {
			want := start.X + tt.dist*0.001
			if math.Abs(got.X-want) > 1e-12 || got.Y != start.Y {
				t.Fatalf("d=%v: pos = %+v, want x=%v toward pointer", tt.dist, got, want)
			}
		}
	}
}

func TestStepIntegrationIsExact(t *testing.T) {
	p := Particle{Pos: Vec{123.456, 78.9}, Vel: Vec{0.1234, -0.2187}}
	f := FromParticles(500, 500, []Particle{p})
	f.PointerMove(-1000, -1000)
	f.Step()

	got := f.Particles()[0].Pos
	want := Vec{p.Pos.X + p.Vel.X, p.Pos.Y + p.Vel.Y}
	if got != want {
		t.Fatalf("Pos = %+v, want %+v", got, want)
	}
}

func TestResizeKeepsParticles(t *testing.T) {
	f := New(600, 400, newRand())
	before := append([]Particle(nil), f.Particles()...)
	f.Resize(100, 50)

	if w, h := f.Extent(); w != 100 || h != 50 {
		t.Fatalf("Extent() = %v,%v, want 100,50", w, h)
	}
	for i, p := range f.Particles() {
		if p != before[i] {
			t.Fatalf("particle %d changed on resize: %+v -> %+v", i, before[i], p)
		}
	}
}

func TestLinkAlphaThreshold(t *testing.T) {
	a, ok := LinkAlpha(119)
	if !ok {
		t.Fatal("expected link at d=119")
	}
	if math.Abs(a-0.0025) > 1e-9 {
		t.Fatalf("LinkAlpha(119) = %v, want 0.0025", a)
	}
	if _, ok := LinkAlpha(120.1); ok {
		t.Fatal("expected no link at d=120.1")
	}
	if _, ok := LinkAlpha(120); ok {
		t.Fatal("expected no link at d=120")
	}
	if a, _ := LinkAlpha(0); a != 0.3 {
		t.Fatalf("LinkAlpha(0) = %v, want 0.3", a)
	}
}

func TestLinksPairsOnceInOrder(t *testing.T) {
	f := FromParticles(1000, 1000, []Particle{
		{Pos: Vec{0, 0}},
		{Pos: Vec{119, 0}},
		{Pos: Vec{0, 120.1}},
		{Pos: Vec{50, 0}},
	})
	links := f.Links(nil)

	want := map[[2]int]bool{{0, 1}: true, {0, 3}: true, {1, 3}: true, {2, 3}: false}
	got := make(map[[2]int]bool)
	for _, l := range links {
		if l.A >= l.B {
			t.Fatalf("link %+v not ordered", l)
		}
		got[[2]int{l.A, l.B}] = true
	}
	for pair, expect := range want {
		if got[pair] != expect {
			t.Errorf("pair %v linked = %v, want %v", pair, got[pair], expect)
		}
	}
	// 0-2 sit 120.1 apart; 1-2 and 2-3 are further still.
	if len(links) != 3 {
		t.Fatalf("len(links) = %d, want 3", len(links))
	}
}

func TestEndToEndFarPointer(t *testing.T) {
	f := New(800, 600, newRand())
	if f.Len() != 53 {
		t.Fatalf("Len() = %d, want 53", f.Len())
	}
	f.PointerMove(-1000, -1000)

	for tick := 0; tick < 10; tick++ {
		before := append([]Particle(nil), f.Particles()...)
		f.Step()
		for i, p := range f.Particles() {
			want := before[i].Pos.Add(before[i].Vel)
			if p.Pos != want {
				t.Fatalf("tick %d particle %d: pos %+v, want %+v", tick, i, p.Pos, want)
			}
		}
	}
}

func TestPaletteParsesConfiguredColors(t *testing.T) {
	want := []string{"#ff6b6b", "#4ecdc4", "#ffe066"}
	if len(Palette) != len(want) {
		t.Fatalf("len(Palette) = %d, want %d", len(Palette), len(want))
	}
	for i, c := range Palette {
		if got := c.Hex(); got != want[i] {
			t.Fatalf("Palette[%d] = %s, want %s", i, got, want[i])
		}
	}
	if got := linkColor.Hex(); got != "#ff6b6b" {
		t.Fatalf("linkColor = %s, want #ff6b6b", got)
	}
}

func TestMustHexPanicsOnMalformedColor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("mustHex accepted a malformed color")
		}
	}()
	mustHex("not-a-color")
}
