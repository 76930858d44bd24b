package domain

import (
	"math/rand"
	"testing"
	"time"
)

func TestParticleField_Lifecycle(t *testing.T) {
	var f ParticleField
	now := time.Unix(100, 0)
	f.Spawn(now, ParticleCount, rand.New(rand.NewSource(1)))

	if f.Len() != ParticleCount {
		t.Fatalf("expected %d particles, got %d", ParticleCount, f.Len())
	}

	visible := f.Visible(now.Add(ParticleMaxDelay))
	if len(visible) != ParticleCount {
		t.Errorf("expected all particles visible after max delay, got %d", len(visible))
	}

	if removed := f.Prune(now.Add(time.Second)); removed != 0 {
		t.Errorf("expected no particles pruned early, got %d", removed)
	}
	if removed := f.Prune(now.Add(ParticleLifetime)); removed != ParticleCount {
		t.Errorf("expected %d pruned, got %d", ParticleCount, removed)
	}
	if f.Len() != 0 {
		t.Errorf("expected empty field, got %d", f.Len())
	}
}

func TestParticle_PositionInRange(t *testing.T) {
	var f ParticleField
	now := time.Unix(0, 0)
	f.Spawn(now, 200, rand.New(rand.NewSource(7)))
	for _, p := range f.Visible(now.Add(ParticleMaxDelay)) {
		if p.X < 0 || p.X >= 1 {
			t.Errorf("particle X out of range: %v", p.X)
		}
		if p.Delay < 0 || p.Delay >= ParticleMaxDelay {
			t.Errorf("particle delay out of range: %v", p.Delay)
		}
	}
}
