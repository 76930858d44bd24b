package domain

import (
	"math/rand"
	"time"
)

const (
	ParticleCount    = 20
	ParticleLifetime = 5 * time.Second
	ParticleMaxDelay = 2 * time.Second
)

// Particle is one ambient dot. X is a horizontal position in [0,1).
type Particle struct {
	X     float64
	Delay time.Duration
	Born  time.Time
}

// Visible reports whether the particle is showing at now
func (p Particle) Visible(now time.Time) bool {
	return !now.Before(p.Born.Add(p.Delay)) && now.Before(p.Born.Add(ParticleLifetime))
}

// Expired reports whether the particle outlived ParticleLifetime
func (p Particle) Expired(now time.Time) bool {
	return !now.Before(p.Born.Add(ParticleLifetime))
}

// ParticleField is the set of live particles of a section
type ParticleField struct {
	particles []Particle
}

// Spawn adds n particles born at now with random position and delay
func (f *ParticleField) Spawn(now time.Time, n int, rng *rand.Rand) {
	for range n {
		f.particles = append(f.particles, Particle{
			X:     rng.Float64(),
			Delay: time.Duration(rng.Int63n(int64(ParticleMaxDelay))),
			Born:  now,
		})
	}
}

// Prune drops expired particles and returns how many were removed
func (f *ParticleField) Prune(now time.Time) int {
	kept := f.particles[:0]
	for _, p := range f.particles {
		if !p.Expired(now) {
			kept = append(kept, p)
		}
	}
	removed := len(f.particles) - len(kept)
	f.particles = kept
	return removed
}

// Visible returns the particles showing at now
func (f *ParticleField) Visible(now time.Time) []Particle {
	var out []Particle
	for _, p := range f.particles {
		if p.Visible(now) {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of live particles
func (f *ParticleField) Len() int {
	return len(f.particles)
}
