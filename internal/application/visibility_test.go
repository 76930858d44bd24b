package application

import (
	"log/slog"
	"math"
	"testing"

	"relato/internal/domain"
)

func TestVisibleRatio(t *testing.T) {
	tests := []struct {
		name    string
		span    Span
		viewTop int
		viewH   int
		want    float64
	}{
		{"fully inside band", Span{Top: 10, Height: 10}, 0, 100, 1},
		{"above viewport", Span{Top: 0, Height: 10}, 50, 100, 0},
		{"only in margin", Span{Top: 0, Height: 10}, 0, 100, 0},
		{"half in band", Span{Top: 80, Height: 20}, 0, 100, 0.5},
		{"taller than band", Span{Top: 0, Height: 500}, 100, 100, 1},
		{"empty span", Span{Top: 0, Height: 0}, 0, 100, 0},
		{"empty viewport", Span{Top: 0, Height: 10}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleRatio(tt.span, tt.viewTop, tt.viewH, 0.1)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("VisibleRatio() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func newTestTracker() (*Tracker, *Store, *countingActivator) {
	registry := domain.NewRegistry(
		domain.Section{ID: "hero"},
		domain.Section{ID: "problema", Kind: domain.KindCounters},
		domain.Section{ID: "galeria", Kind: domain.KindGallery},
	)
	store := NewStore(registry.Len())
	act := &countingActivator{}
	tr := NewTracker(registry, store, act, 0.3, slog.New(slog.DiscardHandler))
	return tr, store, act
}

func TestTracker_ActivationIsOneShot(t *testing.T) {
	tr, store, act := newTestTracker()
	tr.Connect()

	tr.Observe([]Intersection{{Handle: "problema", Ratio: 0.5}})
	tr.Observe([]Intersection{{Handle: "problema", Ratio: 0.1}})
	tr.Observe([]Intersection{{Handle: "problema", Ratio: 0.9}})

	if len(act.calls) != 1 {
		t.Errorf("expected one dispatch, got %d (%v)", len(act.calls), act.calls)
	}
	if store.Navigation().Current != 1 {
		t.Errorf("expected current section 1, got %d", store.Navigation().Current)
	}
	if !tr.Activated("problema") {
		t.Error("expected activation record for problema")
	}
}

func TestTracker_CurrentFollowsEveryTransition(t *testing.T) {
	tr, store, _ := newTestTracker()
	tr.Connect()

	tr.Observe([]Intersection{{Handle: "galeria", Ratio: 1}})
	tr.Observe([]Intersection{{Handle: "galeria", Ratio: 0}, {Handle: "hero", Ratio: 1}})
	if store.Navigation().Current != 0 {
		t.Fatalf("expected current 0, got %d", store.Navigation().Current)
	}

	tr.Observe([]Intersection{{Handle: "hero", Ratio: 0}, {Handle: "galeria", Ratio: 1}})
	if store.Navigation().Current != 2 {
		t.Errorf("re-entering galeria should make it current, got %d", store.Navigation().Current)
	}
}

func TestTracker_StayingActiveDoesNotRetrigger(t *testing.T) {
	tr, _, act := newTestTracker()
	tr.Connect()

	for range 5 {
		tr.Observe([]Intersection{{Handle: "hero", Ratio: 0.8}})
	}
	if len(act.calls) != 1 {
		t.Errorf("expected one dispatch, got %d", len(act.calls))
	}
	if !tr.Active("hero") {
		t.Error("expected hero active")
	}
}

func TestTracker_IgnoresUnregisteredAndDisconnected(t *testing.T) {
	tr, store, act := newTestTracker()

	tr.Observe([]Intersection{{Handle: "hero", Ratio: 1}})
	if len(act.calls) != 0 {
		t.Error("unconnected tracker must ignore observations")
	}

	tr.Connect()
	tr.Observe([]Intersection{{Handle: "footer", Ratio: 1}})
	if len(act.calls) != 0 || store.Navigation().Current != 0 {
		t.Error("unregistered handle must be ignored")
	}

	tr.Disconnect()
	tr.Observe([]Intersection{{Handle: "galeria", Ratio: 1}})
	if len(act.calls) != 0 {
		t.Error("disconnected tracker must ignore observations")
	}
	if tr.Connected() {
		t.Error("expected tracker disconnected")
	}
}
