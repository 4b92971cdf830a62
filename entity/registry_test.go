package entity

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/magic-lab/physics"
	"github.com/lixenwraith/magic-lab/vmath"
)

// flakyWorld fails body creation after a fixed number of successes
type flakyWorld struct {
	*physics.Space
	budget int
}

var errNoBodies = errors.New("no bodies left")

func (w *flakyWorld) CreateBody(mass float64, shape physics.Shape, pos vmath.Vec3F) (physics.BodyID, error) {
	if w.budget <= 0 {
		return physics.BodyID{}, errNoBodies
	}
	w.budget--
	return w.Space.CreateBody(mass, shape, pos)
}

func newTestRegistry() (*Registry, *physics.Space) {
	space := physics.NewSpace(physics.DefaultSpaceConfig())
	return NewRegistry(space, rand.New(rand.NewSource(3))), space
}

func TestRespawnIdempotent(t *testing.T) {
	r, space := newTestRegistry()

	for round := 0; round < 2; round++ {
		if err := r.Respawn(7, 10); err != nil {
			t.Fatalf("Respawn failed: %v", err)
		}
		if r.Len() != 7 {
			t.Errorf("Round %d: expected 7 entities, got %d", round, r.Len())
		}
		if space.BodyCount() != 7 {
			t.Errorf("Round %d: expected 7 bodies, got %d", round, space.BodyCount())
		}
	}
}

func TestRespawnSpawnBox(t *testing.T) {
	r, _ := newTestRegistry()
	r.Respawn(30, 4)

	for _, e := range r.Live() {
		p := e.Physics.Position
		if math.Abs(p.X) > 4 || math.Abs(p.Z) > 4 {
			t.Errorf("Entity %d outside spawn box: %+v", e.ID, p)
		}
		if p.Y < 1 || p.Y >= 6 {
			t.Errorf("Entity %d outside height band: %+v", e.ID, p)
		}
	}
}

func TestRespawnClampsInvalidInput(t *testing.T) {
	r, space := newTestRegistry()

	if err := r.Respawn(-5, 10); err != nil {
		t.Fatalf("Respawn failed: %v", err)
	}
	if r.Len() != 0 || space.BodyCount() != 0 {
		t.Errorf("Expected negative count clamped to 0, got %d entities", r.Len())
	}

	if err := r.Respawn(3, -1); err != nil {
		t.Fatalf("Respawn failed: %v", err)
	}
	for _, e := range r.Live() {
		if math.Abs(e.Physics.Position.X) > 1e-3 {
			t.Errorf("Expected radius clamped to epsilon, got %+v", e.Physics.Position)
		}
	}
}

func TestRespawnRollsBackOnFailure(t *testing.T) {
	world := &flakyWorld{Space: physics.NewSpace(physics.DefaultSpaceConfig()), budget: 3}
	r := NewRegistry(world, rand.New(rand.NewSource(1)))

	err := r.Respawn(5, 10)
	if !errors.Is(err, ErrRespawn) || !errors.Is(err, errNoBodies) {
		t.Fatalf("Expected wrapped respawn error, got %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("Expected empty registry after failure, got %d", r.Len())
	}
	if world.BodyCount() != 0 {
		t.Errorf("Expected leaked bodies released, got %d", world.BodyCount())
	}
}

func TestRemoveStaleIsNoop(t *testing.T) {
	r, space := newTestRegistry()
	r.Respawn(2, 5)
	id := r.Live()[0].ID

	if _, ok := r.Remove(id); !ok {
		t.Fatal("Expected first removal to succeed")
	}
	if _, ok := r.Remove(id); ok {
		t.Error("Expected second removal to report false")
	}
	if space.BodyCount() != 1 {
		t.Errorf("Expected 1 body left, got %d", space.BodyCount())
	}

	r.Respawn(2, 5)
	if _, ok := r.Get(id); ok {
		t.Error("Expected stale ID to stay dead after respawn")
	}
}

func TestRemoveShatters(t *testing.T) {
	r, space := newTestRegistry()
	r.Respawn(3, 5)

	var target *Entity
	for _, e := range r.Live() {
		if e.Kind == KindTarget {
			target = e
		}
	}
	if target == nil {
		t.Fatal("Expected a target among respawned entities")
	}
	last := target.Physics.Position

	frags, ok := r.Remove(target.ID)
	if !ok {
		t.Fatal("Expected removal to succeed")
	}
	if len(frags) != target.Fragments.Count {
		t.Fatalf("Expected %d fragments, got %d", target.Fragments.Count, len(frags))
	}
	if r.Len() != 2+len(frags) || space.BodyCount() != r.Len() {
		t.Errorf("Registry/body mismatch: %d entities, %d bodies", r.Len(), space.BodyCount())
	}

	for _, id := range frags {
		f, ok := r.Get(id)
		if !ok {
			t.Fatalf("Fragment %d not live", id)
		}
		if f.Kind != KindFragment || f.TTL <= 0 {
			t.Errorf("Fragment %d has kind %v ttl %f", id, f.Kind, f.TTL)
		}
		if vmath.V3FDist(f.Physics.Position, last) > target.HalfExtent {
			t.Errorf("Fragment spawned too far from parent: %+v", f.Physics.Position)
		}
		st, _ := space.State(f.Body())
		if vmath.V3FMag(st.Velocity) == 0 {
			t.Errorf("Fragment %d was not kicked", id)
		}
		if f.Fragments != nil {
			t.Errorf("Fragment %d must not shatter again", id)
		}
	}
}

func TestExpireFragments(t *testing.T) {
	r, space := newTestRegistry()
	r.Respawn(3, 5)
	frags, _ := r.Remove(r.Live()[2].ID)

	if got := r.Expire(1.0); len(got) != 0 {
		t.Errorf("Expected no expiry after 1s, got %v", got)
	}
	got := r.Expire(5.0)
	if len(got) != len(frags) {
		t.Errorf("Expected %d fragments expired, got %d", len(frags), len(got))
	}
	if r.Len() != 2 || space.BodyCount() != 2 {
		t.Errorf("Expected only base entities left, got %d entities %d bodies", r.Len(), space.BodyCount())
	}
}

func TestSyncVisualsLayersCosmetics(t *testing.T) {
	r, space := newTestRegistry()
	r.Respawn(2, 5)

	book := r.Live()[1]
	if book.Kind != KindBook {
		t.Fatalf("Expected second entity to be a book, got %v", book.Kind)
	}
	space.ApplyImpulse(book.Body(), vmath.Vec3F{X: 6}, book.Physics.Position)
	space.Step(1.0/60, 1.0/60, 1)

	elapsed := 0.4
	r.SyncVisuals(elapsed)

	st, _ := space.State(book.Body())
	if book.Physics.Position != st.Position {
		t.Errorf("Expected physics transform synced from body, got %+v want %+v", book.Physics.Position, st.Position)
	}
	wantBob := math.Sin(elapsed*1.7+book.Phase) * 0.15
	if math.Abs(book.Visual.Position.Y-(st.Position.Y+wantBob)) > 1e-9 {
		t.Errorf("Expected bob %f on visual, got %f", wantBob, book.Visual.Position.Y-st.Position.Y)
	}

	after, _ := space.State(book.Body())
	if after.Position != st.Position {
		t.Error("Cosmetic motion leaked into physics body")
	}

	box := r.Live()[0]
	if box.Visual != box.Physics {
		t.Error("Expected box visual to equal physics transform")
	}
}

func TestSyncVisualsSkipsMissingBody(t *testing.T) {
	r, space := newTestRegistry()
	r.Respawn(1, 5)
	e := r.Live()[0]
	before := e.Physics

	space.RemoveBody(e.Body())
	if synced := r.SyncVisuals(1); synced != 0 {
		t.Errorf("Expected 0 synced, got %d", synced)
	}
	if e.Physics != before {
		t.Error("Expected last transform kept for missing body")
	}
}
