package system

import (
	"testing"

	"starfield/internal/component"
	"starfield/internal/ecs"
	"starfield/internal/factory"

	"github.com/gdamore/tcell/v2"
)

func pressKeys(w *ecs.World, id ecs.EntityID, keys ...tcell.Key) {
	in := component.NewInputState()
	for _, k := range keys {
		in.Pressed[k] = true
	}
	w.Add(id, in)
}

func accelOf(t *testing.T, w *ecs.World, id ecs.EntityID) component.Acceleration {
	t.Helper()
	c := w.Get(id, component.CAcceleration)
	if c == nil {
		t.Fatal("player lost its acceleration component")
	}
	return c.(component.Acceleration)
}

func TestInputSingleKey(t *testing.T) {
	w := ecs.NewWorld()
	id := factory.NewPlayer(w, 0, 0, "t")
	pressKeys(w, id, tcell.KeyRight)

	if err := (Input{}).Process(w, 0.016); err != nil {
		t.Fatalf("process: %v", err)
	}
	acc := accelOf(t, w, id)
	if acc.AX != InputAccel || acc.AY != 0 {
		t.Fatalf("acceleration (%v,%v), want (%v,0)", acc.AX, acc.AY, InputAccel)
	}
}

func TestInputDiagonalComposesAdditively(t *testing.T) {
	w := ecs.NewWorld()
	id := factory.NewPlayer(w, 0, 0, "t")
	pressKeys(w, id, tcell.KeyLeft, tcell.KeyUp)

	if err := (Input{}).Process(w, 0.016); err != nil {
		t.Fatalf("process: %v", err)
	}
	acc := accelOf(t, w, id)
	if acc.AX != -InputAccel || acc.AY != -InputAccel {
		t.Fatalf("acceleration (%v,%v), want (-%v,-%v)", acc.AX, acc.AY, InputAccel, InputAccel)
	}
}

func TestInputOpposedKeysCancel(t *testing.T) {
	w := ecs.NewWorld()
	id := factory.NewPlayer(w, 0, 0, "t")
	pressKeys(w, id, tcell.KeyLeft, tcell.KeyRight)

	if err := (Input{}).Process(w, 0.016); err != nil {
		t.Fatalf("process: %v", err)
	}
	acc := accelOf(t, w, id)
	if acc.AX != 0 {
		t.Fatalf("opposed keys should cancel, got AX=%v", acc.AX)
	}
}

func TestInputAccumulatesAcrossTicks(t *testing.T) {
	// Deltas stack on the existing acceleration; nothing decays them.
	w := ecs.NewWorld()
	id := factory.NewPlayer(w, 0, 0, "t")
	pressKeys(w, id, tcell.KeyDown)

	for i := 0; i < 3; i++ {
		if err := (Input{}).Process(w, 0.016); err != nil {
			t.Fatalf("process: %v", err)
		}
	}
	acc := accelOf(t, w, id)
	if acc.AY != 3*InputAccel {
		t.Fatalf("acceleration AY=%v after three ticks, want %v", acc.AY, 3*InputAccel)
	}
}

func TestInputIgnoresReleasedAndNonPlayers(t *testing.T) {
	w := ecs.NewWorld()

	// Released keys do nothing.
	player := factory.NewPlayer(w, 0, 0, "t")
	in := component.NewInputState()
	in.Released[tcell.KeyLeft] = true
	w.Add(player, in)

	// An entity with input and acceleration but no Player tag is ignored.
	npc := w.CreateEntity()
	w.Add(npc, component.Acceleration{})
	npcIn := component.NewInputState()
	npcIn.Pressed[tcell.KeyRight] = true
	w.Add(npc, npcIn)

	if err := (Input{}).Process(w, 0.016); err != nil {
		t.Fatalf("process: %v", err)
	}
	if acc := accelOf(t, w, player); acc.AX != 0 || acc.AY != 0 {
		t.Fatalf("released key changed acceleration: %+v", acc)
	}
	if acc := w.Get(npc, component.CAcceleration).(component.Acceleration); acc.AX != 0 {
		t.Fatalf("untagged entity accelerated: %+v", acc)
	}
}
