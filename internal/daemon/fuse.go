package daemon

import "github.com/ashgrove/grue/internal/world"

// LightFuse counts down a light source's remaining fuel, warning the player
// as it runs low and snuffing the light out (clearing FlagOn) when it
// expires. Grounded on the teacher's lamp-battery fuse idea, generalized to
// any FlagLight-bearing thing.
type LightFuse struct {
	id     string
	Light  world.ThingID
	Turns  int
	warned bool
}

// NewLightFuse builds a fuse that burns down over turns turns of the named
// light source being lit.
func NewLightFuse(id string, light world.ThingID, turns int) *LightFuse {
	return &LightFuse{id: id, Light: light, Turns: turns}
}

func (f *LightFuse) ID() string { return f.id }

// Fire decrements the fuse only while the light is switched on, printing a
// low-fuel warning once and a burnout message when it reaches zero.
func (f *LightFuse) Fire(w *world.State) (string, bool) {
	if !w.HasFlag(f.Light, world.FlagOn) {
		return "", false
	}
	f.Turns--
	switch {
	case f.Turns <= 0:
		w.SetFlag(f.Light, world.FlagOn, false)
		w.SetFlag(f.Light, world.FlagLit, false)
		return "Your light has gone out.\n", true
	case f.Turns <= 10 && !f.warned:
		f.warned = true
		return "Your light is getting dim.\n", false
	default:
		return "", false
	}
}
