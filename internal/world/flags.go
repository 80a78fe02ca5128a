package world

// Flag is one bit of a Thing's behavior: whether it can be taken, whether
// it's a container, open, transparent, a surface, searchable, invisible, a
// light source, switched on, lit, an actor, has been touched, a door, or
// (on the player) dead.
type Flag uint

const (
	FlagTake Flag = iota
	FlagContainer
	FlagOpen
	FlagTransparent
	FlagSurface
	FlagSearch
	FlagInvisible
	FlagLight
	FlagOn
	FlagLit
	FlagActor
	FlagTouch
	FlagDoor
	FlagDead

	numFlags
)

// FlagSet is a bitset over Flag.
type FlagSet uint64

func (fs FlagSet) has(f Flag) bool {
	return fs&(1<<f) != 0
}

func (fs FlagSet) with(f Flag, v bool) FlagSet {
	if v {
		return fs | (1 << f)
	}
	return fs &^ (1 << f)
}

// NewFlagSet builds a FlagSet from the given flags, all set true.
func NewFlagSet(flags ...Flag) FlagSet {
	var fs FlagSet
	for _, f := range flags {
		fs = fs.with(f, true)
	}
	return fs
}
