package world

// ZorkOpening is a small fixture world (not authored game content, just
// enough rooms and objects for the pipeline scenarios and the auto-take
// path; it has no surface or actor things) mirroring the opening of the
// classic game this engine is
// modeled on: a house exterior with a mailbox and leaflet, and a living room
// with a lamp, sword, and trophy case.
type ZorkOpening struct {
	State *State

	Player ThingID

	WestOfHouse  ThingID
	NorthOfHouse ThingID
	ForestPath   ThingID
	LivingRoom   ThingID

	Mailbox ThingID
	Leaflet ThingID
	Lamp    ThingID
	Sword   ThingID
	Case    ThingID
	Trophy  ThingID
}

// NewZorkOpening builds the fixture, seeded for deterministic randomness.
// The player starts in WestOfHouse.
func NewZorkOpening(seed int64) *ZorkOpening {
	s := NewState(seed)
	z := &ZorkOpening{State: s}

	mkRoom := func(label, name, desc string) ThingID {
		t := &Thing{
			ID: NewThingID(), Label: label, Name: name, Description: desc,
			IsRoom: true, Exits: make(map[Direction]Exit),
		}
		s.AddThing(t, "")
		return t.ID
	}

	z.WestOfHouse = mkRoom("WEST-OF-HOUSE", "West of House",
		"You are standing in an open field west of a white house, with a boarded front door.")
	z.NorthOfHouse = mkRoom("NORTH-OF-HOUSE", "North of House",
		"You are facing the north side of a white house. There is no door here, and all the windows are boarded.")
	z.ForestPath = mkRoom("FOREST-PATH", "Forest Path",
		"This is a path winding through a dimly lit forest.")
	z.LivingRoom = mkRoom("LIVING-ROOM", "Living Room",
		"You are in the living room. There is a doorway to the east, a wooden door with strange gothic lettering to the west, and a trophy case.")

	room := func(id ThingID) *Thing { t, _ := s.GetThing(id); return t }
	room(z.WestOfHouse).Exits[DirNorth] = Exit{Dest: z.NorthOfHouse}
	room(z.NorthOfHouse).Exits[DirSouth] = Exit{Dest: z.WestOfHouse}
	room(z.NorthOfHouse).Exits[DirEast] = Exit{Dest: z.ForestPath}
	room(z.ForestPath).Exits[DirWest] = Exit{Dest: z.NorthOfHouse}

	z.Player = NewThingID()
	s.AddThing(&Thing{
		ID: z.Player, Label: "PLAYER", Name: "yourself",
		Description: "As good-looking as ever.",
		Synonyms:    []string{"self", "yourself"},
	}, "")
	s.SetPlayer(z.Player)
	s.SetWinner(z.Player)
	s.SetHere(z.WestOfHouse)

	z.Mailbox = NewThingID()
	s.AddThing(&Thing{
		ID: z.Mailbox, Label: "MAILBOX", Name: "small mailbox",
		Description: "It's a small mailbox.",
		Synonyms:    []string{"mailbox", "box"},
		Adjectives:  []string{"small"},
		StaticFlags: NewFlagSet(FlagContainer, FlagOpen),
	}, z.WestOfHouse)

	z.Leaflet = NewThingID()
	s.AddThing(&Thing{
		ID: z.Leaflet, Label: "LEAFLET", Name: "leaflet",
		Description: "\"WELCOME TO ZORK!\n\nZORK is a game of adventure, danger, and low cunning.\"",
		Synonyms:    []string{"leaflet", "paper"},
		StaticFlags: NewFlagSet(FlagTake),
	}, z.Mailbox)

	frontDoor := NewThingID()
	s.AddThing(&Thing{
		ID: frontDoor, Label: "FRONT-DOOR", Name: "front door",
		Description: "The door is boarded and you can't remove the boards.",
		Synonyms:    []string{"door"},
		Adjectives:  []string{"front", "boarded"},
	}, "")
	s.AddRoomLocal(z.WestOfHouse, frontDoor)

	z.Case = NewThingID()
	s.AddThing(&Thing{
		ID: z.Case, Label: "TROPHY-CASE", Name: "trophy case",
		Description: "The trophy case is empty.",
		Synonyms:    []string{"case"},
		Adjectives:  []string{"trophy"},
		StaticFlags: NewFlagSet(FlagContainer, FlagTransparent),
	}, z.LivingRoom)

	z.Lamp = NewThingID()
	s.AddThing(&Thing{
		ID: z.Lamp, Label: "BRASS-LANTERN", Name: "brass lantern",
		Description: "A battery-powered brass lantern is here.",
		Synonyms:    []string{"lantern", "lamp"},
		Adjectives:  []string{"brass"},
		StaticFlags: NewFlagSet(FlagTake, FlagLight),
	}, z.LivingRoom)

	z.Sword = NewThingID()
	s.AddThing(&Thing{
		ID: z.Sword, Label: "SWORD", Name: "sword",
		Description: "A sword of Elvish workmanship is here.",
		Synonyms:    []string{"sword"},
		StaticFlags: NewFlagSet(FlagTake),
	}, z.LivingRoom)

	z.Trophy = NewThingID()
	s.AddThing(&Thing{
		ID: z.Trophy, Label: "JEWELED-EGG", Name: "jeweled egg",
		Description: "A delicate jeweled egg sits here.",
		Synonyms:    []string{"egg"},
		Adjectives:  []string{"jeweled"},
		StaticFlags: NewFlagSet(FlagTake),
	}, z.Case)

	s.AddGlobal(skyThing(s))

	return z
}

func skyThing(s *State) ThingID {
	id := NewThingID()
	s.AddThing(&Thing{
		ID: id, Label: "SKY", Name: "sky",
		Description: "It's just the sky.",
		Synonyms:    []string{"sky"},
	}, "")
	return id
}
