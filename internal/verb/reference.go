package verb

import (
	"fmt"
	"strings"

	"github.com/ashgrove/grue/internal/parse"
	"github.com/ashgrove/grue/internal/util"
	"github.com/ashgrove/grue/internal/version"
	"github.com/ashgrove/grue/internal/world"
)

// directionByName inverts world.Direction.String() for the handful of
// directions a room's Exits map is keyed by.
var directionByName = func() map[string]world.Direction {
	m := make(map[string]world.Direction)
	all := []world.Direction{
		world.DirNorth, world.DirSouth, world.DirEast, world.DirWest,
		world.DirNortheast, world.DirNorthwest, world.DirSoutheast, world.DirSouthwest,
		world.DirUp, world.DirDown, world.DirIn, world.DirOut,
	}
	for _, d := range all {
		m[d.String()] = d
	}
	return m
}()

// NewReference builds a Registry carrying the GO, LOOK/EXAMINE, TAKE, DROP,
// PUT...IN/ON, OPEN, CLOSE, READ, INVENTORY, TALK TO, HELP, and meta-verb
// (SCORE/VERBOSE/BRIEF/SUPERBRIEF/VERSION) reference set described in
// SPEC_FULL.md §6. READ carries the Take LocMask bit so the auto-take path
// of §4.6.3 has a handler that actually drives it: reading an unheld,
// takeable object picks it up first and prints the "(Taken)" note.
func NewReference() *Registry {
	r := NewRegistry()

	r.AddPrep("in", []string{"in", "inside", "into"})
	r.AddPrep("on", []string{"on", "onto", "upon"})
	r.AddPrep("to", []string{"to"})

	anywhere := parse.Held | parse.Carried | parse.InRoom | parse.OnGround

	r.AddVerb("go", []string{"go", "walk", "move"}, parse.Template{
		NumObjects: 0, Action: "go", ObjectConsuming: false,
	})
	r.AddHandler("go", handleGo)

	r.AddVerb("look", []string{"look", "l"}, parse.Template{
		NumObjects: 0, Action: "look",
	})
	r.AddHandler("look", handleLook)

	r.AddVerb("examine", []string{"examine", "x", "inspect"}, parse.Template{
		NumObjects: 1, Loc1: anywhere, Action: "examine", ObjectConsuming: true,
	})
	r.AddHandler("examine", handleExamine)

	r.AddVerb("take", []string{"take", "get", "grab"}, parse.Template{
		NumObjects: 1, Loc1: anywhere | parse.Many, Action: "take", ObjectConsuming: true,
	})
	r.AddHandler("take", handleTake)

	r.AddVerb("drop", []string{"drop", "discard"}, parse.Template{
		NumObjects: 1, Loc1: parse.Held | parse.Many | parse.Have, Action: "drop", ObjectConsuming: true,
	})
	r.AddHandler("drop", handleDrop)

	r.AddVerb("put", []string{"put", "place", "insert"},
		parse.Template{
			NumObjects: 2, Prep2: "in",
			Loc1: anywhere, Loc2: parse.InRoom, GWIM2: "container",
			Action: "put_in",
		},
		parse.Template{
			NumObjects: 2, Prep2: "on",
			Loc1: anywhere, Loc2: parse.InRoom, GWIM2: "surface",
			Action: "put_on",
		},
	)
	r.AddHandler("put_in", handlePutIn)
	r.AddHandler("put_on", handlePutOn)

	r.AddVerb("open", []string{"open"}, parse.Template{
		NumObjects: 1, Loc1: parse.Held | parse.InRoom | parse.OnGround, Action: "open", ObjectConsuming: true,
	})
	r.AddHandler("open", handleOpen)

	r.AddVerb("close", []string{"close", "shut"}, parse.Template{
		NumObjects: 1, Loc1: parse.Held | parse.InRoom | parse.OnGround, Action: "close", ObjectConsuming: true,
	})
	r.AddHandler("close", handleClose)

	r.AddVerb("read", []string{"read"}, parse.Template{
		NumObjects: 1, Loc1: anywhere | parse.Take, Action: "read", ObjectConsuming: true,
	})
	r.AddHandler("read", handleRead)

	r.AddVerb("inventory", []string{"inventory", "i"}, parse.Template{
		NumObjects: 0, Action: "inventory",
	})
	r.AddHandler("inventory", handleInventory)

	r.AddVerb("talk", []string{"talk", "speak"}, parse.Template{
		NumObjects: 1, Prep1: "to", Loc1: parse.InRoom, GWIM1: "actor", Action: "talk", ObjectConsuming: true,
	})
	r.AddHandler("talk", handleTalk)

	r.AddVerb("help", []string{"help"}, parse.Template{NumObjects: 0, Action: "help", Meta: true})
	r.AddHandler("help", handleHelp)

	for _, m := range []string{"score", "verbose", "brief", "superbrief", "version"} {
		m := m
		r.AddVerb(m, []string{m}, parse.Template{NumObjects: 0, Action: m, Meta: true})
		r.AddHandler(m, metaHandler(m))
	}

	return r
}

func thingName(w *world.State, id world.ThingID) string {
	if t, ok := w.GetThing(id); ok {
		return t.Name
	}
	return string(id)
}

func handleGo(w *world.State, intent parse.Intent) parse.Result {
	dir, ok := directionByName[intent.Direction]
	if !ok {
		return parse.Result{Output: "You can't go that way.\n"}
	}
	here := w.Here()
	dest, ok := w.Exit(here, dir)
	if !ok {
		return parse.Result{Output: "You can't go that way.\n"}
	}
	w.SetHere(dest)
	return parse.Result{Output: describeRoom(w, dest)}
}

func describeRoom(w *world.State, room world.ThingID) string {
	t, ok := w.GetThing(room)
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteString("\n")
	b.WriteString(t.Description)
	b.WriteString("\n")

	var visible []string
	for _, id := range w.ContentsOf(room) {
		if w.HasFlag(id, world.FlagInvisible) {
			continue
		}
		visible = append(visible, thingName(w, id))
	}
	if len(visible) > 0 {
		b.WriteString("You can see ")
		b.WriteString(util.MakeTextList(visible))
		b.WriteString(" here.\n")
	}
	return b.String()
}

func handleLook(w *world.State, intent parse.Intent) parse.Result {
	return parse.Result{Output: describeRoom(w, w.Here())}
}

func handleExamine(w *world.State, intent parse.Intent) parse.Result {
	id, ok := intent.Prso.Single()
	if !ok {
		return parse.Result{Output: "You don't see that here.\n"}
	}
	t, _ := w.GetThing(id)
	if t == nil || t.Description == "" {
		return parse.Result{Output: "You see nothing special.\n"}
	}
	return parse.Result{Output: t.Description + "\n"}
}

func handleRead(w *world.State, intent parse.Intent) parse.Result {
	id, ok := intent.Prso.Single()
	if !ok {
		return parse.Result{Output: "Read what?\n"}
	}
	t, _ := w.GetThing(id)
	if t == nil || t.Description == "" {
		return parse.Result{Output: "There's nothing written on it.\n"}
	}
	return parse.Result{Output: t.Description + "\n"}
}

func handleTake(w *world.State, intent parse.Intent) parse.Result {
	if len(intent.Prso.IDs) == 0 {
		return parse.Result{Output: "Take what?\n"}
	}
	multi := len(intent.Prso.IDs) > 1
	var parts []string
	for _, id := range intent.Prso.IDs {
		loc, held := w.LocationOf(id)
		var verdict string
		switch {
		case held && loc == w.Winner():
			verdict = "You already have that."
		case !w.HasFlag(id, world.FlagTake):
			verdict = "It is securely anchored."
		default:
			if err := w.Move(id, w.Winner()); err != nil {
				verdict = "You can't take that."
			} else {
				w.SetFlag(id, world.FlagTouch, true)
				verdict = "Taken."
			}
		}
		if multi {
			parts = append(parts, fmt.Sprintf("%s: %s", thingName(w, id), verdict))
		} else {
			parts = append(parts, verdict)
		}
	}
	return parse.Result{Output: strings.Join(parts, " ") + "\n"}
}

func handleDrop(w *world.State, intent parse.Intent) parse.Result {
	var parts []string
	for _, id := range intent.Prso.IDs {
		w.Move(id, w.Here())
		parts = append(parts, thingName(w, id)+": Dropped.")
	}
	if len(parts) == 1 {
		return parse.Result{Output: "Dropped.\n"}
	}
	return parse.Result{Output: strings.Join(parts, " ") + "\n"}
}

func handlePutIn(w *world.State, intent parse.Intent) parse.Result {
	item, ok1 := intent.Prso.Single()
	container, ok2 := intent.Prsi.Single()
	if !ok1 || !ok2 {
		return parse.Result{Output: "Put what in what?\n"}
	}
	if !w.HasFlag(container, world.FlagContainer) {
		return parse.Result{Output: fmt.Sprintf("You can't put anything in the %s.\n", thingName(w, container))}
	}
	if !w.HasFlag(container, world.FlagOpen) {
		return parse.Result{Output: fmt.Sprintf("The %s is closed.\n", thingName(w, container))}
	}
	w.Move(item, container)
	return parse.Result{Output: "Done.\n"}
}

func handlePutOn(w *world.State, intent parse.Intent) parse.Result {
	item, ok1 := intent.Prso.Single()
	surface, ok2 := intent.Prsi.Single()
	if !ok1 || !ok2 {
		return parse.Result{Output: "Put what on what?\n"}
	}
	if !w.HasFlag(surface, world.FlagSurface) {
		return parse.Result{Output: fmt.Sprintf("You can't put anything on the %s.\n", thingName(w, surface))}
	}
	w.Move(item, surface)
	return parse.Result{Output: "Done.\n"}
}

func handleOpen(w *world.State, intent parse.Intent) parse.Result {
	id, ok := intent.Prso.Single()
	if !ok {
		return parse.Result{Output: "Open what?\n"}
	}
	if w.HasFlag(id, world.FlagOpen) {
		return parse.Result{Output: fmt.Sprintf("The %s is already open.\n", thingName(w, id))}
	}
	w.SetFlag(id, world.FlagOpen, true)
	return parse.Result{Output: "Opened.\n"}
}

func handleClose(w *world.State, intent parse.Intent) parse.Result {
	id, ok := intent.Prso.Single()
	if !ok {
		return parse.Result{Output: "Close what?\n"}
	}
	if !w.HasFlag(id, world.FlagOpen) {
		return parse.Result{Output: fmt.Sprintf("The %s is already closed.\n", thingName(w, id))}
	}
	w.SetFlag(id, world.FlagOpen, false)
	return parse.Result{Output: "Closed.\n"}
}

func handleInventory(w *world.State, intent parse.Intent) parse.Result {
	var names []string
	for _, id := range w.ContentsOf(w.Player()) {
		names = append(names, thingName(w, id))
	}
	if len(names) == 0 {
		return parse.Result{Output: "You are carrying nothing.\n"}
	}
	return parse.Result{Output: "You are carrying " + util.MakeTextList(names) + ".\n"}
}

func handleTalk(w *world.State, intent parse.Intent) parse.Result {
	id, ok := intent.Prso.Single()
	if !ok {
		return parse.Result{Output: "Talk to whom?\n"}
	}
	if !w.HasFlag(id, world.FlagActor) {
		return parse.Result{Output: fmt.Sprintf("The %s has nothing to say.\n", thingName(w, id))}
	}
	return parse.Result{Output: fmt.Sprintf("The %s doesn't seem interested in talking right now.\n", thingName(w, id))}
}

func handleHelp(w *world.State, intent parse.Intent) parse.Result {
	return parse.Result{Output: "Try commands like LOOK, TAKE, DROP, OPEN, CLOSE, INVENTORY, and compass directions.\n"}
}

func metaHandler(name string) parse.Handler {
	return func(w *world.State, intent parse.Intent) parse.Result {
		switch name {
		case "score":
			return parse.Result{Output: "Your score is 0 (total of 0 points), in 0 moves.\n"}
		case "verbose":
			return parse.Result{Output: "Maximum verbosity.\n"}
		case "brief":
			return parse.Result{Output: "Brief descriptions.\n"}
		case "superbrief":
			return parse.Result{Output: "Superbrief descriptions.\n"}
		case "version":
			return parse.Result{Output: fmt.Sprintf("grue engine version %s\n", version.Current)}
		}
		return parse.Result{}
	}
}
