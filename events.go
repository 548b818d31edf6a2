package carve

// EventKind enumerates the notifications the interaction machinery emits in
// place of a UI event bus. Embedding editors subscribe to repaint, persist or
// update chrome; the core never depends on what they do.
type EventKind int

const (
	// ShapeCreated fires after placement completes a shape and it has been
	// added to the pattern.
	ShapeCreated EventKind = iota
	// ShapesModified fires after a drag gesture ends or an immediate
	// operation has changed shapes.
	ShapesModified
	// SelectionChanged fires when the selected set changes.
	SelectionChanged
)

func (k EventKind) String() string {
	switch k {
	case ShapeCreated:
		return "shape-created"
	case ShapesModified:
		return "shapes-modified"
	case SelectionChanged:
		return "selection-changed"
	}
	return "unknown"
}

// Event is the notification payload. Shape is set for ShapeCreated; Shapes
// holds the affected set for the other kinds.
type Event struct {
	Kind   EventKind
	Shape  Shape
	Shapes []Shape
}

// Listeners registers functions to be called when events fire. The zero
// value is ready to use, and a nil *Listeners swallows all calls, so event
// wiring is optional wherever it appears.
type Listeners map[EventKind][]func(Event)

// Init ensures the map is made. Called on demand by Add.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[EventKind][]func(Event))
}

// Add registers fn for the given kind.
func (ls *Listeners) Add(kind EventKind, fn func(Event)) {
	if ls == nil {
		return
	}
	ls.Init()
	(*ls)[kind] = append((*ls)[kind], fn)
}

// Notify calls the listeners registered for the event's kind, in the order
// they were added.
func (ls *Listeners) Notify(ev Event) {
	if ls == nil || *ls == nil {
		return
	}
	for _, fn := range (*ls)[ev.Kind] {
		fn(ev)
	}
}
