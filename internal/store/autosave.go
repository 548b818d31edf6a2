package store

import (
	"context"
	"encoding/json"
	"log"

	carve "github.com/bglenden/carving-designer-sub000"
)

// Autosave writes a pattern back to its stored design whenever the
// interaction layer reports a change. Failures are logged and dropped;
// persistence is advisory and never blocks editing.
type Autosave struct {
	store *Store
	id    string
	pat   *carve.Pattern
}

func NewAutosave(s *Store, id string, pat *carve.Pattern) *Autosave {
	return &Autosave{store: s, id: id, pat: pat}
}

// Attach subscribes the autosave to the pattern's events. Removal announces
// itself through SelectionChanged, so all three kinds are wired.
func (a *Autosave) Attach(events *carve.Listeners) {
	events.Add(carve.ShapeCreated, a.save)
	events.Add(carve.ShapesModified, a.save)
	events.Add(carve.SelectionChanged, a.save)
}

func (a *Autosave) save(carve.Event) {
	doc, err := json.Marshal(a.pat)
	if err != nil {
		log.Printf("autosave %s: encode: %v", a.id, err)
		return
	}
	if err := a.store.UpdateDoc(context.Background(), a.id, doc); err != nil {
		log.Printf("autosave %s: %v", a.id, err)
	}
}
