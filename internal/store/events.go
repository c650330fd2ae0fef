package store

import "fjacquet/csv-presets/internal/models"

// EventKind identifies what changed in the PresetManager.
type EventKind int

const (
	// EventSelectionChanged fires after the selected preset was switched and
	// its document reloaded.
	EventSelectionChanged EventKind = iota
	// EventPresetsChanged fires after a preset was added, deleted or renamed.
	EventPresetsChanged
)

func (k EventKind) String() string {
	switch k {
	case EventSelectionChanged:
		return "selection-changed"
	case EventPresetsChanged:
		return "presets-changed"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers. Presets and Document are copies.
type Event struct {
	Kind     EventKind
	Selected string
	Presets  []string
	Document models.PresetDocument
}

type subscription struct {
	id int
	fn func(Event)
}
