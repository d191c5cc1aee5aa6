package tourguide

import (
	"encoding/json"
	"fmt"
)

// saveData is the persisted form of a tour. The step index and state are
// stored as their literal numeric values.
type saveData struct {
	State            State             `json:"state"`
	Steps            []Step            `json:"steps"`
	CurrentStepIndex int               `json:"currentStepIndex"`
	Options          Options           `json:"options"`
	TextVariables    map[string]string `json:"textVariables"`
}

// Save serializes the tour to its session store under the tour name.
func (t *Tour) Save() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.store == nil {
		return fmt.Errorf("tour %q has no session store", t.name)
	}
	data, err := json.Marshal(saveData{
		State:            t.state,
		Steps:            t.steps,
		CurrentStepIndex: t.index,
		Options:          t.opts,
		TextVariables:    t.vars,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal tour %q: %w", t.name, err)
	}
	return t.store.Save(t.name, data)
}

// Load reconstructs a tour from the session store, positioned at the saved
// step with the saved options and text variables. The tour is returned in
// the configuring state and is not auto-started: the caller invokes Start
// to resume at the saved step. A malformed blob propagates as a parse
// error.
func Load(name string, layout Layout, store Store) (*Tour, error) {
	blob, err := store.Load(name)
	if err != nil {
		return nil, err
	}

	var sd saveData
	if err := json.Unmarshal(blob, &sd); err != nil {
		return nil, fmt.Errorf("failed to parse saved tour %q: %w", name, err)
	}

	t := New(name, sd.Steps, layout)
	t.store = store
	t.opts = sd.Options
	t.index = sd.CurrentStepIndex
	if sd.TextVariables != nil {
		t.vars = sd.TextVariables
	}
	return t, nil
}
