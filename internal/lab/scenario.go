// Package lab runs named failure scenarios: small self-contained programs
// that drive the check layer into one specific passing or failing state.
package lab

import (
	"context"
	"fmt"
	"sync"

	"github.com/mwichro/dealab/internal/exc"
)

// Scenario is one runnable situation. Run either returns normally or fails
// a check; the runner turns both into an Outcome.
type Scenario struct {
	Name  string
	About string
	Run   func(ctx context.Context) error
}

var (
	regMu    sync.RWMutex
	registry = make(map[string]Scenario)
	order    []string
)

// Register adds a scenario to the package registry. Names must be unique.
// Registration normally happens at init time.
func Register(s Scenario) {
	regMu.Lock()
	defer regMu.Unlock()
	exc.AssertThrow(s.Name != "", `s.Name != ""`, exc.InvalidState())
	_, dup := registry[s.Name]
	exc.AssertThrow(!dup, "!dup",
		exc.Message("scenario "+s.Name+" is already registered"))
	registry[s.Name] = s
	order = append(order, s.Name)
}

// Get looks up a scenario by name.
func Get(name string) (Scenario, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	s, ok := registry[name]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario: %s", name)
	}
	return s, nil
}

// Names returns all registered scenario names in registration order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, len(order))
	copy(names, order)
	return names
}
