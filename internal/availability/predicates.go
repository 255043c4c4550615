package availability

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
)

// Predicate evaluates one named condition. args is the space-separated argument
// string from the entry's condition map, already split.
type Predicate func(ctx context.Context, args []string, fc domain.FishingContext) bool

// PredicateRegistry maps condition names to predicates. Names are case-insensitive.
type PredicateRegistry struct {
	mu         sync.RWMutex
	predicates map[string]Predicate
}

// NewPredicateRegistry creates an empty registry
func NewPredicateRegistry() *PredicateRegistry {
	return &PredicateRegistry{predicates: make(map[string]Predicate)}
}

// Register adds or replaces a predicate
func (r *PredicateRegistry) Register(name string, fn Predicate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.predicates[strings.ToUpper(name)] = fn
}

// Lookup finds a predicate by name
func (r *PredicateRegistry) Lookup(name string) (Predicate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.predicates[strings.ToUpper(name)]
	return fn, ok
}

// Names returns the registered names in sorted order
func (r *PredicateRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.predicates))
	for name := range r.predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suggest returns the closest registered name, if any is close enough
func (r *PredicateRegistry) Suggest(name string) (string, bool) {
	upper := strings.ToUpper(name)
	best, bestDist := "", maxSuggestionDistance+1
	for _, candidate := range r.Names() {
		if d := levenshtein.ComputeDistance(upper, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best, best != ""
}

// unknownPredicateError builds ErrUnknownPredicate with a suggestion when one exists
func (r *PredicateRegistry) unknownPredicateError(name string) error {
	if suggestion, ok := r.Suggest(name); ok {
		return fmt.Errorf(ErrMsgDidYouMeanFormat, domain.ErrUnknownPredicate, name, suggestion)
	}
	return fmt.Errorf(ErrMsgUnknownPredicateFormat, domain.ErrUnknownPredicate, name)
}

// parseCondition splits "!NAME" into ("NAME", true)
func parseCondition(key string) (string, bool) {
	key = strings.TrimSpace(key)
	if rest, ok := strings.CutPrefix(key, PredicateNegationPrefix); ok {
		return strings.TrimSpace(rest), true
	}
	return key, false
}
