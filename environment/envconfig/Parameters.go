package envconfig

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// EnvPrefix is prepended to upper-cased parameter names when reading
// parameters from environment variables, e.g. angle -> TENNIS_ANGLE
const EnvPrefix = "TENNIS_"

// Parameters is a named store of float parameters shared by every
// court in a run. Parameters is safe for concurrent use.
type Parameters struct {
	mu     sync.RWMutex
	values map[string]float64
}

// NewParameters returns a new Parameters holding a copy of values
func NewParameters(values map[string]float64) *Parameters {
	p := &Parameters{values: make(map[string]float64, len(values))}
	for name, value := range values {
		p.values[name] = value
	}
	return p
}

// Parameter returns the value of the named parameter, or def if it has
// not been set
func (p *Parameters) Parameter(name string, def float64) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if value, ok := p.values[name]; ok {
		return value
	}
	return def
}

// Set sets the named parameter
func (p *Parameters) Set(name string, value float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[name] = value
}

// Unset removes the named parameter so that readers fall back to their
// defaults
func (p *Parameters) Unset(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.values, name)
}

// Keys returns the names of all set parameters in sorted order
func (p *Parameters) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	keys := make([]string, 0, len(p.values))
	for name := range p.values {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of all set parameters
func (p *Parameters) Snapshot() map[string]float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	values := make(map[string]float64, len(p.values))
	for name, value := range p.values {
		values[name] = value
	}
	return values
}

// FromEnv overrides the named parameters with the values of their
// environment variables, if set. An error is returned if a variable
// cannot be parsed as a float, in which case no parameter is changed.
func (p *Parameters) FromEnv(names ...string) error {
	return p.fromLookup(os.LookupEnv, names...)
}

func (p *Parameters) fromLookup(lookup func(string) (string, bool),
	names ...string) error {
	parsed := make(map[string]float64)
	for _, name := range names {
		key := EnvPrefix + strings.ToUpper(name)
		raw, ok := lookup(key)
		if !ok {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("fromEnv: could not parse %v: %w", key, err)
		}
		parsed[name] = value
	}

	for name, value := range parsed {
		p.Set(name, value)
	}
	return nil
}
