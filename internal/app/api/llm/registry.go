package llm

import (
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Settings carries everything a generator constructor may need
type Settings struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration

	HTTPClient *http.Client
}

// GeneratorCreator builds a generator from settings
type GeneratorCreator func(settings Settings) (Generator, error)

var (
	generators   = make(map[string]GeneratorCreator)
	generatorsMu sync.RWMutex
)

// RegisterGenerator makes a generator available under name
func RegisterGenerator(name string, creator GeneratorCreator) {
	generatorsMu.Lock()
	defer generatorsMu.Unlock()
	generators[name] = creator
}

// CreateGenerator builds the generator registered under name
func CreateGenerator(name string, settings Settings) (Generator, error) {
	generatorsMu.RLock()
	creator, ok := generators[name]
	generatorsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("generator %s not registered", name)
	}

	g, err := creator(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s generator: %w", name, err)
	}
	return g, nil
}

// ListGenerators returns the registered generator names, sorted
func ListGenerators() []string {
	generatorsMu.RLock()
	defer generatorsMu.RUnlock()

	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
