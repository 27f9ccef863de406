package provider

import (
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Settings carries everything a provider constructor may need
type Settings struct {
	APIKey    string
	BaseURL   string
	Model     string
	Tier      string
	Language  string
	Punctuate bool
	Timeout   time.Duration

	// HTTPClient overrides the client used for API calls (tests, proxies)
	HTTPClient *http.Client
}

// ProviderCreator is a function that creates a provider from settings
type ProviderCreator func(settings Settings) (TranscriptionProvider, error)

// providerRegistry stores provider creation functions
var (
	providerRegistry = make(map[string]ProviderCreator)
	registryMutex    sync.RWMutex
)

// RegisterProvider registers a provider creator function
func RegisterProvider(providerType string, creator ProviderCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	providerRegistry[providerType] = creator
}

// GetProviderCreator returns the creator function for a provider type
func GetProviderCreator(providerType string) (ProviderCreator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := providerRegistry[providerType]
	if !ok {
		return nil, fmt.Errorf("provider type %s not registered", providerType)
	}
	return creator, nil
}

// CreateProvider builds and validates a registered provider
func CreateProvider(providerType string, settings Settings) (TranscriptionProvider, error) {
	creator, err := GetProviderCreator(providerType)
	if err != nil {
		return nil, err
	}

	p, err := creator(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", providerType, err)
	}
	if err := p.ValidateConfiguration(); err != nil {
		return nil, fmt.Errorf("invalid %s provider configuration: %w", providerType, err)
	}
	return p, nil
}

// ListRegisteredProviders returns all registered provider types, sorted
func ListRegisteredProviders() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	providers := make([]string, 0, len(providerRegistry))
	for providerType := range providerRegistry {
		providers = append(providers, providerType)
	}
	sort.Strings(providers)
	return providers
}
