package lint

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sofmeright/lintcompose/src/detect"
)

// Topic is the interface every rule-table builder implements.
type Topic interface {
	Name() string

	// DefaultEnabled applies when the caller leaves the topic unset and
	// AutoDetect returns nothing.
	DefaultEnabled() bool

	// AutoDetect lists requirements that switch the topic on when unset.
	// Any satisfied requirement enables it.
	AutoDetect() []detect.Requirement

	// Build returns the topic's fragments with opts layered on.
	Build(opts TopicOptions) []Fragment
}

type registration struct {
	priority    int
	constructor func() Topic
}

var (
	registryMu sync.RWMutex
	registry   = map[string]registration{}
)

// Register adds a topic constructor to the global registry.
// Called from init() in each topic file. Priority fixes the topic's position
// in the composed sequence; lower values come first.
func Register(name string, priority int, constructor func() Topic) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("lint: duplicate topic registration: %s", name))
	}
	registry[name] = registration{priority: priority, constructor: constructor}
}

// Get returns a new instance of the named topic.
func Get(name string) (Topic, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	reg, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("lint: unknown topic: %s", name)
	}
	return reg.constructor(), nil
}

// Known reports whether a topic is registered.
func Known(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// All returns the names of every registered topic in priority order.
func All() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := registry[names[i]].priority, registry[names[j]].priority
		if pi != pj {
			return pi < pj
		}
		return names[i] < names[j]
	})
	return names
}
