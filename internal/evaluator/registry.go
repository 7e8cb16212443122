package evaluator

import "fmt"

// defines a function that creates a new evaluator instance
type Factory func() (Evaluator, error)

// global registry of available evaluator strategies
var evaluators = make(map[string]Factory)

// Register registers an evaluator factory under the given name.
func Register(name string, factory Factory) {
	evaluators[name] = factory
}

// New creates an evaluator instance based on the given name.
func New(name string) (Evaluator, error) {
	factory, exists := evaluators[name]
	if !exists {
		return nil, fmt.Errorf("unsupported evaluator: %s", name)
	}
	return factory()
}
