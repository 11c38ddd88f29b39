package models

// InputRegistry maps a path name to the input served under it.
// It is built once at startup and only read afterwards.
type InputRegistry map[string]*Input

// OutputRegistry maps a path name to the output served under it.
// It is built once at startup and only read afterwards.
type OutputRegistry map[string]*Output

// NewInputRegistry indexes inputs by name. When two inputs share a name the
// later one wins.
func NewInputRegistry(inputs []*Input) InputRegistry {
	registry := make(InputRegistry, len(inputs))
	for _, input := range inputs {
		registry[input.Name] = input
	}
	return registry
}

// NewOutputRegistry indexes outputs by name. When two outputs share a name
// the later one wins.
func NewOutputRegistry(outputs []*Output) OutputRegistry {
	registry := make(OutputRegistry, len(outputs))
	for _, output := range outputs {
		registry[output.Name] = output
	}
	return registry
}

// Lookup returns the input registered under name.
func (r InputRegistry) Lookup(name string) (*Input, bool) {
	input, ok := r[name]
	return input, ok
}

// Lookup returns the output registered under name.
func (r OutputRegistry) Lookup(name string) (*Output, bool) {
	output, ok := r[name]
	return output, ok
}
