package commands

import "fmt"

// Status tells the command loop whether to keep going.
type Status int

const (
	// StatusExit stops the command loop.
	StatusExit Status = 0
	// StatusContinue reads the next line.
	StatusContinue Status = 1
)

// ShellBuiltin is a command run inside the shell process.
type ShellBuiltin interface {
	Main(s *Shell, cmd Command) Status
}

type ShellBuiltinFunc func(s *Shell, cmd Command) Status

func (f ShellBuiltinFunc) Main(s *Shell, cmd Command) Status {
	return f(s, cmd)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

type registryEntry struct {
	name    string
	builtin ShellBuiltin
}

// Registry is an ordered set of named builtins.
type Registry struct {
	entries []registryEntry
	index   map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a builtin after all the existing ones. Names must be unique.
func (r *Registry) Register(name string, builtin ShellBuiltin) error {
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("builtin %q already registered", name)
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, registryEntry{name: name, builtin: builtin})
	return nil
}

// Lookup finds a builtin by its exact name.
func (r *Registry) Lookup(name string) (ShellBuiltin, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.entries[i].builtin, true
}

// List returns builtin names in registration order.
func (r *Registry) List() []string {
	var out []string
	for _, e := range r.entries {
		out = append(out, e.name)
	}
	return out
}

func mustRegister(r *Registry, name string, builtin ShellBuiltinFunc) {
	if err := r.Register(name, builtin); err != nil {
		panic(err)
	}
}

// DefaultBuiltins returns the shell's standard builtins.
func DefaultBuiltins() *Registry {
	r := NewRegistry()
	mustRegister(r, "cd", Cd)
	mustRegister(r, "help", Help)
	mustRegister(r, "exit", Exit)
	mustRegister(r, "bg", Bg)
	mustRegister(r, "history", HistoryBuiltin)
	return r
}
