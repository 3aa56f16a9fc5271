// Package environ holds the environment snapshot handed to the client
// layer. The snapshot is taken once at startup; later changes to the process
// environment are not reflected.
package environ

import (
	"os"
	"sort"
	"strings"
)

// Environ is a name to value mapping. Not safe for concurrent use; it is
// built during bootstrap and then owned by a single consumer.
type Environ struct {
	vars map[string]string
}

// New returns an empty environment.
func New() *Environ {
	return &Environ{vars: make(map[string]string)}
}

// Snapshot captures the current process environment plus a computed PWD
// entry when the working directory is known.
func Snapshot() *Environ {
	e := New()
	for _, kv := range os.Environ() {
		e.Put(kv)
	}
	if wd, err := os.Getwd(); err == nil {
		e.Set("PWD", wd)
	}
	return e
}

// Put parses a KEY=value entry. Entries without "=" are ignored.
func (e *Environ) Put(kv string) {
	name, value, ok := strings.Cut(kv, "=")
	if !ok || name == "" {
		return
	}
	e.vars[name] = value
}

func (e *Environ) Set(name, value string) {
	e.vars[name] = value
}

func (e *Environ) Get(name string) (string, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environ) Unset(name string) {
	delete(e.vars, name)
}

func (e *Environ) Len() int {
	return len(e.vars)
}

// List returns KEY=value entries sorted by name.
func (e *Environ) List() []string {
	out := make([]string, 0, len(e.vars))
	for name, value := range e.vars {
		out = append(out, name+"="+value)
	}
	sort.Strings(out)
	return out
}
