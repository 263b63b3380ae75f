package cetane

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Migration is a named, ordered bundle of operations with declared
// dependencies. Its identity is Name; it is immutable once registered.
type Migration struct {
	Name       string
	DependsOn  []string
	Atomic     bool
	Operations []Operation
}

// NewMigration builds a migration with Atomic defaulting to true, matching
// the data model's stated default.
func NewMigration(name string, dependsOn []string, operations ...Operation) *Migration {
	return &Migration{
		Name:       name,
		DependsOn:  append([]string(nil), dependsOn...),
		Atomic:     true,
		Operations: operations,
	}
}

// NonAtomic flips the migration's atomic flag off, opting it out of
// transactional framing in migrate_forward_with_transactions.
func (m *Migration) NonAtomic() *Migration {
	m.Atomic = false
	return m
}

// IsReversible reports whether every operation in the migration has a
// concrete reverse, i.e. whether migrate_backward can roll it back.
func (m *Migration) IsReversible() bool {
	for _, op := range m.Operations {
		if _, ok := op.Reverse(); !ok {
			return false
		}
	}
	return true
}

// Checksum is a sha256 digest over the migration's deterministic
// operation description, exposed for drift detection by a caller-supplied
// wrapper (the migrator itself does not enforce a match).
func (m *Migration) Checksum() string {
	var sb strings.Builder
	sb.WriteString(m.Name)
	sb.WriteByte('\n')
	for _, dep := range m.DependsOn {
		sb.WriteString(dep)
		sb.WriteByte(',')
	}
	sb.WriteByte('\n')
	for _, op := range m.Operations {
		sb.WriteString(op.describe())
		sb.WriteByte('\n')
	}
	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

// reverseOperations returns the migration's operations reversed, each
// replaced by its inverse, in reverse declaration order: rolling back a
// migration undoes its last operation first. Callers must check
// IsReversible first.
func (m *Migration) reverseOperations() []Operation {
	out := make([]Operation, 0, len(m.Operations))
	for i := len(m.Operations) - 1; i >= 0; i-- {
		rev, ok := m.Operations[i].Reverse()
		if !ok {
			return nil
		}
		out = append(out, rev)
	}
	return out
}

// Registry holds migrations by name and resolves a valid execution order.
type Registry struct {
	byName map[string]*Migration
	order  []string // insertion order, for stable iteration when needed
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Migration)}
}

// Register adds a migration. Registering the same name twice fails with
// a DuplicateName error.
func (r *Registry) Register(m *Migration) error {
	if _, exists := r.byName[m.Name]; exists {
		return duplicateNameErr(m.Name)
	}
	r.byName[m.Name] = m
	r.order = append(r.order, m.Name)
	return nil
}

// Get returns the registered migration by name, or nil if absent.
func (r *Registry) Get(name string) *Migration {
	return r.byName[name]
}

// Len reports the number of registered migrations.
func (r *Registry) Len() int {
	return len(r.byName)
}

// ResolveOrder performs a deterministic topological sort over the
// registered migrations: Kahn's algorithm with a lexicographic tie-break
// among nodes at in-degree zero, so the resolved order is reproducible
// across runs.
func (r *Registry) ResolveOrder() ([]*Migration, error) {
	inDegree := make(map[string]int, len(r.byName))
	dependents := make(map[string][]string, len(r.byName))

	for name := range r.byName {
		inDegree[name] = 0
	}
	for name, m := range r.byName {
		for _, dep := range m.DependsOn {
			if _, ok := r.byName[dep]; !ok {
				return nil, missingDependencyErr(name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var ready []string
	for name, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	result := make([]*Migration, 0, len(r.byName))
	for len(ready) > 0 {
		sort.Strings(ready)
		name := ready[0]
		ready = ready[1:]
		result = append(result, r.byName[name])

		nextReady := make([]string, 0)
		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				nextReady = append(nextReady, dependent)
			}
		}
		sort.Strings(nextReady)
		ready = append(ready, nextReady...)
	}

	if len(result) != len(r.byName) {
		var residual []string
		done := make(map[string]bool, len(result))
		for _, m := range result {
			done[m.Name] = true
		}
		for name := range r.byName {
			if !done[name] {
				residual = append(residual, name)
			}
		}
		sort.Strings(residual)
		return nil, cycleErr(residual)
	}

	return result, nil
}
