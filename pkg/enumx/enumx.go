package enumx

import "fmt"

// Member pairs an enum value with its name.
type Member[T comparable] struct {
	Name  string
	Value T
}

// M is a shorthand Member constructor for registry literals.
func M[T comparable](name string, value T) Member[T] {
	return Member[T]{Name: name, Value: value}
}

// Registry holds the members of one enumeration in definition order and
// answers name/value queries about it. Go's const-based enums carry no
// runtime metadata; a Registry declared next to the consts restores the
// usual reflection-style conveniences.
type Registry[T comparable] struct {
	members []Member[T]
	byValue map[T]int
	byName  map[string]int
}

// NewRegistry builds a registry from members. Duplicate names or values
// are rejected: each would make reverse lookups ambiguous.
func NewRegistry[T comparable](members ...Member[T]) (*Registry[T], error) {
	r := &Registry[T]{
		members: members,
		byValue: make(map[T]int, len(members)),
		byName:  make(map[string]int, len(members)),
	}
	for i, m := range members {
		if _, ok := r.byName[m.Name]; ok {
			return nil, fmt.Errorf("enumx: duplicate member name %q", m.Name)
		}
		if _, ok := r.byValue[m.Value]; ok {
			return nil, fmt.Errorf("enumx: duplicate member value %v", m.Value)
		}
		r.byName[m.Name] = i
		r.byValue[m.Value] = i
	}
	return r, nil
}

// MustNewRegistry is NewRegistry that panics on error, for package-level
// registry variables where a duplicate is a programming mistake.
func MustNewRegistry[T comparable](members ...Member[T]) *Registry[T] {
	r, err := NewRegistry(members...)
	if err != nil {
		panic(err)
	}
	return r
}

// Names returns all member names in definition order.
func (r *Registry[T]) Names() []string {
	names := make([]string, len(r.members))
	for i, m := range r.members {
		names[i] = m.Name
	}
	return names
}

// Values returns all member values in definition order.
func (r *Registry[T]) Values() []T {
	values := make([]T, len(r.members))
	for i, m := range r.members {
		values[i] = m.Value
	}
	return values
}

// Members returns a copy of the member list in definition order.
func (r *Registry[T]) Members() []Member[T] {
	return append([]Member[T]{}, r.members...)
}

// Len returns the number of members.
func (r *Registry[T]) Len() int {
	return len(r.members)
}

// ContainsValue reports whether any member has the given value.
func (r *Registry[T]) ContainsValue(value T) bool {
	_, ok := r.byValue[value]
	return ok
}

// NameOf returns the name of the member with the given value.
func (r *Registry[T]) NameOf(value T) (string, bool) {
	i, ok := r.byValue[value]
	if !ok {
		return "", false
	}
	return r.members[i].Name, true
}

// ValueOf returns the value of the member with the given name.
func (r *Registry[T]) ValueOf(name string) (T, bool) {
	i, ok := r.byName[name]
	if !ok {
		var zero T
		return zero, false
	}
	return r.members[i].Value, true
}

// MemberOf returns the full member with the given value.
func (r *Registry[T]) MemberOf(value T) (Member[T], bool) {
	i, ok := r.byValue[value]
	if !ok {
		return Member[T]{}, false
	}
	return r.members[i], true
}
