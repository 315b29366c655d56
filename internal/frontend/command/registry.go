package command

import (
	"errors"
	"fmt"
	"sort"
)

// ErrKeyTaken is wrapped by NewRegistry when a name or alias is claimed twice.
var ErrKeyTaken = errors.New("command key already taken")

// Registry indexes the console commands by every word that invokes them.
type Registry struct {
	byKey  map[string]*Command // name or alias → command
	sorted []*Command
}

// NewRegistry indexes cmds by name and alias.
// It fails when any word would invoke two different commands.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{byKey: make(map[string]*Command, len(cmds)*2)}
	for i := range cmds {
		cmd := &cmds[i]
		keys := append([]string{cmd.Name}, cmd.Aliases...)
		for _, key := range keys {
			if owner, taken := r.byKey[key]; taken {
				return nil, fmt.Errorf("%w: %q wanted by %q, held by %q", ErrKeyTaken, key, cmd.Name, owner.Name)
			}
			r.byKey[key] = cmd
		}
		r.sorted = append(r.sorted, cmd)
	}
	sort.Slice(r.sorted, func(i, j int) bool { return r.sorted[i].Name < r.sorted[j].Name })
	return r, nil
}

// DefaultRegistry indexes BuiltinCommands. The built-in table is static, so a
// collision there is a programming error and panics.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("command: builtin table: %v", err))
	}
	return r
}

// Resolve finds the console command invoked by word, which may be a name or an alias.
func (r *Registry) Resolve(word string) (*Command, bool) {
	cmd, ok := r.byKey[word]
	return cmd, ok
}

// Commands lists every command once, ordered by name.
func (r *Registry) Commands() []*Command {
	return append([]*Command(nil), r.sorted...)
}

// CommandsByCategory groups Commands by help category, keeping name order.
func (r *Registry) CommandsByCategory() map[string][]*Command {
	groups := make(map[string][]*Command)
	for _, cmd := range r.sorted {
		groups[cmd.Category] = append(groups[cmd.Category], cmd)
	}
	return groups
}
