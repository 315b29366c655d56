package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Len(t, r.Commands(), len(BuiltinCommands()))
}

func TestResolve_CanonicalName(t *testing.T) {
	cmd, ok := DefaultRegistry().Resolve("check")
	require.True(t, ok)
	assert.Equal(t, HandlerCheck, cmd.Handler)
}

func TestResolve_Alias(t *testing.T) {
	r := DefaultRegistry()
	for alias, name := range map[string]string{"yn": "yesno", "q": "quit", "?": "help", "reset": "new", "st": "sheet"} {
		cmd, ok := r.Resolve(alias)
		require.True(t, ok, alias)
		assert.Equal(t, name, cmd.Name)
	}
}

func TestResolve_NotFound(t *testing.T) {
	_, ok := DefaultRegistry().Resolve("teleport")
	assert.False(t, ok)
}

func TestEveryCommandHasHandlerUsageAndKnownCategory(t *testing.T) {
	known := map[string]bool{}
	for _, c := range CategoryOrder {
		known[c] = true
	}
	for _, cmd := range BuiltinCommands() {
		assert.NotEmpty(t, cmd.Handler, cmd.Name)
		assert.NotEmpty(t, cmd.Usage, cmd.Name)
		assert.NotEmpty(t, cmd.Help, cmd.Name)
		assert.True(t, known[cmd.Category], "%s has unknown category %q", cmd.Name, cmd.Category)
	}
}

func TestCommandsSortedByName(t *testing.T) {
	cmds := DefaultRegistry().Commands()
	for i := 1; i < len(cmds); i++ {
		assert.Less(t, cmds[i-1].Name, cmds[i].Name)
	}
}

func TestCommandsByCategory(t *testing.T) {
	byCat := DefaultRegistry().CommandsByCategory()
	total := 0
	for _, cmds := range byCat {
		total += len(cmds)
	}
	assert.Equal(t, len(BuiltinCommands()), total)
	assert.NotEmpty(t, byCat[CategoryOracle])
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	_, err := NewRegistry([]Command{{Name: "save"}, {Name: "save"}})
	assert.ErrorIs(t, err, ErrKeyTaken)
}

func TestNewRegistry_AliasConflictsWithName(t *testing.T) {
	_, err := NewRegistry([]Command{{Name: "save"}, {Name: "store", Aliases: []string{"save"}}})
	assert.ErrorIs(t, err, ErrKeyTaken)
	assert.Contains(t, err.Error(), `"store"`)
}

func TestNewRegistry_NameConflictsWithAlias(t *testing.T) {
	_, err := NewRegistry([]Command{{Name: "store", Aliases: []string{"save"}}, {Name: "save"}})
	assert.ErrorIs(t, err, ErrKeyTaken)
}

func TestNewRegistry_DuplicateAlias(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "save", Aliases: []string{"s"}},
		{Name: "sheet", Aliases: []string{"s"}},
	})
	assert.True(t, errors.Is(err, ErrKeyTaken))
	assert.Contains(t, err.Error(), `held by "save"`)
}

func TestCommands_ReturnsCopy(t *testing.T) {
	r := DefaultRegistry()
	cmds := r.Commands()
	cmds[0] = nil
	assert.NotNil(t, r.Commands()[0])
}

func TestPropertyUnknownCommandsDoNotResolve(t *testing.T) {
	r := DefaultRegistry()
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`zz[a-z]{1,10}`).Draw(t, "name")
		if _, ok := r.Resolve(name); ok {
			t.Fatalf("unexpected resolution of %q", name)
		}
	})
}
