package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParse_Empty(t *testing.T) {
	result := Parse("   ")
	assert.Equal(t, "", result.Command)
	assert.Nil(t, result.Args)
}

func TestParse_SingleWord(t *testing.T) {
	result := Parse("sheet")
	assert.Equal(t, "sheet", result.Command)
	assert.Nil(t, result.Args)
	assert.Equal(t, "", result.RawArgs)
}

func TestParse_Lowercase(t *testing.T) {
	assert.Equal(t, "weather", Parse("WEATHER Winter").Command)
}

func TestParse_ExtraWhitespace(t *testing.T) {
	result := Parse("  set   name   Old  Wren  ")
	assert.Equal(t, "set", result.Command)
	assert.Equal(t, []string{"name", "Old", "Wren"}, result.Args)
	assert.Equal(t, "name   Old  Wren", result.RawArgs)
}

func TestParse_TabSeparated(t *testing.T) {
	result := Parse("roll\t2d6")
	assert.Equal(t, "roll", result.Command)
	assert.Equal(t, []string{"2d6"}, result.Args)
}

func TestTail(t *testing.T) {
	result := Parse("set equipment rope,  lantern and  flint")
	assert.Equal(t, "equipment rope,  lantern and  flint", result.Tail(0))
	assert.Equal(t, "rope,  lantern and  flint", result.Tail(1))
	assert.Equal(t, "", Parse("set name").Tail(1))
	assert.Equal(t, "", Parse("set").Tail(1))
}

func TestPropertyParseAlwaysLowercasesCommand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[A-Za-z]{1,20}`).Draw(t, "word")
		result := Parse(word)
		for _, c := range result.Command {
			if c >= 'A' && c <= 'Z' {
				t.Fatalf("command %q contains uppercase char in Parse result %q", word, result.Command)
			}
		}
	})
}

func TestPropertyTailOfFirstArgMatchesRemainingFields(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}`), 2, 6).Draw(t, "words")
		line := "set"
		for _, w := range words {
			line += " " + w
		}
		result := Parse(line)
		want := words[1]
		for _, w := range words[2:] {
			want += " " + w
		}
		if got := result.Tail(1); got != want {
			t.Fatalf("Tail(1) of %q = %q, want %q", line, got, want)
		}
	})
}
