package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames_Order(t *testing.T) {
	assert.Equal(t, []string{"Blind 75", "LeetCode 75", "NeetCode 150"}, Names())
}

func TestListSizes(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{Blind75, 75},
		{LeetCode75, 75},
		{NeetCode150, 150},
	}
	for _, tt := range tests {
		l, err := Get(tt.name)
		require.NoError(t, err)
		if len(l.Problems) != tt.want {
			t.Errorf("%s: got %d problems, want %d", tt.name, len(l.Problems), tt.want)
		}
	}
}

func TestDifficultyBreakdown_Blind75(t *testing.T) {
	counts := make(map[Difficulty]int)
	for _, pr := range Problems(Blind75) {
		counts[pr.Difficulty]++
	}
	assert.Equal(t, 19, counts[Easy])
	assert.Equal(t, 49, counts[Medium])
	assert.Equal(t, 7, counts[Hard])
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("Grind 169")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownList))
}

func TestGet_ReturnsCopy(t *testing.T) {
	l, err := Get(Blind75)
	require.NoError(t, err)
	l.Problems[0].Title = "mutated"
	l.Problems[0].Topics[0] = "mutated"

	again, err := Get(Blind75)
	require.NoError(t, err)
	assert.Equal(t, "Two Sum", again.Problems[0].Title)
	assert.Equal(t, "Array", again.Problems[0].Topics[0])
}

func TestLookup(t *testing.T) {
	pr, err := Lookup(NeetCode150, "trapping-rain-water")
	require.NoError(t, err)
	assert.Equal(t, "Trapping Rain Water", pr.Title)
	assert.Equal(t, Hard, pr.Difficulty)
	assert.Equal(t, "https://leetcode.com/problems/trapping-rain-water/", pr.URL())

	_, err = Lookup(Blind75, "trapping-rain-water")
	assert.ErrorIs(t, err, ErrUnknownProblem)

	_, err = Lookup("nope", "two-sum")
	assert.ErrorIs(t, err, ErrUnknownList)
}

func TestRoadmap(t *testing.T) {
	assert.Equal(t, "https://neetcode.io/roadmap", Roadmap(NeetCode150))
	assert.Equal(t, "", Roadmap("unknown"))
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	problems := []Problem{
		p("a", "A", Easy, "Stack", "Array"),
		p("b", "B", Easy, "Array", "Tree"),
		p("c", "C", Easy, "Stack"),
	}
	assert.Equal(t, []string{"Stack", "Array", "Tree"}, Categories(problems))
}

func TestCategories_Blind75StartsWithArray(t *testing.T) {
	cats := Categories(Problems(Blind75))
	require.NotEmpty(t, cats)
	assert.Equal(t, "Array", cats[0])
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("medium")
	require.NoError(t, err)
	assert.Equal(t, Medium, d)

	_, err = ParseDifficulty("impossible")
	assert.Error(t, err)
}

func TestValidateLists_ReportsAllProblems(t *testing.T) {
	lists := []List{
		{Name: "dup", Problems: []Problem{
			p("x", "X", Easy, "T"),
			p("x", "", "Trivial"),
		}},
		{Name: "dup"},
	}
	err := validateLists(lists)
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		`duplicate list name: "dup"`,
		`list "dup" has no problems`,
		`problem "x": duplicate ID`,
		`problem "x": empty title`,
		`invalid difficulty "Trivial"`,
		`problem "x": no topics`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("validation error missing %q:\n%s", want, msg)
		}
	}
}

func TestValidateLists_Seeds(t *testing.T) {
	for _, name := range Names() {
		l, err := Get(name)
		require.NoError(t, err)
		assert.NoError(t, validateLists([]List{l}))
	}
}
