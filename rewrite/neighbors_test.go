// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qartar/algebra/expr"
)

// contains reports whether the printed form of any neighbor equals want.
func contains(neighbors []expr.Expr, want string) bool {
	for _, n := range neighbors {
		if n.String() == want {
			return true
		}
	}
	return false
}

func TestNeighborsRuleApplication(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// forward applications
		{"x + 0", "x"},
		{"x * 1", "x"},
		{"x * 0", "0"},
		{"sin(0)", "0"},
		{"cos(pi/2)", "0"},
		{"x + x", "(x * 2)"},
		{"x * x", "(x ^ 2)"},
		{"ln(e ^ x)", "log((e ^ x), e)"},
		{"log(e ^ x, e)", "x"},
		{"tan(x)", "(sin(x) / cos(x))"},
		// reverse application: the rule x + 0 = x read right to left
		{"x", "(x + 0)"},
		// rewriting inside a subtree
		{"y * (x + 0)", "(y * x)"},
		{"(x + 0) * y", "(x * y)"},
	}
	for _, tt := range tests {
		n := Neighbors(mustParse(t, tt.input))
		assert.True(t, contains(n, tt.want), "neighbors of %s should contain %s:\n%v", tt.input, tt.want, n)
	}
}

func TestNeighborsBothDirectionsOneCall(t *testing.T) {
	// x + y fires commutativity in both directions plus reverse identity
	// rules; at minimum the commuted form must be present.
	n := Neighbors(mustParse(t, "u + v"))
	assert.True(t, contains(n, "(v + u)"))
	assert.True(t, contains(n, "((u + v) + 0)"))
}

func TestNeighborsNumericFolding(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2", "3"},
		{"2 * 3", "6"},
		{"6 / 3", "2"},
		{"2 ^ 3", "8"},
		{"3 - 1", "2"},
		// difference folds to a plain negative value
		{"1 - 3", "-2"},
	}
	for _, tt := range tests {
		n := Neighbors(mustParse(t, tt.input))
		assert.True(t, contains(n, tt.want), "neighbors of %s should contain %s:\n%v", tt.input, tt.want, n)
	}
}

// Neighbors contain no placeholders and are sorted by the total order
// without duplicates.
func TestNeighborsValid(t *testing.T) {
	inputs := []string{"x + 0", "sin(x + y)", "log(x * y, b)", "x + x - x", "d/dx(x ^ 2)"}
	for _, input := range inputs {
		n := Neighbors(mustParse(t, input))
		require.NotEmpty(t, n, "input %s", input)
		for i, e := range n {
			assert.Empty(t, expr.Placeholders(e), "neighbor %s of %s", e, input)
			assert.GreaterOrEqual(t, expr.OpCount(e), 0)
			if i > 0 {
				assert.Equal(t, -1, expr.Compare(n[i-1], e), "neighbors of %s not sorted", input)
			}
		}
	}
}

// Structurally equal inputs enumerate identical neighbor sets.
func TestNeighborsMemoized(t *testing.T) {
	Reset()
	first := Neighbors(mustParse(t, "sin(x + y)"))
	size := CacheSize()
	require.Greater(t, size, 0)

	second := Neighbors(mustParse(t, "sin(x + y)"))
	assert.Equal(t, size, CacheSize())
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, expr.Equal(first[i], second[i]))
	}
}

func TestReset(t *testing.T) {
	Neighbors(mustParse(t, "x + 0"))
	require.Greater(t, CacheSize(), 0)
	Reset()
	assert.Equal(t, 0, CacheSize())
}
