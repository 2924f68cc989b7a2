package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nested enumerates [begin, end) with plain nested loops as a reference.
func nested(begin, end []int) [][]int {
	var out [][]int
	var walk func(prefix []int, axis int)
	walk = func(prefix []int, axis int) {
		if axis == len(begin) {
			out = append(out, Clone(prefix))
			return
		}
		for i := begin[axis]; i < end[axis]; i++ {
			walk(append(prefix, i), axis+1)
		}
	}
	walk(nil, 0)
	return out
}

func collect(r *Range) [][]int {
	var out [][]int
	for r.Next() {
		out = append(out, Clone(r.Current()))
	}
	return out
}

func reversed(in [][]int) [][]int {
	out := make([][]int, len(in))
	for i := range in {
		out[len(in)-1-i] = in[i]
	}
	return out
}

func TestRange(t *testing.T) {
	tests := []struct {
		name  string
		begin []int
		end   []int
	}{
		{"1D", []int{0}, []int{125}},
		{"1D offset", []int{10258}, []int{10300}},
		{"2D", []int{0, 0}, []int{15, 17}},
		{"2D offset", []int{100, 1560}, []int{120, 1587}},
		{"3D", []int{0, 0, 0}, []int{9, 7, 5}},
		{"3D offset", []int{12000, 15000, 158220}, []int{12003, 15004, 158227}},
		{"4D", []int{0, 0, 0, 0}, []int{3, 4, 2, 5}},
		{"4D offset", []int{30, 300, 3000, 30000}, []int{32, 303, 3002, 30004}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := nested(tt.begin, tt.end)

			fwd, err := NewRange(tt.begin, tt.end, false)
			require.NoError(t, err)
			assert.Equal(t, want, collect(fwd))

			rev, err := NewRange(tt.begin, tt.end, true)
			require.NoError(t, err)
			assert.True(t, rev.Reverse())
			assert.Equal(t, reversed(want), collect(rev))
		})
	}
}

func TestRange_Empty(t *testing.T) {
	tests := []struct {
		name  string
		begin []int
		end   []int
	}{
		{"equal", []int{2, 2}, []int{2, 2}},
		{"one axis empty", []int{0, 3}, []int{5, 3}},
		{"inverted", []int{4, 4}, []int{1, 1}},
		{"zero length", []int{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, reverse := range []bool{false, true} {
				r, err := NewRange(tt.begin, tt.end, reverse)
				require.NoError(t, err)
				assert.False(t, r.Next())
				r.Reset()
				assert.False(t, r.Next(), "reset must keep an empty range exhausted")
			}
		})
	}
}

func TestRange_LengthMismatch(t *testing.T) {
	_, err := NewRange([]int{0}, []int{1, 2}, false)
	assert.Error(t, err)
}

func TestRange_TerminalAndReset(t *testing.T) {
	r := Over([]int{2, 2})

	first := collect(r)
	require.Len(t, first, 4)

	assert.False(t, r.Next(), "exhausted range stays exhausted")
	assert.False(t, r.Next())

	r.Reset()
	assert.Equal(t, first, collect(r))
}

func TestRange_ResetMidway(t *testing.T) {
	r := Over([]int{3})

	require.True(t, r.Next())
	require.True(t, r.Next())
	assert.Equal(t, []int{1}, r.Current())

	r.Reset()
	require.True(t, r.Next())
	assert.Equal(t, []int{0}, r.Current())
}

func TestRange_DoesNotAliasInputs(t *testing.T) {
	begin := []int{0, 0}
	end := []int{2, 2}

	r, err := NewRange(begin, end, false)
	require.NoError(t, err)
	collect(r)

	assert.Equal(t, []int{0, 0}, begin)
	assert.Equal(t, []int{2, 2}, end)
}
