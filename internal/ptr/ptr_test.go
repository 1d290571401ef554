package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClone(t *testing.T) {
	val := "info"

	assert.Nil(t, Clone[string](nil))

	out := Clone(&val)
	assert.Equal(t, val, *out)
	assert.NotSame(t, &val, out)
}

func TestCloneOr(t *testing.T) {
	set, fallback := 10, 5

	tcs := []struct {
		name     string
		input    *int
		fallback *int
		assert   func(t *testing.T, output *int)
	}{
		{
			name:     "set wins",
			input:    &set,
			fallback: &fallback,
			assert: func(t *testing.T, output *int) {
				assert.Equal(t, 10, *output)
				assert.NotSame(t, &set, output)
			},
		},
		{
			name:     "fallback used",
			input:    nil,
			fallback: &fallback,
			assert: func(t *testing.T, output *int) {
				assert.Equal(t, 5, *output)
				assert.NotSame(t, &fallback, output)
			},
		},
		{
			name:     "both nil",
			input:    nil,
			fallback: nil,
			assert: func(t *testing.T, output *int) {
				assert.Nil(t, output)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tc.assert(t, CloneOr(tc.input, tc.fallback))
		})
	}
}

func TestCloneSliceOr(t *testing.T) {
	tcs := []struct {
		name     string
		input    []int32
		fallback []int32
		expect   []int32
	}{
		{"input set", []int32{1, 2}, []int32{9}, []int32{1, 2}},
		{"empty input is still set", []int32{}, []int32{9}, []int32{}},
		{"nil input", nil, []int32{9}, []int32{9}},
		{"both nil", nil, nil, nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out := CloneSliceOr(tc.input, tc.fallback)
			assert.Equal(t, tc.expect, out)
			if len(out) > 0 && len(tc.input) > 0 {
				assert.NotSame(t, &tc.input[0], &out[0])
			}
		})
	}
}

func TestFromPtrOr(t *testing.T) {
	silent := true

	assert.True(t, FromPtrOr(&silent, false))
	assert.False(t, FromPtrOr[bool](nil, false))
	assert.Equal(t, "> ", FromPtrOr[string](nil, "> "))
}
