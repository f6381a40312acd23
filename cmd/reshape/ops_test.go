package main

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/fixseq/errors"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		op   string
		seq  string
		want string
		p    params
	}{
		{"split", "split", "1,2,3,4,5", "[1 2] [3 4 5]", params{m: 2}},
		{"rsplit", "rsplit", "1,2,3,4,5", "[1 2 3] [4 5]", params{m: 2}},
		{"chunks", "chunks", "0 1 2 3 4", "[[0 1] [2 3]] rest=[4]", params{m: 2}},
		{"rchunks", "rchunks", "0 1 2 3 4", "rest=[0] [[1 2] [3 4]]", params{m: 2}},
		{"chunks_exact", "chunks-exact", "1,2,3,4", "[[1 2] [3 4]]", params{m: 2}},
		{"spread", "spread", "0,1,2,3,4,5,6", "[[0 3 6] [1 4] [2 5]]", params{m: 3}},
		{"spread_exact", "spread-exact", "0,1,2,3", "[[0 2] [1 3]]", params{m: 2}},
		{"transpose", "transpose", "1,2,3,4,5,6", "[[1 4] [2 5] [3 6]]", params{h: 2, w: 3}},
		{"rotate_left", "rotate-left", "1,2,3,4", "[3 4 1 2]", params{n: 2}},
		{"rotate_right", "rotate-right", "1,2,3,4", "[4 1 2 3]", params{n: 1}},
		{"shift_left", "shift-left", "1,2,3", "[2 3 9] out=1", params{n: 9}},
		{"shift_right", "shift-right", "1,2,3", "[9 1 2] out=3", params{n: 9}},
		{"truncate", "truncate", "1,2,3", "[1 2]", params{m: 2}},
		{"rtruncate", "rtruncate", "1,2,3", "[2 3]", params{m: 2}},
		{"extend", "extend", "1,2", "[1 2 7 7]", params{m: 4, n: 7}},
		{"rextend", "rextend", "1,2", "[7 7 1 2]", params{m: 4, n: 7}},
		{"resize_shrink", "resize", "1,2,3", "[1]", params{m: 1}},
		{"rresize_shrink", "rresize", "1,2,3", "[3]", params{m: 1}},
		{"sum", "sum", "1,2,3", "6", params{}},
		{"min_empty", "min", "", "none", params{}},
		{"argmax", "argmax", "3,9,9,1", "1", params{}},
		{"diff", "diff", "1,4,9,16", "[3 5 7]", params{}},
		{"integrate", "integrate", "1,2,3", "[1 3 6]", params{}},
		{"grid", "grid", "1,2,3,4", "[2 2][1 2 3 4]", params{h: 2, w: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := apply(tc.op, tc.seq, tc.p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		op   string
		seq  string
		kind errors.Kind
		p    params
	}{
		{"unknown_op", "explode", "1", errors.KindInvalidInput, params{}},
		{"bad_element", "sum", "1,x", errors.KindInvalidData, params{}},
		{"split_too_long", "split", "1,2", errors.KindShapeMismatch, params{m: 3}},
		{"chunks_exact_ragged", "chunks-exact", "1,2,3", errors.KindShapeMismatch, params{m: 2}},
		{"transpose_wrong_area", "transpose", "1,2,3", errors.KindShapeMismatch, params{h: 2, w: 2}},
		{"diff_empty", "diff", "", errors.KindShapeMismatch, params{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := apply(tc.op, tc.seq, tc.p)
			var e *errors.Error
			require.True(t, stderrors.As(err, &e), "want *errors.Error, got %v", err)
			assert.Equal(t, tc.kind, e.Kind)
		})
	}
}

func TestEveryOperationIsReachable(t *testing.T) {
	for _, op := range operations {
		got, ok := lookup(op.name)
		require.True(t, ok, op.name)
		assert.Equal(t, op.name, got.name)
		assert.NotNil(t, got.run, op.name)
	}
}

func TestListOperationsPlain(t *testing.T) {
	out := listOperations(false)
	assert.NotContains(t, out, "\x1b[")
	for _, op := range operations {
		assert.Contains(t, out, op.name)
	}
	assert.True(t, strings.HasPrefix(out, "Operations\n"))
}

func TestReadParams(t *testing.T) {
	mk := func(v string) textinput.Model {
		ti := textinput.New()
		ti.SetValue(v)
		return ti
	}

	p, err := readParams([]string{"h", "w"}, []textinput.Model{mk("2"), mk(" 3 ")})
	require.NoError(t, err)
	assert.Equal(t, params{h: 2, w: 3}, p)

	_, err = readParams([]string{"m"}, []textinput.Model{mk("two")})
	require.Error(t, err)
}

func TestInteractiveFlow(t *testing.T) {
	m := newInteractiveModel("1,2,3,4")
	m.selected = 0 // split

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stateInputArgs, m.state)
	require.Len(t, m.inputs, 2)
	m.inputs[1].SetValue("1")

	msg := m.run()
	_, _ = m.Update(msg)
	require.Equal(t, stateShowResult, m.state)
	require.NoError(t, m.err)
	assert.Equal(t, "[1] [2 3 4]", m.result)
	assert.Contains(t, m.View(), "Result of")

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateSelectOp, m.state)
}
