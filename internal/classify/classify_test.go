package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavelint/wavelint/pkg/diagram"
)

func TestClassify_EachKind(t *testing.T) {
	cases := []struct {
		name string
		doc  map[string]any
		want diagram.Kind
	}{
		{"signal", map[string]any{"signal": []any{}}, diagram.KindSignal},
		{"assign", map[string]any{"assign": []any{}}, diagram.KindAssign},
		{"reg", map[string]any{"reg": []any{}}, diagram.KindReg},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := Classify(tc.doc)
			require.NoError(t, err)
			assert.Equal(t, tc.want, kind)
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// signal wins over both other keys.
	kind, err := Classify(map[string]any{
		"signal": []any{},
		"assign": []any{},
		"reg":    "anything",
	})
	require.NoError(t, err)
	assert.Equal(t, diagram.KindSignal, kind)

	// assign wins over reg when signal is absent.
	kind, err = Classify(map[string]any{
		"assign": []any{},
		"reg":    "anything",
	})
	require.NoError(t, err)
	assert.Equal(t, diagram.KindAssign, kind)
}

func TestClassify_WinningKeyIsValidatedEvenWithFallbacksPresent(t *testing.T) {
	// signal wins classification, so its shape error surfaces even though a
	// valid assign key is also present.
	_, err := Classify(map[string]any{
		"signal": "not an array",
		"assign": []any{},
	})
	require.ErrorIs(t, err, diagram.ErrSemantic)
	assert.Contains(t, err.Error(), `"signal" has to be an Array`)
}

func TestClassify_SignalMustBeArray(t *testing.T) {
	for _, value := range []any{"not an array", 42.0, map[string]any{}, true, nil} {
		_, err := Classify(map[string]any{"signal": value})
		require.ErrorIs(t, err, diagram.ErrSemantic, "value: %v", value)
		assert.Contains(t, err.Error(), `"signal" has to be an Array: "signal:[]"`)
	}
}

func TestClassify_AssignMustBeArray(t *testing.T) {
	_, err := Classify(map[string]any{"assign": map[string]any{}})
	require.ErrorIs(t, err, diagram.ErrSemantic)
	assert.Contains(t, err.Error(), `"assign" has to be an Array: "assign:[]"`)
}

func TestClassify_RegAcceptsAnyShape(t *testing.T) {
	for _, value := range []any{"anything", 1.0, map[string]any{"bits": 8.0}, nil, []any{}} {
		kind, err := Classify(map[string]any{"reg": value})
		require.NoError(t, err, "value: %v", value)
		assert.Equal(t, diagram.KindReg, kind)
	}
}

func TestClassify_NoRecognizedKey(t *testing.T) {
	_, err := Classify(map[string]any{"config": map[string]any{}, "head": map[string]any{}})
	require.ErrorIs(t, err, diagram.ErrSemantic)

	// The error names all accepted keys in priority order.
	assert.Equal(t,
		`semantic error: "signal:[...]", "assign:[...]", or "reg:[...]" property is missing inside the root Object`,
		err.Error())
}

func TestRuleOrderFollowsKinds(t *testing.T) {
	require.Len(t, rules, len(diagram.Kinds()))
	for i, kind := range diagram.Kinds() {
		assert.Equal(t, kind, rules[i].kind)
	}
}
