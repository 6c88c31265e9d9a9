package config

import (
	"context"
	"testing"

	"github.com/specialistvlad/stepadapter/internal/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_AddStepRejectsDuplicates(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.AddStep(&Step{Name: "train", Source: "a.hcl:1,1-13"}))

	err := m.AddStep(&Step{Name: "train", Source: "b.hcl:4,1-13"})
	require.EqualError(t, err, "step 'train' declared at b.hcl:4,1-13 was already declared at a.hcl:1,1-13")
}

func TestModel_Adapter(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.AddStep(&Step{
		Name:    "train",
		Recipes: map[string]adapter.Recipe{"x": adapter.E("prep", "out")},
	}))
	require.NoError(t, m.AddStep(&Step{Name: "eval"}))

	a, err := m.Adapter("train")
	require.NoError(t, err)
	args, err := a.Adapt(context.Background(), adapter.AllInputs{"prep": {"out": 1}})
	require.NoError(t, err)
	assert.Equal(t, adapter.Arguments{"x": 1}, args)

	_, err = m.Adapter("nope")
	require.EqualError(t, err, "unknown step 'nope' (known steps: [eval train])")
}
