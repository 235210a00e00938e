package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryHasBuiltins(t *testing.T) {
	names := List()
	assert.Equal(t, []string{
		"Classic Colonial",
		"Craftsman",
		"Picture Frame",
		"Shaker Flat",
	}, names)
}

func TestGet(t *testing.T) {
	s := Get("Shaker Flat")
	require.NotNil(t, s)
	assert.Equal(t, "Shaker Flat", s.Name)
	assert.Zero(t, s.PanelMoldingMM)

	assert.Nil(t, Get("no such style"))
}

func TestBuiltinsValidate(t *testing.T) {
	for _, name := range List() {
		s := Get(name)
		require.NotNil(t, s)
		assert.NoError(t, s.Validate(), name)
	}
}

func TestValidateRejectsBadPresets(t *testing.T) {
	base := func() *Style {
		s := *ClassicColonial()
		return &s
	}

	s := base()
	s.Name = ""
	assert.Error(t, s.Validate())

	s = base()
	s.TopRailMM = 0
	assert.Error(t, s.Validate())

	s = base()
	s.BaseboardMM = -1
	assert.Error(t, s.Validate())

	s = base()
	s.Columns = 0
	assert.Error(t, s.Validate())
}

func TestRegisterOverrides(t *testing.T) {
	custom := &Style{
		Name:         "Classic Colonial",
		TopRailMM:    50,
		BottomRailMM: 50,
		StileMM:      50,
		Columns:      2,
		Rows:         1,
	}
	Register(custom)
	defer Register(ClassicColonial())

	got := Get("Classic Colonial")
	require.NotNil(t, got)
	assert.Equal(t, 50.0, got.TopRailMM)
}
