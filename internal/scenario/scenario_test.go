package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/dicelab/internal/dice"
)

func validDef() *Def {
	return &Def{
		Name:  "two-dice",
		Rolls: 100,
		Dice: []DieDef{
			{Faces: []string{"a", "b", "c", "d"}, Weights: []WeightOverride{{Face: "c", Weight: 2.5}}},
			{Faces: []string{"a", "b", "c", "d"}},
		},
	}
}

func TestValidDef(t *testing.T) {
	assert.NoError(t, validDef().Validate())
}

func TestValidate_MissingName(t *testing.T) {
	d := validDef()
	d.Name = ""
	assert.Error(t, d.Validate())
}

func TestValidate_NoDice(t *testing.T) {
	d := validDef()
	d.Dice = nil
	assert.Error(t, d.Validate())
}

func TestValidate_DuplicateFace(t *testing.T) {
	d := validDef()
	d.Dice[0].Faces = []string{"a", "a"}
	assert.Error(t, d.Validate())
}

func TestValidate_UnknownWeightFace(t *testing.T) {
	d := validDef()
	d.Dice[0].Weights = []WeightOverride{{Face: "z", Weight: 2.0}}
	assert.Error(t, d.Validate())
}

func TestValidate_NonPositiveWeight(t *testing.T) {
	d := validDef()
	d.Dice[0].Weights = []WeightOverride{{Face: "a", Weight: 0}}
	assert.Error(t, d.Validate())
}

func TestValidate_NegativeRolls(t *testing.T) {
	d := validDef()
	d.Rolls = -1
	assert.Error(t, d.Validate())
}

// TestBuild verifies that the built game applies weight overrides and keeps
// unlisted faces at the default weight.
func TestBuild(t *testing.T) {
	g, err := validDef().Build(dice.NewSeededSource(1))
	require.NoError(t, err)

	ds := g.Dice()
	require.Len(t, ds, 2)
	want := []dice.Side[string]{
		{Face: "a", Weight: 1.0},
		{Face: "b", Weight: 1.0},
		{Face: "c", Weight: 2.5},
		{Face: "d", Weight: 1.0},
	}
	assert.Equal(t, want, ds[0].Sides())
	for _, s := range ds[1].Sides() {
		assert.Equal(t, dice.DefaultWeight, s.Weight)
	}
}

// TestBuild_MismatchedFaceSets verifies that game construction surfaces face
// set mismatches between scenario dice.
func TestBuild_MismatchedFaceSets(t *testing.T) {
	d := validDef()
	d.Dice[1].Faces = []string{"x", "y", "z", "w"}
	require.NoError(t, d.Validate(), "per-die validation alone does not compare face sets")

	_, err := d.Build(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, dice.ErrValidation)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
name: sample
rolls: 10
dice:
  - faces: [a, b, c]
    weights:
      - face: b
        weight: 3.5
  - faces: [c, b, a]
`), 0644)
	require.NoError(t, err)

	def, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", def.Name)
	assert.Equal(t, 10, def.Rolls)
	require.Len(t, def.Dice, 2)
	assert.Equal(t, []string{"a", "b", "c"}, def.Dice[0].Faces)
	require.Len(t, def.Dice[0].Weights, 1)
	assert.Equal(t, 3.5, def.Dice[0].Weights[0].Weight)
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: ''\ndice: []\n"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.yaml"), []byte(`
name: one
dice:
  - faces: [a, b]
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not yaml"), 0644))

	defs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "one", defs[0].Name)
}

func TestLoadDir_Missing(t *testing.T) {
	_, err := LoadDir("/nonexistent/scenarios")
	assert.Error(t, err)
}
