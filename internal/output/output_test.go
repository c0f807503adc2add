package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ancients-collective/privsift/internal/types"
)

func TestCollector_GroupsByCategoryInEmissionOrder(t *testing.T) {
	c := NewCollector()
	c.Emit(types.Verdict{Category: types.CategoryTopLevelDir, Path: "/secretstuff", Severity: types.SeverityPotential})
	c.Emit(types.Verdict{Category: types.CategoryTopLevelDir, Path: "/usr", Severity: types.SeverityOK})
	c.Emit(types.Verdict{Category: types.CategorySuid, Path: "/usr/bin/passwd", Severity: types.SeverityOK})

	groups := c.Groups()

	require.Len(t, groups, 2)
	assert.Equal(t, types.CategoryTopLevelDir, groups[0].Category)
	assert.Len(t, groups[0].Verdicts, 2)
	assert.Equal(t, "/secretstuff", groups[0].Verdicts[0].Path)
	assert.Equal(t, types.CategorySuid, groups[1].Category)
}

func TestCollector_Summary(t *testing.T) {
	c := NewCollector()
	c.Emit(types.Verdict{Category: types.CategorySuid, Severity: types.SeverityPotential})
	c.Emit(types.Verdict{Category: types.CategorySuid, Severity: types.SeverityOK})
	c.Emit(types.Verdict{Category: types.CategorySuid, Severity: types.SeverityOK})
	c.Emit(types.Verdict{Category: types.CategorySudoGrant, Severity: types.SeverityInfo})

	s := c.Summary()

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.Potential)
	assert.Equal(t, 2, s.OK)
	assert.Equal(t, 1, s.Info)
}

func TestCollector_Empty(t *testing.T) {
	c := NewCollector()

	assert.Empty(t, c.Groups())
	assert.Zero(t, c.Summary().Total)
}
