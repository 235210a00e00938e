package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"wainscot-designer/pkg/geometry"
)

func testParams() Params {
	return Params{
		WallWidth:    1200,
		WallHeight:   600,
		TopRail:      40,
		BottomRail:   40,
		Stile:        40,
		PanelMolding: 10,
		WainscotCap:  8,
		ChairRail:    20,
		Baseboard:    30,
		ShoeMolding:  12,
		Columns:      4,
		Rows:         2,
	}
}

func membersOfKind(l Layout, kind MemberKind) []Member {
	var out []Member
	for _, m := range l.Members {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

func TestComputeWallBox(t *testing.T) {
	l := Compute(testParams())
	assert.Equal(t, geometry.NewRect(0, 0, 1200, 600), l.Wall)
}

func TestDividerCentering(t *testing.T) {
	p := Params{
		WallWidth:  900,
		WallHeight: 500,
		TopRail:    60,
		BottomRail: 60,
		Stile:      60,
		Columns:    3,
		Rows:       1,
	}
	l := Compute(p)

	divs := membersOfKind(l, MemberDividerVertical)
	require.Len(t, divs, 2)

	// Section width 300; each divider straddles its boundary.
	assert.Equal(t, 270.0, divs[0].Rect.X)
	assert.Equal(t, 570.0, divs[1].Rect.X)
	for _, d := range divs {
		assert.Equal(t, 0.0, d.Rect.Y)
		assert.Equal(t, 60.0, d.Rect.Width)
		assert.Equal(t, 500.0, d.Rect.Height)
	}
}

func TestRowTilesWallWidth(t *testing.T) {
	p := testParams()
	l := Compute(p)

	widths := make([]float64, 0, p.Columns)
	for col := 0; col < p.Columns; col++ {
		cell := l.PanelAt(0, col)
		require.NotNil(t, cell)
		widths = append(widths, cell.Rect.Width)
	}

	// Panels plus the two wall stiles plus the interior dividers must
	// account for the full wall width.
	total := floats.Sum(widths) + 2*p.Stile + float64(p.Columns-1)*p.Stile
	assert.InDelta(t, p.WallWidth, total, 1e-9)
}

func TestColumnTilesWallHeight(t *testing.T) {
	p := testParams()
	p.Rows = 3
	l := Compute(p)

	heights := make([]float64, 0, p.Rows)
	for row := 0; row < p.Rows; row++ {
		cell := l.PanelAt(row, 0)
		require.NotNil(t, cell)
		heights = append(heights, cell.Rect.Height)
	}

	total := floats.Sum(heights) + p.TopRail + p.BottomRail + float64(p.Rows-1)*p.BottomRail
	assert.InDelta(t, p.WallHeight, total, 1e-9)
}

func TestPanelEdges(t *testing.T) {
	p := testParams()
	l := Compute(p)
	sectionW := p.WallWidth / float64(p.Columns)

	first := l.PanelAt(0, 0)
	require.NotNil(t, first)
	assert.Equal(t, p.Stile, first.Rect.X)
	assert.Equal(t, p.TopRail, first.Rect.Y)
	// Interior right edge takes half the shared divider.
	assert.InDelta(t, sectionW-p.Stile/2, first.Rect.Right(), 1e-9)

	interior := l.PanelAt(0, 1)
	require.NotNil(t, interior)
	assert.InDelta(t, sectionW+p.Stile/2, interior.Rect.X, 1e-9)

	last := l.PanelAt(1, p.Columns-1)
	require.NotNil(t, last)
	assert.InDelta(t, p.WallWidth-p.Stile, last.Rect.Right(), 1e-9)
	assert.InDelta(t, p.WallHeight-p.BottomRail, last.Rect.Bottom(), 1e-9)
}

func TestSinglePanelGrid(t *testing.T) {
	p := testParams()
	p.Columns = 1
	p.Rows = 1
	l := Compute(p)

	require.Len(t, l.Panels, 1)
	cell := l.Panels[0]
	assert.Equal(t, geometry.NewRect(
		p.Stile, p.TopRail,
		p.WallWidth-2*p.Stile,
		p.WallHeight-p.TopRail-p.BottomRail,
	), cell.Rect)
	assert.Empty(t, membersOfKind(l, MemberDividerVertical))
	assert.Empty(t, membersOfKind(l, MemberDividerHorizontal))
}

func TestPanelsDoNotOverlap(t *testing.T) {
	l := Compute(testParams())
	for i := range l.Panels {
		for j := i + 1; j < len(l.Panels); j++ {
			assert.False(t, l.Panels[i].Rect.Intersects(l.Panels[j].Rect),
				"panel %d,%d overlaps %d,%d",
				l.Panels[i].Row, l.Panels[i].Col,
				l.Panels[j].Row, l.Panels[j].Col)
		}
	}
}

func TestMoldingInset(t *testing.T) {
	p := testParams()
	l := Compute(p)
	cell := l.PanelAt(0, 0)
	require.NotNil(t, cell)

	assert.Equal(t, cell.Rect.Inset(p.PanelMolding), cell.Molding)
	assert.Equal(t, cell.Rect.X+p.PanelMolding, cell.Molding.X)
	assert.Equal(t, cell.Rect.Width-2*p.PanelMolding, cell.Molding.Width)
}

func TestTrimBandPlacement(t *testing.T) {
	p := testParams()
	l := Compute(p)

	rail := membersOfKind(l, MemberChairRail)
	require.Len(t, rail, 1)
	assert.Equal(t, geometry.NewRect(0, -p.WainscotCap-p.ChairRail, p.WallWidth, p.ChairRail), rail[0].Rect)

	cap := membersOfKind(l, MemberWainscotCap)
	require.Len(t, cap, 1)
	assert.Equal(t, geometry.NewRect(0, -p.WainscotCap, p.WallWidth, p.WainscotCap), cap[0].Rect)

	base := membersOfKind(l, MemberBaseboard)
	require.Len(t, base, 1)
	assert.Equal(t, p.WallHeight-p.Baseboard, base[0].Rect.Y)

	shoe := membersOfKind(l, MemberShoeMolding)
	require.Len(t, shoe, 1)
	assert.Equal(t, p.WallHeight, shoe[0].Rect.Bottom())
}

func TestArrows(t *testing.T) {
	p := testParams()
	p.Format = func(px float64) string { return fmt.Sprintf("%.0f px", px) }
	l := Compute(p)

	require.Len(t, l.Arrows, 3)

	width := l.Arrows[0]
	assert.Equal(t, geometry.NewPoint2D(0, -30), width.Start)
	assert.Equal(t, geometry.NewPoint2D(p.WallWidth, -30), width.End)
	assert.Equal(t, "1200 px", width.Label)

	height := l.Arrows[1]
	assert.Equal(t, geometry.NewPoint2D(p.WallWidth+30, 0), height.Start)
	assert.Equal(t, geometry.NewPoint2D(p.WallWidth+30, p.WallHeight), height.End)
	assert.Equal(t, "600 px", height.Label)

	panel := l.Arrows[2]
	first := l.Panels[0].Rect
	assert.Equal(t, first.X, panel.Start.X)
	assert.Equal(t, first.Right(), panel.End.X)
	assert.Equal(t, -15.0, panel.Start.Y)
	assert.Equal(t, fmt.Sprintf("%.0f px", first.Width), panel.Label)
}

func TestNilFormatYieldsEmptyLabels(t *testing.T) {
	l := Compute(testParams())
	for _, a := range l.Arrows {
		assert.Empty(t, a.Label)
	}
}

func TestBoundsCoverTrimAndArrows(t *testing.T) {
	p := testParams()
	l := Compute(p)
	b := l.Bounds()

	assert.LessOrEqual(t, b.Y, -p.WainscotCap-p.ChairRail)
	assert.LessOrEqual(t, b.Y, -float64(overallArrowOffset))
	assert.GreaterOrEqual(t, b.Right(), p.WallWidth+overallArrowOffset)
	assert.GreaterOrEqual(t, b.Bottom(), p.WallHeight)
}

func TestPanelAtMissing(t *testing.T) {
	l := Compute(testParams())
	assert.Nil(t, l.PanelAt(7, 7))
}

func TestMemberKindTrim(t *testing.T) {
	assert.True(t, MemberChairRail.Trim())
	assert.True(t, MemberShoeMolding.Trim())
	assert.False(t, MemberTopRail.Trim())
	assert.False(t, MemberDividerVertical.Trim())
}
