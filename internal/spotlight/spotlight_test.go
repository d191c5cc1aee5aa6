package spotlight

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tourguide/geom"
)

type fakeSurface struct {
	created  int
	removed  int
	moves    int
	panels   [4]geom.Rect
	hasMoved bool
}

func (f *fakeSurface) CreatePanels() { f.created++ }
func (f *fakeSurface) MovePanels(above, right, below, left geom.Rect) {
	f.moves++
	f.hasMoved = true
	f.panels = [4]geom.Rect{above, right, below, left}
}
func (f *fakeSurface) RemovePanels() { f.removed++ }

func viewport(w, h int) func() (int, int) {
	return func() (int, int) { return w, h }
}

func TestPanelUnionCoversViewportMinusPaddedTarget(t *testing.T) {
	cases := []struct {
		name    string
		target  geom.Rect
		padding int
	}{
		{"centered target", geom.NewRect(10, 8, 12, 4), 2},
		{"zero padding", geom.NewRect(5, 5, 6, 6), 0},
		{"target at origin", geom.NewRect(0, 0, 8, 3), 1},
		{"target at bottom right", geom.NewRect(30, 18, 10, 6), 2},
		{"padding past edges", geom.NewRect(1, 1, 38, 22), 3},
	}

	const vw, vh = 40, 24
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			above, right, below, left := PanelRects(tc.target, tc.padding, vw, vh)
			panels := []geom.Rect{above, right, below, left}
			hole := tc.target.Expand(tc.padding)

			for y := 0; y < vh; y++ {
				for x := 0; x < vw; x++ {
					covered := 0
					for _, p := range panels {
						if p.Contains(x, y) {
							covered++
						}
					}
					if hole.Contains(x, y) {
						require.Zero(t, covered, "cell (%d,%d) inside padded target must stay clear", x, y)
					} else {
						require.Equal(t, 1, covered, "cell (%d,%d) outside padded target must be covered exactly once", x, y)
					}
				}
			}
		})
	}
}

func TestPanelRectsGeometry(t *testing.T) {
	target := geom.NewRect(10, 8, 12, 4)
	above, right, below, left := PanelRects(target, 2, 40, 24)

	require.Equal(t, target.Top-2, above.Bottom)
	require.Equal(t, 40, above.Width)

	require.Equal(t, target.Bottom+2, below.Top)
	require.Equal(t, 24, below.Bottom)

	require.Equal(t, target.Left-2, left.Right)
	require.Equal(t, target.Top-2, left.Top)
	require.Equal(t, target.Height+4, left.Height)

	require.Equal(t, target.Right+2, right.Left)
	require.Equal(t, target.Top-2, right.Top)
	require.Equal(t, target.Height+4, right.Height)
}

func TestMoveAppliesPanels(t *testing.T) {
	surface := &fakeSurface{}
	s := New(surface, 1, viewport(40, 24))
	require.Equal(t, 1, surface.created)

	s.Move(geom.NewRect(10, 8, 12, 4))
	require.Equal(t, 1, surface.moves)
}

func TestNegativePaddingTreatedAsZero(t *testing.T) {
	surface := &fakeSurface{}
	s := New(surface, -5, viewport(40, 24))

	target := geom.NewRect(10, 8, 12, 4)
	s.Move(target)
	above := surface.panels[0]
	require.Equal(t, target.Top, above.Bottom)
}

func TestBlackoutPullsPanelsOffscreen(t *testing.T) {
	surface := &fakeSurface{}
	s := New(surface, 1, viewport(40, 24))

	s.Blackout()
	for _, p := range surface.panels {
		require.True(t, p.Empty())
		require.Less(t, p.Left, 0)
	}
}

func TestKillIsIdempotent(t *testing.T) {
	surface := &fakeSurface{}
	s := New(surface, 1, viewport(40, 24))

	s.Kill()
	s.Kill()
	require.Equal(t, 1, surface.removed)
}

func TestMoveAfterKillIsIgnored(t *testing.T) {
	surface := &fakeSurface{}
	s := New(surface, 1, viewport(40, 24))
	s.Kill()

	moves := surface.moves
	s.Move(geom.NewRect(10, 8, 12, 4))
	s.Blackout()
	require.Equal(t, moves, surface.moves)
}
