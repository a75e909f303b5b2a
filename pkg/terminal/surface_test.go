package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/spacewar/pkg/components"
	"github.com/decker502/spacewar/pkg/entities"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, col, row int) rune {
	r, _, _, _ := screen.GetContent(col, row)
	return r
}

func TestSurfaceCell(t *testing.T) {
	screen := newSimScreen(t, 80, 31)
	s := NewSurface(screen, components.Bounds{Width: 800, Height: 600}, 10)

	tests := []struct {
		name             string
		x, y             float64
		wantCol, wantRow int
	}{
		{"左上角", 0, 0, 0, 1},
		{"中心", 400, 300, 40, 16},
		{"右下边界", 800, 600, 79, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := s.Cell(tt.x, tt.y)
			if col != tt.wantCol || row != tt.wantRow {
				t.Errorf("Cell(%.0f, %.0f) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestSurfaceDrawSprite(t *testing.T) {
	screen := newSimScreen(t, 80, 31)
	s := NewSurface(screen, components.Bounds{Width: 800, Height: 600}, 10)

	s.DrawSprite(entities.Sprite{Kind: entities.SpriteShip}, 400, 300, 180)
	s.DrawSprite(entities.Sprite{Kind: entities.SpriteProjectile}, 0, 0, 0)
	s.DrawSprite(entities.Sprite{Kind: entities.SpriteExplosion, Frame: 9}, 100, 0, 0)
	s.DrawHUD("P1 2", "P2 5")

	if got := runeAt(screen, 40, 16); got != '←' {
		t.Errorf("ship glyph = %q, want '←'", got)
	}
	if got := runeAt(screen, 0, 1); got != '•' {
		t.Errorf("projectile glyph = %q, want '•'", got)
	}
	if got := runeAt(screen, 10, 1); got != '·' {
		t.Errorf("last explosion frame glyph = %q, want '·'", got)
	}
	if got := runeAt(screen, 0, 0); got != 'P' {
		t.Errorf("HUD left = %q, want 'P'", got)
	}
	if got := runeAt(screen, 79, 0); got != '5' {
		t.Errorf("HUD right = %q, want '5'", got)
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		rotation float64
		want     rune
	}{
		{0, '→'},
		{90, '↓'},
		{180, '←'},
		{270, '↑'},
		{-90, '↑'},
		{350, '→'},
		{405, '↘'},
	}
	for _, tt := range tests {
		if got := ShipGlyph(tt.rotation); got != tt.want {
			t.Errorf("ShipGlyph(%.0f) = %q, want %q", tt.rotation, got, tt.want)
		}
	}
}
