// Package terminal 用 tcell 在终端中绘制游戏并读取按键
//
// 世界坐标按比例缩放到字符网格，第 0 行留给比分。
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/spacewar/pkg/components"
	"github.com/decker502/spacewar/pkg/entities"
)

// hudRows 顶部 HUD 占用的行数
const hudRows = 1

// 飞船按朝向选择的字符，从 0° 开始顺时针每 45° 一个
var shipGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// 爆炸各阶段字符，从中心闪光到消散
var explosionGlyphs = []rune{'#', '*', '+', 'x', '·'}

var playerStyles = [2]tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true),
}

var (
	projectileStyle = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	explosionStyle  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	hudStyle        = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// Surface 实现 entities.Surface，把贴图画成单个字符
type Surface struct {
	screen          tcell.Screen
	area            components.Bounds
	explosionFrames int
}

// NewSurface 创建终端绘制表面
func NewSurface(screen tcell.Screen, area components.Bounds, explosionFrames int) *Surface {
	if explosionFrames <= 0 {
		explosionFrames = 1
	}
	return &Surface{screen: screen, area: area, explosionFrames: explosionFrames}
}

// Cell 把世界坐标映射到字符坐标
func (s *Surface) Cell(x, y float64) (col, row int) {
	cols, rows := s.screen.Size()
	rows -= hudRows
	if cols <= 0 || rows <= 0 {
		return -1, -1
	}
	col = clampIndex(int(x/s.area.Width*float64(cols)), cols)
	row = clampIndex(int(y/s.area.Height*float64(rows)), rows) + hudRows
	return col, row
}

// DrawSprite 实现 entities.Surface
func (s *Surface) DrawSprite(sprite entities.Sprite, x, y, rotation float64) {
	col, row := s.Cell(x, y)
	if col < 0 {
		return
	}

	switch sprite.Kind {
	case entities.SpriteShip:
		style := playerStyles[sprite.Player%len(playerStyles)]
		if sprite.Frame > 0 {
			style = style.Reverse(true)
		}
		s.screen.SetContent(col, row, ShipGlyph(rotation), nil, style)
	case entities.SpriteProjectile:
		glyph := '•'
		if sprite.Frame%2 == 1 {
			glyph = '∙'
		}
		s.screen.SetContent(col, row, glyph, nil, projectileStyle)
	default:
		stage := sprite.Frame * len(explosionGlyphs) / s.explosionFrames
		stage = clampIndex(stage, len(explosionGlyphs))
		s.screen.SetContent(col, row, explosionGlyphs[stage], nil, explosionStyle)
	}
}

// DrawHUD 第 0 行左侧显示玩家1得分，右侧显示玩家2得分
func (s *Surface) DrawHUD(left, right string) {
	cols, _ := s.screen.Size()
	s.drawText(0, 0, left)
	s.drawText(cols-len([]rune(right)), 0, right)
}

func (s *Surface) drawText(col, row int, text string) {
	for i, r := range []rune(text) {
		if col+i >= 0 {
			s.screen.SetContent(col+i, row, r, nil, hudStyle)
		}
	}
}

// ShipGlyph 返回最接近 rotation 的方向字符
func ShipGlyph(rotation float64) rune {
	deg := math.Mod(rotation, 360)
	if deg < 0 {
		deg += 360
	}
	idx := int(math.Round(deg/45)) % len(shipGlyphs)
	return shipGlyphs[idx]
}

func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
