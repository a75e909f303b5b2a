package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/spacewar/pkg/config"
	"github.com/decker502/spacewar/pkg/entities"
)

// 贴图尺寸（像素），都是正方形，朝向 +X
const (
	ShipSpriteSize       = 32
	ProjectileSpriteSize = 8
	ExplosionSpriteSize  = 48
)

// PlayerColors 两名玩家的飞船颜色
var PlayerColors = [2]color.RGBA{
	{R: 90, G: 200, B: 255, A: 255},
	{R: 255, G: 120, B: 90, A: 255},
}

var (
	flameColor      = color.RGBA{R: 255, G: 200, B: 60, A: 255}
	projectileColor = color.RGBA{R: 255, G: 255, B: 220, A: 255}
	explosionColor  = color.RGBA{R: 255, G: 150, B: 40, A: 255}
)

// ResourceManager 按需生成并缓存贴图
//
// 所有贴图在第一次使用时用矢量绘制生成，之后复用同一张 *ebiten.Image。
// 只能在主循环所在的 goroutine 中使用。
type ResourceManager struct {
	imageCache      map[entities.Sprite]*ebiten.Image
	explosionFrames int
}

// NewResourceManager 创建资源管理器
func NewResourceManager(cfg *config.GameConfig) *ResourceManager {
	return &ResourceManager{
		imageCache:      make(map[entities.Sprite]*ebiten.Image),
		explosionFrames: cfg.Explosion.Frames,
	}
}

// Sprite 返回贴图句柄对应的图像
func (rm *ResourceManager) Sprite(s entities.Sprite) *ebiten.Image {
	if img, ok := rm.imageCache[s]; ok {
		return img
	}

	var img *ebiten.Image
	switch s.Kind {
	case entities.SpriteShip:
		img = newShipImage(s.Player, s.Frame)
	case entities.SpriteProjectile:
		img = newProjectileImage(s.Frame)
	default:
		img = newExplosionImage(s.Frame, rm.explosionFrames)
	}
	rm.imageCache[s] = img
	return img
}

// CachedCount 返回已生成的贴图数量
func (rm *ResourceManager) CachedCount() int {
	return len(rm.imageCache)
}

// newShipImage 三角形机身，thrustFrame > 0 时在尾部画尾焰
func newShipImage(player, thrustFrame int) *ebiten.Image {
	img := ebiten.NewImage(ShipSpriteSize, ShipSpriteSize)
	clr := PlayerColors[player%len(PlayerColors)]

	const c = ShipSpriteSize / 2
	nose := [2]float32{ShipSpriteSize - 2, c}
	left := [2]float32{6, 4}
	right := [2]float32{6, ShipSpriteSize - 4}
	vector.StrokeLine(img, nose[0], nose[1], left[0], left[1], 2, clr, true)
	vector.StrokeLine(img, nose[0], nose[1], right[0], right[1], 2, clr, true)
	vector.StrokeLine(img, left[0], left[1], 10, c, 2, clr, true)
	vector.StrokeLine(img, right[0], right[1], 10, c, 2, clr, true)

	if thrustFrame > 0 {
		length := float32(3 + 2*thrustFrame)
		vector.StrokeLine(img, 9, c-3, 9-length, c, 2, flameColor, true)
		vector.StrokeLine(img, 9, c+3, 9-length, c, 2, flameColor, true)
	}
	return img
}

// newProjectileImage 闪烁的小方块，4 帧大小交替
func newProjectileImage(frame int) *ebiten.Image {
	img := ebiten.NewImage(ProjectileSpriteSize, ProjectileSpriteSize)
	size := float32(4 + 2*(frame%2))
	offset := (ProjectileSpriteSize - size) / 2
	vector.DrawFilledRect(img, offset, offset, size, size, projectileColor, false)
	return img
}

// newExplosionImage 逐帧扩大并变淡的圆环
func newExplosionImage(frame, frames int) *ebiten.Image {
	img := ebiten.NewImage(ExplosionSpriteSize, ExplosionSpriteSize)
	if frames <= 0 {
		frames = 1
	}
	progress := float64(frame+1) / float64(frames)
	alpha := uint8(255 * math.Max(0.15, 1-progress))

	clr := explosionColor
	clr.A = alpha
	clr.R = uint8(float64(clr.R) * float64(alpha) / 255)
	clr.G = uint8(float64(clr.G) * float64(alpha) / 255)
	clr.B = uint8(float64(clr.B) * float64(alpha) / 255)

	const c = ExplosionSpriteSize / 2
	radius := float32(4 + progress*(c-6))
	vector.DrawFilledCircle(img, c, c, radius, clr, true)
	return img
}
