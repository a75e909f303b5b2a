package world

import "math/rand/v2"

// Random 随机数来源，只用于飞船重生的位置和朝向
type Random interface {
	// Next 返回 [min, max) 范围内的整数；max <= min 时返回 min
	Next(min, max int) int
}

// pcgRandom 基于 math/rand/v2 PCG 的随机数来源
type pcgRandom struct {
	r *rand.Rand
}

// NewRandom 用指定种子创建随机数来源，相同种子产生相同序列
func NewRandom(seed uint64) Random {
	return &pcgRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRandom) Next(min, max int) int {
	if max <= min {
		return min
	}
	return min + p.r.IntN(max-min)
}
