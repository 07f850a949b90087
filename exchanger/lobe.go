package exchanger

import (
	"fmt"
	"math"
)

// 螺旋扭曲管的多头星形截面
// 截面极坐标轮廓 r(θ) = R_avg + a·cos(nθ)，a 为波幅，n 为头数

const (
	MinLobes = 3
	MaxLobes = 6
)

// 经验修正系数，按实测截面标定，勿随意改动
const (
	lobeAreaFactor      = 0.7
	lobePerimeterFactor = 1.2
)

type LobeSection struct {
	Area               float64 `json:"area"`                // m2
	Perimeter          float64 `json:"perimeter"`           // m
	EquivalentDiameter float64 `json:"equivalent_diameter"` // 4A/P，m
	ToothHeight        float64 `json:"tooth_height"`        // 齿高 h = (doMax-doMin)/2
	DoMax              float64 `json:"do_max"`              // 峰径
	DoMin              float64 `json:"do_min"`              // 谷径
	Lobes              int     `json:"lobes"`               // 头数
}

// 由峰径、谷径和头数构造截面
// 以谷圆为基底，叠加逐齿修正项
func NewLobeSection(doMax, doMin float64, lobes int) (*LobeSection, error) {
	if doMin <= 0 {
		return nil, fmt.Errorf("谷径必须为正: doMin=%v", doMin)
	}
	if doMax <= doMin {
		return nil, fmt.Errorf("峰径必须大于谷径: doMax=%v doMin=%v", doMax, doMin)
	}
	if lobes < MinLobes || lobes > MaxLobes {
		return nil, fmt.Errorf("头数必须在 %d~%d 之间: %d", MinLobes, MaxLobes, lobes)
	}

	h := (doMax - doMin) / 2
	// 谷圆基底
	area := math.Pi / 4 * doMin * doMin
	perimeter := math.Pi * doMin
	// 逐齿修正：每个齿近似为 弧宽×齿高 的凸起
	lobeWidth := math.Pi * doMin / float64(lobes)
	area += float64(lobes) * lobeAreaFactor * lobeWidth * h
	perimeter += float64(lobes) * lobePerimeterFactor * h

	return &LobeSection{
		Area:               area,
		Perimeter:          perimeter,
		EquivalentDiameter: 4 * area / perimeter,
		ToothHeight:        h,
		DoMax:              doMax,
		DoMin:              doMin,
		Lobes:              lobes,
	}, nil
}

// 按 r(θ) = R_avg + a·cos(nθ) 采样截面轮廓，供前端画布绘制
func (s *LobeSection) Profile(numPoints int) (theta, radius []float64) {
	if numPoints < 8 {
		numPoints = 8
	}
	rAvg := (s.DoMax + s.DoMin) / 4
	a := s.ToothHeight / 2
	theta = make([]float64, numPoints)
	radius = make([]float64, numPoints)
	for i := 0; i < numPoints; i++ {
		t := 2 * math.Pi * float64(i) / float64(numPoints-1)
		theta[i] = t
		radius[i] = rAvg + a*math.Cos(float64(s.Lobes)*t)
	}
	return theta, radius
}

// 峰顶处的螺旋伸长系数 sqrt(1 + (2πR/P)^2)
func (s *LobeSection) HelicalLengthFactor(pitch float64) float64 {
	if pitch <= 0 {
		return 1.0
	}
	circumference := math.Pi * s.DoMax
	ratio := circumference / pitch
	return math.Sqrt(1 + ratio*ratio)
}

// 一个螺距对应的峰顶螺旋线长
func (s *LobeSection) HelicalPathLength(pitch float64) float64 {
	return pitch * s.HelicalLengthFactor(pitch)
}

// 极坐标数值积分的精确面积和周长，用于核对逐齿修正的标定
func (s *LobeSection) integrate(numPoints int) (area, perimeter float64) {
	rAvg := (s.DoMax + s.DoMin) / 4
	a := s.ToothHeight / 2
	n := float64(s.Lobes)
	dTheta := 2 * math.Pi / float64(numPoints)
	for i := 0; i < numPoints; i++ {
		t := dTheta * float64(i)
		r := rAvg + a*math.Cos(n*t)
		dr := -a * n * math.Sin(n*t)
		area += 0.5 * r * r * dTheta
		perimeter += math.Sqrt(r*r+dr*dr) * dTheta
	}
	return area, perimeter
}
