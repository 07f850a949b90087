package exchanger

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"hx/model"
)

// 套管换热器的整体几何
// 内管（或扭曲管芯）走管程，外管与内管之间的环隙走壳程

// 扭曲管面积增强上限：扭曲管是变形圆管而不是翅片管，
// 实际传热面积最多按等效光管的 1.20 倍计，经验标定值
const TwistAreaCap = 1.20

type Geometry struct {
	InnerOuterDiameter float64 // 内管外径，m
	InnerInnerDiameter float64 // 内管内径，m
	OuterOuterDiameter float64 // 外管外径，m
	OuterInnerDiameter float64 // 外管内径，m
	Length             float64 // 单程有效长度，m
	TubeCount          int
	PassCount          int
	OuterTubesPerPass  int

	Twisted     bool
	TwistPitch  float64
	LobeCount   int
	ToothHeight float64

	Lobe *LobeSection // 扭曲管截面，光管为 nil
}

// 从请求构造几何并完成校验
func NewGeometry(req *model.CalcRequest) (*Geometry, error) {
	g := &Geometry{
		InnerOuterDiameter: req.InnerOuterDiameter,
		InnerInnerDiameter: req.InnerInnerDiameter,
		OuterOuterDiameter: req.OuterOuterDiameter,
		OuterInnerDiameter: req.OuterInnerDiameter,
		Length:             req.Length,
		TubeCount:          req.TubeCount,
		PassCount:          req.PassCount,
		OuterTubesPerPass:  req.OuterTubesPerPass,
		Twisted:            req.TubeType == model.TubeTwisted,
		TwistPitch:         req.TwistPitch,
		LobeCount:          req.LobeCount,
		ToothHeight:        req.ToothHeight,
	}
	if g.TubeCount <= 0 {
		g.TubeCount = 1
	}
	if g.PassCount <= 0 {
		g.PassCount = 1
	}
	if g.OuterTubesPerPass <= 0 {
		g.OuterTubesPerPass = 1
	}

	if g.InnerInnerDiameter <= 0 || g.InnerOuterDiameter <= 0 ||
		g.OuterInnerDiameter <= 0 || g.OuterOuterDiameter <= 0 {
		return nil, fmt.Errorf("管径必须为正")
	}
	if g.Length <= 0 {
		return nil, fmt.Errorf("管长必须为正: %v", g.Length)
	}
	if g.InnerInnerDiameter >= g.InnerOuterDiameter {
		return nil, fmt.Errorf("内管内径必须小于外径")
	}
	wall := (g.InnerOuterDiameter - g.InnerInnerDiameter) / 2
	if wall >= g.InnerOuterDiameter/2 {
		return nil, fmt.Errorf("壁厚不能超过外径的一半: wall=%v", wall)
	}

	if g.Twisted {
		if g.TwistPitch <= 0 {
			return nil, fmt.Errorf("扭曲管螺距必须为正: %v", g.TwistPitch)
		}
		// 扭曲管芯外径 = 外管名义内径 + 双侧安装间隙，峰顶与外管壁贴合
		doMax := g.OuterInnerDiameter + 2*InstallClearance
		doMin := doMax - 2*g.ToothHeight
		lobe, err := NewLobeSection(doMax, doMin, g.LobeCount)
		if err != nil {
			return nil, err
		}
		g.Lobe = lobe
	} else {
		// 直管：外管内径必须大于内管外径
		if g.OuterInnerDiameter <= g.InnerOuterDiameter {
			return nil, fmt.Errorf("外管内径必须大于内管外径: %v <= %v",
				g.OuterInnerDiameter, g.InnerOuterDiameter)
		}
	}

	log.WithFields(log.Fields{
		"innerOD": g.InnerOuterDiameter,
		"outerID": g.OuterInnerDiameter,
		"length":  g.Length,
		"twisted": g.Twisted,
	}).Debug("构造换热器几何")
	return g, nil
}

// 外管有效内径：名义内径加双侧安装间隙
func (g *Geometry) EffectiveBore() float64 {
	if g.Twisted {
		return g.OuterInnerDiameter + 2*InstallClearance
	}
	return g.OuterInnerDiameter
}

// 管程流通面积与特征直径
func (g *Geometry) TubeSection() (area, diameter float64) {
	if g.Twisted && g.Lobe != nil {
		// 扭曲管内腔按星形截面等比缩入一个壁厚
		wall := (g.InnerOuterDiameter - g.InnerInnerDiameter) / 2
		inner, err := NewLobeSection(g.Lobe.DoMax-2*wall, g.Lobe.DoMin-2*wall, g.Lobe.Lobes)
		if err == nil {
			return inner.Area, inner.EquivalentDiameter
		}
		log.WithFields(log.Fields{"err": err}).Warn("扭曲管内腔解析失败，退回圆管截面")
	}
	d := g.InnerInnerDiameter
	return math.Pi / 4 * d * d, d
}

// 壳程环隙
func (g *Geometry) AnnulusSection() (*Annulus, error) {
	if g.Twisted && g.Lobe != nil {
		a, err := ResolveLobedAnnulus(g.EffectiveBore(), g.Lobe, g.TwistPitch)
		if err == nil {
			return a, nil
		}
		// 环隙边界情形：退回光管环隙近似
		log.WithFields(log.Fields{"err": err}).Warn("扭曲管环隙解析失败，退回圆环近似")
		return ResolveCircularAnnulus(g.EffectiveBore(), g.Lobe.DoMin)
	}
	return ResolveCircularAnnulus(g.OuterInnerDiameter, g.InnerOuterDiameter)
}

// 光管实际传热面积（按内管外表面计）
func (g *Geometry) SmoothArea() float64 {
	return math.Pi * g.InnerOuterDiameter * g.Length *
		float64(g.TubeCount) * float64(g.PassCount)
}

// 实际传热面积
// 扭曲管按星形周长和螺旋伸长放大，上限 TwistAreaCap 倍等效光管面积
func (g *Geometry) ActualArea() float64 {
	if !g.Twisted || g.Lobe == nil {
		return g.SmoothArea()
	}
	base := math.Pi * g.Lobe.DoMax * g.Length *
		float64(g.TubeCount) * float64(g.PassCount)
	gain := g.Lobe.Perimeter / (math.Pi * g.Lobe.DoMax) * g.Lobe.HelicalLengthFactor(g.TwistPitch)
	// 螺旋伸长只对峰顶成立，整体按周长比与伸长系数折中后仍需封顶
	if gain > TwistAreaCap {
		gain = TwistAreaCap
	}
	if gain < 1.0 {
		gain = 1.0
	}
	return base * gain
}

// 流道总长：几何长度 × 程数
func (g *Geometry) FlowLength() float64 {
	return g.Length * float64(g.PassCount)
}
