package exchanger

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// 环隙通道几何解析
// 外管内壁与内管（或扭曲管芯）外壁之间的环形流道

// 安装间隙，单侧 0.5mm：扭曲管芯外径 = 外管名义内径 + 2×间隙
const InstallClearance = 0.0005

type Annulus struct {
	Area               float64 `json:"area"`                // 有效流通面积，m2
	HydraulicDiameter  float64 `json:"hydraulic_diameter"`  // 4A/湿周，m
	EquivalentDiameter float64 `json:"equivalent_diameter"` // 面积当量直径 sqrt(4A/π)，m
	SpiralFactor       float64 `json:"spiral_factor"`       // 螺旋通道修正系数
}

// 扭曲管芯环隙：外管有效内径圆减去星形截面
// 螺距越小，螺旋通道阻塞越明显，有效面积系数在 [0.9, 1.0] 内取值
func ResolveLobedAnnulus(boreDiameter float64, lobe *LobeSection, pitch float64) (*Annulus, error) {
	if boreDiameter <= 0 {
		return nil, fmt.Errorf("外管内径必须为正: %v", boreDiameter)
	}
	if lobe == nil {
		return nil, fmt.Errorf("缺少星形截面")
	}
	rawArea := math.Pi/4*boreDiameter*boreDiameter - lobe.Area
	if rawArea <= 0 {
		return nil, fmt.Errorf("环隙面积非正: bore=%v lobeArea=%v", boreDiameter, lobe.Area)
	}

	factor := spiralChannelFactor(boreDiameter, pitch)
	area := rawArea * factor

	wetted := math.Pi*boreDiameter + lobe.Perimeter
	annulus := &Annulus{
		Area:               area,
		HydraulicDiameter:  4 * area / wetted,
		EquivalentDiameter: math.Sqrt(4 * area / math.Pi),
		SpiralFactor:       factor,
	}
	log.WithFields(log.Fields{
		"bore":   boreDiameter,
		"area":   annulus.Area,
		"dh":     annulus.HydraulicDiameter,
		"factor": factor,
	}).Debug("解析扭曲管环隙")
	return annulus, nil
}

// 光管环隙：减去普通圆截面
func ResolveCircularAnnulus(boreDiameter, tubeOD float64) (*Annulus, error) {
	if boreDiameter <= 0 || tubeOD <= 0 {
		return nil, fmt.Errorf("直径必须为正: bore=%v tube=%v", boreDiameter, tubeOD)
	}
	if boreDiameter <= tubeOD {
		return nil, fmt.Errorf("外管内径必须大于内管外径: bore=%v tube=%v", boreDiameter, tubeOD)
	}
	area := math.Pi / 4 * (boreDiameter*boreDiameter - tubeOD*tubeOD)
	wetted := math.Pi * (boreDiameter + tubeOD)
	return &Annulus{
		Area:               area,
		HydraulicDiameter:  4 * area / wetted, // 即 bore - tubeOD
		EquivalentDiameter: math.Sqrt(4 * area / math.Pi),
		SpiralFactor:       1.0,
	}, nil
}

// 螺旋通道修正系数，随螺距收紧而减小，夹在 [0.9, 1.0]
func spiralChannelFactor(boreDiameter, pitch float64) float64 {
	if pitch <= 0 {
		return 1.0
	}
	factor := 1.0 - 0.1*boreDiameter/pitch
	if factor < 0.9 {
		factor = 0.9
	}
	if factor > 1.0 {
		factor = 1.0
	}
	return factor
}
