package calculator

import (
	"math"
)

// 单相流动与换热关联式
// 层流 Re<2300，过渡区 2300~10000（换热）/ 2300~3000（阻力），其上为旺盛湍流

const (
	reLaminarLimit    = 2300.0
	reFrictionTurb    = 3000.0
	reNusseltTurb     = 10000.0
	nusseltLaminar    = 3.66 // 圆管定壁温层流充分发展
)

func Reynolds(density, velocity, diameter, viscosity float64) float64 {
	if viscosity <= 0 {
		return 0
	}
	return density * velocity * diameter / viscosity
}

// 单相努塞尔数
// 层流 3.66；过渡区 Gnielinski；湍流 Dittus-Boelter（加热 Pr^0.4，冷却 Pr^0.3）
func NusseltSingle(re, pr float64, heating bool) float64 {
	switch {
	case re < reLaminarLimit:
		return nusseltLaminar
	case re < reNusseltTurb:
		return gnielinski(re, pr)
	default:
		return dittusBoelter(re, pr, heating)
	}
}

func dittusBoelter(re, pr float64, heating bool) float64 {
	exp := 0.3
	if heating {
		exp = 0.4
	}
	return 0.023 * math.Pow(re, 0.8) * math.Pow(pr, exp)
}

func gnielinski(re, pr float64) float64 {
	f := math.Pow(0.79*math.Log(re)-1.64, -2)
	return (f / 8) * (re - 1000) * pr /
		(1 + 12.7*math.Sqrt(f/8)*(math.Pow(pr, 2.0/3)-1))
}

// 对流换热系数 h = Nu·k/D
func ConvectiveCoefficient(nu, conductivity, diameter float64) float64 {
	if diameter <= 0 {
		return 0
	}
	return nu * conductivity / diameter
}

// 达西摩擦系数
// 层流 64/Re；2300~3000 在层流端点值与 Swamee-Jain 端点值之间线性过渡；
// 其上用 Swamee-Jain 显式式
func FrictionFactor(re, relativeRoughness float64) float64 {
	if re <= 0 {
		return 0
	}
	switch {
	case re < reLaminarLimit:
		return 64 / re
	case re < reFrictionTurb:
		fLam := 64 / reLaminarLimit
		fTurb := swameeJain(reFrictionTurb, relativeRoughness)
		return fLam + (fTurb-fLam)*(re-reLaminarLimit)/(reFrictionTurb-reLaminarLimit)
	default:
		return swameeJain(re, relativeRoughness)
	}
}

// f = 0.25 / [log10(ε/3.7D + 5.74/Re^0.9)]^2
func swameeJain(re, relativeRoughness float64) float64 {
	arg := relativeRoughness/3.7 + 5.74/math.Pow(re, 0.9)
	lg := math.Log10(arg)
	return 0.25 / (lg * lg)
}
