package calculator

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"hx/model"
)

// 相变关联式：Chen 沸腾、Shah 冷凝、Lockhart-Martinelli/Chisholm 两相压降

const (
	gravity = 9.80665

	// 表面张力查询失败时的缺省值，N/m
	defaultSurfaceTension = 0.05

	// Chisholm 两相倍率封顶，经验标定值，防止早期版本的过度预测
	chisholmMultiplierCap = 20.0

	// Shah 冷凝系数下限：不低于全液相系数的 10%
	shahFloorRatio = 0.1

	// Chen 关联式缺省壁面过热度，K
	defaultWallSuperheat = 5.0
)

type BoilingInput struct {
	Liquid model.FluidProperties
	Vapor  model.FluidProperties

	MassFlux       float64 // G，kg/(m2·s)
	Quality        float64
	Diameter       float64
	SatTemperature float64 // ℃
	LatentHeat     float64 // hfg，J/kg
	SurfaceTension float64 // <=0 时取缺省值
	WallSuperheat  float64 // ΔTsat，<=0 时取缺省值
}

// Chen 流动沸腾：h = F·h_l + S·h_nb
// F 为两相强化因子（马蒂内利参数的函数），S 为核态沸腾抑制因子
func ChenBoiling(in BoilingInput) (float64, error) {
	if in.MassFlux <= 0 || in.Diameter <= 0 || in.LatentHeat <= 0 {
		return 0, fmt.Errorf("%w: Chen 输入非法 G=%v D=%v hfg=%v",
			ErrInvalidInput, in.MassFlux, in.Diameter, in.LatentHeat)
	}
	x := in.Quality
	if x < 0.01 {
		x = 0.01
	}
	if x > 0.99 {
		x = 0.99
	}
	sigma := in.SurfaceTension
	if sigma <= 0 {
		log.WithFields(log.Fields{"default": defaultSurfaceTension}).
			Warn("表面张力缺失，取缺省值")
		sigma = defaultSurfaceTension
	}
	dTsat := in.WallSuperheat
	if dTsat <= 0 {
		dTsat = defaultWallSuperheat
	}

	liq, vap := in.Liquid, in.Vapor
	// 液相分率单相换热
	reL := in.MassFlux * (1 - x) * in.Diameter / liq.Viscosity
	hL := 0.023 * math.Pow(reL, 0.8) * math.Pow(liq.Prandtl, 0.4) *
		liq.ThermalConductivity / in.Diameter

	// 马蒂内利参数与强化因子
	xtt := math.Pow((1-x)/x, 0.9) *
		math.Sqrt(vap.Density/liq.Density) *
		math.Pow(liq.Viscosity/vap.Viscosity, 0.1)
	invXtt := 1 / xtt
	f := 1.0
	if invXtt > 0.1 {
		f = 2.35 * math.Pow(invXtt+0.213, 0.736)
	}

	// 两相雷诺数与抑制因子
	reTP := reL * math.Pow(f, 1.25)
	s := 1 / (1 + 2.53e-6*math.Pow(reTP, 1.17))

	// Forster-Zuber 核态沸腾项，压差按克拉佩龙方程折算
	tK := in.SatTemperature + 273.15
	dPsat := in.LatentHeat * vap.Density / tK * dTsat // Pa
	hNB := 0.00122 *
		math.Pow(liq.ThermalConductivity, 0.79) *
		math.Pow(liq.SpecificHeat, 0.45) *
		math.Pow(liq.Density, 0.49) /
		(math.Pow(sigma, 0.5) *
			math.Pow(liq.Viscosity, 0.29) *
			math.Pow(in.LatentHeat, 0.24) *
			math.Pow(vap.Density, 0.24)) *
		math.Pow(dTsat, 0.24) * math.Pow(dPsat, 0.75)

	h := f*hL + s*hNB
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, fmt.Errorf("%w: Chen 沸腾系数非法 %v", ErrThermoInconsistent, h)
	}
	return h, nil
}

type CondensingInput struct {
	Liquid model.FluidProperties

	MassFlux         float64
	Quality          float64
	Diameter         float64
	Pressure         float64 // kPa
	CriticalPressure float64 // kPa
}

// Shah 管内冷凝：hTP/hL0 按 Z 分段，下限为全液相系数的 10%
func ShahCondensing(in CondensingInput) (float64, error) {
	if in.MassFlux <= 0 || in.Diameter <= 0 || in.CriticalPressure <= 0 {
		return 0, fmt.Errorf("%w: Shah 输入非法 G=%v D=%v Pc=%v",
			ErrInvalidInput, in.MassFlux, in.Diameter, in.CriticalPressure)
	}
	x := in.Quality
	if x < 0.01 {
		x = 0.01
	}
	if x > 0.99 {
		x = 0.99
	}
	liq := in.Liquid
	reL0 := in.MassFlux * in.Diameter / liq.Viscosity
	hL0 := 0.023 * math.Pow(reL0, 0.8) * math.Pow(liq.Prandtl, 0.4) *
		liq.ThermalConductivity / in.Diameter

	pRed := in.Pressure / in.CriticalPressure
	z := math.Pow(1/x-1, 0.8) * math.Pow(pRed, 0.4)

	var ratio float64
	if z >= 1 {
		ratio = 1 + 3.8/math.Pow(z, 0.95)
	} else {
		ratio = math.Pow(1-x, 0.8) +
			3.8*math.Pow(x, 0.76)*math.Pow(1-x, 0.04)/math.Pow(pRed, 0.38)
	}
	if ratio < shahFloorRatio {
		ratio = shahFloorRatio
	}
	h := hL0 * ratio
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, fmt.Errorf("%w: Shah 冷凝系数非法 %v", ErrThermoInconsistent, h)
	}
	return h, nil
}

type TwoPhaseDropInput struct {
	Liquid model.FluidProperties
	Vapor  model.FluidProperties

	MassFlux  float64
	Quality   float64
	Diameter  float64
	Length    float64
	Roughness float64
}

// Lockhart-Martinelli + Chisholm 两相摩擦压降
// 返回压降与液相倍率 φL²
func LockhartMartinelli(in TwoPhaseDropInput) (dp, phi2 float64, err error) {
	if in.MassFlux <= 0 || in.Diameter <= 0 || in.Length <= 0 {
		return 0, 0, fmt.Errorf("%w: 两相压降输入非法", ErrInvalidInput)
	}
	x := in.Quality
	if x < 0.01 {
		x = 0.01
	}
	if x > 0.99 {
		x = 0.99
	}

	dpL, reL, err := allPhaseDrop(in.Liquid, in.MassFlux*(1-x), in.Diameter, in.Length, in.Roughness)
	if err != nil {
		return 0, 0, err
	}
	dpV, reV, err := allPhaseDrop(in.Vapor, in.MassFlux*x, in.Diameter, in.Length, in.Roughness)
	if err != nil {
		return 0, 0, err
	}
	if dpL <= 0 || dpV <= 0 {
		return 0, 0, fmt.Errorf("%w: 分相压降非正 dpL=%v dpV=%v", ErrThermoInconsistent, dpL, dpV)
	}

	xLM := math.Sqrt(dpL / dpV)
	c := chisholmConstant(reL, reV)
	phi2 = chisholmMultiplier(c, xLM)
	return phi2 * dpL, phi2, nil
}

// 液相倍率 φL² = 1 + C/X + 1/X²，超出封顶值时取封顶值
func chisholmMultiplier(c, xLM float64) float64 {
	phi2 := 1 + c/xLM + 1/(xLM*xLM)
	if phi2 > chisholmMultiplierCap {
		phi2 = chisholmMultiplierCap
	}
	return phi2
}

// 单相折算压降：按该相单独流过全截面计
func allPhaseDrop(props model.FluidProperties, massFlux, diameter, length, roughness float64) (dp, re float64, err error) {
	if props.Density <= 0 || props.Viscosity <= 0 {
		return 0, 0, fmt.Errorf("%w: 物性非法 rho=%v mu=%v", ErrInvalidInput, props.Density, props.Viscosity)
	}
	v := massFlux / props.Density
	re = Reynolds(props.Density, v, diameter, props.Viscosity)
	f := FrictionFactor(re, roughness/diameter)
	dp = f * (length / diameter) * props.Density * v * v / 2
	return dp, re, nil
}

// Chisholm 常数：按两相各自流态取 {5,10,12,20}
func chisholmConstant(reLiquid, reVapor float64) float64 {
	liqTurb := reLiquid >= reLaminarLimit
	vapTurb := reVapor >= reLaminarLimit
	switch {
	case liqTurb && vapTurb:
		return 20
	case liqTurb && !vapTurb:
		return 10
	case !liqTurb && vapTurb:
		return 12
	default:
		return 5
	}
}
