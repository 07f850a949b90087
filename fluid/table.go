package fluid

import (
	"context"
	"fmt"

	"hx/model"
)

// 内置表格物性库
// 以温度为索引的等距/单调节点表，线性插值，代替外部 CoolProp 进程

type fluidTable struct {
	name   string
	liquid []liquidRow // 稠密液相表，可为空
	sat    []satRow    // 饱和线
	pcrit  float64     // kPa
}

type tableProvider struct {
	fluids map[string]*fluidTable
}

func newTableProvider() (*tableProvider, error) {
	p := &tableProvider{fluids: map[string]*fluidTable{
		"water": {name: "water", liquid: waterLiquid, sat: waterSat, pcrit: waterCriticalPressure},
		"r134a": {name: "r134a", sat: r134aSat, pcrit: r134aCriticalPressure},
	}}
	// 节点必须沿温度严格递增，否则插值无意义
	for name, tbl := range p.fluids {
		for i := 1; i < len(tbl.sat); i++ {
			if tbl.sat[i].T <= tbl.sat[i-1].T || tbl.sat[i].P <= tbl.sat[i-1].P {
				return nil, fmt.Errorf("%s 饱和表节点非单调: 第 %d 行", name, i)
			}
		}
		for i := 1; i < len(tbl.liquid); i++ {
			if tbl.liquid[i].T <= tbl.liquid[i-1].T {
				return nil, fmt.Errorf("%s 液相表节点非单调: 第 %d 行", name, i)
			}
		}
	}
	return p, nil
}

// 已收录的流体清单，供前端下拉选择
func Fluids() []string {
	return []string{"water", "r134a"}
}

// 线性插值
func linearInterp(x, x0, y0, x1, y1 float64) float64 {
	if x0 == x1 {
		return y0
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// 在饱和表上按 key 列定位区间后取 val 列，越界取端点值
func interpSat(rows []satRow, key func(r satRow) float64, x float64, val func(r satRow) float64) float64 {
	if x <= key(rows[0]) {
		return val(rows[0])
	}
	last := len(rows) - 1
	if x >= key(rows[last]) {
		return val(rows[last])
	}
	for i := 0; i < last; i++ {
		if x >= key(rows[i]) && x <= key(rows[i+1]) {
			return linearInterp(x, key(rows[i]), val(rows[i]), key(rows[i+1]), val(rows[i+1]))
		}
	}
	return val(rows[last])
}

func (tbl *fluidTable) satTemperature(p float64) float64 {
	return interpSat(tbl.sat, func(r satRow) float64 { return r.P }, p,
		func(r satRow) float64 { return r.T })
}

func (tbl *fluidTable) satPressure(t float64) float64 {
	return interpSat(tbl.sat, func(r satRow) float64 { return r.T }, t,
		func(r satRow) float64 { return r.P })
}

func (tbl *fluidTable) satLiquidAt(t float64) model.FluidProperties {
	at := func(val func(r satRow) float64) float64 {
		return interpSat(tbl.sat, func(r satRow) float64 { return r.T }, t, val)
	}
	props := model.FluidProperties{
		Density:             at(func(r satRow) float64 { return r.RhoF }),
		SpecificHeat:        at(func(r satRow) float64 { return r.CpF }),
		Enthalpy:            at(func(r satRow) float64 { return r.HF }),
		ThermalConductivity: at(func(r satRow) float64 { return r.KF }),
		Viscosity:           at(func(r satRow) float64 { return r.MuF }),
	}
	props.Prandtl = props.SpecificHeat * props.Viscosity / props.ThermalConductivity
	return props
}

func (tbl *fluidTable) satVaporAt(t float64) model.FluidProperties {
	at := func(val func(r satRow) float64) float64 {
		return interpSat(tbl.sat, func(r satRow) float64 { return r.T }, t, val)
	}
	props := model.FluidProperties{
		Density:             at(func(r satRow) float64 { return r.RhoG }),
		SpecificHeat:        at(func(r satRow) float64 { return r.CpG }),
		Enthalpy:            at(func(r satRow) float64 { return r.HG }),
		ThermalConductivity: at(func(r satRow) float64 { return r.KG }),
		Viscosity:           at(func(r satRow) float64 { return r.MuG }),
	}
	props.Prandtl = props.SpecificHeat * props.Viscosity / props.ThermalConductivity
	return props
}

func (tbl *fluidTable) surfaceTension(t float64) float64 {
	return interpSat(tbl.sat, func(r satRow) float64 { return r.T }, t,
		func(r satRow) float64 { return r.Sigma })
}

// 单相液体物性，优先用稠密液相表
func (tbl *fluidTable) liquidAt(t float64) model.FluidProperties {
	rows := tbl.liquid
	if len(rows) == 0 || t > rows[len(rows)-1].T {
		return tbl.satLiquidAt(t)
	}
	if t <= rows[0].T {
		t = rows[0].T
	}
	var lo, hi liquidRow
	for i := 0; i < len(rows)-1; i++ {
		if t >= rows[i].T && t <= rows[i+1].T {
			lo, hi = rows[i], rows[i+1]
			break
		}
	}
	if hi.T == 0 && lo.T == 0 {
		lo, hi = rows[len(rows)-2], rows[len(rows)-1]
	}
	at := func(f func(r liquidRow) float64) float64 {
		return linearInterp(t, lo.T, f(lo), hi.T, f(hi))
	}
	props := model.FluidProperties{
		Density:             at(func(r liquidRow) float64 { return r.Rho }),
		SpecificHeat:        at(func(r liquidRow) float64 { return r.Cp }),
		Enthalpy:            at(func(r liquidRow) float64 { return r.H }),
		ThermalConductivity: at(func(r liquidRow) float64 { return r.K }),
		Viscosity:           at(func(r liquidRow) float64 { return r.Mu }),
	}
	props.Prandtl = props.SpecificHeat * props.Viscosity / props.ThermalConductivity
	return props
}

// 过热气物性：以饱和气为基，密度按理想气体随温度折算，焓按 cp 外推
func (tbl *fluidTable) vaporAt(t, tsat float64) model.FluidProperties {
	props := tbl.satVaporAt(tsat)
	if t > tsat {
		props.Density *= (tsat + 273.15) / (t + 273.15)
		props.Enthalpy += props.SpecificHeat * (t - tsat)
	}
	return props
}

func (p *tableProvider) table(fluid string) (*fluidTable, error) {
	tbl, ok := p.fluids[fluid]
	if !ok {
		return nil, fmt.Errorf("%w: 未收录流体 %q", ErrOracle, fluid)
	}
	return tbl, nil
}

func (p *tableProvider) Batch(ctx context.Context, fluid string, t, pr float64) (model.FluidProperties, error) {
	if err := ctx.Err(); err != nil {
		return model.FluidProperties{}, err
	}
	tbl, err := p.table(fluid)
	if err != nil {
		return model.FluidProperties{}, err
	}
	tsat := tbl.satTemperature(pr)
	var props model.FluidProperties
	if pr <= 0 || t < tsat {
		props = tbl.liquidAt(t)
	} else {
		props = tbl.vaporAt(t, tsat)
	}
	return validateBatch(props)
}

func (p *tableProvider) BatchTwoPhase(ctx context.Context, fluid string, t, pr, x float64) (model.TwoPhaseProperties, error) {
	if err := ctx.Err(); err != nil {
		return model.TwoPhaseProperties{}, err
	}
	tbl, err := p.table(fluid)
	if err != nil {
		return model.TwoPhaseProperties{}, err
	}
	tsat := tbl.satTemperature(pr)
	if pr <= 0 {
		tsat = t
	}
	liquid := tbl.satLiquidAt(tsat)
	vapor := tbl.satVaporAt(tsat)
	mixed, err := MixTwoPhase(liquid, vapor, x)
	if err != nil {
		return model.TwoPhaseProperties{}, err
	}
	return model.TwoPhaseProperties{
		FluidProperties: mixed,
		Liquid:          liquid,
		Vapor:           vapor,
		Quality:         x,
	}, nil
}

func (p *tableProvider) Property(ctx context.Context, fluid, symbol, in1 string, v1 float64, in2 string, v2 float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	tbl, err := p.table(fluid)
	if err != nil {
		return 0, err
	}
	if symbol == "Pcrit" {
		return checkProperty(symbol, tbl.pcrit)
	}

	switch {
	case in1 == "T" && in2 == "P":
		if symbol == "I" {
			return checkProperty(symbol, tbl.surfaceTension(v1))
		}
		props, err := p.Batch(ctx, fluid, v1, v2)
		if err != nil {
			return 0, err
		}
		return pick(symbol, props)
	case in1 == "P" && in2 == "Q":
		tsat := tbl.satTemperature(v1)
		return p.saturationProperty(tbl, symbol, tsat, v2)
	case in1 == "T" && in2 == "Q":
		if symbol == "P" {
			return checkProperty(symbol, tbl.satPressure(v1))
		}
		return p.saturationProperty(tbl, symbol, v1, v2)
	}
	return 0, fmt.Errorf("%w: 不支持的输入对 (%s,%s)", ErrOracle, in1, in2)
}

func (p *tableProvider) saturationProperty(tbl *fluidTable, symbol string, tsat, x float64) (float64, error) {
	if symbol == "T" {
		return checkProperty(symbol, tsat)
	}
	if symbol == "I" {
		return checkProperty(symbol, tbl.surfaceTension(tsat))
	}
	mixed, err := MixTwoPhase(tbl.satLiquidAt(tsat), tbl.satVaporAt(tsat), x)
	if err != nil {
		return 0, err
	}
	return pick(symbol, mixed)
}

func pick(symbol string, props model.FluidProperties) (float64, error) {
	switch symbol {
	case "D":
		return checkProperty(symbol, props.Density)
	case "C":
		return checkProperty(symbol, props.SpecificHeat)
	case "H":
		return checkProperty(symbol, props.Enthalpy)
	case "L":
		return checkProperty(symbol, props.ThermalConductivity)
	case "V":
		return checkProperty(symbol, props.Viscosity)
	case "Prandtl":
		return checkProperty(symbol, props.Prandtl)
	}
	return 0, fmt.Errorf("%w: 未知物性符号 %q", ErrOracle, symbol)
}

func validateBatch(props model.FluidProperties) (model.FluidProperties, error) {
	for _, item := range []struct {
		symbol string
		value  float64
	}{
		{"D", props.Density},
		{"C", props.SpecificHeat},
		{"H", props.Enthalpy},
		{"L", props.ThermalConductivity},
		{"V", props.Viscosity},
		{"Prandtl", props.Prandtl},
	} {
		if _, err := checkProperty(item.symbol, item.value); err != nil {
			return model.FluidProperties{}, err
		}
	}
	return props, nil
}
