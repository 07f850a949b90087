package calculator

import (
	"fmt"
	"math"

	"hx/model"
)

// 热阻网络
// 内侧对流、壁面导热、外侧对流与两侧污垢热阻统一折算到外表面，
// 扭曲管时对流项除以强化系数 E，污垢与壁面导热不受 E 影响

type NetworkInput struct {
	TubeProps    model.FluidProperties // 管程主体物性
	TubeVelocity float64
	TubeDiameter float64 // 管程特征直径
	TubeHeating  bool    // 管程流体被加热
	TubeH        float64 // 管程已知对流系数（相变路径给出），0 表示由关联式计算

	ShellProps    model.FluidProperties // 壳程主体物性
	ShellVelocity float64
	ShellDiameter float64 // 环隙水力直径
	ShellHeating  bool
	ShellH        float64

	// 壁面折算直径
	WallOuterDiameter float64
	WallInnerDiameter float64

	WallK        float64
	FoulingInner float64
	FoulingOuter float64

	Enhancement float64 // 扭曲强化系数 E，光管取 1
}

// 热阻分解，全部以外表面为基准，单位 m2·K/W
type Breakdown struct {
	U      float64 `json:"u"`
	Hi     float64 `json:"hi"`
	Ho     float64 `json:"ho"`
	Ri     float64 `json:"ri"`
	Ro     float64 `json:"ro"`
	Rwall  float64 `json:"r_wall"`
	Rfi    float64 `json:"rf_i"`
	Rfo    float64 `json:"rf_o"`
	Rtotal float64 `json:"r_total"`

	RiPct    float64 `json:"ri_pct"`
	RoPct    float64 `json:"ro_pct"`
	RwallPct float64 `json:"r_wall_pct"`
	RfiPct   float64 `json:"rf_i_pct"`
	RfoPct   float64 `json:"rf_o_pct"`
}

func BuildNetwork(in NetworkInput) (*Breakdown, error) {
	if in.WallOuterDiameter <= in.WallInnerDiameter || in.WallInnerDiameter <= 0 {
		return nil, fmt.Errorf("%w: 壁面直径非法 do=%v di=%v",
			ErrInvalidInput, in.WallOuterDiameter, in.WallInnerDiameter)
	}
	if in.WallK <= 0 {
		return nil, fmt.Errorf("%w: 壁面导热系数非正 %v", ErrInvalidInput, in.WallK)
	}
	e := in.Enhancement
	if e < 1 {
		e = 1
	}

	hi := in.TubeH
	if hi <= 0 {
		re := Reynolds(in.TubeProps.Density, in.TubeVelocity, in.TubeDiameter, in.TubeProps.Viscosity)
		nu := NusseltSingle(re, in.TubeProps.Prandtl, in.TubeHeating)
		hi = ConvectiveCoefficient(nu, in.TubeProps.ThermalConductivity, in.TubeDiameter)
	}
	ho := in.ShellH
	if ho <= 0 {
		re := Reynolds(in.ShellProps.Density, in.ShellVelocity, in.ShellDiameter, in.ShellProps.Viscosity)
		nu := NusseltSingle(re, in.ShellProps.Prandtl, in.ShellHeating)
		ho = ConvectiveCoefficient(nu, in.ShellProps.ThermalConductivity, in.ShellDiameter)
	}
	if hi <= 0 || ho <= 0 || math.IsNaN(hi) || math.IsNaN(ho) {
		return nil, fmt.Errorf("%w: 对流系数计算失败 hi=%v ho=%v", ErrThermoInconsistent, hi, ho)
	}

	// 扭曲强化只作用在对流项
	hi *= e
	ho *= e

	do := in.WallOuterDiameter
	di := in.WallInnerDiameter
	ri := do / (hi * di)
	ro := 1 / ho
	rwall := do * math.Log(do/di) / (2 * in.WallK) // 对数平均壁面面积
	rfi := in.FoulingInner * do / di
	rfo := in.FoulingOuter

	total := ri + ro + rwall + rfi + rfo
	b := &Breakdown{
		U:      1 / total,
		Hi:     hi,
		Ho:     ho,
		Ri:     ri,
		Ro:     ro,
		Rwall:  rwall,
		Rfi:    rfi,
		Rfo:    rfo,
		Rtotal: total,
	}
	b.RiPct = ri / total * 100
	b.RoPct = ro / total * 100
	b.RwallPct = rwall / total * 100
	b.RfiPct = rfi / total * 100
	b.RfoPct = rfo / total * 100
	return b, nil
}

// 扭曲强化系数 E，由螺距径比与头数决定，夹在 [1.0, 2.5]
// 螺距越小扰动越强
func EnhancementFactor(pitch, doMax float64, lobes int) float64 {
	if pitch <= 0 || doMax <= 0 || lobes <= 0 {
		return 1.0
	}
	ratio := math.Pi * doMax / pitch
	e := 1 + 0.12*math.Pow(float64(lobes), 0.7)*math.Pow(ratio, 0.6)
	if e < 1.0 {
		e = 1.0
	}
	if e > 2.5 {
		e = 2.5
	}
	return e
}
