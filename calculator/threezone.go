package calculator

import (
	"context"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"hx/exchanger"
	"hx/fluid"
)

// 三区冷凝模型
// 热流体 过热气 → 饱和 → 过冷液，冷却剂单相
// 按饱和气/饱和液焓把总负荷切成 脱过热 / 冷凝 / 过冷 三个区，
// 逐区求对流系数、传热温差与所需面积后求和

type ZoneResult struct {
	Name    string  `json:"name"`
	Duty    float64 `json:"duty"`    // W
	Area    float64 `json:"area"`    // m2
	U       float64 `json:"u"`       // W/(m2·K)
	H       float64 `json:"h"`       // 相变侧对流系数
	LMTD    float64 `json:"lmtd"`    // ℃
	HotIn   float64 `json:"hot_in"`  // 区段端温
	HotOut  float64 `json:"hot_out"`
	ColdIn  float64 `json:"cold_in"`
	ColdOut float64 `json:"cold_out"`
}

type ThreeZoneResult struct {
	Desuperheat ZoneResult `json:"desuperheat"`
	Condense    ZoneResult `json:"condense"`
	Subcool     ZoneResult `json:"subcool"`
	QTotal      float64    `json:"q_total"`
	AreaTotal   float64    `json:"area_total"`
	TSat        float64    `json:"t_sat"`
}

// 气区/膜状冷凝区的扭曲强化区间，由整体强化系数 E 线性映射
func gasZoneEnhancement(e float64) float64 {
	v := 1.6 + 0.4*(e-1)/1.5
	return math.Min(2.0, math.Max(1.6, v))
}

func filmZoneEnhancement(e float64) float64 {
	v := 2.0 + 1.5*(e-1)/1.5
	return math.Min(3.5, math.Max(2.0, v))
}

// 求解三区模型，任一区失败即返回错误，由上层退回普通热阻网络
// 约定热流体走环隙（外侧冷凝），冷却剂走管程
func solveThreeZone(ctx context.Context, provider fluid.Provider, cfg *Config, hot, cold *stream, enhancement float64) (*ThreeZoneResult, error) {
	if hot.flow <= 0 || cold.flow <= 0 {
		return nil, fmt.Errorf("%w: 三区模型需要已解析的流量", ErrInvalidInput)
	}
	tsat := hot.tsat
	if tsat <= 0 {
		var err error
		tsat, err = provider.Property(ctx, hot.fluid, "T", "P", hot.pressure, "Q", 0)
		if err != nil {
			return nil, err
		}
	}
	if hot.tIn <= tsat || hot.tOut >= tsat {
		return nil, fmt.Errorf("%w: 进出口温度未跨过饱和线 tsat=%.2f", ErrThermoInconsistent, tsat)
	}

	hg, err := provider.Property(ctx, hot.fluid, "H", "P", hot.pressure, "Q", 1)
	if err != nil {
		return nil, err
	}
	hf, err := provider.Property(ctx, hot.fluid, "H", "P", hot.pressure, "Q", 0)
	if err != nil {
		return nil, err
	}

	m := hot.flow
	qDesup := m * (hot.hIn - hg)
	qCond := m * (hg - hf)
	qSub := m * (hf - hot.hOut)
	if qDesup <= 0 || qCond <= 0 || qSub <= 0 {
		return nil, fmt.Errorf("%w: 区段负荷非正 qd=%.1f qc=%.1f qs=%.1f",
			ErrThermoInconsistent, qDesup, qCond, qSub)
	}
	qTotal := qDesup + qCond + qSub

	// 冷却剂节点温度回推
	mc := cold.flow * cold.props.SpecificHeat
	if mc <= 0 {
		return nil, fmt.Errorf("%w: 冷却剂热容流量非正", ErrThermoInconsistent)
	}
	// 逆流：冷却剂从过冷区端进入；并流：从脱过热区端进入
	var tc0, tc1, tc2, tc3 float64
	if cfg.Counter {
		tc0 = cold.tIn
		tc1 = tc0 + qSub/mc
		tc2 = tc1 + qCond/mc
		tc3 = tc2 + qDesup/mc
	} else {
		tc3 = cold.tIn
		tc2 = tc3 + qDesup/mc
		tc1 = tc2 + qCond/mc
		tc0 = tc1 + qSub/mc
	}

	geom := cfg.Geometry
	annulus, err := geom.AnnulusSection()
	if err != nil {
		return nil, err
	}
	tubeArea, tubeD := geom.TubeSection()
	tubeArea *= float64(geom.TubeCount)

	// 冷却剂管程对流系数，整个流程按单一均温物性计；冷却剂被加热
	vCold := cold.flow / (cold.props.Density * tubeArea)
	reCold := Reynolds(cold.props.Density, vCold, tubeD, cold.props.Viscosity)
	nuCold := NusseltSingle(reCold, cold.props.Prandtl, true)
	hCold := ConvectiveCoefficient(nuCold, cold.props.ThermalConductivity, tubeD)
	if hCold <= 0 {
		return nil, fmt.Errorf("%w: 冷却剂对流系数非正", ErrThermoInconsistent)
	}

	do, di := wallDiameters(geom)
	rWall := do * math.Log(do/di) / (2 * cfg.WallK)
	rFoul := cfg.FoulingOuter + cfg.FoulingInner*do/di

	zoneU := func(hHot float64) float64 {
		return 1 / (1/hHot + do/(di*hCold) + rWall + rFoul)
	}
	zone := func(name string, q, hHot, thIn, thOut, tcIn, tcOut float64) (ZoneResult, error) {
		lm, err := LMTD(thIn, thOut, tcIn, tcOut, true) // 节点温度已按流向排好
		if err != nil {
			return ZoneResult{}, err
		}
		u := zoneU(hHot)
		return ZoneResult{
			Name: name, Duty: q, U: u, H: hHot, LMTD: lm,
			Area:  q / (u * lm),
			HotIn: thIn, HotOut: thOut, ColdIn: tcIn, ColdOut: tcOut,
		}, nil
	}

	// 脱过热区：气相 Dittus-Boelter × 扭曲气区强化
	vapProps, err := provider.Batch(ctx, hot.fluid, (hot.tIn+tsat)/2, hot.pressure)
	if err != nil {
		return nil, err
	}
	vVap := m / (vapProps.Density * annulus.Area)
	reVap := Reynolds(vapProps.Density, vVap, annulus.HydraulicDiameter, vapProps.Viscosity)
	nuVap := dittusBoelter(reVap, vapProps.Prandtl, false)
	hDesup := ConvectiveCoefficient(nuVap, vapProps.ThermalConductivity, annulus.HydraulicDiameter) *
		gasZoneEnhancement(enhancement)

	// 冷凝区：Nusselt 膜状冷凝 × 扭曲膜区强化
	tp, err := provider.BatchTwoPhase(ctx, hot.fluid, tsat, hot.pressure, 0.5)
	if err != nil {
		return nil, err
	}
	coldMid := (tc1 + tc2) / 2
	dtFilm := (tsat - coldMid) / 2 // 壁温近似取饱和温度与冷却剂中温的中值
	if dtFilm < 1 {
		dtFilm = 1
	}
	hfg := hg - hf
	liq := tp.Liquid
	hFilm := 0.725 * math.Pow(
		gravity*liq.Density*(liq.Density-tp.Vapor.Density)*
			math.Pow(liq.ThermalConductivity, 3)*hfg/
			(liq.Viscosity*dtFilm*do), 0.25) *
		filmZoneEnhancement(enhancement)

	// 过冷区：液相 Dittus-Boelter
	liqProps, err := provider.Batch(ctx, hot.fluid, (tsat+hot.tOut)/2, hot.pressure)
	if err != nil {
		return nil, err
	}
	vLiq := m / (liqProps.Density * annulus.Area)
	reLiq := Reynolds(liqProps.Density, vLiq, annulus.HydraulicDiameter, liqProps.Viscosity)
	nuLiq := NusseltSingle(reLiq, liqProps.Prandtl, false)
	hSub := ConvectiveCoefficient(nuLiq, liqProps.ThermalConductivity, annulus.HydraulicDiameter)

	desup, err := zone("desuperheat", qDesup, hDesup, hot.tIn, tsat, tc2, tc3)
	if err != nil {
		return nil, err
	}
	cond, err := zone("condense", qCond, hFilm, tsat, tsat, tc1, tc2)
	if err != nil {
		return nil, err
	}
	sub, err := zone("subcool", qSub, hSub, tsat, hot.tOut, tc0, tc1)
	if err != nil {
		return nil, err
	}

	res := &ThreeZoneResult{
		Desuperheat: desup,
		Condense:    cond,
		Subcool:     sub,
		QTotal:      qTotal,
		AreaTotal:   desup.Area + cond.Area + sub.Area,
		TSat:        tsat,
	}
	log.WithFields(log.Fields{
		"qTotal":    qTotal,
		"areaTotal": res.AreaTotal,
		"tsat":      tsat,
	}).Debug("三区模型求解完成")
	return res, nil
}

// 壁面折算直径：扭曲管取峰径，光管取内管外径
func wallDiameters(geom *exchanger.Geometry) (do, di float64) {
	if geom.Twisted && geom.Lobe != nil {
		wall := (geom.InnerOuterDiameter - geom.InnerInnerDiameter) / 2
		return geom.Lobe.DoMax, geom.Lobe.DoMax - 2*wall
	}
	return geom.InnerOuterDiameter, geom.InnerInnerDiameter
}
