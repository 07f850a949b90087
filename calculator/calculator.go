package calculator

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"hx/fluid"
	"hx/model"
)

// 顶层求解
// 输入模式 × 流道分配 × 相变过程 × 传热系数模式 × 管型 的全状态空间，
// 专用路径失败时内部回退，核心输入错误直接以失败结果返回

func Solve(ctx context.Context, provider fluid.Provider, req model.CalcRequest) *SolveResult {
	cfg, err := NewConfig(req)
	if err != nil {
		return failure(err)
	}

	hot := hotStream(&cfg.Req)
	cold := coldStream(&cfg.Req)

	// 两侧物性查询相互独立，并发发起，全部完成后才进入后续步骤
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return hot.resolve(gctx, provider) })
	g.Go(func() error { return cold.resolve(gctx, provider) })
	if err := g.Wait(); err != nil {
		return failure(err)
	}

	duty, err := resolveDuty(cfg, hot, cold)
	if err != nil {
		return failure(err)
	}

	lmtd, err := LMTD(hot.tIn, hot.tOut, cold.tIn, cold.tOut, cfg.Counter)
	if err != nil {
		return failure(err)
	}

	// 流道分配一次解析，下游不再携带热冷交换标志
	tubeSide, annulusSide := assignSides(cfg, hot, cold)

	outcome, strategy, err := solveU(ctx, provider, cfg, tubeSide, annulusSide, lmtd)
	if err != nil {
		return failure(err)
	}

	actualArea := cfg.Geometry.ActualArea()
	requiredArea := outcome.RequiredArea
	u := outcome.U
	if requiredArea <= 0 {
		requiredArea = duty / (u * lmtd)
	}
	if u <= 0 {
		u = duty / (requiredArea * lmtd)
	}
	margin := (actualArea - requiredArea) / requiredArea * 100

	res := &SolveResult{
		Success:      true,
		Duty:         duty,
		LMTD:         lmtd,
		U:            u,
		ActualArea:   actualArea,
		RequiredArea: requiredArea,
		MarginPct:    margin,
		MarginClass:  classifyMargin(margin),
		HotFlow:      hot.flow,
		ColdFlow:     cold.flow,
		Breakdown:    outcome.Breakdown,
		ThreeZone:    outcome.ThreeZone,
		TubeDrop:     pathDrop(cfg, tubeSide, true),
		AnnulusDrop:  pathDrop(cfg, annulusSide, false),
		TempDist:     buildTempDist(hot, cold, cfg.Counter, calCfg.TempSamples),
		Strategy:     strategy,
	}
	log.WithFields(log.Fields{
		"duty":     duty,
		"lmtd":     lmtd,
		"u":        u,
		"margin":   margin,
		"strategy": strategy,
	}).Info("求解完成")
	return res
}

// 按输入模式解析热负荷与流量
func resolveDuty(cfg *Config, hot, cold *stream) (float64, error) {
	switch cfg.Req.InputMode {
	case model.InputModeFlow:
		duty := hot.flow * hot.enthalpyDrop()
		if duty <= 0 {
			return 0, fmt.Errorf("%w: 热负荷非正 %v", ErrThermoInconsistent, duty)
		}
		return duty, nil
	case model.InputModeDuty:
		duty := cfg.Req.Duty
		if hot.flow <= 0 {
			if err := hot.flowFromDuty(duty); err != nil {
				return 0, err
			}
		}
		if cold.flow <= 0 {
			if err := cold.flowFromDuty(duty); err != nil {
				return 0, err
			}
		}
		return duty, nil
	}
	return 0, fmt.Errorf("%w: 未知输入模式", ErrInvalidInput)
}

func assignSides(cfg *Config, hot, cold *stream) (tubeSide, annulusSide *stream) {
	if cfg.HotInTube {
		return hot, cold
	}
	return cold, hot
}

// 传热系数求解：按场景排出候选模型链，取第一个成功者
func solveU(ctx context.Context, provider fluid.Provider, cfg *Config, tubeSide, annulusSide *stream, lmtd float64) (*uOutcome, string, error) {
	if cfg.UseGivenU {
		return &uOutcome{U: cfg.GivenU}, "given", nil
	}

	geom := cfg.Geometry
	tubeArea, tubeD := geom.TubeSection()
	tubeArea *= float64(geom.TubeCount)
	annulus, err := geom.AnnulusSection()
	if err != nil {
		return nil, "", err
	}

	enhancement := 1.0
	if geom.Twisted && geom.Lobe != nil {
		enhancement = EnhancementFactor(geom.TwistPitch, geom.Lobe.DoMax, geom.Lobe.Lobes)
	}

	network := func() (*uOutcome, error) {
		tubeH := phaseChangeH(ctx, provider, tubeSide, tubeSide.flow/tubeArea, tubeD)
		shellH := phaseChangeH(ctx, provider, annulusSide, annulusSide.flow/annulus.Area, annulus.HydraulicDiameter)
		do, di := wallDiameters(geom)
		b, err := BuildNetwork(NetworkInput{
			TubeProps:         tubeSide.props,
			TubeVelocity:      tubeSide.flow / (tubeSide.props.Density * tubeArea),
			TubeDiameter:      tubeD,
			TubeHeating:       !tubeSide.hot,
			TubeH:             tubeH,
			ShellProps:        annulusSide.props,
			ShellVelocity:     annulusSide.flow / (annulusSide.props.Density * annulus.Area),
			ShellDiameter:     annulus.HydraulicDiameter,
			ShellHeating:      !annulusSide.hot,
			ShellH:            shellH,
			WallOuterDiameter: do,
			WallInnerDiameter: di,
			WallK:             cfg.WallK,
			FoulingInner:      cfg.FoulingInner,
			FoulingOuter:      cfg.FoulingOuter,
			Enhancement:       enhancement,
		})
		if err != nil {
			return nil, err
		}
		return &uOutcome{U: b.U, Breakdown: b}, nil
	}

	candidates := []uCandidate{}
	// 扭曲管 + 热流体在环隙全程冷凝（过热进、过冷出）时优先尝试三区模型
	if geom.Twisted && annulusSide.hot && annulusSide.condensing &&
		annulusSide.tsat > 0 &&
		annulusSide.tIn > annulusSide.tsat && annulusSide.tOut < annulusSide.tsat {
		candidates = append(candidates, uCandidate{
			name: "three_zone",
			run: func() (*uOutcome, error) {
				hot, cold := annulusSide, tubeSide
				res, err := solveThreeZone(ctx, provider, cfg, hot, cold, enhancement)
				if err != nil {
					return nil, err
				}
				return &uOutcome{
					U:            res.QTotal / (res.AreaTotal * lmtd),
					ThreeZone:    res,
					RequiredArea: res.AreaTotal,
				}, nil
			},
		})
	}
	candidates = append(candidates, uCandidate{name: "network", run: network})

	return firstSuccess(candidates)
}

// 相变侧对流系数：冷凝走 Shah，蒸发走 Chen；失败时返回 0，
// 由热阻网络用两相混合物性的单相关联式兜底
func phaseChangeH(ctx context.Context, provider fluid.Provider, s *stream, massFlux, diameter float64) float64 {
	if !s.phaseChange || s.twoPhase == nil {
		return 0
	}
	xMean := (s.qualityIn + s.qualityOut) / 2
	if s.condensing {
		pcrit, err := provider.Property(ctx, s.fluid, "Pcrit", "T", 0, "P", 0)
		if err != nil {
			log.WithFields(log.Fields{"fluid": s.fluid, "err": err}).
				Warn("临界压力查询失败，冷凝系数退回单相兜底")
			return 0
		}
		h, err := ShahCondensing(CondensingInput{
			Liquid:           s.twoPhase.Liquid,
			MassFlux:         massFlux,
			Quality:          xMean,
			Diameter:         diameter,
			Pressure:         s.pressure,
			CriticalPressure: pcrit,
		})
		if err != nil {
			log.WithFields(log.Fields{"err": err}).Warn("Shah 冷凝失败，退回单相兜底")
			return 0
		}
		return h
	}

	sigma, err := provider.Property(ctx, s.fluid, "I", "T", s.tsat, "P", s.pressure)
	if err != nil {
		sigma = 0 // ChenBoiling 内部取缺省表面张力
	}
	h, err := ChenBoiling(BoilingInput{
		Liquid:         s.twoPhase.Liquid,
		Vapor:          s.twoPhase.Vapor,
		MassFlux:       massFlux,
		Quality:        xMean,
		Diameter:       diameter,
		SatTemperature: s.tsat,
		LatentHeat:     s.twoPhase.Vapor.Enthalpy - s.twoPhase.Liquid.Enthalpy,
		SurfaceTension: sigma,
	})
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Warn("Chen 沸腾失败，退回单相兜底")
		return 0
	}
	return h
}

// 单侧流道压降，按相态与几何分支
// 压降是可选结果，任何失败都退化为更简单的模型而不是报错
func pathDrop(cfg *Config, s *stream, isTube bool) *DropDetail {
	geom := cfg.Geometry
	var area, diameter float64
	if isTube {
		area, diameter = geom.TubeSection()
		area *= float64(geom.TubeCount)
	} else {
		annulus, err := geom.AnnulusSection()
		if err != nil {
			log.WithFields(log.Fields{"err": err}).Warn("环隙解析失败，压降记零")
			return &DropDetail{Model: "single"}
		}
		area, diameter = annulus.Area, annulus.HydraulicDiameter
	}
	length := geom.FlowLength()
	massFlux := s.flow / area

	if !s.phaseChange {
		v := massFlux / s.props.Density
		d, err := SinglePhaseDrop(s.props, v, diameter, length, cfg.Roughness)
		if err != nil {
			log.WithFields(log.Fields{"err": err}).Warn("单相压降失败，记零")
			return &DropDetail{Model: "single"}
		}
		return d
	}

	tp := s.twoPhase
	// 全程冷凝且带过热/过冷段时按分段模型
	if s.condensing && s.tsat > 0 && s.tIn > s.tsat && s.tOut < s.tsat {
		total := s.enthalpyDrop()
		if total > 0 {
			seg := SegmentInput{
				Vapor:         tp.Vapor,
				Liquid:        tp.Liquid,
				Mixed:         tp.FluidProperties,
				MassFlux:      massFlux,
				Diameter:      diameter,
				Length:        length,
				Roughness:     cfg.Roughness,
				SuperheatFrac: (s.hIn - tp.Vapor.Enthalpy) / total,
				CondenseFrac:  (tp.Vapor.Enthalpy - tp.Liquid.Enthalpy) / total,
				SubcoolFrac:   (tp.Liquid.Enthalpy - s.hOut) / total,
			}
			if d, err := CondensationSegmentDrop(seg); err == nil {
				return d
			} else {
				log.WithFields(log.Fields{"err": err}).Warn("分段压降失败，退回两相模型")
			}
		}
	}
	return TwoPhaseDrop(TwoPhaseDropInput{
		Liquid:    tp.Liquid,
		Vapor:     tp.Vapor,
		MassFlux:  massFlux,
		Quality:   (s.qualityIn + s.qualityOut) / 2,
		Diameter:  diameter,
		Length:    length,
		Roughness: cfg.Roughness,
	}, tp.FluidProperties)
}
