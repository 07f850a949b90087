package calculator

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"hx/fluid"
	"hx/model"
)

// 单侧流体的归一化状态
// 进出口状态值 0/1/分数统一成 相态+干度，
// 两个单相端点夹住饱和温度时也判定为全相变

type stream struct {
	fluid    string
	hot      bool
	tIn      float64
	tOut     float64
	pressure float64
	flow     float64 // kg/s，duty 模式下可能待求
	stateIn  float64
	stateOut float64
	process  string

	phaseChange bool
	condensing  bool    // 相变方向：true 冷凝，false 蒸发
	qualityIn   float64 // 相变时有效
	qualityOut  float64
	tsat        float64

	hIn, hOut float64               // 端点焓，J/kg
	props     model.FluidProperties // 主体物性（单相均温 / 两相混合）
	twoPhase  *model.TwoPhaseProperties
}

func hotStream(req *model.CalcRequest) *stream {
	return &stream{
		fluid: req.HotFluid, hot: true,
		tIn: req.HotTin, tOut: req.HotTout, pressure: req.HotPressure,
		flow: req.HotFlow, stateIn: req.HotStateIn, stateOut: req.HotStateOut,
		process: req.HotProcess,
	}
}

func coldStream(req *model.CalcRequest) *stream {
	return &stream{
		fluid: req.ColdFluid, hot: false,
		tIn: req.ColdTin, tOut: req.ColdTout, pressure: req.ColdPressure,
		flow: req.ColdFlow, stateIn: req.ColdStateIn, stateOut: req.ColdStateOut,
		process: req.ColdProcess,
	}
}

// 相态归一化 + 端点焓与主体物性解析
func (s *stream) resolve(ctx context.Context, provider fluid.Provider) error {
	s.detectPhase(ctx, provider)

	var err error
	if s.hIn, err = s.endpointEnthalpy(ctx, provider, s.tIn, s.stateIn, true); err != nil {
		return err
	}
	if s.hOut, err = s.endpointEnthalpy(ctx, provider, s.tOut, s.stateOut, false); err != nil {
		return err
	}

	if s.phaseChange {
		xMean := (s.qualityIn + s.qualityOut) / 2
		tp, err := provider.BatchTwoPhase(ctx, s.fluid, s.tsat, s.pressure, xMean)
		if err != nil {
			return err
		}
		s.twoPhase = &tp
		s.props = tp.FluidProperties
		return nil
	}
	tMean := (s.tIn + s.tOut) / 2
	s.props, err = provider.Batch(ctx, s.fluid, tMean, s.pressure)
	return err
}

// 相态判定
// 状态值给定两相端点时直接采用；单相端点之间夹住饱和温度时按全相变处理；
// 饱和温度查询失败时按单相缺省（有文档的回退）
func (s *stream) detectPhase(ctx context.Context, provider fluid.Provider) {
	if s.process == model.ProcessCooling {
		return
	}
	tsat, err := provider.Property(ctx, s.fluid, "T", "P", s.pressure, "Q", 0)
	if err != nil {
		log.WithFields(log.Fields{"fluid": s.fluid, "err": err}).
			Warn("饱和温度查询失败，按单相处理")
		return
	}
	s.tsat = tsat

	inTwoPhase := s.stateIn >= 0 && s.stateIn <= 1
	outTwoPhase := s.stateOut >= 0 && s.stateOut <= 1
	if inTwoPhase || outTwoPhase {
		s.phaseChange = true
		s.qualityIn = clampQuality(s.stateIn, s.tIn, tsat)
		s.qualityOut = clampQuality(s.stateOut, s.tOut, tsat)
		s.condensing = s.qualityIn > s.qualityOut
		return
	}
	// 两个单相端点之间跨过饱和线
	if s.tIn > tsat && s.tOut < tsat {
		s.phaseChange = true
		s.condensing = true
		s.qualityIn, s.qualityOut = 1, 0
		return
	}
	if s.tIn < tsat && s.tOut > tsat {
		s.phaseChange = true
		s.condensing = false
		s.qualityIn, s.qualityOut = 0, 1
	}
}

// 单相端点按温度相对饱和线折算干度
func clampQuality(state, t, tsat float64) float64 {
	if state >= 0 && state <= 1 {
		return state
	}
	if t >= tsat {
		return 1
	}
	return 0
}

// 端点焓：两相端点用 (P,Q)，单相端点用 (T,P)
func (s *stream) endpointEnthalpy(ctx context.Context, provider fluid.Provider, t, state float64, inlet bool) (float64, error) {
	if s.phaseChange && state >= 0 && state <= 1 {
		return provider.Property(ctx, s.fluid, "H", "P", s.pressure, "Q", state)
	}
	props, err := provider.Batch(ctx, s.fluid, t, s.pressure)
	if err != nil {
		return 0, err
	}
	return props.Enthalpy, nil
}

// 端点焓差的绝对值
func (s *stream) enthalpyDrop() float64 {
	d := s.hIn - s.hOut
	if d < 0 {
		return -d
	}
	return d
}

// 由热负荷反求流量，焓差近零时报热力学矛盾
func (s *stream) flowFromDuty(duty float64) error {
	dh := s.enthalpyDrop()
	if dh < 1 {
		return fmt.Errorf("%w: 焓差近零，无法由热负荷反求流量", ErrThermoInconsistent)
	}
	s.flow = duty / dh
	return nil
}
