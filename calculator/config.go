package calculator

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
	"hx/exchanger"
	"hx/model"
)

var calCfg EngineConfig

// 引擎缺省参数，来自 conf/config.ini，缺文件时全部走内置缺省值
type EngineConfig struct {
	FoulingInner float64 // m2·K/W
	FoulingOuter float64 // m2·K/W
	Roughness    float64 // m
	WallMaterial string
	TempSamples  int // 温度分布采样点数
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		file, err = ini.Load("../conf/config.ini")
	}
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Info("配置文件缺失，使用内置缺省参数")
		file = ini.Empty()
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	calCfg = EngineConfig{
		FoulingInner: file.Section("calculator").Key("FoulingInner").MustFloat64(0.0002),
		FoulingOuter: file.Section("calculator").Key("FoulingOuter").MustFloat64(0.0002),
		Roughness:    file.Section("calculator").Key("Roughness").MustFloat64(1.5e-5),
		WallMaterial: file.Section("calculator").Key("WallMaterial").MustString("stainless_304"),
		TempSamples:  file.Section("calculator").Key("TempSamples").MustInt(21),
	}
}

// 一次求解的完整配置：请求归一化、校验一次完成，求解过程中只读
type Config struct {
	Req      model.CalcRequest
	Geometry *exchanger.Geometry

	Counter   bool // 逆流
	HotInTube bool // 热流体走管程

	UseGivenU bool
	GivenU    float64

	WallK        float64
	FoulingInner float64
	FoulingOuter float64
	Roughness    float64
}

// 构造配置并完成边界校验
// 校验全部发生在任何物性查询之前
func NewConfig(req model.CalcRequest) (*Config, error) {
	applyDefaults(&req)

	for name, t := range map[string]float64{
		"hot_t_in": req.HotTin, "hot_t_out": req.HotTout,
		"cold_t_in": req.ColdTin, "cold_t_out": req.ColdTout,
	} {
		if math.IsNaN(t) || t <= 0 {
			return nil, fmt.Errorf("%w: 温度 %s=%v", ErrInvalidInput, name, t)
		}
	}
	if req.HotTin < req.HotTout {
		return nil, fmt.Errorf("%w: 热流体进口温度低于出口", ErrInvalidInput)
	}
	if req.ColdTout < req.ColdTin {
		return nil, fmt.Errorf("%w: 冷流体出口温度低于进口", ErrInvalidInput)
	}
	// 热端必须高于冷端，否则换热方向不成立
	if req.HotTin <= req.ColdTout {
		return nil, fmt.Errorf("%w: 热流体进口温度 %v 不高于冷流体出口温度 %v",
			ErrInvalidInput, req.HotTin, req.ColdTout)
	}
	if req.HotFlow < 0 || req.ColdFlow < 0 {
		return nil, fmt.Errorf("%w: 流量为负", ErrInvalidInput)
	}
	switch req.InputMode {
	case model.InputModeFlow:
		if req.HotFlow <= 0 || req.ColdFlow <= 0 {
			return nil, fmt.Errorf("%w: flow 模式必须给定两侧流量", ErrInvalidInput)
		}
	case model.InputModeDuty:
		if req.Duty <= 0 || math.IsNaN(req.Duty) {
			return nil, fmt.Errorf("%w: duty 模式必须给定正的热负荷", ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("%w: 未知输入模式 %q", ErrInvalidInput, req.InputMode)
	}
	for name, q := range map[string]float64{
		"hot_state_in": req.HotStateIn, "hot_state_out": req.HotStateOut,
		"cold_state_in": req.ColdStateIn, "cold_state_out": req.ColdStateOut,
	} {
		// -1 表示单相，其余必须落在 [0,1]
		if q != stateSinglePhase && (q < 0 || q > 1 || math.IsNaN(q)) {
			return nil, fmt.Errorf("%w: 干度 %s=%v 超出 [0,1]", ErrInvalidInput, name, q)
		}
	}
	if req.CoefficientMode == model.CoefficientGiven && req.GivenU <= 0 {
		return nil, fmt.Errorf("%w: given 模式必须给定正的传热系数", ErrInvalidInput)
	}

	geom, err := exchanger.NewGeometry(&req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	cfg := &Config{
		Req:          req,
		Geometry:     geom,
		Counter:      req.Arrangement == model.FlowCounter,
		HotInTube:    req.FlowPath == model.HotInTube,
		UseGivenU:    req.CoefficientMode == model.CoefficientGiven,
		GivenU:       req.GivenU,
		WallK:        exchanger.ThermalConductivity(req.WallMaterial),
		FoulingInner: req.FoulingInner,
		FoulingOuter: req.FoulingOuter,
		Roughness:    req.Roughness,
	}
	return cfg, nil
}

const stateSinglePhase = -1

func applyDefaults(req *model.CalcRequest) {
	if req.InputMode == "" {
		req.InputMode = model.InputModeFlow
	}
	if req.FlowPath == "" {
		req.FlowPath = model.HotInTube
	}
	if req.TubeType == "" {
		req.TubeType = model.TubeSmooth
	}
	if req.Arrangement == "" {
		req.Arrangement = model.FlowCounter
	}
	if req.CoefficientMode == "" {
		req.CoefficientMode = model.CoefficientComputed
	}
	if req.HotFluid == "" {
		req.HotFluid = "water"
	}
	if req.ColdFluid == "" {
		req.ColdFluid = "water"
	}
	if req.HotPressure <= 0 {
		req.HotPressure = 101.325
	}
	if req.ColdPressure <= 0 {
		req.ColdPressure = 101.325
	}
	if req.WallMaterial == "" {
		req.WallMaterial = calCfg.WallMaterial
	}
	if req.FoulingInner <= 0 {
		req.FoulingInner = calCfg.FoulingInner
	}
	if req.FoulingOuter <= 0 {
		req.FoulingOuter = calCfg.FoulingOuter
	}
	if req.Roughness <= 0 {
		req.Roughness = calCfg.Roughness
	}
	// 状态值缺省为单相
	if req.HotStateIn == 0 && req.HotStateOut == 0 && req.HotProcess != model.ProcessPhaseChange {
		req.HotStateIn, req.HotStateOut = stateSinglePhase, stateSinglePhase
	}
	if req.ColdStateIn == 0 && req.ColdStateOut == 0 && req.ColdProcess != model.ProcessPhaseChange {
		req.ColdStateIn, req.ColdStateOut = stateSinglePhase, stateSinglePhase
	}
}
