package calculator

import (
	"hx/model"
)

// 计算结果组装与裕度分级

type TempSample struct {
	Position float64 `json:"position"` // 0~1 无量纲位置，0 为热流体进口端
	THot     float64 `json:"t_hot"`
	TCold    float64 `json:"t_cold"`
}

type SolveResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	Duty         float64 `json:"duty"`          // W
	LMTD         float64 `json:"lmtd"`          // ℃
	U            float64 `json:"u"`             // W/(m2·K)
	ActualArea   float64 `json:"actual_area"`   // m2
	RequiredArea float64 `json:"required_area"` // m2
	MarginPct    float64 `json:"margin_pct"`
	MarginClass  string  `json:"margin_class"`

	HotFlow  float64 `json:"hot_flow"`  // kg/s，duty 模式下为反求值
	ColdFlow float64 `json:"cold_flow"` // kg/s

	TubeDrop    *DropDetail `json:"tube_drop"`
	AnnulusDrop *DropDetail `json:"annulus_drop"`

	Breakdown *Breakdown       `json:"breakdown,omitempty"`
	ThreeZone *ThreeZoneResult `json:"three_zone,omitempty"`

	TempDist []TempSample `json:"temp_dist"`
	Strategy string       `json:"strategy"` // 采用的传热系数路径
}

func failure(err error) *SolveResult {
	return &SolveResult{Success: false, Error: err.Error()}
}

// 面积裕度分级：<10% 不足，10~25% 合适，>25% 偏大
func classifyMargin(pct float64) string {
	switch {
	case pct < 10:
		return model.MarginInsufficient
	case pct <= 25:
		return model.MarginAdequate
	default:
		return model.MarginExcessive
	}
}

// 沿程温度分布采样，供前端云图/曲线绘制
// 单相按线性温变，相变侧在冷凝/蒸发段内保持饱和温度平台
func buildTempDist(hot, cold *stream, counter bool, samples int) []TempSample {
	if samples < 2 {
		samples = 2
	}
	dist := make([]TempSample, samples)
	for i := 0; i < samples; i++ {
		pos := float64(i) / float64(samples-1)
		th := profileTemp(hot, pos)
		var tc float64
		if counter {
			// 逆流：冷流体从 pos=1 端进入
			tc = profileTemp(cold, 1-pos)
		} else {
			tc = profileTemp(cold, pos)
		}
		dist[i] = TempSample{Position: pos, THot: th, TCold: tc}
	}
	return dist
}

// 单侧流体沿自身流向的温度剖面
func profileTemp(s *stream, frac float64) float64 {
	if !s.phaseChange || s.tsat <= 0 {
		return s.tIn + (s.tOut-s.tIn)*frac
	}
	// 相变侧：按焓线性分段，相变段为饱和温度平台
	total := s.enthalpyDrop()
	if total <= 0 {
		return s.tsat
	}
	changeFrac := (satEnthalpy(s, true) - satEnthalpy(s, false)) / total
	var preFrac float64
	if s.condensing {
		preFrac = (s.hIn - satEnthalpy(s, true)) / total // 脱过热段
	} else {
		preFrac = (satEnthalpy(s, false) - s.hIn) / total // 预热段
	}
	if preFrac < 0 {
		preFrac = 0
	}
	if changeFrac < 0 {
		changeFrac = 0
	}
	switch {
	case frac <= preFrac && preFrac > 0:
		return s.tIn + (s.tsat-s.tIn)*frac/preFrac
	case frac <= preFrac+changeFrac:
		return s.tsat
	default:
		postFrac := 1 - preFrac - changeFrac
		if postFrac <= 0 {
			return s.tOut
		}
		return s.tsat + (s.tOut-s.tsat)*(frac-preFrac-changeFrac)/postFrac
	}
}

// 饱和端点焓：vapor=true 取饱和气侧
func satEnthalpy(s *stream, vapor bool) float64 {
	if s.twoPhase == nil {
		return s.hIn
	}
	if vapor {
		return s.twoPhase.Vapor.Enthalpy
	}
	return s.twoPhase.Liquid.Enthalpy
}
