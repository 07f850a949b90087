package calculator

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"hx/model"
)

// 压降引擎
// 单相 Δp = f·(L/D)·ρv²/2，流道总长 = 几何长度 × 程数
// 两相走 Lockhart-Martinelli，失败时退回单相近似

type DropDetail struct {
	DeltaP         float64 `json:"delta_p"`         // Pa
	FrictionFactor float64 `json:"friction_factor"` // 两相时为液相倍率 φL²
	TwoPhase       bool    `json:"two_phase"`
	Model          string  `json:"model"` // single / lockhart_martinelli / segmented
}

func SinglePhaseDrop(props model.FluidProperties, velocity, diameter, length, roughness float64) (*DropDetail, error) {
	if diameter <= 0 || length <= 0 {
		return nil, fmt.Errorf("%w: 压降几何非法 D=%v L=%v", ErrInvalidInput, diameter, length)
	}
	if props.Density <= 0 || props.Viscosity <= 0 {
		return nil, fmt.Errorf("%w: 压降物性非法", ErrInvalidInput)
	}
	re := Reynolds(props.Density, velocity, diameter, props.Viscosity)
	f := FrictionFactor(re, roughness/diameter)
	dp := f * (length / diameter) * props.Density * velocity * velocity / 2
	return &DropDetail{DeltaP: dp, FrictionFactor: f, Model: "single"}, nil
}

// 两相压降，失败时回退为按混合物性的单相压降
func TwoPhaseDrop(in TwoPhaseDropInput, mixed model.FluidProperties) *DropDetail {
	dp, phi2, err := LockhartMartinelli(in)
	if err == nil {
		return &DropDetail{DeltaP: dp, FrictionFactor: phi2, TwoPhase: true, Model: "lockhart_martinelli"}
	}
	log.WithFields(log.Fields{"err": err}).Warn("两相压降失败，退回单相近似")
	v := in.MassFlux / mixed.Density
	detail, err2 := SinglePhaseDrop(mixed, v, in.Diameter, in.Length, in.Roughness)
	if err2 != nil {
		// 兜底：返回零压降而不是失败，压降是可选结果
		log.WithFields(log.Fields{"err": err2}).Warn("单相回退也失败，压降记零")
		return &DropDetail{Model: "single"}
	}
	detail.TwoPhase = true
	return detail
}

// 冷凝分段压降
// 按线性温焓假设把流道长度分成过热/冷凝/过冷三段，逐段求和
type SegmentInput struct {
	Vapor  model.FluidProperties
	Liquid model.FluidProperties
	Mixed  model.FluidProperties

	MassFlux  float64
	Diameter  float64
	Length    float64 // 总流道长
	Roughness float64

	// 各段长度占比，由区段焓差求得，和为 1
	SuperheatFrac float64
	CondenseFrac  float64
	SubcoolFrac   float64
}

func CondensationSegmentDrop(in SegmentInput) (*DropDetail, error) {
	if in.Length <= 0 || in.Diameter <= 0 {
		return nil, fmt.Errorf("%w: 分段压降几何非法", ErrInvalidInput)
	}
	total := 0.0

	if in.SuperheatFrac > 0 {
		v := in.MassFlux / in.Vapor.Density
		d, err := SinglePhaseDrop(in.Vapor, v, in.Diameter, in.SuperheatFrac*in.Length, in.Roughness)
		if err != nil {
			return nil, err
		}
		total += d.DeltaP
	}
	if in.CondenseFrac > 0 {
		d := TwoPhaseDrop(TwoPhaseDropInput{
			Liquid:    in.Liquid,
			Vapor:     in.Vapor,
			MassFlux:  in.MassFlux,
			Quality:   0.5, // 段内平均干度
			Diameter:  in.Diameter,
			Length:    in.CondenseFrac * in.Length,
			Roughness: in.Roughness,
		}, in.Mixed)
		total += d.DeltaP
	}
	if in.SubcoolFrac > 0 {
		v := in.MassFlux / in.Liquid.Density
		d, err := SinglePhaseDrop(in.Liquid, v, in.Diameter, in.SubcoolFrac*in.Length, in.Roughness)
		if err != nil {
			return nil, err
		}
		total += d.DeltaP
	}
	return &DropDetail{DeltaP: total, TwoPhase: true, Model: "segmented"}, nil
}
