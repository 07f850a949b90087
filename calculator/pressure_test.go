package calculator

import (
	"math"
	"testing"
)

func TestSinglePhaseDrop(t *testing.T) {
	d, err := SinglePhaseDrop(waterProps, 1.0, 0.02, 3.0, 1.5e-5)
	if err != nil {
		t.Fatal(err)
	}
	re := Reynolds(waterProps.Density, 1.0, 0.02, waterProps.Viscosity)
	f := FrictionFactor(re, 1.5e-5/0.02)
	want := f * (3.0 / 0.02) * waterProps.Density * 1.0 / 2
	if math.Abs(d.DeltaP-want) > 1e-9 {
		t.Errorf("got=%v want=%v", d.DeltaP, want)
	}
	if d.TwoPhase || d.Model != "single" {
		t.Errorf("模型标记错误: %+v", d)
	}
	// 流速翻倍压降近似四倍（湍流 f 略降，只做方向性检查）
	d2, err := SinglePhaseDrop(waterProps, 2.0, 0.02, 3.0, 1.5e-5)
	if err != nil {
		t.Fatal(err)
	}
	if d2.DeltaP <= 3*d.DeltaP {
		t.Errorf("流速翻倍压降增幅不足: %v vs %v", d2.DeltaP, d.DeltaP)
	}

	if _, err := SinglePhaseDrop(waterProps, 1.0, 0, 3.0, 0); err == nil {
		t.Error("零直径应报错")
	}
}

func TestTwoPhaseDropFallback(t *testing.T) {
	in := TwoPhaseDropInput{
		Liquid:    satLiquid,
		Vapor:     satVapor,
		MassFlux:  300,
		Quality:   0.5,
		Diameter:  0.02,
		Length:    3.0,
		Roughness: 1.5e-5,
	}
	d := TwoPhaseDrop(in, satLiquid)
	if d.Model != "lockhart_martinelli" || !d.TwoPhase || d.DeltaP <= 0 {
		t.Errorf("正常路径: %+v", d)
	}

	// 气相物性非法时 LM 失败，按混合物性退回单相
	bad := in
	bad.Vapor.Viscosity = 0
	d = TwoPhaseDrop(bad, satLiquid)
	if d.Model != "single" || !d.TwoPhase || d.DeltaP <= 0 {
		t.Errorf("单相回退: %+v", d)
	}

	// 回退也失败时压降记零而不报错
	bad.Liquid.Density = 0
	worse := bad
	worse.MassFlux = 300
	d = TwoPhaseDrop(worse, worse.Liquid)
	if d.DeltaP != 0 {
		t.Errorf("兜底应记零: %+v", d)
	}
}

func TestCondensationSegmentDrop(t *testing.T) {
	in := SegmentInput{
		Vapor:         satVapor,
		Liquid:        satLiquid,
		Mixed:         satLiquid,
		MassFlux:      100,
		Diameter:      0.02,
		Length:        3.0,
		Roughness:     1.5e-5,
		SuperheatFrac: 0.1,
		CondenseFrac:  0.8,
		SubcoolFrac:   0.1,
	}
	d, err := CondensationSegmentDrop(in)
	if err != nil {
		t.Fatal(err)
	}
	if d.Model != "segmented" || d.DeltaP <= 0 {
		t.Errorf("%+v", d)
	}

	// 分段和应等于逐段手算之和
	vVap := in.MassFlux / satVapor.Density
	sh, err := SinglePhaseDrop(satVapor, vVap, 0.02, 0.3, 1.5e-5)
	if err != nil {
		t.Fatal(err)
	}
	vLiq := in.MassFlux / satLiquid.Density
	sc, err := SinglePhaseDrop(satLiquid, vLiq, 0.02, 0.3, 1.5e-5)
	if err != nil {
		t.Fatal(err)
	}
	cond := TwoPhaseDrop(TwoPhaseDropInput{
		Liquid: satLiquid, Vapor: satVapor,
		MassFlux: 100, Quality: 0.5, Diameter: 0.02, Length: 2.4, Roughness: 1.5e-5,
	}, satLiquid)
	want := sh.DeltaP + cond.DeltaP + sc.DeltaP
	if math.Abs(d.DeltaP-want) > 1e-6 {
		t.Errorf("got=%v want=%v", d.DeltaP, want)
	}

	bad := in
	bad.Length = 0
	if _, err := CondensationSegmentDrop(bad); err == nil {
		t.Error("零长度应报错")
	}
}
