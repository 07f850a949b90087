package calculator

import (
	"math"
	"testing"

	"hx/model"
)

var waterProps = model.FluidProperties{
	Density: 998.2, SpecificHeat: 4182, ThermalConductivity: 0.598,
	Viscosity: 1.002e-3, Prandtl: 7.01,
}

func networkInput() NetworkInput {
	return NetworkInput{
		TubeProps:    waterProps,
		TubeVelocity: 1.0,
		TubeDiameter: 0.020,
		TubeHeating:  true,

		ShellProps:    waterProps,
		ShellVelocity: 0.8,
		ShellDiameter: 0.025,
		ShellHeating:  false,

		WallOuterDiameter: 0.025,
		WallInnerDiameter: 0.020,
		WallK:             16.2,
		FoulingInner:      0.0002,
		FoulingOuter:      0.0002,
		Enhancement:       1.0,
	}
}

func TestBuildNetworkIdentities(t *testing.T) {
	b, err := BuildNetwork(networkInput())
	if err != nil {
		t.Fatal(err)
	}
	// U·R_total ≡ 1
	if math.Abs(b.U*b.Rtotal-1) > 1e-9 {
		t.Errorf("U·Rtotal: %v", b.U*b.Rtotal)
	}
	// 分项热阻之和等于总热阻
	if sum := b.Ri + b.Ro + b.Rwall + b.Rfi + b.Rfo; math.Abs(sum-b.Rtotal) > 1e-12 {
		t.Errorf("分项和: %v vs %v", sum, b.Rtotal)
	}
	// 百分比之和为 100
	if pct := b.RiPct + b.RoPct + b.RwallPct + b.RfiPct + b.RfoPct; math.Abs(pct-100) > 1e-6 {
		t.Errorf("百分比和: %v", pct)
	}
	// 内侧热阻折算到外表面后带 do/di 放大
	if math.Abs(b.Ri-0.025/(b.Hi*0.020)) > 1e-12 {
		t.Errorf("内侧折算热阻: %v", b.Ri)
	}
}

func TestBuildNetworkEnhancement(t *testing.T) {
	base, err := BuildNetwork(networkInput())
	if err != nil {
		t.Fatal(err)
	}
	in := networkInput()
	in.Enhancement = 2.0
	enhanced, err := BuildNetwork(in)
	if err != nil {
		t.Fatal(err)
	}
	// 强化只作用在对流项
	if math.Abs(enhanced.Hi-2*base.Hi) > 1e-6 || math.Abs(enhanced.Ho-2*base.Ho) > 1e-6 {
		t.Errorf("对流系数应翻倍: %v %v", enhanced.Hi, enhanced.Ho)
	}
	if enhanced.Rwall != base.Rwall || enhanced.Rfi != base.Rfi || enhanced.Rfo != base.Rfo {
		t.Error("壁面与污垢热阻不应受强化影响")
	}
	if enhanced.U <= base.U {
		t.Error("强化后总传热系数应上升")
	}
}

func TestBuildNetworkOverride(t *testing.T) {
	in := networkInput()
	in.TubeH = 12000
	b, err := BuildNetwork(in)
	if err != nil {
		t.Fatal(err)
	}
	// 外部给定的对流系数直接采用（E=1 时不再放大）
	if math.Abs(b.Hi-12000) > 1e-9 {
		t.Errorf("给定对流系数未生效: %v", b.Hi)
	}
}

func TestBuildNetworkInvalid(t *testing.T) {
	in := networkInput()
	in.WallInnerDiameter = 0.030 // 大于外径
	if _, err := BuildNetwork(in); err == nil {
		t.Error("壁面直径非法应报错")
	}
	in = networkInput()
	in.WallK = 0
	if _, err := BuildNetwork(in); err == nil {
		t.Error("零导热系数应报错")
	}
}

func TestEnhancementFactor(t *testing.T) {
	e := EnhancementFactor(0.2, 0.051, 4)
	if e <= 1.0 || e > 2.5 {
		t.Errorf("强化系数超界: %v", e)
	}
	// 螺距收紧强化更强
	if EnhancementFactor(0.1, 0.051, 4) <= EnhancementFactor(0.3, 0.051, 4) {
		t.Error("螺距越小强化应越强")
	}
	// 极端参数夹在上限
	if e := EnhancementFactor(0.01, 0.051, 6); e != 2.5 {
		t.Errorf("应夹到上限 2.5: %v", e)
	}
	// 非法输入不强化
	if e := EnhancementFactor(0, 0.051, 4); e != 1.0 {
		t.Errorf("零螺距应返回 1: %v", e)
	}
}
