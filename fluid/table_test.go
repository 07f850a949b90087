package fluid

import (
	"context"
	"math"
	"testing"
)

func newProvider(t *testing.T) *tableProvider {
	p, err := newTableProvider()
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestBatchWaterLiquid(t *testing.T) {
	p := newProvider(t)
	props, err := p.Batch(context.Background(), "water", 20, 101.325)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(props.Density-998.2) > 0.5 {
		t.Errorf("20℃ 水密度: %v", props.Density)
	}
	if math.Abs(props.SpecificHeat-4182) > 5 {
		t.Errorf("20℃ 水比热: %v", props.SpecificHeat)
	}
	if props.Prandtl < 6 || props.Prandtl > 8 {
		t.Errorf("20℃ 水普朗特数: %v", props.Prandtl)
	}

	// 表格节点中点处做线性插值
	mid, err := p.Batch(context.Background(), "water", 25, 101.325)
	if err != nil {
		t.Fatal(err)
	}
	if mid.Density >= 998.2 || mid.Density <= 995.7 {
		t.Errorf("25℃ 插值密度超界: %v", mid.Density)
	}
}

func TestBatchWaterVapor(t *testing.T) {
	p := newProvider(t)
	// 常压 110℃ 在饱和线之上，应取过热气物性
	props, err := p.Batch(context.Background(), "water", 110, 101.325)
	if err != nil {
		t.Fatal(err)
	}
	if props.Density > 1.0 {
		t.Errorf("过热蒸汽密度应远小于液态水: %v", props.Density)
	}
	// 焓应高于饱和气焓
	if props.Enthalpy <= 2676.0e3 {
		t.Errorf("过热蒸汽焓: %v", props.Enthalpy)
	}
}

func TestSaturationLine(t *testing.T) {
	p := newProvider(t)
	ctx := context.Background()
	tsat, err := p.Property(ctx, "water", "T", "P", 101.325, "Q", 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(tsat-100) > 0.1 {
		t.Errorf("常压水饱和温度: %v", tsat)
	}
	psat, err := p.Property(ctx, "water", "P", "T", 100, "Q", 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(psat-101.33) > 0.1 {
		t.Errorf("100℃ 水饱和压力: %v", psat)
	}

	hf, err := p.Property(ctx, "water", "H", "P", 101.325, "Q", 0)
	if err != nil {
		t.Fatal(err)
	}
	hg, err := p.Property(ctx, "water", "H", "P", 101.325, "Q", 1)
	if err != nil {
		t.Fatal(err)
	}
	// 常压水汽化潜热约 2257 kJ/kg
	if hfg := hg - hf; math.Abs(hfg-2257e3) > 30e3 {
		t.Errorf("汽化潜热: %v", hfg)
	}

	sigma, err := p.Property(ctx, "water", "I", "T", 100, "Q", 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(sigma-0.0589) > 1e-3 {
		t.Errorf("100℃ 水表面张力: %v", sigma)
	}
}

func TestBatchTwoPhase(t *testing.T) {
	p := newProvider(t)
	tp, err := p.BatchTwoPhase(context.Background(), "water", 100, 101.325, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if tp.Quality != 0.5 {
		t.Errorf("干度: %v", tp.Quality)
	}
	// 混合密度应落在汽液之间且远偏向气侧（调和混合）
	if tp.Density <= tp.Vapor.Density || tp.Density >= tp.Liquid.Density {
		t.Errorf("混合密度超界: %v", tp.Density)
	}
	if tp.Density > 10 {
		t.Errorf("x=0.5 的混合密度应接近气侧: %v", tp.Density)
	}
	// 焓按干度线性混合
	want := 0.5*tp.Liquid.Enthalpy + 0.5*tp.Vapor.Enthalpy
	if math.Abs(tp.Enthalpy-want) > 1 {
		t.Errorf("混合焓: got=%v want=%v", tp.Enthalpy, want)
	}
}

func TestR134aSaturation(t *testing.T) {
	p := newProvider(t)
	ctx := context.Background()
	pc, err := p.Property(ctx, "r134a", "Pcrit", "T", 0, "P", 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(pc-4059.3) > 1 {
		t.Errorf("R134a 临界压力: %v", pc)
	}
	hf, err := p.Property(ctx, "r134a", "H", "T", 40, "Q", 0)
	if err != nil {
		t.Fatal(err)
	}
	hg, err := p.Property(ctx, "r134a", "H", "T", 40, "Q", 1)
	if err != nil {
		t.Fatal(err)
	}
	// 40℃ R134a 潜热约 163 kJ/kg
	if hfg := hg - hf; math.Abs(hfg-163e3) > 10e3 {
		t.Errorf("R134a 40℃ 潜热: %v", hfg)
	}
}

func TestProviderErrors(t *testing.T) {
	p := newProvider(t)
	ctx := context.Background()
	if _, err := p.Batch(ctx, "ammonia", 20, 101.325); err == nil {
		t.Error("未收录流体应报错")
	}
	if _, err := p.Property(ctx, "water", "D", "X", 1, "Y", 2); err == nil {
		t.Error("不支持的输入对应报错")
	}
	if _, err := p.Property(ctx, "water", "Zz", "T", 20, "P", 101.325); err == nil {
		t.Error("未知物性符号应报错")
	}
	// 已取消的上下文直接拒绝
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := p.Batch(cancelled, "water", 20, 101.325); err == nil {
		t.Error("已取消的上下文应报错")
	}
}

func TestDefaultMemoized(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("Default 应返回同一句柄")
	}
}

func TestFluids(t *testing.T) {
	names := Fluids()
	if len(names) != 2 {
		t.Fatalf("流体清单: %v", names)
	}
}
