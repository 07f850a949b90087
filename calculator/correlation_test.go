package calculator

import (
	"math"
	"testing"
)

func TestReynolds(t *testing.T) {
	re := Reynolds(998.2, 1.0, 0.02, 1.002e-3)
	want := 998.2 * 1.0 * 0.02 / 1.002e-3
	if math.Abs(re-want) > 1e-9 {
		t.Errorf("got=%v want=%v", re, want)
	}
	if Reynolds(998.2, 1.0, 0.02, 0) != 0 {
		t.Error("零粘度应返回 0")
	}
}

func TestNusseltRegimes(t *testing.T) {
	// 层流定值
	if nu := NusseltSingle(1000, 7, true); nu != nusseltLaminar {
		t.Errorf("层流努塞尔数: %v", nu)
	}
	// 旺盛湍流 Dittus-Boelter 手算
	re, pr := 50000.0, 5.0
	want := 0.023 * math.Pow(re, 0.8) * math.Pow(pr, 0.4)
	if nu := NusseltSingle(re, pr, true); math.Abs(nu-want) > 1e-9 {
		t.Errorf("湍流努塞尔数: got=%v want=%v", nu, want)
	}
	// 冷却指数 0.3 小于加热指数 0.4
	if NusseltSingle(re, pr, false) >= NusseltSingle(re, pr, true) {
		t.Error("冷却努塞尔数应小于加热")
	}
	// 过渡区 Gnielinski 应落在层流与湍流之间
	nu := NusseltSingle(5000, pr, true)
	if nu <= nusseltLaminar || nu >= want {
		t.Errorf("过渡区努塞尔数超界: %v", nu)
	}
}

func TestFrictionFactor(t *testing.T) {
	// 层流 64/Re
	if f := FrictionFactor(1600, 0); math.Abs(f-0.04) > 1e-12 {
		t.Errorf("层流摩擦系数: %v", f)
	}
	// 过渡区两端连续
	rr := 1.5e-5 / 0.02
	fLamEnd := FrictionFactor(reLaminarLimit-1e-9, rr)
	fBlendStart := FrictionFactor(reLaminarLimit, rr)
	if math.Abs(fLamEnd-fBlendStart) > 1e-6 {
		t.Errorf("2300 处不连续: %v %v", fLamEnd, fBlendStart)
	}
	fBlendEnd := FrictionFactor(reFrictionTurb-1e-9, rr)
	fTurbStart := FrictionFactor(reFrictionTurb, rr)
	if math.Abs(fBlendEnd-fTurbStart) > 1e-6 {
		t.Errorf("3000 处不连续: %v %v", fBlendEnd, fTurbStart)
	}
	// 湍流 Swamee-Jain 手算
	re := 50000.0
	want := 0.25 / math.Pow(math.Log10(rr/3.7+5.74/math.Pow(re, 0.9)), 2)
	if f := FrictionFactor(re, rr); math.Abs(f-want) > 1e-12 {
		t.Errorf("湍流摩擦系数: got=%v want=%v", f, want)
	}
	// 粗糙度增大阻力
	if FrictionFactor(re, 0.002) <= FrictionFactor(re, 0.0001) {
		t.Error("粗糙度越大摩擦系数应越大")
	}
}

func TestConvectiveCoefficient(t *testing.T) {
	if h := ConvectiveCoefficient(100, 0.6, 0.02); math.Abs(h-3000) > 1e-9 {
		t.Errorf("h=Nu·k/D: %v", h)
	}
	if ConvectiveCoefficient(100, 0.6, 0) != 0 {
		t.Error("零直径应返回 0")
	}
}
