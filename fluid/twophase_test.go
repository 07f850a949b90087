package fluid

import (
	"math"
	"testing"

	"hx/model"
)

var testLiquid = model.FluidProperties{
	Density: 958.4, SpecificHeat: 4216, Enthalpy: 419.1e3,
	ThermalConductivity: 0.679, Viscosity: 0.282e-3,
}

var testVapor = model.FluidProperties{
	Density: 0.5978, SpecificHeat: 2057, Enthalpy: 2676.0e3,
	ThermalConductivity: 0.0248, Viscosity: 1.21e-5,
}

func TestMixTwoPhaseEndpoints(t *testing.T) {
	// x=0 取纯液相，x=1 取纯气相
	liq, err := MixTwoPhase(testLiquid, testVapor, 0)
	if err != nil {
		t.Fatal(err)
	}
	if liq.Density != testLiquid.Density || liq.Enthalpy != testLiquid.Enthalpy {
		t.Errorf("x=0 应为纯液相: %+v", liq)
	}
	vap, err := MixTwoPhase(testLiquid, testVapor, 1)
	if err != nil {
		t.Fatal(err)
	}
	if vap.Density != testVapor.Density || vap.Enthalpy != testVapor.Enthalpy {
		t.Errorf("x=1 应为纯气相: %+v", vap)
	}
}

func TestMixTwoPhaseRules(t *testing.T) {
	x := 0.3
	mixed, err := MixTwoPhase(testLiquid, testVapor, x)
	if err != nil {
		t.Fatal(err)
	}
	// 密度调和混合
	wantRho := 1 / (x/testVapor.Density + (1-x)/testLiquid.Density)
	if math.Abs(mixed.Density-wantRho) > 1e-9 {
		t.Errorf("调和密度: got=%v want=%v", mixed.Density, wantRho)
	}
	// 焓线性混合
	wantH := (1-x)*testLiquid.Enthalpy + x*testVapor.Enthalpy
	if math.Abs(mixed.Enthalpy-wantH) > 1e-6 {
		t.Errorf("线性焓: got=%v want=%v", mixed.Enthalpy, wantH)
	}
	// 普朗特数由混合物性重算
	wantPr := mixed.SpecificHeat * mixed.Viscosity / mixed.ThermalConductivity
	if math.Abs(mixed.Prandtl-wantPr) > 1e-12 {
		t.Errorf("普朗特数: %v", mixed.Prandtl)
	}
}

func TestMixTwoPhaseInvalidQuality(t *testing.T) {
	if _, err := MixTwoPhase(testLiquid, testVapor, -0.1); err == nil {
		t.Error("负干度应报错")
	}
	if _, err := MixTwoPhase(testLiquid, testVapor, 1.1); err == nil {
		t.Error("干度超 1 应报错")
	}
}
