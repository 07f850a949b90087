package fluid

import (
	"fmt"

	"hx/model"
)

// 两相混合规则
// 密度、粘度按干度倒数加权（调和混合），比热、焓、导热系数按干度线性加权

func MixTwoPhase(liquid, vapor model.FluidProperties, x float64) (model.FluidProperties, error) {
	if x < 0 || x > 1 {
		return model.FluidProperties{}, fmt.Errorf("干度超出 [0,1]: %v", x)
	}
	mixed := model.FluidProperties{
		Density:             harmonic(liquid.Density, vapor.Density, x),
		Viscosity:           harmonic(liquid.Viscosity, vapor.Viscosity, x),
		SpecificHeat:        linear(liquid.SpecificHeat, vapor.SpecificHeat, x),
		Enthalpy:            linear(liquid.Enthalpy, vapor.Enthalpy, x),
		ThermalConductivity: linear(liquid.ThermalConductivity, vapor.ThermalConductivity, x),
	}
	if mixed.ThermalConductivity > 0 {
		mixed.Prandtl = mixed.SpecificHeat * mixed.Viscosity / mixed.ThermalConductivity
	}
	return mixed, nil
}

// 1/φ = x/φg + (1-x)/φf
func harmonic(liquidVal, vaporVal, x float64) float64 {
	if liquidVal <= 0 || vaporVal <= 0 {
		return 0
	}
	return 1 / (x/vaporVal + (1-x)/liquidVal)
}

func linear(liquidVal, vaporVal, x float64) float64 {
	return liquidVal*(1-x) + vaporVal*x
}
