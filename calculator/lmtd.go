package calculator

import (
	"fmt"
	"math"
)

// 对数平均温差
// 逆流：ΔT1 = 热进-冷出，ΔT2 = 热出-冷进
// 并流：ΔT1 = 热进-冷进，ΔT2 = 热出-冷出

func LMTD(hotTin, hotTout, coldTin, coldTout float64, counter bool) (float64, error) {
	var dt1, dt2 float64
	if counter {
		dt1 = hotTin - coldTout
		dt2 = hotTout - coldTin
	} else {
		dt1 = hotTin - coldTin
		dt2 = hotTout - coldTout
	}
	if dt1 <= 0 || dt2 <= 0 {
		return 0, fmt.Errorf("%w: 端部温差非正 ΔT1=%.3f ΔT2=%.3f", ErrThermoInconsistent, dt1, dt2)
	}
	// 两端温差相等时对数式退化
	if math.Abs(dt1-dt2) < 1e-9 {
		return dt1, nil
	}
	return (dt1 - dt2) / math.Log(dt1/dt2), nil
}
