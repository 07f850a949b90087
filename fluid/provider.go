package fluid

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"hx/model"
)

// 物性库接口
// symbol 采用 CoolProp 风格单字母：D 密度，C 比热，H 焓，L 导热系数，
// V 粘度，Prandtl 普朗特数，I 表面张力，T/P 饱和温度/压力，Pcrit 临界压力
// 输入对支持 ("T","P")、("P","Q")、("T","Q")

var ErrOracle = errors.New("物性库查询失败")

type Provider interface {
	Property(ctx context.Context, fluid, symbol, in1 string, v1 float64, in2 string, v2 float64) (float64, error)
	Batch(ctx context.Context, fluid string, t, p float64) (model.FluidProperties, error)
	BatchTwoPhase(ctx context.Context, fluid string, t, p, x float64) (model.TwoPhaseProperties, error)
}

var (
	defaultMu     sync.Mutex
	defaultHandle Provider
)

// 获取进程内共享的物性库句柄，惰性初始化
// 初始化失败不缓存，下次调用重试；并发首次调用不会重复初始化
func Default() (Provider, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultHandle != nil {
		return defaultHandle, nil
	}
	p, err := newTableProvider()
	if err != nil {
		return nil, fmt.Errorf("物性库初始化失败: %w", err)
	}
	defaultHandle = p
	return defaultHandle, nil
}

// 校验物性值：非有限数一律报错，文档标明非负的物性出现负值也报错
func checkProperty(symbol string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s 非有限值", ErrOracle, symbol)
	}
	switch symbol {
	case "D", "C", "L", "V", "Prandtl", "I", "Pcrit":
		if v < 0 {
			return 0, fmt.Errorf("%w: %s 为负值 %v", ErrOracle, symbol, v)
		}
	}
	return v, nil
}
