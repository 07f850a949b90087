package calculator

import "errors"

// 错误分类
// InvalidInput：输入非法，立即中止
// ThermoInconsistent：热力学矛盾（端温差非正、焓差近零），中止并带消息
// 物性库错误见 fluid.ErrOracle
// 模型回退（三区/两相压降/环隙边界）在内部消化，不对外暴露

var (
	ErrInvalidInput      = errors.New("输入参数非法")
	ErrThermoInconsistent = errors.New("热力学条件矛盾")
)
