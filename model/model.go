package model

// 换热器计算服务的公共数据结构
// 温度单位 ℃，压力单位 kPa，其余为国际单位制

// 计算输入模式
const (
	InputModeFlow = "flow" // 已知流量，求热负荷
	InputModeDuty = "duty" // 已知热负荷，反求流量
)

// 热流体走向
const (
	HotInTube    = "hot_in_tube"    // 热流体走内管
	HotInAnnulus = "hot_in_annulus" // 热流体走环隙
)

// 管型
const (
	TubeSmooth  = "smooth"  // 光管
	TubeTwisted = "twisted" // 螺旋扭曲管
)

// 流动布置
const (
	FlowCounter  = "counter"  // 逆流
	FlowParallel = "parallel" // 并流
)

// 传热系数模式
const (
	CoefficientComputed = "computed" // 由热阻网络计算
	CoefficientGiven    = "given"    // 外部给定
)

// 流体过程
const (
	ProcessCooling     = "cooling"      // 单相冷却/加热
	ProcessPhaseChange = "phase_change" // 冷凝/蒸发
	ProcessAuto        = ""             // 由进出口状态自动判断
)

// 面积裕度分级
const (
	MarginInsufficient = "insufficient" // < 10%
	MarginAdequate     = "adequate"     // 10% ~ 25%
	MarginExcessive    = "excessive"    // > 25%
)

// 流体状态点，每次查询临时构造
type FluidState struct {
	Fluid       string  `json:"fluid"`
	Temperature float64 `json:"temperature"`
	Pressure    float64 `json:"pressure"`
	Quality     float64 `json:"quality"` // 干度，仅两相有效
	TwoPhase    bool    `json:"two_phase"`
}

// 物性参数，由物性库返回，只读
type FluidProperties struct {
	Density             float64 `json:"density"`              // kg/m3
	SpecificHeat        float64 `json:"specific_heat"`        // J/(kg·K)
	Enthalpy            float64 `json:"enthalpy"`             // J/kg
	ThermalConductivity float64 `json:"thermal_conductivity"` // W/(m·K)
	Viscosity           float64 `json:"viscosity"`            // Pa·s
	Prandtl             float64 `json:"prandtl"`
}

// 两相物性，在饱和端点间按干度混合
type TwoPhaseProperties struct {
	FluidProperties
	Liquid  FluidProperties `json:"liquid"`
	Vapor   FluidProperties `json:"vapor"`
	Quality float64         `json:"quality"`
}

// 换热器计算请求，字段全部显式列出
// 缺省值和校验在 calculator.NewConfig 中统一处理
type CalcRequest struct {
	InputMode       string  `json:"input_mode"`       // flow / duty
	FlowPath        string  `json:"flow_path"`        // hot_in_tube / hot_in_annulus
	TubeType        string  `json:"tube_type"`        // smooth / twisted
	Arrangement     string  `json:"arrangement"`      // counter / parallel
	CoefficientMode string  `json:"coefficient_mode"` // computed / given
	GivenU          float64 `json:"given_u"`          // W/(m2·K)，coefficient_mode=given 时使用

	HotFluid  string `json:"hot_fluid"`
	ColdFluid string `json:"cold_fluid"`

	HotTin   float64 `json:"hot_t_in"`   // ℃
	HotTout  float64 `json:"hot_t_out"`  // ℃
	ColdTin  float64 `json:"cold_t_in"`  // ℃
	ColdTout float64 `json:"cold_t_out"` // ℃

	HotPressure  float64 `json:"hot_pressure"`  // kPa
	ColdPressure float64 `json:"cold_pressure"` // kPa

	HotFlow  float64 `json:"hot_flow"`  // kg/s
	ColdFlow float64 `json:"cold_flow"` // kg/s
	Duty     float64 `json:"duty"`      // W，input_mode=duty 时给定

	// 进出口状态值：0 饱和液，1 饱和气，0~1 两相干度，-1 表示单相
	HotStateIn   float64 `json:"hot_state_in"`
	HotStateOut  float64 `json:"hot_state_out"`
	ColdStateIn  float64 `json:"cold_state_in"`
	ColdStateOut float64 `json:"cold_state_out"`

	HotProcess  string `json:"hot_process"`  // cooling / phase_change / 空
	ColdProcess string `json:"cold_process"` // cooling / phase_change / 空

	// 几何参数，单位 m
	InnerOuterDiameter float64 `json:"inner_outer_diameter"` // 内管外径
	InnerInnerDiameter float64 `json:"inner_inner_diameter"` // 内管内径
	OuterOuterDiameter float64 `json:"outer_outer_diameter"` // 外管外径
	OuterInnerDiameter float64 `json:"outer_inner_diameter"` // 外管内径
	Length             float64 `json:"length"`               // 单程有效长度
	TubeCount          int     `json:"tube_count"`           // 内管根数
	PassCount          int     `json:"pass_count"`           // 程数
	OuterTubesPerPass  int     `json:"outer_tubes_per_pass"` // 每程外管数

	// 扭曲管参数
	TwistPitch  float64 `json:"twist_pitch"`  // 螺距，m
	LobeCount   int     `json:"lobe_count"`   // 头数，3~6
	ToothHeight float64 `json:"tooth_height"` // 齿高，m

	WallMaterial string  `json:"wall_material"`
	FoulingInner float64 `json:"fouling_inner"` // m2·K/W
	FoulingOuter float64 `json:"fouling_outer"` // m2·K/W
	Roughness    float64 `json:"roughness"`     // 管壁绝对粗糙度，m
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
