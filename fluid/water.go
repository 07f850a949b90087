package fluid

// 水的物性表
// 液相表为常压 0~100℃，焓以 0℃ 液态水为零点
// 数据取自常用传热手册，等距温度节点，线性插值

type liquidRow struct {
	T   float64 // ℃
	Rho float64 // kg/m3
	Cp  float64 // J/(kg·K)
	K   float64 // W/(m·K)
	Mu  float64 // Pa·s
	H   float64 // J/kg
}

type satRow struct {
	T     float64 // 饱和温度，℃
	P     float64 // 饱和压力，kPa
	RhoF  float64
	RhoG  float64
	CpF   float64
	CpG   float64
	HF    float64 // J/kg
	HG    float64 // J/kg
	KF    float64
	KG    float64
	MuF   float64
	MuG   float64
	Sigma float64 // N/m
}

const waterCriticalPressure = 22064.0 // kPa

var waterLiquid = []liquidRow{
	{0, 999.8, 4217, 0.561, 1.792e-3, 0},
	{10, 999.7, 4191, 0.580, 1.307e-3, 42.0e3},
	{20, 998.2, 4182, 0.598, 1.002e-3, 83.9e3},
	{30, 995.7, 4178, 0.615, 0.797e-3, 125.7e3},
	{40, 992.2, 4179, 0.631, 0.653e-3, 167.5e3},
	{50, 988.0, 4181, 0.644, 0.547e-3, 209.3e3},
	{60, 983.2, 4185, 0.654, 0.467e-3, 251.1e3},
	{70, 977.8, 4190, 0.663, 0.404e-3, 293.0e3},
	{80, 971.8, 4197, 0.670, 0.355e-3, 334.9e3},
	{90, 965.3, 4205, 0.675, 0.315e-3, 376.9e3},
	{100, 958.4, 4216, 0.679, 0.282e-3, 419.1e3},
}

var waterSat = []satRow{
	{40, 7.38, 992.2, 0.0512, 4179, 1930, 167.5e3, 2574.3e3, 0.631, 0.0200, 0.653e-3, 1.01e-5, 0.0696},
	{50, 12.35, 988.0, 0.0831, 4181, 1947, 209.3e3, 2591.3e3, 0.644, 0.0207, 0.547e-3, 1.04e-5, 0.0679},
	{60, 19.95, 983.2, 0.1304, 4185, 1966, 251.1e3, 2609.6e3, 0.654, 0.0216, 0.467e-3, 1.06e-5, 0.0662},
	{70, 31.20, 977.8, 0.1983, 4190, 1986, 293.0e3, 2626.8e3, 0.663, 0.0223, 0.404e-3, 1.09e-5, 0.0645},
	{80, 47.41, 971.8, 0.2937, 4197, 2009, 334.9e3, 2643.0e3, 0.670, 0.0231, 0.355e-3, 1.13e-5, 0.0627},
	{90, 70.18, 965.3, 0.4235, 4205, 2033, 376.9e3, 2660.1e3, 0.675, 0.0240, 0.315e-3, 1.17e-5, 0.0608},
	{100, 101.33, 958.4, 0.5978, 4216, 2057, 419.1e3, 2676.0e3, 0.679, 0.0248, 0.282e-3, 1.21e-5, 0.0589},
	{110, 143.27, 951.0, 0.8263, 4229, 2104, 461.3e3, 2691.3e3, 0.682, 0.0258, 0.255e-3, 1.25e-5, 0.0569},
	{120, 198.67, 943.1, 1.1220, 4245, 2158, 503.8e3, 2706.0e3, 0.683, 0.0268, 0.232e-3, 1.29e-5, 0.0550},
	{130, 270.26, 934.8, 1.4970, 4263, 2221, 546.4e3, 2719.9e3, 0.684, 0.0278, 0.213e-3, 1.33e-5, 0.0529},
	{140, 361.50, 926.1, 1.9660, 4285, 2291, 589.2e3, 2733.4e3, 0.684, 0.0288, 0.196e-3, 1.37e-5, 0.0509},
	{150, 476.16, 917.0, 2.5480, 4310, 2369, 632.3e3, 2745.9e3, 0.683, 0.0300, 0.182e-3, 1.42e-5, 0.0488},
}
