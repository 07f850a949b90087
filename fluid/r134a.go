package fluid

// R134a 饱和物性表，-20~70℃
// 焓基准 ASHRAE：0℃ 饱和液 h = 200 kJ/kg
// 单相状态按饱和线近似：T < Tsat(P) 取饱和液，否则取饱和气外推

const r134aCriticalPressure = 4059.3 // kPa

var r134aSat = []satRow{
	{-20, 132.7, 1358, 6.78, 1293, 816, 173.64e3, 386.55e3, 0.1021, 0.00934, 3.43e-4, 0.96e-5, 0.0147},
	{-10, 200.6, 1327, 10.04, 1316, 851, 186.70e3, 392.66e3, 0.0975, 0.01001, 3.09e-4, 1.00e-5, 0.0132},
	{0, 292.8, 1295, 14.43, 1341, 897, 200.00e3, 398.60e3, 0.0934, 0.01071, 2.79e-4, 1.04e-5, 0.0117},
	{10, 414.6, 1261, 20.23, 1370, 944, 213.58e3, 404.32e3, 0.0888, 0.01146, 2.53e-4, 1.09e-5, 0.0103},
	{20, 571.7, 1225, 27.78, 1405, 1001, 227.47e3, 409.75e3, 0.0842, 0.01240, 2.31e-4, 1.13e-5, 0.00886},
	{30, 770.2, 1187, 37.54, 1446, 1065, 241.72e3, 414.82e3, 0.0796, 0.01327, 2.11e-4, 1.18e-5, 0.00749},
	{40, 1016.6, 1147, 50.09, 1498, 1145, 256.41e3, 419.43e3, 0.0750, 0.01434, 1.93e-4, 1.23e-5, 0.00617},
	{50, 1317.9, 1102, 66.27, 1566, 1246, 271.62e3, 423.44e3, 0.0704, 0.01552, 1.76e-4, 1.29e-5, 0.00491},
	{60, 1681.8, 1053, 87.38, 1660, 1387, 287.50e3, 426.63e3, 0.0658, 0.01699, 1.59e-4, 1.36e-5, 0.00372},
	{70, 2116.8, 996, 115.60, 1804, 1600, 304.28e3, 428.65e3, 0.0612, 0.01899, 1.42e-4, 1.45e-5, 0.00261},
}
