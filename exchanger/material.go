package exchanger

import (
	log "github.com/sirupsen/logrus"
)

// 管壁材料导热系数表，单位 W/(m·K)，常温取值

const defaultWallConductivity = 16.2 // 304 不锈钢

var wallConductivity = map[string]float64{
	"carbon_steel":    50.0,
	"stainless_304":   16.2,
	"stainless_316":   16.3,
	"copper":          398.0,
	"brass":           111.0,
	"titanium":        21.9,
	"aluminum":        237.0,
	"cupronickel_90":  50.0,
	"duplex_2205":     19.0,
}

// 查材料导热系数，未知材料按不锈钢处理
func ThermalConductivity(materialID string) float64 {
	if k, ok := wallConductivity[materialID]; ok {
		return k
	}
	log.WithFields(log.Fields{"material": materialID}).
		Warn("未知管壁材料，按 304 不锈钢取值")
	return defaultWallConductivity
}

// 已收录的材料清单，供前端下拉选择
func Materials() []string {
	ids := make([]string, 0, len(wallConductivity))
	for id := range wallConductivity {
		ids = append(ids, id)
	}
	return ids
}
