package batch

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"hx/model"
)

// 批量工况 xlsx 导入
// 第一行为表头，按列名映射到请求字段，列名与 json tag 一致；
// 解析失败的行记 Warn 后跳过，不中断整张表

func Import(r io.Reader) ([]model.CalcRequest, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("打开工作簿失败: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("工作表为空")
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var reqs []model.CalcRequest
	for i := 1; i < len(rows); i++ {
		req, err := parseRow(header, rows[i])
		if err != nil {
			log.WithFields(log.Fields{"row": i + 1, "err": err}).Warn("工况行解析失败，跳过")
			continue
		}
		reqs = append(reqs, req)
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("无有效工况行")
	}
	return reqs, nil
}

func parseRow(header map[string]int, row []string) (model.CalcRequest, error) {
	cell := func(name string) string {
		idx, ok := header[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	num := func(name string, dst *float64) error {
		s := cell(name)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%s 列非数值 %q", name, s)
		}
		*dst = v
		return nil
	}
	integer := func(name string, dst *int) error {
		s := cell(name)
		if s == "" {
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%s 列非整数 %q", name, s)
		}
		*dst = v
		return nil
	}

	req := model.CalcRequest{
		InputMode:    cell("input_mode"),
		FlowPath:     cell("flow_path"),
		TubeType:     cell("tube_type"),
		Arrangement:  cell("arrangement"),
		HotFluid:     cell("hot_fluid"),
		ColdFluid:    cell("cold_fluid"),
		HotProcess:   cell("hot_process"),
		ColdProcess:  cell("cold_process"),
		WallMaterial: cell("wall_material"),
		// 状态值缺省为单相，由 NewConfig 兜底
		HotStateIn: -1, HotStateOut: -1, ColdStateIn: -1, ColdStateOut: -1,
	}

	numeric := []struct {
		name string
		dst  *float64
	}{
		{"hot_t_in", &req.HotTin}, {"hot_t_out", &req.HotTout},
		{"cold_t_in", &req.ColdTin}, {"cold_t_out", &req.ColdTout},
		{"hot_pressure", &req.HotPressure}, {"cold_pressure", &req.ColdPressure},
		{"hot_flow", &req.HotFlow}, {"cold_flow", &req.ColdFlow},
		{"duty", &req.Duty}, {"given_u", &req.GivenU},
		{"hot_state_in", &req.HotStateIn}, {"hot_state_out", &req.HotStateOut},
		{"cold_state_in", &req.ColdStateIn}, {"cold_state_out", &req.ColdStateOut},
		{"inner_outer_diameter", &req.InnerOuterDiameter},
		{"inner_inner_diameter", &req.InnerInnerDiameter},
		{"outer_outer_diameter", &req.OuterOuterDiameter},
		{"outer_inner_diameter", &req.OuterInnerDiameter},
		{"length", &req.Length},
		{"twist_pitch", &req.TwistPitch}, {"tooth_height", &req.ToothHeight},
		{"fouling_inner", &req.FoulingInner}, {"fouling_outer", &req.FoulingOuter},
		{"roughness", &req.Roughness},
	}
	for _, n := range numeric {
		if err := num(n.name, n.dst); err != nil {
			return model.CalcRequest{}, err
		}
	}
	for _, n := range []struct {
		name string
		dst  *int
	}{
		{"tube_count", &req.TubeCount}, {"pass_count", &req.PassCount},
		{"outer_tubes_per_pass", &req.OuterTubesPerPass}, {"lobe_count", &req.LobeCount},
	} {
		if err := integer(n.name, n.dst); err != nil {
			return model.CalcRequest{}, err
		}
	}
	if cell("coefficient_mode") != "" {
		req.CoefficientMode = cell("coefficient_mode")
	}
	return req, nil
}
