package exchanger

import (
	"math"
	"testing"

	"hx/model"
)

func smoothReq() *model.CalcRequest {
	return &model.CalcRequest{
		TubeType:           model.TubeSmooth,
		InnerOuterDiameter: 0.025,
		InnerInnerDiameter: 0.020,
		OuterOuterDiameter: 0.057,
		OuterInnerDiameter: 0.050,
		Length:             3.0,
	}
}

func twistedReq() *model.CalcRequest {
	req := smoothReq()
	req.TubeType = model.TubeTwisted
	req.TwistPitch = 0.2
	req.LobeCount = 4
	req.ToothHeight = 0.004
	return req
}

func TestNewGeometrySmooth(t *testing.T) {
	g, err := NewGeometry(smoothReq())
	if err != nil {
		t.Fatal(err)
	}
	if g.Twisted || g.Lobe != nil {
		t.Error("光管不应携带星形截面")
	}
	// 缺省单管单程
	if g.TubeCount != 1 || g.PassCount != 1 {
		t.Errorf("缺省根数/程数错误: %d %d", g.TubeCount, g.PassCount)
	}
	area, d := g.TubeSection()
	if math.Abs(d-0.020) > 1e-12 || math.Abs(area-math.Pi/4*0.02*0.02) > 1e-12 {
		t.Errorf("管程截面错误: area=%v d=%v", area, d)
	}
	want := math.Pi * 0.025 * 3.0
	if math.Abs(g.ActualArea()-want) > 1e-12 {
		t.Errorf("光管面积: got=%v want=%v", g.ActualArea(), want)
	}
}

func TestNewGeometryTwisted(t *testing.T) {
	g, err := NewGeometry(twistedReq())
	if err != nil {
		t.Fatal(err)
	}
	if g.Lobe == nil {
		t.Fatal("扭曲管必须携带星形截面")
	}
	// 峰径 = 外管名义内径 + 双侧安装间隙
	if math.Abs(g.Lobe.DoMax-(0.050+2*InstallClearance)) > 1e-12 {
		t.Errorf("峰径错误: %v", g.Lobe.DoMax)
	}
	if math.Abs(g.EffectiveBore()-g.Lobe.DoMax) > 1e-12 {
		t.Errorf("有效内径应与峰径贴合: %v", g.EffectiveBore())
	}

	// 实际面积放大但不得超过封顶倍数
	base := math.Pi * g.Lobe.DoMax * g.Length
	actual := g.ActualArea()
	if actual < base || actual > base*TwistAreaCap+1e-12 {
		t.Errorf("扭曲管面积超出 [1,%.2f] 倍区间: %v / %v", TwistAreaCap, actual, base)
	}

	if _, err := g.AnnulusSection(); err != nil {
		t.Errorf("环隙解析失败: %v", err)
	}
}

func TestNewGeometryInvalid(t *testing.T) {
	bad := smoothReq()
	bad.Length = 0
	if _, err := NewGeometry(bad); err == nil {
		t.Error("零管长应报错")
	}

	bad = smoothReq()
	bad.InnerInnerDiameter = 0.030 // 内径大于外径
	if _, err := NewGeometry(bad); err == nil {
		t.Error("内管内径大于外径应报错")
	}

	bad = smoothReq()
	bad.OuterInnerDiameter = 0.020 // 外管装不下内管
	if _, err := NewGeometry(bad); err == nil {
		t.Error("外管内径不大于内管外径应报错")
	}

	bad = twistedReq()
	bad.TwistPitch = 0
	if _, err := NewGeometry(bad); err == nil {
		t.Error("扭曲管零螺距应报错")
	}

	bad = twistedReq()
	bad.LobeCount = 9
	if _, err := NewGeometry(bad); err == nil {
		t.Error("头数超界应报错")
	}
}

func TestFlowLength(t *testing.T) {
	req := smoothReq()
	req.PassCount = 4
	g, err := NewGeometry(req)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(g.FlowLength()-12.0) > 1e-12 {
		t.Errorf("流道总长: %v", g.FlowLength())
	}
}

func TestThermalConductivity(t *testing.T) {
	if k := ThermalConductivity("copper"); k != 398.0 {
		t.Errorf("铜导热系数: %v", k)
	}
	// 未知材料按 304 不锈钢兜底
	if k := ThermalConductivity("unobtainium"); k != defaultWallConductivity {
		t.Errorf("未知材料兜底: %v", k)
	}
	if len(Materials()) == 0 {
		t.Error("材料清单为空")
	}
}
