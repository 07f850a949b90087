package exchanger

import (
	"math"
	"testing"
)

func TestNewLobeSection(t *testing.T) {
	s, err := NewLobeSection(0.051, 0.043, 4)
	if err != nil {
		t.Fatal(err)
	}
	if s.ToothHeight != 0.004 {
		t.Errorf("齿高错误: %v", s.ToothHeight)
	}
	// 面积应落在谷圆与峰圆之间
	valley := math.Pi / 4 * 0.043 * 0.043
	peak := math.Pi / 4 * 0.051 * 0.051
	if s.Area <= valley || s.Area >= peak {
		t.Errorf("面积超出谷圆/峰圆范围: %v", s.Area)
	}
	// 当量直径必须满足 4A/P 恒等式
	if math.Abs(s.EquivalentDiameter-4*s.Area/s.Perimeter) > 1e-12 {
		t.Errorf("当量直径不满足 4A/P: %v", s.EquivalentDiameter)
	}
}

func TestNewLobeSectionInvalid(t *testing.T) {
	cases := []struct {
		doMax, doMin float64
		lobes        int
	}{
		{0.05, 0.05, 4},  // 峰径不大于谷径
		{0.05, -0.04, 4}, // 谷径为负
		{0.05, 0.04, 2},  // 头数过少
		{0.05, 0.04, 7},  // 头数过多
	}
	for _, c := range cases {
		if _, err := NewLobeSection(c.doMax, c.doMin, c.lobes); err == nil {
			t.Errorf("期望报错: doMax=%v doMin=%v n=%d", c.doMax, c.doMin, c.lobes)
		}
	}
}

// 逐齿修正的标定结果与极坐标积分核对，偏差控制在 10% 内
func TestLobeApproximationAgainstIntegration(t *testing.T) {
	for n := MinLobes; n <= MaxLobes; n++ {
		s, err := NewLobeSection(0.051, 0.043, n)
		if err != nil {
			t.Fatal(err)
		}
		area, perimeter := s.integrate(100000)
		if rel := math.Abs(s.Area-area) / area; rel > 0.10 {
			t.Errorf("n=%d 面积偏差 %.1f%%", n, rel*100)
		}
		if rel := math.Abs(s.Perimeter-perimeter) / perimeter; rel > 0.10 {
			t.Errorf("n=%d 周长偏差 %.1f%%", n, rel*100)
		}
	}
}

func TestHelicalLengthFactor(t *testing.T) {
	s, err := NewLobeSection(0.051, 0.043, 4)
	if err != nil {
		t.Fatal(err)
	}
	// 螺距无效时退化为 1
	if f := s.HelicalLengthFactor(0); f != 1.0 {
		t.Errorf("零螺距应返回 1: %v", f)
	}
	// sqrt(1 + (πD/P)^2) 手算核对
	pitch := 0.2
	ratio := math.Pi * 0.051 / pitch
	want := math.Sqrt(1 + ratio*ratio)
	if got := s.HelicalLengthFactor(pitch); math.Abs(got-want) > 1e-12 {
		t.Errorf("螺旋伸长系数: got=%v want=%v", got, want)
	}
	// 螺距收紧伸长更大
	if s.HelicalLengthFactor(0.1) <= s.HelicalLengthFactor(0.3) {
		t.Error("螺距越小伸长系数应越大")
	}
	if got := s.HelicalPathLength(pitch); math.Abs(got-pitch*want) > 1e-12 {
		t.Errorf("螺旋线长: %v", got)
	}
}

func TestProfile(t *testing.T) {
	s, err := NewLobeSection(0.051, 0.043, 5)
	if err != nil {
		t.Fatal(err)
	}
	theta, radius := s.Profile(64)
	if len(theta) != 64 || len(radius) != 64 {
		t.Fatalf("采样点数错误: %d %d", len(theta), len(radius))
	}
	rMin, rMax := radius[0], radius[0]
	for _, r := range radius {
		rMin = math.Min(rMin, r)
		rMax = math.Max(rMax, r)
	}
	// 采样不一定正好落在峰谷点上，只做粗粒度核对
	if rMax > 0.051/2+1e-12 || math.Abs(rMax-0.051/2) > 2e-4 {
		t.Errorf("轮廓峰值与峰半径不符: %v", rMax)
	}
	if rMin < 0.043/2-1e-12 || math.Abs(rMin-0.043/2) > 2e-4 {
		t.Errorf("轮廓谷值与谷半径不符: %v", rMin)
	}
}
