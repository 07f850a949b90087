package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"hx/calculator"
	"hx/model"
)

// 计算结果 PDF 数据表
// gofpdf 内置字体只有拉丁字符，表内文字用英文

func New(req *model.CalcRequest, res *calculator.SolveResult) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Double-Pipe Heat Exchanger Datasheet")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(label, value string) {
		pdf.Cell(70, 6, label)
		pdf.Cell(0, 6, value)
		pdf.Ln(6)
	}

	section("Configuration")
	row("Tube type", req.TubeType)
	row("Arrangement", req.Arrangement)
	row("Flow path", req.FlowPath)
	row("Inner tube OD / ID", fmt.Sprintf("%.1f / %.1f mm", req.InnerOuterDiameter*1000, req.InnerInnerDiameter*1000))
	row("Shell bore", fmt.Sprintf("%.1f mm", req.OuterInnerDiameter*1000))
	row("Effective length", fmt.Sprintf("%.2f m x %d pass", req.Length, max1(req.PassCount)))
	if req.TubeType == model.TubeTwisted {
		row("Twist pitch / lobes / tooth", fmt.Sprintf("%.0f mm / %d / %.1f mm",
			req.TwistPitch*1000, req.LobeCount, req.ToothHeight*1000))
	}
	row("Wall material", req.WallMaterial)
	pdf.Ln(3)

	section("Process")
	row("Hot fluid", fmt.Sprintf("%s  %.1f -> %.1f C  @ %.1f kPa", req.HotFluid, req.HotTin, req.HotTout, req.HotPressure))
	row("Cold fluid", fmt.Sprintf("%s  %.1f -> %.1f C  @ %.1f kPa", req.ColdFluid, req.ColdTin, req.ColdTout, req.ColdPressure))
	row("Hot / cold flow", fmt.Sprintf("%.3f / %.3f kg/s", res.HotFlow, res.ColdFlow))
	pdf.Ln(3)

	section("Results")
	row("Duty", fmt.Sprintf("%.2f kW", res.Duty/1000))
	row("LMTD", fmt.Sprintf("%.2f C", res.LMTD))
	row("Overall U", fmt.Sprintf("%.1f W/(m2.K)  [%s]", res.U, res.Strategy))
	row("Required area", fmt.Sprintf("%.3f m2", res.RequiredArea))
	row("Actual area", fmt.Sprintf("%.3f m2", res.ActualArea))
	row("Area margin", fmt.Sprintf("%.1f %%  (%s)", res.MarginPct, res.MarginClass))
	if res.TubeDrop != nil {
		row("Tube-side pressure drop", fmt.Sprintf("%.2f kPa  [%s]", res.TubeDrop.DeltaP/1000, res.TubeDrop.Model))
	}
	if res.AnnulusDrop != nil {
		row("Annulus-side pressure drop", fmt.Sprintf("%.2f kPa  [%s]", res.AnnulusDrop.DeltaP/1000, res.AnnulusDrop.Model))
	}
	pdf.Ln(3)

	if b := res.Breakdown; b != nil {
		section("Thermal Resistance Breakdown")
		row("Tube-side film", fmt.Sprintf("h=%.1f  %.1f %%", b.Hi, b.RiPct))
		row("Annulus-side film", fmt.Sprintf("h=%.1f  %.1f %%", b.Ho, b.RoPct))
		row("Wall conduction", fmt.Sprintf("%.1f %%", b.RwallPct))
		row("Fouling inner / outer", fmt.Sprintf("%.1f / %.1f %%", b.RfiPct, b.RfoPct))
		pdf.Ln(3)
	}

	if tz := res.ThreeZone; tz != nil {
		section("Three-Zone Condenser")
		row("Saturation temperature", fmt.Sprintf("%.2f C", tz.TSat))
		zone := func(z calculator.ZoneResult) {
			row(z.Name, fmt.Sprintf("Q=%.2f kW  U=%.1f  A=%.3f m2", z.Duty/1000, z.U, z.Area))
		}
		zone(tz.Desuperheat)
		zone(tz.Condense)
		zone(tz.Subcool)
	}
	return pdf
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
