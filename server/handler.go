package server

import (
	"encoding/json"
	"net/http"
	"sort"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"hx/batch"
	"hx/calculator"
	"hx/exchanger"
	"hx/fluid"
	"hx/model"
	"hx/report"
)

// HTTP JSON 接口，与 /ws 共用同一套计算入口

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithFields(log.Fields{"err": err}).Warn("应答编码失败")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// POST /api/calc
func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	var req model.CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res := calculator.Solve(r.Context(), s.provider, req)
	writeJSON(w, http.StatusOK, res)
}

// POST /api/report 计算并生成 PDF 数据表
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req model.CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res := calculator.Solve(r.Context(), s.provider, req)
	if !res.Success {
		writeError(w, http.StatusUnprocessableEntity, res.Error)
		return
	}
	pdf := report.New(&req, res)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="datasheet.pdf"`)
	if err := pdf.Output(w); err != nil {
		log.WithFields(log.Fields{"err": err}).Error("报表输出失败")
	}
}

// POST /api/batch 上传 xlsx 工况表，逐行计算
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer file.Close()

	reqs, err := batch.Import(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results := make([]*calculator.SolveResult, len(reqs))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(4)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			results[i] = calculator.Solve(ctx, s.provider, req)
			return nil
		})
	}
	g.Wait()
	writeJSON(w, http.StatusOK, results)
}

// GET /api/materials
func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	ids := exchanger.Materials()
	sort.Strings(ids)
	writeJSON(w, http.StatusOK, ids)
}

// GET /api/fluids
func (s *Server) handleFluids(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fluid.Fluids())
}
