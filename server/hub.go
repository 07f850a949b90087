package server

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"hx/calculator"
	"hx/exchanger"
	"hx/fluid"
	"hx/model"
)

// 截面轮廓采样点数
const profilePoints = 360

// Hub 维护单个前端连接的请求/应答通道
// calc 全量计算，profile 回扭曲管截面轮廓，stop 取消进行中的计算

type Hub struct {
	provider fluid.Provider
	conn     *websocket.Conn

	// request
	msg chan model.Msg
	// response
	result  chan model.Msg
	profile chan model.Msg
	stopped chan model.Msg

	done chan struct{}
	once sync.Once

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewHub(provider fluid.Provider) *Hub {
	return &Hub{
		provider: provider,
		msg:      make(chan model.Msg, 10),
		result:   make(chan model.Msg, 10),
		profile:  make(chan model.Msg, 10),
		stopped:  make(chan model.Msg, 10),
		done:     make(chan struct{}),
	}
}

func (h *Hub) push(typ, content string) {
	select {
	case h.msg <- model.Msg{Type: typ, Content: content}:
	case <-h.done:
	}
}

func (h *Hub) close() {
	h.once.Do(func() {
		h.stop()
		close(h.done)
	})
}

// 取消进行中的计算
func (h *Hub) stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			switch msg.Type {
			case "calc":
				go h.runCalc(msg.Content)
			case "profile":
				go h.runProfile(msg.Content)
			case "stop":
				h.stop()
				h.stopped <- model.Msg{Type: "stopped", Content: "stopped"}
			default:
				log.WithFields(log.Fields{"type": msg.Type}).Warn("no such type")
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.result:
			h.write(reply)
		case reply := <-h.profile:
			h.write(reply)
		case reply := <-h.stopped:
			h.write(reply)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) write(reply model.Msg) {
	if err := h.conn.WriteJSON(&reply); err != nil {
		log.WithFields(log.Fields{"err": err}).Warn("应答写入失败")
	}
}

// 解析请求并执行计算，结果以 result 消息回送
func (h *Hub) runCalc(content string) {
	var req model.CalcRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		h.reply(h.result, "error", err.Error())
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	h.mu.Lock()
	h.cancel = cancel
	h.mu.Unlock()
	defer cancel()

	res := calculator.Solve(ctx, h.provider, req)
	data, err := json.Marshal(res)
	if err != nil {
		h.reply(h.result, "error", err.Error())
		return
	}
	h.reply(h.result, "result", string(data))
}

// 扭曲管截面轮廓采样，供前端画布绘制
func (h *Hub) runProfile(content string) {
	var req model.CalcRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		h.reply(h.profile, "error", err.Error())
		return
	}
	geom, err := exchanger.NewGeometry(&req)
	if err != nil {
		h.reply(h.profile, "error", err.Error())
		return
	}
	if geom.Lobe == nil {
		h.reply(h.profile, "error", "光管没有截面轮廓")
		return
	}
	theta, radius := geom.Lobe.Profile(profilePoints)
	data, err := json.Marshal(struct {
		Theta  []float64 `json:"theta"`
		Radius []float64 `json:"radius"`
	}{theta, radius})
	if err != nil {
		h.reply(h.profile, "error", err.Error())
		return
	}
	h.reply(h.profile, "profile", string(data))
}

func (h *Hub) reply(out chan model.Msg, typ, content string) {
	select {
	case out <- model.Msg{Type: typ, Content: content}:
	case <-h.done:
	}
}
