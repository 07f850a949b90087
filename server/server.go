package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gopkg.in/ini.v1"
	"hx/fluid"
	"hx/model"
)

// 服务端配置，从 conf/config.ini 的 [server] 节读取，缺省可跑
var srvCfg = struct {
	Addr      string
	RateLimit float64 // 每 IP 每秒请求数
	RateBurst int
}{
	Addr:      ":9000",
	RateLimit: 5,
	RateBurst: 10,
}

func init() {
	cfg, err := ini.Load("conf/config.ini")
	if err != nil {
		cfg, err = ini.Load("../conf/config.ini")
	}
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Warn("服务配置缺失，使用内置缺省值")
		return
	}
	sec := cfg.Section("server")
	srvCfg.Addr = sec.Key("Addr").MustString(srvCfg.Addr)
	srvCfg.RateLimit = sec.Key("RateLimit").MustFloat64(srvCfg.RateLimit)
	srvCfg.RateBurst = sec.Key("RateBurst").MustInt(srvCfg.RateBurst)
}

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	provider fluid.Provider
	limiter  *IPRateLimiter
}

func NewServer(upgrader websocket.Upgrader, provider fluid.Provider) *Server {
	return &Server{
		addr:     srvCfg.Addr,
		upgrader: upgrader,
		provider: provider,
		limiter:  NewIPRateLimiter(rate.Limit(srvCfg.RateLimit), srvCfg.RateBurst),
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("websocket 升级失败")
		return
	}
	defer conn.Close()

	hub := NewHub(s.provider)
	hub.conn = conn
	go hub.handleRequest()
	go hub.handleResponse()
	defer hub.close()

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithFields(log.Fields{"err": err}).Info("连接断开")
			return
		}
		hub.push(msg.Type, msg.Content)
	}
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/ws", s.serveWs)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/calc", s.handleCalc).Methods(http.MethodPost)
	api.HandleFunc("/report", s.handleReport).Methods(http.MethodPost)
	api.HandleFunc("/batch", s.handleBatch).Methods(http.MethodPost)
	api.HandleFunc("/materials", s.handleMaterials).Methods(http.MethodGet)
	api.HandleFunc("/fluids", s.handleFluids).Methods(http.MethodGet)
	return r
}

func (s *Server) Serve() {
	log.WithFields(log.Fields{"addr": s.addr}).Info("服务启动")
	if err := http.ListenAndServe(s.addr, s.limit(s.router())); err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("ListenAndServe")
	}
}
