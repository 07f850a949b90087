package main

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"hx/fluid"
	"hx/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	provider, err := fluid.Default()
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("物性库初始化失败")
	}
	s := server.NewServer(upgrader, provider)
	s.Serve()
}
