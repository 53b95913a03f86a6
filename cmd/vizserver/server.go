package main

import (
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazer/config"
	"github.com/zucenko/mazer/server"
	"net/http"
	"time"
)

type Server struct {
	router *way.Router
	Viz    *server.VizServer
}

func main() {
	cfg := config.Load()
	Server := Server{
		Viz: server.NewVizServer(cfg.MazeFile, time.Duration(cfg.FrameDelayMS)*time.Millisecond),
	}
	Server.routes()
	log.Printf("vizserver solving %s on port %s", cfg.MazeFile, cfg.Port)
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, Server.router))
}
