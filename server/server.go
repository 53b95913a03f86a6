package server

import (
	"github.com/gorilla/websocket"
	"github.com/zucenko/mazer/model"
	"time"
)

// VizServer streams maze solves over websockets: every connection gets
// a fresh grid, one frame per node expansion, and a terminal frame with
// the outcome. Connections are independent; nothing is shared between
// runs.
type VizServer struct {
	MazeFile   string
	FrameDelay time.Duration
	Upgrader   *websocket.Upgrader
}

func NewVizServer(mazeFile string, frameDelay time.Duration) *VizServer {
	return &VizServer{
		MazeFile:   mazeFile,
		FrameDelay: frameDelay,
		Upgrader:   &websocket.Upgrader{},
	}
}

// Frame is one step of a streamed solve. The terminal frame has Done
// set and, on success, the start-to-target path.
type Frame struct {
	Step  int              `json:"step"`
	Row   int              `json:"row"`
	Col   int              `json:"col"`
	Move  string           `json:"move"`
	Done  bool             `json:"done"`
	Found bool             `json:"found"`
	Path  []model.Position `json:"path,omitempty"`
}
