package server

import (
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazer/model"
	"github.com/zucenko/mazer/solver"
	"net/http"
	"time"
)

// HandleSolve upgrades the connection to a websocket and streams one
// solve of the configured maze. The ?frontier= query picks the
// discipline: "stack" for depth-first, anything else gets the
// breadth-first queue.
func (s *VizServer) HandleSolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleSolve - connection received")

		grid, err := model.Load(s.MazeFile)
		if err != nil {
			log.Errorf("HandleSolve failed to load maze %s: %v", s.MazeFile, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		engine, err := solver.New(grid)
		if err != nil {
			log.Errorf("HandleSolve invalid maze %s: %v", s.MazeFile, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("HandleSolve websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		frontier := frontierFor(r.URL.Query().Get("frontier"))
		log.Printf("HandleSolve solving %s", s.MazeFile)

		closed := false
		engine.OnExpand = func(n solver.Node, step int) {
			if closed {
				return
			}
			frame := Frame{Step: step, Row: n.Pos.Row, Col: n.Pos.Col, Move: n.Move.String()}
			if err := con.WriteJSON(frame); err != nil {
				log.Warnf("HandleSolve write failed, muting stream: %v", err)
				closed = true
				return
			}
			if s.FrameDelay > 0 {
				time.Sleep(s.FrameDelay)
			}
		}

		found := engine.Solve(frontier)
		if closed {
			return
		}
		final := Frame{Step: engine.Steps(), Done: true, Found: found, Path: engine.Path()}
		if err := con.WriteJSON(final); err != nil {
			log.Warnf("HandleSolve final write failed: %v", err)
			return
		}
		log.Printf("HandleSolve done, found=%v steps=%d", found, engine.Steps())
	}
}

func frontierFor(name string) solver.Frontier {
	switch name {
	case "stack", "dfs":
		return solver.NewStackFrontier()
	default:
		return solver.NewQueueFrontier()
	}
}
