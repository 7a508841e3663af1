package websocket

import (
	"context"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fw "github.com/ghostlabs/ghost.go/pkg/firmware"
	"github.com/ghostlabs/ghost.go/pkg/link"
)

// Server exposes the device link over websocket, running one
// registrar per connected agent.
type Server struct {
	Addr string

	icpt link.CommandInterceptor
	ctx  context.Context

	lock  sync.Mutex
	conns map[*link.Registrar]struct{}
}

// NewServer creates a Server listening on addr. Commands consumed
// by icpt are serviced out-of-band.
func NewServer(addr string, icpt link.CommandInterceptor) *Server {
	return &Server{
		Addr:  addr,
		icpt:  icpt,
		conns: make(map[*link.Registrar]struct{}),
	}
}

// SendEvent implements EventSender, fanning out to all connected
// agents.
func (s *Server) SendEvent(ctx context.Context, msg fw.Message) error {
	s.lock.Lock()
	regs := make([]*link.Registrar, 0, len(s.conns))
	for reg := range s.conns {
		regs = append(regs, reg)
	}
	s.lock.Unlock()
	var errs fw.AggregatedError
	for _, reg := range regs {
		errs.Add(reg.SendEvent(ctx, msg))
	}
	return errs.Aggregate()
}

// AddToLoop implements LoopAdder.
func (s *Server) AddToLoop(loop *fw.Loop) {
	loop.AddRunnable(s)
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	s.ctx = ctx
	srv := &http.Server{Addr: s.Addr, Handler: websocket.Handler(s.serve)}
	return fw.RunWithContextCloser(ctx, srv, srv.ListenAndServe)
}

func (s *Server) serve(conn *websocket.Conn) {
	reg := &link.Registrar{}
	reg.Init(New(conn), s.icpt)
	s.lock.Lock()
	s.conns[reg] = struct{}{}
	s.lock.Unlock()
	glog.V(1).Infof("ws: agent %s connected", conn.Request().RemoteAddr)
	err := reg.Run(s.ctx)
	s.lock.Lock()
	delete(s.conns, reg)
	s.lock.Unlock()
	glog.V(1).Infof("ws: agent %s gone: %v", conn.Request().RemoteAddr, err)
}
