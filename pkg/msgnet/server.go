package msgnet

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"

	"go.uber.org/zap"
)

// Handler processes one request message and optionally returns a response.
// A nil response means nothing is written back for that request.
type Handler func(req *Message) *Message

// Server accepts framed-message connections and dispatches each request to
// its handler on a per-connection goroutine.
type Server struct {
	handler Handler
	log     *zap.Logger

	mu     sync.Mutex
	ln     net.Listener
	closed bool
	wg     sync.WaitGroup
}

// NewServer creates a server. A nil logger disables logging.
func NewServer(handler Handler, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{handler: handler, log: log}
}

// Listen binds the server to addr (for example "127.0.0.1:0").
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	s.log.Info("listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Serve accepts connections until ctx is canceled or Close is called.
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()
	if ln == nil {
		return errors.New("msgnet: Serve before Listen")
	}

	stop := context.AfterFunc(ctx, func() { _ = s.Close() })
	defer stop()

	for {
		conn, err := ln.Accept()
		if err != nil {
			s.wg.Wait()
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed || ctx.Err() != nil {
				return nil
			}
			return err
		}
		s.wg.Add(1)
		go s.handleConn(conn)
	}
}

// ListenAndServe combines Listen and Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if err := s.Listen(addr); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Close stops accepting connections. In-flight connections finish their
// current request and are closed.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.ln != nil {
		return s.ln.Close()
	}
	return nil
}

func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer func() { _ = conn.Close() }()
	remote := conn.RemoteAddr().String()
	s.log.Debug("client connected", zap.String("remote", remote))

	for {
		req, err := Decode(conn)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				s.log.Warn("decode failed", zap.String("remote", remote), zap.Error(err))
			}
			return
		}
		if s.handler == nil {
			continue
		}
		resp := s.handler(req)
		if resp == nil {
			continue
		}
		frame, err := resp.Encode()
		if err != nil {
			s.log.Warn("encode response failed", zap.String("remote", remote), zap.Error(err))
			continue
		}
		if _, err := conn.Write(frame); err != nil {
			s.log.Warn("write failed", zap.String("remote", remote), zap.Error(err))
			return
		}
	}
}
