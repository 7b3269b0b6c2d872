// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package lifecycle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/danielhkuo/camp-apply/cliparse"
	"github.com/danielhkuo/camp-apply/db"
)

type State int32

const (
	Starting State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

const (
	Prompt      = "Stop to shutdown the server: "
	StopCommand = "stop"
)

// Controller owns the listener and the store for the life of the process.
type Controller struct {
	server          *http.Server
	store           db.Store
	in              io.Reader
	out             io.Writer
	shutdownTimeout time.Duration

	state   atomic.Int32
	closing atomic.Bool
	outMu   sync.Mutex
}

func New(handler http.Handler, store db.Store, cfg cliparse.Config, in io.Reader, out io.Writer) *Controller {
	return &Controller{
		server: &http.Server{
			Handler:           handler,
			Addr:              ":" + strconv.Itoa(cfg.Port),
			ReadHeaderTimeout: 10 * time.Second,
		},
		store:           store,
		in:              in,
		out:             out,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

func (c *Controller) State() State {
	return State(c.state.Load())
}

// Run listens on the configured port and serves until stopped.
func (c *Controller) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", c.server.Addr)
	if err != nil {
		c.state.Store(int32(Stopped))
		c.closeStore()
		return fmt.Errorf("failed to listen on %s: %w", c.server.Addr, err)
	}
	return c.Serve(ctx, ln)
}

// Serve serves on ln until the stop command is read, ctx is done, or the
// listener fails. Stdin reaching EOF does not stop the server.
func (c *Controller) Serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- c.server.Serve(ln)
	}()

	c.state.Store(int32(Running))
	slog.Info("Listening", "addr", ln.Addr().String())

	port := c.server.Addr
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = strconv.Itoa(addr.Port)
	}
	c.printf("Web server started and running at http://localhost:%s\n", strings.TrimPrefix(port, ":"))
	c.printf("%s", Prompt)

	stop := make(chan struct{})
	go c.readCommands(stop)

	select {
	case err := <-serveErr:
		c.state.Store(int32(Stopped))
		c.closeInput()
		c.closeStore()
		return fmt.Errorf("server failed: %w", err)
	case <-stop:
		slog.Info("stop command received")
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	c.printf("Shutting down the server\n")
	c.closeInput()
	return c.shutdown(serveErr)
}

// readCommands closes stop on the first stop command.
func (c *Controller) readCommands(stop chan<- struct{}) {
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), StopCommand) {
			close(stop)
			return
		}
		c.printf("%s", Prompt)
	}
	if err := scanner.Err(); err != nil && !c.closing.Load() {
		slog.Warn("stdin read failed", "error", err)
	}
}

// closeInput releases a reader blocked on the input stream.
func (c *Controller) closeInput() {
	closer, ok := c.in.(io.Closer)
	if !ok {
		return
	}
	c.closing.Store(true)
	if err := closer.Close(); err != nil {
		slog.Warn("failed to close stdin", "error", err)
	}
}

func (c *Controller) shutdown(serveErr <-chan error) error {
	ctx := context.Background()
	if c.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.shutdownTimeout)
		defer cancel()
	}

	err := c.server.Shutdown(ctx)
	if err != nil {
		slog.Warn("graceful shutdown timed out, closing connections", "error", err)
		c.server.Close()
	}

	if serr := <-serveErr; serr != nil && !errors.Is(serr, http.ErrServerClosed) {
		slog.Error("server closed", "error", serr)
	}

	c.state.Store(int32(Stopped))
	c.closeStore()
	slog.Info("Server closed")

	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func (c *Controller) closeStore() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.store.Close(ctx); err != nil {
		slog.Warn("failed to close store", "error", err)
	}
}

func (c *Controller) printf(format string, args ...any) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}
