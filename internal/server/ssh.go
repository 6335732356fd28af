package server

import (
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/gliderlabs/ssh"

	"creature-forge/internal/config"
	"creature-forge/internal/render"
)

// reloadPoll is how often idle sessions check the library for reloads.
const reloadPoll = 500 * time.Millisecond

// SSHServer wraps the SSH listener and the shared layer library.
type SSHServer struct {
	lib      *Library
	cfg      config.Config
	sessions atomic.Int64
}

// NewSSHServer creates a new SSH server for the configured address.
func NewSSHServer(cfg config.Config, lib *Library) *SSHServer {
	return &SSHServer{
		lib: lib,
		cfg: cfg,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.cfg.Addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	// Set host key
	if err := server.SetOption(ssh.HostKeyFile(s.cfg.HostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.cfg.Addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	// Require PTY
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}
	log.Printf("Viewer connected: %s (%s)", username, sess.RemoteAddr())
	defer log.Printf("Viewer disconnected: %s", username)

	// A fixed seed gives every connection its own reproducible stream.
	n := s.sessions.Add(1)
	seed := s.cfg.Seed
	if seed != 0 {
		seed += n - 1
	}
	st := newSession(s.lib, seed, s.cfg.CollectionSize, s.cfg.PreviewCols)
	scr := render.NewScreen(ptyReq.Window.Width, ptyReq.Window.Height)

	// Setup terminal
	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	actionCh := make(chan Action, 16)
	quitCh := make(chan struct{})

	// Goroutine: read input
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, action := range parseInput(buf[:n]) {
				if action == ActionQuit {
					close(quitCh)
					return
				}
				select {
				case actionCh <- action:
				default:
				}
			}
		}
	}()

	st.generate()
	io.WriteString(sess, st.draw(scr))

	ticker := time.NewTicker(reloadPoll)
	defer ticker.Stop()

	for {
		select {
		case <-quitCh:
			return
		case <-sess.Context().Done():
			return
		case win, ok := <-winCh:
			if !ok {
				winCh = nil
				continue
			}
			scr.Resize(win.Width, win.Height)
		case action := <-actionCh:
			switch action {
			case ActionGenerate:
				st.generate()
			case ActionPrevious:
				st.previous()
			case ActionCollection:
				st.buildCollection()
			}
		case <-ticker.C:
			if !st.noteReload() {
				continue
			}
		}
		if output := st.draw(scr); len(output) > 0 {
			io.WriteString(sess, output)
		}
	}
}
