// ABOUTME: PTY harness for e2e tests: builds the real binary and drives it
// ABOUTME: through a pseudo-terminal, answering cursor-position queries itself.

package e2e

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	buildPath string
	buildErr  error
)

// binary builds cmd/fuzzyfind once per test run and returns its path.
func binary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		buildPath = filepath.Join(os.TempDir(), fmt.Sprintf("fuzzyfind-e2e-%d", os.Getpid()))
		cmd := exec.Command("go", "build", "-o", buildPath, "fuzzyfind/cmd/fuzzyfind")
		cmd.Dir = ".."
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("go build: %v\n%s", err, out)
		}
	})
	if buildErr != nil {
		t.Fatal(buildErr)
	}
	return buildPath
}

type session struct {
	cmd  *exec.Cmd
	ptmx *os.File

	mu  sync.Mutex
	out bytes.Buffer

	done chan error
}

// startFinder launches the binary under a 80x24 PTY with the given
// arguments. The read loop answers DSR cursor queries (ESC [ 6 n) the way
// a real terminal would, so the binary can place its window.
func startFinder(t *testing.T, args ...string) *session {
	t.Helper()

	cmd := exec.Command(binary(t), args...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("starting under pty: %v", err)
	}

	s := &session{cmd: cmd, ptmx: ptmx, done: make(chan error, 1)}
	go s.readLoop()
	go func() { s.done <- cmd.Wait() }()
	return s
}

func (s *session) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out.Write(buf[:n])
			s.mu.Unlock()
			if bytes.Contains(buf[:n], []byte("\x1b[6n")) {
				s.ptmx.Write([]byte("\x1b[10;1R"))
			}
		}
		if err != nil {
			return
		}
	}
}

func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

func (s *session) send(t *testing.T, text string) {
	t.Helper()
	if _, err := s.ptmx.WriteString(text); err != nil {
		t.Fatalf("sending %q: %v", text, err)
	}
}

func (s *session) sendCtrl(t *testing.T, c byte) {
	t.Helper()
	s.send(t, string(rune(c-'a'+1)))
}

func (s *session) sendEscape(t *testing.T) {
	t.Helper()
	s.send(t, "\x1b")
}

func (s *session) sendArrowUp(t *testing.T) {
	t.Helper()
	s.send(t, "\x1b[A")
}

func (s *session) sendEnter(t *testing.T) {
	t.Helper()
	s.send(t, "\r")
}

// expectStringTimeout polls the captured output until want appears.
func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in output:\n%s", want, s.output())
}

// waitExit blocks until the process exits and returns its exit code.
func (s *session) waitExit(t *testing.T, timeout time.Duration) int {
	t.Helper()

	select {
	case err := <-s.done:
		if err == nil {
			return 0
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		t.Fatalf("process failed: %v", err)
		return -1
	case <-time.After(timeout):
		t.Fatalf("process did not exit within %v; output:\n%s", timeout, s.output())
		return -1
	}
}

func (s *session) close() {
	s.ptmx.Close()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
}
