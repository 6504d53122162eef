package session

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStarter struct {
	calls [][]string
	err   error
}

func (s *recordingStarter) Start(argv []string) error {
	s.calls = append(s.calls, argv)
	return s.err
}

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func newTestRegistrar(vars map[string]string, s Starter) *Registrar {
	return &Registrar{App: "taoconf", Lookup: env(vars), Starter: s, Log: zerolog.Nop()}
}

func TestRegisterUnsetSpawnsNothing(t *testing.T) {
	s := &recordingStarter{}
	r := newTestRegistrar(nil, s)

	assert.False(t, r.Register())
	assert.Empty(t, s.calls)
}

func TestRegisterEmptySpawnsNothing(t *testing.T) {
	s := &recordingStarter{}
	r := newTestRegistrar(map[string]string{AutostartEnv: ""}, s)

	assert.False(t, r.Register())
	assert.Empty(t, s.calls)
}

func TestRegisterSpawnsOnce(t *testing.T) {
	s := &recordingStarter{}
	r := newTestRegistrar(map[string]string{AutostartEnv: "abc123"}, s)

	assert.True(t, r.Register())
	require.Len(t, s.calls, 1)
	assert.Equal(t, "dbus-send", s.calls[0][0])
	assert.Contains(t, strings.Join(s.calls[0], " "), "string:abc123")
	assert.Contains(t, s.calls[0], "string:taoconf")
}

func TestRegisterSwallowsStartFailure(t *testing.T) {
	s := &recordingStarter{err: errors.New("exec: \"dbus-send\": executable file not found in $PATH")}
	r := newTestRegistrar(map[string]string{AutostartEnv: "abc123"}, s)

	assert.NotPanics(t, func() { r.Register() })
	assert.Len(t, s.calls, 1)
}

func TestExecStarterMissingProgram(t *testing.T) {
	err := execStarter{}.Start([]string{"taoconf-no-such-program"})
	assert.Error(t, err)
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestExecStarterLogsExitStatus(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("no false(1) in PATH")
	}
	var logs lockedBuffer
	s := execStarter{log: zerolog.New(&logs)}
	require.NoError(t, s.Start([]string{"false"}))

	assert.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "exit status 1")
	}, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, logs.String(), `"program":"false"`)
	assert.Contains(t, logs.String(), `"level":"debug"`)
}
