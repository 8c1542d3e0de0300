package git

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/bashhack/dailylog/internal/logger"
)

// call records one invocation of the mock executor
type call struct {
	Dir  string
	Name string
	Args []string
}

// MockExecutor returns scripted results keyed by the joined argument list.
// Commands without a script succeed with empty output.
type MockExecutor struct {
	mu      sync.Mutex
	Results map[string]Result
	Errors  map[string]error
	Calls   []call
}

func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Results: make(map[string]Result),
		Errors:  make(map[string]error),
	}
}

// On registers the result for a command, e.g. On(Result{}, "config", "--get", "user.name")
func (m *MockExecutor) On(res Result, args ...string) *MockExecutor {
	m.Results[strings.Join(args, " ")] = res
	return m
}

// Fail registers a start error for a command
func (m *MockExecutor) Fail(err error, args ...string) *MockExecutor {
	m.Errors[strings.Join(args, " ")] = err
	return m
}

func (m *MockExecutor) Execute(_ context.Context, dir string, name string, args ...string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, call{Dir: dir, Name: name, Args: args})

	key := strings.Join(args, " ")
	if err, ok := m.Errors[key]; ok {
		return Result{ExitCode: -1}, err
	}
	if res, ok := m.Results[key]; ok {
		return res, nil
	}
	return Result{}, nil
}

// Ran reports whether a command with exactly these args was executed
func (m *MockExecutor) Ran(args ...string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.Join(args, " ")
	for _, c := range m.Calls {
		if strings.Join(c.Args, " ") == key {
			return true
		}
	}
	return false
}

func newMockClient() (*Client, *MockExecutor) {
	exec := NewMockExecutor()
	log := logger.NewWithOutput(logger.Options{Quiet: true, Stdout: io.Discard, Stderr: io.Discard})
	return NewClientWithDeps(exec, log), exec
}
