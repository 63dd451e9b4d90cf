// Package executortest provides an in-memory executor.Executor for tests.
package executortest

import (
	"context"
	"sync"
)

// Call records one command invocation.
type Call struct {
	Name     string
	Args     []string
	Input    string
	HasInput bool
}

// Fake answers every command through Handler and records the calls.
type Fake struct {
	Handler func(call Call) (string, error)

	mu    sync.Mutex
	calls []Call
}

func (f *Fake) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.do(Call{Name: name, Args: args})
}

func (f *Fake) ExecuteWithInput(ctx context.Context, input string, name string, args ...string) (string, error) {
	return f.do(Call{Name: name, Args: args, Input: input, HasInput: true})
}

func (f *Fake) do(call Call) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if f.Handler == nil {
		return "", nil
	}
	return f.Handler(call)
}

// Calls returns a copy of the recorded invocations in order.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}
