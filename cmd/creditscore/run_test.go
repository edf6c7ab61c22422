package main

import (
	"context"
	"errors"
	"os"
	"testing"
)

type appStub struct {
	startErr error
	stopErr  error
	done     chan os.Signal
	started  bool
	stopped  bool
}

func newAppStub() *appStub {
	return &appStub{done: make(chan os.Signal, 1)}
}

func (a *appStub) Start(context.Context) error {
	a.started = true
	return a.startErr
}

func (a *appStub) Stop(context.Context) error {
	a.stopped = true
	return a.stopErr
}

func (a *appStub) Done() <-chan os.Signal {
	return a.done
}

func TestRunStopsOnContextCancel(t *testing.T) {
	app := newAppStub()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := run(ctx, app); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !app.started || !app.stopped {
		t.Fatalf("expected start and stop, got started=%v stopped=%v", app.started, app.stopped)
	}
}

func TestRunStopsWhenApplicationIsDone(t *testing.T) {
	app := newAppStub()
	app.done <- os.Interrupt

	if err := run(context.Background(), app); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !app.stopped {
		t.Fatal("expected application to be stopped")
	}
}

func TestRunReportsErrors(t *testing.T) {
	app := newAppStub()
	app.startErr = errors.New("boom")
	if err := run(context.Background(), app); err == nil || app.stopped {
		t.Fatalf("expected start error without stop, got %v stopped=%v", err, app.stopped)
	}

	app = newAppStub()
	app.stopErr = errors.New("stuck")
	app.done <- os.Interrupt
	if err := run(context.Background(), app); !errors.Is(err, app.stopErr) {
		t.Fatalf("expected stop error, got %v", err)
	}
}
