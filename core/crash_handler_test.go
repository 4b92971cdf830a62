package core

import (
	"bytes"
	"strings"
	"testing"
)

type fakeScreen struct{ finished int }

func (f *fakeScreen) Fini() { f.finished++ }

func stubCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var out bytes.Buffer
	code := -1
	prevOut, prevExit := crashOut, crashExit
	crashOut = &out
	crashExit = func(c int) { code = c }
	t.Cleanup(func() {
		crashOut, crashExit = prevOut, prevExit
		SetCrashScreen(nil)
	})
	return &out, &code
}

func TestHandleCrashRestoresScreen(t *testing.T) {
	out, code := stubCrash(t)
	screen := &fakeScreen{}
	SetCrashScreen(screen)

	HandleCrash("kaboom")

	if screen.finished != 1 {
		t.Errorf("Expected screen finalized once, got %d", screen.finished)
	}
	if *code != 1 {
		t.Errorf("Expected exit code 1, got %d", *code)
	}
	if !strings.Contains(out.String(), "kaboom") || !strings.Contains(out.String(), "Stack Trace") {
		t.Errorf("Expected crash report, got %q", out.String())
	}

	HandleCrash("again")
	if screen.finished != 1 {
		t.Error("Expected screen to be finalized only once")
	}
}

func TestHandleCrashNil(t *testing.T) {
	out, code := stubCrash(t)
	HandleCrash(nil)
	if *code != -1 || out.Len() != 0 {
		t.Error("Expected nil recovery to be ignored")
	}
}

func TestGoRecovers(t *testing.T) {
	_, code := stubCrash(t)
	done := make(chan struct{})
	crashExit = func(c int) {
		*code = c
		close(done)
	}
	Go(func() { panic("worker") })
	<-done
	if *code != 1 {
		t.Errorf("Expected exit code 1, got %d", *code)
	}
}
