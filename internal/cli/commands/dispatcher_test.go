package commands

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"HabitAuth/internal/config"
)

// fakeCmd позволяет управлять возвратом ошибок из Run
type fakeCmd struct {
	name, usage, desc string
	run               func(ctx context.Context, cfg *config.Config, args []string) error
}

func (f fakeCmd) Name() string        { return f.name }
func (f fakeCmd) Description() string { return f.desc }
func (f fakeCmd) Usage() string       { return f.usage }
func (f fakeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return f.run(ctx, cfg, args)
}

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	// зарегистрированы login/logout/whoami/register/shell из init()
	out := withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{}) })
	if !strings.Contains(out, "HabitAuth CLI") {
		t.Fatalf("global help expected")
	}
	for _, name := range []string{"login", "logout", "whoami", "register", "shell"} {
		if !strings.Contains(out, name) {
			t.Fatalf("help must list %q: %s", name, out)
		}
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help"}) })
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("usage expected")
	}

	var code int
	out = withStdoutCapture(t, func() { code = Dispatch(context.Background(), &config.Config{}, []string{"help", "login"}) })
	if code != 0 || !strings.Contains(out, "login <username> <password>") {
		t.Fatalf("expected login usage with code 0, got %d: %s", code, out)
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help", "nope"}) })
	if !strings.Contains(out, "Unknown command") {
		t.Fatalf("unknown command message expected")
	}

	withStdoutCapture(t, func() { code = Dispatch(context.Background(), &config.Config{}, []string{"no-such"}) })
	if code != 2 {
		t.Fatalf("expected 2 for unknown command, got %d", code)
	}
}

func TestDispatcher_RunPaths(t *testing.T) {
	cmdOK := fakeCmd{name: "x", usage: "x", run: func(_ context.Context, _ *config.Config, _ []string) error { return nil }}
	RegisterCmd(cmdOK)
	t.Cleanup(func() { delete(registry, "x") })
	if code := Dispatch(context.Background(), &config.Config{}, []string{"x"}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	cmdUsage := fakeCmd{name: "u", usage: "u <arg>", run: func(_ context.Context, _ *config.Config, _ []string) error { return ErrUsage }}
	RegisterCmd(cmdUsage)
	t.Cleanup(func() { delete(registry, "u") })
	out := withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"u"}) })
	if !strings.Contains(out, "Usage: u <arg>") {
		t.Fatalf("usage text expected")
	}

	cmdErr := fakeCmd{name: "e", usage: "e", run: func(_ context.Context, _ *config.Config, _ []string) error { return fmt.Errorf("boom") }}
	RegisterCmd(cmdErr)
	t.Cleanup(func() { delete(registry, "e") })
	var code int
	out = withStdoutCapture(t, func() { code = Dispatch(context.Background(), &config.Config{}, []string{"e"}) })
	if code != 1 || !strings.Contains(out, "e error: boom") {
		t.Fatalf("error line expected, got %d: %s", code, out)
	}
}

func TestDispatcher_NoSessionInScope(t *testing.T) {
	var code int
	out := withStdoutCapture(t, func() {
		code = Dispatch(context.Background(), &config.Config{ServerURL: "http://127.0.0.1:1"}, []string{"whoami"})
	})
	if code != 1 || !strings.Contains(out, "outside of session scope") {
		t.Fatalf("expected scope error, got %d: %s", code, out)
	}
}
