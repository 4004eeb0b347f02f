package cli_test

import (
	"bytes"
	"context"
	"testing"

	"refsync/internal/cli"
	"refsync/internal/commands"
	"refsync/internal/config"
	"refsync/internal/exitcode"
	"refsync/internal/source"
	"refsync/internal/testutil"
	"refsync/internal/workspace"
)

// testBackends wires fakes into dispatcher factories and counts how often
// each factory is invoked.
type testBackends struct {
	src *testutil.FakeSource
	ws  *testutil.FakeWorkspace

	srcFactoryCalls int
	wsFactoryCalls  int
}

func newTestBackends() *testBackends {
	return &testBackends{
		src: testutil.NewFakeSource(),
		ws:  testutil.NewFakeWorkspace(),
	}
}

func (b *testBackends) dispatcher() *cli.Dispatcher {
	srcFactory := func(ctx context.Context, cfg *config.Config) (source.Service, error) {
		b.srcFactoryCalls++
		return b.src, nil
	}
	wsFactory := func(ctx context.Context, cfg *config.Config) (workspace.Service, error) {
		b.wsFactoryCalls++
		return b.ws, nil
	}
	return cli.NewDispatcher(commands.DefaultRegistry, srcFactory, wsFactory)
}

// setTokens puts both required tokens in the test environment.
func setTokens(t *testing.T) {
	t.Helper()
	t.Setenv(config.TodoistTokenVar, "td-token")
	t.Setenv(config.NotionTokenVar, "nt-token")
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	setTokens(t)
	b := newTestBackends()

	var stdout, stderr bytes.Buffer
	code := b.dispatcher().Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	setTokens(t)
	b := newTestBackends()

	var stdout, stderr bytes.Buffer
	code := b.dispatcher().Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	setTokens(t)
	b := newTestBackends()

	var stdout, stderr bytes.Buffer
	code := b.dispatcher().Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
	// Help needs no credentials, so no backend is ever constructed.
	if b.srcFactoryCalls != 0 || b.wsFactoryCalls != 0 {
		t.Errorf("expected no factory calls for help, got %d/%d", b.srcFactoryCalls, b.wsFactoryCalls)
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	setTokens(t)
	b := newTestBackends()

	var stdout, stderr bytes.Buffer
	code := b.dispatcher().Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "refsync 0.1.0\n" {
		t.Errorf("expected 'refsync 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	setTokens(t)
	b := newTestBackends()

	var stdout, stderr bytes.Buffer
	code := b.dispatcher().Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_MissingTokens_NoBackendCalls(t *testing.T) {
	t.Setenv(config.TodoistTokenVar, "")
	t.Setenv(config.NotionTokenVar, "")
	b := newTestBackends()

	var stdout, stderr bytes.Buffer
	code := b.dispatcher().Run(context.Background(), []string{"sync"}, &stdout, &stderr)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	expected := "error: missing required environment variables: TODOIST_TOKEN, NOTION_TOKEN\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}

	// The run must end before any backend is constructed or called.
	if b.srcFactoryCalls != 0 || b.wsFactoryCalls != 0 {
		t.Errorf("expected no factory calls, got %d/%d", b.srcFactoryCalls, b.wsFactoryCalls)
	}
	if b.src.Calls != 0 {
		t.Errorf("expected no source calls, got %d", b.src.Calls)
	}
	if b.ws.Calls != 0 {
		t.Errorf("expected no workspace calls, got %d", b.ws.Calls)
	}
}

func TestDispatcher_MissingOneToken(t *testing.T) {
	t.Setenv(config.TodoistTokenVar, "td-token")
	t.Setenv(config.NotionTokenVar, "")
	b := newTestBackends()

	var stdout, stderr bytes.Buffer
	code := b.dispatcher().Run(context.Background(), []string{"sync"}, &stdout, &stderr)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if b.src.Calls != 0 || b.ws.Calls != 0 {
		t.Errorf("expected no backend calls, got %d/%d", b.src.Calls, b.ws.Calls)
	}
}

func TestDispatcher_NoArgsRunsSync(t *testing.T) {
	setTokens(t)
	b := newTestBackends()
	b.src.AddProject("P1", "Reflections")
	b.src.AddTask("P1", "T1", "Reflect on sleep")
	b.ws.AddPage("Journal", "journal-1")

	var stdout, stderr bytes.Buffer
	code := b.dispatcher().Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr.String())
	}
	if len(b.ws.Created) != 1 {
		t.Fatalf("expected 1 created page, got %d", len(b.ws.Created))
	}
	if b.ws.Created[0].ParentID != "journal-1" {
		t.Errorf("expected parent journal-1, got %s", b.ws.Created[0].ParentID)
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Successfully created page with ID: created-1")) {
		t.Errorf("expected creation confirmation, got %q", stdout.String())
	}
}

func TestDispatcher_QuietSuppressesStatus(t *testing.T) {
	setTokens(t)
	b := newTestBackends()
	b.src.AddProject("P1", "Reflections")
	b.ws.AddPage("Journal", "journal-1")

	var stdout, stderr bytes.Buffer
	code := b.dispatcher().Run(context.Background(), []string{"sync", "--quiet"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "" {
		t.Errorf("expected no stdout with --quiet, got %q", stdout.String())
	}
	if len(b.ws.Created) != 1 {
		t.Errorf("expected page still created with --quiet, got %d", len(b.ws.Created))
	}
}
