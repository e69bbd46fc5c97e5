package editor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fieldline/gws/internal/config"
)

func TestSubstitute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		path     string
		files    []string
		want     string
	}{
		{
			name:     "path placeholder",
			template: "code -n {path}",
			path:     "/ws/api-main.gws",
			want:     "code -n '/ws/api-main.gws'",
		},
		{
			name:     "files placeholder",
			template: "vim -p {files}",
			files:    []string{"a.go", "b.go"},
			want:     "vim -p 'a.go' 'b.go'",
		},
		{
			name:     "single quote escaped",
			template: "vim {path}",
			path:     "it's.gws",
			want:     `vim 'it'\''s.gws'`,
		},
		{
			name:     "space in file name",
			template: "vim {files}",
			files:    []string{"my file.txt"},
			want:     "vim 'my file.txt'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := substitute(tt.template, tt.path, tt.files); got != tt.want {
				t.Errorf("substitute = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpenWait(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "opened")

	e := New(config.EditorConfig{
		Open:   "true {path}",
		Review: "printf '%s\\n' {files} > " + out,
	})

	err := e.OpenWait(context.Background(), []string{"a.go", "b.go"})
	if err != nil {
		t.Fatalf("OpenWait = %v, want nil", err)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("review command did not run: %v", err)
	}
	if got := string(content); got != "a.go\nb.go\n" {
		t.Errorf("review view received %q, want %q", got, "a.go\nb.go\n")
	}
}

func TestOpenWait_CommandFails(t *testing.T) {
	t.Parallel()
	e := New(config.EditorConfig{Open: "true {path}", Review: "exit 3"})

	if err := e.OpenWait(context.Background(), []string{"a.go"}); err == nil {
		t.Error("OpenWait with failing command = nil, want error")
	}
}

func TestOpenWait_ContextCancelled(t *testing.T) {
	t.Parallel()
	e := New(config.EditorConfig{Open: "true {path}", Review: "sleep 10"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.OpenWait(ctx, []string{"a.go"})
	if err != context.Canceled {
		t.Errorf("OpenWait with cancelled context = %v, want context.Canceled", err)
	}
}

func TestOpenWindow(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "window")

	e := New(config.EditorConfig{
		Open:   "touch " + out + " && true {path}",
		Review: "true {files}",
	})

	if err := e.OpenWindow(context.Background(), "/repo"); err != nil {
		t.Fatalf("OpenWindow = %v, want nil", err)
	}

	// OpenWindow does not wait; poll briefly for the side effect.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(out); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("window command never ran")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	e := New(config.EditorConfig{Open: "sh -c {path}", Review: "sh {files}"})
	if err := e.Check(); err != nil {
		t.Errorf("Check with sh = %v, want nil", err)
	}

	e = New(config.EditorConfig{Open: "definitely-not-an-editor {path}", Review: "sh {files}"})
	if err := e.Check(); err == nil {
		t.Error("Check with missing open binary = nil, want error")
	}

	e = New(config.EditorConfig{Open: "sh -c {path}", Review: "definitely-not-an-editor {files}"})
	if err := e.Check(); err == nil {
		t.Error("Check with missing review binary = nil, want error")
	}

	e = New(config.EditorConfig{Open: "sh -c {path}"})
	if err := e.Check(); err == nil {
		t.Error("Check with empty review command = nil, want error")
	}

	e = New(config.EditorConfig{})
	if err := e.Check(); err == nil {
		t.Error("Check with empty command = nil, want error")
	}
}
