package commands

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/recolor/internal/batch"
	"github.com/ironsheep/recolor/internal/imaging"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(BuildInfo{Version: "1.2.3", BuildTime: "now", GitCommit: "abc"}, Options{}, &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSample(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 128})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
}

func TestRoot_WrongArgumentCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"none", nil},
		{"three", []string{"in", "out", "FF0000"}},
		{"five", []string{"in", "out", "FF0000", "00FF00", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := runCmd(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error for the wrong argument count")
			}
			if !strings.Contains(stderr, "accepts 4 arg(s)") {
				t.Errorf("stderr should name the expected count, got %q", stderr)
			}
			if !strings.Contains(stdout+stderr, "Usage:") {
				t.Errorf("output should contain usage, got %q", stdout+stderr)
			}
		})
	}
}

func TestRoot_InvalidColorBeforeIO(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")

	tests := []struct {
		name     string
		from, to string
	}{
		{"bad source", "ZZ0000", "00FF00"},
		{"bad target", "FF0000", "FF00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCmd(t, "does-not-exist", out, tt.from, tt.to)
			if !errors.Is(err, imaging.ErrInvalidColor) {
				t.Fatalf("got %v, want ErrInvalidColor", err)
			}
			if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
				t.Errorf("output folder should not exist after a color error, stat: %v", statErr)
			}
		})
	}
}

func TestRoot_MissingInputFolder(t *testing.T) {
	_, _, err := runCmd(t, filepath.Join(t.TempDir(), "missing"), t.TempDir(), "FF0000", "00FF00")
	if !errors.Is(err, batch.ErrDirectoryAccess) {
		t.Errorf("got %v, want ErrDirectoryAccess", err)
	}
}

func TestRoot_Run(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeSample(t, filepath.Join(in, "a.png"))

	stdout, _, err := runCmd(t, in, out, "#FF0000", "00ff00")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if stdout != "Processed a.png\n" {
		t.Errorf("stdout: got %q", stdout)
	}

	img, err := imaging.Load(filepath.Join(out, "a.png"))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if c := img.NRGBAAt(0, 0); c != (color.NRGBA{0, 255, 0, 128}) {
		t.Errorf("pixel 0: got %v", c)
	}
	if c := img.NRGBAAt(1, 0); c != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("pixel 1: got %v", c)
	}
}

func TestRoot_Version(t *testing.T) {
	stdout, _, err := runCmd(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(stdout, "recolor 1.2.3") || !strings.Contains(stdout, "abc") {
		t.Errorf("version output: got %q", stdout)
	}
}
