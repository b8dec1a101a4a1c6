package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConvertAndValidate(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"diagram.yaml", "diagram.toml", "diagram.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if _, err := run(t, "convert", path); err != nil {
				t.Fatalf("convert: %v", err)
			}

			out, err := run(t, "validate", path)
			if err != nil {
				t.Fatalf("validate: %v\n%s", err, out)
			}
			if !strings.Contains(out, "✓") {
				t.Errorf("expected success mark, got %q", out)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	broken := `{"points":[{"id":"a","from":"b"}],"draw":["a"]}`
	if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := run(t, "validate", path)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(out, "unknown reference") {
		t.Errorf("expected the reason in the output, got %q", out)
	}
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if out, err := run(t, "render", "-o", path, "--width", "64", "--height", "48"); err != nil {
		t.Fatalf("render: %v\n%s", err, out)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("expected 64x48, got %v", b)
	}

	if _, err := run(t, "render", "-o", path, "--ticks", "0"); err == nil {
		t.Error("expected an error for zero ticks")
	}
}

func TestCoords(t *testing.T) {
	out, err := run(t, "coords")
	if err != nil {
		t.Fatalf("coords: %v", err)
	}
	for _, want := range []string{"perspective", "leftHorizonVanishingPoint", "1420"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
