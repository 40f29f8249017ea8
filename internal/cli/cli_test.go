package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/sheetanchor/pkg/config"
	"github.com/matzehuels/sheetanchor/pkg/errors"
)

// execute runs the root command with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var logs, out, errOut bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}

	t.Setenv("XDG_CACHE_HOME", "")
	dir, err = cacheDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestRelationsList(t *testing.T) {
	out, err := execute(t, "relations")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"/xl/worksheets/sheet#.xml", "picture-data", "23 types"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestRelationsLookup(t *testing.T) {
	out, err := execute(t, "relations", "worksheet", "--index", "3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "/xl/worksheets/sheet3.xml") {
		t.Errorf("expanded name missing:\n%s", out)
	}

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown type", []string{"relations", "nonsense"}, errors.ErrCodeNotFound},
		{"fixed name with index", []string{"relations", "officeDocument", "--index", "2"}, errors.ErrCodeInvalidInput},
		{"zero index", []string{"relations", "worksheet", "--index", "0"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestFitJSON(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "logo.png", 200, 50)
	bad := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "fit", good, bad, "--at", "B2", "--json")
	if err != nil {
		t.Fatal(err)
	}

	var results []fitResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	logo := results[0]
	if logo.File != good || logo.Image.Width != 200 {
		t.Errorf("first result = %+v", logo)
	}
	a := logo.Picture.Anchor
	if a.StartCol != 1 || a.StartRow != 1 || a.EndCol != 4 || a.EndRow != 3 {
		t.Errorf("anchor = %s (%+v)", a, a)
	}
	if logo.Picture.Transform.CX != 200*9525 {
		t.Errorf("CX = %d", logo.Picture.Transform.CX)
	}

	broken := results[1].Picture
	if broken.Anchor.EndCol != 1 || broken.Anchor.EndRow != 1 || broken.Transform.CX != 0 {
		t.Errorf("undecodable image = %+v", broken)
	}
}

func TestFitText(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "logo.png", 100, 40)

	out, err := execute(t, "fit", good, "--scale", "2", "--no-cache")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"logo.png", "A1:D4", "scale 2", "Extent"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestFitErrors(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "logo.png", 10, 10)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"fit", filepath.Join(dir, "missing.png")}, errors.ErrCodeIO},
		{"bad cell", []string{"fit", good, "--at", "1A"}, errors.ErrCodeInvalidInput},
		{"bad scale", []string{"fit", good, "--scale", "0"}, errors.ErrCodeInvalidInput},
		{"missing config", []string{"fit", good, "--config", filepath.Join(dir, "none.toml")}, errors.ErrCodeIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestFitWithConfig(t *testing.T) {
	dir := t.TempDir()
	img := writePNG(t, dir, "logo.png", 25, 10)
	geometry := filepath.Join(dir, "geometry.toml")
	toml := "[columns]\ncharacter_width = 1.0\n[columns.widths]\n\"0\" = 10.0\n\"1\" = 10.0\n\"2\" = 10.0\n"
	if err := os.WriteFile(geometry, []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "fit", img, "--config", geometry, "--json")
	if err != nil {
		t.Fatal(err)
	}
	var results []fitResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatal(err)
	}
	if a := results[0].Picture.Anchor; a.EndCol != 2 || a.EndDx != 5*9525 {
		t.Errorf("anchor = %+v", a)
	}
}

func TestGeometryInitAndCheck(t *testing.T) {
	out, err := execute(t, "geometry", "init")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := config.Parse([]byte(out)); err != nil {
		t.Fatalf("init output does not parse: %v\n%s", err, out)
	}

	path := filepath.Join(t.TempDir(), "geometry.toml")
	if _, err := execute(t, "geometry", "init", "-o", path); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "geometry", "check", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "is valid") || !strings.Contains(out, "96 ppi") {
		t.Errorf("check output:\n%s", out)
	}

	if err := os.WriteFile(path, []byte("pixels_per_inch = -3"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "geometry", "check", path); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestCacheCommands(t *testing.T) {
	out, err := execute(t, "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Cache is empty") {
		t.Errorf("clear output:\n%s", out)
	}

	out, err = execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), appName) {
		t.Errorf("path output = %q", out)
	}
}

func TestLookupRelationBySuffix(t *testing.T) {
	out, err := execute(t, "relations", "IMAGE")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "/xl/media/image#.emf") {
		t.Errorf("image lookup:\n%s", out)
	}
}
