package cmd

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestPaths(t *testing.T) {
	defer viper.Reset()

	for _, tc := range []struct {
		name            string
		input, output   string
		args            []string
		wantIn, wantOut string
	}{
		{"nothing", "", "", nil, "", ""},
		{"config only", "a.png", "b.png", nil, "a.png", "b.png"},
		{"config input", "a.png", "", nil, "a.png", "a-processed.png"},
		{"input arg", "a.png", "b.png", []string{"c.jpg"}, "c.jpg", "c-processed.png"},
		{"both args", "a.png", "b.png", []string{"c.jpg", "d.png"}, "c.jpg", "d.png"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			viper.Set("input", tc.input)
			viper.Set("output", tc.output)
			in, out := paths(tc.args)
			if in != tc.wantIn || out != tc.wantOut {
				t.Errorf("paths(%v) = (%q, %q), want (%q, %q)", tc.args, in, out, tc.wantIn, tc.wantOut)
			}
		})
	}
}

func TestProcessCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "logo.png")
	f, err := os.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewGray(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if err := process(in, filepath.Join(dir, "out.png")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.png")); err != nil {
		t.Error(err)
	}

	if err := process(filepath.Join(dir, "missing.png"), filepath.Join(dir, "x.png")); err == nil {
		t.Error("expected an error for a missing input")
	}
}
