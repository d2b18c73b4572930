package main

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

	"github.com/PassTheMayo/asciify/internal/asciify"
)

func writeBlackPNG(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{0, 0, 0, 255})
		}
	}

	path := filepath.Join(t.TempDir(), "black.png")
	buf := &bytes.Buffer{}

	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRun(t *testing.T) {
	path := writeBlackPNG(t, 6, 4)

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"default", Options{Charset: "bourke", Resize: "3x2"}, "$$$\n$$$\n"},
		{"normalized", Options{Charset: "bourke", Resize: "3x2", Normalize: true}, "$$$\n$$$\n"},
		{"inverted", Options{Charset: "bourke", Resize: "3x2", Invert: true}, "   \n   \n"},
		{"custom gradient", Options{Charset: "bourke", Gradient: "#.", Resize: "2x1"}, "##\n"},
		{"scaled", Options{Charset: "simple", Scale: 0.5}, "@@@\n@@@\n"},
		{"workers", Options{Charset: "bourke", Resize: "3x2", Workers: 8}, "$$$\n$$$\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			opts := tt.opts

			if err := run(&opts, []string{path}, strings.NewReader(""), out); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRunOutputFile(t *testing.T) {
	path := writeBlackPNG(t, 2, 2)
	outFile := filepath.Join(t.TempDir(), "art.txt")
	log := &bytes.Buffer{}

	stderr = log
	defer func() { stderr = os.Stderr }()

	opts := &Options{Charset: "bourke", Output: outFile, Verbose: true}
	stdout := &bytes.Buffer{}

	if err := run(opts, []string{path}, strings.NewReader(""), stdout); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(outFile)

	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "$$\n$$\n" {
		t.Errorf("file contents = %q", string(data))
	}

	if stdout.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", stdout.String())
	}

	if !strings.Contains(log.String(), "VERBOSE: Successfully wrote output") {
		t.Errorf("missing verbose output: %q", log.String())
	}
}

func TestRunErrors(t *testing.T) {
	path := writeBlackPNG(t, 2, 2)

	tests := []struct {
		name string
		opts Options
		args []string
	}{
		{"unknown charset", Options{Charset: "nope"}, []string{path}},
		{"short gradient", Options{Charset: "bourke", Gradient: "#"}, []string{path}},
		{"missing file", Options{Charset: "bourke"}, []string{filepath.Join(t.TempDir(), "missing.png")}},
		{"bad resize", Options{Charset: "bourke", Resize: "10"}, []string{path}},
		{"no input", Options{Charset: "bourke"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts

			if err := run(&opts, tt.args, strings.NewReader(""), &bytes.Buffer{}); err == nil {
				t.Error("expected error")
			}
		})
	}

	opts := &Options{Charset: "bourke", Gradient: "#"}

	if err := run(opts, []string{path}, nil, &bytes.Buffer{}); !errors.Is(err, asciify.ErrEmptyGradient) {
		t.Errorf("expected ErrEmptyGradient, got %v", err)
	}
}

func TestRunPrompt(t *testing.T) {
	path := writeBlackPNG(t, 4, 4)
	stdin := strings.NewReader("3\n2\ntrue\n" + path + "\n")
	out := &bytes.Buffer{}
	opts := &Options{Charset: "bourke"}

	if err := run(opts, nil, stdin, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !opts.Normalize || opts.Resize != "3x2" {
		t.Errorf("prompt answers not applied: %+v", opts)
	}

	if !strings.HasSuffix(out.String(), "\n$$$\n$$$\n") {
		t.Errorf("output = %q", out.String())
	}
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    promptAnswers
		wantErr bool
	}{
		{"valid", "80\n40\nfalse\nimg.png\n", promptAnswers{80, 40, false, "img.png"}, false},
		{"trims spaces", " 8 \n 4\nTRUE\n a.jpg \n", promptAnswers{8, 4, true, "a.jpg"}, false},
		{"missing lines", "80\n40\n", promptAnswers{}, true},
		{"bad width", "x\n40\nfalse\nimg.png\n", promptAnswers{}, true},
		{"zero height", "80\n0\nfalse\nimg.png\n", promptAnswers{}, true},
		{"bad bool", "80\n40\nmaybe\nimg.png\n", promptAnswers{}, true},
		{"empty path", "80\n40\ntrue\n\n", promptAnswers{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			got, err := prompt(strings.NewReader(tt.input), out)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %+v", got)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if *got != tt.want {
				t.Errorf("prompt = %+v, want %+v", *got, tt.want)
			}

			if !strings.Contains(out.String(), "ASCII Width: ") {
				t.Errorf("missing guide text in %q", out.String())
			}
		})
	}
}
