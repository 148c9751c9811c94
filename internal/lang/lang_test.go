package lang

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"src/app.ts", "typescript"},
		{"component.TSX", "tsx"},
		{"script.py", "python"},
		{"notes/readme.md", "markdown"},
		{"config.yaml", "yaml"},
		{"config.yml", "yaml"},
		{"Makefile", "makefile"},
		{"Dockerfile", "docker"},
		{"go.mod", "go.mod"},
		{"plain.txt", ""},
		{"no-extension", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Detect(tt.path); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestDetectChromaFallback(t *testing.T) {
	// Not in the local tables; chroma's registry should still know it.
	if got := Detect("module.f90"); got == "" {
		t.Error("expected chroma fallback to identify Fortran source")
	}
}
