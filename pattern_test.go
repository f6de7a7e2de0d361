package hatch

import (
	"strings"
	"testing"
)

func TestLoadHatchPatternSkipsCommentsAndHeaders(t *testing.T) {
	src := `
* ANSI31 hatch pattern
; this is a comment
45, 0,0, 0,1, 0.125,-0.0625

90 0 0 0 1
`
	pattern, err := LoadHatchPattern(strings.NewReader(src), 1)
	if err != nil {
		t.Fatalf("LoadHatchPattern: %v", err)
	}
	if got, want := len(pattern), 2; got != want {
		t.Fatalf("len(pattern) = %d, want %d", got, want)
	}
}

func TestLoadHatchPatternStripsInlineComment(t *testing.T) {
	src := "45 0 0 0 1 1 -1 ; dashed diagonal\n"
	pattern, err := LoadHatchPattern(strings.NewReader(src), 1)
	if err != nil {
		t.Fatalf("LoadHatchPattern: %v", err)
	}
	if got, want := len(pattern), 1; got != want {
		t.Fatalf("len(pattern) = %d, want %d", got, want)
	}
}

func TestLoadHatchPatternLineNumberInError(t *testing.T) {
	src := "45 0 0 0 1 1 -1\nnot enough\n"
	_, err := LoadHatchPattern(strings.NewReader(src), 1)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err = %v, want mention of line 2", err)
	}
}

func TestLoadHatchPatternEmpty(t *testing.T) {
	pattern, err := LoadHatchPattern(strings.NewReader(""), 1)
	if err != nil {
		t.Fatalf("LoadHatchPattern: %v", err)
	}
	if len(pattern) != 0 {
		t.Errorf("len(pattern) = %d, want 0", len(pattern))
	}
}
