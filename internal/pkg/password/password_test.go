package password

import (
	"strings"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	p, err := Generate(12)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(p) != 12 {
		t.Errorf("len = %d, want 12", len(p))
	}
}

func TestGenerateDefaultLength(t *testing.T) {
	p, err := Generate(0)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(p) != GeneratedLength {
		t.Errorf("len = %d, want %d", len(p), GeneratedLength)
	}
}

func TestGenerateCharset(t *testing.T) {
	p, err := Generate(64)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	for _, c := range p {
		if !strings.ContainsRune(charset, c) {
			t.Errorf("character %q outside charset", c)
		}
	}
}

func TestGenerateNotConstant(t *testing.T) {
	a, _ := Generate(16)
	b, _ := Generate(16)
	if a == b {
		t.Error("two generated passwords are identical")
	}
}
