package validate_test

import (
	"testing"

	"github.com/anushka369/Marketing-Mavericks-Agent/internal/service/validate"
)

func TestOutputPassesNormalContent(t *testing.T) {
	got, ok := validate.Output("Here is your blog post.")
	if !ok || got != "Here is your blog post." {
		t.Fatalf("unexpected result: %q ok=%v", got, ok)
	}
}

func TestOutputTrimsWhitespace(t *testing.T) {
	got, ok := validate.Output("  content \n")
	if !ok || got != "content" {
		t.Fatalf("unexpected result: %q ok=%v", got, ok)
	}
}

func TestOutputRejectsEmpty(t *testing.T) {
	if _, ok := validate.Output("   \n\t"); ok {
		t.Fatal("whitespace-only content must be rejected")
	}
	if _, ok := validate.Output("..."); ok {
		t.Fatal("punctuation-only content must be rejected")
	}
}

func TestOutputStripsLeakedMarkers(t *testing.T) {
	got, ok := validate.Output("<|im_end|>\nGreat headline ideas below.")
	if !ok {
		t.Fatal("content with markers stripped should still pass")
	}
	if got != "Great headline ideas below." {
		t.Fatalf("marker not stripped: %q", got)
	}
}

func TestOutputStripsDanglingFence(t *testing.T) {
	got, ok := validate.Output("Subject line options:\n1. Buy now\n```")
	if !ok {
		t.Fatalf("expected pass, got rejection")
	}
	if got != "Subject line options:\n1. Buy now" {
		t.Fatalf("dangling fence kept: %q", got)
	}
}
