package highlight

import (
	"strings"
	"testing"
)

const sample = "const Navbar = () => {\n  return <nav className=\"flex\" />\n}"

func TestTerminal(t *testing.T) {
	out := Terminal(sample, "dracula")
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escapes in highlighted output, got %q", out)
	}
	if !strings.Contains(out, "Navbar") {
		t.Errorf("highlighted output lost identifiers: %q", out)
	}
}

func TestTerminal_UnknownStyleStillRenders(t *testing.T) {
	out := Terminal(sample, "no-such-style")
	if !strings.Contains(out, "Navbar") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown(sample, 100)
	if err != nil {
		t.Fatalf("Markdown returned error: %v", err)
	}
	if !strings.Contains(out, "Navbar") {
		t.Errorf("rendered block does not contain the code: %q", out)
	}
}
