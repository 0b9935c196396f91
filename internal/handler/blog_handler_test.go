package handler

import (
	"strings"
	"testing"
)

func TestRenderMarkdownProducesHTML(t *testing.T) {
	out := renderMarkdown("# Heading\n\nSome **bold** text.")
	if !strings.Contains(out, "<h1") {
		t.Fatalf("expected heading markup, got %q", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("expected bold markup, got %q", out)
	}
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := renderMarkdown("hello <script>alert('x')</script> world")
	if strings.Contains(out, "<script") {
		t.Fatalf("script tag survived sanitization: %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("content lost during sanitization: %q", out)
	}
}
