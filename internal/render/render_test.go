package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	p := New()

	html := p.Render("**bold** and _italic_")
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.Contains(t, html, "<em>italic</em>")
}

func TestRenderStripsScripts(t *testing.T) {
	p := New()

	html := p.Render(`hello <script>alert("xss")</script> world`)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "hello")
}

func TestRenderStrikethrough(t *testing.T) {
	p := New()

	html := p.Render("~~gone~~")
	assert.Contains(t, html, "<del>gone</del>")
}
