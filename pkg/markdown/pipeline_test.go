package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_StageOrder(t *testing.T) {
	p := NewPipeline()
	names := make([]string, 0, len(p.Stages))
	for _, s := range p.Stages {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"code-fence", "inline-code", "bold", "headers", "labelled-item",
		"bullet-item", "numbered-item", "paragraphs", "line-breaks",
	}, names)
}

func TestPipeline_Stages(t *testing.T) {
	tbl := []struct {
		stage string
		in    string
		want  string
	}{
		{"code-fence", "```js\nfoo()\n```", "<pre><code>foo()</code></pre>"},
		{"code-fence", "```\nplain\n```", "<pre><code>plain</code></pre>"},
		{"code-fence", "text with ``` inside", "text with ``` inside"},
		{"inline-code", "use `x := 1` here", "use <code>x := 1</code> here"},
		{"bold", "a **b** c **d**", "a <strong>b</strong> c <strong>d</strong>"},
		{"headers", "### Sub", "<h3>Sub</h3>"},
		{"headers", "## Two", "<h2>Two</h2>"},
		{"headers", "# One", "<h1>One</h1>"},
		{"headers", "#nospace", "#nospace"},
		{"labelled-item", "- <strong>Note:</strong> see this", "<li><strong>Note</strong> see this</li>"},
		{"labelled-item", "- <strong>Label</strong> rest", "<li><strong>Label</strong> rest</li>"},
		{"labelled-item", "- **Note:** raw", "- **Note:** raw"},
		{"bullet-item", "- one\n- two", "<li>one</li>\n<li>two</li>"},
		{"numbered-item", "1. first\n12. second", "<li>first</li>\n<li>second</li>"},
		{"paragraphs", "a\n\nb", "a</p><p>b"},
		{"line-breaks", "a\nb", "a<br>b"},
	}

	p := NewPipeline()
	for _, tt := range tbl {
		t.Run(tt.stage+"/"+tt.in, func(t *testing.T) {
			stage, ok := p.Stage(tt.stage)
			require.True(t, ok)
			assert.Equal(t, tt.want, stage.Apply(tt.in))
		})
	}
}

func TestPipeline_Render(t *testing.T) {
	tbl := []struct {
		name string
		in   string
		want string
	}{
		{"heading and paragraph", "# Hi\n\nWorld", "<h1>Hi</h1></p><p>World"},
		{"header precedence", "### Sub", "<h3>Sub</h3>"},
		{"fenced code drops language", "```js\nfoo()\n```", "<pre><code>foo()</code></pre>"},
		{
			name: "bold label composes with bold text",
			in:   "- **Note:** see **also** this",
			want: "<li><strong>Note</strong> see <strong>also</strong> this</li>",
		},
		{"bullets are not wrapped", "- one\n- two", "<li>one</li><br><li>two</li>"},
		{"numbers are dropped", "1. first\n2. second", "<li>first</li><br><li>second</li>"},
		{"inline code and bold", "run `terraform plan` **first**", "run <code>terraform plan</code> <strong>first</strong>"},
		{"empty", "", ""},
	}

	p := NewPipeline()
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Render(tt.in))
		})
	}
}

func TestPipeline_RenderIsIdempotent(t *testing.T) {
	body := "## Why NAT costs\n\n- **Tip:** use **VPC endpoints**\n1. check `bytes`\n\nDone"
	p := NewPipeline()
	assert.Equal(t, p.Render(body), p.Render(body))
	assert.Equal(t, p.Render(body), NewPipeline().Render(body))
}

func TestGoldmark_Render(t *testing.T) {
	html := NewGoldmark().Render("# Hi\n\nWorld with **bold**")
	assert.Contains(t, html, `<h1 id="hi">Hi</h1>`)
	assert.Contains(t, html, "<p>World with <strong>bold</strong></p>")
}

func TestDocument(t *testing.T) {
	assert.Equal(t, "<p><h1>Hi</h1></p><p>World</p>", Document(NewPipeline(), "# Hi\n\nWorld"))

	html := Document(NewGoldmark(), "# Hi\n\nWorld")
	assert.True(t, strings.HasPrefix(html, `<h1 id="hi">`), html)
	assert.Equal(t, NewGoldmark().Render("# Hi\n\nWorld"), html)
}

func TestNew(t *testing.T) {
	assert.IsType(t, &Goldmark{}, New("goldmark"))
	assert.IsType(t, &Goldmark{}, New(" GoldMark "))
	assert.IsType(t, &Pipeline{}, New("pipeline"))
	assert.IsType(t, &Pipeline{}, New(""))
}
