// Package markdown turns article bodies into HTML fragments.
package markdown

import "regexp"

// Renderer converts a markdown body into an HTML fragment.
type Renderer interface {
	Render(body string) string
}

// Document renders body as standalone block HTML. Renderers whose fragments
// need a wrapper provide RenderDocument; the rest already emit blocks.
func Document(r Renderer, body string) string {
	if d, ok := r.(interface{ RenderDocument(string) string }); ok {
		return d.RenderDocument(body)
	}
	return r.Render(body)
}

// Stage is a single named rewrite of the text.
type Stage struct {
	Name  string
	Apply func(string) string
}

// Pipeline applies its stages in order, each on the output of the previous
// one. The order matters: labelled list items match the output of the bold
// stage, and headers must go from ### down to #.
type Pipeline struct {
	Stages []Stage
}

// NewPipeline returns the site's markdown pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{Stages: []Stage{
		replace("code-fence", "(?ms)^```\\w*\\n(.*?)\\n?```", "<pre><code>${1}</code></pre>"),
		replace("inline-code", "`([^`]+)`", "<code>${1}</code>"),
		replace("bold", `\*\*(.*?)\*\*`, "<strong>${1}</strong>"),
		chain("headers",
			replace("h3", `(?m)^### (.*)$`, "<h3>${1}</h3>"),
			replace("h2", `(?m)^## (.*)$`, "<h2>${1}</h2>"),
			replace("h1", `(?m)^# (.*)$`, "<h1>${1}</h1>"),
		),
		replace("labelled-item", `(?m)^- <strong>(.*?):?</strong>(.*)$`, "<li><strong>${1}</strong>${2}</li>"),
		replace("bullet-item", `(?m)^- (.*)$`, "<li>${1}</li>"),
		replace("numbered-item", `(?m)^\d+\. (.*)$`, "<li>${1}</li>"),
		replace("paragraphs", `\n\n`, "</p><p>"),
		replace("line-breaks", `\n`, "<br>"),
	}}
}

// Render implements Renderer.
func (p *Pipeline) Render(body string) string {
	for _, s := range p.Stages {
		body = s.Apply(body)
	}
	return body
}

// RenderDocument wraps Render's output in a paragraph so the "</p><p>"
// joins emitted by the paragraphs stage are balanced.
func (p *Pipeline) RenderDocument(body string) string {
	return "<p>" + p.Render(body) + "</p>"
}

// Stage returns the stage with the given name.
func (p *Pipeline) Stage(name string) (Stage, bool) {
	for _, s := range p.Stages {
		if s.Name == name {
			return s, true
		}
	}
	return Stage{}, false
}

func replace(name, pattern, repl string) Stage {
	re := regexp.MustCompile(pattern)
	return Stage{Name: name, Apply: func(s string) string { return re.ReplaceAllString(s, repl) }}
}

func chain(name string, stages ...Stage) Stage {
	return Stage{Name: name, Apply: func(s string) string {
		for _, st := range stages {
			s = st.Apply(s)
		}
		return s
	}}
}
