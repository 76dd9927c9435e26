package rendering

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/compositor"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`a\b`, `a\textbackslash{}b`},
		{"text{with}braces", `text\{with\}braces`},
		{"cost $100", `cost \$100`},
		{"A & B", `A \& B`},
		{"100% complete", `100\% complete`},
		{"issue #123", `issue \#123`},
		{"x^2", `x\textasciicircum{}2`},
		{"variable_name", `variable\_name`},
		{"~approx", `\textasciitilde{}approx`},
		{"résumé α β", "résumé α β"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLaTeX(tt.in))
		})
	}
}

func TestRenderLaTeX(t *testing.T) {
	resume := types.DefaultDocument()
	resume.PersonalInfo.Name = "John & Jane"
	resume.Experience[0].Bullets = []types.Bullet{
		{ID: "b1", Text: "Cut costs 30%", Checked: true},
		{ID: "b2", Text: "Hidden", Checked: false},
	}
	tree := compositor.Render(resume, nil, types.DefaultTheme(), "modern")

	out, err := RenderLaTeX(tree)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `\documentclass`))
	assert.Contains(t, out, `\textbf{John \& Jane}`)
	assert.Contains(t, out, `\section*{Work Experience}`)
	assert.Contains(t, out, `\item Cut costs 30\%`)
	assert.NotContains(t, out, "Hidden")
	assert.Contains(t, out, `\end{document}`)

	// sections keep tree order
	skills := strings.Index(out, `\section*{Skills}`)
	projects := strings.Index(out, `\section*{Projects}`)
	assert.Greater(t, projects, skills)
}

func TestRenderLaTeX_NilTree(t *testing.T) {
	_, err := RenderLaTeX(nil)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "latex", renderErr.Format)
	assert.EqualError(t, err, "cannot render latex: nil section tree")
}
