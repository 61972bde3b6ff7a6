package render

import (
	"html"
	"html/template"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce   sync.Once
	strictPolicy *bluemonday.Policy
	htmlPolicy   *bluemonday.Policy

	blockTags  = regexp.MustCompile(`(?i)</?(li|p|br|ol|ul|div|h[1-6])\b[^>]*>`)
	blankLines = regexp.MustCompile(`\n{2,}`)
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		policy := bluemonday.NewPolicy()
		policy.AllowElements("ol", "ul", "li", "p", "br", "b", "strong", "i", "em", "span")
		htmlPolicy = policy
	})
	return strictPolicy, htmlPolicy
}

// PlainInstructions turns the upstream instructions markup into plain text,
// one paragraph or list item per line.
func PlainInstructions(raw string) string {
	strict, _ := policies()

	text := blockTags.ReplaceAllString(raw, "\n")
	text = html.UnescapeString(strict.Sanitize(text))

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n")
	return strings.TrimSpace(text)
}

// SafeInstructions keeps list and paragraph markup for the form and drops everything else
func SafeInstructions(raw string) template.HTML {
	_, policy := policies()
	return template.HTML(strings.TrimSpace(policy.Sanitize(raw)))
}
