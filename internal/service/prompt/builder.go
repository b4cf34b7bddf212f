// Package prompt builds system prompts for the content generator. Template
// selection is a priority-ordered keyword scan over the user message;
// brand context, when present, is appended as a labeled block.
package prompt

import (
	"strings"

	"github.com/anushka369/Marketing-Mavericks-Agent/internal/model/brand"
)

// Build maps a user message and optional brand context to the system prompt
// handed to the model. It is deterministic and never fails.
func Build(userMessage string, brandCtx *brand.Context) string {
	base := selectTemplate(userMessage)
	if brandCtx == nil || brandCtx.IsZero() {
		return base
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("\n\nBrand context:\n")
	if brandCtx.BrandName != "" {
		b.WriteString("- Brand name: " + brandCtx.BrandName + "\n")
	}
	if brandCtx.BrandVoice != "" {
		b.WriteString("- Brand voice: " + brandCtx.BrandVoice + "\n")
	}
	if brandCtx.TargetAudience != "" {
		b.WriteString("- Target audience: " + brandCtx.TargetAudience + "\n")
	}
	if brandCtx.Industry != "" {
		b.WriteString("- Industry: " + brandCtx.Industry + "\n")
	}
	b.WriteString("Align all generated content with this brand context.")
	return b.String()
}

// TemplateName reports which template family a message selects, for logging.
func TemplateName(userMessage string) string {
	lowered := strings.ToLower(userMessage)
	for _, tpl := range templates {
		if matches(lowered, tpl.keywords) {
			return tpl.name
		}
	}
	return "general"
}

func selectTemplate(userMessage string) string {
	lowered := strings.ToLower(userMessage)
	for _, tpl := range templates {
		if matches(lowered, tpl.keywords) {
			return tpl.body
		}
	}
	return generalTemplate
}

func matches(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
