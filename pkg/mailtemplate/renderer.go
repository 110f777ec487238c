package mailtemplate

import (
	"net/url"
	"regexp"
	"strings"
)

// Context is the per-recipient substitution context for one rendered
// message.
type Context struct {
	Name        string
	WebsiteURL  string
	CoupleNames string
}

// Rule rewrites every match of Pattern with the value produced by
// Replace. Rules run in order after token substitution, which is what
// lets the URL-form legacy rules fire before their bare-host variants.
type Rule struct {
	Pattern *regexp.Regexp
	Replace func(ctx Context) string
}

// Renderer applies token substitution and an ordered rewrite-rule list
// to an operator-supplied message template. Rendering is pure: the same
// template and context always produce the same output, and malformed
// templates never error.
type Renderer struct {
	rules []Rule
}

func NewRenderer(rules []Rule) *Renderer {
	return &Renderer{rules: rules}
}

// websiteURLFallback replaces {website_url} when no URL is configured.
// The raw token must never reach a recipient.
const websiteURLFallback = "our wedding website"

// Render substitutes {name} and {website_url}, then applies the rewrite
// rules in order. Unknown tokens pass through verbatim.
func (r *Renderer) Render(template string, ctx Context) string {
	out := strings.ReplaceAll(template, "{name}", ctx.Name)

	site := ctx.WebsiteURL
	if site == "" {
		site = websiteURLFallback
	}
	out = strings.ReplaceAll(out, "{website_url}", site)

	for _, rule := range r.rules {
		out = rule.Pattern.ReplaceAllLiteralString(out, rule.Replace(ctx))
	}
	return out
}

// legacyHosts are hostnames the site lived on before the custom domain.
// Old templates and drafts still reference them. Longest first: the
// preview host contains the plain host as a substring and must be
// rewritten before the shorter rule can touch it.
var legacyHosts = []string{
	"id-preview--liam-mia-wedding.lovable.app",
	"liam-mia-wedding.lovable.app",
}

// legacyCouplePattern matches the default couple-name phrasing and its
// joined variants ("Liam & Mia", "Liam and Mia", "Liam + Mia"), case
// insensitively.
var legacyCouplePattern = regexp.MustCompile(`(?i)\bliam\s*(?:&|and|\+)\s*mia\b`)

// DefaultRules is the stock legacy-cleanup rule set: couple-name
// phrasings become the configured couple names, and historical hostnames
// become the current site, as a full URL when the legacy reference was a
// URL and as a bare host otherwise.
func DefaultRules() []Rule {
	rules := []Rule{
		{
			Pattern: legacyCouplePattern,
			Replace: func(ctx Context) string {
				if ctx.CoupleNames != "" {
					return ctx.CoupleNames
				}
				return "Liam & Mia"
			},
		},
	}
	// URL forms first so the bare-host rules never see a scheme prefix.
	for _, host := range legacyHosts {
		quoted := regexp.QuoteMeta(host)
		rules = append(rules, Rule{
			Pattern: regexp.MustCompile(`(?i)https?://` + quoted),
			Replace: func(ctx Context) string {
				if ctx.WebsiteURL != "" {
					return ctx.WebsiteURL
				}
				return websiteURLFallback
			},
		})
	}
	for _, host := range legacyHosts {
		quoted := regexp.QuoteMeta(host)
		rules = append(rules, Rule{
			Pattern: regexp.MustCompile(`(?i)` + quoted),
			Replace: func(ctx Context) string {
				if h := hostOf(ctx.WebsiteURL); h != "" {
					return h
				}
				return websiteURLFallback
			},
		})
	}
	return rules
}

func hostOf(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err == nil && u.Host != "" {
		return u.Host
	}
	// Already a bare host.
	return rawURL
}

// ToHTML converts the rendered plain-text body to the transport's HTML
// markup. Applied exactly once, after all substitutions; this is a
// transport-formatting step, not a templating one.
func ToHTML(body string) string {
	out := strings.ReplaceAll(body, "\r\n", "\n")
	return strings.ReplaceAll(out, "\n", "<br>")
}
