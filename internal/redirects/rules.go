package redirects

import "net/http"

// Rule is one redirect mapping. Source is an exact-match path; Destination is
// either an absolute external URL or a site-relative path.
type Rule struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Status      int    `json:"status,omitempty"`
}

// StatusOrDefault returns the rule's status code, defaulting to 301 when the
// authored entry omits it.
func (r Rule) StatusOrDefault() int {
	if r.Status == 0 {
		return http.StatusMovedPermanently
	}
	return r.Status
}

// Match returns the first rule whose source equals path exactly. Matching is
// first-match-by-equality in array order; there is no pattern or trailing
// slash handling.
func Match(rules []Rule, path string) (Rule, bool) {
	for _, rule := range rules {
		if rule.Source == path {
			return rule, true
		}
	}
	return Rule{}, false
}
