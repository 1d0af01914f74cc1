package content

import "github.com/goliatone/go-footer/pkg/model"

// Policy decides how markup fields (copyright, icon labels, advanced item
// text) become model.HTML.
type Policy int

const (
	// PolicySanitize runs markup through the bluemonday UGC policy.
	PolicySanitize Policy = iota
	// PolicyTrusted inserts markup verbatim. Only use it for content the
	// storefront team controls.
	PolicyTrusted
)

func (p Policy) String() string {
	switch p {
	case PolicyTrusted:
		return "trusted"
	default:
		return "sanitize"
	}
}

// ParsePolicy maps "trusted" to PolicyTrusted and anything else to
// PolicySanitize.
func ParsePolicy(name string) Policy {
	if name == "trusted" {
		return PolicyTrusted
	}
	return PolicySanitize
}

func (p Policy) apply(raw string) model.HTML {
	if p == PolicyTrusted {
		return model.Trusted(raw)
	}
	return model.Sanitize(raw)
}
