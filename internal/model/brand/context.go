package brand

// Context carries the optional brand descriptors injected into generation
// prompts. All fields are optional; an empty string means "not provided".
type Context struct {
	BrandName      string `json:"brandName,omitempty"`
	BrandVoice     string `json:"brandVoice,omitempty"`
	TargetAudience string `json:"targetAudience,omitempty"`
	Industry       string `json:"industry,omitempty"`
}

// IsZero reports whether no field is populated. An all-empty context is
// treated as absent everywhere it is consumed.
func (c Context) IsZero() bool {
	return c == Context{}
}

// Merge returns the shallow field-by-field merge of partial over c:
// populated fields in partial win, empty fields keep the existing value.
func (c Context) Merge(partial Context) Context {
	out := c
	if partial.BrandName != "" {
		out.BrandName = partial.BrandName
	}
	if partial.BrandVoice != "" {
		out.BrandVoice = partial.BrandVoice
	}
	if partial.TargetAudience != "" {
		out.TargetAudience = partial.TargetAudience
	}
	if partial.Industry != "" {
		out.Industry = partial.Industry
	}
	return out
}
