package domain

// Profile is the singleton settings record: one inline-encoded image,
// overwritten in place and never deleted.
type Profile struct {
	Image string `json:"image,omitempty"`
}
