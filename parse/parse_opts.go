package parse

type parseOpts struct {
	owned bool
}

type ParseOption func(*parseOpts)

// ParseOwned makes the parser return a tree whose token text is
// independent of the input buffer, so the tree may outlive it.
func ParseOwned(v bool) ParseOption {
	return func(o *parseOpts) {
		o.owned = v
	}
}
