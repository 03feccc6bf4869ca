package encode

// Format selects an output form for a node.
type Format int

const (
	// SourceFormat is the exact source text form.
	SourceFormat Format = iota
	JSONFormat
	YAMLFormat
)

// FormatSuffix returns the file extension for the given format.
func FormatSuffix(f Format) string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ".sol"
	}
}

type EncodeOption func(*EncState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeTrivia controls whether whitespace and comment trivia is
// written. It defaults to true; disabling it renders tokens joined by
// single spaces.
func EncodeTrivia(v bool) EncodeOption {
	return func(es *EncState) { es.noTrivia = !v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
