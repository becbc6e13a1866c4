package dict

import "embed"

// embeddedDicts bundles small but real default word lists so a Dictionary
// can be built without any external configuration, mirroring the
// include_str! embedding original_source relies on for its own defaults.
//
//go:embed embedded/main.dic embedded/quantifier.dic embedded/stopword.dic
var embeddedDicts embed.FS

const (
	embeddedMainPath       = "embedded/main.dic"
	embeddedQuantifierPath = "embedded/quantifier.dic"
	embeddedStopwordPath   = "embedded/stopword.dic"
)
