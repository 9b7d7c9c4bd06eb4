package isaac

import "errors"

// ErrSeedLength is returned when a seed does not contain exactly SeedSize words.
var ErrSeedLength = errors.New("isaac: seed must contain exactly 256 words")
