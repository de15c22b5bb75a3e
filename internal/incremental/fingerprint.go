package incremental

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// Fingerprint returns a content hash of v. Struct fields tagged
// `hash:"ignore"` are excluded.
func Fingerprint(v any) (uint64, error) {
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("fingerprint %T: %w", v, err)
	}

	return h, nil
}
