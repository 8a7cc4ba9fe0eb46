package catalog

import _ "embed"

//go:embed default.yaml
var defaultYAML []byte

// Default returns the embedded default catalog, parsed fresh each call
// (callers may freely mutate the result — see spec §1, catalogs are
// external collaborators the pipeline only reads).
func Default() (*Catalog, error) {
	return Load(defaultYAML)
}
