package catalog

import _ "embed"

// Embed the default menu into the binary so the kiosk comes up with a
// working catalog regardless of the current working directory.
//
//go:embed menu.yaml
var defaultMenu []byte
