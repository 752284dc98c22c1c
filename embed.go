package wavelength

import (
	_ "embed"
)

// Embed the built-in spectrum card pack
//
//go:embed static/cards.yaml
var BuiltinCardsYAML []byte
