package template

import (
	_ "embed"
)

//go:embed browse/page.html
var BrowsePage []byte
