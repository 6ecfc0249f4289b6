package web

import "embed"

// Static holds the browser map client served at /.
//
//go:embed static
var Static embed.FS
