// Package views embeds the HTML templates rendered by the controllers.
package views

import "embed"

// FS holds layout.html plus the page templates under posts/ and pages/.
//
//go:embed layout.html posts/*.html pages/*.html
var FS embed.FS
