// Package appfs embeds the files shipped inside the binaries: SQL migrations (one set per
// dialect), page templates and page scripts.
package appfs

import "embed"

//go:embed migrations templates static
var FS embed.FS
