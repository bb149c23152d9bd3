package assets

import "embed"

//go:embed "migrations" "roster.yaml"
var EmbeddedFiles embed.FS

const DefaultRosterFile = "roster.yaml"
