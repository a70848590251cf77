// Package gamedata provides embedded game content and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds all content files from this directory at build time.
//
//go:embed *.json *.yaml
var dataFS embed.FS
