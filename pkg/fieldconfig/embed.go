package fieldconfig

import (
	"embed"
	"io/fs"
)

//go:embed defaults/*
var embeddedDefaults embed.FS

// EmbeddedFS returns the bundled field definitions. Callers may pass this
// filesystem to LoadFS when no configuration directory is given.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDefaults, "defaults")
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	return sub
}
