package catalog

import (
	_ "embed"
	"sync"
)

//go:embed data/plugins.json
var pluginsJSON []byte

//go:embed data/built-ins.json
var builtInsJSON []byte

// Plugins returns the bundled transformation catalog.
var Plugins = sync.OnceValue(func() *Catalog {
	return mustParseJSON("data/plugins.json", pluginsJSON)
})

// BuiltIns returns the bundled polyfill catalog.
var BuiltIns = sync.OnceValue(func() *Catalog {
	return mustParseJSON("data/built-ins.json", builtInsJSON)
})

func mustParseJSON(name string, data []byte) *Catalog {
	c, err := ParseJSON(data)
	if err != nil {
		panic("catalog: bundled " + name + ": " + err.Error())
	}
	return c
}
