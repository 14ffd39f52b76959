package config

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"

	"github.com/cometbft/cometbft/libs/os"
)

// Directory permissions for the home layout created by init.
const DefaultDirPerm = 0o700

// Keep the template fields in sync with the mapstructure tags in config.go.
//
//go:embed config.toml.tpl
var configTemplateText string

var configTemplate = template.Must(
	template.New("configFile").
		Funcs(template.FuncMap{"StringsJoin": strings.Join}).
		Parse(configTemplateText),
)

// WriteConfigFile renders cfg through the embedded template and writes the
// result to path, panicking on failure.
func WriteConfigFile(path string, cfg *Config) {
	var buf bytes.Buffer
	if err := configTemplate.Execute(&buf, cfg); err != nil {
		panic(err)
	}
	os.MustWriteFile(path, buf.Bytes(), 0o644)
}
