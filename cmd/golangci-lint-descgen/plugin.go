// golangcilintdescgen package provides a plugin for golangci-lint to integrate
// the Descgen analyzer. To build a custom golangci-lint binary with this
// plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Format templates are allowed when the plugin is configured with
// "format: true" in its settings.
package golangcilintdescgen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/descgen/pkg/descgenanalysis"
)

func init() {
	register.Plugin("descgen", New)
}

// Settings is the plugin configuration in .golangci.yml.
type Settings struct {
	Format bool `json:"format"`
}

func New(settings any) (register.LinterPlugin, error) {
	s, err := register.DecodeSettings[Settings](settings)
	if err != nil {
		return nil, err
	}
	return DescgenLinter{settings: s}, nil
}

type DescgenLinter struct{ settings Settings }

func (l DescgenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{descgenanalysis.New(l.settings.Format)}, nil
}

func (DescgenLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
