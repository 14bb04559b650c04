package abi

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/xyproto/agort/ago"
	"github.com/xyproto/agort/internal/engine"
)

// ManifestFile is the YAML form of the symbol table, for code generators
// that would rather read data than parse C
type ManifestFile struct {
	Library  string           `yaml:"library"`
	Platform string           `yaml:"platform"`
	Booleans ManifestBooleans `yaml:"booleans"`
	Symbols  []ManifestSymbol `yaml:"symbols"`
}

// ManifestBooleans records the boolean vocabulary of the print functions
type ManifestBooleans struct {
	True  string `yaml:"true_token"`
	False string `yaml:"false_token"`
}

type ManifestSymbol struct {
	Name      string          `yaml:"name"`
	Section   string          `yaml:"section"`
	Signature string          `yaml:"signature"`
	Params    []ManifestParam `yaml:"params,omitempty"`
	Result    string          `yaml:"result"`
	Ownership string          `yaml:"ownership,omitempty"`
	Doc       string          `yaml:"doc,omitempty"`
}

type ManifestParam struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`
	Ownership string `yaml:"ownership,omitempty"`
}

// NewManifest builds the manifest of the table for platform p
func NewManifest(p engine.Platform) ManifestFile {
	m := ManifestFile{
		Library:  p.SharedLibraryName(LibraryName),
		Platform: p.String(),
		Booleans: ManifestBooleans{True: ago.TrueToken, False: ago.FalseToken},
	}
	for _, s := range symbols {
		ms := ManifestSymbol{
			Name:      s.Name,
			Section:   s.Section,
			Signature: s.Signature(),
			Result:    s.Result.String(),
			Doc:       s.Doc,
		}
		if s.Result == String || s.Result.isHandle() {
			ms.Ownership = s.ResultOwnership.String()
		}
		for _, param := range s.Params {
			mp := ManifestParam{Name: param.Name, Kind: param.Kind.String()}
			if param.Kind == String || param.Kind.isHandle() || param.Kind == Any {
				mp.Ownership = param.Ownership.String()
			}
			ms.Params = append(ms.Params, mp)
		}
		m.Symbols = append(m.Symbols, ms)
	}
	return m
}

// Manifest renders the manifest for platform p as YAML
func Manifest(p engine.Platform) ([]byte, error) {
	data, err := yaml.Marshal(NewManifest(p))
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
