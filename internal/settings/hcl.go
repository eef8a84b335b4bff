// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

type (
	// hclSettings mirrors Settings with module and example entries written
	// as labelled blocks:
	//
	//	module "bukkit" {
	//	  path = "minecraft/bukkit"
	//	}
	hclSettings struct {
		Root       string         `hcl:"root"`
		Group      string         `hcl:"group,optional"`
		Version    string         `hcl:"version,optional"`
		Modules    []hclModule    `hcl:"module,block"`
		Examples   []hclModule    `hcl:"example,block"`
		Publishing *hclPublishing `hcl:"publishing,block"`
	}

	hclModule struct {
		Key  string `hcl:"key,label"`
		Path string `hcl:"path,optional"`
		Name string `hcl:"name,optional"`
	}

	hclPublishing struct {
		Repository hclRepository `hcl:"repository,block"`
		Sources    *bool         `hcl:"sources,optional"`
		Javadoc    *bool         `hcl:"javadoc,optional"`
	}

	hclRepository struct {
		Name string `hcl:"name,optional"`
		URL  string `hcl:"url"`
	}
)

func parseHCL(data []byte, filename string) (*Settings, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var raw hclSettings
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, diags
	}

	s := &Settings{
		Root:     raw.Root,
		Group:    raw.Group,
		Version:  raw.Version,
		Modules:  fromHCLModules(raw.Modules),
		Examples: fromHCLModules(raw.Examples),
	}
	if p := raw.Publishing; p != nil {
		s.Publishing = &Publishing{
			Repository: Repository{Name: p.Repository.Name, URL: p.Repository.URL},
			Sources:    p.Sources,
			Javadoc:    p.Javadoc,
		}
	}
	return s, nil
}

func fromHCLModules(blocks []hclModule) []Module {
	if len(blocks) == 0 {
		return nil
	}
	out := make([]Module, len(blocks))
	for i, b := range blocks {
		out[i] = Module(b)
	}
	return out
}
