// SPDX-License-Identifier: MPL-2.0

package settings

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/modgraph/modgraph/internal/cueutil"
)

//go:embed settings_schema.cue
var settingsSchema []byte

func parseCUE(data []byte, filename string) (*Settings, error) {
	res, err := cueutil.Decode[Settings](settingsSchema, data, "#Settings", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// GenerateCUE renders s as a modgraph.cue document.
func GenerateCUE(s *Settings) string {
	var sb strings.Builder

	sb.WriteString("// Project settings for modgraph.\n\n")
	fmt.Fprintf(&sb, "root: %q\n", s.Root)
	if s.Group != "" {
		fmt.Fprintf(&sb, "group: %q\n", s.Group)
	}
	if s.Version != "" {
		fmt.Fprintf(&sb, "version: %q\n", s.Version)
	}

	writeModules(&sb, "modules", s.Modules)
	writeModules(&sb, "examples", s.Examples)

	if p := s.Publishing; p != nil {
		sb.WriteString("\npublishing: {\n")
		sb.WriteString("\trepository: {")
		if p.Repository.Name != "" {
			fmt.Fprintf(&sb, "name: %q, ", p.Repository.Name)
		}
		fmt.Fprintf(&sb, "url: %q}\n", p.Repository.URL)
		if p.Sources != nil {
			fmt.Fprintf(&sb, "\tsources: %v\n", *p.Sources)
		}
		if p.Javadoc != nil {
			fmt.Fprintf(&sb, "\tjavadoc: %v\n", *p.Javadoc)
		}
		sb.WriteString("}\n")
	}

	return sb.String()
}

func writeModules(sb *strings.Builder, field string, mods []Module) {
	if len(mods) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s: [\n", field)
	for _, m := range mods {
		fmt.Fprintf(sb, "\t{key: %q", m.Key)
		if m.Path != "" {
			fmt.Fprintf(sb, ", path: %q", m.Path)
		}
		if m.Name != "" {
			fmt.Fprintf(sb, ", name: %q", m.Name)
		}
		sb.WriteString("},\n")
	}
	sb.WriteString("]\n")
}
