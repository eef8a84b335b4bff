// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/modgraph/modgraph/pkg/modgraph"
)

// GraphDocument is the serialized form of a project graph.
type GraphDocument struct {
	Root    modgraph.RootIdentifier `json:"root" yaml:"root"`
	Modules []modgraph.Descriptor   `json:"modules" yaml:"modules"`
}

// NewGraphDocument selects the modules of graph to report. An empty group
// selects every module.
func NewGraphDocument(graph *modgraph.ProjectGraph, group modgraph.Group) GraphDocument {
	doc := GraphDocument{Root: graph.Root()}
	if group == "" {
		doc.Modules = graph.Descriptors()
	} else {
		doc.Modules = graph.InGroup(group)
	}
	if doc.Modules == nil {
		doc.Modules = []modgraph.Descriptor{}
	}
	return doc
}

// Graph writes doc to w in the requested format.
func Graph(w io.Writer, doc GraphDocument, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return graphText(w, doc)
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, doc)
	case FormatMarkdown:
		return writeMarkdown(w, GraphMarkdown(doc), opts)
	default:
		return opts.Format.Validate()
	}
}

func graphText(w io.Writer, doc GraphDocument) error {
	if len(doc.Modules) == 0 {
		_, err := fmt.Fprintln(w, subtleStyle.Render("No modules declared for "+string(doc.Root)+"."))
		return err
	}

	rows := make([][]string, len(doc.Modules))
	for i, d := range doc.Modules {
		rows[i] = []string{string(d.Name), string(d.Path), string(d.Group), string(d.Key)}
	}
	t := newTable([]string{"NAME", "PATH", "GROUP", "KEY"}, rows, 2)

	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(fmt.Sprintf("%s (%d modules)", doc.Root, len(doc.Modules))), t.Render())
	return err
}

// GraphMarkdown returns the Markdown source FormatMarkdown renders.
func GraphMarkdown(doc GraphDocument) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", doc.Root)
	if len(doc.Modules) == 0 {
		sb.WriteString("_No modules declared._\n")
		return sb.String()
	}
	sb.WriteString("| Name | Path | Group | Key |\n")
	sb.WriteString("| --- | --- | --- | --- |\n")
	for _, d := range doc.Modules {
		fmt.Fprintf(&sb, "| `%s` | `%s` | %s | %s |\n", d.Name, d.Path, d.Group, escapeCell(string(d.Key)))
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
