// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/modgraph/modgraph/internal/publish"
)

// PlanDocument is the serialized form of a publication plan. Credentials are
// never part of it.
type PlanDocument struct {
	Repository   publish.Repository    `json:"repository" yaml:"repository"`
	Publications []publish.Publication `json:"publications" yaml:"publications"`
}

// Plan writes doc to w in the requested format.
func Plan(w io.Writer, doc PlanDocument, opts Options) error {
	if doc.Publications == nil {
		doc.Publications = []publish.Publication{}
	}
	switch opts.Format {
	case FormatText, "":
		return planText(w, doc)
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, doc)
	case FormatMarkdown:
		return writeMarkdown(w, PlanMarkdown(doc), opts)
	default:
		return opts.Format.Validate()
	}
}

func repositoryLabel(r publish.Repository) string {
	if r.Name == "" {
		return r.URL
	}
	return r.Name + " (" + r.URL + ")"
}

func planText(w io.Writer, doc PlanDocument) error {
	title := titleStyle.Render(fmt.Sprintf("%d publication(s) to %s", len(doc.Publications), repositoryLabel(doc.Repository)))
	if len(doc.Publications) == 0 {
		_, err := fmt.Fprintf(w, "%s\n%s\n", title, subtleStyle.Render("No core modules to publish."))
		return err
	}

	var rows [][]string
	for _, p := range doc.Publications {
		for _, a := range p.Artifacts {
			rows = append(rows, []string{p.Coordinates.String(), string(a.Kind), a.Path})
		}
	}
	t := newTable([]string{"COORDINATES", "ARTIFACT", "PATH"}, rows, -1)

	_, err := fmt.Fprintf(w, "%s\n%s\n", title, t.Render())
	return err
}

// PlanMarkdown returns the Markdown source FormatMarkdown renders.
func PlanMarkdown(doc PlanDocument) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Publications to %s\n", repositoryLabel(doc.Repository))
	if len(doc.Publications) == 0 {
		sb.WriteString("\n_No core modules to publish._\n")
		return sb.String()
	}
	for _, p := range doc.Publications {
		fmt.Fprintf(&sb, "\n## `%s`\n\n", p.Coordinates)
		fmt.Fprintf(&sb, "Module `%s` from `%s`.\n\n", p.Module.Name, p.Module.Path)
		for _, a := range p.Artifacts {
			fmt.Fprintf(&sb, "- **%s**: [%s](%s)\n", a.Kind, a.Path, a.URL)
		}
	}
	return sb.String()
}
