// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	SettingsNotFoundId Id = iota + 1
	AmbiguousSettingsId
	SettingsParseErrorId
	InvalidSettingsId
	InvalidDeclarationId
	DuplicateModuleNameId
	ModulePathInvalidId
	PublishConfigInvalidId
	ConfigLoadFailedId
)

const docsBase = "https://github.com/modgraph/modgraph#"

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // lookup key
		mdMsg    MarkdownMsg // rendered with glamour
		docLinks []HttpLink  // never empty
		extLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the message followed by a "See also" list of links.
func (i *Issue) Markdown() string {
	md := string(i.mdMsg)
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.docLinks {
			md += "\n- <" + string(link) + ">"
		}
		for _, link := range i.extLinks {
			md += "\n- <" + string(link) + ">"
		}
		md += "\n"
	}
	return md
}

// Render renders the issue for a terminal using the named glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	settingsNotFoundIssue = &Issue{
		id: SettingsNotFoundId,
		mdMsg: `
# No settings file found

modgraph looks for exactly one of these files in the project directory:

- modgraph.cue
- modgraph.toml
- modgraph.hcl

## Things you can try
- Create one:
~~~
$ modgraph init --root my-project
~~~
- Point at another project with ` + "`--dir`" + ` or at a file with ` + "`--settings`" + `.`,
		docLinks: []HttpLink{docsBase + "settings-files"},
	}

	ambiguousSettingsIssue = &Issue{
		id: AmbiguousSettingsId,
		mdMsg: `
# More than one settings file

The project directory holds settings in several formats. modgraph does not
guess which one is authoritative.

## Things you can try
- Delete the files you no longer use.
- Select one explicitly with ` + "`--settings modgraph.toml`" + `.`,
		docLinks: []HttpLink{docsBase + "settings-files"},
	}

	settingsParseErrorIssue = &Issue{
		id: SettingsParseErrorId,
		mdMsg: `
# The settings file could not be parsed

The file has a syntax error or contains fields the schema does not allow.

## Things you can try
- Check the reported line and column.
- Compare against a freshly generated file:
~~~
$ modgraph init --root my-project --force
~~~`,
		docLinks: []HttpLink{docsBase + "settings-files"},
		extLinks: []HttpLink{"https://cuelang.org/docs/", "https://toml.io/", "https://github.com/hashicorp/hcl"},
	}

	invalidSettingsIssue = &Issue{
		id: InvalidSettingsId,
		mdMsg: `
# The settings are invalid

The file parsed, but a project-level value is missing or malformed.

## Things you can try
- Make sure ` + "`root`" + ` is set to a non-blank identifier.
- When a ` + "`publishing`" + ` block is present, set ` + "`publishing.repository.url`" + `.`,
		docLinks: []HttpLink{docsBase + "settings-files"},
	}

	invalidDeclarationIssue = &Issue{
		id: InvalidDeclarationId,
		mdMsg: `
# A module declaration is invalid

Every declaration needs a non-empty ` + "`key`" + `. Overrides for ` + "`path`" + ` and
` + "`name`" + ` must not be blank when they are given.

Composition stops at the first invalid declaration, so later declarations
were not checked.`,
		docLinks: []HttpLink{docsBase + "declaring-modules"},
	}

	duplicateModuleNameIssue = &Issue{
		id: DuplicateModuleNameId,
		mdMsg: `
# Two modules resolve to the same name

Final names are ` + "`<root>-<key>`" + ` in lowercase, so keys that differ only by
case, or a core module and an example sharing a key, collide.

## Things you can try
- Rename one of the keys.
- Give one declaration an explicit ` + "`name`" + `:
~~~cue
examples: [{key: "bukkit", path: "examples/bukkit", name: "demo-bukkit-example"}]
~~~`,
		docLinks: []HttpLink{docsBase + "declaring-modules"},
	}

	modulePathInvalidIssue = &Issue{
		id: ModulePathInvalidId,
		mdMsg: `
# A module directory is missing

Every declared path must be an existing directory below the project root.

## Things you can try
- Create the directory or fix the ` + "`path`" + ` override.
- Skip the check with ` + "`--verify-paths=false`" + ` while restructuring.`,
		docLinks: []HttpLink{docsBase + "declaring-modules"},
	}

	publishConfigInvalidIssue = &Issue{
		id: PublishConfigInvalidId,
		mdMsg: `
# Publishing is not configured correctly

Planning a publication needs a group, a version and a repository URL.
Credentials are read from the environment:

- MODGRAPH_PUBLISH_USERNAME or gradle_username
- MODGRAPH_PUBLISH_PASSWORD or gradle_password`,
		docLinks: []HttpLink{docsBase + "publishing"},
		extLinks: []HttpLink{"https://maven.apache.org/repositories/layout.html"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# The configuration could not be loaded

## Things you can try
- Show the effective configuration:
~~~
$ modgraph config show
~~~
- Print where modgraph looks for the file:
~~~
$ modgraph config path
~~~`,
		docLinks: []HttpLink{docsBase + "configuration"},
	}

	issues = map[Id]*Issue{
		settingsNotFoundIssue.Id():     settingsNotFoundIssue,
		ambiguousSettingsIssue.Id():    ambiguousSettingsIssue,
		settingsParseErrorIssue.Id():   settingsParseErrorIssue,
		invalidSettingsIssue.Id():      invalidSettingsIssue,
		invalidDeclarationIssue.Id():   invalidDeclarationIssue,
		duplicateModuleNameIssue.Id():  duplicateModuleNameIssue,
		modulePathInvalidIssue.Id():    modulePathInvalidIssue,
		publishConfigInvalidIssue.Id(): publishConfigInvalidIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
