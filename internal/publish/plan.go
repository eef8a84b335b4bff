// SPDX-License-Identifier: MPL-2.0

package publish

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/modgraph/modgraph/pkg/modgraph"
)

const (
	KindPOM     ArtifactKind = "pom"
	KindJar     ArtifactKind = "jar"
	KindSources ArtifactKind = "sources"
	KindJavadoc ArtifactKind = "javadoc"
)

type (
	// ArtifactKind distinguishes the files of one publication.
	ArtifactKind string

	// Coordinates identify a publication in a Maven repository.
	Coordinates struct {
		GroupID    string `json:"groupId" yaml:"groupId"`
		ArtifactID string `json:"artifactId" yaml:"artifactId"`
		Version    string `json:"version" yaml:"version"`
	}

	// Artifact is one file of a publication.
	Artifact struct {
		Kind       ArtifactKind `json:"kind" yaml:"kind"`
		Classifier string       `json:"classifier,omitempty" yaml:"classifier,omitempty"`
		Extension  string       `json:"extension" yaml:"extension"`
		// Path is relative to the repository root.
		Path string `json:"path" yaml:"path"`
		URL  string `json:"url" yaml:"url"`
	}

	// Publication is everything published for one module.
	Publication struct {
		Module      modgraph.Descriptor `json:"module" yaml:"module"`
		Coordinates Coordinates         `json:"coordinates" yaml:"coordinates"`
		Artifacts   []Artifact          `json:"artifacts" yaml:"artifacts"`
	}
)

// String renders "groupId:artifactId:version".
func (c Coordinates) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// Dir returns the repository directory holding the coordinates' files,
// e.g. "dev/triumphteam/triumph-cmd-core/2.0.0".
func (c Coordinates) Dir() string {
	return path.Join(strings.ReplaceAll(c.GroupID, ".", "/"), c.ArtifactID, c.Version)
}

// FileName returns the file name for an artifact with the given classifier
// and extension.
func (c Coordinates) FileName(classifier, ext string) string {
	name := c.ArtifactID + "-" + c.Version
	if classifier != "" {
		name += "-" + classifier
	}
	return name + "." + ext
}

// Plan returns one Publication per core module of graph, in declaration
// order. Example modules are never published.
func Plan(graph *modgraph.ProjectGraph, opts Options) ([]Publication, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	kinds := []ArtifactKind{KindPOM, KindJar}
	if opts.Sources {
		kinds = append(kinds, KindSources)
	}
	if opts.Javadoc {
		kinds = append(kinds, KindJavadoc)
	}

	var pubs []Publication
	for _, d := range graph.Publishable() {
		coords := Coordinates{
			GroupID:    opts.GroupID,
			ArtifactID: strings.ToLower(string(d.Name)),
			Version:    opts.Version,
		}
		if !artifactIDPattern.MatchString(coords.ArtifactID) {
			return nil, &InvalidArtifactIDError{Module: string(d.Name), ArtifactID: coords.ArtifactID}
		}

		pub := Publication{Module: d, Coordinates: coords}
		for _, k := range kinds {
			a, err := newArtifact(opts.Repository.URL, coords, k)
			if err != nil {
				return nil, err
			}
			pub.Artifacts = append(pub.Artifacts, a)
		}
		pubs = append(pubs, pub)
	}
	return pubs, nil
}

func newArtifact(repoURL string, c Coordinates, kind ArtifactKind) (Artifact, error) {
	a := Artifact{Kind: kind, Extension: "jar"}
	switch kind {
	case KindPOM:
		a.Extension = "pom"
	case KindSources, KindJavadoc:
		a.Classifier = string(kind)
	}

	a.Path = path.Join(c.Dir(), c.FileName(a.Classifier, a.Extension))
	u, err := url.JoinPath(repoURL, a.Path)
	if err != nil {
		return Artifact{}, fmt.Errorf("artifact url for %s: %w", c, err)
	}
	a.URL = u
	return a, nil
}

// Artifact returns the artifact of the given kind, if planned.
func (p Publication) Artifact(kind ArtifactKind) (Artifact, bool) {
	for _, a := range p.Artifacts {
		if a.Kind == kind {
			return a, true
		}
	}
	return Artifact{}, false
}
