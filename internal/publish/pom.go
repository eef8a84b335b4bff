// SPDX-License-Identifier: MPL-2.0

package publish

import (
	"encoding/xml"
	"fmt"
)

const (
	pomNamespace      = "http://maven.apache.org/POM/4.0.0"
	pomSchemaInstance = "http://www.w3.org/2001/XMLSchema-instance"
	pomSchemaLocation = "http://maven.apache.org/POM/4.0.0 https://maven.apache.org/xsd/maven-4.0.0.xsd"
)

type pomProject struct {
	XMLName        xml.Name `xml:"project"`
	Xmlns          string   `xml:"xmlns,attr"`
	XSI            string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`
	ModelVersion   string   `xml:"modelVersion"`
	GroupID        string   `xml:"groupId"`
	ArtifactID     string   `xml:"artifactId"`
	Version        string   `xml:"version"`
	Packaging      string   `xml:"packaging"`
	Name           string   `xml:"name"`
}

// POM renders a minimal Maven POM for the publication.
func (p Publication) POM() ([]byte, error) {
	doc := pomProject{
		Xmlns:          pomNamespace,
		XSI:            pomSchemaInstance,
		SchemaLocation: pomSchemaLocation,
		ModelVersion:   "4.0.0",
		GroupID:        p.Coordinates.GroupID,
		ArtifactID:     p.Coordinates.ArtifactID,
		Version:        p.Coordinates.Version,
		Packaging:      "jar",
		Name:           string(p.Module.Name),
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render pom for %s: %w", p.Coordinates, err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}
