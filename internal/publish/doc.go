// SPDX-License-Identifier: MPL-2.0

// Package publish plans Maven publications for a composed project graph.
//
// Only core modules are published. Each one gets coordinates
// groupId:artifactId:version, where artifactId is its final name, and a set
// of artifacts laid out the way a Maven repository stores them. Nothing is
// uploaded; the plan is the hand-off to whatever performs the upload.
package publish
