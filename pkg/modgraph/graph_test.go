// SPDX-License-Identifier: MPL-2.0

package modgraph

import (
	"slices"
	"sync"
	"testing"
)

func TestProjectGraph_Names(t *testing.T) {
	t.Parallel()

	graph, err := Compose("demo", sampleGroups()...)
	if err != nil {
		t.Fatalf("Compose() unexpected error: %v", err)
	}

	want := []FinalName{"demo-bukkit", "demo-bukkit-example", "demo-core"}
	if got := graph.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestProjectGraph_DescriptorsKeepDeclarationOrder(t *testing.T) {
	t.Parallel()

	graph, err := Compose("demo", sampleGroups()...)
	if err != nil {
		t.Fatalf("Compose() unexpected error: %v", err)
	}

	var got []FinalName
	for _, d := range graph.Descriptors() {
		got = append(got, d.Name)
	}
	want := []FinalName{"demo-core", "demo-bukkit", "demo-bukkit-example"}
	if !slices.Equal(got, want) {
		t.Errorf("Descriptors() order = %v, want %v", got, want)
	}
}

func TestProjectGraph_GroupFiltering(t *testing.T) {
	t.Parallel()

	graph, err := Compose("demo", sampleGroups()...)
	if err != nil {
		t.Fatalf("Compose() unexpected error: %v", err)
	}

	examples := graph.InGroup(GroupExample)
	if len(examples) != 1 || examples[0].Name != "demo-bukkit-example" {
		t.Errorf("InGroup(example) = %+v", examples)
	}

	publishable := graph.Publishable()
	if len(publishable) != len(graph.InGroup(GroupCore)) {
		t.Fatalf("Publishable() = %d descriptors, want every core module (%d)", len(publishable), len(graph.InGroup(GroupCore)))
	}
	for _, d := range publishable {
		if d.Group != GroupCore {
			t.Errorf("Publishable() contains %q from group %q", d.Name, d.Group)
		}
	}
}

func TestProjectGraph_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	graph, err := Compose("demo", sampleGroups()...)
	if err != nil {
		t.Fatalf("Compose() unexpected error: %v", err)
	}

	descs := graph.Descriptors()
	descs[0].Name = "mutated"
	names := graph.Names()
	names[0] = "mutated"

	if _, ok := graph.Get("mutated"); ok {
		t.Error("mutating returned slices changed the graph")
	}
	if graph.Descriptors()[0].Name != "demo-core" {
		t.Error("Descriptors() exposes internal storage")
	}
	if _, ok := graph.Get("demo-missing"); ok {
		t.Error("Get() found a module that was never declared")
	}
}

func TestProjectGraph_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	graph, err := Compose("demo", sampleGroups()...)
	if err != nil {
		t.Fatalf("Compose() unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for _, name := range graph.Names() {
				if _, ok := graph.Get(name); !ok {
					t.Errorf("Get(%q) missing during concurrent read", name)
				}
			}
			_ = graph.Publishable()
		})
	}
	wg.Wait()
}
