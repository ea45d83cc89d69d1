// Copyright (C) 2026 Floe Data (oss@floedata.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/floedata/floe/graph"
	"github.com/floedata/floe/yamlutil"
)

// ProjectFileName is the project definition file floe looks for.
const ProjectFileName = "floe_project.yml"

var projectValidate = validator.New()

// Project is a parsed project definition.
type Project struct {
	// Name is the package name; it becomes the first FQN segment of every
	// resource in the project.
	Name string `yaml:"name" validate:"required"`

	// Version is the project file schema version. Only version 2 is
	// understood.
	Version int `yaml:"version" validate:"eq=2"`

	Models  []ModelDef  `yaml:"models" validate:"dive"`
	Sources []SourceDef `yaml:"sources" validate:"dive"`
}

// ModelDef declares one model resource.
type ModelDef struct {
	Name string `yaml:"name" validate:"required"`

	// Namespace holds optional FQN segments between the package name and
	// the model name, for directory-style selection of model groups.
	Namespace []string `yaml:"namespace"`

	Tags []string `yaml:"tags"`

	// DependsOn lists unique IDs of resources this model reads from.
	DependsOn []string `yaml:"depends_on"`
}

// SourceDef declares one external source table.
type SourceDef struct {
	SourceName string   `yaml:"source_name" validate:"required"`
	Table      string   `yaml:"table" validate:"required"`
	Tags       []string `yaml:"tags"`
}

// ModelID returns the unique ID of a model in this project.
func (p *Project) ModelID(name string) string {
	return fmt.Sprintf("model.%s.%s", p.Name, name)
}

// SourceID returns the unique ID of a source table in this project.
func (p *Project) SourceID(sourceName, table string) string {
	return fmt.Sprintf("source.%s.%s.%s", p.Name, sourceName, table)
}

// LoadProject reads and validates dir/floe_project.yml.
//
// YAML syntax errors surface as *yamlutil.ValidationError with line
// context; schema violations surface as validator errors wrapped with the
// file path.
func LoadProject(dir string) (*Project, error) {
	path := filepath.Join(dir, ProjectFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}

	var p Project
	if err := yamlutil.LoadInto(raw, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := projectValidate.Struct(&p); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return &p, nil
}

// BuildGraph materializes a project into a dependency graph and a catalog.
//
// Model FQNs are [package, namespace..., name]; source FQNs are
// [package, source_name, table]. Edges run from each dependency to the
// depending model. Unknown depends_on references and cycles are rejected
// by the graph builder.
func BuildGraph(p *Project) (*graph.Graph, Catalog, error) {
	cat := NewMemoryCatalog()
	builder := graph.NewBuilder()

	for _, src := range p.Sources {
		id := p.SourceID(src.SourceName, src.Table)
		meta := NodeMetadata{
			UniqueID: id,
			FQN:      []string{p.Name, src.SourceName, src.Table},
			Tags:     src.Tags,
			Kind:     KindSource,
		}
		if err := cat.Put(meta); err != nil {
			return nil, nil, err
		}
		builder.AddNode(id)
	}

	for _, model := range p.Models {
		id := p.ModelID(model.Name)
		fqn := make([]string, 0, len(model.Namespace)+2)
		fqn = append(fqn, p.Name)
		fqn = append(fqn, model.Namespace...)
		fqn = append(fqn, model.Name)

		meta := NodeMetadata{
			UniqueID: id,
			FQN:      fqn,
			Tags:     model.Tags,
			Kind:     KindModel,
		}
		if err := cat.Put(meta); err != nil {
			return nil, nil, err
		}
		builder.AddNode(id)
	}

	for _, model := range p.Models {
		id := p.ModelID(model.Name)
		for _, dep := range model.DependsOn {
			builder.AddEdge(resolveRef(p, dep), id)
		}
	}

	g, err := builder.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("project %s: %w", p.Name, err)
	}
	return g, cat, nil
}

// resolveRef expands a bare model name in depends_on to its unique ID.
// Fully qualified references (model.* / source.*) pass through verbatim.
func resolveRef(p *Project, ref string) string {
	if strings.HasPrefix(ref, "model.") || strings.HasPrefix(ref, "source.") {
		return ref
	}
	return p.ModelID(ref)
}
