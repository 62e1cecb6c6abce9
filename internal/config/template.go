package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ats/internal/domain"
)

// PipelineTemplate is the on-disk shape of a per-client pipeline.
type PipelineTemplate struct {
	Name        string              `yaml:"name"`
	Stages      []TemplateStage     `yaml:"stages"`
	Transitions map[string][]string `yaml:"transitions"`
}

type TemplateStage struct {
	Stage    string `yaml:"stage"`
	Label    string `yaml:"label"`
	Order    int    `yaml:"order"`
	Category string `yaml:"category"`
	Negative bool   `yaml:"negative"`
}

// LoadPipelineTemplate reads a YAML template and returns its validated
// catalog and transition table.
func LoadPipelineTemplate(path string) (*domain.Catalog, *domain.TransitionTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read pipeline template: %w", err)
	}
	return ParsePipelineTemplate(raw)
}

func ParsePipelineTemplate(raw []byte) (*domain.Catalog, *domain.TransitionTable, error) {
	var tpl PipelineTemplate
	if err := yaml.Unmarshal(raw, &tpl); err != nil {
		return nil, nil, fmt.Errorf("parse pipeline template: %w", err)
	}

	defs := make([]domain.StageDefinition, 0, len(tpl.Stages))
	for _, s := range tpl.Stages {
		stage, err := domain.ParseStage(s.Stage)
		if err != nil {
			return nil, nil, fmt.Errorf("pipeline template %q: %w", tpl.Name, err)
		}
		category, err := domain.ParseCategory(s.Category)
		if err != nil {
			return nil, nil, fmt.Errorf("pipeline template %q: stage %s: %w", tpl.Name, stage, err)
		}
		defs = append(defs, domain.StageDefinition{
			Stage:    stage,
			Label:    s.Label,
			Order:    s.Order,
			Category: category,
			Negative: s.Negative,
		})
	}
	catalog, err := domain.NewCatalog(defs)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline template %q: %w", tpl.Name, err)
	}

	edges := make(map[domain.Stage][]domain.Stage, len(tpl.Transitions))
	for fromRaw, targets := range tpl.Transitions {
		from, err := domain.ParseStage(fromRaw)
		if err != nil {
			return nil, nil, fmt.Errorf("pipeline template %q: %w", tpl.Name, err)
		}
		for _, toRaw := range targets {
			to, err := domain.ParseStage(toRaw)
			if err != nil {
				return nil, nil, fmt.Errorf("pipeline template %q: %s: %w", tpl.Name, from, err)
			}
			edges[from] = append(edges[from], to)
		}
		if _, ok := edges[from]; !ok {
			edges[from] = []domain.Stage{}
		}
	}
	table := domain.NewTransitionTable(edges)
	if err := table.Validate(catalog); err != nil {
		return nil, nil, fmt.Errorf("pipeline template %q: %w", tpl.Name, err)
	}
	return catalog, table, nil
}
