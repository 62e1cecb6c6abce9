package domain

import (
	"fmt"
	"sort"
	"strings"
)

// StageDefinition is one row of a pipeline catalog.
type StageDefinition struct {
	Stage    Stage    `json:"stage"`
	Label    string   `json:"label"`
	Order    int      `json:"order"`
	Category Category `json:"category"`
	// Negative marks out-of-band outcomes (rejections, no answer) that can be
	// reached from several points but are not part of the ascending path.
	Negative bool `json:"negative"`
}

// Catalog is an immutable, ordered registry of the stages a pipeline uses.
// Build one with NewCatalog or DefaultCatalog and pass it to whatever needs
// stage metadata; nothing reads a package-level table.
type Catalog struct {
	defs  []StageDefinition
	index map[Stage]int
}

func defaultStageDefinitions() []StageDefinition {
	return []StageDefinition{
		{Stage: StageSourcing, Label: "Sourcing", Order: 1, Category: CategoryInitial},
		{Stage: StageShortlist, Label: "Shortlist", Order: 2, Category: CategoryInitial},
		{Stage: StageTerna, Label: "Terna", Order: 3, Category: CategoryInitial},
		{Stage: StageContactPending, Label: "Contact pending", Order: 4, Category: CategoryContact},
		{Stage: StageContacted, Label: "Contacted", Order: 5, Category: CategoryContact},
		{Stage: StageInterested, Label: "Interested", Order: 6, Category: CategoryContact},
		{Stage: StageInterviewScheduled, Label: "Interview scheduled", Order: 7, Category: CategoryInterview},
		{Stage: StageInterviewDone, Label: "Interview done", Order: 8, Category: CategoryInterview},
		{Stage: StageOfferSent, Label: "Offer sent", Order: 9, Category: CategoryOffer},
		{Stage: StageOfferAccepted, Label: "Offer accepted", Order: 10, Category: CategoryOffer},
		{Stage: StageHired, Label: "Hired", Order: 11, Category: CategoryFinal},
		{Stage: StageOfferRejected, Label: "Offer rejected", Order: 96, Category: CategoryOffer, Negative: true},
		{Stage: StageNotInterested, Label: "Not interested", Order: 97, Category: CategoryContact, Negative: true},
		{Stage: StageNoResponse, Label: "No response", Order: 98, Category: CategoryContact, Negative: true},
		{Stage: StageDiscarded, Label: "Discarded", Order: 99, Category: CategoryFinal, Negative: true},
	}
}

// DefaultCatalog returns the standard fifteen-stage recruiting pipeline.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultStageDefinitions())
	if err != nil {
		panic(fmt.Sprintf("default stage catalog: %v", err))
	}
	return c
}

// NewCatalog validates defs and returns a catalog ordered by Order. Stages
// sharing an order keep the relative position they had in defs.
func NewCatalog(defs []StageDefinition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("stage catalog is empty")
	}
	sorted := make([]StageDefinition, len(defs))
	copy(sorted, defs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	index := make(map[Stage]int, len(sorted))
	for i, d := range sorted {
		if !d.Stage.Valid() {
			return nil, &UnknownStageError{Value: d.Stage.String()}
		}
		if _, dup := index[d.Stage]; dup {
			return nil, fmt.Errorf("stage %s defined more than once", d.Stage)
		}
		if !d.Category.Valid() {
			return nil, fmt.Errorf("stage %s has no category", d.Stage)
		}
		if strings.TrimSpace(d.Label) == "" {
			sorted[i].Label = d.Stage.String()
		}
		index[d.Stage] = i
	}
	for _, required := range []Stage{InitialStage, StageHired, StageDiscarded} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("stage catalog must define %s", required)
		}
	}
	return &Catalog{defs: sorted, index: index}, nil
}

func (c *Catalog) Contains(stage Stage) bool {
	_, ok := c.index[stage]
	return ok
}

func (c *Catalog) Definition(stage Stage) (StageDefinition, error) {
	i, ok := c.index[stage]
	if !ok {
		return StageDefinition{}, &UnknownStageError{Value: stage.String()}
	}
	return c.defs[i], nil
}

func (c *Catalog) Label(stage Stage) (string, error) {
	d, err := c.Definition(stage)
	return d.Label, err
}

func (c *Catalog) Order(stage Stage) (int, error) {
	d, err := c.Definition(stage)
	return d.Order, err
}

func (c *Catalog) Category(stage Stage) (Category, error) {
	d, err := c.Definition(stage)
	return d.Category, err
}

// Stages lists the catalog's stages ascending by order.
func (c *Catalog) Stages() []Stage {
	out := make([]Stage, len(c.defs))
	for i, d := range c.defs {
		out[i] = d.Stage
	}
	return out
}

// Definitions returns a copy of every definition ascending by order.
func (c *Catalog) Definitions() []StageDefinition {
	out := make([]StageDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Parse resolves a wire symbol and checks that this catalog uses it.
func (c *Catalog) Parse(value string) (Stage, error) {
	s, err := ParseStage(value)
	if err != nil {
		return StageUnknown, err
	}
	if !c.Contains(s) {
		return StageUnknown, &UnknownStageError{Value: value}
	}
	return s, nil
}
