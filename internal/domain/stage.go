package domain

import "fmt"

// Stage is one position in the recruiting pipeline. The set is closed: every
// valid value is declared below and the zero value is never a real stage.
type Stage uint8

const (
	StageUnknown Stage = iota
	StageSourcing
	StageShortlist
	StageTerna
	StageContactPending
	StageContacted
	StageInterested
	StageInterviewScheduled
	StageInterviewDone
	StageOfferSent
	StageOfferAccepted
	StageHired
	StageOfferRejected
	StageNotInterested
	StageNoResponse
	StageDiscarded
)

var stageNames = [...]string{
	StageUnknown:            "",
	StageSourcing:           "sourcing",
	StageShortlist:          "shortlist",
	StageTerna:              "terna",
	StageContactPending:     "contact_pending",
	StageContacted:          "contacted",
	StageInterested:         "interested",
	StageInterviewScheduled: "interview_scheduled",
	StageInterviewDone:      "interview_done",
	StageOfferSent:          "offer_sent",
	StageOfferAccepted:      "offer_accepted",
	StageHired:              "hired",
	StageOfferRejected:      "offer_rejected",
	StageNotInterested:      "not_interested",
	StageNoResponse:         "no_response",
	StageDiscarded:          "discarded",
}

// InitialStage is where every application enters the pipeline.
const InitialStage = StageSourcing

// AllStages returns every declared stage in declaration order.
func AllStages() []Stage {
	out := make([]Stage, 0, len(stageNames)-1)
	for s := StageSourcing; s <= StageDiscarded; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is one of the declared stages.
func (s Stage) Valid() bool {
	return s > StageUnknown && int(s) < len(stageNames)
}

func (s Stage) String() string {
	if !s.Valid() {
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
	return stageNames[s]
}

// ParseStage maps a wire symbol such as "contact_pending" to its Stage.
// Symbols match exactly; case and surrounding whitespace are not forgiven.
func ParseStage(value string) (Stage, error) {
	if value != "" {
		for i := StageSourcing; int(i) < len(stageNames); i++ {
			if stageNames[i] == value {
				return i, nil
			}
		}
	}
	return StageUnknown, &UnknownStageError{Value: value}
}

func (s Stage) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &UnknownStageError{Value: s.String()}
	}
	return []byte(stageNames[s]), nil
}

func (s *Stage) UnmarshalText(b []byte) error {
	parsed, err := ParseStage(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Category groups stages for display and for timeline filtering.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryInitial
	CategoryContact
	CategoryInterview
	CategoryOffer
	CategoryFinal
)

var categoryNames = [...]string{
	CategoryUnknown:   "",
	CategoryInitial:   "initial",
	CategoryContact:   "contact",
	CategoryInterview: "interview",
	CategoryOffer:     "offer",
	CategoryFinal:     "final",
}

func (c Category) Valid() bool {
	return c > CategoryUnknown && int(c) < len(categoryNames)
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryNames[c]
}

func ParseCategory(value string) (Category, error) {
	for i := CategoryInitial; int(i) < len(categoryNames); i++ {
		if categoryNames[i] == value {
			return i, nil
		}
	}
	return CategoryUnknown, fmt.Errorf("unknown stage category %q", value)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid stage category %d", uint8(c))
	}
	return []byte(categoryNames[c]), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
