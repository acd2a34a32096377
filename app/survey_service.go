package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/combin"

	"fluxion/domain/classify"
	"fluxion/domain/core"
	"fluxion/domain/device"
	"fluxion/domain/orbit"
	"fluxion/domain/run"
	"fluxion/domain/transform"
	"fluxion/internal"
	"fluxion/internal/admission"
	"fluxion/internal/permute"
)

// DefaultProgressEvery is how many raw candidates pass between progress
// logs and cancellation checks when the request does not say otherwise.
const DefaultProgressEvery uint64 = 1_000_000

// SurveyService enumerates every candidate transition function of a device
// universe, admits the lawful ones, and classifies them into equivalence
// groups.
type SurveyService struct {
	logger *internal.Logger
}

// NewSurveyService creates a survey service
func NewSurveyService(logger *internal.Logger) *SurveyService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &SurveyService{logger: logger}
}

// SurveyRequest defines the universe to survey
type SurveyRequest struct {
	Category        device.Category
	Ports           int
	ConserveFlux    bool
	CollectAccepted bool
	ProgressEvery   uint64 // 0 means DefaultProgressEvery
}

// AcceptedFunction pairs an admitted function with its ledger ID
type AcceptedFunction struct {
	ID       run.FunctionID
	Function device.Function
}

// SymmetryFact records how a group representative relates to one
// reportable transform: either it is invariant under it, or the transform
// carries it to a partner function.
type SymmetryFact struct {
	TransformSymbol string
	TransformDesc   string
	SelfInverse     bool
	Symmetric       bool
	PartnerID       run.FunctionID // set only when not symmetric
}

// GroupSummary describes one equivalence group of accepted functions.
type GroupSummary struct {
	Representative AcceptedFunction
	Size           int
	MemberIDs      []run.FunctionID
	Relations      []SymmetryFact
}

// GroupSizeStats aggregates the group cardinalities of a run
type GroupSizeStats struct {
	Mean   float64
	Median float64
	Min    int
	Max    int
}

// SurveyResult contains the complete output of one survey run
type SurveyResult struct {
	Run           *run.Run
	Dims          device.Dimensions
	Counts        []admission.StageCount
	RawCount      uint64
	AcceptedCount uint64
	Accepted      []AcceptedFunction // nil unless requested
	Groups        []GroupSummary
	SizeStats     *GroupSizeStats // nil when no group survived
}

// Survey runs the full enumerate-admit-classify pass for one universe.
func (s *SurveyService) Survey(ctx context.Context, req SurveyRequest) (*SurveyResult, error) {
	progressEvery := req.ProgressEvery
	if progressEvery == 0 {
		progressEvery = DefaultProgressEvery
	}

	dims, err := req.Category.Dimensions(req.Ports, req.ConserveFlux)
	if err != nil {
		return nil, fmt.Errorf("resolving universe: %w", err)
	}

	r := run.NewRun(run.Params{
		Category:     req.Category,
		Ports:        req.Ports,
		ConserveFlux: req.ConserveFlux,
	})

	n := dims.SyndromeCount()
	expected := uint64(combin.NumPermutations(n, n))
	s.logger.Info("Starting survey %s: %s, %d candidate functions", r.ID, dims, expected)

	pipeline := admission.NewPipeline(dims, req.ConserveFlux)
	classifier := classify.NewClassifier(transform.ClassificationSet(dims, req.ConserveFlux))
	ledger := run.NewLedger()
	iter := permute.New(device.Identity(dims).Table(), device.Syndrome.Less)

	var accepted []AcceptedFunction
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for {
		mapping, ok := iter.Next()
		if !ok {
			break
		}
		f, err := device.New(dims, mapping)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", iter.Emitted(), err)
		}

		admitted, err := pipeline.Admit(f)
		if err != nil {
			return nil, fmt.Errorf("admitting candidate %d: %w", iter.Emitted(), err)
		}
		if admitted {
			id := ledger.Register(f)
			if req.CollectAccepted {
				accepted = append(accepted, AcceptedFunction{ID: id, Function: f})
			}
			if _, err := classifier.Observe(f); err != nil {
				return nil, fmt.Errorf("classifying function #%d: %w", id, err)
			}
			s.logger.Debug("Accepted function #%d", id)
		}

		if iter.Emitted()%progressEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			s.logger.Info("Surveyed %d/%d candidates: %d accepted", iter.Emitted(), expected, pipeline.Accepted())
		}
	}

	if iter.Emitted() != expected {
		return nil, core.NewCountMismatchError(expected, iter.Emitted())
	}

	reportable := transform.ReportableSet(dims)
	groups := classifier.Registry().Groups()
	summaries := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		summary, err := s.summarizeGroup(g, ledger, reportable)
		if err != nil {
			return nil, fmt.Errorf("summarizing group: %w", err)
		}
		summaries = append(summaries, summary)
	}

	sizeStats, err := groupSizeStats(summaries)
	if err != nil {
		return nil, fmt.Errorf("group size stats: %w", err)
	}

	r.Finish()
	s.logger.Info("Survey %s completed: %d accepted into %d groups in %.2fs",
		r.ID, pipeline.Accepted(), len(summaries), r.Elapsed().Seconds())

	return &SurveyResult{
		Run:           r,
		Dims:          dims,
		Counts:        pipeline.Counts(),
		RawCount:      pipeline.RawCount(),
		AcceptedCount: pipeline.Accepted(),
		Accepted:      accepted,
		Groups:        summaries,
		SizeStats:     sizeStats,
	}, nil
}

// summarizeGroup resolves ledger IDs for every member and works out how the
// representative sits under each reportable transform. Every member and
// every transform image of the representative must already be registered;
// a miss means the admission gates were not closed under the transform set.
func (s *SurveyService) summarizeGroup(g orbit.Orbit, ledger *run.Ledger, reportable []transform.Transform) (GroupSummary, error) {
	rep := g.Representative()
	repID, err := ledger.Lookup(rep)
	if err != nil {
		return GroupSummary{}, err
	}

	elements, err := g.Elements()
	if err != nil {
		return GroupSummary{}, err
	}
	memberIDs := make([]run.FunctionID, 0, len(elements))
	for _, f := range elements {
		id, err := ledger.Lookup(f)
		if err != nil {
			return GroupSummary{}, err
		}
		memberIDs = append(memberIDs, id)
	}
	sort.Slice(memberIDs, func(i, j int) bool { return memberIDs[i] < memberIDs[j] })

	relations := make([]SymmetryFact, 0, len(reportable))
	for _, t := range reportable {
		fact, err := symmetryFact(t, rep, ledger)
		if err != nil {
			return GroupSummary{}, err
		}
		relations = append(relations, fact)
	}

	return GroupSummary{
		Representative: AcceptedFunction{ID: repID, Function: rep},
		Size:           len(elements),
		MemberIDs:      memberIDs,
		Relations:      relations,
	}, nil
}

func symmetryFact(t transform.Transform, f device.Function, ledger *run.Ledger) (SymmetryFact, error) {
	fact := SymmetryFact{
		TransformSymbol: t.Symbol(),
		TransformDesc:   t.Describe(),
		SelfInverse:     t.Order() == 2,
	}

	symmetric, err := transform.IsSymmetric(t, f)
	if err != nil {
		return SymmetryFact{}, fmt.Errorf("transform %s: %w", t.Symbol(), err)
	}
	fact.Symmetric = symmetric
	if symmetric {
		return fact, nil
	}

	partner, err := t.Apply(f)
	if err != nil {
		return SymmetryFact{}, fmt.Errorf("transform %s: %w", t.Symbol(), err)
	}
	partnerID, err := ledger.Lookup(partner)
	if err != nil {
		return SymmetryFact{}, fmt.Errorf("partner under %s: %w", t.Symbol(), err)
	}
	fact.PartnerID = partnerID
	return fact, nil
}

func groupSizeStats(summaries []GroupSummary) (*GroupSizeStats, error) {
	if len(summaries) == 0 {
		return nil, nil
	}

	sizes := make([]float64, len(summaries))
	for i, g := range summaries {
		sizes[i] = float64(g.Size)
	}

	mean, err := stats.Mean(sizes)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(sizes)
	if err != nil {
		return nil, err
	}
	smallest, err := stats.Min(sizes)
	if err != nil {
		return nil, err
	}
	largest, err := stats.Max(sizes)
	if err != nil {
		return nil, err
	}

	return &GroupSizeStats{
		Mean:   mean,
		Median: median,
		Min:    int(smallest),
		Max:    int(largest),
	}, nil
}
