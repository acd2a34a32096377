package report

import (
	"fmt"
	"strings"

	"fluxion/app"
	"fluxion/internal/admission"
)

// StageLabels maps pipeline stage names to the labels the survey report
// prints. The final stage doubles as the acceptance count.
var StageLabels = map[string]string{
	admission.StageRaw:           "Raw permutations",
	admission.StageConservation:  "Flux conserving",
	admission.StageFluxSymmetry:  "Negation symmetric",
	admission.StageAtomicity:     "Atomic",
	admission.StageDynamism:      "State changing",
	admission.StageNonTriviality: "Accepted",
}

// Renderer turns survey results into the plain-text report
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderSurvey formats one survey run as a text report.
func (r *Renderer) RenderSurvey(result *app.SurveyResult) string {
	var out strings.Builder

	out.WriteString("=== Device Survey ===\n")
	out.WriteString(fmt.Sprintf("Run: %s\n", result.Run.ID))
	out.WriteString(fmt.Sprintf("Category: %s\n", result.Run.Params.Category))
	out.WriteString(fmt.Sprintf("Dimensions: %s\n", result.Dims))
	out.WriteString(fmt.Sprintf("Flux conservation: %s\n", onOff(result.Run.Params.ConserveFlux)))

	out.WriteString("\nCandidate filtering:\n")
	for _, sc := range result.Counts {
		label, ok := StageLabels[sc.Stage]
		if !ok {
			label = sc.Stage
		}
		out.WriteString(fmt.Sprintf("- %s: %d\n", label, sc.Count))
	}

	if len(result.Accepted) > 0 {
		out.WriteString("\nAccepted functions:\n")
		for _, af := range result.Accepted {
			out.WriteString(fmt.Sprintf("\nFunction #%d:\n", af.ID))
			out.WriteString(af.Function.String())
			out.WriteString("\n")
		}
	}

	out.WriteString(fmt.Sprintf("\nEquivalence groups: %d\n", len(result.Groups)))
	for i, g := range result.Groups {
		out.WriteString(fmt.Sprintf("\nGroup %d: %s\n", i+1, memberList(g)))
		out.WriteString(fmt.Sprintf("Representative function #%d:\n", g.Representative.ID))
		out.WriteString(g.Representative.Function.String())
		out.WriteString("\n")
		for _, fact := range g.Relations {
			out.WriteString(fmt.Sprintf("  - %s\n", relationLine(fact)))
		}
	}

	if result.SizeStats != nil {
		out.WriteString(fmt.Sprintf("\nGroup size stats: mean %.2f, median %.2f, min %d, max %d\n",
			result.SizeStats.Mean, result.SizeStats.Median, result.SizeStats.Min, result.SizeStats.Max))
	}

	return out.String()
}

// RenderSweep formats every survey of a sweep, in grid order.
func (r *Renderer) RenderSweep(result *app.SweepResult) string {
	parts := make([]string, 0, len(result.Surveys))
	for _, s := range result.Surveys {
		parts = append(parts, r.RenderSurvey(s))
	}
	return strings.Join(parts, "\n")
}

// relationLine phrases one symmetry fact the way the survey report reads:
// invariance is "self-dual" when the transform undoes itself and plain
// "symmetric" otherwise, while a partner is a "dual" or a "transforms to"
// on the same split.
func relationLine(fact app.SymmetryFact) string {
	if fact.Symmetric {
		if fact.SelfInverse {
			return fmt.Sprintf("self-dual under %s %s", fact.TransformSymbol, fact.TransformDesc)
		}
		return fmt.Sprintf("symmetric under %s %s", fact.TransformSymbol, fact.TransformDesc)
	}
	if fact.SelfInverse {
		return fmt.Sprintf("%s-dual to function #%d", fact.TransformSymbol, fact.PartnerID)
	}
	return fmt.Sprintf("%s-transforms to function #%d", fact.TransformSymbol, fact.PartnerID)
}

func memberList(g app.GroupSummary) string {
	ids := make([]string, len(g.MemberIDs))
	for i, id := range g.MemberIDs {
		ids[i] = fmt.Sprintf("#%d", id)
	}
	noun := "members"
	if len(ids) == 1 {
		noun = "member"
	}
	return fmt.Sprintf("%d %s (%s)", len(ids), noun, strings.Join(ids, ", "))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
