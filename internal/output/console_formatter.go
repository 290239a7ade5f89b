package output

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalplan/goalplan/internal/calculation"
	"github.com/goalplan/goalplan/internal/domain"
)

// ConsoleFormatter renders engine results as plain-text reports for the CLI.
type ConsoleFormatter struct{}

// Name returns a short identifier for logging and formatter lookup.
func (ConsoleFormatter) Name() string { return "console" }

// FormatProjections renders a per-goal projection table, goals in priority
// order, followed by the allocation status line.
func (ConsoleFormatter) FormatProjections(goals []domain.Goal, projections domain.EngineOutput, status calculation.AllocationStatus) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "GOAL PROJECTIONS")
	fmt.Fprintln(&buf, "================")

	for _, goal := range domain.SortedByPriority(goals) {
		proj, ok := projections[goal.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "%s (%s)\n", goal.Name, goal.Type)
		fmt.Fprintf(&buf, "  Saved %s of %s, contributing %s/mo at %s\n",
			FormatCurrency(goal.CurrentAmount), FormatCurrency(goal.TargetAmount),
			FormatCurrency(proj.MonthlyContribution),
			FormatPercentage(proj.AnnualRate.Mul(hundred)))
		if proj.IsReachable {
			fmt.Fprintf(&buf, "  Reached in %s (%s), final value %s\n",
				FormatMonths(proj.MonthsToComplete), proj.CompletionDate,
				FormatCurrency(proj.ProjectedFinalValue))
		} else {
			fmt.Fprintf(&buf, "  Not reachable within the horizon; value at horizon %s\n",
				FormatCurrency(proj.ProjectedFinalValue))
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "Savings pool %s, allocated %s", FormatCurrency(status.SavingsPool), FormatCurrency(status.TotalAllocated))
	if status.IsOverAllocated {
		fmt.Fprintf(&buf, " (OVER-ALLOCATED by %s)\n", FormatCurrency(status.OverAmount))
	} else {
		fmt.Fprintf(&buf, ", %s unallocated\n", FormatCurrency(status.Remaining))
	}
	return buf.Bytes()
}

// FormatComparison renders a per-goal scenario diff.
func (ConsoleFormatter) FormatComparison(nameA, nameB string, goals []domain.Goal, deltas map[uuid.UUID]calculation.ScenarioDelta) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "SCENARIO COMPARISON: %q vs %q\n", nameA, nameB)
	fmt.Fprintln(&buf, "=====================================")

	for _, goal := range domain.SortedByPriority(goals) {
		delta, ok := deltas[goal.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "%s: %s", goal.Name, delta.Classification)
		if delta.MonthsDelta != nil {
			fmt.Fprintf(&buf, " (%+d months, %s -> %s)", *delta.MonthsDelta,
				FormatMonths(delta.MonthsA), FormatMonths(delta.MonthsB))
		}
		fmt.Fprintln(&buf)
	}
	return buf.Bytes()
}

// FormatStressSuite renders each event's damage and the aggregate score.
func (ConsoleFormatter) FormatStressSuite(goals []domain.Goal, suite *calculation.StressSuiteResult) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "STRESS TEST RESULTS")
	fmt.Fprintln(&buf, "===================")

	names := goalNames(goals)
	for _, result := range suite.Results {
		fmt.Fprintf(&buf, "%s: resilience %s\n", result.Event, result.ResilienceScore.StringFixed(1))
		ids := sortedGoalIDs(goals)
		for _, id := range ids {
			delta, ok := result.Deltas[id]
			if !ok {
				continue
			}
			switch {
			case delta.BecameUnreachable:
				fmt.Fprintf(&buf, "  %s: no longer reachable\n", names[id])
			case delta.DelayMonths != nil && *delta.DelayMonths > 0:
				fmt.Fprintf(&buf, "  %s: delayed %d months\n", names[id], *delta.DelayMonths)
			}
		}
	}
	fmt.Fprintf(&buf, "\nWorst case: %s (score %s)\n", suite.WorstEvent, suite.WorstScore.StringFixed(1))
	return buf.Bytes()
}

// FormatWindfall renders months saved per goal.
func (ConsoleFormatter) FormatWindfall(goals []domain.Goal, result *calculation.WindfallResult) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "WINDFALL %s via %s\n", FormatCurrency(result.Amount), result.Strategy)
	fmt.Fprintln(&buf, "=====================================")

	names := goalNames(goals)
	for _, id := range sortedGoalIDs(goals) {
		delta, ok := result.Deltas[id]
		if !ok || delta.AmountApplied.IsZero() {
			continue
		}
		fmt.Fprintf(&buf, "%s: +%s", names[id], FormatCurrency(delta.AmountApplied))
		switch {
		case delta.BecameReachable:
			fmt.Fprintf(&buf, ", now reachable in %s", FormatMonths(delta.NewMonths))
		case delta.MonthsSaved != nil:
			fmt.Fprintf(&buf, ", %d months sooner", *delta.MonthsSaved)
		}
		fmt.Fprintln(&buf)
	}
	if result.Unallocated.IsPositive() {
		fmt.Fprintf(&buf, "Unallocated remainder: %s\n", FormatCurrency(result.Unallocated))
	}
	return buf.Bytes()
}

// FormatDebtVsInvest renders both trajectories and the recommendation.
func (ConsoleFormatter) FormatDebtVsInvest(rec *calculation.DebtInvestRecommendation) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "DEBT VS INVEST")
	fmt.Fprintln(&buf, "==============")
	for _, path := range []calculation.PathOutcome{rec.PayoffFirst, rec.InvestFirst} {
		fmt.Fprintf(&buf, "%s: net worth %s (invested %s, debt %s",
			path.Path, FormatCurrency(path.NetWorth),
			FormatCurrency(path.InvestmentBalance), FormatCurrency(path.RemainingDebt))
		if path.DebtRetiredMonth != nil {
			fmt.Fprintf(&buf, ", retired month %d", *path.DebtRetiredMonth)
		}
		fmt.Fprintln(&buf, ")")
	}
	fmt.Fprintf(&buf, "\nRecommended: %s", rec.Recommended)
	if rec.IsTieBreak {
		fmt.Fprint(&buf, " (tie-break; the difference is below the materiality threshold, not a clear mathematical win)")
	}
	fmt.Fprintln(&buf)
	return buf.Bytes()
}

var hundred = decimal.NewFromInt(100)

func goalNames(goals []domain.Goal) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(goals))
	for i := range goals {
		names[goals[i].ID] = goals[i].Name
	}
	return names
}

func sortedGoalIDs(goals []domain.Goal) []uuid.UUID {
	sorted := domain.SortedByPriority(goals)
	ids := make([]uuid.UUID, len(sorted))
	for i := range sorted {
		ids[i] = sorted[i].ID
	}
	return ids
}
