package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rig/internal/core/domain"
)

func TestSummary_Counts(t *testing.T) {
	summary := domain.Summary{
		Targets: []string{"a", "b", "c"},
		Builds: []domain.Result{
			{Target: "a", Outcome: domain.OutcomeBuilt},
			{Target: "b", Outcome: domain.OutcomeUpToDate},
			{Target: "c", Outcome: domain.OutcomeBuilt},
		},
		Runs: []domain.Result{
			{Target: "a", Outcome: domain.OutcomePassed},
			{Target: "b", Outcome: domain.OutcomeFailed, ExitCode: 1},
			{Target: "c", Outcome: domain.OutcomeFailed, ExitCode: 3},
		},
	}

	assert.Equal(t, 2, summary.Built())
	assert.Equal(t, 2, summary.Failures())
	assert.False(t, summary.OK())
	assert.Equal(t, []string{"b", "c"}, []string{summary.Failed()[0].Target, summary.Failed()[1].Target})
}

func TestSummary_OKWithoutFailures(t *testing.T) {
	summary := domain.Summary{
		Runs: []domain.Result{{Target: "a", Outcome: domain.OutcomePassed}},
	}

	assert.Equal(t, 0, summary.Failures())
	assert.True(t, summary.OK())
	assert.True(t, domain.Summary{}.OK())
}
