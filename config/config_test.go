package config_test

import (
	"flag"
	"testing"
	"time"

	"github.com/katalvlaran/hgsrr/config"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
}

func TestValidate_RejectsNonPositiveTimeLimit(t *testing.T) {
	c := config.Default()
	c.TimeLimit = 0
	require.ErrorIs(t, c.Validate(), config.ErrNonPositiveTimeLimit)
}

func TestValidate_RejectsInitialBelowMinPopulation(t *testing.T) {
	c := config.Default()
	c.InitialIndividuals = c.MinPopulationSize - 1
	require.ErrorIs(t, c.Validate(), config.ErrInvalidPopulationSizing)
}

func TestValidate_RejectsFeasibilityTargetOutOfRange(t *testing.T) {
	c := config.Default()
	c.FeasibilityProportionTarget = 1.5
	require.ErrorIs(t, c.Validate(), config.ErrInvalidFeasibilityTarget)
}

func TestValidate_RejectsNonCoolingSchedule(t *testing.T) {
	c := config.Default()
	c.RRStartTemp = 1
	c.RRFinalTemp = 10
	require.ErrorIs(t, c.Validate(), config.ErrInvalidAnnealingSchedule)
}

func TestApplyFlags_OverridesTimeLimitAndRounding(t *testing.T) {
	c := config.Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.ApplyFlags(fs)

	require.NoError(t, fs.Parse([]string{"-t", "5", "-r", "--deterministic", "--seed", "42"}))

	require.Equal(t, 5*time.Second, c.TimeLimit)
	require.True(t, c.RoundDistances)
	require.True(t, c.Deterministic)
	require.Equal(t, int64(42), c.Seed)
}

func TestGeneticOptions_DisablesEliteEducationAboveSizeLimit(t *testing.T) {
	c := config.Default()
	c.EliteEducationProblemSizeLimit = 50

	require.True(t, c.GeneticOptions(20).EliteEducation)
	require.False(t, c.GeneticOptions(100).EliteEducation)
}

func TestValidate_RejectsNoImprovementBoundAtOrAboveRestartThreshold(t *testing.T) {
	c := config.Default()
	c.RestartAfterNoImprovement = 100
	c.MaxIterationsWithoutImprovement = 100
	require.ErrorIs(t, c.Validate(), config.ErrNoImprovementBoundUnreachable)
}

func TestPopulationOptions_UsesRestartThresholdIndependentlyOfNoImprovementBound(t *testing.T) {
	c := config.Default()
	c.MaxIterationsWithoutImprovement = 10
	c.RestartAfterNoImprovement = 500

	opts := c.PopulationOptions()
	require.Equal(t, 500, opts.RestartAfter)
	require.Equal(t, 10, c.GeneticOptions(20).MaxNoImprovement)
}

func TestPopulationOptions_CarriesSizingAndDiversityKnobs(t *testing.T) {
	c := config.Default()
	c.MinPopulationSize = 7
	c.PopulationLambda = 3
	c.NumDiversityClosest = 2
	c.NumElites = 1

	opts := c.PopulationOptions()
	require.Equal(t, 7, opts.Mu)
	require.Equal(t, 3, opts.Lambda)
	require.Equal(t, 2, opts.NumClosest)
	require.Equal(t, 1, opts.NumElites)
}
