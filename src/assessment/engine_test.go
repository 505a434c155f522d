package assessment

import (
	"math/rand"
	"strings"
	"testing"

	"claims-processor/pkg/logger"
	"claims-processor/src/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{})
	m.Run()
}

func testClaim(claimType model.ClaimType, amount string) *model.Claim {
	return &model.Claim{
		ClaimNumber:   "CLM-TEST0001",
		PolicyNumber:  "POL001",
		ClaimType:     claimType,
		ClaimedAmount: decimal.RequireFromString(amount),
		Description:   "test claim",
		Status:        model.ClaimStatusSubmitted,
		Priority:      model.ClaimPriorityNormal,
	}
}

func TestApprovedAmountFollowsMultiplierTable(t *testing.T) {
	engine := NewEngine(rand.NewSource(1))

	cases := []struct {
		claimType model.ClaimType
		amount    string
		approved  string
	}{
		{model.ClaimTypeAccident, "1000.00", "850.00"},
		{model.ClaimTypeIllness, "1000.00", "900.00"},
		{model.ClaimTypePropertyDamage, "1000.00", "800.00"},
		{model.ClaimTypeTheft, "1000.00", "750.00"},
		{model.ClaimTypeNaturalDisaster, "1000.00", "950.00"},
		{model.ClaimTypeTravelCancelation, "1000.00", "700.00"},
		{model.ClaimTypeDeath, "1000.00", "1000.00"},
		{model.ClaimTypeDisability, "1000.00", "900.00"},
		{model.ClaimTypeOther, "1000.00", "600.00"},
	}

	for _, tc := range cases {
		t.Run(string(tc.claimType), func(t *testing.T) {
			assessment := engine.PerformStandardAssessment(testClaim(tc.claimType, tc.amount))
			assert.True(t, assessment.ApprovedAmount.Equal(decimal.RequireFromString(tc.approved)),
				"expected %s, got %s", tc.approved, assessment.ApprovedAmount)
		})
	}
}

func TestRiskScoreStaysWithinBounds(t *testing.T) {
	engine := NewEngine(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		assessment := engine.PerformStandardAssessment(testClaim(model.ClaimTypeAccident, "500.00"))
		assert.GreaterOrEqual(t, assessment.RiskScore, 10)
		assert.LessOrEqual(t, assessment.RiskScore, 100)
	}
}

func TestRiskScoreAddsAmountAndTypePenalties(t *testing.T) {
	// Base draw is in [10, 59]; a theft claim over the high-amount threshold
	// adds 20 and 15 on top of it.
	engine := NewEngine(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		assessment := engine.PerformStandardAssessment(testClaim(model.ClaimTypeTheft, "20000.00"))
		assert.GreaterOrEqual(t, assessment.RiskScore, 45)
		assert.LessOrEqual(t, assessment.RiskScore, 94)
	}
}

func TestSameSeedProducesSameAssessment(t *testing.T) {
	first := NewEngine(rand.NewSource(99)).PerformStandardAssessment(testClaim(model.ClaimTypeIllness, "2500.00"))
	second := NewEngine(rand.NewSource(99)).PerformStandardAssessment(testClaim(model.ClaimTypeIllness, "2500.00"))

	assert.Equal(t, first.RiskScore, second.RiskScore)
	assert.Equal(t, first.FraudFlag, second.FraudFlag)
	assert.Equal(t, first.ProcessingTimeMs, second.ProcessingTimeMs)
}

func TestHighAmountAlwaysFlagsFraud(t *testing.T) {
	engine := NewEngine(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		assessment := engine.PerformStandardAssessment(testClaim(model.ClaimTypeAccident, "50000.01"))
		assert.True(t, assessment.FraudFlag, "claims over the amount threshold must be flagged")
	}
}

func TestFraudFlagMatchesNotesAndRiskScore(t *testing.T) {
	engine := NewEngine(rand.NewSource(11))

	for i := 0; i < 100; i++ {
		assessment := engine.PerformStandardAssessment(testClaim(model.ClaimTypeTheft, "20000.00"))

		require.Contains(t, assessment.AssessmentNotes, "Risk score: ")
		if assessment.FraudFlag {
			assert.Contains(t, assessment.AssessmentNotes, "Flagged for potential fraud.")
		} else {
			assert.Contains(t, assessment.AssessmentNotes, "No fraud indicators detected.")
			assert.LessOrEqual(t, assessment.RiskScore, 70)
		}
	}
}

func TestProcessingTimeStaysWithinSimulatedRange(t *testing.T) {
	engine := NewEngine(rand.NewSource(5))

	for i := 0; i < 100; i++ {
		assessment := engine.PerformStandardAssessment(testClaim(model.ClaimTypeOther, "100.00"))
		assert.GreaterOrEqual(t, assessment.ProcessingTimeMs, 300)
		assert.Less(t, assessment.ProcessingTimeMs, 1000)
	}
}

func TestStandardAssessorIDFormat(t *testing.T) {
	engine := NewEngine(rand.NewSource(2))

	assessment := engine.PerformStandardAssessment(testClaim(model.ClaimTypeAccident, "100.00"))
	require.True(t, strings.HasPrefix(assessment.AssessorID, "KAFKA_ASSESSOR_"))
	assert.Len(t, assessment.AssessorID, len("KAFKA_ASSESSOR_")+6)
}

func TestExpressAssessmentUsesFixedFormula(t *testing.T) {
	engine := NewEngine(rand.NewSource(8))

	assessment := engine.PerformExpressAssessment(testClaim(model.ClaimTypeAccident, "60000.00"))

	assert.True(t, assessment.ApprovedAmount.Equal(decimal.RequireFromString("54000.00")),
		"expected 54000.00, got %s", assessment.ApprovedAmount)
	assert.Equal(t, 15, assessment.RiskScore)
	assert.False(t, assessment.FraudFlag)
	assert.Equal(t, ExpressAssessorID, assessment.AssessorID)
	assert.Equal(t, 200, assessment.ProcessingTimeMs)
	assert.Equal(t, "Express assessment for high priority claim", assessment.AssessmentNotes)
}

func TestUnknownClaimTypeFallsBackToOtherMultiplier(t *testing.T) {
	engine := NewEngine(rand.NewSource(4))

	claim := testClaim(model.ClaimType("VOLCANO"), "1000.00")
	assessment := engine.PerformStandardAssessment(claim)
	assert.True(t, assessment.ApprovedAmount.Equal(decimal.RequireFromString("600.00")))
}
