package assessment

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"claims-processor/pkg/logger"
	"claims-processor/src/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const ExpressAssessorID = "EXPRESS_ASSESSOR"

var approvalMultipliers = map[model.ClaimType]decimal.Decimal{
	model.ClaimTypeAccident:          decimal.RequireFromString("0.85"),
	model.ClaimTypeIllness:           decimal.RequireFromString("0.90"),
	model.ClaimTypePropertyDamage:    decimal.RequireFromString("0.80"),
	model.ClaimTypeTheft:             decimal.RequireFromString("0.75"),
	model.ClaimTypeNaturalDisaster:   decimal.RequireFromString("0.95"),
	model.ClaimTypeTravelCancelation: decimal.RequireFromString("0.70"),
	model.ClaimTypeDeath:             decimal.RequireFromString("1.00"),
	model.ClaimTypeDisability:        decimal.RequireFromString("0.90"),
	model.ClaimTypeOther:             decimal.RequireFromString("0.60"),
}

var (
	highAmountThreshold  = decimal.NewFromInt(10000)
	fraudAmountThreshold = decimal.NewFromInt(50000)
	expressMultiplier    = decimal.RequireFromString("0.90")
)

// Engine computes claim assessments. Assessments may run concurrently, so
// draws from the shared source are serialized.
type Engine struct {
	mu     sync.Mutex
	random *rand.Rand
	logger *logger.Logger
}

// NewEngine builds an engine drawing from the given source. A nil source
// gets a time-based seed.
func NewEngine(source rand.Source) *Engine {
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}
	return &Engine{
		random: rand.New(source),
		logger: logger.Default(),
	}
}

// PerformStandardAssessment runs the rule-based standard assessment. The
// risk score is drawn once and that same score feeds the fraud decision, the
// notes text and the stored row.
func (e *Engine) PerformStandardAssessment(claim *model.Claim) *model.ClaimAssessment {
	e.logger.Debugf("[ASSESSMENT] Starting standard claim assessment for: %s", claim.ClaimNumber)

	riskScore := e.calculateRiskScore(claim)
	fraudFlag := riskScore > 70 || claim.ClaimedAmount.GreaterThan(fraudAmountThreshold)

	assessment := &model.ClaimAssessment{
		ClaimNumber:      claim.ClaimNumber,
		AssessorID:       "KAFKA_ASSESSOR_" + assessorSuffix(),
		ApprovedAmount:   calculateApprovedAmount(claim),
		RiskScore:        riskScore,
		FraudFlag:        fraudFlag,
		AssessmentNotes:  generateAssessmentNotes(claim.ClaimType, riskScore, fraudFlag),
		ProcessingTimeMs: e.simulateProcessingTime(),
	}

	if fraudFlag {
		e.logger.Warnf("[FRAUD-DETECTION] Fraud indicators detected for claim: %s | Risk Score: %d | Amount: %s",
			claim.ClaimNumber, riskScore, claim.ClaimedAmount)
	}

	e.logger.Debugf("[ASSESSMENT] Standard assessment completed for: %s | Approved: %s | Risk: %d | Fraud: %t",
		claim.ClaimNumber, assessment.ApprovedAmount, assessment.RiskScore, assessment.FraudFlag)

	return assessment
}

// PerformExpressAssessment is the expedited lane's fixed-formula assessment:
// no randomness, no fraud check.
func (e *Engine) PerformExpressAssessment(claim *model.Claim) *model.ClaimAssessment {
	e.logger.Debugf("[ASSESSMENT] Starting EXPRESS assessment for high priority claim: %s", claim.ClaimNumber)

	assessment := &model.ClaimAssessment{
		ClaimNumber:      claim.ClaimNumber,
		AssessorID:       ExpressAssessorID,
		ApprovedAmount:   claim.ClaimedAmount.Mul(expressMultiplier),
		RiskScore:        15,
		FraudFlag:        false,
		AssessmentNotes:  "Express assessment for high priority claim",
		ProcessingTimeMs: 200,
	}

	e.logger.Debugf("[ASSESSMENT] Express assessment completed for: %s | Approved: %s | Processing Time: %dms",
		claim.ClaimNumber, assessment.ApprovedAmount, assessment.ProcessingTimeMs)

	return assessment
}

func calculateApprovedAmount(claim *model.Claim) decimal.Decimal {
	multiplier, ok := approvalMultipliers[claim.ClaimType]
	if !ok {
		multiplier = approvalMultipliers[model.ClaimTypeOther]
	}
	return claim.ClaimedAmount.Mul(multiplier)
}

func (e *Engine) calculateRiskScore(claim *model.Claim) int {
	e.mu.Lock()
	baseScore := e.random.Intn(50) + 10
	e.mu.Unlock()

	if claim.ClaimedAmount.GreaterThan(highAmountThreshold) {
		baseScore += 20
	}

	if claim.ClaimType == model.ClaimTypeTheft || claim.ClaimType == model.ClaimTypeNaturalDisaster {
		baseScore += 15
	}

	if baseScore > 100 {
		baseScore = 100
	}
	return baseScore
}

func generateAssessmentNotes(claimType model.ClaimType, riskScore int, fraudFlag bool) string {
	verdict := "No fraud indicators detected."
	if fraudFlag {
		verdict = "Flagged for potential fraud."
	}
	return fmt.Sprintf("Standard assessment for %s claim. Risk score: %d. %s", claimType, riskScore, verdict)
}

func (e *Engine) simulateProcessingTime() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return 300 + e.random.Intn(700)
}

func assessorSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}
