package claims

import (
	"errors"
	"testing"

	"claims-processor/pkg/logger"
	"claims-processor/src/assessment"
	"claims-processor/src/database"
	"claims-processor/src/dto"
	"claims-processor/src/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{})
	m.Run()
}

type fakeIntake struct {
	standard []dto.ClaimSubmission
	urgent   []dto.ClaimSubmission
	err      error
}

func (f *fakeIntake) PublishClaimSubmission(submission dto.ClaimSubmission) error {
	if f.err != nil {
		return f.err
	}
	f.standard = append(f.standard, submission)
	return nil
}

func (f *fakeIntake) PublishHighPriorityClaim(submission dto.ClaimSubmission) error {
	if f.err != nil {
		return f.err
	}
	f.urgent = append(f.urgent, submission)
	return nil
}

func newTestService(t *testing.T, intake *fakeIntake) *Service {
	t.Helper()
	db := database.SetupTestDB(t)
	return NewService(NewRepository(db), assessment.NewRepository(db), intake)
}

func validSubmission() dto.ClaimSubmission {
	return dto.ClaimSubmission{
		PolicyNumber:  "POL001",
		ClaimType:     model.ClaimTypeIllness,
		IncidentDate:  model.NewDate(2026, 2, 10),
		ClaimedAmount: decimal.RequireFromString("1200.00"),
		Description:   "Hospital stay",
	}
}

func TestSubmitClaimPublishesToStandardIntake(t *testing.T) {
	intake := &fakeIntake{}
	service := newTestService(t, intake)

	require.NoError(t, service.SubmitClaim(validSubmission()))
	assert.Len(t, intake.standard, 1)
	assert.Empty(t, intake.urgent)
}

func TestSubmitClaimRejectsInvalidSubmission(t *testing.T) {
	intake := &fakeIntake{}
	service := newTestService(t, intake)

	submission := validSubmission()
	submission.ClaimedAmount = decimal.Zero

	err := service.SubmitClaim(submission)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid claim submission")
	assert.Empty(t, intake.standard)
}

func TestSubmitUrgentClaimForcesUrgentPriority(t *testing.T) {
	intake := &fakeIntake{}
	service := newTestService(t, intake)

	submission := validSubmission()
	submission.Priority = model.ClaimPriorityLow

	require.NoError(t, service.SubmitUrgentClaim(submission))
	require.Len(t, intake.urgent, 1)
	assert.Equal(t, model.ClaimPriorityUrgent, intake.urgent[0].Priority)
	assert.Empty(t, intake.standard)
}

func TestSubmitClaimPropagatesPublishFailure(t *testing.T) {
	intake := &fakeIntake{err: errors.New("broker unavailable")}
	service := newTestService(t, intake)

	err := service.SubmitClaim(validSubmission())
	assert.Error(t, err)
}

func TestGetLatestAssessmentReturnsNewestRow(t *testing.T) {
	intake := &fakeIntake{}
	db := database.SetupTestDB(t)
	assessments := assessment.NewRepository(db)
	service := NewService(NewRepository(db), assessments, intake)

	first := &model.ClaimAssessment{ClaimNumber: "CLM-AAAA1111", RiskScore: 30}
	second := &model.ClaimAssessment{ClaimNumber: "CLM-AAAA1111", RiskScore: 55}
	require.NoError(t, assessments.Create(first))
	require.NoError(t, assessments.Create(second))

	latest, err := service.GetLatestAssessment("CLM-AAAA1111")
	require.NoError(t, err)
	assert.Equal(t, 55, latest.RiskScore)
}
