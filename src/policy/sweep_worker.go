package policy

import (
	"claims-processor/pkg/logger"
	"claims-processor/src/metrics"
	"claims-processor/src/model"

	"github.com/robfig/cron"
)

const sweepWorkerName = "PolicySweepWorker"

// SweepWorker periodically marks lapsed active policies EXPIRED so the
// existence gate stops accepting claims against them.
type SweepWorker struct {
	repository Repository
	cron       *cron.Cron
}

func NewSweepWorker(repository Repository) *SweepWorker {
	return &SweepWorker{
		repository: repository,
		cron:       cron.New(),
	}
}

func (sw *SweepWorker) GetServiceName() string {
	return sweepWorkerName
}

func (sw *SweepWorker) StartService() {
	err := sw.cron.AddFunc("@every 1h", func() { sw.expireLapsedPolicies() })
	if err != nil {
		logger.Default().Errorf(err, "Could not add function to %s", sweepWorkerName)
		return
	}

	sw.cron.Start()
}

func (sw *SweepWorker) expireLapsedPolicies() {
	sweepLogger := logger.Default()

	lapsed, err := sw.repository.FindExpiringPolicies(0)
	if err != nil {
		sweepLogger.Error(err, "Could not read lapsed policies from database")
		return
	}

	for _, policy := range lapsed {
		updated, err := sw.repository.UpdatePolicyStatus(policy.PolicyNumber, model.PolicyStatusExpired)
		if err != nil {
			sweepLogger.Errorf(err, "Could not expire policy: %s", policy.PolicyNumber)
			continue
		}
		if updated {
			metrics.PoliciesExpired.Inc()
			sweepLogger.Infof("Policy expired: %s (end date %s)", policy.PolicyNumber, policy.EndDate)
		}
	}
}
