package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Verification results
const (
	ResultVerified = "verified"
	ResultFailed   = "failed"
	ResultRejected = "rejected"
	ResultConflict = "conflict"
)

var (
	// VerificationsTotal counts verification attempts by result
	VerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flare_verifications_total",
			Help: "Total number of wallet verification attempts",
		},
		[]string{"result"},
	)

	// VerificationDuration tracks verification pipeline time
	VerificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flare_verification_duration_seconds",
			Help:    "Verification pipeline duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// BridgeSimulations counts simulated cross-chain gas relays
	BridgeSimulations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_simulations_total",
			Help: "Total number of simulated cross-chain bridge transfers",
		},
		[]string{"source_chain", "destination_chain"},
	)

	// StoredVerifications tracks records held by the verification store
	StoredVerifications = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "flare_verifications_stored",
			Help: "Number of verification records in the store",
		},
	)

	// AgentStatusReads counts agent status reads by data source (chain or fallback)
	AgentStatusReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_status_reads_total",
			Help: "Total number of agent status reads",
		},
		[]string{"source"},
	)

	// AgentActions counts simulated agent write actions
	AgentActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_actions_total",
			Help: "Total number of simulated agent actions",
		},
		[]string{"action", "status"},
	)
)
