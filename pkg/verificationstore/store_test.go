package verificationstore

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chainsafe/social-verifier/pkg/address"
	"github.com/chainsafe/social-verifier/pkg/attestation"
	"github.com/chainsafe/social-verifier/pkg/bridge"
	"github.com/chainsafe/social-verifier/pkg/verification"
)

const (
	ethWallet  = "0x1234567890123456789012345678901234567890"
	flowWallet = "1234abcd5678ef90"
)

func newTestRecord(wallet string, chain address.ChainType) *verification.Record {
	rec := &verification.Record{
		WalletAddress:         wallet,
		OriginalWalletAddress: wallet,
		BlockchainType:        chain,
		TwitterHandle:         "alice",
		VerificationMethod:    verification.MethodFlare,
		Verified:              true,
		VerifiedAt:            time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		TweetID:               "42",
		FlareVerification: verification.FlareVerification{
			RequestID:      "req_1_abc",
			TxHash:         "0xabcd",
			TweetID:        "42",
			TwitterUserID:  "1234567890",
			TwitterHandle:  "alice",
			WalletAddress:  wallet,
			BlockchainType: chain,
			FDCAttestation: attestation.Attestation{
				AttestationID:    "att_1",
				MerkleProof:      "0xfeed",
				ConsensusReached: true,
				Validators:       7,
			},
		},
	}
	if chain == address.Flow {
		rec.IsCrosschainVerification = true
		rec.BridgeInfo = &bridge.Info{
			BridgeID:         "bridge_1",
			SourceChain:      "flow",
			DestinationChain: "flare-coston2",
			SourceAddress:    wallet,
			GasAmount:        "0.001",
			BridgeStatus:     bridge.StatusCompleted,
			BridgeTxHash:     "0xbeef",
			EstimatedTime:    "30 seconds",
		}
	}
	return rec
}

// runStoreContract exercises the semantics every backend must share.
func runStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	exists, err := s.Exists(ctx, ethWallet)
	require.NoError(t, err)
	require.False(t, exists)

	_, err = s.Get(ctx, ethWallet)
	require.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	eth := newTestRecord(ethWallet, address.Ethereum)
	require.NoError(t, s.Save(ctx, eth))

	flow := newTestRecord(flowWallet, address.Flow)
	require.NoError(t, s.Save(ctx, flow))

	exists, err = s.Exists(ctx, ethWallet)
	require.NoError(t, err)
	require.True(t, exists)

	got, err := s.Get(ctx, ethWallet)
	require.NoError(t, err)
	require.Equal(t, eth.WalletAddress, got.WalletAddress)
	require.Equal(t, eth.BlockchainType, got.BlockchainType)
	require.Equal(t, eth.TweetID, got.TweetID)
	require.True(t, eth.VerifiedAt.Equal(got.VerifiedAt))
	require.Nil(t, got.BridgeInfo)
	require.Equal(t, eth.FlareVerification.FDCAttestation, got.FlareVerification.FDCAttestation)

	gotFlow, err := s.Get(ctx, flowWallet)
	require.NoError(t, err)
	require.True(t, gotFlow.IsCrosschainVerification)
	require.NotNil(t, gotFlow.BridgeInfo)
	require.Equal(t, *flow.BridgeInfo, *gotFlow.BridgeInfo)

	// Save replaces
	replaced := newTestRecord(ethWallet, address.Ethereum)
	replaced.TweetID = "43"
	replaced.TwitterHandle = "bob"
	require.NoError(t, s.Save(ctx, replaced))

	got, err = s.Get(ctx, ethWallet)
	require.NoError(t, err)
	require.Equal(t, "43", got.TweetID)
	require.Equal(t, "bob", got.TwitterHandle)

	// tweet ids have no length cap
	longID := strings.Repeat("9", 40)
	replaced.TweetID = longID
	replaced.FlareVerification.TweetID = longID
	require.NoError(t, s.Save(ctx, replaced))

	got, err = s.Get(ctx, ethWallet)
	require.NoError(t, err)
	require.Equal(t, longID, got.TweetID)

	n, err = s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestMemoryStore_Contract(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec := newTestRecord(flowWallet, address.Flow)
	require.NoError(t, s.Save(ctx, rec))

	rec.TweetID = "mutated"
	rec.BridgeInfo.BridgeStatus = "mutated"

	got, err := s.Get(ctx, flowWallet)
	require.NoError(t, err)
	require.Equal(t, "42", got.TweetID)
	require.Equal(t, bridge.StatusCompleted, got.BridgeInfo.BridgeStatus)

	got.BridgeInfo.BridgeStatus = "mutated"
	again, err := s.Get(ctx, flowWallet)
	require.NoError(t, err)
	require.Equal(t, bridge.StatusCompleted, again.BridgeInfo.BridgeStatus)
}
