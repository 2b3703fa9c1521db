package attestation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainsafe/social-verifier/pkg/ethereum"
)

const (
	twitterUserIDDigits  = 10
	requestSuffixLen     = 6
	integrityCodeBytes   = 8
	merkleProofBytes     = 32
	attestationDataBytes = 64
)

// ErrNotImplemented is returned by providers that have no real backend.
var ErrNotImplemented = errors.New("real Flare verification not implemented")

// Provider attests tweet-to-wallet links.
type Provider interface {
	Attest(ctx context.Context, req Request) (*Result, error)
}

// MockProvider fabricates a successful attestation for every request. It never
// looks at tweet content.
type MockProvider struct {
	entropy    *ethereum.Entropy
	validators int
	now        func() time.Time
}

// NewMockProvider creates a MockProvider reporting validators signers.
func NewMockProvider(entropy *ethereum.Entropy, validators int) *MockProvider {
	if entropy == nil {
		entropy = ethereum.NewEntropy()
	}
	return &MockProvider{
		entropy:    entropy,
		validators: validators,
		now:        time.Now,
	}
}

// Attest implements Provider.
func (p *MockProvider) Attest(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := p.now()
	twitterUserID := p.entropy.Digits(twitterUserIDDigits)
	proof := Proof{
		MerkleProof:     p.entropy.Hex(merkleProofBytes),
		AttestationData: p.entropy.Hex(attestationDataBytes),
	}

	resp := &FDCResponse{
		RequestID:            fmt.Sprintf("req_%d_%s", now.UnixMilli(), p.entropy.Token(requestSuffixLen)),
		AttestationType:      TypeWeb2JSON,
		SourceID:             SourceTwitter,
		MessageIntegrityCode: p.entropy.Hex(integrityCodeBytes),
		RequestBody: RequestBody{
			TweetID:               req.TweetID,
			ExpectedTwitterUserID: twitterUserID,
			WalletAddress:         req.WalletAddress,
		},
		ResponseBody: ResponseBody{
			Tweet: Tweet{
				ID:   req.TweetID,
				Text: req.ExpectedContent,
				User: TweetUser{
					ID:         twitterUserID,
					ScreenName: req.TwitterHandle,
					Name:       req.TwitterHandle,
				},
				CreatedAt: now.UTC(),
			},
			VerificationStatus: StatusVerified,
			WalletMentioned:    true,
			HashtagsPresent:    []string{"FlareNetwork", "Web3Verification", "AIETF"},
		},
		Proof: proof,
	}

	return &Result{
		Response: resp,
		Attestation: Attestation{
			AttestationID:    fmt.Sprintf("att_%d", now.UnixMilli()),
			MerkleProof:      proof.MerkleProof,
			ConsensusReached: true,
			Validators:       p.validators,
		},
		TwitterUserID: twitterUserID,
		TxHash:        p.entropy.TxHash(),
	}, nil
}

// Unimplemented is the placeholder for a real FDC integration.
type Unimplemented struct{}

// Attest always fails with ErrNotImplemented.
func (Unimplemented) Attest(context.Context, Request) (*Result, error) {
	return nil, ErrNotImplemented
}
