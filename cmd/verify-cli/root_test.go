package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/social-verifier/pkg/agent"
	agentservice "github.com/chainsafe/social-verifier/pkg/agent/service"
	"github.com/chainsafe/social-verifier/pkg/attestation"
	"github.com/chainsafe/social-verifier/pkg/bridge"
	"github.com/chainsafe/social-verifier/pkg/ethereum"
	"github.com/chainsafe/social-verifier/pkg/verification"
	"github.com/chainsafe/social-verifier/pkg/verification/service"
	"github.com/chainsafe/social-verifier/pkg/verificationstore"
	"github.com/chainsafe/social-verifier/pkg/wizard"
)

const testWallet = "0xabcdef1234567890abcdef1234567890abcdef12"

// newTestAPI serves the real handlers. Every unforced verification fails.
func newTestAPI(t *testing.T) string {
	t.Helper()

	entropy := ethereum.NewSeededEntropy([32]byte{3})
	sim, err := bridge.NewSimulator("flow", "flare-coston2", "0.001", entropy)
	require.NoError(t, err)

	verifier := service.NewService(
		verificationstore.NewMemoryStore(),
		sim,
		service.Providers{Mock: attestation.NewMockProvider(entropy, 7)},
		entropy,
		1,
		zap.NewNop(),
	)

	r := chi.NewRouter()
	service.RegisterRoutes(r, verifier, zap.NewNop())
	agentservice.RegisterRoutes(r, agentservice.NewService(nil, entropy, agentservice.Options{}, zap.NewNop()), zap.NewNop())

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL
}

func execute(t *testing.T, apiURL, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(append([]string{"--api-url", apiURL}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestWizard_TweetFromFlags(t *testing.T) {
	apiURL := newTestAPI(t)

	out, progress, err := execute(t, apiURL, "",
		"wizard", "--pacing=false", "-o", "json",
		"--method", "tweet",
		"--wallet", testWallet,
		"--handle", "@alice",
		"--tweet-url", "https://x.com/alice/status/99",
	)
	require.NoError(t, err)

	var res wizard.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, testWallet, res.WalletAddress)
	assert.Equal(t, "alice", res.TwitterHandle)
	assert.Equal(t, "99", res.TweetID)
	assert.NotEmpty(t, res.TxHash)

	assert.Contains(t, progress, verification.TweetContent(testWallet))
	for _, label := range markLabels {
		assert.Contains(t, progress, "✓ "+label)
	}
}

func TestWizard_PromptsAndRetriesDetails(t *testing.T) {
	apiURL := newTestAPI(t)

	// an empty tweet URL is rejected, then the details are asked again
	stdin := strings.Join([]string{
		"",
		testWallet,
		"alice",
		"",
		"alice",
		"https://twitter.com/alice/status/7",
	}, "\n") + "\n"

	out, progress, err := execute(t, apiURL, stdin, "wizard", "--pacing=false")
	require.NoError(t, err)

	assert.Contains(t, progress, "✗ "+wizard.ErrMissingFields.Error())
	assert.Contains(t, out, "Successfully verified!")
	assert.Contains(t, out, "Twitter Account:   @alice")
	assert.Contains(t, out, "/tx/0x")
}

func TestWizard_Bio(t *testing.T) {
	apiURL := newTestAPI(t)

	out, progress, err := execute(t, apiURL, "",
		"wizard", "--pacing=false",
		"--method", "bio",
		"--wallet", testWallet,
		"--handle", "bob",
	)
	require.NoError(t, err)

	assert.Contains(t, progress, verification.BioCode(testWallet))
	assert.Contains(t, out, "Request ID:        req_")
}

func TestWizard_RandomModeFailure(t *testing.T) {
	apiURL := newTestAPI(t)

	_, _, err := execute(t, apiURL, "",
		"wizard", "--pacing=false", "--test-mode", "random",
		"--method", "tweet",
		"--wallet", testWallet,
		"--handle", "alice",
		"--tweet-url", "https://x.com/alice/status/99",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verification failed")
	assert.Contains(t, err.Error(), "Troubleshooting:")
}

func TestWizard_InteractiveFailureStartsOver(t *testing.T) {
	apiURL := newTestAPI(t)

	// both rounds fail; the third method prompt hits end of input
	stdin := strings.Join([]string{
		"",
		testWallet,
		"alice",
		"https://x.com/alice/status/99",
		"tweet",
		testWallet,
		"bob",
		"https://x.com/bob/status/100",
	}, "\n") + "\n"

	_, progress, err := execute(t, apiURL, stdin, "wizard", "--pacing=false", "--test-mode", "random")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no answer for "Verification method [tweet/bio]"`)

	assert.Equal(t, 2, strings.Count(progress, "✗ Verification failed: "))
	assert.Equal(t, 2, strings.Count(progress, "Starting over."))
	assert.Equal(t, 2, strings.Count(progress, verification.TweetContent(testWallet)))
}

func TestWizard_ReasksInvalidWallet(t *testing.T) {
	apiURL := newTestAPI(t)

	stdin := strings.Join([]string{
		"",
		"nothex",
		"0x123",
		testWallet,
		"alice",
		"https://x.com/alice/status/99",
	}, "\n") + "\n"

	out, progress, err := execute(t, apiURL, stdin, "wizard", "--pacing=false")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(progress, "✗ "+wizard.ErrInvalidWallet.Error()))
	assert.Equal(t, 3, strings.Count(progress, "Wallet address: "))
	assert.Contains(t, out, "Successfully verified!")
}

func TestWizard_FlagWalletInvalid(t *testing.T) {
	_, _, err := execute(t, newTestAPI(t), "",
		"wizard", "--pacing=false",
		"--method", "bio",
		"--wallet", "nothex",
		"--handle", "bob",
	)
	assert.ErrorIs(t, err, wizard.ErrInvalidWallet)
}

func TestWizard_UnknownMethod(t *testing.T) {
	_, _, err := execute(t, newTestAPI(t), "", "wizard", "--method", "dm")
	assert.ErrorIs(t, err, wizard.ErrUnknownMethod)
}

func TestStatus(t *testing.T) {
	apiURL := newTestAPI(t)

	out, _, err := execute(t, apiURL, "", "status", testWallet)
	require.NoError(t, err)
	assert.Equal(t, "No Flare verification found for this wallet address\n", out)

	_, _, err = execute(t, apiURL, "",
		"wizard", "--pacing=false",
		"--method", "tweet",
		"--wallet", testWallet,
		"--handle", "alice",
		"--tweet-url", "https://x.com/alice/status/99",
	)
	require.NoError(t, err)

	out, _, err = execute(t, apiURL, "", "status", testWallet, "-o", "json")
	require.NoError(t, err)

	var rec verification.Record
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.True(t, rec.Verified)
	assert.Equal(t, "alice", rec.TwitterHandle)
}

func TestAgent(t *testing.T) {
	apiURL := newTestAPI(t)

	out, _, err := execute(t, apiURL, "", "agent")
	require.NoError(t, err)
	assert.Contains(t, out, "showing fallback data")
	assert.Contains(t, out, agent.FallbackAddress)

	out, _, err = execute(t, apiURL, "", "agent", "authorize", "--agent", testWallet, "--authorized=false", "-o", "json")
	require.NoError(t, err)

	var res agent.ActionResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, agent.ActionAuthorize, res.Action)
	require.NotNil(t, res.Authorized)
	assert.False(t, *res.Authorized)

	_, _, err = execute(t, apiURL, "", "agent", "set")
	assert.Error(t, err)
}

func TestInvalidOutput(t *testing.T) {
	_, _, err := execute(t, newTestAPI(t), "", "agent", "-o", "yaml")
	assert.ErrorContains(t, err, "invalid --output")
}
