package wizard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/chainsafe/social-verifier/pkg/ethereum"
	"github.com/chainsafe/social-verifier/pkg/verification"
)

const wizardWallet = "0x1234567890123456789012345678901234567890"

type fakeVerifier struct {
	calls        int
	lastReq      *verification.VerifyRequest
	forceSuccess bool
	err          error
}

func (f *fakeVerifier) Verify(_ context.Context, req *verification.VerifyRequest, forceSuccess bool) (*verification.VerifyResponse, error) {
	f.calls++
	f.lastReq = req
	f.forceSuccess = forceSuccess
	if f.err != nil {
		return nil, f.err
	}
	return &verification.VerifyResponse{
		Success:         true,
		TransactionHash: "0xfeed",
		Verification: &verification.Record{
			WalletAddress:      req.WalletAddress,
			TwitterHandle:      req.TwitterHandle,
			VerificationMethod: verification.MethodFlare,
			Verified:           true,
			TweetID:            "42",
			FlareVerification:  verification.FlareVerification{RequestID: "flare_req_1"},
		},
	}, nil
}

type recordingSleeper struct {
	waits []time.Duration
}

func (s *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return nil
}

func newTestWizard(v Verifier, sleeper Sleeper, listener func(Snapshot)) *Wizard {
	return New(v,
		WithSleeper(sleeper),
		WithHasher(ethereum.NewSeededEntropy([32]byte{3})),
		WithClock(func() time.Time { return time.UnixMilli(1700000000000) }),
		WithListener(listener),
	)
}

func fillTweet(t *testing.T, w *Wizard) {
	t.Helper()
	if err := w.SelectMethod(MethodTweet); err != nil {
		t.Fatalf("SelectMethod() failed: %v", err)
	}
	w.SetWallet("  " + wizardWallet + " ")
	w.SetTwitterHandle("@alice")
	w.SetTweetURL("https://x.com/alice/status/42")
}

func TestWizard_InitialState(t *testing.T) {
	w := newTestWizard(&fakeVerifier{}, &recordingSleeper{}, nil)

	if w.Step() != StepChooseMethod || w.Method() != MethodTweet || w.TestMode() != TestModeSuccess {
		t.Fatalf("unexpected initial state step=%v method=%v mode=%v", w.Step(), w.Method(), w.TestMode())
	}
	if w.Result() != nil || w.Err() != nil || w.Marks() != (Marks{}) {
		t.Fatal("expected a clean wizard")
	}
}

func TestWizard_TweetSuccess(t *testing.T) {
	verifier := &fakeVerifier{}
	sleeper := &recordingSleeper{}
	var seen []Snapshot
	w := newTestWizard(verifier, sleeper, func(s Snapshot) { seen = append(seen, s) })

	fillTweet(t, w)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	if w.Step() != StepComplete {
		t.Fatalf("expected complete, got %v", w.Step())
	}
	if w.Marks() != (Marks{Submit: true, Attest: true, Prove: true, Complete: true}) {
		t.Fatalf("expected all marks, got %+v", w.Marks())
	}

	if verifier.calls != 1 || !verifier.forceSuccess {
		t.Fatalf("expected one forced call, got calls=%d force=%v", verifier.calls, verifier.forceSuccess)
	}
	if verifier.lastReq.TwitterHandle != "alice" || verifier.lastReq.WalletAddress != wizardWallet {
		t.Fatalf("unexpected request %+v", verifier.lastReq)
	}
	if verifier.lastReq.TweetURL != "https://x.com/alice/status/42" {
		t.Fatalf("tweet URL must be sent as typed, got %q", verifier.lastReq.TweetURL)
	}

	wantWaits := []time.Duration{2 * time.Second, 3 * time.Second, 2 * time.Second}
	if len(sleeper.waits) != len(wantWaits) {
		t.Fatalf("expected waits %v, got %v", wantWaits, sleeper.waits)
	}
	for i := range wantWaits {
		if sleeper.waits[i] != wantWaits[i] {
			t.Fatalf("expected waits %v, got %v", wantWaits, sleeper.waits)
		}
	}

	res := w.Result()
	if res.TxHash != "0xfeed" || res.RequestID != "flare_req_1" || res.TweetID != "42" || res.Record == nil {
		t.Fatalf("unexpected result %+v", res)
	}

	// marks are set strictly in order
	var order []Marks
	for _, s := range seen {
		if s.Step == StepProcessing {
			order = append(order, s.Marks)
		}
	}
	want := []Marks{
		{},
		{Submit: true},
		{Submit: true, Attest: true},
		{Submit: true, Attest: true, Prove: true},
		{Submit: true, Attest: true, Prove: true, Complete: true},
	}
	if len(order) != len(want) {
		t.Fatalf("expected %d processing snapshots, got %d: %+v", len(want), len(order), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("snapshot %d: expected %+v, got %+v", i, want[i], order[i])
		}
	}
}

func TestWizard_RandomModeDoesNotForce(t *testing.T) {
	verifier := &fakeVerifier{}
	w := newTestWizard(verifier, &recordingSleeper{}, nil)
	w.SetTestMode(TestModeRandom)

	fillTweet(t, w)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if verifier.forceSuccess {
		t.Fatal("random mode must not force success")
	}
}

func TestWizard_APIErrorResetsToChooseMethod(t *testing.T) {
	apiErr := &APIError{StatusCode: 400, Message: "Tweet does not contain the specified wallet address.", Troubleshooting: verification.Troubleshooting}
	sleeper := &recordingSleeper{}
	w := newTestWizard(&fakeVerifier{err: apiErr}, sleeper, nil)

	fillTweet(t, w)
	err := w.Start(context.Background())
	if !errors.Is(err, apiErr) {
		t.Fatalf("expected API error, got %v", err)
	}

	if w.Step() != StepChooseMethod {
		t.Fatalf("expected reset to choose-method, got %v", w.Step())
	}
	if w.Marks() != (Marks{}) {
		t.Fatalf("marks must be cleared, got %+v", w.Marks())
	}
	if w.Wallet() != wizardWallet || w.TwitterHandle() != "@alice" {
		t.Fatal("typed fields must survive a failure")
	}
	if !strings.Contains(w.Err().Error(), "\n\nTroubleshooting:\n• ") {
		t.Fatalf("expected troubleshooting text, got %q", w.Err().Error())
	}
	if len(sleeper.waits) != 0 {
		t.Fatalf("no pacing after a failed submit, got %v", sleeper.waits)
	}
}

func TestWizard_SleeperCancellationResets(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sleeper := SleeperFunc(func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	})
	w := newTestWizard(&fakeVerifier{}, sleeper, nil)

	fillTweet(t, w)
	if err := w.Start(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if w.Step() != StepChooseMethod || w.Result() != nil {
		t.Fatalf("expected reset, got step=%v", w.Step())
	}
}

func TestWizard_BioSuccess(t *testing.T) {
	verifier := &fakeVerifier{}
	sleeper := &recordingSleeper{}
	w := newTestWizard(verifier, sleeper, nil)

	if err := w.SelectMethod(MethodBio); err != nil {
		t.Fatalf("SelectMethod() failed: %v", err)
	}
	w.SetWallet("1234abcd")
	w.SetTwitterHandle("@bob")

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if verifier.calls != 0 {
		t.Fatal("bio verification must not call the API")
	}

	wantWaits := []time.Duration{2 * time.Second, 3 * time.Second, 2 * time.Second, time.Second}
	if len(sleeper.waits) != len(wantWaits) {
		t.Fatalf("expected waits %v, got %v", wantWaits, sleeper.waits)
	}

	res := w.Result()
	if w.Step() != StepComplete || res.VerificationMethod != "bio" || res.TwitterHandle != "bob" || res.WalletAddress != "1234abcd" {
		t.Fatalf("unexpected bio result %+v", res)
	}
	if res.RequestID != "req_1700000000000" || len(res.TxHash) != 66 {
		t.Fatalf("unexpected bio identifiers %+v", res)
	}
}

func TestWizard_StartValidation(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		wallet string
		handle string
		tweet  string
		want   error
	}{
		{"bad wallet", MethodTweet, "0x123", "@alice", "42", ErrInvalidWallet},
		{"missing tweet", MethodTweet, wizardWallet, "@alice", "", ErrMissingFields},
		{"missing handle", MethodTweet, wizardWallet, "", "42", ErrMissingFields},
		{"bad tweet url", MethodTweet, wizardWallet, "@alice", "https://x.com/alice", ErrInvalidTweetURL},
		{"bio missing handle", MethodBio, wizardWallet, "", "", ErrMissingHandle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &fakeVerifier{}
			w := newTestWizard(verifier, &recordingSleeper{}, nil)
			if err := w.SelectMethod(tt.method); err != nil {
				t.Fatalf("SelectMethod() failed: %v", err)
			}
			w.SetWallet(tt.wallet)
			w.SetTwitterHandle(tt.handle)
			w.SetTweetURL(tt.tweet)

			if err := w.Start(context.Background()); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if w.Step() != StepFillDetails || verifier.calls != 0 {
				t.Fatalf("validation must not leave the details step, got %v", w.Step())
			}
		})
	}
}

func TestWizard_StartRequiresDetailsStep(t *testing.T) {
	w := newTestWizard(&fakeVerifier{}, &recordingSleeper{}, nil)
	if err := w.Start(context.Background()); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if err := w.SelectMethod("dm"); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestWizard_TemplatesAndRestart(t *testing.T) {
	w := newTestWizard(&fakeVerifier{}, &recordingSleeper{}, nil)

	if got := w.TweetTemplate(); !strings.Contains(got, "[WALLET_ADDRESS]") {
		t.Fatalf("expected placeholder, got %q", got)
	}
	if got := w.BioCode(); got != "flare-verify:[WALLET_ADDRESS]" {
		t.Fatalf("unexpected bio code %q", got)
	}

	w.SetWallet(wizardWallet)
	want := "Verifying my wallet " + wizardWallet + " on Flare Network #FlareNetwork #Web3Verification"
	if got := w.TweetTemplate(); got != want {
		t.Fatalf("TweetTemplate() = %q, want %q", got, want)
	}
	if got := w.BioCode(); got != "flare-verify:"+wizardWallet {
		t.Fatalf("unexpected bio code %q", got)
	}

	w.SetTestMode(TestModeRandom)
	fillTweet(t, w)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	w.Restart()
	if w.Step() != StepChooseMethod || w.Wallet() != "" || w.TweetURL() != "" || w.Result() != nil || w.Marks() != (Marks{}) {
		t.Fatal("Restart() must clear the session")
	}
	if w.TestMode() != TestModeRandom {
		t.Fatal("Restart() keeps the test mode")
	}
}
