// Package wizard drives the four-step wallet verification flow used by the CLI:
// choose a method, fill in details, watch processing, see the result.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chainsafe/social-verifier/pkg/address"
	"github.com/chainsafe/social-verifier/pkg/ethereum"
	"github.com/chainsafe/social-verifier/pkg/verification"
)

// Step is a wizard screen.
type Step int

const (
	StepChooseMethod Step = iota + 1
	StepFillDetails
	StepProcessing
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepChooseMethod:
		return "choose-method"
	case StepFillDetails:
		return "fill-details"
	case StepProcessing:
		return "processing"
	case StepComplete:
		return "complete"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Method is the proof the user publishes on Twitter.
type Method string

const (
	MethodTweet Method = verification.MethodTweet
	MethodBio   Method = verification.MethodBio
)

// TestMode decides whether the API may roll a simulated failure.
type TestMode string

const (
	TestModeSuccess TestMode = "success"
	TestModeRandom  TestMode = "random"
)

// Validation messages shown before processing starts. They leave the wizard
// where it is.
var (
	ErrInvalidWallet   = errors.New("please enter a valid wallet address first to start verification")
	ErrMissingFields   = errors.New("please fill in all fields")
	ErrInvalidTweetURL = errors.New("please use format: https://twitter.com/username/status/1234567890")
	ErrMissingHandle   = errors.New("please enter your Twitter handle")
	ErrUnknownMethod   = errors.New("unknown verification method")
	ErrNotReady        = errors.New("verification can only start from the details step")
)

var (
	tweetPacing = []time.Duration{2 * time.Second, 3 * time.Second, 2 * time.Second}
	bioPacing   = []time.Duration{2 * time.Second, 3 * time.Second, 2 * time.Second, time.Second}
)

// Marks are the processing substeps, set in order.
type Marks struct {
	Submit   bool
	Attest   bool
	Prove    bool
	Complete bool
}

// Snapshot is passed to the listener on every state change.
type Snapshot struct {
	Step  Step
	Marks Marks
}

// Result is what the Complete screen shows.
type Result struct {
	WalletAddress      string    `json:"walletAddress"`
	TwitterHandle      string    `json:"twitterHandle"`
	VerificationMethod string    `json:"verificationMethod"`
	TweetID            string    `json:"tweetId,omitempty"`
	RequestID          string    `json:"requestId"`
	TxHash             string    `json:"txHash"`
	VerifiedAt         time.Time `json:"verifiedAt"`
	// Record is set for tweet verifications.
	Record *verification.Record `json:"record,omitempty"`
}

// Verifier submits tweet verifications to the API.
type Verifier interface {
	Verify(ctx context.Context, req *verification.VerifyRequest, forceSuccess bool) (*verification.VerifyResponse, error)
}

// Sleeper waits between processing substeps.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to Sleeper.
type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error { return f(ctx, d) }

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Hasher fabricates transaction hashes for bio verifications.
type Hasher interface {
	TxHash() string
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithSleeper replaces the real-time pacing between substeps.
func WithSleeper(s Sleeper) Option {
	return func(w *Wizard) { w.sleeper = s }
}

// WithHasher sets the source of bio transaction hashes.
func WithHasher(h Hasher) Option {
	return func(w *Wizard) { w.hasher = h }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

// WithListener registers a callback invoked after every state change.
func WithListener(fn func(Snapshot)) Option {
	return func(w *Wizard) { w.listener = fn }
}

// Wizard holds the state of one verification session. It is not safe for
// concurrent use.
type Wizard struct {
	verifier Verifier
	sleeper  Sleeper
	hasher   Hasher
	now      func() time.Time
	listener func(Snapshot)

	step     Step
	method   Method
	testMode TestMode
	wallet   string
	handle   string
	tweetURL string
	marks    Marks
	result   *Result
	err      error
}

// New creates a wizard on the ChooseMethod step with the tweet method and
// success test mode preselected.
func New(verifier Verifier, opts ...Option) *Wizard {
	w := &Wizard{
		verifier: verifier,
		sleeper:  timerSleeper{},
		now:      time.Now,
		testMode: TestModeSuccess,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.hasher == nil {
		w.hasher = ethereum.NewEntropy()
	}
	w.Restart()
	return w
}

func (w *Wizard) Step() Step { return w.step }
func (w *Wizard) Method() Method { return w.method }
func (w *Wizard) TestMode() TestMode { return w.testMode }
func (w *Wizard) Marks() Marks { return w.marks }
func (w *Wizard) Result() *Result { return w.result }
func (w *Wizard) Wallet() string { return w.wallet }
func (w *Wizard) TwitterHandle() string { return w.handle }
func (w *Wizard) TweetURL() string { return w.tweetURL }

// Err returns the error that last sent the wizard back to ChooseMethod.
func (w *Wizard) Err() error { return w.err }

// SetTestMode selects between guaranteed success and the random outcome.
func (w *Wizard) SetTestMode(mode TestMode) {
	if mode == TestModeRandom {
		w.testMode = TestModeRandom
		return
	}
	w.testMode = TestModeSuccess
}

// SelectMethod picks the proof method and advances to FillDetails.
func (w *Wizard) SelectMethod(m Method) error {
	if m != MethodTweet && m != MethodBio {
		return fmt.Errorf("%w: %q", ErrUnknownMethod, m)
	}
	w.method = m
	w.goTo(StepFillDetails)
	return nil
}

func (w *Wizard) SetWallet(addr string) { w.wallet = strings.TrimSpace(addr) }
func (w *Wizard) SetTwitterHandle(h string) { w.handle = h }
func (w *Wizard) SetTweetURL(u string) { w.tweetURL = u }

// TweetTemplate is the text the user should tweet for the current wallet.
func (w *Wizard) TweetTemplate() string {
	return verification.TweetContent(w.validWallet())
}

// BioCode is the code the user should put in their Twitter bio.
func (w *Wizard) BioCode() string {
	return verification.BioCode(w.validWallet())
}

func (w *Wizard) validWallet() string {
	if address.Validate(w.wallet) != nil {
		return ""
	}
	return w.wallet
}

// Start validates the details and runs processing to completion. Validation
// errors leave the wizard on FillDetails; any later failure resets it to
// ChooseMethod and is also available from Err.
func (w *Wizard) Start(ctx context.Context) error {
	if w.step != StepFillDetails {
		return ErrNotReady
	}
	if w.validWallet() == "" {
		return ErrInvalidWallet
	}

	switch w.method {
	case MethodTweet:
		if w.tweetURL == "" || w.handle == "" {
			return ErrMissingFields
		}
		if _, ok := address.ExtractTweetID(w.tweetURL); !ok {
			return ErrInvalidTweetURL
		}
	case MethodBio:
		if w.handle == "" {
			return ErrMissingHandle
		}
	}

	handle := strings.Replace(w.handle, "@", "", 1)

	w.err = nil
	w.marks = Marks{}
	w.goTo(StepProcessing)

	var (
		res *Result
		err error
	)
	if w.method == MethodTweet {
		res, err = w.runTweet(ctx, handle)
	} else {
		res, err = w.runBio(ctx, handle)
	}
	if err != nil {
		w.fail(err)
		return err
	}

	w.result = res
	w.goTo(StepComplete)
	return nil
}

func (w *Wizard) runTweet(ctx context.Context, handle string) (*Result, error) {
	w.mark(&w.marks.Submit)

	resp, err := w.verifier.Verify(ctx, &verification.VerifyRequest{
		WalletAddress: w.wallet,
		TwitterHandle: handle,
		TweetURL:      w.tweetURL,
	}, w.testMode == TestModeSuccess)
	if err != nil {
		return nil, err
	}

	for i, flag := range []*bool{&w.marks.Attest, &w.marks.Prove, &w.marks.Complete} {
		if err := w.sleeper.Sleep(ctx, tweetPacing[i]); err != nil {
			return nil, err
		}
		w.mark(flag)
	}

	rec := resp.Verification
	if rec == nil {
		return nil, errors.New("verification response carried no record")
	}
	return &Result{
		WalletAddress:      rec.WalletAddress,
		TwitterHandle:      rec.TwitterHandle,
		VerificationMethod: rec.VerificationMethod,
		TweetID:            rec.TweetID,
		RequestID:          rec.FlareVerification.RequestID,
		TxHash:             resp.TransactionHash,
		VerifiedAt:         rec.VerifiedAt,
		Record:             rec,
	}, nil
}

// runBio simulates the bio flow locally; there is no bio endpoint.
func (w *Wizard) runBio(ctx context.Context, handle string) (*Result, error) {
	for i, flag := range []*bool{&w.marks.Submit, &w.marks.Attest, &w.marks.Prove, &w.marks.Complete} {
		w.mark(flag)
		if err := w.sleeper.Sleep(ctx, bioPacing[i]); err != nil {
			return nil, err
		}
	}

	now := w.now().UTC()
	return &Result{
		WalletAddress:      w.wallet,
		TwitterHandle:      handle,
		VerificationMethod: string(MethodBio),
		RequestID:          fmt.Sprintf("req_%d", now.UnixMilli()),
		TxHash:             w.hasher.TxHash(),
		VerifiedAt:         now,
	}, nil
}

// Restart clears every field and returns to ChooseMethod. The test mode is kept.
func (w *Wizard) Restart() {
	w.method = MethodTweet
	w.wallet = ""
	w.handle = ""
	w.tweetURL = ""
	w.marks = Marks{}
	w.result = nil
	w.err = nil
	w.goTo(StepChooseMethod)
}

func (w *Wizard) fail(err error) {
	w.err = err
	w.marks = Marks{}
	w.goTo(StepChooseMethod)
}

func (w *Wizard) mark(flag *bool) {
	*flag = true
	w.notify()
}

func (w *Wizard) goTo(step Step) {
	w.step = step
	w.notify()
}

func (w *Wizard) notify() {
	if w.listener != nil {
		w.listener(Snapshot{Step: w.step, Marks: w.marks})
	}
}
