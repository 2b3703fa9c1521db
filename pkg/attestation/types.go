// Package attestation defines the Flare Data Connector (FDC) provider used to
// attest that a tweet links a Twitter account to a wallet, plus a mocked
// implementation that fabricates the whole exchange.
package attestation

import "time"

// Attestation type and source reported by the data connector.
const (
	TypeWeb2JSON  = "Web2Json"
	SourceTwitter = "twitter"

	StatusVerified = "verified"
)

// Request is what gets submitted to the data connector.
type Request struct {
	TweetID         string
	TwitterHandle   string
	WalletAddress   string
	ExpectedContent string
}

// FDCResponse mirrors a Web2Json attestation response.
type FDCResponse struct {
	RequestID            string       `json:"requestId"`
	AttestationType      string       `json:"attestationType"`
	SourceID             string       `json:"sourceId"`
	MessageIntegrityCode string       `json:"messageIntegrityCode"`
	RequestBody          RequestBody  `json:"requestBody"`
	ResponseBody         ResponseBody `json:"responseBody"`
	Proof                Proof        `json:"proof"`
}

// RequestBody echoes the attested request.
type RequestBody struct {
	TweetID               string `json:"tweetId"`
	ExpectedTwitterUserID string `json:"expectedTwitterUserId"`
	WalletAddress         string `json:"walletAddress"`
}

// ResponseBody carries the fetched tweet and the verdict.
type ResponseBody struct {
	Tweet              Tweet    `json:"tweet"`
	VerificationStatus string   `json:"verification_status"`
	WalletMentioned    bool     `json:"wallet_mentioned"`
	HashtagsPresent    []string `json:"hashtags_present"`
}

// Tweet is the attested tweet.
type Tweet struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	User      TweetUser `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// TweetUser is the tweet author.
type TweetUser struct {
	ID         string `json:"id"`
	ScreenName string `json:"screen_name"`
	Name       string `json:"name"`
}

// Proof holds the merkle proof and raw attestation data.
type Proof struct {
	MerkleProof     string `json:"merkleProof"`
	AttestationData string `json:"attestationData"`
}

// Attestation summarizes validator consensus over a response.
type Attestation struct {
	AttestationID    string `json:"attestationId"`
	MerkleProof      string `json:"merkleProof"`
	ConsensusReached bool   `json:"consensusReached"`
	Validators       int    `json:"validators"`
}

// Result is everything a provider returns for one request.
type Result struct {
	Response      *FDCResponse
	Attestation   Attestation
	TwitterUserID string
	// TxHash is the transaction recording the verification on Flare.
	TxHash string
}
