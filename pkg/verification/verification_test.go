package verification

import (
	"reflect"
	"testing"
)

func TestTweetContent(t *testing.T) {
	got := TweetContent("0xabc")
	want := "Verifying my wallet 0xabc on Flare Network #FlareNetwork #Web3Verification"
	if got != want {
		t.Fatalf("TweetContent = %q, want %q", got, want)
	}

	if got := TweetContent(""); got != "Verifying my wallet [WALLET_ADDRESS] on Flare Network #FlareNetwork #Web3Verification" {
		t.Fatalf("unexpected placeholder content %q", got)
	}
}

func TestBioCode(t *testing.T) {
	if got := BioCode("1234abcd"); got != "flare-verify:1234abcd" {
		t.Fatalf("BioCode = %q", got)
	}
	if got := BioCode(""); got != "flare-verify:[WALLET_ADDRESS]" {
		t.Fatalf("BioCode placeholder = %q", got)
	}
}

func TestMissingHashtags(t *testing.T) {
	if missing := MissingHashtags(TweetContent("0xabc")); len(missing) != 0 {
		t.Fatalf("template must carry every hashtag, missing %v", missing)
	}

	got := MissingHashtags("Verifying my wallet #FlareNetwork")
	if !reflect.DeepEqual(got, []string{"#Web3Verification"}) {
		t.Fatalf("unexpected missing hashtags %v", got)
	}
}
