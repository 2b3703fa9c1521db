package address

import (
	"encoding/hex"
	"math/rand/v2"
	"strings"
	"testing"
)

func randomHex(r *rand.Rand, n int) string {
	b := make([]byte, (n+1)/2)
	for i := range b {
		b[i] = byte(r.UintN(256))
	}
	s := hex.EncodeToString(b)[:n]
	// mix case so normalization has work to do
	var sb strings.Builder
	for _, c := range s {
		if r.IntN(2) == 0 {
			sb.WriteString(strings.ToUpper(string(c)))
		} else {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

func TestClassify(t *testing.T) {
	cases := []struct {
		in   string
		want ChainType
	}{
		{"0x1234567890123456789012345678901234567890", Ethereum},
		{"0xABCDEFabcdef0123456789ABCDEFabcdef012345", Ethereum},
		{"1234abcd", Flow},
		{"0x1234abcd", Flow},
		{"1234abcd1234ABCD", Flow},
		{"0x1234abcd1234abcd", Flow},
		{"", Unknown},
		{"0x", Unknown},
		{"1234abc", Unknown},
		{"1234abcd1", Unknown},
		{"0x12345678901234567890123456789012345678", Unknown},
		{"0xZZ34567890123456789012345678901234567890", Unknown},
		{"1234567890123456789012345678901234567890", Unknown},
	}

	for _, tc := range cases {
		if got := Classify(tc.in); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestClassify_RandomAddresses(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		eth := "0x" + randomHex(r, 40)
		if Classify(eth) != Ethereum {
			t.Fatalf("expected ethereum for %s", eth)
		}

		n := 8
		if r.IntN(2) == 0 {
			n = 16
		}
		flow := randomHex(r, n)
		if r.IntN(2) == 0 {
			flow = "0x" + flow
		}
		if Classify(flow) != Flow {
			t.Fatalf("expected flow for %s", flow)
		}
		if err := Validate(flow); err != nil {
			t.Fatalf("Validate(%s) failed: %v", flow, err)
		}
	}
}

func TestValidate_Unknown(t *testing.T) {
	for _, in := range []string{"", "hello", "0x123", "@alice"} {
		if err := Validate(in); err != ErrInvalidAddress {
			t.Fatalf("Validate(%q) = %v, want ErrInvalidAddress", in, err)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0xABCDEFabcdef0123456789ABCDEFabcdef012345", "0xabcdefabcdef0123456789abcdefabcdef012345"},
		{"0x1234ABCD", "1234abcd"},
		{"1234ABCD1234abcd", "1234abcd1234abcd"},
		{"Not-An-Address", "not-an-address"},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 500; i++ {
		var in string
		switch i % 3 {
		case 0:
			in = "0x" + randomHex(r, 40)
		case 1:
			in = "0x" + randomHex(r, 16)
		default:
			in = randomHex(r, 8)
		}

		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %s: %s -> %s", in, once, twice)
		}
		if Classify(once) != Classify(in) {
			t.Fatalf("normalization changed chain type for %s", in)
		}
	}
}

func TestNormalize_SameLogicalFlowAddressCollides(t *testing.T) {
	if Normalize("0xE03DAEBED8CA0615") != Normalize("e03daebed8ca0615") {
		t.Fatal("prefixed and bare flow addresses must normalize to the same key")
	}
}

func TestTwitterHandle(t *testing.T) {
	valid := []string{"alice", "@alice", "A_1", "abcdefghijklmno"}
	for _, h := range valid {
		if err := ValidateTwitterHandle(h); err != nil {
			t.Errorf("ValidateTwitterHandle(%q) failed: %v", h, err)
		}
	}

	invalid := []string{"", "@", "abcdefghijklmnop", "al ice", "al-ice", "@@alice"}
	for _, h := range invalid {
		if err := ValidateTwitterHandle(h); err != ErrInvalidHandle {
			t.Errorf("ValidateTwitterHandle(%q) = %v, want ErrInvalidHandle", h, err)
		}
	}

	if got := NormalizeTwitterHandle("@Alice_01"); got != "alice_01" {
		t.Fatalf("NormalizeTwitterHandle = %q, want %q", got, "alice_01")
	}
}

func TestExtractTweetID(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"42", "42", true},
		{"1234567890123456789", "1234567890123456789", true},
		{strings.Repeat("9", 40), strings.Repeat("9", 40), true},
		{"https://x.com/alice/status/42", "42", true},
		{"https://twitter.com/alice/status/1790000000000000000?s=20", "1790000000000000000", true},
		{"twitter.com/bob_1/status/7/photo/1", "7", true},
		{"https://example.com/alice/status/42", "", false},
		{"https://x.com/alice", "", false},
		{"not a tweet", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ExtractTweetID(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("ExtractTweetID(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestShortAddress(t *testing.T) {
	if got := ShortAddress("0x1234567890123456789012345678901234567890"); got != "0x1234...7890" {
		t.Fatalf("ShortAddress = %q", got)
	}
	if got := ShortAddress("1234abcd"); got != "1234abcd" {
		t.Fatalf("ShortAddress should leave short input alone, got %q", got)
	}
}
