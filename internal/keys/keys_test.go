package keys

import "testing"

func TestCharacterKey(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Kishi Yumie", "kishiyumie"},
		{"  kishi  yumie ", "kishiyumie"},
		{"岸　ゆみえ", "岸ゆみえ"},
		{"", ""},
		{" \t ", ""},
	}
	for _, tc := range cases {
		if got := CharacterKey(tc.in); got != tc.want {
			t.Fatalf("CharacterKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
