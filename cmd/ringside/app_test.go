package main

import "testing"

func TestResolveAddr(t *testing.T) {
	cases := []struct {
		env, file string
		envSet    bool
		want      string
	}{
		{":8080", "", false, ":8080"},
		{":8080", ":9000", false, ":9000"},
		{":7000", ":9000", true, ":7000"},
		{":7000", "", true, ":7000"},
	}
	for _, tc := range cases {
		if got := resolveAddr(tc.env, tc.file, tc.envSet); got != tc.want {
			t.Fatalf("resolveAddr(%q, %q, %v) = %q, want %q", tc.env, tc.file, tc.envSet, got, tc.want)
		}
	}
}
