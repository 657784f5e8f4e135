package main

import "testing"

func TestNeedsContinuation(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"1 + 2", false},
		{"func add(a b) a + b", false},
		{"func add(a b)", true},
		{"foo(1, 2", true},
		{"(1 + 2", true},
		{"1 +", true},
		{"1 + @", false},
	}

	for _, tc := range cases {
		if got := needsContinuation(tc.src); got != tc.want {
			t.Fatalf("%q: expected %v, got %v", tc.src, tc.want, got)
		}
	}
}
