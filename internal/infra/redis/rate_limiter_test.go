package redis

import "testing"

func TestChatCommandKey(t *testing.T) {
	cases := []struct {
		chatID  int64
		command string
		want    string
	}{
		{42, "/order", "rate_limit:42:/order"},
		{-1002728692510, "/orders", "rate_limit:-1002728692510:/orders"},
		{42, "message", "rate_limit:42:message"},
	}
	for _, tc := range cases {
		if got := ChatCommandKey(tc.chatID, tc.command); got != tc.want {
			t.Errorf("ChatCommandKey(%d, %q) = %q, want %q", tc.chatID, tc.command, got, tc.want)
		}
	}
}
