package app

import (
	"errors"
	"flag"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/Tsuyoshi84/time-tracker/internal/testutil"
	"github.com/Tsuyoshi84/time-tracker/session"
)

func addContext(start, end string) *cli.Context {
	set := flag.NewFlagSet("add", flag.ContinueOnError)
	set.String("start", start, "")
	set.String("end", end, "")

	return cli.NewContext(nil, set, nil)
}

func TestAddSession_TimeFlagPairing(t *testing.T) {
	mgr := session.NewManager(testutil.NewStore(t))

	if err := mgr.LoadForDate("2024-01-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name       string
		start, end string
	}{
		{"start only", "09:00", ""},
		{"end only", "", "10:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := addSession(addContext(tc.start, tc.end), mgr)
			if !errors.Is(err, errIncompleteRange) {
				t.Errorf("expected errIncompleteRange, got %v", err)
			}
		})
	}

	sess, err := addSession(addContext("09:00", "10:00"), mgr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sess.Date != "2024-01-15" {
		t.Errorf("expected date 2024-01-15, got %q", sess.Date)
	}

	if len(mgr.Sessions()) != 1 {
		t.Errorf("expected 1 session, got %d", len(mgr.Sessions()))
	}
}
