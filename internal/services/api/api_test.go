package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"salesops/internal/platform/config"
	perr "salesops/internal/platform/errors"
)

func TestReviewerGate_EmptyListKeepsRoutesOpen(t *testing.T) {
	cfg := config.New().Prefix("TEST_RGOPEN_")
	if p := reviewerGate(cfg); p != nil {
		t.Fatalf("expected nil port without configured reviewers, got %#v", p)
	}
}

func TestReviewerGate_RestrictsToListedUsers(t *testing.T) {
	t.Setenv("TEST_RGLIST_REVIEWERS", "u1, u2")
	cfg := config.New().Prefix("TEST_RGLIST_")

	p := reviewerGate(cfg)
	if p == nil {
		t.Fatal("expected a port for configured reviewers")
	}

	req := httptest.NewRequest(http.MethodPost, "/vehicles/approve", nil)
	if err := p.Allow(req, "u2"); err != nil {
		t.Fatalf("listed reviewer denied: %v", err)
	}

	err := p.Allow(req, "intruder")
	if err == nil {
		t.Fatal("unlisted user must be denied")
	}
	if got := perr.CodeOf(err); got != perr.ErrorCodeForbidden {
		t.Fatalf("expected forbidden code, got %v", got)
	}
}

func TestTokenParser_ResolvesConfiguredTokens(t *testing.T) {
	t.Setenv("TEST_TOKENS_AUTH_TOKENS", "tok-a:u1, tok-b:u2, malformed")
	cfg := config.New().Prefix("TEST_TOKENS_")

	parse := tokenParser(cfg)
	uid, err := parse("tok-b")
	if err != nil {
		t.Fatalf("known token rejected: %v", err)
	}
	if uid != "u2" {
		t.Fatalf("expected user u2, got %q", uid)
	}
	if _, err := parse("malformed"); err == nil {
		t.Fatal("malformed entries must not become valid tokens")
	}
	if _, err := parse("nope"); err == nil {
		t.Fatal("unknown token must be rejected")
	}
}
