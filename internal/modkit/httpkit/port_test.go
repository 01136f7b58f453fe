package httpkit

import (
	"errors"
	"net/http"
	"testing"

	perrs "hidegrade/internal/platform/errors"
)

func reqWithAuth(h string) *http.Request {
	r, _ := http.NewRequest(http.MethodGet, "/", nil)
	if h != "" {
		r.Header.Set("Authorization", h)
	}
	return r
}

func TestPort_Parse_RejectsMalformedHeaders(t *testing.T) {
	t.Parallel()
	p := NewPortFunc(func(string) (string, error) {
		t.Fatal("parser should not be called on malformed header")
		return "", nil
	})
	for _, h := range []string{"", "Basic abc", "Bearer   \t ", "Bearerabc"} {
		_, err := p.Parse(reqWithAuth(h))
		if !perrs.IsCode(err, perrs.ErrorCodeUnauthorized) {
			t.Fatalf("header %q: expected unauthorized, got %v", h, err)
		}
	}
}

func TestPort_Parse_ParserErrorIsCollapsed(t *testing.T) {
	t.Parallel()
	p := NewPortFunc(func(string) (string, error) { return "", errors.New("signature is invalid") })
	_, err := p.Parse(reqWithAuth("Bearer abc"))
	if !perrs.IsCode(err, perrs.ErrorCodeUnauthorized) || err.Error() == "signature is invalid" {
		t.Fatalf("expected collapsed unauthorized error, got %v", err)
	}

	var nilPort Port
	if _, err := nilPort.Parse(reqWithAuth("Bearer abc")); err == nil {
		t.Fatal("nil parser must reject")
	}
}

func TestPort_Parse_Success(t *testing.T) {
	t.Parallel()
	var seen string
	p := NewPortFunc(func(tok string) (string, error) {
		seen = tok
		return "owner-1", nil
	})
	uid, err := p.Parse(reqWithAuth("bearer   tok-123 "))
	if err != nil || uid != "owner-1" || seen != "tok-123" {
		t.Fatalf("uid=%q seen=%q err=%v", uid, seen, err)
	}
}
