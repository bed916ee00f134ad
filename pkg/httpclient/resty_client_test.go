package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRestyClientDoSendsMethodHeadersAndBody(t *testing.T) {
	var gotMethod, gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewRestyClient(2 * time.Second)
	resp, err := c.Do(context.Background(), Request{
		Method:  http.MethodPost,
		URL:     srv.URL + "/ob/listing/",
		Headers: map[string]string{"Authorization": "Basic abc", "Content-Type": "application/json"},
		Body:    []byte(`{"a":1}`),
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode())
	}
	if string(resp.Body()) != `{"ok":true}` {
		t.Fatalf("body = %s", resp.Body())
	}
	if gotMethod != http.MethodPost || gotAuth != "Basic abc" || gotBody != `{"a":1}` {
		t.Fatalf("server saw method=%s auth=%s body=%s", gotMethod, gotAuth, gotBody)
	}
}

func TestRestyClientDoReturnsNon2xxWithoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"reason":"dup"}`))
	}))
	defer srv.Close()

	resp, err := NewRestyClient(0).Do(context.Background(), Request{Method: "delete", URL: srv.URL})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode() != http.StatusConflict {
		t.Fatalf("status = %d", resp.StatusCode())
	}
}

func TestRestyClientDoRejectsEmptyMethod(t *testing.T) {
	if _, err := NewRestyClient(0).Do(context.Background(), Request{URL: "http://127.0.0.1"}); err == nil {
		t.Fatalf("expected error for empty method")
	}
}

func TestRestyClientDoTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := NewRestyClient(time.Second).Do(context.Background(), Request{Method: http.MethodGet, URL: url}); err == nil {
		t.Fatalf("expected transport error against closed server")
	}
}
