package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/p2pvps/openbazaar-node/pkg/openbazaar"
)

func stubDaemon(t *testing.T) (*httptest.Server, *[]map[string]any) {
	t.Helper()
	auth := openbazaar.BuildAuthHeader("store", "secret")
	var spends []map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/wallet/balance", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != auth {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"reason":"invalid credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"confirmed":1.5,"unconfirmed":0}`))
	})
	mux.HandleFunc("/wallet/spend", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode spend: %v", err)
		}
		spends = append(spends, body)
		_, _ = w.Write([]byte(`{"txid":"abc","amount":0.0001}`))
	})
	mux.HandleFunc("/ob/profile/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"reason":"Profile already exists. Use PUT."}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &spends
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func daemonFlags(url string) []string {
	return []string{"--base-url", url, "--port", "0", "--username", "store", "--password", "secret"}
}

func TestAuthCommand(t *testing.T) {
	out, err := execute(t, "auth", "yourUsername", "yourPassword")
	if err != nil {
		t.Fatalf("auth: %v", err)
	}
	if strings.TrimSpace(out) != "Basic eW91clVzZXJuYW1lOnlvdXJQYXNzd29yZA==" {
		t.Fatalf("unexpected header %q", out)
	}
}

func TestWalletBalanceCommand(t *testing.T) {
	srv, _ := stubDaemon(t)

	out, err := execute(t, append(daemonFlags(srv.URL), "wallet", "balance")...)
	if err != nil {
		t.Fatalf("wallet balance: %v", err)
	}
	var bal openbazaar.WalletBalance
	if err := json.Unmarshal([]byte(out), &bal); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if bal.Confirmed != 1.5 {
		t.Fatalf("confirmed = %v", bal.Confirmed)
	}
}

func TestWalletBalanceWrongCredentials(t *testing.T) {
	srv, _ := stubDaemon(t)

	args := []string{"--base-url", srv.URL, "--port", "0", "--credentials", "Basic bm9wZTpub3Bl", "wallet", "balance"}
	_, err := execute(t, args...)
	if openbazaar.StatusCode(err) != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestWalletSendCoinAmount(t *testing.T) {
	srv, spends := stubDaemon(t)

	args := append(daemonFlags(srv.URL), "wallet", "send", "--address", "qq123", "--amount-coin", "0.0001", "--memo", "test")
	if _, err := execute(t, args...); err != nil {
		t.Fatalf("wallet send: %v", err)
	}
	if len(*spends) != 1 {
		t.Fatalf("expected one spend, got %d", len(*spends))
	}
	got := (*spends)[0]
	if got["amount"] != float64(10000) || got["feeLevel"] != openbazaar.FeeLevelEconomic || got["memo"] != "test" {
		t.Fatalf("unexpected spend body %#v", got)
	}
}

func TestWalletSendRejectsBothAmounts(t *testing.T) {
	srv, spends := stubDaemon(t)

	args := append(daemonFlags(srv.URL), "wallet", "send", "--address", "qq", "--amount", "5", "--amount-coin", "1")
	if _, err := execute(t, args...); err == nil {
		t.Fatalf("expected mutually exclusive error")
	}
	if len(*spends) != 0 {
		t.Fatalf("no request should be sent")
	}
}

func TestProfileCreateConflict(t *testing.T) {
	srv, _ := stubDaemon(t)
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(`{"name":"P2P VPS"}`), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	_, err := execute(t, append(daemonFlags(srv.URL), "profile", "create", "-f", path)...)
	if !openbazaar.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}

	stderr := &bytes.Buffer{}
	printError(stderr, err)
	if !strings.Contains(stderr.String(), "status 409") || !strings.Contains(stderr.String(), "Profile already exists") {
		t.Fatalf("unexpected error output %q", stderr.String())
	}
}

func TestProfileCreateInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	if _, err := execute(t, "--username", "a", "--password", "b", "profile", "create", "-f", path); err == nil {
		t.Fatalf("expected invalid JSON error")
	}
}

func TestPrintErrorPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	printError(buf, errors.New("boom"))
	if buf.String() != "error: boom\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
