package sendgrid

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", "key", "from@example.com", "Shop", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", "key", "from@example.com", "Shop", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestHTTPClientSend(t *testing.T) {
	var gotAuth, gotPath string
	var gotPayload payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Header().Set("X-Message-Id", "msg-1")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "api-key", "noreply@example.com", "Shop", testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	receipt, err := client.Send(context.Background(), Message{
		To:      "paul.martin@example.com",
		ToName:  "Paul Martin",
		Subject: "Confirmation of your order CMD202603141A2B",
		Body:    "body text",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if receipt.MessageID != "msg-1" {
		t.Fatalf("unexpected message id %q", receipt.MessageID)
	}
	if gotAuth != "Bearer api-key" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotPath != "/v3/mail/send" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotPayload.From.Email != "noreply@example.com" || gotPayload.From.Name != "Shop" {
		t.Fatalf("unexpected sender %+v", gotPayload.From)
	}
	if len(gotPayload.Personalizations) != 1 || gotPayload.Personalizations[0].To[0].Email != "paul.martin@example.com" {
		t.Fatalf("unexpected recipients %+v", gotPayload.Personalizations)
	}
	if gotPayload.Subject != "Confirmation of your order CMD202603141A2B" {
		t.Fatalf("unexpected subject %q", gotPayload.Subject)
	}
	if len(gotPayload.Content) != 1 || gotPayload.Content[0].Value != "body text" {
		t.Fatalf("unexpected content %+v", gotPayload.Content)
	}
}

func TestHTTPClientSendRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, "bad-key", "noreply@example.com", "Shop", testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	_, err = client.Send(context.Background(), Message{To: "x@example.com", Subject: "s", Body: "b"})
	var sendErr *SendError
	if !errors.As(err, &sendErr) {
		t.Fatalf("expected SendError, got %v", err)
	}
	if sendErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status %d", sendErr.StatusCode)
	}
}

func TestHTTPClientSendConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client, err := NewHTTPClient(server.URL, "key", "noreply@example.com", "Shop", testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	if _, err := client.Send(context.Background(), Message{To: "x@example.com"}); err == nil {
		t.Fatal("expected connection error")
	}
}
