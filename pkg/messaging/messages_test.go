package messaging

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendMessageShapesRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/messages" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if got := string(body); got != `{"from":"1234567890","to":{"id":"123"},"content":"Hello, world!"}` {
			t.Fatalf("body = %s", got)
		}
		w.Write([]byte(`{"id":"msg_123","from":"1234567890","to":{"id":"123"},"content":"Hello, world!","status":"sent"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	msg, err := client.SendMessage(context.Background(), "1234567890", "123", "Hello, world!")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.ID != "msg_123" || msg.Status != "sent" || msg.To.ID != "123" {
		t.Fatalf("unexpected message: %#v", msg)
	}
}

func TestGetMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages/msg_123" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"id":"msg_123","status":"delivered"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	msg, err := client.GetMessage(context.Background(), "msg_123")
	if err != nil {
		t.Fatalf("GetMessage: %v", err)
	}
	if msg.Status != "delivered" {
		t.Fatalf("unexpected message: %#v", msg)
	}
}

func TestListMessagesSendsPaginationQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("limit") != "50" {
			t.Fatalf("query = %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"messages":[{"id":"msg_1"},{"id":"msg_2"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	page, err := client.ListMessages(context.Background(), 2, 50)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(page.Messages) != 2 || page.Messages[1].ID != "msg_2" {
		t.Fatalf("unexpected page: %#v", page)
	}
}

func TestListMessagesAppliesDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "1" || q.Get("limit") != "100" {
			t.Fatalf("query = %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"messages":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	if _, err := client.ListMessages(context.Background(), 0, 0); err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
}
