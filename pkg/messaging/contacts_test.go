package messaging

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateContactShapesRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/contacts" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if got := string(body); got != `{"name":"John Doe","phone":"1234567890"}` {
			t.Fatalf("body = %s", got)
		}
		w.Write([]byte(`{"id":"123","name":"John Doe","phone":"1234567890"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	contact, err := client.CreateContact(context.Background(), "John Doe", "1234567890")
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if contact.ID != "123" || contact.Phone != "1234567890" {
		t.Fatalf("unexpected contact: %#v", contact)
	}
}

func TestListContactsSendsPaginationQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/contacts" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("pageIndex") != "1" || q.Get("max") != "5" {
			t.Fatalf("query = %q", r.URL.RawQuery)
		}
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Fatalf("expected empty body, got %s", body)
		}
		w.Write([]byte(`{"contacts":[{"id":"123","name":"John Doe","phone":"1234567890"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	page, err := client.ListContacts(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(page.Contacts) != 1 || page.Contacts[0].ID != "123" {
		t.Fatalf("unexpected page: %#v", page)
	}
}

func TestListContactsAppliesDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("pageIndex") != "0" || q.Get("max") != "10" {
			t.Fatalf("query = %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"contacts":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	if _, err := client.ListContacts(context.Background(), -1, 0); err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
}

func TestUpdateContactSendsBothFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Fatalf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/contacts/123" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if got := string(body); got != `{"name":"Jane Doe","phone":"0987654321"}` {
			t.Fatalf("body = %s", got)
		}
		w.Write([]byte(`{"id":"123","name":"Jane Doe","phone":"0987654321"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	contact, err := client.UpdateContact(context.Background(), "123", UpdateContactParams{
		Name:  String("Jane Doe"),
		Phone: String("0987654321"),
	})
	if err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
	if contact.Name != "Jane Doe" {
		t.Fatalf("unexpected contact: %#v", contact)
	}
}

func TestUpdateContactSerializesUnsetFieldsAsNull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		// Unset fields are still sent and become null on the wire.
		if got := string(body); got != `{"name":"Jane Doe","phone":null}` {
			t.Fatalf("body = %s", got)
		}
		w.Write([]byte(`{"id":"123","name":"Jane Doe","phone":""}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	if _, err := client.UpdateContact(context.Background(), "123", UpdateContactParams{
		Name: String("Jane Doe"),
	}); err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
}

func TestDeleteContactSynthesizesAcknowledgment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/contacts/123" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		// Whatever the server answers is discarded by the client.
		w.Write([]byte(`{"something":"else"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	ack, err := client.DeleteContact(context.Background(), "123")
	if err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}
	if ack.Message != "Contact deleted successfully" {
		t.Fatalf("ack = %#v", ack)
	}
}

func TestDeleteContactPropagatesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key")
	ack, err := client.DeleteContact(context.Background(), "123")
	if err == nil {
		t.Fatalf("expected error on 403")
	}
	if ack != nil {
		t.Fatalf("expected no acknowledgment on failure, got %#v", ack)
	}
}
