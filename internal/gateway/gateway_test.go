package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDocumentsAPI(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	c := New(server.URL, "proj", "secret")
	ctx := context.Background()

	t.Run("List", func(t *testing.T) {
		mux.HandleFunc("GET /databases/db1/collections/col1/documents", func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Project") != "proj" || r.Header.Get("X-Key") != "secret" {
				t.Errorf("missing auth headers: %v", r.Header)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"total": 2,
				"documents": []map[string]any{
					{"$id": "a1", "$createdAt": "2025-08-01T10:00:00Z", "$collectionId": "col1", "fullName": "Alice"},
					{"$id": "b2", "fullName": "Bob"},
				},
			})
		})
		docs, err := c.ListDocuments(ctx, "db1", "col1")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(docs) != 2 || docs[0].ID != "a1" || docs[1].ID != "b2" {
			t.Fatalf("unexpected documents: %+v", docs)
		}
		if docs[0].Data["fullName"] != "Alice" {
			t.Errorf("data not preserved: %+v", docs[0].Data)
		}
		if _, ok := docs[0].Data["$collectionId"]; ok {
			t.Error("server bookkeeping fields should be stripped")
		}
		if docs[0].Data["$createdAt"] != "2025-08-01T10:00:00Z" {
			t.Error("$createdAt must stay reachable for decoders")
		}
	})

	t.Run("Create", func(t *testing.T) {
		mux.HandleFunc("POST /databases/db1/collections/col1/documents", func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			var req struct {
				DocumentID string         `json:"documentId"`
				Data       map[string]any `json:"data"`
			}
			if err := json.Unmarshal(body, &req); err != nil {
				t.Fatalf("bad create body: %v", err)
			}
			if req.DocumentID != "unique()" {
				t.Errorf("expected unique() id request, got %q", req.DocumentID)
			}
			req.Data["$id"] = "srv123"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(req.Data)
		})
		doc, err := c.CreateDocument(ctx, "db1", "col1", map[string]any{"status": "pending"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if doc.ID != "srv123" {
			t.Errorf("expected server-issued id, got %q", doc.ID)
		}
		if doc.Data["status"] != "pending" {
			t.Errorf("data not echoed: %+v", doc.Data)
		}
	})

	t.Run("Update", func(t *testing.T) {
		mux.HandleFunc("PATCH /databases/db1/collections/col1/documents/srv123", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"$id": "srv123", "status": "confirmed"})
		})
		doc, err := c.UpdateDocument(ctx, "db1", "col1", "srv123", map[string]any{"status": "confirmed"})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if doc.Data["status"] != "confirmed" {
			t.Errorf("unexpected update result: %+v", doc.Data)
		}
	})

	t.Run("GetNotFound", func(t *testing.T) {
		mux.HandleFunc("GET /databases/db1/collections/col1/documents/missing", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Document with the requested ID could not be found."})
		})
		_, err := c.GetDocument(ctx, "db1", "col1", "missing")
		if err == nil {
			t.Fatal("expected error")
		}
		if !IsNotFound(err) {
			t.Errorf("expected not-found classification, got %v", err)
		}
		if !strings.Contains(err.Error(), "could not be found") {
			t.Errorf("backend message should be surfaced, got %q", err.Error())
		}
	})
}

func TestUploadFile(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("POST /storage/buckets/bucket1/files", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("fileId"); got != "local-1" {
			t.Errorf("fileId = %q", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		if hdr.Filename != "shirt.png" || string(data) != "png-bytes" {
			t.Errorf("unexpected upload: %q %q", hdr.Filename, data)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"$id": "file-789"})
	})

	c := New(server.URL, "proj", "")
	id, err := c.UploadFile(context.Background(), "bucket1", "local-1", "shirt.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if id != "file-789" {
		t.Errorf("expected server file id, got %q", id)
	}
}

func TestConfigured(t *testing.T) {
	if (&Client{}).Configured() {
		t.Error("empty client must not count as configured")
	}
	var nilClient *Client
	if nilClient.Configured() {
		t.Error("nil client must not count as configured")
	}
	if !New("http://x", "p", "").Configured() {
		t.Error("endpoint+project should be enough")
	}
}
