package postgrest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smarttaskai/pkg/postgrest"
)

func TestClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/rest/v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "anon-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch r.Method {
		case http.MethodGet:
			if r.URL.Query().Get("user_id") != "eq.user-1" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if r.URL.Query().Get("order") != "created_at.desc" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			json.NewEncoder(w).Encode([]map[string]string{{"id": "t1"}})
		case http.MethodPost:
			if r.Header.Get("Prefer") != "return=representation" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			var body []map[string]interface{}
			json.NewDecoder(r.Body).Decode(&body)
			body[0]["id"] = "t2"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(body)
		case http.MethodPatch:
			if r.URL.Query().Get("id") != "eq.t1" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			json.NewEncoder(w).Encode([]map[string]string{{"id": "t1", "status": "Completed"}})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := postgrest.NewClient(ts.URL, "anon-key")
	ctx := context.Background()

	t.Run("Select", func(t *testing.T) {
		raw, err := client.Select(ctx, "tasks", postgrest.Query{
			Eq:    map[string]string{"user_id": "user-1"},
			Order: "created_at.desc",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var rows []map[string]string
		if err := json.Unmarshal(raw, &rows); err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if len(rows) != 1 || rows[0]["id"] != "t1" {
			t.Errorf("unexpected rows: %v", rows)
		}
	})

	t.Run("Insert Returns Representation", func(t *testing.T) {
		raw, err := client.Insert(ctx, "tasks", []map[string]string{{"title": "Write report"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var rows []map[string]interface{}
		json.Unmarshal(raw, &rows)
		if len(rows) != 1 || rows[0]["id"] != "t2" {
			t.Errorf("unexpected insert response: %v", rows)
		}
	})

	t.Run("Update With Filter", func(t *testing.T) {
		raw, err := client.Update(ctx, "tasks",
			postgrest.Query{Eq: map[string]string{"id": "t1"}},
			map[string]string{"status": "Completed"},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var rows []map[string]string
		json.Unmarshal(raw, &rows)
		if rows[0]["status"] != "Completed" {
			t.Errorf("unexpected update response: %v", rows)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := client.Delete(ctx, "tasks", postgrest.Query{Eq: map[string]string{"id": "t1"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Unauthorized Error", func(t *testing.T) {
		bad := postgrest.NewClient(ts.URL, "wrong-key")
		_, err := bad.Select(ctx, "tasks", postgrest.Query{})
		if err == nil {
			t.Fatalf("expected error for bad api key")
		}
	})
}
