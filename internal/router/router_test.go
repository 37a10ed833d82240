package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-hub/internal/adapters/storage/memory"
	"pet-hub/internal/platform/metrics"
	"pet-hub/internal/router"
	"pet-hub/internal/store"
)

func TestHTTP_EndToEnd_OwnerPetLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Alta de dueño
	ownerID := createID(t, ts.URL, "/owners", map[string]any{"name": "Jo", "email": "jo@example.com"})

	// 2) Alta de mascota vinculada
	petID := createID(t, ts.URL, "/pets", map[string]any{
		"name":       "Rex",
		"breed":      "Labrador",
		"age":        3,
		"weight":     28.5,
		"owner_name": "Jo",
		"owner_id":   ownerID,
	})

	// 3) Mascotas del dueño
	{
		st, body := doReq(t, ts.URL, "GET", fmt.Sprintf("/owners/%d/pets", ownerID), nil, "", "")
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing owner pets, got %d body=%s", st, body)
		}
		items := decodeList(t, body)
		if len(items) != 1 || int64(items[0]["id"].(float64)) != petID {
			t.Fatalf("expected [%d], got %s", petID, body)
		}
	}

	// 4) Actualizar mascota (reemplazo completo)
	{
		st, body := doReq(t, ts.URL, "PUT", fmt.Sprintf("/pets/%d", petID), map[string]any{
			"name":       "Rex II",
			"owner_name": "Jo",
			"owner_id":   ownerID,
		}, "", "")
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 update, got %d body=%s", st, body)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", fmt.Sprintf("/pets?owner_id=%d", ownerID), nil, "", "")
		if st != http.StatusOK {
			t.Fatalf("expected 200 filtered list, got %d", st)
		}
		items := decodeList(t, body)
		if len(items) != 1 || items[0]["name"] != "Rex II" || items[0]["age"] != nil {
			t.Fatalf("expected updated pet without age, got %s", body)
		}
	}

	// 5) Borrar dueño: la mascota queda huérfana
	{
		st, _ := doReq(t, ts.URL, "DELETE", fmt.Sprintf("/owners/%d", ownerID), nil, "", "")
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete owner, got %d", st)
		}
	}
	{
		_, body := doReq(t, ts.URL, "GET", "/owners", nil, "", "")
		if len(decodeList(t, body)) != 0 {
			t.Fatalf("expected no owners, got %s", body)
		}
		_, body = doReq(t, ts.URL, "GET", "/pets", nil, "", "")
		if len(decodeList(t, body)) != 1 {
			t.Fatalf("expected orphan pet to remain, got %s", body)
		}
	}

	// 6) Borrar mascota dos veces
	for i := 0; i < 2; i++ {
		st, _ := doReq(t, ts.URL, "DELETE", fmt.Sprintf("/pets/%d", petID), nil, "", "")
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete pet #%d, got %d", i+1, st)
		}
	}
	{
		_, body := doReq(t, ts.URL, "GET", "/pets", nil, "", "")
		if len(decodeList(t, body)) != 0 {
			t.Fatalf("expected no pets, got %s", body)
		}
	}
}

func TestHTTP_PetUpdate_OwnerIDOnlyChangesWhenSent(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	ownerID := createID(t, ts.URL, "/owners", map[string]any{"name": "Jo"})
	petID := createID(t, ts.URL, "/pets", map[string]any{"name": "Rex", "owner_name": "Jo", "owner_id": ownerID})
	ownerPets := fmt.Sprintf("/owners/%d/pets", ownerID)

	// edición sin owner_id: el vínculo se mantiene
	st, body := doReq(t, ts.URL, "PUT", fmt.Sprintf("/pets/%d", petID), map[string]any{"name": "Rex II", "owner_name": "Jo"}, "", "")
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 update, got %d body=%s", st, body)
	}
	_, body = doReq(t, ts.URL, "GET", ownerPets, nil, "", "")
	if items := decodeList(t, body); len(items) != 1 || items[0]["name"] != "Rex II" {
		t.Fatalf("expected renamed pet still linked, got %s", body)
	}

	// owner_id null: desvincula
	st, body = doReq(t, ts.URL, "PUT", fmt.Sprintf("/pets/%d", petID), map[string]any{"name": "Rex II", "owner_name": "Jo", "owner_id": nil}, "", "")
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 unlink, got %d body=%s", st, body)
	}
	_, body = doReq(t, ts.URL, "GET", ownerPets, nil, "", "")
	if items := decodeList(t, body); len(items) != 0 {
		t.Fatalf("expected no linked pets after unlink, got %s", body)
	}
}

func TestHTTP_PetScopedRecords(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	petID := createID(t, ts.URL, "/pets", map[string]any{"name": "Luna", "owner_name": "Ana"})
	otherID := createID(t, ts.URL, "/pets", map[string]any{"name": "Max", "owner_name": "Ana"})

	createID(t, ts.URL, fmt.Sprintf("/pets/%d/medical-records", petID), map[string]any{
		"type": "vaccine", "description": "rabies", "date": "2024-01-10", "vet_name": "Dr. Vega",
	})
	newer := createID(t, ts.URL, fmt.Sprintf("/pets/%d/medical-records", petID), map[string]any{
		"type": "checkup", "date": "2024-02-01",
	})
	{
		_, body := doReq(t, ts.URL, "GET", fmt.Sprintf("/pets/%d/medical-records", petID), nil, "", "")
		items := decodeList(t, body)
		if len(items) != 2 || int64(items[0]["id"].(float64)) != newer {
			t.Fatalf("expected newest record first, got %s", body)
		}
	}

	createID(t, ts.URL, fmt.Sprintf("/pets/%d/appointments", petID), map[string]any{
		"type": "checkup", "date": "2999-05-01", "time": "10:00",
	})
	createID(t, ts.URL, fmt.Sprintf("/pets/%d/appointments", otherID), map[string]any{
		"type": "grooming", "date": "2999-06-01",
	})
	{
		_, body := doReq(t, ts.URL, "GET", fmt.Sprintf("/pets/%d/appointments", petID), nil, "", "")
		items := decodeList(t, body)
		if len(items) != 1 || items[0]["status"] != "scheduled" {
			t.Fatalf("expected one scheduled appointment, got %s", body)
		}
		_, body = doReq(t, ts.URL, "GET", "/appointments", nil, "", "")
		if len(decodeList(t, body)) != 2 {
			t.Fatalf("expected 2 appointments overall, got %s", body)
		}
	}

	reminderID := createID(t, ts.URL, fmt.Sprintf("/pets/%d/reminders", petID), map[string]any{
		"type": "medication", "title": "Pill", "date": "2999-01-01",
	})
	{
		st, _ := doReq(t, ts.URL, "PUT", fmt.Sprintf("/reminders/%d/completion", reminderID), map[string]any{"is_completed": true}, "", "")
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 completion, got %d", st)
		}
		_, body := doReq(t, ts.URL, "GET", "/reminders", nil, "", "")
		items := decodeList(t, body)
		if len(items) != 1 || items[0]["is_completed"] != true {
			t.Fatalf("expected completed reminder, got %s", body)
		}
	}
}

func TestHTTP_ValidationErrors(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	cases := []struct {
		method, path string
		body         any
	}{
		{"POST", "/pets", map[string]any{"owner_name": "Jo"}},
		{"POST", "/pets", map[string]any{"name": "Rex"}},
		{"POST", "/owners", map[string]any{"email": "x@example.com"}},
		{"POST", "/pets/1/medical-records", map[string]any{"date": "2024-01-01"}},
		{"POST", "/pets/1/appointments", map[string]any{"type": "checkup"}},
		{"POST", "/pets/1/reminders", map[string]any{"title": "Pill"}},
		{"PUT", "/reminders/1/completion", map[string]any{}},
		{"GET", "/pets?owner_id=abc", nil},
		{"DELETE", "/pets/abc", nil},
	}
	for _, tc := range cases {
		st, body := doReq(t, ts.URL, tc.method, tc.path, tc.body, "", "")
		if st != http.StatusBadRequest {
			t.Fatalf("%s %s: expected 400, got %d body=%s", tc.method, tc.path, st, body)
		}
	}
}

func TestHTTP_AdminLoginAndStats(t *testing.T) {
	st := store.New(memory.NewKVStore())
	ts := httptest.NewServer(router.NewRouter(router.Options{Store: st}))
	defer ts.Close()

	// sin Init no hay admin sembrado
	{
		code, _ := doReq(t, ts.URL, "POST", "/admin/login", map[string]any{"username": "admin", "password": "admin123"}, "", "")
		if code != http.StatusUnauthorized {
			t.Fatalf("expected 401 before init, got %d", code)
		}
	}

	if err := st.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}

	{
		code, body := doReq(t, ts.URL, "POST", "/admin/login", map[string]any{"username": "admin", "password": "admin123"}, "", "")
		if code != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", code, body)
		}
		if strings.Contains(string(body), "admin123") || strings.Contains(string(body), "password") {
			t.Fatalf("login response must not expose the password: %s", body)
		}
	}
	{
		code, _ := doReq(t, ts.URL, "POST", "/admin/login", map[string]any{"username": "admin", "password": "nope"}, "", "")
		if code != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad password, got %d", code)
		}
	}

	createID(t, ts.URL, "/pets", map[string]any{"name": "Rex", "owner_name": "Jo"})
	createID(t, ts.URL, "/owners", map[string]any{"name": "Jo"})
	createID(t, ts.URL, "/pets/1/appointments", map[string]any{"type": "checkup", "date": "2999-01-01"})
	createID(t, ts.URL, "/pets/1/reminders", map[string]any{"title": "Pill", "date": "2999-01-01"})

	{
		code, _ := doReq(t, ts.URL, "GET", "/admin/stats", nil, "", "")
		if code != http.StatusUnauthorized {
			t.Fatalf("expected 401 without credentials, got %d", code)
		}
		code, _ = doReq(t, ts.URL, "GET", "/admin/stats", nil, "admin", "wrong")
		if code != http.StatusUnauthorized {
			t.Fatalf("expected 401 with wrong credentials, got %d", code)
		}
	}
	{
		code, body := doReq(t, ts.URL, "GET", "/admin/stats", nil, "admin", "admin123")
		if code != http.StatusOK {
			t.Fatalf("expected 200 stats, got %d body=%s", code, body)
		}
		var stats map[string]int
		if err := json.Unmarshal(body, &stats); err != nil {
			t.Fatalf("decode stats: %v", err)
		}
		want := map[string]int{"total_pets": 1, "total_owners": 1, "upcoming_appointments": 1, "pending_reminders": 1}
		for k, v := range want {
			if stats[k] != v {
				t.Fatalf("stats[%s] = %d, want %d (body=%s)", k, stats[k], v, body)
			}
		}
	}
}

func TestHTTP_CorruptCollectionIs500(t *testing.T) {
	sub := memory.NewKVStore()
	_ = sub.Set(context.Background(), store.KeyPets, "{not json")
	ts := httptest.NewServer(router.NewRouter(router.Options{Store: store.New(sub)}))
	defer ts.Close()

	code, _ := doReq(t, ts.URL, "GET", "/pets", nil, "", "")
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	reg := metrics.New()
	st := store.New(memory.NewKVStore(), store.WithMetrics(reg))
	ts := httptest.NewServer(router.NewRouter(router.Options{Store: st, Metrics: reg}))
	defer ts.Close()

	if code, body := doReq(t, ts.URL, "GET", "/health", nil, "", ""); code != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", code, body)
	}

	createID(t, ts.URL, "/owners", map[string]any{"name": "Jo"})

	code, body := doReq(t, ts.URL, "GET", "/metrics", nil, "", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", code)
	}
	if !strings.Contains(string(body), `pethub_store_operations_total{collection="owners",op="add",result="ok"} 1`) {
		t.Fatalf("expected owners add counter in metrics:\n%s", body)
	}
}

// -------------------------
// Helpers
// -------------------------

func createID(t *testing.T, baseURL, path string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload, "", "")
	if st != http.StatusCreated {
		t.Fatalf("POST %s: expected 201, got %d body=%s", path, st, body)
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("POST %s: decode: %v", path, err)
	}
	if resp.ID <= 0 {
		t.Fatalf("POST %s: expected positive id, got %d", path, resp.ID)
	}
	return resp.ID
}

func decodeList(t *testing.T, body []byte) []map[string]any {
	t.Helper()

	var out []map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode list: %v body=%s", err, body)
	}
	return out
}

func doReq(t *testing.T, baseURL, method, path string, body any, user, pass string) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.SetBasicAuth(user, pass)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
