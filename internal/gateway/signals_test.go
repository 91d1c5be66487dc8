package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/northstar/internal/domain"
	"github.com/alexanderramin/northstar/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signalTestServer(t *testing.T, status int, respBody string) (*SignalClient, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		data, _ := io.ReadAll(r.Body)
		if len(data) > 0 {
			_ = json.Unmarshal(data, &captured.body)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)

	client := NewSignalClient(
		Config{Endpoint: srv.URL, TimeoutMs: 2000},
		identity.NewStatic("tester", "secret"),
	)
	return client, captured
}

// TestSignalList_DecodesCamelCasedBody verifies the signal service's naming
// maps straight onto the domain types with no translation layer.
func TestSignalList_DecodesCamelCasedBody(t *testing.T) {
	body := `{"signals": [
		{"id": "s1", "title": "Lead", "status": "inbox", "themeIds": ["t1"]},
		{"id": "s2", "title": "Spent", "status": "converted", "projectId": "p1"}
	]}`
	client, captured := signalTestServer(t, http.StatusOK, body)

	sigs, err := client.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/signals", captured.path)
	assert.Equal(t, "Bearer secret", captured.auth)

	require.Len(t, sigs, 2)
	assert.Equal(t, domain.LinkSet{"t1"}, sigs[0].ThemeIDs)
	assert.True(t, sigs[1].Converted())
}

// TestSignalUpdate_SendsCamelCasedPatch verifies the outbound patch keeps the
// core naming and the response decodes into the updated signal.
func TestSignalUpdate_SendsCamelCasedPatch(t *testing.T) {
	respBody := `{"id": "s1", "status": "converted", "projectId": "p1", "themeIds": ["t1"]}`
	client, captured := signalTestServer(t, http.StatusOK, respBody)

	patch := domain.Patch{"status": "converted", "projectId": "p1", "themeIds": domain.LinkSet{"t1"}}
	updated, err := client.Update(context.Background(), "s1", patch)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, captured.method)
	assert.Equal(t, "/signals/s1", captured.path)
	assert.Equal(t, "p1", captured.body["projectId"])
	_, hasSnake := captured.body["project_id"]
	assert.False(t, hasSnake, "signal service keeps camel-cased naming")

	assert.Equal(t, domain.SignalConverted, updated.Status)
	assert.Equal(t, "p1", updated.ProjectID)
}

// TestSignalClient_RequiresCredential verifies every operation fails with
// ErrNoCredential before any network I/O when no token is configured.
func TestSignalClient_RequiresCredential(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	t.Cleanup(srv.Close)

	client := NewSignalClient(
		Config{Endpoint: srv.URL, TimeoutMs: 2000},
		identity.NewStatic("tester", ""),
	)
	ctx := context.Background()

	_, err := client.List(ctx)
	assert.ErrorIs(t, err, ErrNoCredential)

	_, err = client.Update(ctx, "s1", domain.Patch{"status": "archived"})
	assert.ErrorIs(t, err, ErrNoCredential)

	err = client.Delete(ctx, "s1")
	assert.ErrorIs(t, err, ErrNoCredential)

	assert.False(t, hit, "no request may leave the client without a credential")
}

// TestSignalDelete_NonSuccessStatusFails verifies remote status errors carry
// the gateway and operation.
func TestSignalDelete_NonSuccessStatusFails(t *testing.T) {
	client, _ := signalTestServer(t, http.StatusNotFound, `{"error":"unknown signal"}`)

	err := client.Delete(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteStatus)

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, GatewaySignals, callErr.Gateway)
	assert.Equal(t, "delete", callErr.Op)
	assert.Equal(t, "ghost", callErr.EntityID)
}
