package e2e_test

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/DIMO-Network/interactions-api/internal/controllers/interaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionFlow(t *testing.T) {
	t.Parallel()

	t.Run("ping on both routes", func(t *testing.T) {
		t.Parallel()
		settings, key := newSettings(t)
		fiberApp := newServer(t, settings)

		for _, path := range []string{"/api/interactions", "/api/discord"} {
			status, body := postSigned(t, fiberApp, path, key, "1700000000", []byte(`{"type":1}`))
			assert.Equal(t, http.StatusOK, status, path)
			assert.Equal(t, `{"type":1}`, body, path)
		}
	})

	t.Run("greet", func(t *testing.T) {
		t.Parallel()
		settings, key := newSettings(t)
		fiberApp := newServer(t, settings)

		payload := []byte(`{"type":2,"data":{"name":"greet","options":[{"name":"name","value":"Ada"}]}}`)
		status, body := postSigned(t, fiberApp, "/api/interactions", key, "1700000000", payload)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, `{"type":4,"data":{"content":"Hello, Ada!"}}`, body)
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()
		settings, key := newSettings(t)
		fiberApp := newServer(t, settings)

		status, body := postSigned(t, fiberApp, "/api/interactions", key, "1700000000", []byte(`{"type":2,"data":{"name":"unknown"}}`))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, interaction.MsgNotRecognized, body)
	})

	t.Run("not json", func(t *testing.T) {
		t.Parallel()
		settings, key := newSettings(t)
		fiberApp := newServer(t, settings)

		status, body := postSigned(t, fiberApp, "/api/interactions", key, "1700000000", []byte(`not json`))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, interaction.MsgInvalidFormat, body)
	})

	t.Run("missing public key", func(t *testing.T) {
		t.Parallel()
		settings, key := newSettings(t)
		settings.ApplicationPublicKey = ""
		fiberApp := newServer(t, settings)

		status, body := postSigned(t, fiberApp, "/api/interactions", key, "1700000000", nil)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, interaction.MsgMissingPublicKey, body)
	})

	t.Run("missing signature header", func(t *testing.T) {
		t.Parallel()
		settings, _ := newSettings(t)
		fiberApp := newServer(t, settings)

		req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, "/api/interactions", bytes.NewReader([]byte(`{"type":1}`)))
		require.NoError(t, err)
		req.Header.Set(interaction.TimestampHeader, "1700000000")

		resp, err := fiberApp.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, interaction.MsgMissingHeaders, string(body))
	})

	t.Run("replayed signature is rejected", func(t *testing.T) {
		t.Parallel()
		settings, key := newSettings(t)
		settings.ReplayWindow = time.Minute
		fiberApp := newServer(t, settings)

		status, _ := postSigned(t, fiberApp, "/api/interactions", key, "1700000000", []byte(`{"type":1}`))
		require.Equal(t, http.StatusOK, status)

		status, body := postSigned(t, fiberApp, "/api/interactions", key, "1700000000", []byte(`{"type":1}`))
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, interaction.MsgInvalidSignature, body)
	})

	t.Run("stale timestamp is rejected", func(t *testing.T) {
		t.Parallel()
		settings, key := newSettings(t)
		settings.MaxTimestampSkew = 5 * time.Minute
		fiberApp := newServer(t, settings)

		status, body := postSigned(t, fiberApp, "/api/interactions", key, "1700000000", []byte(`{"type":1}`))
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, interaction.MsgInvalidSignature, body)

		now := strconv.FormatInt(time.Now().Unix(), 10)
		status, body = postSigned(t, fiberApp, "/api/interactions", key, now, []byte(`{"type":1}`))
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, `{"type":1}`, body)
	})
}
