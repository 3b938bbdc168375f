// Copyright (C) 2026 Interlock Project
//
// This file is part of interactions-go.
//
// interactions-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// interactions-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with interactions-go.  If not, see <https://www.gnu.org/licenses/>.

package e2e

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interlock-project/interactions-go/pkg/client"
	"github.com/interlock-project/interactions-go/pkg/interaction"
	"github.com/interlock-project/interactions-go/pkg/server"
	"github.com/interlock-project/interactions-go/pkg/signer"
)

// TestE2E_FullWebhookCycle drives the complete platform exchange over a
// real HTTP server: sign, deliver, verify, handle, respond.
func TestE2E_FullWebhookCycle(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	h := server.NewWebhookHandler(hex.EncodeToString(pub),
		func(ctx context.Context, i *interaction.Interaction) (*interaction.Response, error) {
			switch i.Type {
			case interaction.TypePing:
				return interaction.NewPong(), nil
			default:
				return interaction.NewMessageResponse("echo "+i.ID), nil
			}
		})

	srv := httptest.NewServer(h)
	defer srv.Close()

	c := client.NewWebhookClient(priv, srv.Client())

	t.Run("ping pong", func(t *testing.T) {
		resp, err := c.SendInteraction(context.Background(), srv.URL, &interaction.Interaction{
			Type: interaction.TypePing,
		})
		require.NoError(t, err)
		assert.Equal(t, interaction.ResponsePong, resp.Type)
	})

	t.Run("application command", func(t *testing.T) {
		resp, err := c.SendInteraction(context.Background(), srv.URL, &interaction.Interaction{
			Type:    interaction.TypeApplicationCommand,
			ID:      "9001",
			Version: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, interaction.ResponseChannelMessage, resp.Type)
		require.NotNil(t, resp.Data)
		assert.Equal(t, "echo 9001", resp.Data.Content)
	})

	t.Run("success responses are json", func(t *testing.T) {
		body := []byte(`{"type":1}`)
		req, err := http.NewRequest(http.MethodPost, srv.URL, bytes.NewReader(body))
		require.NoError(t, err)

		s := signer.NewEd25519Signer()
		require.NoError(t, s.SignRequestWithTimestamp(context.Background(), req, priv, "1700000000"))

		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var decoded interaction.Response
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
		assert.Equal(t, interaction.ResponsePong, decoded.Type)
	})
}

// TestE2E_RejectionPaths checks the wire-visible failure behavior: the
// status collapses to 401 for signature mismatches and 500 for
// everything else, with a one-line description.
func TestE2E_RejectionPaths(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	h := server.NewWebhookHandler(hex.EncodeToString(pub),
		func(ctx context.Context, i *interaction.Interaction) (*interaction.Response, error) {
			return interaction.NewPong(), nil
		})

	srv := httptest.NewServer(h)
	defer srv.Close()

	send := func(t *testing.T, req *http.Request) (int, string) {
		t.Helper()
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	t.Run("unsigned request", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, srv.URL, bytes.NewReader([]byte(`{"type":1}`)))
		require.NoError(t, err)

		status, body := send(t, req)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "header 'x-signature-timestamp' is missing\n", body)
	})

	t.Run("forged signature", func(t *testing.T) {
		_, wrongPriv, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodPost, srv.URL, bytes.NewReader([]byte(`{"type":1}`)))
		require.NoError(t, err)

		s := signer.NewEd25519Signer()
		require.NoError(t, s.SignRequest(context.Background(), req, wrongPriv))

		status, body := send(t, req)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "signature is invalid\n", body)
	})

	t.Run("replayed signature with new timestamp", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, srv.URL, bytes.NewReader([]byte(`{"type":1}`)))
		require.NoError(t, err)

		s := signer.NewEd25519Signer()
		require.NoError(t, s.SignRequestWithTimestamp(context.Background(), req, priv, "1700000000"))
		req.Header.Set("x-signature-timestamp", "1800000000")

		status, _ := send(t, req)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("wrong route", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/interactions", bytes.NewReader([]byte(`{"type":1}`)))
		require.NoError(t, err)

		s := signer.NewEd25519Signer()
		require.NoError(t, s.SignRequestWithTimestamp(context.Background(), req, priv, "1700000000"))

		status, body := send(t, req)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Contains(t, body, "is not 'post /'")
	})

	t.Run("verified but not an interaction", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, srv.URL, bytes.NewReader([]byte("plain text")))
		require.NoError(t, err)

		s := signer.NewEd25519Signer()
		require.NoError(t, s.SignRequestWithTimestamp(context.Background(), req, priv, "1700000000"))

		status, body := send(t, req)
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Contains(t, body, "failed to deserialize request body as interaction")
	})
}
