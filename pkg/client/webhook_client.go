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

package client

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/interlock-project/interactions-go/pkg/interaction"
	"github.com/interlock-project/interactions-go/pkg/signer"
)

// WebhookClient sends interactions to a webhook endpoint the way the
// platform does: each request carries a fresh signature over the
// timestamp and body. It exists for integration testing and local
// tooling against real webhook handlers.
type WebhookClient struct {
	key        ed25519.PrivateKey
	signer     signer.RequestSigner
	httpClient *http.Client
}

// NewWebhookClient creates a client signing with the given private key.
// If httpClient is nil, http.DefaultClient is used.
func NewWebhookClient(key ed25519.PrivateKey, httpClient *http.Client) *WebhookClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &WebhookClient{
		key:        key,
		signer:     signer.NewEd25519Signer(),
		httpClient: httpClient,
	}
}

// Do signs req and executes it
func (c *WebhookClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := c.signer.SignRequest(ctx, req, c.key); err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	return resp, nil
}

// SendInteraction serializes i, posts it signed to url and decodes the
// endpoint's interaction response. A non-200 status is returned as an
// error carrying the endpoint's one-line description.
func (c *WebhookClient) SendInteraction(ctx context.Context, url string, i *interaction.Interaction) (*interaction.Response, error) {
	body, err := json.Marshal(i)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize interaction: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		message, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("endpoint returned status %d: %s", resp.StatusCode, bytes.TrimSpace(message))
	}

	var response interaction.Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode interaction response: %w", err)
	}

	return &response, nil
}
