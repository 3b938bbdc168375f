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

package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/http/httptest"

	"github.com/interlock-project/interactions-go/pkg/client"
	"github.com/interlock-project/interactions-go/pkg/interaction"
	"github.com/interlock-project/interactions-go/pkg/server"
)

// This example demonstrates the full signing and verification round trip
// in a single process: it generates a key pair, stands up a webhook
// endpoint verifying against the public key, then sends signed
// interactions to it the way the platform would.
func main() {
	ctx := context.Background()

	// Step 1: Generate an Ed25519 key pair
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("Failed to generate key pair: %v", err)
	}
	fmt.Printf("Step 1: Generated key pair\n")
	fmt.Printf("  Public key: %s\n\n", hex.EncodeToString(pub))

	// Step 2: Stand up a webhook endpoint
	h := server.NewWebhookHandler(hex.EncodeToString(pub),
		func(ctx context.Context, i *interaction.Interaction) (*interaction.Response, error) {
			if i.Type == interaction.TypePing {
				return interaction.NewPong(), nil
			}
			return interaction.NewMessageResponse("verified interaction "+i.ID), nil
		})

	srv := httptest.NewServer(h)
	defer srv.Close()
	fmt.Printf("Step 2: Webhook endpoint listening at %s\n\n", srv.URL)

	// Step 3: Send a signed ping
	c := client.NewWebhookClient(priv, srv.Client())

	pong, err := c.SendInteraction(ctx, srv.URL, &interaction.Interaction{
		Type: interaction.TypePing,
	})
	if err != nil {
		log.Fatalf("Ping failed: %v", err)
	}
	fmt.Printf("Step 3: Ping answered with response type %d\n\n", pong.Type)

	// Step 4: Send a signed command interaction
	resp, err := c.SendInteraction(ctx, srv.URL, &interaction.Interaction{
		Type:    interaction.TypeApplicationCommand,
		ID:      "123456789",
		Token:   "example-token",
		Version: 1,
	})
	if err != nil {
		log.Fatalf("Command failed: %v", err)
	}
	fmt.Printf("Step 4: Command answered: %q\n\n", resp.Data.Content)

	// Step 5: A client with the wrong key is rejected
	_, wrongPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("Failed to generate key pair: %v", err)
	}

	forger := client.NewWebhookClient(wrongPriv, srv.Client())
	if _, err := forger.SendInteraction(ctx, srv.URL, &interaction.Interaction{Type: interaction.TypePing}); err != nil {
		fmt.Printf("Step 5: Forged request rejected as expected: %v\n", err)
	}
}
