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
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/interlock-project/interactions-go/pkg/interaction"
	"github.com/interlock-project/interactions-go/pkg/server"
)

// This example runs a minimal interaction webhook endpoint: it answers
// the platform's Ping checks and replies to everything else with a text
// message. Configure it through the environment (or a .env file):
//
//	INTERACTIONS_PUBLIC_KEY  the application's public key, 64 hex chars
//	LISTEN_ADDR              listen address, default :8080
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	publicKey := os.Getenv("INTERACTIONS_PUBLIC_KEY")
	if publicKey == "" {
		log.Fatal("Required environment variable not set: INTERACTIONS_PUBLIC_KEY")
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	h := server.NewWebhookHandler(publicKey, handleInteraction)
	h.SetLogger(logger)

	logger.Info("ping-bot listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, h); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func handleInteraction(ctx context.Context, i *interaction.Interaction) (*interaction.Response, error) {
	switch i.Type {
	case interaction.TypePing:
		return interaction.NewPong(), nil
	default:
		return interaction.NewMessageResponse("ping-bot received a " + i.Type.String() + " interaction"), nil
	}
}
