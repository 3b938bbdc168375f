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

package server

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/interlock-project/interactions-go/pkg/interaction"
	"github.com/interlock-project/interactions-go/pkg/verifier"
)

// InteractionHandler is the application callback invoked with each
// verified interaction. The returned response is serialized back to the
// platform.
type InteractionHandler func(ctx context.Context, i *interaction.Interaction) (*interaction.Response, error)

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// WebhookHandler is an http.Handler for the platform's interaction
// webhook endpoint. Every request is verified before the application
// callback sees it.
type WebhookHandler struct {
	publicKey    string
	verifier     verifier.RequestVerifier
	handle       InteractionHandler
	errorHandler ErrorHandler
	logger       *zap.Logger
}

// NewWebhookHandler creates a webhook handler with the default Ed25519
// verifier. publicKey is the application's verification key as a 64-char
// hex string.
func NewWebhookHandler(publicKey string, handle InteractionHandler) *WebhookHandler {
	return &WebhookHandler{
		publicKey:    publicKey,
		verifier:     verifier.NewEd25519Verifier(),
		handle:       handle,
		errorHandler: defaultErrorHandler,
		logger:       zap.NewNop(),
	}
}

// NewWebhookHandlerWithVerifier creates a webhook handler with a custom
// verifier
func NewWebhookHandlerWithVerifier(publicKey string, v verifier.RequestVerifier, handle InteractionHandler) *WebhookHandler {
	h := NewWebhookHandler(publicKey, handle)
	h.verifier = v
	return h
}

// SetErrorHandler sets a custom handler for verification failures
func (h *WebhookHandler) SetErrorHandler(handler ErrorHandler) {
	h.errorHandler = handler
}

// SetLogger sets a structured logger. The handler logs verification
// failures and application errors; it never logs request bodies.
func (h *WebhookHandler) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	h.logger = logger
}

// ServeHTTP verifies the request, hands the interaction to the
// application callback and writes its response
func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	i, err := h.verifier.VerifyRequest(r.Context(), r, h.publicKey)
	if err != nil {
		var verr *verifier.VerificationError
		if errors.As(err, &verr) {
			h.logger.Warn("interaction verification failed",
				zap.String("kind", verr.Kind().String()),
				zap.Error(verr.Unwrap()),
			)
		}
		h.errorHandler(w, r, err)
		return
	}

	resp, err := h.handle(r.Context(), i)
	if err != nil {
		h.logger.Error("interaction handler failed",
			zap.String("interaction_id", i.ID),
			zap.Error(err),
		)
		http.Error(w, "failed to handle interaction", http.StatusInternalServerError)
		return
	}
	if resp == nil {
		h.logger.Error("interaction handler returned no response",
			zap.String("interaction_id", i.ID),
		)
		http.Error(w, "failed to handle interaction", http.StatusInternalServerError)
		return
	}

	WriteResponse(w, resp)
}

// defaultErrorHandler writes the verification error with its own status
// mapping
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	WriteError(w, err)
}
