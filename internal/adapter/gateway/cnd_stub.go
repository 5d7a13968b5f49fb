// Package gateway holds adapters for the government portals the hub
// queries on behalf of its users.
package gateway

import (
	"context"

	"taxhub/internal/core/ports"

	"github.com/rs/zerolog"
)

// CndStubGateway stands in for the federal tax-clearance portal. The real
// portal fronts every query with a captcha wall, so until a browser
// automation backend lands this adapter refuses deterministically with the
// same code the portal produces.
//
// TODO: replace with the headless-browser backed client once the solver
// pipeline can feed it tokens.
type CndStubGateway struct {
	log zerolog.Logger
}

// NewCndStubGateway creates the stub portal client.
func NewCndStubGateway(log zerolog.Logger) *CndStubGateway {
	return &CndStubGateway{log: log}
}

// FetchCertificate always reports the portal's captcha refusal.
func (g *CndStubGateway) FetchCertificate(ctx context.Context, taxID string) (*ports.CndGatewayResult, error) {
	g.log.Debug().Str("tax_id", taxID).Msg("cnd stub gateway invoked")
	return &ports.CndGatewayResult{
		Succeeded: false,
		Code:      "CAPTCHA_REQUIRED",
		Message:   "portal requires human verification before issuing certificates",
	}, nil
}
