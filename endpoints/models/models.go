// Package models binds the model catalog endpoint of the Nexos AI API.
package models

import (
	"github.com/nexos-labs/nexos-go/core"
	"github.com/nexos-labs/nexos-go/domain"
)

// List is the controller for "GET: /models".
type List struct {
	*core.Controller[domain.ModelsListRequest, domain.ModelsResponse]
}

// NewList builds the catalog controller. Its response hook backfills Total
// for deployments that omit it.
func NewList(transport *core.Transport) *List {
	return &List{core.MustController[domain.ModelsListRequest, domain.ModelsResponse](
		"models.list", "GET: /models", transport,
		core.WithResponseHook[domain.ModelsListRequest](func(resp *domain.ModelsResponse) {
			if resp.Total == 0 {
				resp.Total = len(resp.Data)
			}
		}),
	)}
}
