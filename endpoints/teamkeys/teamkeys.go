// Package teamkeys binds the team API-key management endpoints of the Nexos
// AI API. Update, delete, and regenerate address a specific key, so their
// controllers are constructed per key ID.
package teamkeys

import (
	"errors"

	"github.com/nexos-labs/nexos-go/core"
	"github.com/nexos-labs/nexos-go/domain"
)

// OpWithName sets the key's display name on create and update requests.
const OpWithName = "with_name"

// Create is the controller for "POST: /teams/api-keys".
type Create struct {
	*core.Controller[domain.TeamKeyCreateRequest, domain.TeamKeyResponse]
}

// NewCreate builds the key provisioning controller.
func NewCreate(transport *core.Transport) *Create {
	ops := core.NewOperations[domain.TeamKeyCreateRequest]().
		MustRegister(OpWithName, func(pending *domain.TeamKeyCreateRequest, args core.Args) error {
			name, ok := args.String("name")
			if !ok {
				return errors.New(`requires a string argument "name"`)
			}
			pending.Name = name
			return nil
		})

	return &Create{core.MustController[domain.TeamKeyCreateRequest, domain.TeamKeyResponse](
		"teamkeys.create", "POST: /teams/api-keys", transport,
		core.WithOperations[domain.TeamKeyCreateRequest, domain.TeamKeyResponse](ops),
	)}
}

// List is the controller for "GET: /teams/api-keys".
type List struct {
	*core.Controller[domain.TeamKeyListRequest, domain.TeamKeyListResponse]
}

// NewList builds the key roster controller.
func NewList(transport *core.Transport) *List {
	return &List{core.MustController[domain.TeamKeyListRequest, domain.TeamKeyListResponse](
		"teamkeys.list", "GET: /teams/api-keys", transport,
	)}
}

// Update is the controller for "PATCH: /teams/api-keys/{id}".
type Update struct {
	*core.Controller[domain.TeamKeyUpdateRequest, domain.TeamKeyResponse]
}

// NewUpdate builds a rename controller addressing one key.
func NewUpdate(transport *core.Transport, keyID string) (*Update, error) {
	ops := core.NewOperations[domain.TeamKeyUpdateRequest]().
		MustRegister(OpWithName, func(pending *domain.TeamKeyUpdateRequest, args core.Args) error {
			name, ok := args.String("name")
			if !ok {
				return errors.New(`requires a string argument "name"`)
			}
			pending.Name = name
			return nil
		})

	c, err := core.NewController[domain.TeamKeyUpdateRequest, domain.TeamKeyResponse](
		"teamkeys.update", "PATCH: /teams/api-keys/"+keyID, transport,
		core.WithOperations[domain.TeamKeyUpdateRequest, domain.TeamKeyResponse](ops))
	if err != nil {
		return nil, err
	}
	return &Update{c}, nil
}

// Delete is the controller for "DELETE: /teams/api-keys/{id}".
type Delete struct {
	*core.Controller[domain.TeamKeyDeleteRequest, domain.TeamKeyDeleteResponse]
}

// NewDelete builds a revocation controller addressing one key.
func NewDelete(transport *core.Transport, keyID string) (*Delete, error) {
	c, err := core.NewController[domain.TeamKeyDeleteRequest, domain.TeamKeyDeleteResponse](
		"teamkeys.delete", "DELETE: /teams/api-keys/"+keyID, transport)
	if err != nil {
		return nil, err
	}
	return &Delete{c}, nil
}

// Regenerate is the controller for "POST: /teams/api-keys/{id}/regenerate".
type Regenerate struct {
	*core.Controller[domain.TeamKeyRegenerateRequest, domain.TeamKeyResponse]
}

// NewRegenerate builds a secret-rotation controller addressing one key.
func NewRegenerate(transport *core.Transport, keyID string) (*Regenerate, error) {
	c, err := core.NewController[domain.TeamKeyRegenerateRequest, domain.TeamKeyResponse](
		"teamkeys.regenerate", "POST: /teams/api-keys/"+keyID+"/regenerate", transport)
	if err != nil {
		return nil, err
	}
	return &Regenerate{c}, nil
}
