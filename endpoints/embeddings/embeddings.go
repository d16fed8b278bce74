// Package embeddings binds the embeddings endpoint of the Nexos AI API.
package embeddings

import (
	"errors"

	"github.com/nexos-labs/nexos-go/core"
	"github.com/nexos-labs/nexos-go/domain"
)

// Operation names accepted by the embeddings request manager.
const (
	OpWithModel          = "with_model"
	OpWithDimensions     = "with_dimensions"
	OpWithEncodingFormat = "with_encoding_format"
)

// Embeddings is the controller for "POST: /embeddings".
type Embeddings struct {
	*core.Controller[domain.EmbeddingsRequest, domain.EmbeddingsResponse]
}

// New builds the embeddings controller on the given transport.
func New(transport *core.Transport) *Embeddings {
	ops := core.NewOperations[domain.EmbeddingsRequest]().
		MustRegister(OpWithModel, withModel).
		MustRegister(OpWithDimensions, withDimensions).
		MustRegister(OpWithEncodingFormat, withEncodingFormat)

	return &Embeddings{core.MustController[domain.EmbeddingsRequest, domain.EmbeddingsResponse](
		"embeddings", "POST: /embeddings", transport,
		core.WithOperations[domain.EmbeddingsRequest, domain.EmbeddingsResponse](ops),
	)}
}

func withModel(pending *domain.EmbeddingsRequest, args core.Args) error {
	model, ok := args.String("model")
	if !ok {
		return errors.New(`requires a string argument "model"`)
	}
	pending.Model = model
	return nil
}

func withDimensions(pending *domain.EmbeddingsRequest, args core.Args) error {
	dims, ok := args.Int("dimensions")
	if !ok {
		return errors.New(`requires an integer argument "dimensions"`)
	}
	pending.Dimensions = &dims
	return nil
}

func withEncodingFormat(pending *domain.EmbeddingsRequest, args core.Args) error {
	format, ok := args.String("encoding_format")
	if !ok {
		return errors.New(`requires a string argument "encoding_format"`)
	}
	pending.EncodingFormat = format
	return nil
}
