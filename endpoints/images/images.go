// Package images binds the image generation, edit, and variation endpoints
// of the Nexos AI API.
package images

import (
	"errors"

	"github.com/nexos-labs/nexos-go/core"
	"github.com/nexos-labs/nexos-go/domain"
)

// Operation names accepted by the image request managers.
const (
	OpWithSize    = "with_size"
	OpWithQuality = "with_quality"
	OpWithStyle   = "with_style"
	OpWithCount   = "with_count"
)

// Generation is the controller for "POST: /images/generations".
type Generation struct {
	*core.Controller[domain.ImageGenerationRequest, domain.ImagesResponse]
}

// NewGeneration builds the image generation controller.
func NewGeneration(transport *core.Transport) *Generation {
	ops := core.NewOperations[domain.ImageGenerationRequest]().
		MustRegister(OpWithSize, func(pending *domain.ImageGenerationRequest, args core.Args) error {
			size, ok := args.String("size")
			if !ok {
				return errors.New(`requires a string argument "size"`)
			}
			pending.Size = size
			return nil
		}).
		MustRegister(OpWithQuality, func(pending *domain.ImageGenerationRequest, args core.Args) error {
			quality, ok := args.String("quality")
			if !ok {
				return errors.New(`requires a string argument "quality"`)
			}
			pending.Quality = quality
			return nil
		}).
		MustRegister(OpWithStyle, func(pending *domain.ImageGenerationRequest, args core.Args) error {
			style, ok := args.String("style")
			if !ok {
				return errors.New(`requires a string argument "style"`)
			}
			pending.Style = style
			return nil
		}).
		MustRegister(OpWithCount, func(pending *domain.ImageGenerationRequest, args core.Args) error {
			n, ok := args.Int("n")
			if !ok {
				return errors.New(`requires an integer argument "n"`)
			}
			pending.N = &n
			return nil
		})

	return &Generation{core.MustController[domain.ImageGenerationRequest, domain.ImagesResponse](
		"images.generations", "POST: /images/generations", transport,
		core.WithOperations[domain.ImageGenerationRequest, domain.ImagesResponse](ops),
	)}
}

// Edit is the controller for "POST: /images/edits".
type Edit struct {
	*core.Controller[domain.ImageEditRequest, domain.ImagesResponse]
}

// NewEdit builds the image edit controller.
func NewEdit(transport *core.Transport) *Edit {
	ops := core.NewOperations[domain.ImageEditRequest]().
		MustRegister(OpWithSize, func(pending *domain.ImageEditRequest, args core.Args) error {
			size, ok := args.String("size")
			if !ok {
				return errors.New(`requires a string argument "size"`)
			}
			pending.Size = size
			return nil
		}).
		MustRegister(OpWithCount, func(pending *domain.ImageEditRequest, args core.Args) error {
			n, ok := args.Int("n")
			if !ok {
				return errors.New(`requires an integer argument "n"`)
			}
			pending.N = &n
			return nil
		})

	return &Edit{core.MustController[domain.ImageEditRequest, domain.ImagesResponse](
		"images.edits", "POST: /images/edits", transport,
		core.WithOperations[domain.ImageEditRequest, domain.ImagesResponse](ops),
	)}
}

// Variation is the controller for "POST: /images/variations".
type Variation struct {
	*core.Controller[domain.ImageVariationRequest, domain.ImagesResponse]
}

// NewVariation builds the image variation controller.
func NewVariation(transport *core.Transport) *Variation {
	ops := core.NewOperations[domain.ImageVariationRequest]().
		MustRegister(OpWithSize, func(pending *domain.ImageVariationRequest, args core.Args) error {
			size, ok := args.String("size")
			if !ok {
				return errors.New(`requires a string argument "size"`)
			}
			pending.Size = size
			return nil
		}).
		MustRegister(OpWithCount, func(pending *domain.ImageVariationRequest, args core.Args) error {
			n, ok := args.Int("n")
			if !ok {
				return errors.New(`requires an integer argument "n"`)
			}
			pending.N = &n
			return nil
		})

	return &Variation{core.MustController[domain.ImageVariationRequest, domain.ImagesResponse](
		"images.variations", "POST: /images/variations", transport,
		core.WithOperations[domain.ImageVariationRequest, domain.ImagesResponse](ops),
	)}
}
