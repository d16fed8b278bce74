// Package storage binds the file storage endpoints of the Nexos AI API.
//
// The list and upload endpoints are fixed paths; get, download, and delete
// address a specific file, so their controllers are constructed per file ID
// with the ID baked into the endpoint path.
package storage

import (
	"errors"

	"github.com/nexos-labs/nexos-go/core"
	"github.com/nexos-labs/nexos-go/domain"
)

// Operation names accepted by the storage request managers.
const (
	OpWithPurpose = "with_purpose"
	OpWithLimit   = "with_limit"
	OpWithOrder   = "with_order"
	OpAfter       = "after"
)

// Upload is the controller for "POST: /files".
type Upload struct {
	*core.Controller[domain.StorageUploadRequest, domain.StorageFileResponse]
}

// NewUpload builds the file upload controller.
func NewUpload(transport *core.Transport) *Upload {
	ops := core.NewOperations[domain.StorageUploadRequest]().
		MustRegister(OpWithPurpose, func(pending *domain.StorageUploadRequest, args core.Args) error {
			purpose, ok := args.String("purpose")
			if !ok {
				return errors.New(`requires a string argument "purpose"`)
			}
			pending.Purpose = purpose
			return nil
		})

	return &Upload{core.MustController[domain.StorageUploadRequest, domain.StorageFileResponse](
		"storage.upload", "POST: /files", transport,
		core.WithOperations[domain.StorageUploadRequest, domain.StorageFileResponse](ops),
	)}
}

// List is the controller for "GET: /files". Its pending request is encoded
// as query parameters.
type List struct {
	*core.Controller[domain.StorageListRequest, domain.StorageListResponse]
}

// NewList builds the file listing controller.
func NewList(transport *core.Transport) *List {
	ops := core.NewOperations[domain.StorageListRequest]().
		MustRegister(OpWithPurpose, func(pending *domain.StorageListRequest, args core.Args) error {
			purpose, ok := args.String("purpose")
			if !ok {
				return errors.New(`requires a string argument "purpose"`)
			}
			pending.Purpose = purpose
			return nil
		}).
		MustRegister(OpWithLimit, func(pending *domain.StorageListRequest, args core.Args) error {
			limit, ok := args.Int("limit")
			if !ok {
				return errors.New(`requires an integer argument "limit"`)
			}
			pending.Limit = &limit
			return nil
		}).
		MustRegister(OpWithOrder, func(pending *domain.StorageListRequest, args core.Args) error {
			order, ok := args.String("order")
			if !ok {
				return errors.New(`requires a string argument "order"`)
			}
			pending.Order = order
			return nil
		}).
		MustRegister(OpAfter, func(pending *domain.StorageListRequest, args core.Args) error {
			after, ok := args.String("after")
			if !ok {
				return errors.New(`requires a string argument "after"`)
			}
			pending.After = after
			return nil
		})

	return &List{core.MustController[domain.StorageListRequest, domain.StorageListResponse](
		"storage.list", "GET: /files", transport,
		core.WithOperations[domain.StorageListRequest, domain.StorageListResponse](ops),
	)}
}

// Get is the controller for "GET: /files/{id}".
type Get struct {
	*core.Controller[domain.StorageGetRequest, domain.StorageFileResponse]
}

// NewGet builds a metadata controller addressing one file. A malformed file
// ID fails endpoint validation.
func NewGet(transport *core.Transport, fileID string) (*Get, error) {
	c, err := core.NewController[domain.StorageGetRequest, domain.StorageFileResponse](
		"storage.get", "GET: /files/"+fileID, transport)
	if err != nil {
		return nil, err
	}
	return &Get{c}, nil
}

// Download is the controller for "GET: /files/{id}/content".
type Download struct {
	*core.Controller[domain.StorageDownloadRequest, domain.StorageContentResponse]
}

// NewDownload builds a content download controller addressing one file.
func NewDownload(transport *core.Transport, fileID string) (*Download, error) {
	c, err := core.NewController[domain.StorageDownloadRequest, domain.StorageContentResponse](
		"storage.download", "GET: /files/"+fileID+"/content", transport)
	if err != nil {
		return nil, err
	}
	return &Download{c}, nil
}

// Delete is the controller for "DELETE: /files/{id}".
type Delete struct {
	*core.Controller[domain.StorageDeleteRequest, domain.StorageDeleteResponse]
}

// NewDelete builds a deletion controller addressing one file.
func NewDelete(transport *core.Transport, fileID string) (*Delete, error) {
	c, err := core.NewController[domain.StorageDeleteRequest, domain.StorageDeleteResponse](
		"storage.delete", "DELETE: /files/"+fileID, transport)
	if err != nil {
		return nil, err
	}
	return &Delete{c}, nil
}
