// Package nexos is the Go client SDK for the Nexos AI API.
//
// A Client wires one shared transport into a controller per endpoint:
//
//	client, err := nexos.NewClient(core.Config{
//	    BaseURL: "https://api.nexos.ai",
//	    APIKey:  core.NewSecret(os.Getenv("NEXOS_API_KEY")),
//	    Version: "v1",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := client.Chat.Request().
//	    Prepare(domain.ChatCompletionsRequest{
//	        Model:    "gpt-4o",
//	        Messages: []domain.ChatMessage{{Role: "user", Content: "hi"}},
//	    }).
//	    Send(ctx)
//
// Controllers are safe to create once and reuse; their request managers are
// not safe for concurrent use. See package core for the framework semantics.
package nexos

import (
	"github.com/nexos-labs/nexos-go/core"
	"github.com/nexos-labs/nexos-go/endpoints/audio"
	"github.com/nexos-labs/nexos-go/endpoints/chat"
	"github.com/nexos-labs/nexos-go/endpoints/embeddings"
	"github.com/nexos-labs/nexos-go/endpoints/images"
	"github.com/nexos-labs/nexos-go/endpoints/models"
	"github.com/nexos-labs/nexos-go/endpoints/storage"
	"github.com/nexos-labs/nexos-go/endpoints/teamkeys"
)

// Client bundles one controller per fixed-path endpoint around a shared
// transport. Endpoints addressing a specific resource (file get/download/
// delete, team-key update/delete/regenerate) are constructed on demand via
// the methods below.
type Client struct {
	transport *core.Transport

	Chat           *chat.Completions
	Embeddings     *embeddings.Embeddings
	Speech         *audio.Speech
	Transcription  *audio.Transcription
	Translation    *audio.Translation
	ImageGenerate  *images.Generation
	ImageEdit      *images.Edit
	ImageVariation *images.Variation
	FileUpload     *storage.Upload
	FileList       *storage.List
	TeamKeyCreate  *teamkeys.Create
	TeamKeyList    *teamkeys.List
	Models         *models.List
}

// NewClient validates cfg, builds the shared transport, and instantiates the
// endpoint controllers. Definition-time failures (bad config, malformed
// endpoint descriptors) surface here, before any request.
func NewClient(cfg core.Config, opts ...core.TransportOption) (*Client, error) {
	transport, err := core.NewTransport(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return newClient(transport), nil
}

// NewClientWithTransport wires controllers onto an existing transport. It is
// the injection point for sharing one connection pool across several clients
// or substituting a pre-configured transport in tests.
func NewClientWithTransport(transport *core.Transport) *Client {
	return newClient(transport)
}

func newClient(transport *core.Transport) *Client {
	return &Client{
		transport:      transport,
		Chat:           chat.NewCompletions(transport),
		Embeddings:     embeddings.New(transport),
		Speech:         audio.NewSpeech(transport),
		Transcription:  audio.NewTranscription(transport),
		Translation:    audio.NewTranslation(transport),
		ImageGenerate:  images.NewGeneration(transport),
		ImageEdit:      images.NewEdit(transport),
		ImageVariation: images.NewVariation(transport),
		FileUpload:     storage.NewUpload(transport),
		FileList:       storage.NewList(transport),
		TeamKeyCreate:  teamkeys.NewCreate(transport),
		TeamKeyList:    teamkeys.NewList(transport),
		Models:         models.NewList(transport),
	}
}

// Transport returns the shared transport service.
func (c *Client) Transport() *core.Transport {
	return c.transport
}

// File returns a metadata controller for one stored file.
func (c *Client) File(fileID string) (*storage.Get, error) {
	return storage.NewGet(c.transport, fileID)
}

// FileDownload returns a content controller for one stored file.
func (c *Client) FileDownload(fileID string) (*storage.Download, error) {
	return storage.NewDownload(c.transport, fileID)
}

// FileDelete returns a deletion controller for one stored file.
func (c *Client) FileDelete(fileID string) (*storage.Delete, error) {
	return storage.NewDelete(c.transport, fileID)
}

// TeamKeyUpdate returns a rename controller for one team API key.
func (c *Client) TeamKeyUpdate(keyID string) (*teamkeys.Update, error) {
	return teamkeys.NewUpdate(c.transport, keyID)
}

// TeamKeyDelete returns a revocation controller for one team API key.
func (c *Client) TeamKeyDelete(keyID string) (*teamkeys.Delete, error) {
	return teamkeys.NewDelete(c.transport, keyID)
}

// TeamKeyRegenerate returns a rotation controller for one team API key.
func (c *Client) TeamKeyRegenerate(keyID string) (*teamkeys.Regenerate, error) {
	return teamkeys.NewRegenerate(c.transport, keyID)
}

// Close releases the transport's connection pool.
func (c *Client) Close() {
	c.transport.Disconnect()
}
