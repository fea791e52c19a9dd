// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client for the operations the application needs:
// storing and serving the item images and size charts attached to
// inventory records. The abstraction supports both AWS S3 and self-hosted
// MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making
// it easy to mock storage interactions in unit tests (see
// core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "uniform-assets")
package storage
