// Package storage provides the output consumers for file descriptors:
// backends that accept a pkg/file descriptor, persist its bytes, and
// delete the temporary local file once it has been ingested.
//
// Two implementations are provided:
//   - LocalStorage: filesystem-based storage, confined to a base directory
//   - S3Storage: Amazon S3 and S3-compatible services (MinIO, Wasabi, etc.)
//
// # Usage
//
//	store, err := storage.NewLocalStorage("/var/lib/app/files", "/files/")
//	if err != nil {
//	    return err
//	}
//
//	f, err := acquirer.Acquire(ctx, url, nil) // pkg/fetch
//	if err != nil {
//	    return err
//	}
//
//	obj, err := store.Ingest(ctx, f, "attachments")
//	// obj.Key, obj.URL; the temp file behind f is gone on success
//
// Objects are keyed under a uuid path component so repeated ingests of
// the same filename never collide. Both backends validate keys against
// path traversal.
//
// # Ownership
//
// Ingest is the end of the temp-file ownership chain started by
// pkg/fetch and pkg/file: a successful ingest deletes the temp file, a
// failed one leaves it for the caller to retry or discard.
package storage
