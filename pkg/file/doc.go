// Package file defines the canonical descriptor that normalizes
// heterogeneous file inputs - a local path, an in-memory payload, or a
// multipart upload - into a single value usable by storage backends.
// Remote URLs are normalized into the same descriptor by pkg/fetch.
//
// # Origins
//
// Each input shape has its own constructor carrying only the fields
// that origin provides:
//
//	f, err := file.FromPath("/data/report.pdf")   // LocalPath set
//	f, err := file.FromBinary("report.pdf", data) // Binary set
//	f, err := file.FromUpload(fh)                 // Binary set, MIME detected
//
// A descriptor holds exactly one of LocalPath or Binary. Binary-only
// descriptors are written to disk on demand:
//
//	materialized, err := f.Materialize()
//
// Materialize hands ownership of the temporary file to the caller: this
// package never deletes it. Storage backends (pkg/storage) delete the
// temp file once they have ingested its bytes.
//
// # Temporary paths
//
// TempPath produces collision-resistant names in os.TempDir backed by
// 160 bits of entropy per call; no existence check is performed.
package file
