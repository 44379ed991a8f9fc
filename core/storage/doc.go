// Package storage provides the optional object-storage archive for raw
// upstream documents.
//
// When enabled, every detail document fetched during a sync is written to the
// configured bucket as raw/<resource>/<index>.json before mapping, keeping an
// audit copy of exactly what the upstream served. The relational mirror never
// reads these objects back.
package storage
