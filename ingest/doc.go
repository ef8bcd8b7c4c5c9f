// Package ingest turns a directory of source documents into identified
// chunks and reconciles them against the persisted vector store.
//
// The Pipeline type runs the full batch job:
//   - Loading ordered page units from a document directory
//   - Splitting pages into overlapping chunks
//   - Assigning deterministic source:page:index identifiers
//   - Embedding and inserting only chunks the store has not seen
//
// Identifier assignment and store reconciliation are strictly
// sequential; only the embedding of already-partitioned candidate
// batches fans out over a worker pool. A run over unchanged documents
// inserts nothing and never invokes the embedder.
package ingest
