// Package source loads record stores from the outside world.
//
// A Source produces a Table: the records and their column order. Open turns a
// Source into an immutable store.Store that a tabview.View can render.
//
// Available sources:
//
//   - Static: records held in memory.
//   - Blob: a JSON array of objects or a CSV file read from a
//     blobstore.BlobStore, optionally zstd or lz4 compressed.
//   - SQL: the result set of a database/sql query.
//   - Mongo: the documents of a MongoDB collection.
//   - DynamoDB: a full table scan.
//   - Multi: several sources loaded in parallel and concatenated in order.
package source
