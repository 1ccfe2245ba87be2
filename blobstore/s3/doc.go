// Package s3 provides a read-only BlobStore backed by AWS S3.
//
// # Basic Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := s3blob.NewStore(s3.NewFromConfig(cfg), "my-bucket", "tables/")
//	src := source.NewBlob(store, "users.json.zst")
package s3
