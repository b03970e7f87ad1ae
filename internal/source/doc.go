// Package source loads element descriptors from local files or S3.
//
// A location of the form s3://bucket/key is read with GetObject; anything
// else is treated as a file path. The S3 client resolves region and
// credentials through the AWS SDK's default configuration chain.
//
//	loader := source.NewLoader(source.WithS3Config(cfg.S3))
//	e, err := loader.Load(ctx, "s3://ui-fixtures/canvas.json")
package source
