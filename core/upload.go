package core

import (
	"context"
	"io"
)

type (
	// UploadedAsset is the stable reference an asset host hands back
	// for an uploaded binary.
	UploadedAsset struct {
		URL      string `json:"url"`
		PublicID string `json:"public_id"`
	}

	// Uploader is any service that can host uploaded binaries.
	Uploader interface {
		Upload(ctx context.Context, filename string, r io.Reader) (UploadedAsset, error)
	}
)
