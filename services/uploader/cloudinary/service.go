package cloudinaryupload

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"

	"github.com/brightacademy/backend/core"
)

const folder = "course_images"

type service struct {
	cld *cloudinary.Cloudinary
}

var _ core.Uploader = (*service)(nil)

func NewService(conf *core.Config) (core.Uploader, error) {
	cld, err := cloudinary.NewFromParams(
		conf.Cloudinary.CloudName,
		conf.Cloudinary.APIKey,
		conf.Cloudinary.APISecret,
	)
	if err != nil {
		return nil, errors.Wrap(err, "configuring cloudinary")
	}
	return &service{cld: cld}, nil
}

func (svc *service) Upload(ctx context.Context, filename string, r io.Reader) (core.UploadedAsset, error) {
	res, err := svc.cld.Upload.Upload(ctx, r, uploader.UploadParams{Folder: folder})
	if err != nil {
		return core.UploadedAsset{}, errors.Wrapf(err, "uploading %s", filename)
	}
	return core.UploadedAsset{URL: res.SecureURL, PublicID: res.PublicID}, nil
}
