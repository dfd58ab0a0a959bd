package dummyupload

import (
	"context"
	"io"
	"io/ioutil"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/brightacademy/backend/core"
)

const baseURL = "https://assets.invalid/"

// Service hosts uploads in memory; for dev and tests.
type Service struct {
	mu     sync.Mutex
	assets map[string][]byte
}

var _ core.Uploader = (*Service)(nil)

func NewService() *Service {
	return &Service{assets: make(map[string][]byte)}
}

func (svc *Service) Upload(ctx context.Context, filename string, r io.Reader) (core.UploadedAsset, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return core.UploadedAsset{}, errors.Wrapf(err, "reading %s", filename)
	}

	publicID := "course_images/" + uuid.New().String()
	svc.mu.Lock()
	svc.assets[publicID] = content
	svc.mu.Unlock()

	return core.UploadedAsset{URL: baseURL + publicID, PublicID: publicID}, nil
}

// Asset returns a previously uploaded binary, for test assertions.
func (svc *Service) Asset(publicID string) ([]byte, bool) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	content, ok := svc.assets[publicID]
	return content, ok
}
