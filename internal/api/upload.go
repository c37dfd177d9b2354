package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
)

const DefaultUploadFolder = "products"

type UploadService struct{ c *Client }

// アップロードするファイル
type File struct {
	Name   string
	Reader io.Reader
}

// folderが空なら products
func (s *UploadService) Image(ctx context.Context, f File, folder string) (model.UploadedImage, error) {
	body, contentType, err := multipartBody("image", []File{f}, folder)
	if err != nil {
		return model.UploadedImage{}, unknownError(err)
	}

	var out model.UploadedImage
	err = s.c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/upload/image",
		rawBody:     body,
		contentType: contentType,
		key:         "image",
	}, &out)
	return out, err
}

func (s *UploadService) Images(ctx context.Context, files []File, folder string) ([]model.UploadedImage, error) {
	body, contentType, err := multipartBody("images", files, folder)
	if err != nil {
		return nil, unknownError(err)
	}

	var out []model.UploadedImage
	err = s.c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/upload/images",
		rawBody:     body,
		contentType: contentType,
		key:         "images",
	}, &out)
	return out, err
}

func (s *UploadService) DeleteImage(ctx context.Context, imageURL string) error {
	return s.c.delete(ctx, "/upload/image", map[string]string{"imageUrl": imageURL})
}

func multipartBody(field string, files []File, folder string) (io.Reader, string, error) {
	if folder == "" {
		folder = DefaultUploadFolder
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile(field, f.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, "", err
		}
	}
	if err := w.WriteField("folder", folder); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
