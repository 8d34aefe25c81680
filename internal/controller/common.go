package controller

import (
	"fmt"
	"io"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// bindJSON parses the request body into req and validates it.
func bindJSON(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return serverutils.NewValidationError("Invalid request body", nil)
	}
	return serverutils.ValidateRequest(req)
}

// bindQuery parses query parameters into q.
func bindQuery(ctx *fiber.Ctx, q interface{}) error {
	if err := ctx.QueryParser(q); err != nil {
		return serverutils.NewValidationError("Invalid query parameters", nil)
	}
	return nil
}

// formFile reads a multipart field into memory. A missing optional field
// yields nil.
func formFile(ctx *fiber.Ctx, field string, required bool) (*dto.UploadedFile, error) {
	header, err := ctx.FormFile(field)
	if err != nil {
		if required {
			return nil, serverutils.NewFieldError(field, "A file is required.")
		}
		return nil, nil
	}
	f, err := header.Open()
	if err != nil {
		return nil, serverutils.NewFieldError(field, "The file could not be read.")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, serverutils.NewFieldError(field, "The file could not be read.")
	}
	return &dto.UploadedFile{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func sendFile(ctx *fiber.Ctx, file *dto.FileResponse, disposition string) error {
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, file.FileName))
	return ctx.Send(file.Data)
}
