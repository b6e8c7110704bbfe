package stub

import (
	"errors"
	"io"
	"mime/multipart"

	"studywise-client/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// respondError writes a StatusError with its own status. Other errors go to
// the error handler middleware.
func respondError(ctx *fiber.Ctx, err error) error {
	var se *StatusError
	if !errors.As(err, &se) {
		return err
	}
	body := serverutils.ErrorResponse(se.Message)
	body.Details = se.Detail
	return ctx.Status(se.Code).JSON(body)
}

// respondFailed is respondError for the routes that also answer success=false.
func respondFailed(ctx *fiber.Ctx, err error) error {
	var se *StatusError
	if !errors.As(err, &se) {
		return err
	}
	return ctx.Status(se.Code).JSON(serverutils.FailedResponse(se.Message, se.Detail))
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
