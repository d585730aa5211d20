package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/harsh12garg/Kirana-billing-software/internal/apierror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// decimal.Decimal is a struct; teach the validator to treat it as a string
	// so "required" means non-zero-value, not non-nil
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// bindAndValidate decodes the request body (JSON or form) into req and runs
// struct validation. On failure it writes the 400 response and returns false.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[strings.ToLower(fe.Field()[:1])+fe.Field()[1:]] = fe.Tag()
			}
			c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		} else {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		}
		return false
	}
	return true
}

// parseIDParam extracts and parses the :id path parameter. On failure it
// writes the 404 response (an unparseable id can never match a row) and
// returns false.
func parseIDParam(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(resource+" not found"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps a service error to the wire: record-not-found becomes a
// 404 with the "<resource> not found" message, anything else a 400.
func respondError(c *gin.Context, err error, resource string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, apierror.New(resource+" not found"))
		return
	}
	c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
}

// saveUpload stores an uploaded file under uploadDir with a random name,
// keeping the original extension. Returns the public path (/uploads/<name>).
func saveUpload(c *gin.Context, file *multipart.FileHeader, uploadDir string) (string, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	ext := filepath.Ext(file.Filename)
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
