package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/apierror"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Gecersiz JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindQueryAndValidate is bindAndValidate for query-string filters.
func bindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Gecersiz sorgu parametresi: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// idParam parses a numeric path parameter. Returns false after writing the
// 400 response when it is not a positive integer.
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("Gecersiz "+name))
		return 0, false
	}
	return uint(v), true
}

// respondError maps the service layer's typed errors to HTTP codes:
// ValidationError → 422, NotFoundError → 404, InsufficientStockError → 409.
// Anything else is a 500 with a generic message — internals never leak.
func respondError(c *gin.Context, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{ve.Alan: ve.Neden}))
		return
	}
	var nfe *service.NotFoundError
	if errors.As(err, &nfe) {
		c.JSON(http.StatusNotFound, apierror.New(nfe.Error()))
		return
	}
	var ise *service.InsufficientStockError
	if errors.As(err, &ise) {
		c.JSON(http.StatusConflict, apierror.New(ise.Error()))
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, apierror.New("Sunucu ici hata"))
}
