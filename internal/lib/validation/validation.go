// Package validation настраивает валидатор go-playground для моделей API
// и переводит его ошибки в список ошибок по полям.
//
// Помимо встроенных тегов (required, email) регистрируются собственные:
//   - notblank: строка содержит хотя бы один непробельный символ;
//   - isodate: календарная дата в формате YYYY-MM-DD;
//   - uni: институциональный логин: 2–3 строчные буквы и 1–4 цифры (например, abc1234).
//
// Имена полей в ошибках берутся из json-тегов, поэтому клиент видит "email", а не "Email".
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator"
)

const (
	// TagNotBlank: тег непустой строки без учёта пробелов.
	TagNotBlank = "notblank"
	// TagISODate: тег валидации календарной даты.
	TagISODate = "isodate"
	// TagUNI: тег валидации институционального логина.
	TagUNI = "uni"

	// DateLayout: формат календарной даты в запросах и ответах.
	DateLayout = "2006-01-02"
)

// Тексты ошибок, которые обработчики формируют сами, без валидатора.
const (
	MsgInvalidUUID = "must be a valid UUID"
	MsgInvalidType = "has invalid type"
)

var uniPattern = regexp.MustCompile(`^[a-z]{2,3}\d{1,4}$`)

// FieldError описывает нарушение правила для одного поля.
type FieldError struct {
	Field string `json:"field" example:"email"`
	Error string `json:"error" example:"must be a valid email address"`
}

// New возвращает валидатор с json-именами полей и зарегистрированными тегами isodate и uni.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	mustRegister(v, TagNotBlank, func(fl validator.FieldLevel) bool {
		return IsNotBlank(fl.Field().String())
	})
	mustRegister(v, TagISODate, func(fl validator.FieldLevel) bool {
		return IsISODate(fl.Field().String())
	})
	mustRegister(v, TagUNI, func(fl validator.FieldLevel) bool {
		return IsUNI(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// IsNotBlank сообщает, есть ли в строке непробельные символы.
func IsNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsISODate сообщает, является ли строка корректной датой YYYY-MM-DD.
func IsISODate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsUNI сообщает, соответствует ли строка формату институционального логина.
func IsUNI(s string) bool {
	return uniPattern.MatchString(s)
}

// FieldErrors переводит ошибки валидатора в список ошибок по полям
// в порядке их обнаружения.
func FieldErrors(errs validator.ValidationErrors) []FieldError {
	res := make([]FieldError, 0, len(errs))
	for _, err := range errs {
		res = append(res, FieldError{
			Field: err.Field(),
			Error: message(err),
		})
	}
	return res
}

func message(err validator.FieldError) string {
	switch err.ActualTag() {
	case "required":
		return "is a required field"
	case "email":
		return "must be a valid email address"
	case TagNotBlank:
		return "must not be blank"
	case TagISODate:
		return "must be a date in format YYYY-MM-DD"
	case TagUNI:
		return "must be 2-3 lowercase letters followed by 1-4 digits"
	default:
		return "is not valid"
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
