// Package models содержит схемы сущностей API в трёх вариантах:
// Create: тело запроса на создание, Update: частичное обновление,
// Read: представление, которое возвращает сервер.
//
// Правила валидации заданы тегами validate и проверяются валидатором
// из internal/lib/validation до вызова бизнес-логики.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserCreate: тело запроса на создание пользователя.
// Серверные поля (id, created_at, updated_at) клиент не передаёт.
type UserCreate struct {
	FirstName string  `json:"first_name" validate:"required,notblank" example:"Robert"`
	LastName  string  `json:"last_name" validate:"required,notblank" example:"Chase"`
	Email     string  `json:"email" validate:"required,email" example:"rchase@princetonplainsborough.com"`
	Username  string  `json:"username" validate:"required,notblank" example:"robertxchase"`
	Password  string  `json:"password" validate:"required" example:"password8"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,isodate" example:"1906-12-09"`
	Gender    *string `json:"gender,omitempty" example:"M"`
}

// UserUpdate: частичное обновление пользователя: меняются только переданные поля.
// Пустой объект: корректный запрос.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,notblank" example:"Gregory"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,notblank" example:"House"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email" example:"ghouse@princetonplainsborough.com"`
	Username  *string `json:"username,omitempty" example:"house"`
	Password  *string `json:"password,omitempty" example:"monsterTRUCKS!!"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,isodate" example:"1815-12-10"`
	Gender    *string `json:"gender,omitempty" example:"M"`
}

// UserRead: представление пользователя, которое возвращает сервер.
type UserRead struct {
	ID        uuid.UUID `json:"id" example:"99999999-9999-4999-8999-999999999999"`
	FirstName string    `json:"first_name" example:"Allison"`
	LastName  string    `json:"last_name" example:"Cameron"`
	Email     string    `json:"email" example:"acameron@example.com"`
	Username  string    `json:"username" example:"allisonxcameron"`
	Password  string    `json:"password" example:"password9"`
	BirthDate *Date     `json:"birth_date,omitempty" swaggertype:"string" example:"1815-12-10"`
	Gender    *string   `json:"gender,omitempty" example:"F"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-15T10:20:30Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-01-16T12:00:00Z"`
}

// NewUserRead строит серверное представление из запроса на создание:
// назначает новый идентификатор и ставит обе метки времени в текущее время UTC.
func NewUserRead(req UserCreate) (*UserRead, error) {
	const op = "models.NewUserRead"

	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%s: birth_date: %w", op, err)
	}

	now := time.Now().UTC()
	return &UserRead{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		BirthDate: birthDate,
		Gender:    req.Gender,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ApplyTo переносит переданные поля обновления на пользователя и обновляет updated_at.
// При ошибке пользователь не изменяется.
func (u UserUpdate) ApplyTo(user *UserRead) error {
	const op = "models.UserUpdate.ApplyTo"

	birthDate, err := parseOptionalDate(u.BirthDate)
	if err != nil {
		return fmt.Errorf("%s: birth_date: %w", op, err)
	}

	setIfPresent(&user.FirstName, u.FirstName)
	setIfPresent(&user.LastName, u.LastName)
	setIfPresent(&user.Email, u.Email)
	setIfPresent(&user.Username, u.Username)
	setIfPresent(&user.Password, u.Password)
	if birthDate != nil {
		user.BirthDate = birthDate
	}
	if u.Gender != nil {
		user.Gender = u.Gender
	}
	user.UpdatedAt = time.Now().UTC()
	return nil
}

func parseOptionalDate(s *string) (*Date, error) {
	if s == nil {
		return nil, nil
	}
	d, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
