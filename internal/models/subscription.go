package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionCreate: тело запроса на создание подписки.
//
// subscription_id здесь: клиентская строковая метка. Сервер её не сохраняет
// как идентификатор и всегда назначает собственный UUID (см. NewSubscriptionRead).
type SubscriptionCreate struct {
	SubscriptionID string  `json:"subscription_id" validate:"required,notblank" example:"32k-Spotify-Robert-Chase"`
	Service        string  `json:"service" validate:"required,notblank" example:"Spotify"`
	MemberName     string  `json:"member_name" validate:"required,notblank" example:"Robert Chase"`
	Username       string  `json:"username" validate:"required,notblank" example:"robertxchase"`
	Password       string  `json:"password" validate:"required" example:"thisisap4ssw0rd!!"`
	Gender         *string `json:"gender,omitempty" example:"M"`
}

// SubscriptionUpdate: частичное обновление подписки.
// Переданный subscription_id принимается, но идентификатор подписки не меняет.
type SubscriptionUpdate struct {
	SubscriptionID *string `json:"subscription_id,omitempty" example:"32k-Spotify-Robert-Chase"`
	Service        *string `json:"service,omitempty" example:"Spotify"`
	MemberName     *string `json:"member_name,omitempty" example:"Robert Chase"`
	Username       *string `json:"username,omitempty" example:"robertxchase"`
	Password       *string `json:"password,omitempty" example:"Brooklyn!199"`
	Gender         *string `json:"gender,omitempty" example:"M"`
}

// SubscriptionRead: представление подписки, которое возвращает сервер.
// MemberName ссылается на пользователя по имени, а не по идентификатору.
type SubscriptionRead struct {
	SubscriptionID uuid.UUID `json:"subscription_id" example:"0c7d2c4e-8a4b-4f0e-9d59-3c1f1b2a7e11"`
	Service        string    `json:"service" example:"Hulu"`
	MemberName     string    `json:"member_name" example:"Allison Cameron"`
	Username       string    `json:"username" example:"allisonxcameron"`
	Password       string    `json:"password" example:"thisisap4ssw0rd!"`
	Gender         *string   `json:"gender,omitempty" example:"F"`
	CreatedAt      time.Time `json:"created_at" example:"2025-01-15T10:20:30Z"`
	UpdatedAt      time.Time `json:"updated_at" example:"2025-01-16T12:00:00Z"`
}

// NewSubscriptionRead строит серверное представление подписки с новым UUID
// и метками времени, равными текущему времени UTC.
func NewSubscriptionRead(req SubscriptionCreate) *SubscriptionRead {
	now := time.Now().UTC()
	return &SubscriptionRead{
		SubscriptionID: uuid.New(),
		Service:        req.Service,
		MemberName:     req.MemberName,
		Username:       req.Username,
		Password:       req.Password,
		Gender:         req.Gender,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ApplyTo переносит переданные поля на подписку и обновляет updated_at.
func (u SubscriptionUpdate) ApplyTo(sub *SubscriptionRead) {
	setIfPresent(&sub.Service, u.Service)
	setIfPresent(&sub.MemberName, u.MemberName)
	setIfPresent(&sub.Username, u.Username)
	setIfPresent(&sub.Password, u.Password)
	if u.Gender != nil {
		sub.Gender = u.Gender
	}
	sub.UpdatedAt = time.Now().UTC()
}
