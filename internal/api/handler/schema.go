package handler

import "github.com/zerosmoke/health-portal/internal/core/domain"

// ── Auth ──────────────────────────────────────────────────────────────────────

type registerRequest struct {
	Name     string `json:"name" validate:"omitempty,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// ── Users ─────────────────────────────────────────────────────────────────────

type createUserRequest struct {
	Name     string `json:"name" validate:"omitempty,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

type updateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=120"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin user"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

// ── Articles ──────────────────────────────────────────────────────────────────

type createArticleRequest struct {
	Title   string   `json:"title" validate:"required,max=300"`
	Excerpt string   `json:"excerpt" validate:"omitempty,max=1000"`
	Content string   `json:"content" validate:"required"`
	Image   string   `json:"image"`
	Status  string   `json:"status" validate:"omitempty,oneof=draft published"`
	Tags    []string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
}

type updateArticleRequest struct {
	Title   *string   `json:"title" validate:"omitempty,max=300"`
	Excerpt *string   `json:"excerpt" validate:"omitempty,max=1000"`
	Content *string   `json:"content"`
	Image   *string   `json:"image"`
	Status  *string   `json:"status" validate:"omitempty,oneof=draft published"`
	Tags    *[]string `json:"tags"`
}

// ── Messages ──────────────────────────────────────────────────────────────────

type submitMessageRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required_without=Body,max=5000"`
	Body    string `json:"body" validate:"required_without=Message,max=5000"`
}

func (r submitMessageRequest) text() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Body
}

type replyRequest struct {
	ReplyText string `json:"replyText" validate:"required"`
}

// ── FAQs ──────────────────────────────────────────────────────────────────────

type createFAQRequest struct {
	Question string `json:"question" validate:"required,max=500"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category" validate:"omitempty,max=60"`
}

type updateFAQRequest struct {
	Question *string `json:"question" validate:"omitempty,max=500"`
	Answer   *string `json:"answer"`
	Category *string `json:"category" validate:"omitempty,max=60"`
}
