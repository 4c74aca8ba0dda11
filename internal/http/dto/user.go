package dto

import (
	"strings"
	"unicode"

	"refbase.app/api-server/internal/store"
)

type CreateUserRequest struct {
	UserName string `json:"userName" binding:"required,min=4,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=30"`
}

func (r CreateUserRequest) Params() store.CreateUserParams {
	return store.CreateUserParams{
		UserName: r.UserName,
		Email:    r.Email,
		Password: r.Password,
	}
}

// Validate applies the password policy the binding tags cannot express.
func (r CreateUserRequest) Validate() error {
	if !validPassword(r.Password) {
		return store.NewInvalidArgument("Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	return nil
}

const passwordSpecials = "@$!%*?&"

func validPassword(password string) bool {
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

type UpdateUserRequest struct {
	UserName *string `json:"userName" binding:"omitempty,min=4,max=20"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8,max=30"`
}

func (r UpdateUserRequest) Validate() error {
	if r.Password != nil && !validPassword(*r.Password) {
		return store.NewInvalidArgument("Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}
	return nil
}

func (r UpdateUserRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.UserName != nil {
		patch["user_name"] = *r.UserName
	}
	if r.Email != nil {
		patch["email"] = *r.Email
	}
	if r.Password != nil {
		patch["password"] = *r.Password
	}
	return patch
}

type FilterUserQuery struct {
	PaginationQuery
	UserName  string `form:"userName"`
	Email     string `form:"email"`
	CreatedAt string `form:"createdAt"`
}

func (q FilterUserQuery) Query() (store.ListQuery, error) {
	lq := q.base()
	lq.Matches = []store.Match{
		{Column: "users.user_name", Value: q.UserName},
		{Column: "users.email", Value: q.Email},
	}
	createdAt, err := parseCreatedAt(q.CreatedAt)
	if err != nil {
		return store.ListQuery{}, err
	}
	lq.CreatedBefore = createdAt
	return lq, nil
}
