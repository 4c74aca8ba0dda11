package dto

import (
	"refbase.app/api-server/internal/store"
)

type CreateContactRequest struct {
	OrganizationID int64  `json:"organizationId" binding:"required"`
	FullName       string `json:"fullName" binding:"required,min=5,max=20"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required,min=10,max=15"`
	Title          string `json:"title" binding:"required"`
}

func (r CreateContactRequest) Params() store.CreateContactParams {
	return store.CreateContactParams{
		OrganizationID: r.OrganizationID,
		FullName:       r.FullName,
		Title:          r.Title,
		Email:          r.Email,
		Phone:          r.Phone,
	}
}

type UpdateContactRequest struct {
	OrganizationID *int64  `json:"organizationId"`
	FullName       *string `json:"fullName" binding:"omitempty,min=5,max=20"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone" binding:"omitempty,min=10,max=15"`
	Title          *string `json:"title" binding:"omitempty,min=1"`
}

func (r UpdateContactRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.OrganizationID != nil {
		patch["organization_id"] = *r.OrganizationID
	}
	if r.FullName != nil {
		patch["full_name"] = *r.FullName
	}
	if r.Email != nil {
		patch["email"] = *r.Email
	}
	if r.Phone != nil {
		patch["phone"] = *r.Phone
	}
	if r.Title != nil {
		patch["title"] = *r.Title
	}
	return patch
}

type FilterContactQuery struct {
	PaginationQuery
	FullName          string `form:"fullName"`
	Email             string `form:"email"`
	Phone             string `form:"phone"`
	Title             string `form:"title"`
	OrganizationName  string `form:"organizationName"`
	OrganizationEmail string `form:"organizationEmail"`
	OrganizationPhone string `form:"organizationPhone"`
	CreatedAt         string `form:"createdAt"`
}

func (q FilterContactQuery) Query() (store.ListQuery, error) {
	lq := q.base()
	lq.Matches = []store.Match{
		{Column: "contacts.full_name", Value: q.FullName},
		{Column: "contacts.email", Value: q.Email},
		{Column: "contacts.phone", Value: q.Phone},
		{Column: "contacts.title", Value: q.Title},
		{Column: "organizations.name", Value: q.OrganizationName},
		{Column: "organizations.email", Value: q.OrganizationEmail},
		{Column: "organizations.phone", Value: q.OrganizationPhone},
	}
	createdAt, err := parseCreatedAt(q.CreatedAt)
	if err != nil {
		return store.ListQuery{}, err
	}
	lq.CreatedBefore = createdAt
	return lq, nil
}
