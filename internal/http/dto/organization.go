package dto

import (
	"refbase.app/api-server/internal/store"
)

type CreateOrganizationRequest struct {
	CountryID int64   `json:"countryId" binding:"required"`
	Name      string  `json:"name" binding:"required,min=5,max=20"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     string  `json:"phone" binding:"required,min=10,max=15"`
	URL       *string `json:"url" binding:"omitempty,url"`
}

func (r CreateOrganizationRequest) Params() store.CreateOrganizationParams {
	return store.CreateOrganizationParams{
		CountryID: r.CountryID,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		URL:       r.URL,
	}
}

type UpdateOrganizationRequest struct {
	CountryID *int64  `json:"countryId"`
	Name      *string `json:"name" binding:"omitempty,min=5,max=20"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,min=10,max=15"`
	URL       *string `json:"url" binding:"omitempty,url"`
}

func (r UpdateOrganizationRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.CountryID != nil {
		patch["country_id"] = *r.CountryID
	}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.Email != nil {
		patch["email"] = *r.Email
	}
	if r.Phone != nil {
		patch["phone"] = *r.Phone
	}
	if r.URL != nil {
		patch["url"] = *r.URL
	}
	return patch
}

// FilterOrganizationQuery uses "created" as its cutoff parameter, unlike the
// other resources.
type FilterOrganizationQuery struct {
	PaginationQuery
	Name         string `form:"name"`
	Email        string `form:"email"`
	Phone        string `form:"phone"`
	CountryName  string `form:"countryName"`
	ContactName  string `form:"contactName"`
	ContactEmail string `form:"contactEmail"`
	ContactPhone string `form:"contactPhone"`
	Created      string `form:"created"`
}

func (q FilterOrganizationQuery) Query() (store.ListQuery, error) {
	lq := q.base()
	lq.Matches = []store.Match{
		{Column: "organizations.name", Value: q.Name},
		{Column: "organizations.email", Value: q.Email},
		{Column: "organizations.phone", Value: q.Phone},
		{Column: "countries.name", Value: q.CountryName},
		{Column: "contacts.full_name", Value: q.ContactName},
		{Column: "contacts.email", Value: q.ContactEmail},
		{Column: "contacts.phone", Value: q.ContactPhone},
	}
	createdAt, err := parseCreatedAt(q.Created)
	if err != nil {
		return store.ListQuery{}, err
	}
	lq.CreatedBefore = createdAt
	return lq, nil
}
