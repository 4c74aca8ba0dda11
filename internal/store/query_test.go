package store

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("pagination clamping", func() {
	limits := Limits{MaxLimit: 100, MinLimit: 10, DefaultOffset: 0, BatchSize: 1000}

	intPtr := func(v int) *int { return &v }

	It("defaults to the minimum limit when none is requested", func() {
		limit, offset := limits.page(ListQuery{})
		Expect(limit).To(Equal(10))
		Expect(offset).To(Equal(0))
	})

	It("honors a requested limit inside the window", func() {
		limit, _ := limits.page(ListQuery{Limit: intPtr(50)})
		Expect(limit).To(Equal(50))
	})

	It("clamps a requested limit above the maximum", func() {
		limit, _ := limits.page(ListQuery{Limit: intPtr(5000)})
		Expect(limit).To(Equal(100))
	})

	It("never goes negative", func() {
		limit, offset := limits.page(ListQuery{Limit: intPtr(-3), Offset: intPtr(-7)})
		Expect(limit).To(Equal(0))
		Expect(offset).To(Equal(0))
	})

	It("keeps a requested offset", func() {
		_, offset := limits.page(ListQuery{Offset: intPtr(40)})
		Expect(offset).To(Equal(40))
	})
})

var _ = Describe("sort resolution", func() {
	allowed := map[string]string{
		"id":        "countries.id",
		"name":      "countries.name",
		"createdAt": "countries.created_at",
	}

	It("maps an allow-listed key", func() {
		clause := orderClause(ListQuery{SortBy: "createdAt", Order: "desc"}, allowed, "countries.name")
		Expect(clause).To(Equal("countries.created_at DESC"))
	})

	It("falls back to the default for unknown keys", func() {
		clause := orderClause(ListQuery{SortBy: "password"}, allowed, "countries.name")
		Expect(clause).To(Equal("countries.name ASC"))
	})

	It("treats anything but desc as ascending", func() {
		clause := orderClause(ListQuery{SortBy: "id", Order: "sideways"}, allowed, "countries.name")
		Expect(clause).To(Equal("countries.id ASC"))
	})

	It("accepts desc case-insensitively", func() {
		clause := orderClause(ListQuery{SortBy: "id", Order: "DESC"}, allowed, "countries.name")
		Expect(clause).To(Equal("countries.id DESC"))
	})
})

var _ = Describe("filter conditions", func() {
	It("scopes to active rows by default", func() {
		sql, _, err := buildConditions("countries", ListQuery{}).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).To(ContainSubstring("countries.deleted_at IS NULL"))
	})

	It("scopes to the soft-deleted partition when asked", func() {
		sql, _, err := buildConditions("countries", ListQuery{Deleted: true}).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).To(ContainSubstring("countries.deleted_at IS NOT NULL"))
	})

	It("wraps matches in case-insensitive contains patterns", func() {
		q := ListQuery{Matches: []Match{{Column: "countries.name", Value: "land"}}}
		sql, args, err := buildConditions("countries", q).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).To(ContainSubstring("countries.name ILIKE ?"))
		Expect(args).To(ContainElement("%land%"))
	})

	It("skips empty match values", func() {
		q := ListQuery{Matches: []Match{
			{Column: "countries.name", Value: ""},
			{Column: "countries.iso", Value: "US"},
		}}
		sql, args, err := buildConditions("countries", q).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).NotTo(ContainSubstring("countries.name"))
		Expect(args).To(HaveLen(1))
	})

	It("applies the created-at cutoff inclusively", func() {
		cutoff := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		q := ListQuery{CreatedBefore: &cutoff}
		sql, args, err := buildConditions("countries", q).ToSql()
		Expect(err).NotTo(HaveOccurred())
		Expect(sql).To(ContainSubstring("countries.created_at <= ?"))
		Expect(args).To(ContainElement(cutoff))
	})
})
