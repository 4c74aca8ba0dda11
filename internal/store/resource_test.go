package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("resource engine", func() {
	var (
		ctx      context.Context
		querier  *fakeQuerier
		database *fakeDB
		limits   Limits
	)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	countryRow := func(id int64) []any {
		return []any{id, "Albania", "AL", "al.svg", now, now, nil}
	}

	BeforeEach(func() {
		ctx = context.Background()
		querier = &fakeQuerier{}
		database = &fakeDB{querier: querier}
		limits = DefaultLimits()
	})

	newStore := func() *CountryStore {
		return newCountryStore(database, limits)
	}

	Describe("Create", func() {
		It("inserts one row and returns the generated id", func() {
			querier.rowFn = func(sql string, args []any) pgx.Row {
				return fakeRow{values: []any{int64(7)}}
			}

			id, err := newStore().Create(ctx, CreateCountryParams{
				Name: "Albania", ISO: "AL", Flag: "al.svg", CurrencyID: 3,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(int64(7)))

			Expect(querier.captured).To(HaveLen(1))
			Expect(querier.captured[0].sql).To(ContainSubstring("INSERT INTO countries"))
			Expect(querier.captured[0].sql).To(ContainSubstring("RETURNING id"))
			// name, iso, flag, currency_id plus the updated_at stamp
			Expect(querier.captured[0].args).To(HaveLen(5))
		})

		It("surfaces driver errors untouched", func() {
			boom := errors.New("boom")
			querier.rowFn = func(string, []any) pgx.Row { return fakeRow{err: boom} }

			_, err := newStore().Create(ctx, CreateCountryParams{Name: "Albania"})
			Expect(err).To(MatchError(boom))
		})
	})

	Describe("FindOne", func() {
		It("selects only the active partition by default", func() {
			querier.rowFn = func(sql string, args []any) pgx.Row {
				return fakeRow{values: countryRow(5)}
			}

			entity, err := newStore().FindOne(ctx, 5, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(entity.ID).To(Equal(int64(5)))
			Expect(entity.DeletedAt).To(BeNil())

			Expect(querier.captured[0].sql).To(ContainSubstring("deleted_at IS NULL"))
			Expect(querier.captured[0].sql).NotTo(ContainSubstring("IS NOT NULL"))
		})

		It("flips to the soft-deleted partition on request", func() {
			querier.rowFn = func(sql string, args []any) pgx.Row {
				return fakeRow{values: []any{int64(5), "Albania", "AL", "al.svg", now, now, now}}
			}

			entity, err := newStore().FindOne(ctx, 5, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(entity.DeletedAt).NotTo(BeNil())
			Expect(querier.captured[0].sql).To(ContainSubstring("deleted_at IS NOT NULL"))
		})

		It("translates an empty result into NotFound", func() {
			_, err := newStore().FindOne(ctx, 5, false)

			var notFound *NotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(err.Error()).To(Equal(`Country with {"id":5} not found`))
		})
	})

	Describe("FindAll", func() {
		It("fetches page and total in one round trip", func() {
			querier.queryFn = func(sql string, args []any) (pgx.Rows, error) {
				return &fakeRows{rows: [][]any{
					{int64(1), "Albania", "AL", "al.svg", "Lek", now, nil, int64(42)},
					{int64(2), "Andorra", "AD", "ad.svg", "Euro", now, nil, int64(42)},
				}}, nil
			}

			page, err := newStore().FindAll(ctx, ListQuery{})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Data).To(HaveLen(2))
			Expect(page.Count).To(Equal(int64(42)))
			Expect(page.Limit).To(Equal(10))
			Expect(page.Offset).To(Equal(0))
			Expect(*page.Data[0].Currency).To(Equal("Lek"))

			sql := querier.captured[0].sql
			Expect(sql).To(ContainSubstring("COUNT(*) OVER() AS total_count"))
			Expect(sql).To(ContainSubstring("LEFT JOIN currencies ON currencies.id = countries.currency_id"))
			Expect(sql).To(ContainSubstring("ORDER BY countries.name ASC"))
			Expect(sql).To(ContainSubstring("LIMIT 10"))
		})

		It("reports an empty page as count zero", func() {
			querier.queryFn = func(string, []any) (pgx.Rows, error) {
				return &fakeRows{}, nil
			}

			page, err := newStore().FindAll(ctx, ListQuery{})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Data).NotTo(BeNil())
			Expect(page.Data).To(BeEmpty())
			Expect(page.Count).To(BeZero())
		})

		It("clamps an oversized limit before it reaches the database", func() {
			querier.queryFn = func(string, []any) (pgx.Rows, error) {
				return &fakeRows{}, nil
			}

			oversized := 5000
			page, err := newStore().FindAll(ctx, ListQuery{Limit: &oversized})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Limit).To(Equal(100))
			Expect(querier.captured[0].sql).To(ContainSubstring("LIMIT 100"))
		})
	})

	Describe("single-row lifecycle", func() {
		It("soft-deletes an active row", func() {
			calls := 0
			querier.rowFn = func(sql string, args []any) pgx.Row {
				calls++
				if calls == 1 {
					return fakeRow{values: countryRow(5)}
				}
				return fakeRow{values: []any{int64(5), "Albania", "AL", "al.svg", now, now, now}}
			}

			entity, err := newStore().Remove(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(entity.DeletedAt).NotTo(BeNil())

			Expect(querier.captured).To(HaveLen(2))
			Expect(querier.captured[0].sql).To(ContainSubstring("deleted_at IS NULL"))
			Expect(querier.captured[1].sql).To(ContainSubstring("UPDATE countries"))
			Expect(querier.captured[1].sql).To(ContainSubstring("deleted_at"))
		})

		It("refuses to soft-delete a missing row", func() {
			_, err := newStore().Remove(ctx, 5)
			var notFound *NotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(querier.captured).To(HaveLen(1))
		})

		It("restores only rows that are currently soft-deleted", func() {
			calls := 0
			querier.rowFn = func(sql string, args []any) pgx.Row {
				calls++
				if calls == 1 {
					return fakeRow{values: []any{int64(5), "Albania", "AL", "al.svg", now, now, now}}
				}
				return fakeRow{values: countryRow(5)}
			}

			entity, err := newStore().Restore(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(entity.DeletedAt).To(BeNil())
			Expect(querier.captured[0].sql).To(ContainSubstring("deleted_at IS NOT NULL"))
		})

		It("hard-deletes only from the soft-deleted state", func() {
			calls := 0
			querier.rowFn = func(sql string, args []any) pgx.Row {
				calls++
				if calls == 1 {
					return fakeRow{values: []any{int64(5), "Albania", "AL", "al.svg", now, now, now}}
				}
				return fakeRow{values: countryRow(5)}
			}

			_, err := newStore().Delete(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(querier.captured[1].sql).To(ContainSubstring("DELETE FROM countries"))
		})
	})

	Describe("bulk validation", func() {
		It("rejects an empty id list", func() {
			_, err := newStore().BulkRemove(ctx, nil)
			var invalid *InvalidArgumentError
			Expect(errors.As(err, &invalid)).To(BeTrue())
			Expect(err.Error()).To(Equal("IDs array is required"))
		})

		It("reports NotFound with the requested id list when nothing matches", func() {
			querier.queryFn = func(string, []any) (pgx.Rows, error) {
				return &fakeRows{}, nil
			}

			_, err := newStore().BulkRemove(ctx, []int64{1, 2, 3})
			var notFound *NotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(err.Error()).To(Equal(`Country with {"id":"1, 2, 3"} not found`))
		})

		It("collapses duplicate ids before validating", func() {
			querier.queryFn = func(string, []any) (pgx.Rows, error) {
				return &fakeRows{rows: [][]any{{int64(5)}}}, nil
			}

			_, err := newStore().BulkRemove(ctx, []int64{5, 5, 6})
			Expect(err).NotTo(HaveOccurred())
			Expect(querier.captured[0].args).To(Equal([]any{int64(5), int64(6)}))
		})

		It("mutates the full requested list when only part of it matches", func() {
			querier.queryFn = func(sql string, args []any) (pgx.Rows, error) {
				// existence probe sees only two of the three ids
				return &fakeRows{rows: [][]any{{int64(1)}, {int64(2)}}}, nil
			}
			tx := &fakeQuerier{queryFn: func(sql string, args []any) (pgx.Rows, error) {
				return &fakeRows{rows: [][]any{{int64(1)}, {int64(2)}}}, nil
			}}
			database.txQuerier = tx

			out, err := newStore().BulkRemove(ctx, []int64{1, 2, 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.IDs).To(Equal([]int64{1, 2}))
			Expect(out.Message).To(Equal("Soft-deleted 2 countries in batches"))
			// statement still targets all three requested ids
			Expect(tx.captured[0].args).To(ContainElements(int64(1), int64(2), int64(3)))
		})
	})

	Describe("batched mutation", func() {
		BeforeEach(func() {
			limits.BatchSize = 2
		})

		validateAll := func(ids ...int64) {
			querier.queryFn = func(string, []any) (pgx.Rows, error) {
				rows := make([][]any, len(ids))
				for i, id := range ids {
					rows[i] = []any{id}
				}
				return &fakeRows{rows: rows}, nil
			}
		}

		It("splits ids into fixed-size chunks inside one transaction", func() {
			validateAll(1, 2, 3, 4, 5)
			tx := &fakeQuerier{queryFn: func(sql string, args []any) (pgx.Rows, error) {
				rows := make([][]any, len(args))
				for i, a := range args {
					rows[i] = []any{a}
				}
				return &fakeRows{rows: rows}, nil
			}}
			database.txQuerier = tx

			out, err := newStore().BulkDelete(ctx, []int64{1, 2, 3, 4, 5})
			Expect(err).NotTo(HaveOccurred())
			Expect(database.txCalls).To(Equal(1))
			Expect(tx.captured).To(HaveLen(3))
			Expect(tx.captured[0].args).To(HaveLen(2))
			Expect(tx.captured[2].args).To(HaveLen(1))
			Expect(out.IDs).To(Equal([]int64{1, 2, 3, 4, 5}))
			Expect(out.Message).To(Equal("Permanently deleted 5 countries in batches."))
		})

		It("aborts the whole run when a later batch fails", func() {
			validateAll(1, 2, 3)
			boom := errors.New("deadlock detected")
			calls := 0
			tx := &fakeQuerier{queryFn: func(sql string, args []any) (pgx.Rows, error) {
				calls++
				if calls == 2 {
					return nil, boom
				}
				return &fakeRows{rows: [][]any{{int64(1)}, {int64(2)}}}, nil
			}}
			database.txQuerier = tx

			out, err := newStore().BulkRemove(ctx, []int64{1, 2, 3})
			Expect(err).To(MatchError(boom))
			Expect(out).To(BeNil())
		})

		It("restores in batches with its own summary line", func() {
			validateAll(1, 2, 3)
			tx := &fakeQuerier{queryFn: func(sql string, args []any) (pgx.Rows, error) {
				rows := make([][]any, 0, len(args))
				for _, a := range args {
					if t, ok := a.(int64); ok {
						rows = append(rows, []any{t})
					}
				}
				return &fakeRows{rows: rows}, nil
			}}
			database.txQuerier = tx

			out, err := newStore().BulkRestore(ctx, []int64{1, 2, 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Message).To(Equal("Restored 3 countries in batches"))
			Expect(tx.captured[0].sql).To(ContainSubstring("UPDATE countries"))
		})
	})

	Describe("BulkCreate", func() {
		It("rejects an empty payload", func() {
			_, err := newStore().BulkCreate(ctx, nil)
			var invalid *InvalidArgumentError
			Expect(errors.As(err, &invalid)).To(BeTrue())
			Expect(err.Error()).To(Equal("No countries provided for mass create"))
		})

		It("inserts in chunks and returns every created row", func() {
			limits.BatchSize = 2
			tx := &fakeQuerier{}
			created := int64(0)
			tx.queryFn = func(sql string, args []any) (pgx.Rows, error) {
				// 5 args per row: name, iso, flag, currency_id, updated_at
				n := len(args) / 5
				rows := make([][]any, n)
				for i := range rows {
					created++
					rows[i] = countryRow(created)
				}
				return &fakeRows{rows: rows}, nil
			}
			database.txQuerier = tx

			batch, err := newStore().BulkCreate(ctx, []CreateCountryParams{
				{Name: "Albania", ISO: "AL", Flag: "al.svg", CurrencyID: 1},
				{Name: "Andorra", ISO: "AD", Flag: "ad.svg", CurrencyID: 2},
				{Name: "Austria", ISO: "AT", Flag: "at.svg", CurrencyID: 2},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(batch.Data).To(HaveLen(3))
			Expect(batch.Message).To(Equal("Successfully created 3 countries"))
			Expect(tx.captured).To(HaveLen(2))
			Expect(tx.captured[0].sql).To(ContainSubstring("INSERT INTO countries"))
			Expect(tx.captured[0].args).To(HaveLen(10))
			Expect(tx.captured[1].args).To(HaveLen(5))
		})
	})

	Describe("Update", func() {
		It("patches columns and bumps updated_at", func() {
			querier.rowFn = func(sql string, args []any) pgx.Row {
				return fakeRow{values: countryRow(5)}
			}

			entity, err := newStore().Update(ctx, 5, map[string]any{"name": "Shqipëria"})
			Expect(err).NotTo(HaveOccurred())
			Expect(entity.ID).To(Equal(int64(5)))

			sql := querier.captured[0].sql
			Expect(sql).To(ContainSubstring("UPDATE countries"))
			Expect(sql).To(ContainSubstring("updated_at"))
			Expect(sql).To(ContainSubstring("RETURNING id, name, iso, flag, created_at, updated_at, deleted_at"))
		})

		It("maps a missing row to NotFound", func() {
			_, err := newStore().Update(ctx, 9, map[string]any{"name": "x"})
			var notFound *NotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})
})
