package persistence_test

import (
	"context"
	"errors"
	"inventory-server/internal/infra/sql"
	"inventory-server/internal/infra/utils"
	"inventory-server/internal/inventory/domain"
	"inventory-server/internal/inventory/persistence"
	"inventory-server/internal/inventory/usecases"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func newSchema(typeID shareddomain.ID, name string, kind domain.FieldKind, position int) domain.FieldSchema {
	schema, err := domain.NewFieldSchemaBuilder().
		WithInstallationTypeID(typeID).
		WithName(name).
		WithKind(kind).
		WithPosition(position).
		Build()
	gomega.ExpectWithOffset(1, err).NotTo(gomega.HaveOccurred())
	return schema
}

var _ = ginkgo.Describe("SchemaRepository", func() {
	var (
		orm        sql.ORM
		repo       *persistence.SimpleSchemaRepository
		properties *persistence.SimplePropertyRepository
		typeID     shareddomain.ID
		ctx        context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = persistence.NewSchemaRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		properties, err = persistence.NewPropertyRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		typeID = shareddomain.ID(utils.GenerateUUID())
		ctx = context.Background()
	})

	ginkgo.Context("Create", func() {
		ginkgo.It("should list live schemas by position", func() {
			gomega.Expect(repo.Create(ctx, newSchema(typeID, "opened", domain.DateKind{}, 1))).To(gomega.Succeed())
			gomega.Expect(repo.Create(ctx, newSchema(typeID, "capacity", domain.NumberKind{}, 0))).To(gomega.Succeed())
			gomega.Expect(repo.Create(ctx, newSchema("other-type", "capacity", domain.NumberKind{}, 0))).To(gomega.Succeed())

			schemas, err := repo.FindByInstallationTypeID(ctx, typeID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(schemas).To(gomega.HaveLen(2))
			gomega.Expect(schemas[0].Name).To(gomega.Equal(shareddomain.Name("capacity")))
			gomega.Expect(schemas[1].Name).To(gomega.Equal(shareddomain.Name("opened")))
		})

		ginkgo.It("should keep enum options in order", func() {
			schema := newSchema(typeID, "size", domain.EnumKind{Values: []string{"small", "medium", "large"}}, 0)
			gomega.Expect(repo.Create(ctx, schema)).To(gomega.Succeed())

			stored, err := repo.GetByID(ctx, schema.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stored.Type()).To(gomega.Equal(domain.FieldTypeEnum))
			gomega.Expect(stored.Options()).To(gomega.Equal([]string{"small", "medium", "large"}))
		})

		ginkgo.It("should refuse a live name differing only in case", func() {
			gomega.Expect(repo.Create(ctx, newSchema(typeID, "Capacity", domain.NumberKind{}, 0))).To(gomega.Succeed())

			err := repo.Create(ctx, newSchema(typeID, "capacity", domain.StringKind{}, 1))
			gomega.Expect(errors.Is(err, usecases.ErrDuplicateSchemaName)).To(gomega.BeTrue())
		})

		ginkgo.It("should allow reusing the name of a deleted schema", func() {
			deleted := newSchema(typeID, "capacity", domain.NumberKind{}, 0)
			gomega.Expect(repo.Create(ctx, deleted)).To(gomega.Succeed())
			gomega.Expect(repo.Delete(ctx, deleted.ID)).To(gomega.Succeed())

			gomega.Expect(repo.Create(ctx, newSchema(typeID, "capacity", domain.StringKind{}, 0))).To(gomega.Succeed())
		})
	})

	ginkgo.Context("Update", func() {
		ginkgo.It("should refuse renaming onto another live name", func() {
			first := newSchema(typeID, "capacity", domain.NumberKind{}, 0)
			second := newSchema(typeID, "opened", domain.DateKind{}, 1)
			gomega.Expect(repo.Create(ctx, first)).To(gomega.Succeed())
			gomega.Expect(repo.Create(ctx, second)).To(gomega.Succeed())

			second.Name = "CAPACITY"
			err := repo.Update(ctx, second)
			gomega.Expect(errors.Is(err, usecases.ErrDuplicateSchemaName)).To(gomega.BeTrue())
		})
	})

	ginkgo.Context("DeleteMany", func() {
		ginkgo.It("should hide schemas and keep them for the purge", func() {
			schema := newSchema(typeID, "capacity", domain.NumberKind{}, 0)
			gomega.Expect(repo.Create(ctx, schema)).To(gomega.Succeed())

			gomega.Expect(repo.DeleteMany(ctx, []shareddomain.ID{schema.ID})).To(gomega.Succeed())

			_, err := repo.GetByID(ctx, schema.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrSchemaNotFound))

			live, err := repo.FindByInstallationTypeID(ctx, typeID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(live).To(gomega.BeEmpty())

			expired, err := repo.FindDeletedBefore(ctx, time.Now().Add(time.Minute))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(expired).To(gomega.HaveLen(1))
			gomega.Expect(expired[0].IsDeleted()).To(gomega.BeTrue())

			recent, err := repo.FindDeletedBefore(ctx, time.Now().Add(-time.Minute))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(recent).To(gomega.BeEmpty())
		})

		ginkgo.It("should accept an empty id list", func() {
			gomega.Expect(repo.DeleteMany(ctx, nil)).To(gomega.Succeed())
		})
	})

	ginkgo.Context("ForceDeleteMany", func() {
		ginkgo.It("should remove schemas together with their values", func() {
			schema := newSchema(typeID, "capacity", domain.NumberKind{}, 0)
			kept := newSchema(typeID, "opened", domain.DateKind{}, 1)
			gomega.Expect(repo.Create(ctx, schema)).To(gomega.Succeed())
			gomega.Expect(repo.Create(ctx, kept)).To(gomega.Succeed())

			installationID := shareddomain.ID(utils.GenerateUUID())
			gomega.Expect(properties.Upsert(ctx, domain.NewPropertyValue(installationID, schema.ID, "12"))).To(gomega.Succeed())
			gomega.Expect(properties.Upsert(ctx, domain.NewPropertyValue(installationID, kept.ID, "2024-01-01"))).To(gomega.Succeed())

			gomega.Expect(repo.DeleteMany(ctx, []shareddomain.ID{schema.ID})).To(gomega.Succeed())
			gomega.Expect(repo.ForceDeleteMany(ctx, []shareddomain.ID{schema.ID})).To(gomega.Succeed())

			expired, err := repo.FindDeletedBefore(ctx, time.Now().Add(time.Minute))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(expired).To(gomega.BeEmpty())

			values, err := properties.FindByInstallationID(ctx, installationID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(values).To(gomega.HaveLen(1))
			gomega.Expect(values[0].InstallationSchemaID).To(gomega.Equal(kept.ID))
		})
	})

	ginkgo.Context("CheckUniqueness", func() {
		var existing domain.FieldSchema

		ginkgo.BeforeEach(func() {
			existing = newSchema(typeID, "Capacity", domain.NumberKind{}, 0)
			gomega.Expect(repo.Create(ctx, existing)).To(gomega.Succeed())
		})

		nameField := func(value string) usecases.UniquenessField {
			return usecases.UniquenessField{
				Column:      "name",
				Value:       value,
				ScopeColumn: "installation_type_id",
				ScopeValue:  typeID.String(),
			}
		}

		ginkgo.It("should report a name held by another schema", func() {
			taken, err := repo.CheckUniqueness(ctx, []usecases.UniquenessField{nameField("capacity"), nameField("opened")}, nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(taken).To(gomega.ConsistOf(nameField("capacity")))
		})

		ginkgo.It("should ignore the excluded schema", func() {
			taken, err := repo.CheckUniqueness(ctx, []usecases.UniquenessField{nameField("capacity")}, &existing.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(taken).To(gomega.BeEmpty())
		})

		ginkgo.It("should ignore other installation types", func() {
			field := nameField("capacity")
			field.ScopeValue = "other-type"

			taken, err := repo.CheckUniqueness(ctx, []usecases.UniquenessField{field}, nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(taken).To(gomega.BeEmpty())
		})

		ginkgo.It("should reject columns outside the allowed set", func() {
			_, err := repo.CheckUniqueness(ctx, []usecases.UniquenessField{{Column: "id; DROP TABLE installation_schemas", Value: "x"}}, nil)
			gomega.Expect(err).To(gomega.HaveOccurred())

			_, err = repo.CheckUniqueness(ctx, []usecases.UniquenessField{{Column: "name", Value: "x", ScopeColumn: "description"}}, nil)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Context("Transaction", func() {
		ginkgo.It("should roll back every write when fn fails", func() {
			err := repo.Transaction(ctx, func(tx usecases.SchemaStore) error {
				if err := tx.Create(ctx, newSchema(typeID, "capacity", domain.NumberKind{}, 0)); err != nil {
					return err
				}
				return errors.New("abort")
			})
			gomega.Expect(err).To(gomega.MatchError("abort"))

			schemas, err := repo.FindByInstallationTypeID(ctx, typeID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(schemas).To(gomega.BeEmpty())
		})
	})
})
