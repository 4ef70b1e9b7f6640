package usecases_test

import (
	"context"
	"errors"
	"inventory-server/internal/infra/utils"
	"inventory-server/internal/inventory/domain"
	"inventory-server/internal/inventory/usecases"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SchemaSyncEngine", func() {
	var (
		inv      *inventory
		terminal domain.InstallationType
		ctx      context.Context
	)

	BeforeEach(func() {
		inv = newInventory()
		terminal = inv.createType("TERMINAL")
		ctx = context.Background()
	})

	Context("creating the first field set", func() {
		It("should create every entry in the requested order", func() {
			result := inv.sync(terminal.ID,
				requiredField("capacity", "number"),
				field("opened", "date"),
				enumField("size", "small", "large"),
			)

			Expect(names(result)).To(Equal([]string{"capacity", "opened", "size"}))
			Expect(result[0].Required).To(BeTrue())
			Expect(result[0].Type()).To(Equal(domain.FieldTypeNumber))
			Expect(result[2].Options()).To(Equal([]string{"small", "large"}))
			for _, schema := range result {
				Expect(schema.InstallationTypeID).To(Equal(terminal.ID))
			}
		})

		It("should publish the post sync field set", func() {
			result := inv.sync(terminal.ID, field("capacity", "number"))

			Expect(inv.publisher.synced).To(HaveLen(1))
			Expect(inv.publisher.synced[0]).To(Equal(result))
		})

		It("should fail for an unknown installation type", func() {
			_, err := inv.engine.SyncSchemas(ctx, "missing", []usecases.SchemaPayload{field("capacity", "number")})
			Expect(err).To(MatchError(usecases.ErrInstallationTypeNotFound))
		})
	})

	Context("with the TERMINAL field set", func() {
		var capacity domain.FieldSchema

		BeforeEach(func() {
			capacity = inv.sync(terminal.ID, requiredField("capacity", "number"))[0]
		})

		It("should add a field and keep the id of the existing one", func() {
			result := inv.sync(terminal.ID,
				usecases.SchemaPayload{ID: &capacity.ID, Name: "capacity"},
				requiredField("platforms", "number"),
			)

			Expect(result).To(HaveLen(2))
			Expect(result[0].ID).To(Equal(capacity.ID))
			Expect(result[0].Name).To(Equal(shareddomain.Name("capacity")))
			Expect(result[0].Type()).To(Equal(domain.FieldTypeNumber))
			Expect(result[0].Required).To(BeTrue())
			Expect(result[1].Name).To(Equal(shareddomain.Name("platforms")))
			Expect(result[1].Required).To(BeTrue())
		})

		It("should be idempotent", func() {
			before, err := inv.schemas.FindByInstallationTypeID(ctx, terminal.ID)
			Expect(err).NotTo(HaveOccurred())

			result := inv.sync(terminal.ID, keep(before[0]))

			Expect(result).To(HaveLen(1))
			Expect(result[0].ID).To(Equal(before[0].ID))
			Expect(result[0].UpdatedAt).To(BeTemporally("==", before[0].UpdatedAt))

			again := inv.sync(terminal.ID, keep(result[0]))
			Expect(again).To(HaveLen(1))
			Expect(again[0].UpdatedAt).To(BeTemporally("==", before[0].UpdatedAt))
		})

		It("should allow renaming a field to its own name in another case", func() {
			result := inv.sync(terminal.ID, withID(field("Capacity", "number"), capacity.ID))

			Expect(result).To(HaveLen(1))
			Expect(result[0].ID).To(Equal(capacity.ID))
			Expect(result[0].Name).To(Equal(shareddomain.Name("Capacity")))
		})

		It("should delete and recreate the same name in one call", func() {
			result := inv.sync(terminal.ID, field("capacity", "string"))

			Expect(result).To(HaveLen(1))
			Expect(result[0].ID).NotTo(Equal(capacity.ID))
			Expect(result[0].Type()).To(Equal(domain.FieldTypeString))

			deleted, err := inv.schemas.GetByID(ctx, capacity.ID)
			Expect(err).To(MatchError(usecases.ErrSchemaNotFound))
			Expect(deleted.ID).To(BeEmpty())
		})

		It("should delete fields left out of the desired set", func() {
			result := inv.sync(terminal.ID)

			Expect(result).To(BeEmpty())
			purgeable, err := inv.schemas.FindDeletedBefore(ctx, capacity.CreatedAt.AddDate(1, 0, 0))
			Expect(err).NotTo(HaveOccurred())
			Expect(purgeable).To(HaveLen(1))
			Expect(purgeable[0].ID).To(Equal(capacity.ID))
		})

		It("should change the type of a field in place", func() {
			result := inv.sync(terminal.ID, withID(enumField("capacity", "low", "high"), capacity.ID))

			Expect(result[0].ID).To(Equal(capacity.ID))
			Expect(result[0].Type()).To(Equal(domain.FieldTypeEnum))
			Expect(result[0].Options()).To(Equal([]string{"low", "high"}))
		})

		It("should reject a new field named like a kept one", func() {
			_, err := inv.engine.SyncSchemas(ctx, terminal.ID, []usecases.SchemaPayload{
				keep(capacity),
				field("CAPACITY", "string"),
			})

			validationErr := validationError(err)
			Expect(validationErr.ForField("schemas[0].name")).To(ConsistOf(
				HaveField("Code", domain.CodeDuplicateNameInBatch),
			))
			Expect(validationErr.ForField("schemas[1].name")).To(ConsistOf(
				HaveField("Code", domain.CodeDuplicateNameInBatch),
				HaveField("Code", domain.CodeDuplicateNameInDatabase),
			))

			stored, err := inv.schemas.FindByInstallationTypeID(ctx, terminal.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(HaveLen(1))
		})

		It("should reject renaming a field to the name another kept field still holds", func() {
			stored := inv.sync(terminal.ID, keep(capacity), field("platforms", "number"))
			platforms := stored[1]

			renamedCapacity := keep(capacity)
			renamedCapacity.Name = "seats"
			renamedPlatforms := keep(platforms)
			renamedPlatforms.Name = "capacity"

			_, err := inv.engine.SyncSchemas(ctx, terminal.ID, []usecases.SchemaPayload{renamedCapacity, renamedPlatforms})

			validationErr := validationError(err)
			Expect(validationErr.ForField("schemas[0].name")).To(BeEmpty())
			Expect(validationErr.ForField("schemas[1].name")).To(ConsistOf(
				HaveField("Code", domain.CodeDuplicateNameInDatabase),
			))
			Expect(names(inv.storedSchemas(terminal.ID))).To(Equal([]string{"capacity", "platforms"}))
		})

		It("should reject an id that belongs to another type", func() {
			other := inv.createType("TOLLBOOTH")
			_, err := inv.engine.SyncSchemas(ctx, other.ID, []usecases.SchemaPayload{keep(capacity)})

			validationErr := validationError(err)
			Expect(validationErr.ForField("schemas[0].id")).To(ConsistOf(
				HaveField("Code", domain.CodeNotFound),
			))
		})

		It("should reject the same id twice", func() {
			_, err := inv.engine.SyncSchemas(ctx, terminal.ID, []usecases.SchemaPayload{
				keep(capacity),
				withID(field("other", "number"), capacity.ID),
			})

			Expect(validationError(err).HasCode(domain.CodeDuplicateID)).To(BeTrue())
		})
	})

	Context("validating the desired set", func() {
		It("should report every problem in one error", func() {
			_, err := inv.engine.SyncSchemas(ctx, terminal.ID, []usecases.SchemaPayload{
				field("capacity", "number"),
				field("Capacity", "string"),
				field("", "number"),
				field("color", "colour"),
				enumField("size"),
			})

			validationErr := validationError(err)
			Expect(validationErr.ForField("schemas[0].name")).To(ConsistOf(HaveField("Code", domain.CodeDuplicateNameInBatch)))
			Expect(validationErr.ForField("schemas[1].name")).To(ConsistOf(HaveField("Code", domain.CodeDuplicateNameInBatch)))
			Expect(validationErr.ForField("schemas[2].name")).To(ConsistOf(HaveField("Code", domain.CodeRequired)))
			Expect(validationErr.ForField("schemas[3].type")).To(ConsistOf(HaveField("Code", domain.CodeInvalidType)))
			Expect(validationErr.ForField("schemas[4].options")).To(ConsistOf(HaveField("Code", domain.CodeInvalidOptions)))
		})

		It("should reject enum options that repeat", func() {
			_, err := inv.engine.SyncSchemas(ctx, terminal.ID, []usecases.SchemaPayload{enumField("size", "small", "small")})
			Expect(validationError(err).HasCode(domain.CodeInvalidOptions)).To(BeTrue())
		})

		It("should not write anything when validation fails", func() {
			_, err := inv.engine.SyncSchemas(ctx, terminal.ID, []usecases.SchemaPayload{
				field("capacity", "number"),
				field("opened", "when"),
			})
			Expect(err).To(HaveOccurred())

			stored, err := inv.schemas.FindByInstallationTypeID(ctx, terminal.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(BeEmpty())
			Expect(inv.publisher.syncedCount()).To(Equal(0))
		})
	})

	Context("when publishing fails", func() {
		It("should still return the committed field set", func() {
			inv.publisher.err = errors.New("broker down")

			result := inv.sync(terminal.ID, field("capacity", "number"))
			Expect(result).To(HaveLen(1))
		})
	})

	Context("under concurrent syncs of the same type", func() {
		It("should roll back when another sync commits the same name first", func() {
			platforms := inv.sync(terminal.ID, field("platforms", "number"))[0]

			rival, err := domain.NewFieldSchemaBuilder().
				WithInstallationTypeID(terminal.ID).
				WithName("Capacity").
				WithKind(domain.StringKind{}).
				Build()
			Expect(err).NotTo(HaveOccurred())

			engine := usecases.NewSchemaSyncEngine(&rivalCommittingStore{SchemaStore: inv.schemas, rival: rival}, inv.types, inv.publisher)
			_, err = engine.SyncSchemas(ctx, terminal.ID, []usecases.SchemaPayload{field("capacity", "number")})

			Expect(errors.Is(err, usecases.ErrDuplicateSchemaName)).To(BeTrue())

			stored := inv.storedSchemas(terminal.ID)
			Expect(stored).To(HaveLen(1))
			Expect(stored[0].ID).To(Equal(platforms.ID))
			Expect(inv.publisher.syncedCount()).To(Equal(1))
		})

		It("should refuse a duplicate name at the storage level", func() {
			first, err := domain.NewFieldSchemaBuilder().
				WithInstallationTypeID(terminal.ID).
				WithName("capacity").
				Build()
			Expect(err).NotTo(HaveOccurred())
			second, err := domain.NewFieldSchemaBuilder().
				WithInstallationTypeID(terminal.ID).
				WithName("CAPACITY").
				Build()
			Expect(err).NotTo(HaveOccurred())

			Expect(inv.schemas.Create(ctx, first)).To(Succeed())
			Expect(inv.schemas.Create(ctx, second)).To(MatchError(usecases.ErrDuplicateSchemaName))
		})
	})

	Context("with an enum field", func() {
		var size domain.FieldSchema

		BeforeEach(func() {
			size = inv.sync(terminal.ID, enumField("size", "small", "large"))[0]
		})

		It("should apply options sent without a type", func() {
			result := inv.sync(terminal.ID, usecases.SchemaPayload{
				ID:      &size.ID,
				Name:    "size",
				Options: []string{"small", "medium", "large"},
			})

			Expect(result[0].ID).To(Equal(size.ID))
			Expect(result[0].Type()).To(Equal(domain.FieldTypeEnum))
			Expect(result[0].Options()).To(Equal([]string{"small", "medium", "large"}))
		})

		It("should validate options sent without a type", func() {
			_, err := inv.engine.SyncSchemas(ctx, terminal.ID, []usecases.SchemaPayload{{
				ID:      &size.ID,
				Name:    "size",
				Options: []string{"small", "small"},
			}})

			Expect(validationError(err).ForField("schemas[0].options")).To(ConsistOf(
				HaveField("Code", domain.CodeInvalidOptions),
			))
			Expect(inv.storedSchemas(terminal.ID)[0].Options()).To(Equal([]string{"small", "large"}))
		})

		It("should keep the options when an update sends none", func() {
			result := inv.sync(terminal.ID, usecases.SchemaPayload{ID: &size.ID, Name: "size"})
			Expect(result[0].Options()).To(Equal([]string{"small", "large"}))
		})
	})

	Context("with descriptions", func() {
		It("should keep the stored description when an update omits it", func() {
			payload := field("capacity", "number")
			payload.Description = utils.StringPtr("seats")
			created := inv.sync(terminal.ID, payload)[0]

			result := inv.sync(terminal.ID, withID(field("capacity", ""), created.ID))
			Expect(result[0].Description).To(Equal(shareddomain.Description("seats")))
			Expect(result[0].Type()).To(Equal(domain.FieldTypeNumber))
		})
	})
})

func liveNamesUnique(schemas []domain.FieldSchema) bool {
	seen := make(map[string]bool, len(schemas))
	for _, schema := range schemas {
		key := strings.ToLower(strings.TrimSpace(string(schema.Name)))
		if seen[key] {
			return false
		}
		seen[key] = true
	}
	return true
}

// rivalCommittingStore writes rival through the sync's own transaction right
// after the snapshot is read, as if a concurrent sync had committed it first.
type rivalCommittingStore struct {
	usecases.SchemaStore
	rival domain.FieldSchema
}

func (s *rivalCommittingStore) Transaction(ctx context.Context, fn func(tx usecases.SchemaStore) error) error {
	return s.SchemaStore.Transaction(ctx, func(tx usecases.SchemaStore) error {
		return fn(&rivalAfterSnapshot{SchemaStore: tx, rival: s.rival})
	})
}

type rivalAfterSnapshot struct {
	usecases.SchemaStore
	rival    domain.FieldSchema
	inserted bool
}

func (t *rivalAfterSnapshot) FindByInstallationTypeID(ctx context.Context, id shareddomain.ID) ([]domain.FieldSchema, error) {
	snapshot, err := t.SchemaStore.FindByInstallationTypeID(ctx, id)
	if err != nil || t.inserted {
		return snapshot, err
	}

	t.inserted = true
	if err := t.SchemaStore.Create(ctx, t.rival); err != nil {
		return nil, err
	}
	return snapshot, nil
}
