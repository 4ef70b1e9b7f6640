package internal_test

import (
	"inventory-server/internal/inventory/domain"
	persistenceInternal "inventory-server/internal/inventory/persistence/internal"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"gorm.io/datatypes"
)

var _ = ginkgo.Describe("InstallationSchema Internal Model", func() {
	ginkgo.It("should map enum options through JSON", func() {
		schema, err := domain.NewFieldSchemaBuilder().
			WithInstallationTypeID("type-1").
			WithName("size").
			WithKind(domain.EnumKind{Values: []string{"small", "large"}}).
			WithRequired(true).
			WithPosition(3).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		entity, err := persistenceInternal.FromFieldSchema(schema)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(entity.FieldType).To(gomega.Equal("enum"))
		gomega.Expect(string(entity.Options)).To(gomega.MatchJSON(`["small","large"]`))

		back, err := entity.ToDomain()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(back.Options()).To(gomega.Equal([]string{"small", "large"}))
		gomega.Expect(back.Required).To(gomega.BeTrue())
		gomega.Expect(back.Position).To(gomega.Equal(3))
	})

	ginkgo.It("should read missing options as none", func() {
		entity := persistenceInternal.InstallationSchema{ID: "schema-1", Name: "capacity", FieldType: "number"}

		schema, err := entity.ToDomain()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(schema.Kind).To(gomega.Equal(domain.NumberKind{}))
		gomega.Expect(schema.Options()).To(gomega.BeEmpty())
	})

	ginkgo.It("should fail on an unknown stored type", func() {
		entity := persistenceInternal.InstallationSchema{ID: "schema-1", FieldType: "color"}

		_, err := entity.ToDomain()
		gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("schema-1")))
	})

	ginkgo.It("should fail on malformed options", func() {
		entity := persistenceInternal.InstallationSchema{
			ID:        "schema-1",
			FieldType: "enum",
			Options:   datatypes.JSON(`{"small":1}`),
		}

		_, err := entity.ToDomain()
		gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("unmarshaling options")))
	})
})
