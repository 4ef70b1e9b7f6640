package usecases_test

import (
	"context"
	"inventory-server/internal/inventory/domain"
	"inventory-server/internal/inventory/usecases"
	shareddomain "inventory-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PropertyService", func() {
	var (
		inv          *inventory
		terminal     domain.InstallationType
		installation domain.Installation
		schemas      []domain.FieldSchema
		ctx          context.Context
	)

	BeforeEach(func() {
		inv = newInventory()
		ctx = context.Background()
		terminal = inv.createType("TERMINAL")
		schemas = inv.sync(terminal.ID,
			requiredField("capacity", "number"),
			field("opened", "date"),
			enumField("size", "small", "large"),
		)
		installation = inv.createInstallation("North terminal", terminal.ID)
	})

	Context("SetProperties", func() {
		It("should store decoded values and return the full shape", func() {
			result, err := inv.propertySvc.SetProperties(ctx, installation.ID, []domain.PropertyEntry{
				{Name: "capacity", Value: "120"},
				{Name: "SIZE", Value: "large"},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(result).To(HaveLen(3))
			Expect(result[0].Value).To(Equal(120.0))
			Expect(result[1].Value).To(BeNil())
			Expect(result[2].Value).To(Equal("large"))
			Expect(inv.publisher.properties).To(HaveLen(1))
		})

		It("should overwrite a value and leave the others untouched", func() {
			_, err := inv.propertySvc.SetProperties(ctx, installation.ID, []domain.PropertyEntry{
				{Name: "capacity", Value: "120"},
				{Name: "opened", Value: "2020-03-01"},
			})
			Expect(err).NotTo(HaveOccurred())

			result, err := inv.propertySvc.SetProperties(ctx, installation.ID, []domain.PropertyEntry{
				{Name: "capacity", Value: "150"},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(result[0].Value).To(Equal(150.0))
			Expect(result[1].IsSet()).To(BeTrue())
			Expect(inv.storedValues(installation.ID)).To(HaveLen(2))
		})

		It("should reject a value that does not match the field type", func() {
			_, err := inv.propertySvc.SetProperties(ctx, installation.ID, []domain.PropertyEntry{
				{Name: "capacity", Value: "not_a_number"},
			})

			validationErr := validationError(err)
			Expect(validationErr.ForField("capacity")).To(ConsistOf(
				HaveField("Code", domain.CodeInvalidType),
			))
			Expect(inv.storedValues(installation.ID)).To(BeEmpty())
			Expect(inv.publisher.properties).To(BeEmpty())
		})

		It("should write nothing when any entry is invalid", func() {
			_, err := inv.propertySvc.SetProperties(ctx, installation.ID, []domain.PropertyEntry{
				{Name: "opened", Value: "2020-03-01"},
				{Name: "size", Value: "medium"},
				{Name: "capacity", Value: ""},
			})

			validationErr := validationError(err)
			Expect(validationErr.ForField("size")).To(ConsistOf(HaveField("Code", domain.CodeInvalidOption)))
			Expect(validationErr.ForField("capacity")).To(ConsistOf(HaveField("Code", domain.CodeRequired)))
			Expect(inv.storedValues(installation.ID)).To(BeEmpty())
		})

		It("should fail for a field the type does not define", func() {
			_, err := inv.propertySvc.SetProperties(ctx, installation.ID, []domain.PropertyEntry{
				{Name: "colour", Value: "red"},
			})
			Expect(err).To(MatchError(usecases.ErrSchemaNotFound))
		})

		It("should fail for an installation without type", func() {
			untyped := inv.createInstallation("Depot", "")

			_, err := inv.propertySvc.SetProperties(ctx, untyped.ID, []domain.PropertyEntry{
				{Name: "capacity", Value: "1"},
			})
			Expect(err).To(MatchError(usecases.ErrInstallationWithoutType))
		})

		It("should fail for an unknown installation", func() {
			_, err := inv.propertySvc.SetProperties(ctx, shareddomain.ID("missing"), nil)
			Expect(err).To(MatchError(usecases.ErrInstallationNotFound))
		})
	})

	Context("GetPropertiesWithSchema", func() {
		It("should return every field even without stored values", func() {
			_, err := inv.propertySvc.SetProperties(ctx, installation.ID, []domain.PropertyEntry{
				{Name: "capacity", Value: "120"},
			})
			Expect(err).NotTo(HaveOccurred())

			result, err := inv.propertySvc.GetPropertiesWithSchema(ctx, installation.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(result).To(HaveLen(3))
			Expect(result[0].Schema.ID).To(Equal(schemas[0].ID))
			Expect(result[0].Value).To(Equal(120.0))
			Expect(result[1].Value).To(BeNil())
			Expect(result[2].Value).To(BeNil())
			Expect(result[2].Schema.Options()).To(Equal([]string{"small", "large"}))
		})

		It("should flag stored values that no longer decode after a type change", func() {
			_, err := inv.propertySvc.SetProperties(ctx, installation.ID, []domain.PropertyEntry{
				{Name: "size", Value: "large"},
			})
			Expect(err).NotTo(HaveOccurred())

			inv.sync(terminal.ID,
				keep(schemas[0]),
				keep(schemas[1]),
				withID(field("size", "number"), schemas[2].ID),
			)

			result, err := inv.propertySvc.GetPropertiesWithSchema(ctx, installation.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(result[2].Value).To(BeNil())
			Expect(result[2].Problem).NotTo(BeNil())
			Expect(result[2].Problem.Code).To(Equal(domain.CodeInvalidType))
		})

		It("should drop values of deleted fields from the shape", func() {
			_, err := inv.propertySvc.SetProperties(ctx, installation.ID, []domain.PropertyEntry{
				{Name: "opened", Value: "2020-03-01"},
			})
			Expect(err).NotTo(HaveOccurred())

			inv.sync(terminal.ID, keep(schemas[0]), keep(schemas[2]))

			result, err := inv.propertySvc.GetPropertiesWithSchema(ctx, installation.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(2))
			Expect(result[0].Schema.Name).To(Equal(shareddomain.Name("capacity")))
			Expect(result[1].Schema.Name).To(Equal(shareddomain.Name("size")))
		})
	})
})
