package avro_test

import (
	"inventory-server/internal/infra/avro"
	"inventory-server/internal/infra/utils"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func schemasSyncedMessage() *avro.AvroInstallationSchemasSynced {
	return &avro.AvroInstallationSchemasSynced{
		InstallationTypeID: "type-1",
		Schemas: []avro.AvroFieldSchema{
			{
				ID:        "schema-1",
				Name:      "Voltage",
				Type:      "number",
				Options:   []string{},
				Required:  true,
				Position:  0,
				UpdatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			},
			{
				ID:          "schema-2",
				Name:        "Phase",
				Description: "supply phase",
				Type:        "enum",
				Options:     []string{"single", "three"},
				Position:    1,
				UpdatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			},
		},
		SyncedAt: time.Date(2024, 5, 1, 10, 0, 1, 0, time.UTC),
	}
}

// expectSameSchemasSynced compares field by field since an empty options
// array may decode as a nil slice.
func expectSameSchemasSynced(decoded any, expected *avro.AvroInstallationSchemasSynced) {
	result, ok := decoded.(*avro.AvroInstallationSchemasSynced)
	gomega.Expect(ok).To(gomega.BeTrue())
	gomega.Expect(result.InstallationTypeID).To(gomega.Equal(expected.InstallationTypeID))
	gomega.Expect(result.SyncedAt).To(gomega.BeTemporally("==", expected.SyncedAt))
	gomega.Expect(result.Schemas).To(gomega.HaveLen(len(expected.Schemas)))
	for i, schema := range expected.Schemas {
		got := result.Schemas[i]
		gomega.Expect(got.ID).To(gomega.Equal(schema.ID))
		gomega.Expect(got.Name).To(gomega.Equal(schema.Name))
		gomega.Expect(got.Description).To(gomega.Equal(schema.Description))
		gomega.Expect(got.Type).To(gomega.Equal(schema.Type))
		gomega.Expect(got.Options).To(gomega.ConsistOf(schema.Options))
		gomega.Expect(got.Required).To(gomega.Equal(schema.Required))
		gomega.Expect(got.Position).To(gomega.Equal(schema.Position))
		gomega.Expect(got.UpdatedAt).To(gomega.BeTemporally("==", schema.UpdatedAt))
	}
}

var _ = ginkgo.Describe("AvroCodec", func() {
	ginkgo.It("should round trip a schemas synced message", func() {
		codec, err := avro.NewAvroCodec(&avro.AvroInstallationSchemasSynced{})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		message := schemasSyncedMessage()
		data, err := codec.Encode(message)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		decoded, err := codec.Decode(data)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		expectSameSchemasSynced(decoded, message)
	})

	ginkgo.It("should keep unset property values as null", func() {
		codec, err := avro.NewAvroCodec(avro.AvroInstallationPropertiesSet{})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		message := &avro.AvroInstallationPropertiesSet{
			InstallationID: "installation-1",
			Properties: []avro.AvroPropertyValue{
				{SchemaID: "schema-1", Name: "Voltage", Type: "number", Value: utils.StringPtr("230")},
				{SchemaID: "schema-2", Name: "Phase", Type: "enum"},
			},
			SetAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		}

		data, err := codec.Encode(message)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		decoded, err := codec.Decode(data)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		result := decoded.(*avro.AvroInstallationPropertiesSet)
		gomega.Expect(*result.Properties[0].Value).To(gomega.Equal("230"))
		gomega.Expect(result.Properties[1].Value).To(gomega.BeNil())
	})

	ginkgo.It("should reject message types without a schema", func() {
		_, err := avro.NewAvroCodec(struct{ Name string }{})
		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should name the registry subject of each message", func() {
		gomega.Expect(avro.Subject(&avro.AvroInstallationSchemasSynced{})).To(gomega.Equal("installation_schemas"))
		gomega.Expect(avro.Subject(avro.AvroInstallationPropertiesSet{})).To(gomega.Equal("installation_properties"))
	})
})
