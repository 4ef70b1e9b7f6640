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

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("PropertyRepository", func() {
	var (
		repo           *persistence.SimplePropertyRepository
		installationID shareddomain.ID
		schemaID       shareddomain.ID
		ctx            context.Context
	)

	ginkgo.BeforeEach(func() {
		orm, err := sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo, err = persistence.NewPropertyRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		installationID = shareddomain.ID(utils.GenerateUUID())
		schemaID = shareddomain.ID(utils.GenerateUUID())
		ctx = context.Background()
	})

	ginkgo.It("should keep one value per installation and schema", func() {
		first := domain.NewPropertyValue(installationID, schemaID, "10")
		gomega.Expect(repo.Upsert(ctx, first)).To(gomega.Succeed())
		gomega.Expect(repo.Upsert(ctx, domain.NewPropertyValue(installationID, schemaID, "20"))).To(gomega.Succeed())

		values, err := repo.FindByInstallationID(ctx, installationID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(values).To(gomega.HaveLen(1))
		gomega.Expect(values[0].ID).To(gomega.Equal(first.ID))
		gomega.Expect(values[0].Value).To(gomega.Equal("20"))
	})

	ginkgo.It("should only return values of the requested installation", func() {
		gomega.Expect(repo.Upsert(ctx, domain.NewPropertyValue(installationID, schemaID, "10"))).To(gomega.Succeed())
		gomega.Expect(repo.Upsert(ctx, domain.NewPropertyValue("other", schemaID, "30"))).To(gomega.Succeed())

		values, err := repo.FindByInstallationID(ctx, installationID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(values).To(gomega.HaveLen(1))
	})

	ginkgo.It("should discard writes of a failed transaction", func() {
		err := repo.Transaction(ctx, func(tx usecases.PropertyStore) error {
			if err := tx.Upsert(ctx, domain.NewPropertyValue(installationID, schemaID, "10")); err != nil {
				return err
			}
			return errors.New("abort")
		})
		gomega.Expect(err).To(gomega.HaveOccurred())

		values, err := repo.FindByInstallationID(ctx, installationID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(values).To(gomega.BeEmpty())
	})
})
