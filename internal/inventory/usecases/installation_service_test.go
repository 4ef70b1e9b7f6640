package usecases_test

import (
	"context"
	"errors"
	"inventory-server/internal/inventory/domain"
	"inventory-server/internal/inventory/usecases"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	mockusecases "inventory-server/test/unit/doubles/inventory/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("InstallationService", func() {
	var (
		ctrl           *gomock.Controller
		mockSyncer     *mockusecases.MockSchemaSyncer
		mockProperties *mockusecases.MockPropertyManager
		service        *usecases.InstallationService
		ctx            context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockSyncer = mockusecases.NewMockSchemaSyncer(ctrl)
		mockProperties = mockusecases.NewMockPropertyManager(ctrl)
		service = usecases.NewInstallationService(mockSyncer, mockProperties)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should hand schema syncs to the sync engine", func() {
		desired := []usecases.SchemaPayload{field("capacity", "number")}
		synced := []domain.FieldSchema{{ID: "schema-1", Name: "capacity"}}
		mockSyncer.EXPECT().SyncSchemas(ctx, shareddomain.ID("type-1"), desired).Return(synced, nil)

		result, err := service.SyncSchemas(ctx, "type-1", desired)

		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(synced))
	})

	It("should return sync errors untouched", func() {
		mockSyncer.EXPECT().
			SyncSchemas(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, usecases.ErrInstallationTypeNotFound)

		_, err := service.SyncSchemas(ctx, "type-1", nil)

		Expect(err).To(MatchError(usecases.ErrInstallationTypeNotFound))
	})

	It("should hand property writes to the property manager", func() {
		entries := []domain.PropertyEntry{{Name: "capacity", Value: "10"}}
		mockProperties.EXPECT().
			SetProperties(ctx, shareddomain.ID("installation-1"), entries).
			Return([]domain.PropertyWithSchema{{Value: 10.0}}, nil)

		result, err := service.SetProperties(ctx, "installation-1", entries)

		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(HaveLen(1))
	})

	It("should hand property reads to the property manager", func() {
		mockProperties.EXPECT().
			GetPropertiesWithSchema(ctx, shareddomain.ID("installation-1")).
			Return(nil, errors.New("database error"))

		_, err := service.GetPropertiesWithSchema(ctx, "installation-1")

		Expect(err).To(MatchError("database error"))
	})
})
