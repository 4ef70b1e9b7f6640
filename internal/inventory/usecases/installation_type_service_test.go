package usecases_test

import (
	"context"
	"errors"
	"inventory-server/internal/inventory/domain"
	"inventory-server/internal/inventory/usecases"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	mockusecases "inventory-server/test/unit/doubles/inventory/usecases"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("InstallationTypeService", func() {
	var (
		ctrl           *gomock.Controller
		mockRepository *mockusecases.MockInstallationTypeRepository
		mockSchemas    *mockusecases.MockSchemaStore
		service        *usecases.SimpleInstallationTypeService
		terminal       domain.InstallationType
		ctx            context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = mockusecases.NewMockInstallationTypeRepository(ctrl)
		mockSchemas = mockusecases.NewMockSchemaStore(ctrl)
		service = usecases.NewInstallationTypeService(mockRepository, mockSchemas)
		ctx = context.Background()

		var err error
		terminal, err = domain.NewInstallationTypeBuilder().
			WithName("Terminal").
			WithCode("terminal").
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("CreateInstallationType", func() {
		It("should create a type with a free code", func() {
			mockRepository.EXPECT().
				GetByCode(gomock.Any(), shareddomain.Code("TERMINAL")).
				Return(domain.InstallationType{}, usecases.ErrInstallationTypeNotFound)
			mockRepository.EXPECT().Create(gomock.Any(), terminal).Return(nil)

			Expect(service.CreateInstallationType(ctx, terminal)).To(Succeed())
		})

		It("should reject a code already in use", func() {
			mockRepository.EXPECT().
				GetByCode(gomock.Any(), gomock.Any()).
				Return(domain.InstallationType{ID: "other"}, nil)
			mockRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			err := service.CreateInstallationType(ctx, terminal)

			Expect(err).To(MatchError(usecases.ErrInstallationTypeCodeTaken))
		})

		It("should wrap repository failures", func() {
			mockRepository.EXPECT().
				GetByCode(gomock.Any(), gomock.Any()).
				Return(domain.InstallationType{}, errors.New("database error"))

			err := service.CreateInstallationType(ctx, terminal)

			Expect(err).To(MatchError(ContainSubstring("checking existing installation type")))
		})
	})

	Context("UpdateInstallationType", func() {
		It("should keep the stored code and creation time", func() {
			createdAt := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
			stored := terminal
			stored.CreatedAt = createdAt

			changed := terminal
			changed.Code = shareddomain.Code("OTHER")
			changed.UpdateInfo("Bus terminal", "Where buses stop")

			mockRepository.EXPECT().GetByID(gomock.Any(), terminal.ID).Return(stored, nil)
			mockRepository.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, saved domain.InstallationType) error {
					Expect(saved.Code).To(Equal(shareddomain.Code("TERMINAL")))
					Expect(saved.CreatedAt).To(Equal(createdAt))
					Expect(saved.Name).To(Equal(shareddomain.Name("Bus terminal")))
					return nil
				})

			Expect(service.UpdateInstallationType(ctx, changed)).To(Succeed())
		})

		It("should fail for an unknown type", func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), gomock.Any()).
				Return(domain.InstallationType{}, usecases.ErrInstallationTypeNotFound)

			err := service.UpdateInstallationType(ctx, terminal)

			Expect(err).To(MatchError(usecases.ErrInstallationTypeNotFound))
		})
	})

	Context("DeactivateInstallationType", func() {
		It("should store the type as inactive", func() {
			mockRepository.EXPECT().GetByID(gomock.Any(), terminal.ID).Return(terminal, nil).Times(2)
			mockRepository.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, saved domain.InstallationType) error {
					Expect(saved.IsActive).To(BeFalse())
					return nil
				})

			Expect(service.DeactivateInstallationType(ctx, terminal.ID)).To(Succeed())
		})
	})

	Context("ListInstallationTypes", func() {
		It("should return the page and the total", func() {
			pagination := usecases.Pagination{Limit: 10, Offset: 0}
			mockRepository.EXPECT().
				FindAll(gomock.Any(), pagination).
				Return([]domain.InstallationType{terminal}, 1, nil)

			types, total, err := service.ListInstallationTypes(ctx, pagination)

			Expect(err).NotTo(HaveOccurred())
			Expect(types).To(HaveLen(1))
			Expect(total).To(Equal(1))
		})
	})

	Context("ListSchemas", func() {
		It("should list the schemas of an existing type", func() {
			schemas := []domain.FieldSchema{{ID: "schema-1", Name: "capacity"}}
			mockRepository.EXPECT().GetByID(gomock.Any(), terminal.ID).Return(terminal, nil)
			mockSchemas.EXPECT().FindByInstallationTypeID(gomock.Any(), terminal.ID).Return(schemas, nil)

			result, err := service.ListSchemas(ctx, terminal.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(schemas))
		})

		It("should not query schemas of an unknown type", func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), gomock.Any()).
				Return(domain.InstallationType{}, usecases.ErrInstallationTypeNotFound)
			mockSchemas.EXPECT().FindByInstallationTypeID(gomock.Any(), gomock.Any()).Times(0)

			_, err := service.ListSchemas(ctx, "missing")

			Expect(err).To(MatchError(usecases.ErrInstallationTypeNotFound))
		})
	})
})
