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

var _ = Describe("InstallationCatalogService", func() {
	var (
		ctrl           *gomock.Controller
		mockRepository *mockusecases.MockInstallationRepository
		mockTypes      *mockusecases.MockInstallationTypeRepository
		service        *usecases.SimpleInstallationCatalogService
		installation   domain.Installation
		ctx            context.Context
	)

	typeID := shareddomain.ID("type-1")

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = mockusecases.NewMockInstallationRepository(ctrl)
		mockTypes = mockusecases.NewMockInstallationTypeRepository(ctrl)
		service = usecases.NewInstallationCatalogService(mockRepository, mockTypes)
		ctx = context.Background()

		var err error
		installation, err = domain.NewInstallationBuilder().
			WithName("North terminal").
			WithInstallationTypeID(typeID).
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("CreateInstallation", func() {
		It("should create an installation of an active type", func() {
			mockTypes.EXPECT().GetByID(gomock.Any(), typeID).Return(domain.InstallationType{ID: typeID, IsActive: true}, nil)
			mockRepository.EXPECT().Create(gomock.Any(), installation).Return(nil)

			Expect(service.CreateInstallation(ctx, installation)).To(Succeed())
		})

		It("should accept an installation without type", func() {
			untyped, err := domain.NewInstallationBuilder().WithName("Depot").Build()
			Expect(err).NotTo(HaveOccurred())

			mockTypes.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
			mockRepository.EXPECT().Create(gomock.Any(), untyped).Return(nil)

			Expect(service.CreateInstallation(ctx, untyped)).To(Succeed())
		})

		It("should reject an inactive type", func() {
			mockTypes.EXPECT().GetByID(gomock.Any(), typeID).Return(domain.InstallationType{ID: typeID}, nil)
			mockRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			err := service.CreateInstallation(ctx, installation)

			Expect(err).To(MatchError(usecases.ErrInstallationTypeInactive))
		})

		It("should reject an unknown type", func() {
			mockTypes.EXPECT().
				GetByID(gomock.Any(), typeID).
				Return(domain.InstallationType{}, usecases.ErrInstallationTypeNotFound)

			err := service.CreateInstallation(ctx, installation)

			Expect(err).To(MatchError(usecases.ErrInstallationTypeNotFound))
		})
	})

	Context("UpdateInstallation", func() {
		It("should not recheck an unchanged type", func() {
			mockRepository.EXPECT().GetByID(gomock.Any(), installation.ID).Return(installation, nil)
			mockTypes.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
			mockRepository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			Expect(service.UpdateInstallation(ctx, installation)).To(Succeed())
		})

		It("should check a newly assigned type", func() {
			otherType := shareddomain.ID("type-2")
			changed := installation
			changed.InstallationTypeID = &otherType

			mockRepository.EXPECT().GetByID(gomock.Any(), installation.ID).Return(installation, nil)
			mockTypes.EXPECT().
				GetByID(gomock.Any(), otherType).
				Return(domain.InstallationType{}, usecases.ErrInstallationTypeNotFound)

			err := service.UpdateInstallation(ctx, changed)

			Expect(err).To(MatchError(usecases.ErrInstallationTypeNotFound))
		})
	})

	Context("DeleteInstallation", func() {
		It("should delete an existing installation", func() {
			mockRepository.EXPECT().GetByID(gomock.Any(), installation.ID).Return(installation, nil)
			mockRepository.EXPECT().Delete(gomock.Any(), installation.ID).Return(nil)

			Expect(service.DeleteInstallation(ctx, installation.ID)).To(Succeed())
		})

		It("should fail for an unknown installation", func() {
			mockRepository.EXPECT().
				GetByID(gomock.Any(), gomock.Any()).
				Return(domain.Installation{}, usecases.ErrInstallationNotFound)
			mockRepository.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

			err := service.DeleteInstallation(ctx, "missing")

			Expect(err).To(MatchError(usecases.ErrInstallationNotFound))
		})

		It("should wrap repository failures", func() {
			mockRepository.EXPECT().GetByID(gomock.Any(), installation.ID).Return(installation, nil)
			mockRepository.EXPECT().Delete(gomock.Any(), installation.ID).Return(errors.New("database error"))

			err := service.DeleteInstallation(ctx, installation.ID)

			Expect(err).To(MatchError(ContainSubstring("deleting installation")))
		})
	})

	Context("ListInstallations", func() {
		It("should pass the filter through", func() {
			filter := usecases.InstallationFilter{InstallationTypeID: &typeID}
			pagination := usecases.Pagination{Limit: 5, Offset: 5}
			mockRepository.EXPECT().
				FindAll(gomock.Any(), filter, pagination).
				Return([]domain.Installation{installation}, 6, nil)

			result, total, err := service.ListInstallations(ctx, filter, pagination)

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(total).To(Equal(6))
		})
	})
})
