package httpapi

import (
	"inventory-server/internal/infra/httpserver"
	"inventory-server/internal/inventory/domain"
	"inventory-server/internal/inventory/httpapi/internal"
	"inventory-server/internal/inventory/usecases"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"net/http"
)

const (
	listInstallationsErrMessage  = "failed to list installations"
	createInstallationErrMessage = "failed to create installation"
	getInstallationErrMessage    = "failed to get installation"
	updateInstallationErrMessage = "failed to update installation"
	deleteInstallationErrMessage = "failed to delete installation"
	getPropertiesErrMessage      = "failed to get properties"
	setPropertiesErrMessage      = "failed to set properties"
)

func NewInstallationController(
	catalog usecases.InstallationCatalogService,
	installations usecases.InstallationAggregate,
) *InstallationController {
	return &InstallationController{
		catalog:       catalog,
		installations: installations,
	}
}

var _ httpserver.Controller = &InstallationController{}

type InstallationController struct {
	catalog       usecases.InstallationCatalogService
	installations usecases.InstallationAggregate
}

func (c *InstallationController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/installations", c.listInstallations())
	router.Handle("POST /v1/installations", c.createInstallation())
	router.Handle("GET /v1/installations/{id}", c.getInstallation())
	router.Handle("PUT /v1/installations/{id}", c.updateInstallation())
	router.Handle("DELETE /v1/installations/{id}", c.deleteInstallation())
	router.Handle("GET /v1/installations/{id}/properties", c.getProperties())
	router.Handle("PUT /v1/installations/{id}/properties", c.setProperties())
}

func (c *InstallationController) listInstallations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: params.Offset()}

		var filter usecases.InstallationFilter
		if typeID := httpserver.GetQueryParam(r, "installation_type_id"); typeID != "" {
			id := shareddomain.ID(typeID)
			filter.InstallationTypeID = &id
		}

		installations, total, err := c.catalog.ListInstallations(r.Context(), filter, pagination)
		if err != nil {
			replyWithServiceError(w, err, listInstallationsErrMessage)
			return
		}

		responses := make([]internal.InstallationResponse, len(installations))
		for i, installation := range installations {
			responses[i] = internal.ToInstallationResponse(installation)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *InstallationController) createInstallation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.InstallationCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		builder := domain.NewInstallationBuilder().WithName(body.Name)
		if body.InstallationTypeID != nil {
			builder = builder.WithInstallationTypeID(shareddomain.ID(*body.InstallationTypeID))
		}

		installation, err := builder.Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := c.catalog.CreateInstallation(r.Context(), installation); err != nil {
			replyWithServiceError(w, err, createInstallationErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToInstallationResponse(installation))
	}
}

func (c *InstallationController) getInstallation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		installation, err := c.catalog.GetInstallation(r.Context(), id)
		if err != nil {
			replyWithServiceError(w, err, getInstallationErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToInstallationResponse(installation))
	}
}

func (c *InstallationController) updateInstallation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		var body internal.InstallationUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		installation, err := c.catalog.GetInstallation(r.Context(), id)
		if err != nil {
			replyWithServiceError(w, err, updateInstallationErrMessage)
			return
		}

		if body.Name != nil {
			installation.Rename(*body.Name)
		}
		if body.InstallationTypeID != nil {
			var typeID *shareddomain.ID
			if *body.InstallationTypeID != "" {
				value := shareddomain.ID(*body.InstallationTypeID)
				typeID = &value
			}
			installation.AssignType(typeID)
		}

		if err := c.catalog.UpdateInstallation(r.Context(), installation); err != nil {
			replyWithServiceError(w, err, updateInstallationErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToInstallationResponse(installation))
	}
}

func (c *InstallationController) deleteInstallation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		if err := c.catalog.DeleteInstallation(r.Context(), id); err != nil {
			replyWithServiceError(w, err, deleteInstallationErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *InstallationController) getProperties() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		properties, err := c.installations.GetPropertiesWithSchema(r.Context(), shareddomain.ID(id))
		if err != nil {
			replyWithServiceError(w, err, getPropertiesErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToPropertyListResponse(id, properties))
	}
}

func (c *InstallationController) setProperties() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.PropertiesSetRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		entries, err := internal.ToPropertyEntries(body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		properties, err := c.installations.SetProperties(r.Context(), shareddomain.ID(id), entries)
		if err != nil {
			replyWithServiceError(w, err, setPropertiesErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToPropertyListResponse(id, properties))
	}
}
