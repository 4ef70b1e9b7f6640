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
	listInstallationTypesErrMessage  = "failed to list installation types"
	createInstallationTypeErrMessage = "failed to create installation type"
	getInstallationTypeErrMessage    = "failed to get installation type"
	updateInstallationTypeErrMessage = "failed to update installation type"
	listSchemasErrMessage            = "failed to list schemas"
	syncSchemasErrMessage            = "failed to sync schemas"
)

func NewInstallationTypeController(
	service usecases.InstallationTypeService,
	installations usecases.InstallationAggregate,
) *InstallationTypeController {
	return &InstallationTypeController{
		service:       service,
		installations: installations,
	}
}

var _ httpserver.Controller = &InstallationTypeController{}

type InstallationTypeController struct {
	service       usecases.InstallationTypeService
	installations usecases.InstallationAggregate
}

func (c *InstallationTypeController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/installation-types", c.listInstallationTypes())
	router.Handle("POST /v1/installation-types", c.createInstallationType())
	router.Handle("GET /v1/installation-types/{id}", c.getInstallationType())
	router.Handle("PUT /v1/installation-types/{id}", c.updateInstallationType())
	router.Handle("POST /v1/installation-types/{id}/activate", c.activateInstallationType())
	router.Handle("POST /v1/installation-types/{id}/deactivate", c.deactivateInstallationType())
	router.Handle("GET /v1/installation-types/{id}/schemas", c.listSchemas())
	router.Handle("PUT /v1/installation-types/{id}/schemas", c.syncSchemas())
}

func (c *InstallationTypeController) listInstallationTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: params.Offset()}

		installationTypes, total, err := c.service.ListInstallationTypes(r.Context(), pagination)
		if err != nil {
			replyWithServiceError(w, err, listInstallationTypesErrMessage)
			return
		}

		responses := make([]internal.InstallationTypeResponse, len(installationTypes))
		for i, installationType := range installationTypes {
			responses[i] = internal.ToInstallationTypeResponse(installationType)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *InstallationTypeController) createInstallationType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.InstallationTypeCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		installationType, err := domain.NewInstallationTypeBuilder().
			WithName(body.Name).
			WithCode(body.Code).
			WithDescription(body.Description).
			Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := c.service.CreateInstallationType(r.Context(), installationType); err != nil {
			replyWithServiceError(w, err, createInstallationTypeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToInstallationTypeResponse(installationType))
	}
}

func (c *InstallationTypeController) getInstallationType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		installationType, err := c.service.GetInstallationType(r.Context(), id)
		if err != nil {
			replyWithServiceError(w, err, getInstallationTypeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToInstallationTypeResponse(installationType))
	}
}

func (c *InstallationTypeController) updateInstallationType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		var body internal.InstallationTypeUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		installationType, err := c.service.GetInstallationType(r.Context(), id)
		if err != nil {
			replyWithServiceError(w, err, updateInstallationTypeErrMessage)
			return
		}

		var name, description string
		if body.Name != nil {
			name = *body.Name
		}
		if body.Description != nil {
			description = *body.Description
		}
		installationType.UpdateInfo(name, description)

		if body.IsActive != nil {
			if *body.IsActive {
				installationType.Activate()
			} else {
				installationType.Deactivate()
			}
		}

		if err := c.service.UpdateInstallationType(r.Context(), installationType); err != nil {
			replyWithServiceError(w, err, updateInstallationTypeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToInstallationTypeResponse(installationType))
	}
}

func (c *InstallationTypeController) activateInstallationType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		if err := c.service.ActivateInstallationType(r.Context(), id); err != nil {
			replyWithServiceError(w, err, updateInstallationTypeErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *InstallationTypeController) deactivateInstallationType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		if err := c.service.DeactivateInstallationType(r.Context(), id); err != nil {
			replyWithServiceError(w, err, updateInstallationTypeErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *InstallationTypeController) listSchemas() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		schemas, err := c.service.ListSchemas(r.Context(), id)
		if err != nil {
			replyWithServiceError(w, err, listSchemasErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSchemaListResponse(schemas))
	}
}

func (c *InstallationTypeController) syncSchemas() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := shareddomain.ID(r.PathValue("id"))

		var body internal.SchemaSyncRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		payloads, err := internal.ToSchemaPayloads(body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		schemas, err := c.installations.SyncSchemas(r.Context(), id, payloads)
		if err != nil {
			replyWithServiceError(w, err, syncSchemasErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSchemaListResponse(schemas))
	}
}
