package main

import (
	"inventory-server/internal/infra/utils"
	"inventory-server/internal/inventory/usecases"
)

type typeSeed struct {
	Name        string
	Code        string
	Description string
	Schemas     []usecases.SchemaPayload
}

func field(name, fieldType, description string, required bool, options ...string) usecases.SchemaPayload {
	return usecases.SchemaPayload{
		Name:        name,
		Type:        fieldType,
		Description: utils.StringPtr(description),
		Required:    utils.BoolPtr(required),
		Options:     options,
	}
}

var defaultTypes = []typeSeed{
	{
		Name:        "Terminal",
		Code:        "TERMINAL",
		Description: "Passenger terminal serving one or more bus lines",
		Schemas: []usecases.SchemaPayload{
			field("capacity", "number", "Maximum passengers at the same time", true),
			field("platforms", "number", "Boarding platforms", true),
			field("has_parking", "boolean", "Public parking available", false),
			field("opened_on", "date", "First day of operation", false),
			field("category", "enum", "Terminal category", true, "urban", "interurban", "international"),
			field("notes", "long_text", "Free text notes", false),
		},
	},
	{
		Name:        "Tollbooth",
		Code:        "TOLLBOOTH",
		Description: "Toll collection point on a route",
		Schemas: []usecases.SchemaPayload{
			field("lanes", "number", "Collection lanes", true),
			field("operator", "string", "Operating company", false),
			field("electronic_toll", "boolean", "Accepts electronic toll tags", false),
		},
	},
	{
		Name:        "Maintenance Center",
		Code:        "MAINTENANCE_CENTER",
		Description: "Workshop for rolling stock maintenance",
		Schemas: []usecases.SchemaPayload{
			field("bays", "number", "Service bays", true),
			field("level", "enum", "Maintenance level", true, "preventive", "corrective", "overhaul"),
			field("certified_since", "date", "Certification date", false),
		},
	},
}
