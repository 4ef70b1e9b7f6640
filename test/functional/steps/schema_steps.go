package steps

import (
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// schemasFromTable reads rows of name | type | required | options, options
// separated by commas.
func schemasFromTable(table *godog.Table) []map[string]any {
	header := table.Rows[0].Cells
	schemas := make([]map[string]any, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		schema := map[string]any{}
		for i, cell := range row.Cells {
			switch header[i].Value {
			case "required":
				schema["required"] = cell.Value == "true"
			case "options":
				if cell.Value != "" {
					schema["options"] = strings.Split(cell.Value, ",")
				}
			default:
				schema[header[i].Value] = cell.Value
			}
		}
		schemas = append(schemas, schema)
	}
	return schemas
}

func (fc *FeatureContext) iSyncTheSchemas(table *godog.Table) error {
	return fc.syncSchemas(schemasFromTable(table))
}

func (fc *FeatureContext) theInstallationTypeHasTheSchemas(table *godog.Table) error {
	if err := fc.iSyncTheSchemas(table); err != nil {
		return err
	}
	fc.require.Equal(http.StatusOK, fc.response.StatusCode)
	fc.require.NotEmpty(fc.responseListData)

	for _, schema := range fc.responseListData {
		fc.schemaIDs[schema["name"].(string)] = schema["id"].(string)
	}
	return nil
}

func (fc *FeatureContext) iSyncTheSchemasKeepingAndAdding(kept string, table *godog.Table) error {
	id, ok := fc.schemaIDs[kept]
	fc.require.True(ok, "schema %q was never synced", kept)

	schemas := []map[string]any{{"id": id, "name": kept}}
	return fc.syncSchemas(append(schemas, schemasFromTable(table)...))
}

func (fc *FeatureContext) syncSchemas(schemas []map[string]any) error {
	response, err := fc.apiDriver.SyncSchemas(fc.installationTypeID, schemas)
	if err != nil {
		return err
	}
	fc.response = response

	if response.StatusCode == http.StatusOK {
		return fc.readSchemaList(response)
	}
	return nil
}

func (fc *FeatureContext) iListTheSchemasOfTheInstallationType() error {
	response, err := fc.apiDriver.ListSchemas(fc.installationTypeID)
	if err != nil {
		return err
	}
	fc.response = response
	fc.require.Equal(http.StatusOK, response.StatusCode)
	return fc.readSchemaList(response)
}

func (fc *FeatureContext) readSchemaList(response *http.Response) error {
	var data struct {
		Data []map[string]any `json:"data"`
	}
	fc.require.NoError(fc.decodeBody(response.Body, &data))
	fc.responseListData = data.Data
	return nil
}

func (fc *FeatureContext) theSchemaListShouldContainSchemas(count int) error {
	fc.require.Len(fc.responseListData, count)
	return nil
}

func (fc *FeatureContext) theSchemaShouldKeepItsID(name string) error {
	previous, ok := fc.schemaIDs[name]
	fc.require.True(ok, "schema %q was never synced", name)

	for _, schema := range fc.responseListData {
		if schema["name"] == name {
			fc.require.Equal(previous, schema["id"])
			return nil
		}
	}
	fc.require.Failf("schema not found", "schema %q not in the list", name)
	return nil
}
