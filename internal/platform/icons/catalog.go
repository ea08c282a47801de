package icons

import (
	"strings"
)

// ID is a stable icon identifier.
type ID string

const (
	IDGeneric    ID = "generic"
	IDDevices    ID = "devices"
	IDGateway    ID = "gateway"
	IDNetwork    ID = "network"
	IDAlert      ID = "alert"
	IDSubscriber ID = "subscriber"
	IDPolicy     ID = "policy"
	IDAPN        ID = "apn"
	IDEquipment  ID = "equipment"
	IDDashboard  ID = "dashboard"
	IDFilter     ID = "filter"
)

// Definition describes a cataloged icon.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: IDGeneric, Name: "Generic", Description: "Default icon for uncategorized cards."},
	{ID: IDDevices, Name: "Devices", Description: "Managed devices and their status."},
	{ID: IDGateway, Name: "Gateway", Description: "Access gateways and their health."},
	{ID: IDNetwork, Name: "Network", Description: "Network topology and configuration."},
	{ID: IDAlert, Name: "Alert", Description: "Firing alerts and alarms."},
	{ID: IDSubscriber, Name: "Subscriber", Description: "Subscribers and sessions."},
	{ID: IDPolicy, Name: "Policy", Description: "Policy rules and enforcement."},
	{ID: IDAPN, Name: "APN", Description: "Access point names."},
	{ID: IDEquipment, Name: "Equipment", Description: "Radios and other equipment."},
	{ID: IDDashboard, Name: "Dashboard", Description: "Dashboard overviews."},
	{ID: IDFilter, Name: "Filter", Description: "Filter controls."},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// CatalogMarkdown renders the icon catalog as a markdown table.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Icon ID | Lucide | Name | Description |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(string(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(LucideNameOrDefault(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
