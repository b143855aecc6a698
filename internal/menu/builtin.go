package menu

import (
	"fmt"
	"strconv"
)

// Builtin returns the fixed fallback menu used when the configuration file
// is absent or unparsable. Statements target the sys-tenant catalog views.
func Builtin(database string) *Menu {
	db := database
	if db == "" {
		db = "oceanbase"
	}

	defs := []struct {
		title string
		sql   string
	}{
		{"Server version", "SELECT VERSION() AS version"},
		{"Cluster servers (DBA_OB_SERVERS)", fmt.Sprintf("SELECT * FROM %s.DBA_OB_SERVERS", db)},
		{"Tenants (DBA_OB_TENANTS)", fmt.Sprintf("SELECT tenant_id, tenant_name, compatibility_mode, status, locality FROM %s.DBA_OB_TENANTS", db)},
		{"Zones (DBA_OB_ZONES)", fmt.Sprintf("SELECT * FROM %s.DBA_OB_ZONES", db)},
		{"Units (DBA_OB_UNITS)", fmt.Sprintf("SELECT * FROM %s.DBA_OB_UNITS", db)},
		{"Parameters (first 200)", fmt.Sprintf("SELECT * FROM %s.GV$OB_PARAMETERS LIMIT 200", db)},
		{"Sessions (processlist)", "SHOW PROCESSLIST"},
		{"Databases", "SHOW DATABASES"},
		{"Tables in current database", "SHOW TABLES"},
		{"Tenant resource overview", fmt.Sprintf(
			"SELECT t.tenant_id, t.tenant_name, u.unit_id, u.resource_pool_id, u.zone, u.max_cpu, u.max_memory "+
				"FROM %s.DBA_OB_TENANTS t LEFT JOIN %s.DBA_OB_UNITS u USING(tenant_id) "+
				"ORDER BY t.tenant_id, u.unit_id", db, db)},
		{"Server heartbeat / status", fmt.Sprintf(
			"SELECT svr_ip, svr_port, zone, status, start_service_time, stop_time "+
				"FROM %s.DBA_OB_SERVERS ORDER BY zone, svr_ip", db)},
	}

	items := make([]Item, 0, len(defs)+1)
	for i, d := range defs {
		items = append(items, Item{
			Key:       strconv.Itoa(i + 1),
			Title:     d.title,
			Kind:      Simple,
			Statement: d.sql,
			Enabled:   true,
		})
	}
	return New(ensureCustom(items))
}
