package config

import (
	"testing"

	mysqldriver "gorm.io/driver/mysql"
)

func TestDialectorForMySQLOverridesDatabase(t *testing.T) {
	d, err := dialectorFor(DatabaseConfig{
		Driver: DriverMySQL,
		URL:    "user:pass@tcp(localhost:3306)/shop",
		Name:   "inventory_system",
	})
	if err != nil {
		t.Fatalf("dialectorFor: %v", err)
	}
	dsn := d.(*mysqldriver.Dialector).DSN
	want := "user:pass@tcp(localhost:3306)/inventory_system?parseTime=true"
	if dsn != want {
		t.Errorf("DSN = %q, want %q", dsn, want)
	}
}

func TestDialectorForMySQLKeepsMicroseconds(t *testing.T) {
	d, err := dialectorFor(DatabaseConfig{Driver: DriverMySQL, URL: "user:pass@tcp(localhost:3306)/shop"})
	if err != nil {
		t.Fatalf("dialectorFor: %v", err)
	}
	precision := d.(*mysqldriver.Dialector).DefaultDatetimePrecision
	if precision == nil || *precision != 6 {
		t.Errorf("DefaultDatetimePrecision = %v, want 6", precision)
	}
}

func TestDialectorForErrors(t *testing.T) {
	tests := []DatabaseConfig{
		{Driver: DriverPostgres, URL: "postgres://%zz"},
		{Driver: DriverMySQL, URL: "not a dsn"},
		{Driver: DriverMemory},
	}
	for _, cfg := range tests {
		if _, err := dialectorFor(cfg); err == nil {
			t.Errorf("dialectorFor(%s %q) succeeded, want error", cfg.Driver, cfg.URL)
		}
	}
}
