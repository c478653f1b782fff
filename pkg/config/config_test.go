package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-oagis/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, "WebStoreWarehouse", cfg.OAGIS.SyncFacilityID)
	assert.Equal(t, "admin", cfg.OAGIS.SyncUserLoginID)
	assert.Equal(t, "system", cfg.OAGIS.AckUserLoginID)
	assert.Equal(t, "9001", cfg.OAGIS.ProductStoreID)
	assert.Equal(t, "PRDS_OAGIS_CONFIRM", cfg.OAGIS.ConfirmEmailType)
	assert.Equal(t, int32(25), cfg.DB.MaxConns)
	assert.Equal(t, time.Hour, cfg.DB.MaxConnLifetime)
	assert.Equal(t, 30*time.Minute, cfg.DB.MaxConnIdleTime)
	assert.False(t, cfg.DB.ForceIPv4)
	assert.False(t, cfg.SMTP.Enabled())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("OAGIS_SYNC_FACILITY_ID", "MainWarehouse")
	t.Setenv("OAGIS_PO_RECEIPT_FACILITY_ID", "ReceivingDock")
	t.Setenv("OAGIS_RETURN_RECEIPT_LOCATION_SEQ_ID", "RTN-01")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "oagis@example.com")
	t.Setenv("DB_MAX_CONN_LIFETIME", "2h")
	t.Setenv("DB_FORCE_IPV4", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "MainWarehouse", cfg.OAGIS.SyncFacilityID)
	assert.Equal(t, "ReceivingDock", cfg.OAGIS.PoReceiptFacilityID)
	assert.Equal(t, "RTN-01", cfg.OAGIS.ReturnReceiptLocationSeqID)
	assert.True(t, cfg.SMTP.Enabled())
	assert.Equal(t, 2*time.Hour, cfg.DB.MaxConnLifetime)
	assert.True(t, cfg.DB.ForceIPv4)
}

func TestLoad_Invalida(t *testing.T) {
	cases := map[string][2]string{
		"entorno desconocido":   {"APP_ENV", "qa"},
		"puerto fuera de rango": {"HTTP_PORT", "70000"},
		"remitente inválido":    {"SMTP_FROM", "no-es-email"},
		"pool sin conexiones":   {"DB_MAX_CONNS", "0"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "configuración inválida")
		})
	}
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "oagis", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/oagis?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgresql://u:p@h:5432/x"
	assert.Equal(t, "postgresql://u:p@h:5432/x", c.ConnectionString())
}
