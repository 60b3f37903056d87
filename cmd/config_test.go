package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"flowerorder/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutEnvFile(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DB_DRIVER", "UPLOAD_DIR", "RABBITMQ_EXCHANGE", "DELIVERY_DIGEST_SCHEDULE"} {
		t.Setenv(key, "")
	}

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), ".env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "flowerorder.orders", cfg.RabbitMQExchange)
	assert.Equal(t, "0 0 7 * * *", cfg.DeliveryDigestSchedule)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	unsetEnv(t, "HTTP_PORT")
	unsetEnv(t, "DB_NAME")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HTTP_PORT=9090\nDB_NAME=orders\n"), 0o600))

	cfg, err := cmd.LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "orders", cfg.DBName)
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  cmd.Config
		want string
	}{
		{
			name: "postgres keys",
			cfg: cmd.Config{
				DBDriver: cmd.DriverPostgres, DBHost: "db", DBPort: "5433", DBUser: "app",
				DBPassword: "secret", DBName: "orders", DBSslMode: "disable",
			},
			want: "host=db port=5433 user=app password=secret dbname=orders sslmode=disable",
		},
		{
			name: "postgres url wins",
			cfg: cmd.Config{
				DBDriver:    cmd.DriverPostgres,
				DBHost:      "ignored",
				DatabaseURL: "postgres://app:secret@db:5432/orders?sslmode=disable",
			},
			want: "dbname=orders host=db password=secret port=5432 sslmode=disable user=app",
		},
		{
			name: "mysql default port",
			cfg: cmd.Config{
				DBDriver: cmd.DriverMySQL, DBHost: "db", DBUser: "app", DBPassword: "secret", DBName: "orders",
			},
			want: "app:secret@tcp(db:3306)/orders?charset=utf8mb4&parseTime=True&loc=UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.DSN()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_DSN_UnknownDriver(t *testing.T) {
	_, err := cmd.Config{DBDriver: "sqlite"}.DSN()

	require.Error(t, err)
}

// unsetEnv removes key for the test; godotenv never overrides a variable that
// is already present, even when empty.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	prev, had := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}
