//go:build integration

package mysql

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
)

// setupMySQLContainer starts MySQL, loads db/schema.sql and returns a DSN.
func setupMySQLContainer(t require.TestingT, ctx context.Context) (string, func()) {
	const (
		dbName = "clickrec_test"
		user   = "clickrec"
		pass   = "clickrec"
	)

	container, err := tcmysql.RunContainer(ctx,
		tcmysql.WithDatabase(dbName),
		tcmysql.WithUsername(user),
		tcmysql.WithPassword(pass),
		tcmysql.WithScripts(schemaPath(t)),
	)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port("3306/tcp"))
	require.NoError(t, err)

	cleanup := func() {
		_ = container.Terminate(ctx)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC", user, pass, host, port.Port(), dbName), cleanup
}

func schemaPath(t require.TestingT) string {
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	path := filepath.Join(filepath.Dir(file), "..", "..", "..", "db", "schema.sql")
	_, err := os.Stat(path)
	require.NoError(t, err)
	return path
}
