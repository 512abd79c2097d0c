package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/menusmith/pkg/adapters/fs"
	"github.com/aretw0/menusmith/pkg/core"
)

func TestNew_Defaults(t *testing.T) {
	app, err := New()
	require.NoError(t, err)

	m := app.Editor.Snapshot()
	assert.Equal(t, core.DefaultTitle, m.Title)
	assert.Equal(t, core.DefaultOpenCommand, m.OpenCommand)
	assert.Equal(t, core.DefaultSize, m.Size)
	assert.Equal(t, fs.DefaultExportName, app.ExportName)
	assert.Equal(t, DefaultNotificationTTL, app.NotificationTTL)
	assert.NotNil(t, app.Logger)
}

func TestNew_Options(t *testing.T) {
	app, err := New(
		WithTitle("Shop"),
		WithOpenCommand("/shop"),
		WithSize(54),
		WithOpenRequirement("requirements: {}"),
		WithExportDir(t.TempDir()),
		WithExportName("shop.json"),
		WithNotificationTTL(time.Second),
	)
	require.NoError(t, err)

	m := app.Editor.Snapshot()
	assert.Equal(t, "Shop", m.Title)
	assert.Equal(t, "/shop", m.OpenCommand)
	assert.Equal(t, 54, m.Size)
	assert.Equal(t, "requirements: {}", m.OpenRequirement)
	assert.Equal(t, "shop.json", app.ExportName)
	assert.Equal(t, time.Second, app.NotificationTTL)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(WithSize(10))
	assert.ErrorIs(t, err, core.ErrInvalidSize)

	_, err = New(WithExportName("menu.toml"))
	assert.Error(t, err)

	app, err := New(WithSerializer(".toml", fs.NewYAMLSerializer()), WithExportName("menu.toml"))
	require.NoError(t, err)
	assert.Equal(t, "menu.toml", app.ExportName)
}
