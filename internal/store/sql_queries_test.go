package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetSettingQuery(t *testing.T) {
	query, args, err := buildGetSettingQuery("uploader_author")
	require.NoError(t, err)

	assert.Equal(t, "SELECT value FROM settings WHERE key = ? LIMIT 1", query)
	assert.Equal(t, []any{"uploader_author"}, args)
}

func Test_buildSetSettingQuery(t *testing.T) {
	query, args, err := buildSetSettingQuery("uploader_author", "bob")
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO settings (key,value,updated_at) VALUES (?,?,CURRENT_TIMESTAMP)")
	assert.Contains(t, query, "ON CONFLICT(key) DO UPDATE")
	assert.Equal(t, []any{"uploader_author", "bob"}, args)
}
