package gentile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetDB(t *testing.T) {
	db, err := NewAssetDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	crc := crcBytes([]byte{0x01, 0x02, 0x03})

	tilesX, tilesY, err := db.FindGridByCRC(crc)
	require.NoError(t, err)
	assert.Zero(t, tilesX)
	assert.Zero(t, tilesY)

	require.NoError(t, db.Record(crc, "test.png", 2, 3))

	tilesX, tilesY, err = db.FindGridByCRC(crc)
	require.NoError(t, err)
	assert.Equal(t, 2, tilesX)
	assert.Equal(t, 3, tilesY)

	// Re-recording the same payload updates in place.
	require.NoError(t, db.Record(crc, "other.png", 4, 5))

	tilesX, tilesY, err = db.FindGridByCRC(crc)
	require.NoError(t, err)
	assert.Equal(t, 4, tilesX)
	assert.Equal(t, 5, tilesY)
}

func TestCRCBytes(t *testing.T) {
	// IEEE CRC-32 of "123456789" is the check value CBF43926.
	assert.Equal(t, "CBF43926", crcBytes([]byte("123456789")))
}
