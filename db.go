package gentile

import (
	"database/sql"
	"fmt"
	"hash/crc32"

	_ "github.com/mattn/go-sqlite3"
)

// AssetDB records the tile grid of each converted image keyed by the CRC-32
// of its packed tile data. The assembly text format does not carry the grid,
// so a later decode of unmodified tile data can recover it from here instead
// of requiring the caller to remember it.
type AssetDB struct {
	db *sql.DB
}

func NewAssetDB(file string) (*AssetDB, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (crc TEXT PRIMARY KEY NOT NULL, name TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &AssetDB{
		db: db,
	}, nil
}

func (db *AssetDB) Close() error {
	return db.db.Close()
}

// Record stores or refreshes the tile grid for the given payload checksum.
func (db *AssetDB) Record(crc, name string, tilesX, tilesY int) error {
	_, err := db.db.Exec("INSERT INTO asset (crc, name, width, height) VALUES (?, ?, ?, ?) ON CONFLICT(crc) DO UPDATE SET name = excluded.name, width = excluded.width, height = excluded.height", crc, name, tilesX, tilesY)
	return err
}

// FindGridByCRC returns the recorded tile grid, or zeroes when the checksum
// is unknown.
func (db *AssetDB) FindGridByCRC(crc string) (int, int, error) {
	var tilesX, tilesY int
	switch err := db.db.QueryRow("SELECT width, height FROM asset WHERE crc = ?", crc).Scan(&tilesX, &tilesY); err {
	case sql.ErrNoRows:
		return 0, 0, nil
	case nil:
		return tilesX, tilesY, nil
	default:
		return 0, 0, err
	}
}

func crcBytes(b []byte) string {
	return fmt.Sprintf("%.*X", crc32.Size<<1, crc32.ChecksumIEEE(b))
}
