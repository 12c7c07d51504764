package mysql

// Ids are compared byte for byte, matching how records are joined at merge time.
const createHotelsSQL = `
CREATE TABLE IF NOT EXISTS hotels (
  id             VARCHAR(64)  COLLATE utf8mb4_bin NOT NULL,
  destination_id VARCHAR(64)  COLLATE utf8mb4_bin NOT NULL DEFAULT '',
  position       INT          NOT NULL,
  doc            JSON         NOT NULL,
  updated_at     TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (id),
  KEY idx_hotels_destination (destination_id),
  KEY idx_hotels_position (position)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

// The catalog is a snapshot: each run replaces it wholesale.
const deleteHotelsSQL = `DELETE FROM hotels`

const insertHotelsPrefix = "INSERT INTO hotels\n  (id, destination_id, position, doc)\nVALUES "

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getHotelSQL = `SELECT doc FROM hotels WHERE id = ?`

// listHotelsPrefix is completed by buildListQuery with optional IN filters.
const listHotelsPrefix = `SELECT doc FROM hotels`
