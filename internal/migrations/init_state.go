package migrations

import "database/sql"

func initStateTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE states (
			id VARCHAR(255) PRIMARY KEY,
			chat_id BIGINT NOT NULL,
			flow VARCHAR(255) NOT NULL,
			steps JSONB NULL,
			metadata JSONB NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)

	return err
}

func addChatIDIndexToStatesTable(db *sql.DB) error {
	_, err := db.Exec(`CREATE INDEX states_chat_id_updated_at_idx ON states (chat_id, updated_at DESC);`)

	return err
}
