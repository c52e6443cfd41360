package migrations

import "github.com/lopezator/migrator"

// Migrations is the ordered list of migrations of the bot database.
var Migrations = []any{
	&migrator.MigrationNoTx{
		Name: "Init state table",
		Func: initStateTable,
	},
	&migrator.MigrationNoTx{
		Name: "Add chat id index to states table",
		Func: addChatIDIndexToStatesTable,
	},
}
