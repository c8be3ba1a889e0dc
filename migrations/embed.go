// Package migrations embeds the goose SQL migrations so the server, the admin
// CLI and the integration tests all apply the same schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
