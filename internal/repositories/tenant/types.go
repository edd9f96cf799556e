package tenant

import "github.com/KirkDiggler/prizedraw/internal/models"

// Field names one key of a tenant's key group
type Field string

const (
	FieldRoster   Field = "roster"
	FieldPrizes   Field = "prizes"
	FieldWinners  Field = "winners"
	FieldExcluded Field = "excluded"
)

// AllFields lists every key in a tenant's key group
var AllFields = []Field{FieldRoster, FieldPrizes, FieldWinners, FieldExcluded}

type GetStateInput struct {
	TenantID string
}

type GetStateOutput struct {
	State *models.TenantState
}

type SaveStateInput struct {
	// State is the full tenant state; only Fields are written
	State *models.TenantState

	// Fields to write. Empty means all fields.
	Fields []Field
}
