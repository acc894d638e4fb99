package orgRepo

import (
	"context"

	"studycompass/models"
)

// OrgRepository provides read access to student clubs and their recurring
// weekly meeting slots.
type OrgRepository interface {
	ByMember(ctx context.Context, userID string) ([]models.Org, error)
}
