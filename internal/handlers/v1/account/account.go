package account

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/money-manager/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID        string `json:"id" doc:"Account UUID"`
	Name      string `json:"accountName" doc:"Account name"`
	Balance   string `json:"balance" doc:"Decimal balance"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updatedAt" doc:"RFC3339 last modification time"`
}

func accountFromService(acc service.Account) Account {
	return Account{
		ID:        acc.ID.String(),
		Name:      acc.Name,
		Balance:   acc.Balance.String(),
		CreatedAt: acc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: acc.UpdatedAt.Format(time.RFC3339),
	}
}

// parseOwner resolves the owner identifier forwarded by the identity layer.
func parseOwner(header string) (uuid.UUID, error) {
	ownerID, err := uuid.FromString(header)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "invalid X-User-ID header", err)
	}
	return ownerID, nil
}
