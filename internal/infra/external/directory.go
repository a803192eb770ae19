package external

import (
	"context"
	"encoding/json"
	"net/http"

	"lodgekeeper/internal/pkg/config"
	"lodgekeeper/internal/pkg/errs"
	"lodgekeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

// DirectoryClient resolves guest contact details from the identity service.
type DirectoryClient struct {
	baseURL string
	client  *http.Client
}

func NewDirectoryClient(cfg config.DirectoryConfig) *DirectoryClient {
	return &DirectoryClient{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type userResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (c *DirectoryClient) Lookup(ctx context.Context, userID uuid.UUID) (shared.UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/users/"+userID.String(), nil)
	if err != nil {
		return shared.UserInfo{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return shared.UserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return shared.UserInfo{}, errs.Newf("directory returned %d for user %s", resp.StatusCode, userID)
	}

	var out userResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return shared.UserInfo{}, err
	}
	return shared.UserInfo{
		Email:     out.Email,
		FirstName: out.FirstName,
		LastName:  out.LastName,
	}, nil
}
